package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/bds-backend/services"
	"github.com/vnkhanh/bds-backend/ws"
)

const serviceName = "bds-backend"

var errDatabaseHandle = errors.New("không lấy được kết nối cơ sở dữ liệu")

func pingDatabase(c *gin.Context, st *services.Store) error {
	sqlDB, err := st.DB().DB()
	if err != nil {
		return errDatabaseHandle
	}
	return sqlDB.PingContext(c.Request.Context())
}

// HealthCheck báo trạng thái CSDL, bộ nhớ đệm tin đăng và kết nối realtime
func HealthCheck(c *gin.Context) {
	st := getStore(c)

	resp := gin.H{
		"service":    serviceName,
		"checked_at": time.Now().Format(time.RFC3339),
		"realtime":   ws.H.GetStats(),
	}

	if err := pingDatabase(c, st); err != nil {
		resp["status"] = "degraded"
		resp["message"] = "Mất kết nối cơ sở dữ liệu"
		resp["database"] = gin.H{"ok": false, "error": err.Error()}
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}

	snap := st.Snapshot(c.Request.Context())
	resp["status"] = "ok"
	resp["message"] = "Hệ thống hoạt động bình thường"
	resp["database"] = gin.H{"ok": true}
	resp["cache"] = gin.H{
		"loaded_at": snap.LoadedAt.Format(time.RFC3339),
		"counts":    snap.Counts(),
	}
	c.JSON(http.StatusOK, resp)
}

func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong", "service": serviceName})
}
