package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/bds-backend/services"
)

// GET /api/config (public) và /api/admin/settings/config
func GetSystemConfig(c *gin.Context) {
	c.JSON(http.StatusOK, currentSnapshot(c).Config())
}

// PUT /api/admin/settings/config: chỉ các trường gửi lên mới được cập nhật
func UpdateSystemConfig(c *gin.Context) {
	var patch map[string]interface{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cfg, err := getStore(c).UpsertSystemConfig(c.Request.Context(), patch)
	if err != nil {
		if errors.Is(err, services.ErrAppearanceConfig) {
			c.JSON(http.StatusOK, gin.H{
				"message": "Đã lưu cấu hình cơ bản nhưng chưa lưu được cấu hình giao diện",
				"warning": err.Error(),
				"config":  cfg,
			})
			return
		}
		respondError(c, err, "Không thể lưu cấu hình")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Đã lưu cấu hình", "config": cfg})
}

// POST /api/admin/settings/clear-cache
func ClearCache(c *gin.Context) {
	snap := getStore(c).Refresh(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"message":   "Đã làm mới dữ liệu",
		"loaded_at": snap.LoadedAt,
		"counts":    snap.Counts(),
	})
}
