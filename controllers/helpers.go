package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/bds-backend/config"
	"github.com/vnkhanh/bds-backend/services"
)

const notFoundTitle = "404 - Không tìm thấy trang"

func getStore(c *gin.Context) *services.Store {
	return c.MustGet("store").(*services.Store)
}

func getSettings(c *gin.Context) config.Settings {
	return c.MustGet("settings").(config.Settings)
}

func currentSnapshot(c *gin.Context) *services.Snapshot {
	return getStore(c).Snapshot(c.Request.Context())
}

func respondNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"error": notFoundTitle, "message": message})
}

// respondError đổi lỗi của services thành mã HTTP; lỗi hệ thống chỉ trả thông báo chung
func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		respondNotFound(c, fallback)
	case errors.Is(err, services.ErrInvalidInput), errors.Is(err, services.ErrDuplicateSlug):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("%s: %v", fallback, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// queryInt đọc tham số số nguyên, sai định dạng thì dùng giá trị mặc định
func queryInt(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(c.Query(key)))
	if err != nil {
		return def
	}
	return v
}

func priceBuckets(c *gin.Context) services.PriceBuckets {
	return services.PriceBucketsFor(getSettings(c).PriceRangeMode)
}
