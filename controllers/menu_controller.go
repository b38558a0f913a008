package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/bds-backend/models"
	"github.com/vnkhanh/bds-backend/services"
)

// GET /api/menu
func GetMenu(c *gin.Context) {
	c.JSON(http.StatusOK, services.SortMenuItems(currentSnapshot(c).MenuItems()))
}

// GET /api/admin/menu/icons
func GetMenuIcons(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"icons":    models.SupportedMenuIcons(),
		"fallback": models.FallbackMenuIcon,
	})
}

func CreateMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item.ID = ""
	if err := getStore(c).CreateMenuItem(c.Request.Context(), &item); err != nil {
		respondError(c, err, "Không thể thêm mục menu")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Đã thêm mục menu", "item": item})
}

func UpdateMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := getStore(c).UpdateMenuItem(c.Request.Context(), c.Param("id"), &item); err != nil {
		respondError(c, err, "Không thể cập nhật mục menu")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Đã cập nhật mục menu", "item": item})
}

func DeleteMenuItem(c *gin.Context) {
	if err := getStore(c).DeleteMenuItem(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Không thể xóa mục menu")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Đã xóa mục menu"})
}

// PUT /api/admin/menu: lưu cả danh sách. Lỗi một phần không làm hỏng cả request,
// client so saved với total rồi tải lại menu.
func SaveMenu(c *gin.Context) {
	var items []models.MenuItem
	if err := c.ShouldBindJSON(&items); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	saved, err := getStore(c).SaveMenuItems(c.Request.Context(), services.NormalizeMenuOrder(items))
	resp := gin.H{
		"message": "Đã lưu menu",
		"saved":   saved,
		"total":   len(items),
		"items":   services.SortMenuItems(currentSnapshot(c).MenuItems()),
	}
	if err != nil {
		resp["message"] = "Một số mục menu chưa được lưu"
		resp["error"] = err.Error()
	}
	c.JSON(http.StatusOK, resp)
}

// POST /api/admin/menu/:id/move {"direction": "up"|"down"}
func MoveMenuItem(c *gin.Context) {
	var input struct {
		Direction string `json:"direction" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	dir, err := services.ParseMoveDirection(input.Direction)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items, err := getStore(c).MoveMenuItemByID(c.Request.Context(), c.Param("id"), dir)
	if err != nil {
		if items == nil {
			respondError(c, err, "Không tìm thấy mục menu")
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message": "Một số mục menu chưa được lưu",
			"error":   err.Error(),
			"items":   services.SortMenuItems(currentSnapshot(c).MenuItems()),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Đã đổi thứ tự menu", "items": items})
}

// POST /api/admin/menu/seed: khôi phục menu mặc định
func SeedMenu(c *gin.Context) {
	if err := getStore(c).ReplaceMenuItems(c.Request.Context(), models.DefaultMenuItems()); err != nil {
		respondError(c, err, "Không thể khôi phục menu mặc định")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Đã khôi phục menu mặc định",
		"items":   services.SortMenuItems(currentSnapshot(c).MenuItems()),
	})
}
