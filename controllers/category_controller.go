package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/bds-backend/models"
	"github.com/vnkhanh/bds-backend/utils"
)

// GET /api/news-categories
func GetNewsCategories(c *gin.Context) {
	c.JSON(http.StatusOK, currentSnapshot(c).NewsCategories())
}

func CreateNewsCategory(c *gin.Context) {
	var input struct {
		ID          string `json:"id"`
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tên danh mục bắt buộc"})
		return
	}

	// ID mặc định là slug của tên (vd: "thi-truong")
	id := utils.Slugify(input.ID)
	if id == "" {
		id = utils.Slugify(name)
	}

	category := &models.NewsCategory{
		ID:          id,
		Name:        name,
		Description: strings.TrimSpace(input.Description),
	}
	if err := getStore(c).CreateNewsCategory(c.Request.Context(), category); err != nil {
		respondError(c, err, "Không thể tạo danh mục")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Tạo danh mục thành công",
		"category": category,
	})
}

func DeleteNewsCategory(c *gin.Context) {
	if err := getStore(c).DeleteNewsCategory(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Không thể xóa danh mục")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Đã xóa danh mục"})
}
