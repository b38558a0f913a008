package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/bds-backend/models"
	"github.com/vnkhanh/bds-backend/utils"
)

// GET /api/cities
func GetCities(c *gin.Context) {
	c.JSON(http.StatusOK, currentSnapshot(c).Cities())
}

// GET /api/cities/:id/districts
func GetDistrictsByCity(c *gin.Context) {
	c.JSON(http.StatusOK, currentSnapshot(c).DistrictsByCity(c.Param("id")))
}

// GET /api/admin/districts
func AdminListDistricts(c *gin.Context) {
	c.JSON(http.StatusOK, currentSnapshot(c).Districts())
}

func locationID(id, name string) string {
	if id = strings.TrimSpace(id); id != "" {
		return id
	}
	return strings.ReplaceAll(utils.Slugify(name), "-", "")
}

func CreateCity(c *gin.Context) {
	var input struct {
		ID   string `json:"id"`
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tên thành phố bắt buộc"})
		return
	}

	city := &models.City{ID: locationID(input.ID, name), Name: name}
	if _, exists := currentSnapshot(c).CityName(city.ID); exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Mã thành phố đã tồn tại"})
		return
	}
	if err := getStore(c).CreateCity(c.Request.Context(), city); err != nil {
		respondError(c, err, "Không thể tạo thành phố")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Tạo thành phố thành công", "city": city})
}

// DeleteCity xóa thành phố và toàn bộ quận/huyện của nó
func DeleteCity(c *gin.Context) {
	if err := getStore(c).DeleteCity(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Không thể xóa thành phố")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Đã xóa thành phố và các quận/huyện trực thuộc"})
}

func CreateDistrict(c *gin.Context) {
	var input struct {
		ID     string `json:"id"`
		Name   string `json:"name" binding:"required"`
		CityID string `json:"city_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tên quận/huyện bắt buộc"})
		return
	}

	district := &models.District{ID: locationID(input.ID, name), Name: name, CityID: strings.TrimSpace(input.CityID)}
	if _, exists := currentSnapshot(c).DistrictName(district.ID); exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Mã quận/huyện đã tồn tại"})
		return
	}
	if err := getStore(c).CreateDistrict(c.Request.Context(), district); err != nil {
		respondError(c, err, "Không thể tạo quận/huyện")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Tạo quận/huyện thành công", "district": district})
}

func DeleteDistrict(c *gin.Context) {
	if err := getStore(c).DeleteDistrict(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Không thể xóa quận/huyện")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Đã xóa quận/huyện"})
}
