package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/bds-backend/models"
	"github.com/vnkhanh/bds-backend/utils"
)

// GET /api/pages/:slug (chỉ trang đã xuất bản)
func GetPageBySlug(c *gin.Context) {
	p, ok := currentSnapshot(c).PageBySlug(c.Param("slug"))
	if !ok || !p.IsPublished {
		respondNotFound(c, "Trang bạn tìm kiếm không tồn tại hoặc đã bị xóa")
		return
	}
	c.JSON(http.StatusOK, p)
}

type pageInput struct {
	Title          string `json:"title" binding:"required"`
	Slug           string `json:"slug"`
	Content        string `json:"content"`
	IsPublished    bool   `json:"is_published"`
	SeoTitle       string `json:"seo_title"`
	SeoDescription string `json:"seo_description"`
	SeoKeywords    string `json:"seo_keywords"`
}

// Slug bỏ trống thì sinh từ tiêu đề
func (in pageInput) toModel() models.Page {
	title := strings.TrimSpace(in.Title)
	slug := utils.Slugify(in.Slug)
	if slug == "" {
		slug = utils.Slugify(title)
	}
	return models.Page{
		Title:          title,
		Slug:           slug,
		Content:        in.Content,
		IsPublished:    in.IsPublished,
		SeoTitle:       strings.TrimSpace(in.SeoTitle),
		SeoDescription: strings.TrimSpace(in.SeoDescription),
		SeoKeywords:    strings.TrimSpace(in.SeoKeywords),
	}
}

func bindPage(c *gin.Context) (models.Page, bool) {
	var input pageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return models.Page{}, false
	}
	p := input.toModel()
	if p.Title == "" || p.Slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tiêu đề và slug không hợp lệ"})
		return models.Page{}, false
	}
	return p, true
}

func AdminListPages(c *gin.Context) {
	pages := currentSnapshot(c).Pages()
	c.JSON(http.StatusOK, gin.H{"data": pages, "total": len(pages)})
}

func AdminGetPage(c *gin.Context) {
	p, err := getStore(c).FindPage(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Không tìm thấy trang")
		return
	}
	c.JSON(http.StatusOK, p)
}

func CreatePage(c *gin.Context) {
	p, ok := bindPage(c)
	if !ok {
		return
	}
	if err := getStore(c).CreatePage(c.Request.Context(), &p); err != nil {
		respondError(c, err, "Không thể tạo trang")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Tạo trang thành công", "page": p})
}

func UpdatePage(c *gin.Context) {
	p, ok := bindPage(c)
	if !ok {
		return
	}
	if err := getStore(c).UpdatePage(c.Request.Context(), c.Param("id"), &p); err != nil {
		respondError(c, err, "Không thể cập nhật trang")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cập nhật trang thành công", "page": p})
}

func DeletePage(c *gin.Context) {
	if err := getStore(c).DeletePage(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Không thể xóa trang")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Đã xóa trang"})
}
