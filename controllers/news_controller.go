package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/bds-backend/models"
	"github.com/vnkhanh/bds-backend/services"
	"github.com/vnkhanh/bds-backend/utils"
)

// GET /api/news?category=&page=
func GetNews(c *gin.Context) {
	snap := currentSnapshot(c)
	feed := services.BuildNewsFeed(snap.News(), c.Query("category"), queryInt(c, "page", 1), snap.Config().PostsPerPage)
	feed.Categories = snap.NewsCategories()
	c.JSON(http.StatusOK, feed)
}

// GET /api/news/:id (id hoặc slug)
func GetNewsDetail(c *gin.Context) {
	snap := currentSnapshot(c)
	n, ok := snap.NewsByIDOrSlug(c.Param("id"))
	if !ok || !n.IsPublished {
		respondNotFound(c, "Không tìm thấy bài viết")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"news":          n,
		"category_name": snap.NewsCategoryName(n.CategoryID),
		"related":       services.RelatedNews(snap.News(), n, snap.Config().RelatedPostsLimit),
	})
}

type newsInput struct {
	Title          string `json:"title" binding:"required"`
	Slug           string `json:"slug"`
	Summary        string `json:"summary"`
	Content        string `json:"content"`
	Thumbnail      string `json:"thumbnail"`
	CategoryID     string `json:"category_id"`
	Author         string `json:"author"`
	IsPublished    bool   `json:"is_published"`
	SeoTitle       string `json:"seo_title"`
	SeoDescription string `json:"seo_description"`
	SeoKeywords    string `json:"seo_keywords"`
}

func (in newsInput) toModel() models.News {
	title := strings.TrimSpace(in.Title)
	slug := utils.Slugify(in.Slug)
	if slug == "" {
		slug = utils.Slugify(title)
	}
	summary := strings.TrimSpace(in.Summary)
	if summary == "" {
		summary = services.Excerpt(in.Content, 200)
	}
	return models.News{
		Title:          title,
		Slug:           slug,
		Summary:        summary,
		Content:        in.Content,
		Thumbnail:      strings.TrimSpace(in.Thumbnail),
		CategoryID:     strings.TrimSpace(in.CategoryID),
		Author:         strings.TrimSpace(in.Author),
		IsPublished:    in.IsPublished,
		SeoTitle:       strings.TrimSpace(in.SeoTitle),
		SeoDescription: strings.TrimSpace(in.SeoDescription),
		SeoKeywords:    strings.TrimSpace(in.SeoKeywords),
	}
}

// GET /api/admin/news (gồm cả bài nháp)
func AdminListNews(c *gin.Context) {
	snap := currentSnapshot(c)
	news := snap.News()
	c.JSON(http.StatusOK, gin.H{"data": news, "total": len(news)})
}

func AdminGetNews(c *gin.Context) {
	n, err := getStore(c).FindNews(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Không tìm thấy bài viết")
		return
	}
	c.JSON(http.StatusOK, n)
}

func CreateNews(c *gin.Context) {
	var input newsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	n := input.toModel()
	if n.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tiêu đề bài viết bắt buộc"})
		return
	}

	if err := getStore(c).CreateNews(c.Request.Context(), &n); err != nil {
		respondError(c, err, "Không thể tạo bài viết")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Tạo bài viết thành công", "news": n})
}

func UpdateNews(c *gin.Context) {
	var input newsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	n := input.toModel()
	if n.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tiêu đề bài viết bắt buộc"})
		return
	}

	if err := getStore(c).UpdateNews(c.Request.Context(), c.Param("id"), &n); err != nil {
		respondError(c, err, "Không thể cập nhật bài viết")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cập nhật bài viết thành công", "news": n})
}

func DeleteNews(c *gin.Context) {
	if err := getStore(c).DeleteNews(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Không thể xóa bài viết")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Đã xóa bài viết"})
}
