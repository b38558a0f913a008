package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/bds-backend/models"
	"github.com/vnkhanh/bds-backend/services"
	"github.com/vnkhanh/bds-backend/utils"
)

type propertyInput struct {
	Title          string   `json:"title" binding:"required"`
	Price          float64  `json:"price"`
	Currency       string   `json:"currency"`
	Area           float64  `json:"area"`
	Address        string   `json:"address"`
	City           string   `json:"city"`
	Type           string   `json:"type"`
	Category       string   `json:"category"`
	Description    string   `json:"description"`
	Images         []string `json:"images"`
	Bedrooms       *int     `json:"bedrooms"`
	Bathrooms      *int     `json:"bathrooms"`
	ContactName    string   `json:"contact_name"`
	ContactPhone   string   `json:"contact_phone"`
	ContactEmail   string   `json:"contact_email"`
	YoutubeURL     string   `json:"youtube_url"`
	SeoTitle       string   `json:"seo_title"`
	SeoDescription string   `json:"seo_description"`
	SeoKeywords    string   `json:"seo_keywords"`
}

var (
	propertyTypes      = []string{string(models.PropertySale), string(models.PropertyRent)}
	propertyCategories = []string{
		string(models.CategoryHouse), string(models.CategoryApartment),
		string(models.CategoryLand), string(models.CategoryOffice),
	}
)

func (in propertyInput) toModel(defaultContact string) (models.Property, error) {
	p := models.Property{
		Title:          strings.TrimSpace(in.Title),
		Price:          in.Price,
		Currency:       strings.TrimSpace(in.Currency),
		Area:           in.Area,
		Address:        strings.TrimSpace(in.Address),
		City:           strings.TrimSpace(in.City),
		Type:           strings.ToLower(strings.TrimSpace(in.Type)),
		Category:       strings.ToLower(strings.TrimSpace(in.Category)),
		Description:    in.Description,
		Images:         models.ImageList{},
		Bedrooms:       in.Bedrooms,
		Bathrooms:      in.Bathrooms,
		ContactName:    strings.TrimSpace(in.ContactName),
		ContactPhone:   strings.TrimSpace(in.ContactPhone),
		ContactEmail:   strings.TrimSpace(in.ContactEmail),
		YoutubeURL:     strings.TrimSpace(in.YoutubeURL),
		SeoTitle:       strings.TrimSpace(in.SeoTitle),
		SeoDescription: strings.TrimSpace(in.SeoDescription),
		SeoKeywords:    strings.TrimSpace(in.SeoKeywords),
	}
	for _, img := range in.Images {
		if img = strings.TrimSpace(img); img != "" {
			p.Images = append(p.Images, img)
		}
	}
	if p.Currency == "" {
		p.Currency = models.CurrencyBillion
	}
	if p.Type == "" {
		p.Type = string(models.PropertySale)
	}
	if p.ContactName == "" {
		p.ContactName = defaultContact
	}

	switch {
	case p.Title == "":
		return p, fmt.Errorf("%w: tiêu đề bắt buộc", services.ErrInvalidInput)
	case p.Price < 0 || p.Area < 0:
		return p, fmt.Errorf("%w: giá và diện tích không được âm", services.ErrInvalidInput)
	case !slices.Contains(models.Currencies, p.Currency):
		return p, fmt.Errorf("%w: đơn vị giá %q", services.ErrInvalidInput, p.Currency)
	case !slices.Contains(propertyTypes, p.Type):
		return p, fmt.Errorf("%w: loại tin %q", services.ErrInvalidInput, p.Type)
	case p.Category != "" && !slices.Contains(propertyCategories, p.Category):
		return p, fmt.Errorf("%w: danh mục %q", services.ErrInvalidInput, p.Category)
	}
	return p, nil
}

func bindProperty(c *gin.Context) (models.Property, bool) {
	var input propertyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return models.Property{}, false
	}
	p, err := input.toModel(currentSnapshot(c).Config().DefaultContactName)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return models.Property{}, false
	}
	return p, true
}

// GET /api/admin/properties: lọc và sắp xếp như trang công khai, không phân trang
func AdminListProperties(c *gin.Context) {
	snap := currentSnapshot(c)
	filter := services.ParseListingFilter(c.Request.URL.Query())
	props := services.FilterProperties(snap.Properties(), filter, snap, priceBuckets(c))
	props = services.SortProperties(props, c.DefaultQuery("sort", services.SortNewest))
	c.JSON(http.StatusOK, gin.H{"data": props, "total": len(props)})
}

func AdminGetProperty(c *gin.Context) {
	p, err := getStore(c).FindProperty(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Tin đăng không tồn tại")
		return
	}
	c.JSON(http.StatusOK, p)
}

func CreateProperty(c *gin.Context) {
	p, ok := bindProperty(c)
	if !ok {
		return
	}
	if err := getStore(c).CreateProperty(c.Request.Context(), &p); err != nil {
		respondError(c, err, "Không thể tạo tin đăng")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Tạo tin đăng thành công", "property": p})
}

func UpdateProperty(c *gin.Context) {
	p, ok := bindProperty(c)
	if !ok {
		return
	}
	if err := getStore(c).UpdateProperty(c.Request.Context(), c.Param("id"), &p); err != nil {
		respondError(c, err, "Không thể cập nhật tin đăng")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cập nhật tin đăng thành công", "property": p})
}

// DeleteProperty xóa tin đăng, ảnh trên Supabase được dọn ở nền
func DeleteProperty(c *gin.Context) {
	st := getStore(c)
	id := c.Param("id")

	p, err := st.FindProperty(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Tin đăng không tồn tại")
		return
	}
	if err := st.DeleteProperty(c.Request.Context(), id); err != nil {
		respondError(c, err, "Không thể xóa tin đăng")
		return
	}

	go func(images []string) {
		for _, url := range images {
			if err := utils.DeleteFileFromSupabase(url); err != nil {
				log.Printf("Không thể xóa ảnh %s: %v", url, err)
			}
		}
	}(slices.Clone(p.Images))

	c.JSON(http.StatusOK, gin.H{"message": "Đã xóa tin đăng"})
}

// GET /api/admin/properties/export: xuất Excel theo bộ lọc hiện tại
func ExportProperties(c *gin.Context) {
	snap := currentSnapshot(c)
	filter := services.ParseListingFilter(c.Request.URL.Query())
	props := services.FilterProperties(snap.Properties(), filter, snap, priceBuckets(c))
	props = services.SortProperties(props, c.DefaultQuery("sort", services.SortNewest))

	filename := services.ListingsExportName(time.Now().Format("2006-01-02 15:04"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	if err := services.WriteListingsXLSX(c.Writer, props); err != nil {
		log.Println("Lỗi xuất excel:", err)
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}

// POST /api/admin/seo/suggest {"property_id": "..."} hoặc gửi thẳng nội dung tin
func SuggestPropertySEO(c *gin.Context) {
	var input struct {
		PropertyID string `json:"property_id"`
		propertyInput
	}
	if err := c.ShouldBindJSON(&input); err != nil && input.PropertyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var p models.Property
	if input.PropertyID != "" {
		found, ok := currentSnapshot(c).PropertyByID(input.PropertyID)
		if !ok {
			respondNotFound(c, "Tin đăng không tồn tại")
			return
		}
		p = found
	} else {
		p, _ = input.propertyInput.toModel("")
	}

	suggestion, err := services.SuggestSEO(c.Request.Context(), p)
	if err != nil {
		if errors.Is(err, services.ErrGeminiDisabled) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Tính năng gợi ý SEO chưa được cấu hình"})
			return
		}
		log.Println("Lỗi gợi ý SEO:", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Không thể tạo gợi ý SEO"})
		return
	}
	c.JSON(http.StatusOK, suggestion)
}

// POST /api/admin/seo/summary {"content": "<p>...</p>"}: gợi ý tóm tắt cho bài viết
func SuggestNewsSummary(c *gin.Context) {
	var input struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := services.SummaryText(c.Request.Context(), input.Content)
	if err != nil {
		if errors.Is(err, services.ErrGeminiDisabled) {
			// Không có Gemini thì cắt đoạn đầu bài viết
			c.JSON(http.StatusOK, gin.H{"summary": services.Excerpt(input.Content, 200), "source": "excerpt"})
			return
		}
		log.Println("Lỗi tóm tắt bài viết:", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Không thể tạo tóm tắt"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary, "source": "gemini"})
}
