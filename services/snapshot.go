package services

import (
	"slices"
	"strings"
	"time"

	"github.com/vnkhanh/bds-backend/models"
)

// Snapshot là ảnh chụp bất biến của toàn bộ dữ liệu hiển thị.
// Mọi accessor trả về bản sao, người dùng có thể sửa mà không ảnh hưởng cache.
type Snapshot struct {
	properties     []models.Property
	cities         []models.City
	districts      []models.District
	news           []models.News
	newsCategories []models.NewsCategory
	pages          []models.Page
	menuItems      []models.MenuItem
	config         models.SystemConfig

	LoadedAt time.Time
	seq      uint64
}

// NewSnapshot dựng snapshot từ dữ liệu có sẵn (dùng cho test và công cụ)
func NewSnapshot(props []models.Property, cities []models.City, districts []models.District, cfg models.SystemConfig) *Snapshot {
	return &Snapshot{
		properties: cloneProperties(props),
		cities:     slices.Clone(cities),
		districts:  slices.Clone(districts),
		config:     cfg.WithDefaults(),
		LoadedAt:   time.Now(),
	}
}

func cloneProperty(p models.Property) models.Property {
	p.Images = slices.Clone(p.Images)
	if p.Images == nil {
		p.Images = models.ImageList{}
	}
	if p.Bedrooms != nil {
		v := *p.Bedrooms
		p.Bedrooms = &v
	}
	if p.Bathrooms != nil {
		v := *p.Bathrooms
		p.Bathrooms = &v
	}
	return p
}

func cloneProperties(in []models.Property) []models.Property {
	out := make([]models.Property, len(in))
	for i, p := range in {
		out[i] = cloneProperty(p)
	}
	return out
}

func (s *Snapshot) Properties() []models.Property { return cloneProperties(s.properties) }
func (s *Snapshot) Cities() []models.City         { return slices.Clone(s.cities) }
func (s *Snapshot) Districts() []models.District  { return slices.Clone(s.districts) }
func (s *Snapshot) News() []models.News           { return slices.Clone(s.news) }
func (s *Snapshot) Pages() []models.Page          { return slices.Clone(s.pages) }
func (s *Snapshot) MenuItems() []models.MenuItem  { return slices.Clone(s.menuItems) }
func (s *Snapshot) Config() models.SystemConfig   { return s.config }

func (s *Snapshot) NewsCategories() []models.NewsCategory {
	return slices.Clone(s.newsCategories)
}

func (s *Snapshot) PropertyByID(id string) (models.Property, bool) {
	for _, p := range s.properties {
		if p.ID == id {
			return cloneProperty(p), true
		}
	}
	return models.Property{}, false
}

// NewsByIDOrSlug tìm bài viết theo id, nếu không có thì theo slug
func (s *Snapshot) NewsByIDOrSlug(key string) (models.News, bool) {
	for _, n := range s.news {
		if n.ID == key {
			return n, true
		}
	}
	for _, n := range s.news {
		if n.Slug != "" && n.Slug == key {
			return n, true
		}
	}
	return models.News{}, false
}

func (s *Snapshot) PageBySlug(slug string) (models.Page, bool) {
	for _, p := range s.pages {
		if p.Slug == slug {
			return p, true
		}
	}
	return models.Page{}, false
}

// CityName tra tên thành phố theo id
func (s *Snapshot) CityName(id string) (string, bool) {
	for _, c := range s.cities {
		if c.ID == id {
			return c.Name, true
		}
	}
	return "", false
}

// DistrictName tra tên quận/huyện theo id
func (s *Snapshot) DistrictName(id string) (string, bool) {
	for _, d := range s.districts {
		if d.ID == id {
			return d.Name, true
		}
	}
	return "", false
}

func (s *Snapshot) DistrictsByCity(cityID string) []models.District {
	out := []models.District{}
	for _, d := range s.districts {
		if d.CityID == cityID {
			out = append(out, d)
		}
	}
	return out
}

// NewsCategoryName trả về tên danh mục, không có thì trả lại chính id
func (s *Snapshot) NewsCategoryName(id string) string {
	for _, c := range s.newsCategories {
		if c.ID == id {
			return c.Name
		}
	}
	return id
}

// PublishedNews trả về các bài đã xuất bản theo thứ tự mới nhất
func (s *Snapshot) PublishedNews() []models.News {
	out := []models.News{}
	for _, n := range s.news {
		if n.IsPublished {
			out = append(out, n)
		}
	}
	return out
}

// Counts dùng cho dashboard và thông báo realtime
func (s *Snapshot) Counts() map[string]int {
	return map[string]int{
		"properties":      len(s.properties),
		"cities":          len(s.cities),
		"districts":       len(s.districts),
		"news":            len(s.news),
		"news_categories": len(s.newsCategories),
		"pages":           len(s.pages),
		"menu_items":      len(s.menuItems),
	}
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
