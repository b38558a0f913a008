package models

import "time"

// SystemConfigID là khoá cố định của bản ghi cấu hình duy nhất
const SystemConfigID = "global"

const (
	ViewModeList = "list"
	ViewModeGrid = "grid"
)

const (
	DefaultPostsPerPage      = 6
	DefaultRelatedPostsLimit = 3
	DefaultGridColumns       = 2
)

type SystemConfig struct {
	ID                string `gorm:"type:varchar(36);primaryKey" json:"id"`
	PostsPerPage      int    `gorm:"default:6" json:"posts_per_page"`
	RelatedPostsLimit int    `gorm:"default:3" json:"related_posts_limit"`

	SiteTitle       string `gorm:"size:255" json:"site_title,omitempty"`
	SiteDescription string `gorm:"type:text" json:"site_description,omitempty"`
	SiteKeywords    string `gorm:"size:500" json:"site_keywords,omitempty"`
	OgImage         string `gorm:"type:text" json:"og_image,omitempty"`

	HeaderTitle string `gorm:"size:255" json:"header_title,omitempty"`
	LogoURL     string `gorm:"type:text" json:"logo_url,omitempty"`
	FaviconURL  string `gorm:"type:text" json:"favicon_url,omitempty"`

	FooterAbout   string `gorm:"type:text" json:"footer_about,omitempty"`
	FooterAddress string `gorm:"size:255" json:"footer_address,omitempty"`
	FooterEmail   string `gorm:"size:150" json:"footer_email,omitempty"`
	FooterPhone   string `gorm:"size:50" json:"footer_phone,omitempty"`

	SocialFacebook     string `gorm:"size:255" json:"social_facebook,omitempty"`
	SocialZalo         string `gorm:"size:255" json:"social_zalo,omitempty"`
	SocialYoutube      string `gorm:"size:255" json:"social_youtube,omitempty"`
	DefaultContactName string `gorm:"size:150" json:"default_contact_name,omitempty"`

	// Hai trường giao diện được ghi bằng câu UPDATE riêng
	DefaultViewMode string `gorm:"size:10;default:'list'" json:"default_view_mode"`
	GridColumns     int    `gorm:"default:2" json:"grid_columns"`

	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// DefaultSystemConfig là cấu hình dùng khi DB chưa có bản ghi "global"
func DefaultSystemConfig() SystemConfig {
	return SystemConfig{
		ID:                SystemConfigID,
		PostsPerPage:      DefaultPostsPerPage,
		RelatedPostsLimit: DefaultRelatedPostsLimit,
		SiteTitle:         "Bất Động Sản - Mua bán nhà đất uy tín",
		SiteDescription:   "Cổng thông tin bất động sản hàng đầu.",
		HeaderTitle:       "Bất Động Sản",
		FooterAbout:       "Nền tảng kết nối mua bán bất động sản uy tín.",
		FooterAddress:     "TP.HCM",
		FooterEmail:       "contact@bds.com",
		FooterPhone:       "0909 000 999",
		DefaultViewMode:   ViewModeList,
		GridColumns:       DefaultGridColumns,
	}
}

// WithDefaults lấp các giá trị số/giao diện bị thiếu
func (c SystemConfig) WithDefaults() SystemConfig {
	if c.ID == "" {
		c.ID = SystemConfigID
	}
	if c.PostsPerPage <= 0 {
		c.PostsPerPage = DefaultPostsPerPage
	}
	if c.RelatedPostsLimit <= 0 {
		c.RelatedPostsLimit = DefaultRelatedPostsLimit
	}
	if c.DefaultViewMode != ViewModeGrid {
		c.DefaultViewMode = ViewModeList
	}
	if c.GridColumns <= 0 {
		c.GridColumns = DefaultGridColumns
	}
	return c
}
