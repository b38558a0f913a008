package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Đơn vị giá của tin đăng
const (
	CurrencyBillion         = "Tỷ"
	CurrencyMillion         = "Triệu"
	CurrencyMillionPerM2    = "Triệu/m2"
	CurrencyMillionPerMonth = "Triệu/tháng"
)

type PropertyType string

const (
	PropertySale PropertyType = "sale" // Mua bán
	PropertyRent PropertyType = "rent" // Cho thuê
)

type PropertyCategory string

const (
	CategoryHouse     PropertyCategory = "house"
	CategoryApartment PropertyCategory = "apartment"
	CategoryLand      PropertyCategory = "land"
	CategoryOffice    PropertyCategory = "office"
)

// Currencies liệt kê các đơn vị giá hợp lệ
var Currencies = []string{CurrencyBillion, CurrencyMillion, CurrencyMillionPerM2, CurrencyMillionPerMonth}

type Property struct {
	ID       string  `gorm:"type:varchar(36);primaryKey" json:"id"`
	Title    string  `gorm:"size:255;not null" json:"title"`
	Price    float64 `gorm:"not null" json:"price"`
	Currency string  `gorm:"size:30;not null;default:'Tỷ'" json:"currency"`
	Area     float64 `json:"area"`
	Address  string  `gorm:"size:500" json:"address"`
	// City lưu tên thành phố (chuỗi tự do), không phải khoá ngoại
	City        string    `gorm:"size:150;index" json:"city"`
	Type        string    `gorm:"size:20;index" json:"type"`
	Category    string    `gorm:"size:30;index" json:"category"`
	Description string    `gorm:"type:text" json:"description"`
	Images      ImageList `gorm:"type:text" json:"images"`
	Bedrooms    *int      `json:"bedrooms,omitempty"`
	Bathrooms   *int      `json:"bathrooms,omitempty"`

	ContactName  string `gorm:"size:150" json:"contact_name"`
	ContactPhone string `gorm:"size:30" json:"contact_phone"`
	ContactEmail string `gorm:"size:150" json:"contact_email,omitempty"`
	YoutubeURL   string `gorm:"size:500" json:"youtube_url,omitempty"`

	SeoTitle       string `gorm:"size:255" json:"seo_title,omitempty"`
	SeoDescription string `gorm:"type:text" json:"seo_description,omitempty"`
	SeoKeywords    string `gorm:"size:500" json:"seo_keywords,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Images == nil {
		p.Images = ImageList{}
	}
	return nil
}
