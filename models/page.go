package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Page là trang nội dung tĩnh (giới thiệu, liên hệ...), truy cập theo slug
type Page struct {
	ID          string `gorm:"type:varchar(36);primaryKey" json:"id"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Slug        string `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Content     string `gorm:"type:text" json:"content"`
	IsPublished bool   `gorm:"default:false" json:"is_published"`

	SeoTitle       string `gorm:"size:255" json:"seo_title,omitempty"`
	SeoDescription string `gorm:"type:text" json:"seo_description,omitempty"`
	SeoKeywords    string `gorm:"size:500" json:"seo_keywords,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (p *Page) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
