package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type News struct {
	ID        string `gorm:"type:varchar(36);primaryKey" json:"id"`
	Title     string `gorm:"size:255;not null" json:"title"`
	Slug      string `gorm:"size:255;index" json:"slug,omitempty"`
	Summary   string `gorm:"type:text" json:"summary"`
	Content   string `gorm:"type:text" json:"content"`
	Thumbnail string `gorm:"type:text" json:"thumbnail"`
	// CategoryID không ràng buộc khoá ngoại
	CategoryID  string `gorm:"size:100;index" json:"category_id"`
	Author      string `gorm:"size:150" json:"author"`
	IsPublished bool   `gorm:"default:false" json:"is_published"`

	SeoTitle       string `gorm:"size:255" json:"seo_title,omitempty"`
	SeoDescription string `gorm:"type:text" json:"seo_description,omitempty"`
	SeoKeywords    string `gorm:"size:500" json:"seo_keywords,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (n *News) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}
