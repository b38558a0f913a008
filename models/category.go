package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewsCategory là danh mục tin tức. ID có thể là slug (vd: "thi-truong").
type NewsCategory struct {
	ID          string    `gorm:"type:varchar(100);primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (c *NewsCategory) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
