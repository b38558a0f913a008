package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type City struct {
	ID   string `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name string `gorm:"size:150;not null" json:"name"`
}

type District struct {
	ID     string `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name   string `gorm:"size:150;not null" json:"name"`
	CityID string `gorm:"type:varchar(36);index;not null" json:"city_id"`
}

func (c *City) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

func (d *District) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
