package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleAdmin UserRole = "admin" // Quản trị hệ thống
	RoleUser  UserRole = "user"  // Thành viên
	RoleGuest UserRole = "guest" // Khách
)

// ValidRole kiểm tra role có nằm trong danh sách hỗ trợ
func ValidRole(role UserRole) bool {
	switch role {
	case RoleAdmin, RoleUser, RoleGuest:
		return true
	}
	return false
}

type User struct {
	ID       string `gorm:"type:varchar(36);primaryKey" json:"id"`
	Username string `gorm:"size:100;uniqueIndex;not null" json:"username"`
	// Password là bcrypt hash, không bao giờ trả ra JSON
	Password  string    `gorm:"type:text;not null" json:"-"`
	Name      string    `gorm:"size:150" json:"name"`
	Email     string    `gorm:"size:150" json:"email,omitempty"`
	Role      UserRole  `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
