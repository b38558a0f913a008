package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TargetSelf  = "_self"
	TargetBlank = "_blank"
)

type MenuItem struct {
	ID    string   `gorm:"type:varchar(36);primaryKey" json:"id"`
	Label string   `gorm:"size:150;not null" json:"label"`
	URL   string   `gorm:"size:500;not null" json:"url"`
	Icon  MenuIcon `gorm:"size:50" json:"icon,omitempty"`
	// Thứ tự hiển thị, luôn liên tục 0..n-1 sau mỗi lần sắp xếp
	Order  int    `gorm:"column:sort_order;not null;default:0;index" json:"order"`
	Target string `gorm:"size:10;default:'_self'" json:"target"`
}

func (m *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// DefaultMenuItems là menu khởi tạo mặc định
func DefaultMenuItems() []MenuItem {
	return []MenuItem{
		{Label: "Trang chủ", URL: "/", Icon: IconHome, Order: 0, Target: TargetSelf},
		{Label: "Mua bán", URL: "/listings", Icon: IconTag, Order: 1, Target: TargetSelf},
		{Label: "Cho thuê", URL: "/listings?type=rent", Icon: IconKey, Order: 2, Target: TargetSelf},
		{Label: "Tin tức", URL: "/news", Icon: IconNewspaper, Order: 3, Target: TargetSelf},
	}
}

// NormalizeTarget trả về "_blank" hoặc "_self"
func NormalizeTarget(target string) string {
	if target == TargetBlank {
		return TargetBlank
	}
	return TargetSelf
}
