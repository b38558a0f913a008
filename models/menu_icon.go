package models

import "strings"

// MenuIcon là tên icon được hỗ trợ cho menu điều hướng
type MenuIcon string

const (
	IconHome       MenuIcon = "Home"
	IconTag        MenuIcon = "Tag"
	IconKey        MenuIcon = "Key"
	IconNewspaper  MenuIcon = "Newspaper"
	IconFileText   MenuIcon = "FileText"
	IconBuilding   MenuIcon = "Building"
	IconBuilding2  MenuIcon = "Building2"
	IconMapPin     MenuIcon = "MapPin"
	IconPhone      MenuIcon = "Phone"
	IconMail       MenuIcon = "Mail"
	IconInfo       MenuIcon = "Info"
	IconUsers      MenuIcon = "Users"
	IconBriefcase  MenuIcon = "Briefcase"
	IconLandmark   MenuIcon = "Landmark"
	IconStar       MenuIcon = "Star"
	IconLink       MenuIcon = "Link"
	IconHelpCircle MenuIcon = "HelpCircle"
)

// FallbackMenuIcon dùng khi tên icon không nằm trong danh sách hỗ trợ
const FallbackMenuIcon = IconHelpCircle

var menuIcons = map[string]MenuIcon{}

func init() {
	for _, icon := range SupportedMenuIcons() {
		menuIcons[strings.ToLower(string(icon))] = icon
	}
}

// SupportedMenuIcons liệt kê icon theo thứ tự hiển thị trong trang quản trị
func SupportedMenuIcons() []MenuIcon {
	return []MenuIcon{
		IconHome, IconTag, IconKey, IconNewspaper, IconFileText,
		IconBuilding, IconBuilding2, IconMapPin, IconPhone, IconMail,
		IconInfo, IconUsers, IconBriefcase, IconLandmark, IconStar,
		IconLink, IconHelpCircle,
	}
}

// ResolveMenuIcon tra bảng icon tĩnh (không phân biệt hoa thường)
func ResolveMenuIcon(name string) MenuIcon {
	if icon, ok := menuIcons[strings.ToLower(strings.TrimSpace(name))]; ok {
		return icon
	}
	return FallbackMenuIcon
}
