package services

import "errors"

var (
	ErrNotFound      = errors.New("không tìm thấy dữ liệu")
	ErrInvalidInput  = errors.New("dữ liệu không hợp lệ")
	ErrDuplicateSlug = errors.New("slug đã tồn tại")
	// ErrAppearanceConfig: cấu hình cơ bản đã lưu nhưng câu UPDATE giao diện lỗi
	ErrAppearanceConfig = errors.New("lỗi cập nhật cấu hình giao diện")
)
