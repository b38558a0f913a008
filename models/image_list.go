package models

import (
	"database/sql/driver"
	"encoding/json"
	"log"
	"strings"
)

// ImageList là danh sách URL ảnh, lưu trong DB dưới dạng chuỗi JSON.
// Giá trị rỗng hoặc sai định dạng luôn đọc ra danh sách rỗng.
type ImageList []string

func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *ImageList) Scan(value interface{}) error {
	*l = ParseImageList(value)
	return nil
}

func (ImageList) GormDataType() string {
	return "text"
}

// ParseImageList chuyển giá trị thô (string/[]byte) thành danh sách ảnh
func ParseImageList(raw interface{}) ImageList {
	var text string
	switch v := raw.(type) {
	case string:
		text = v
	case []byte:
		text = string(v)
	default:
		return ImageList{}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return ImageList{}
	}

	var urls []string
	if err := json.Unmarshal([]byte(text), &urls); err != nil {
		log.Printf("Không parse được images: %v", err)
		return ImageList{}
	}
	if urls == nil {
		return ImageList{}
	}
	return ImageList(urls)
}
