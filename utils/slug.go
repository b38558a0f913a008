package utils

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"github.com/gosimple/slug"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	reSlugInvalid    = regexp.MustCompile(`[^0-9a-z\-\s]`)
	reSlugWhitespace = regexp.MustCompile(`\s+`)
	reSlugDashes     = regexp.MustCompile(`-+`)
	dReplacer        = strings.NewReplacer("đ", "d", "Đ", "d")
)

// Slugify chuyển tiêu đề tiếng Việt thành slug: "Nhà Đất Quận 1" -> "nha-dat-quan-1".
// Không kiểm tra trùng lặp.
func Slugify(title string) string {
	// NBSP và các khoảng trắng Unicode khác coi như dấu cách
	s := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}
		return r
	}, strings.ToLower(title))

	// Tách dấu rồi bỏ các ký tự dấu kết hợp
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if stripped, _, err := transform.String(t, s); err == nil {
		s = stripped
	}

	s = dReplacer.Replace(s)
	s = reSlugInvalid.ReplaceAllString(s, "")
	s = reSlugWhitespace.ReplaceAllString(s, "-")
	s = reSlugDashes.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// SafeObjectName tạo tên file an toàn cho storage, giữ nguyên phần mở rộng
func SafeObjectName(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	base := slug.Make(strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)))
	if base == "" {
		base = "file"
	}
	return base + ext
}
