package services

import (
	"context"
	"html"
	"regexp"
	"strings"
)

var (
	reScriptStyle  = regexp.MustCompile(`(?is)<(script|style)[^>]*>.*?</(script|style)>`)
	reBlockTag     = regexp.MustCompile(`(?i)</?(p|div|br|li|ul|ol|h[1-6]|tr|table|blockquote)[^>]*>`)
	reAnyTag       = regexp.MustCompile(`<[^>]+>`)
	reSpaces       = regexp.MustCompile(`[ \t\f\r]+`)
	reMultiNewLine = regexp.MustCompile(`\n\s*\n+`)
)

// PlainText chuyển nội dung HTML (mô tả tin đăng, bài viết) thành văn bản thuần
func PlainText(content string) string {
	cleaned := reScriptStyle.ReplaceAllString(content, "")

	// Thẻ khối thành xuống dòng, các thẻ còn lại bỏ hẳn
	cleaned = reBlockTag.ReplaceAllString(cleaned, "\n")
	cleaned = reAnyTag.ReplaceAllString(cleaned, "")
	cleaned = html.UnescapeString(cleaned)

	cleaned = reSpaces.ReplaceAllString(cleaned, " ")
	lines := strings.Split(cleaned, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	cleaned = strings.Join(lines, "\n")
	cleaned = reMultiNewLine.ReplaceAllString(cleaned, "\n")

	return strings.TrimSpace(cleaned)
}

// Excerpt lấy tối đa n ký tự đầu của văn bản thuần, cắt ở khoảng trắng gần nhất
func Excerpt(content string, n int) string {
	text := strings.Join(strings.Fields(PlainText(content)), " ")
	r := []rune(text)
	if len(r) <= n {
		return text
	}
	cut := string(r[:n])
	if i := strings.LastIndex(cut, " "); i > n/2 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;:") + "..."
}

// SummaryText nhờ Gemini tóm tắt bài viết thành đoạn mô tả ngắn
func SummaryText(ctx context.Context, content string) (string, error) {
	prompt := `Bạn là biên tập viên tin tức bất động sản, hãy tóm tắt bài viết sau thành một đoạn văn ngắn (tối đa 2 câu)
	Yêu cầu:
	1. Không tự ý thêm thông tin không có trong bài viết
	2. Ngôn ngữ tự nhiên, rõ ràng
	3. KHÔNG sử dụng markdown, chỉ trả về văn bản thuần tuý
	4. Trả về JSON dạng {"summary": "..."}
	Bài viết:`

	fullPrompt := prompt + "\n\n" + truncateRunes(PlainText(content), 4000)

	text, err := GeminiGenerateText(ctx, fullPrompt)
	if err != nil {
		return "", err
	}
	return parseSummary(text)
}
