package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/vnkhanh/bds-backend/models"
)

var ErrGeminiDisabled = errors.New("chưa cấu hình GEMINI_API_KEY")

func geminiModel() string {
	if m := os.Getenv("GEMINI_MODEL"); m != "" {
		return m
	}
	return "gemini-2.0-flash"
}

// Hàm gọn để xử lý prompt và trả kết quả từ Gemini
func GeminiGenerateText(ctx context.Context, prompt string) (string, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return "", ErrGeminiDisabled
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return "", fmt.Errorf("không thể tạo Gemini client: %v", err)
	}
	defer client.Close()

	model := client.GenerativeModel(geminiModel())
	model.ResponseMIMEType = "application/json"
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("lỗi Gemini xử lý: %v", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini không trả kết quả hợp lệ")
	}
	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

// SEOSuggestion là các trường SEO gợi ý cho tin đăng
type SEOSuggestion struct {
	SeoTitle       string `json:"seo_title"`
	SeoDescription string `json:"seo_description"`
	SeoKeywords    string `json:"seo_keywords"`
}

func buildSEOPrompt(p models.Property) string {
	var b strings.Builder
	b.WriteString("Bạn là chuyên gia SEO bất động sản Việt Nam. ")
	b.WriteString("Hãy đề xuất tiêu đề SEO (tối đa 60 ký tự), mô tả SEO (tối đa 160 ký tự) ")
	b.WriteString("và từ khóa (phân tách bằng dấu phẩy) cho tin đăng sau. ")
	b.WriteString(`Chỉ trả về JSON dạng {"seo_title": "...", "seo_description": "...", "seo_keywords": "..."}.`)
	fmt.Fprintf(&b, "\nTiêu đề: %s\nGiá: %g %s\nDiện tích: %g m2\nĐịa chỉ: %s, %s\nLoại: %s / %s\nMô tả: %s\n",
		p.Title, p.Price, p.Currency, p.Area, p.Address, p.City, p.Type, p.Category, truncateRunes(PlainText(p.Description), 1500))
	return b.String()
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// stripFence bỏ rào ```json mà model đôi khi bọc quanh câu trả lời
func stripFence(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	if start, end := strings.Index(text, "{"), strings.LastIndex(text, "}"); start >= 0 && end > start {
		text = text[start : end+1]
	}
	return text
}

func parseSummary(text string) (string, error) {
	var out struct {
		Summary string `json:"summary"`
	}
	if err := json.Unmarshal([]byte(stripFence(text)), &out); err != nil {
		return "", fmt.Errorf("không đọc được tóm tắt: %w", err)
	}
	if strings.TrimSpace(out.Summary) == "" {
		return "", fmt.Errorf("gemini trả tóm tắt rỗng")
	}
	return strings.TrimSpace(out.Summary), nil
}

// parseSEOSuggestion đọc JSON từ câu trả lời của model
func parseSEOSuggestion(text string) (SEOSuggestion, error) {
	var s SEOSuggestion
	if err := json.Unmarshal([]byte(stripFence(text)), &s); err != nil {
		return SEOSuggestion{}, fmt.Errorf("không đọc được gợi ý SEO: %w", err)
	}
	s.SeoTitle = strings.TrimSpace(s.SeoTitle)
	s.SeoDescription = strings.TrimSpace(s.SeoDescription)
	s.SeoKeywords = strings.TrimSpace(s.SeoKeywords)
	if s.SeoTitle == "" && s.SeoDescription == "" {
		return SEOSuggestion{}, fmt.Errorf("gemini trả gợi ý SEO rỗng")
	}
	return s, nil
}

// SuggestSEO nhờ Gemini gợi ý trường SEO cho tin đăng
func SuggestSEO(ctx context.Context, p models.Property) (SEOSuggestion, error) {
	text, err := GeminiGenerateText(ctx, buildSEOPrompt(p))
	if err != nil {
		return SEOSuggestion{}, err
	}
	return parseSEOSuggestion(text)
}
