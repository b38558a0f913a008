package services

import (
	"context"
	"errors"
	"testing"

	"github.com/vnkhanh/bds-backend/models"
)

func TestPlainText(t *testing.T) {
	in := `<h2>Vị trí</h2><p>Gần chợ &amp; trường học.</p><script>alert(1)</script><ul><li>Sổ hồng</li><li>Hẻm   xe hơi</li></ul>`
	want := "Vị trí\nGần chợ & trường học.\nSổ hồng\nHẻm xe hơi"
	if got := PlainText(in); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestExcerpt(t *testing.T) {
	if got := Excerpt("<p>Ngắn gọn</p>", 50); got != "Ngắn gọn" {
		t.Errorf("got %q", got)
	}
	got := Excerpt("<p>Căn hộ cao cấp view sông thoáng mát</p>", 20)
	if got != "Căn hộ cao cấp view..." {
		t.Errorf("got %q", got)
	}
}

func TestParseSEOSuggestion(t *testing.T) {
	text := "```json\n{\"seo_title\": \" Bán nhà Quận 1 \", \"seo_description\": \"Nhà đẹp\", \"seo_keywords\": \"nhà, quận 1\"}\n```"
	s, err := parseSEOSuggestion(text)
	if err != nil {
		t.Fatal(err)
	}
	if s.SeoTitle != "Bán nhà Quận 1" || s.SeoKeywords != "nhà, quận 1" {
		t.Errorf("got %+v", s)
	}

	for _, bad := range []string{"xin lỗi", `{"seo_title": ""}`} {
		if _, err := parseSEOSuggestion(bad); err == nil {
			t.Errorf("%q: expected error", bad)
		}
	}
}

func TestParseSummary(t *testing.T) {
	if s, err := parseSummary(`Đây là kết quả: {"summary": "Giá đất tăng nhẹ."}`); err != nil || s != "Giá đất tăng nhẹ." {
		t.Errorf("got %q, %v", s, err)
	}
}

func TestSuggestSEOWithoutKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	if _, err := SuggestSEO(context.Background(), models.Property{Title: "x"}); !errors.Is(err, ErrGeminiDisabled) {
		t.Fatalf("err = %v", err)
	}
}
