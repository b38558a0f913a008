package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestParseStorageObject(t *testing.T) {
	tests := []struct {
		url    string
		bucket string
		object string
		ok     bool
	}{
		{"https://x.supabase.co/storage/v1/object/public/uploads/images/a%20b.jpg?t=1", "uploads", "images/a b.jpg", true},
		{"https://x.supabase.co/storage/v1/object/uploads/images/c.png", "uploads", "images/c.png", true},
		{"https://images.unsplash.com/photo-1.jpg", "", "", false},
		{"https://x.supabase.co/storage/v1/object/public/uploads", "", "", false},
	}
	for _, tt := range tests {
		bucket, object, ok := ParseStorageObject(tt.url)
		if ok != tt.ok || bucket != tt.bucket || object != tt.object {
			t.Errorf("ParseStorageObject(%q) = %q, %q, %v", tt.url, bucket, object, ok)
		}
	}
}

func TestImageObjectPath(t *testing.T) {
	p := ImageObjectPath("Tin Đăng", "Mặt tiền.PNG")
	if !strings.HasPrefix(p, "images/tin-dang/") || !strings.HasSuffix(p, "-mat-tien.png") {
		t.Errorf("ImageObjectPath = %q", p)
	}
	if p := ImageObjectPath("", "a.jpg"); !strings.HasPrefix(p, "images/misc/") {
		t.Errorf("empty folder path = %q", p)
	}
}

func TestDeleteFileFromSupabase(t *testing.T) {
	var gotPath, gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s", r.Method)
		}
		gotPath = r.URL.Path
		gotKey = r.Header.Get("apikey")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	t.Setenv("SUPABASE_URL", srv.URL)
	t.Setenv("SUPABASE_KEY", "service-key")

	err := DeleteFileFromSupabase(srv.URL + "/storage/v1/object/public/uploads/images/listing/a.jpg")
	if err != nil {
		t.Fatalf("DeleteFileFromSupabase: %v", err)
	}
	if gotPath != "/storage/v1/object/uploads/images/listing/a.jpg" {
		t.Errorf("path = %q", gotPath)
	}
	if gotKey != "service-key" {
		t.Errorf("apikey = %q", gotKey)
	}

	// URL không thuộc Supabase: bỏ qua, không gọi API
	gotPath = ""
	if err := DeleteFileFromSupabase("https://images.unsplash.com/photo-1.jpg"); err != nil {
		t.Fatalf("external URL: %v", err)
	}
	if gotPath != "" {
		t.Error("external URL triggered a delete request")
	}
}
