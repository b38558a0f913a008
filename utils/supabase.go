package utils

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/google/uuid"
	storage "github.com/supabase-community/storage-go"
)

const storageObjectPrefix = "/storage/v1/object/"

func supabaseBucket() string {
	if b := os.Getenv("SUPABASE_BUCKET"); b != "" {
		return b
	}
	return "uploads"
}

// StorageConfigured cho biết đã cấu hình Supabase Storage hay chưa
func StorageConfigured() bool {
	return os.Getenv("SUPABASE_URL") != "" && os.Getenv("SUPABASE_KEY") != ""
}

// ImageObjectPath trả về đường dẫn object trong bucket: images/<folder>/<id>-<tên>.<ext>
func ImageObjectPath(folder, filename string) string {
	folder = Slugify(folder)
	if folder == "" {
		folder = "misc"
	}
	return fmt.Sprintf("images/%s/%s-%s", folder, uuid.NewString()[:8], SafeObjectName(filename))
}

// PublicObjectURL dựng URL công khai của object
func PublicObjectURL(supabaseURL, bucket, objectPath string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", strings.TrimRight(supabaseURL, "/"), bucket, objectPath)
}

// UploadImageToSupabase uploads an image (e.g. .jpg, .png) to Supabase Storage
// Path: <bucket>/images/<folder>/<id>-<name>.<ext>
func UploadImageToSupabase(fileHeader *multipart.FileHeader, folder string) (string, error) {
	supabaseURL := os.Getenv("SUPABASE_URL")
	supabaseKey := os.Getenv("SUPABASE_KEY")
	if supabaseURL == "" || supabaseKey == "" {
		return "", fmt.Errorf("SUPABASE_URL hoặc SUPABASE_KEY chưa cấu hình")
	}

	storageClient := storage.NewClient(strings.TrimRight(supabaseURL, "/")+"/storage/v1", supabaseKey, nil)

	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		return "", err
	}

	objectPath := ImageObjectPath(folder, fileHeader.Filename)
	contentType := fileHeader.Header.Get("Content-Type")
	options := storage.FileOptions{
		ContentType: &contentType,
	}

	bucket := supabaseBucket()
	if _, err = storageClient.UploadFile(bucket, objectPath, &buf, options); err != nil {
		return "", err
	}

	return PublicObjectURL(supabaseURL, bucket, objectPath), nil
}

// ParseStorageObject tách bucket/object từ public URL của Supabase Storage
func ParseStorageObject(publicURL string) (bucket, object string, ok bool) {
	idx := strings.Index(publicURL, storageObjectPrefix)
	if idx == -1 {
		return "", "", false
	}

	rest := publicURL[idx+len(storageObjectPrefix):]
	rest = strings.TrimPrefix(rest, "public/")

	parts := strings.SplitN(rest, "/", 2)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	bucket, object = parts[0], parts[1]
	if qIdx := strings.Index(object, "?"); qIdx != -1 {
		object = object[:qIdx]
	}
	if u, err := url.PathUnescape(object); err == nil {
		object = u
	}
	return bucket, object, true
}

// DeleteFileFromSupabase nhận public URL chứa "/storage/v1/object/"
// và gọi API Supabase Storage để xóa object. URL ngoài Supabase được bỏ qua.
func DeleteFileFromSupabase(publicURL string) error {
	bucket, object, ok := ParseStorageObject(publicURL)
	if !ok {
		return nil
	}

	supabaseURL := os.Getenv("SUPABASE_URL")
	supabaseKey := os.Getenv("SUPABASE_KEY")
	if supabaseURL == "" || supabaseKey == "" {
		return fmt.Errorf("SUPABASE_URL hoặc SUPABASE_KEY chưa cấu hình")
	}

	deleteURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", strings.TrimRight(supabaseURL, "/"), bucket, object)

	req, err := http.NewRequest(http.MethodDelete, deleteURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+supabaseKey)
	req.Header.Set("apikey", supabaseKey)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	// Supabase trả 200 hoặc 204 khi xóa thành công
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("xóa file Supabase thất bại: status=%d body=%s", resp.StatusCode, string(body))
	}
	return nil
}
