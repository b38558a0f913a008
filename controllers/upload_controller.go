package controllers

import (
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/bds-backend/utils"
)

const maxImageSize = 10 << 20 // 10MB

var allowedImageExt = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".webp": true, ".gif": true,
}

func validateImage(fh *multipart.FileHeader) string {
	if !allowedImageExt[strings.ToLower(filepath.Ext(fh.Filename))] {
		return "Chỉ hỗ trợ ảnh jpg, png, webp, gif: " + fh.Filename
	}
	if fh.Size > maxImageSize {
		return "Ảnh vượt quá 10MB: " + fh.Filename
	}
	return ""
}

// POST /api/admin/uploads/images?folder=properties (multipart "files" hoặc "file")
func UploadImages(c *gin.Context) {
	if !utils.StorageConfigured() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Chưa cấu hình Supabase Storage"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dữ liệu upload không hợp lệ"})
		return
	}
	files := append(form.File["files"], form.File["file"]...)
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file nào được gửi lên"})
		return
	}
	for _, fh := range files {
		if msg := validateImage(fh); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}
	}

	folder := c.DefaultQuery("folder", "properties")
	urls := make([]string, 0, len(files))
	for _, fh := range files {
		url, err := utils.UploadImageToSupabase(fh, folder)
		if err != nil {
			log.Printf("Upload ảnh %s thất bại: %v", fh.Filename, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload ảnh thất bại", "uploaded": urls})
			return
		}
		urls = append(urls, url)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Upload thành công", "urls": urls})
}
