package utils

import (
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/vnkhanh/bds-backend/models"
)

// CleanupOrphanDistricts xóa các quận/huyện không còn thành phố cha
// (xóa thành phố từ ngoài trang quản trị không kéo theo quận/huyện).
func CleanupOrphanDistricts(db *gorm.DB) (int64, error) {
	result := db.Where("city_id NOT IN (?)", db.Model(&models.City{}).Select("id")).
		Delete(&models.District{})
	if result.Error != nil {
		log.Printf("Lỗi khi dọn quận/huyện mồ côi: %v", result.Error)
		return 0, result.Error
	}

	if result.RowsAffected > 0 {
		log.Printf("Đã xóa %d quận/huyện không còn thành phố", result.RowsAffected)
	}
	return result.RowsAffected, nil
}

// StartCleanupJob chạy cleanup job định kỳ, onCleaned được gọi khi có bản ghi bị xóa
func StartCleanupJob(db *gorm.DB, interval time.Duration, onCleaned func()) {
	run := func() {
		if n, err := CleanupOrphanDistricts(db); err == nil && n > 0 && onCleaned != nil {
			onCleaned()
		}
	}

	log.Println("Đang chạy cleanup lần đầu...")
	run()

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for range ticker.C {
			run()
		}
	}()

	log.Printf("Cleanup job đã được khởi động (chạy mỗi %s)", interval)
}
