package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vnkhanh/bds-backend/models"
)

// Các cột được phép sửa qua form cấu hình
var systemConfigTextColumns = map[string]bool{
	"site_title":           true,
	"site_description":     true,
	"site_keywords":        true,
	"og_image":             true,
	"header_title":         true,
	"logo_url":             true,
	"favicon_url":          true,
	"footer_about":         true,
	"footer_address":       true,
	"footer_email":         true,
	"footer_phone":         true,
	"social_facebook":      true,
	"social_zalo":          true,
	"social_youtube":       true,
	"default_contact_name": true,
}

var systemConfigIntColumns = map[string]bool{
	"posts_per_page":      true,
	"related_posts_limit": true,
}

const (
	colDefaultViewMode = "default_view_mode"
	colGridColumns     = "grid_columns"
	maxGridColumns     = 4
)

// toInt nhận số JSON (float64), chuỗi số hoặc int
func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		return i, err == nil
	}
	return 0, false
}

// splitConfigPatch tách patch thành phần cột thường và hai trường giao diện
func splitConfigPatch(patch map[string]interface{}) (base map[string]interface{}, viewMode *string, gridCols *int, err error) {
	base = map[string]interface{}{}
	for key, raw := range patch {
		switch {
		case systemConfigTextColumns[key]:
			if raw == nil {
				base[key] = ""
				continue
			}
			str, ok := raw.(string)
			if !ok {
				return nil, nil, nil, fmt.Errorf("%w: %s phải là chuỗi", ErrInvalidInput, key)
			}
			base[key] = strings.TrimSpace(str)
		case systemConfigIntColumns[key]:
			n, ok := toInt(raw)
			if !ok || n <= 0 {
				return nil, nil, nil, fmt.Errorf("%w: %s phải là số nguyên dương", ErrInvalidInput, key)
			}
			base[key] = n
		case key == colDefaultViewMode:
			str, _ := raw.(string)
			if str != models.ViewModeList && str != models.ViewModeGrid {
				return nil, nil, nil, fmt.Errorf("%w: default_view_mode chỉ nhận list hoặc grid", ErrInvalidInput)
			}
			viewMode = &str
		case key == colGridColumns:
			n, ok := toInt(raw)
			if !ok || n < 1 || n > maxGridColumns {
				return nil, nil, nil, fmt.Errorf("%w: grid_columns phải từ 1 đến %d", ErrInvalidInput, maxGridColumns)
			}
			gridCols = &n
		}
		// key lạ bị bỏ qua
	}
	return base, viewMode, gridCols, nil
}

// UpsertSystemConfig lưu cấu hình "global": tạo bản ghi nếu chưa có, cập nhật các cột thường,
// sau đó ghi default_view_mode/grid_columns bằng câu UPDATE thô.
// Nếu chỉ câu UPDATE thô lỗi thì phần cơ bản vẫn được giữ và trả về ErrAppearanceConfig.
func (s *Store) UpsertSystemConfig(ctx context.Context, patch map[string]interface{}) (models.SystemConfig, error) {
	base, viewMode, gridCols, err := splitConfigPatch(patch)
	if err != nil {
		return models.SystemConfig{}, err
	}
	db := s.db.WithContext(ctx)

	seed := models.DefaultSystemConfig()
	err = db.Omit(colDefaultViewMode, colGridColumns).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&seed).Error
	if err != nil {
		return models.SystemConfig{}, fmt.Errorf("không thể khởi tạo cấu hình: %w", err)
	}

	if len(base) > 0 {
		if err := db.Model(&models.SystemConfig{}).Where("id = ?", models.SystemConfigID).Updates(base).Error; err != nil {
			return models.SystemConfig{}, fmt.Errorf("không thể lưu cấu hình: %w", err)
		}
	}

	var appearanceErr error
	if viewMode != nil || gridCols != nil {
		appearanceErr = s.updateAppearance(ctx, viewMode, gridCols)
	}

	snap := s.Refresh(ctx)
	return snap.Config(), appearanceErr
}

func (s *Store) updateAppearance(ctx context.Context, viewMode *string, gridCols *int) error {
	db := s.db.WithContext(ctx)

	var current models.SystemConfig
	if err := db.First(&current, "id = ?", models.SystemConfigID).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Không đọc được cấu hình giao diện hiện tại: %v", err)
	}
	current = current.WithDefaults()

	mode := current.DefaultViewMode
	if viewMode != nil {
		mode = *viewMode
	}
	cols := current.GridColumns
	if gridCols != nil {
		cols = *gridCols
	}

	err := db.Exec("UPDATE system_configs SET default_view_mode = ?, grid_columns = ? WHERE id = ?",
		mode, cols, models.SystemConfigID).Error
	if err != nil {
		log.Printf("Lỗi UPDATE cấu hình giao diện: %v", err)
		return fmt.Errorf("%w: %v", ErrAppearanceConfig, err)
	}
	return nil
}
