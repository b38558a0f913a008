package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vnkhanh/bds-backend/models"
)

type MoveDirection int

const (
	MoveUp MoveDirection = iota
	MoveDown
)

// ParseMoveDirection nhận "up" hoặc "down"
func ParseMoveDirection(s string) (MoveDirection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return MoveUp, nil
	case "down":
		return MoveDown, nil
	}
	return 0, fmt.Errorf("%w: hướng di chuyển %q", ErrInvalidInput, s)
}

// NormalizeMenuOrder trả về bản sao với Order = vị trí (0..n-1)
func NormalizeMenuOrder(items []models.MenuItem) []models.MenuItem {
	out := slices.Clone(items)
	for i := range out {
		out[i].Order = i
	}
	return out
}

// MoveMenuItem đổi chỗ mục tại index với mục kề bên rồi đánh lại toàn bộ order.
// Vị trí ngoài biên thì không đổi chỗ nhưng vẫn đánh lại order.
func MoveMenuItem(items []models.MenuItem, index int, dir MoveDirection) []models.MenuItem {
	out := slices.Clone(items)
	target := index - 1
	if dir == MoveDown {
		target = index + 1
	}
	if index >= 0 && index < len(out) && target >= 0 && target < len(out) {
		out[index], out[target] = out[target], out[index]
	}
	return NormalizeMenuOrder(out)
}

// SortMenuItems sắp theo order, giữ thứ tự gốc khi trùng
func SortMenuItems(items []models.MenuItem) []models.MenuItem {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b models.MenuItem) int { return a.Order - b.Order })
	return out
}

func prepareMenuItem(m *models.MenuItem) error {
	m.Label = strings.TrimSpace(m.Label)
	m.URL = strings.TrimSpace(m.URL)
	if m.Label == "" || m.URL == "" {
		return fmt.Errorf("%w: label và url là bắt buộc", ErrInvalidInput)
	}
	if m.Icon != "" {
		m.Icon = models.ResolveMenuIcon(string(m.Icon))
	}
	m.Target = models.NormalizeTarget(m.Target)
	return nil
}

// ---- Store: MenuItem ----

// CreateMenuItem thêm mục vào cuối menu
func (s *Store) CreateMenuItem(ctx context.Context, m *models.MenuItem) error {
	if err := prepareMenuItem(m); err != nil {
		return err
	}
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.MenuItem{}).Count(&count).Error; err != nil {
		return err
	}
	m.Order = int(count)
	return s.afterWrite(ctx, s.db.WithContext(ctx).Create(m).Error)
}

func (s *Store) UpdateMenuItem(ctx context.Context, id string, m *models.MenuItem) error {
	if err := prepareMenuItem(m); err != nil {
		return err
	}
	m.ID = id
	res := s.db.WithContext(ctx).Model(&models.MenuItem{}).Where("id = ?", id).
		Select("label", "url", "icon", "target").Updates(m)
	if res.Error == nil && res.RowsAffected == 0 {
		return ErrNotFound
	}
	return s.afterWrite(ctx, res.Error)
}

// DeleteMenuItem xóa mục rồi đánh lại order cho các mục còn lại
func (s *Store) DeleteMenuItem(ctx context.Context, id string) error {
	if err := deleteByID[models.MenuItem](ctx, s.db, id); err != nil {
		return err
	}
	var rest []models.MenuItem
	if err := s.db.WithContext(ctx).Order("sort_order ASC").Find(&rest).Error; err != nil {
		return s.afterWrite(ctx, nil)
	}
	_, err := s.saveMenuItems(ctx, NormalizeMenuOrder(rest))
	_ = s.afterWrite(ctx, nil)
	return err
}

// SaveMenuItems upsert toàn bộ danh sách từng mục một, không rollback.
// Trả về số mục ghi được; khác len(items) nghĩa là có mục lỗi (gộp trong err).
func (s *Store) SaveMenuItems(ctx context.Context, items []models.MenuItem) (int, error) {
	saved, err := s.saveMenuItems(ctx, items)
	s.Refresh(ctx)
	return saved, err
}

func (s *Store) saveMenuItems(ctx context.Context, items []models.MenuItem) (int, error) {
	saved := 0
	var errs []error
	for i := range items {
		item := items[i]
		if err := prepareMenuItem(&item); err != nil {
			errs = append(errs, fmt.Errorf("mục %d: %w", i, err))
			continue
		}
		err := s.db.WithContext(ctx).
			Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, UpdateAll: true}).
			Create(&item).Error
		if err != nil {
			errs = append(errs, fmt.Errorf("mục %q: %w", item.ID, err))
			continue
		}
		saved++
	}
	return saved, errors.Join(errs...)
}

// MoveMenuItemByID di chuyển mục theo id trên danh sách hiện có trong DB rồi lưu lại cả danh sách
func (s *Store) MoveMenuItemByID(ctx context.Context, id string, dir MoveDirection) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := s.db.WithContext(ctx).Order("sort_order ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	index := slices.IndexFunc(items, func(m models.MenuItem) bool { return m.ID == id })
	if index < 0 {
		return nil, ErrNotFound
	}
	moved := MoveMenuItem(items, index, dir)
	saved, err := s.SaveMenuItems(ctx, moved)
	if err != nil {
		return moved, fmt.Errorf("chỉ lưu được %d/%d mục: %w", saved, len(moved), err)
	}
	return moved, nil
}

// ReplaceMenuItems xóa menu hiện tại và ghi danh sách mới (khôi phục mặc định)
func (s *Store) ReplaceMenuItems(ctx context.Context, items []models.MenuItem) error {
	items = NormalizeMenuOrder(items)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.MenuItem{}).Error; err != nil {
			return err
		}
		for i := range items {
			if err := prepareMenuItem(&items[i]); err != nil {
				return err
			}
			items[i].ID = ""
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
	return s.afterWrite(ctx, err)
}
