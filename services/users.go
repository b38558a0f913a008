package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/vnkhanh/bds-backend/models"
	"github.com/vnkhanh/bds-backend/utils"
)

// UserInput là dữ liệu tạo/sửa tài khoản; Password rỗng khi sửa nghĩa là giữ nguyên
type UserInput struct {
	Username string          `json:"username"`
	Password string          `json:"password"`
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Role     models.UserRole `json:"role"`
}

func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&users).Error
	return users, err
}

func (s *Store) FindUser(ctx context.Context, id string) (*models.User, error) {
	return findByID[models.User](ctx, s.db, id)
}

func (s *Store) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).Where("username = ?", strings.TrimSpace(username)).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Store) usernameTaken(ctx context.Context, username, exceptID string) (bool, error) {
	var count int64
	q := s.db.WithContext(ctx).Model(&models.User{}).Where("username = ?", username)
	if exceptID != "" {
		q = q.Where("id <> ?", exceptID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (s *Store) CreateUser(ctx context.Context, in UserInput) (*models.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	if in.Username == "" {
		return nil, fmt.Errorf("%w: username là bắt buộc", ErrInvalidInput)
	}
	if len(in.Password) < utils.MinPasswordLength {
		return nil, fmt.Errorf("%w: mật khẩu tối thiểu %d ký tự", ErrInvalidInput, utils.MinPasswordLength)
	}
	if in.Role == "" {
		in.Role = models.RoleUser
	}
	if !models.ValidRole(in.Role) {
		return nil, fmt.Errorf("%w: role %q", ErrInvalidInput, in.Role)
	}
	taken, err := s.usernameTaken(ctx, in.Username, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: username đã tồn tại", ErrInvalidInput)
	}

	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u := &models.User{
		Username: in.Username,
		Password: hashed,
		Name:     strings.TrimSpace(in.Name),
		Email:    strings.TrimSpace(in.Email),
		Role:     in.Role,
	}
	if err := s.db.WithContext(ctx).Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Store) UpdateUser(ctx context.Context, id string, in UserInput) (*models.User, error) {
	u, err := s.FindUser(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"name":  strings.TrimSpace(in.Name),
		"email": strings.TrimSpace(in.Email),
	}
	if username := strings.TrimSpace(in.Username); username != "" && username != u.Username {
		taken, err := s.usernameTaken(ctx, username, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, fmt.Errorf("%w: username đã tồn tại", ErrInvalidInput)
		}
		updates["username"] = username
	}
	if in.Role != "" {
		if !models.ValidRole(in.Role) {
			return nil, fmt.Errorf("%w: role %q", ErrInvalidInput, in.Role)
		}
		updates["role"] = in.Role
	}
	if in.Password != "" {
		if len(in.Password) < utils.MinPasswordLength {
			return nil, fmt.Errorf("%w: mật khẩu tối thiểu %d ký tự", ErrInvalidInput, utils.MinPasswordLength)
		}
		hashed, err := utils.HashPassword(in.Password)
		if err != nil {
			return nil, err
		}
		updates["password"] = hashed
	}

	if err := s.db.WithContext(ctx).Model(u).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.FindUser(ctx, id)
}

func (s *Store) DeleteUser(ctx context.Context, id string) error {
	return deleteByID[models.User](ctx, s.db, id)
}

// Authenticate kiểm tra username/mật khẩu; sai thông tin trả ErrNotFound
func (s *Store) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	u, err := s.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if !utils.CheckPassword(u.Password, password) {
		return nil, ErrNotFound
	}
	return u, nil
}

// ChangePassword đổi mật khẩu sau khi xác thực mật khẩu cũ
func (s *Store) ChangePassword(ctx context.Context, id, oldPassword, newPassword string) error {
	u, err := s.FindUser(ctx, id)
	if err != nil {
		return err
	}
	if !utils.CheckPassword(u.Password, oldPassword) {
		return fmt.Errorf("%w: mật khẩu hiện tại không đúng", ErrInvalidInput)
	}
	if len(newPassword) < utils.MinPasswordLength {
		return fmt.Errorf("%w: mật khẩu tối thiểu %d ký tự", ErrInvalidInput, utils.MinPasswordLength)
	}
	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Model(u).Update("password", hashed).Error
}

// CountUsers dùng cho dashboard
func (s *Store) CountUsers(ctx context.Context) int64 {
	var n int64
	s.db.WithContext(ctx).Model(&models.User{}).Count(&n)
	return n
}
