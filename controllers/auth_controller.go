package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/bds-backend/models"
	"github.com/vnkhanh/bds-backend/services"
	"github.com/vnkhanh/bds-backend/utils"
)

// ====== INPUT STRUCTS ======
type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordInput struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

type ProfileInput struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email"`
}

func userResponse(u *models.User) gin.H {
	return gin.H{
		"id":         u.ID,
		"username":   u.Username,
		"name":       u.Name,
		"email":      u.Email,
		"role":       u.Role,
		"created_at": u.CreatedAt,
	}
}

// ====== HANDLERS ======
func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := getStore(c).Authenticate(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Tên đăng nhập hoặc mật khẩu không đúng"})
			return
		}
		respondError(c, err, "Lỗi khi đăng nhập")
		return
	}

	token, err := utils.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể tạo token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Đăng nhập thành công",
		"token":   token,
		"user":    userResponse(user),
	})
}

// GET /api/admin/settings/profile
func GetProfile(c *gin.Context) {
	user, err := getStore(c).FindUser(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		respondError(c, err, "Người dùng không tồn tại")
		return
	}
	c.JSON(http.StatusOK, userResponse(user))
}

// PUT /api/admin/settings/profile
func UpdateProfile(c *gin.Context) {
	var input ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := getStore(c).UpdateUser(c.Request.Context(), c.GetString("user_id"), services.UserInput{
		Name:  input.Name,
		Email: input.Email,
	})
	if err != nil {
		respondError(c, err, "Không thể cập nhật thông tin")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cập nhật thông tin thành công", "user": userResponse(user)})
}

// Đổi mật khẩu
func ChangePassword(c *gin.Context) {
	var input ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := getStore(c).ChangePassword(c.Request.Context(), c.GetString("user_id"), input.OldPassword, input.NewPassword)
	if err != nil {
		respondError(c, err, "Lỗi khi cập nhật mật khẩu")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Đổi mật khẩu thành công",
	})
}
