package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/bds-backend/services"
	"github.com/vnkhanh/bds-backend/utils"
)

// bearerToken đọc token từ Authorization, X-Auth-Token hoặc ?token= (websocket)
func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")

	// Nếu không có, thử X-Auth-Token
	if authHeader == "" {
		authHeader = c.GetHeader("X-Auth-Token")
	}
	if authHeader == "" {
		if t := c.Query("token"); t != "" {
			return t, true
		}
		return "", false
	}

	// Tách token khỏi chuỗi "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

// authenticate xác thực token và nạp user; trả false khi đã abort request
func authenticate(c *gin.Context, st *services.Store) bool {
	tokenString, ok := bearerToken(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Thiếu hoặc sai Authorization header"})
		c.Abort()
		return false
	}

	claims, err := utils.VerifyToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token không hợp lệ hoặc hết hạn"})
		c.Abort()
		return false
	}

	// Tài khoản có thể đã bị xóa sau khi cấp token
	user, err := st.FindUser(c.Request.Context(), claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Không tìm thấy người dùng"})
		c.Abort()
		return false
	}

	// Lưu thông tin vào context để controller dùng; role lấy từ DB
	c.Set("user_id", user.ID)
	c.Set("role", string(user.Role))
	return true
}

func AuthMiddleware(st *services.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c, st) {
			return
		}
		c.Next()
	}
}
