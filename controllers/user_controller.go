package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/bds-backend/services"
)

func ListUsers(c *gin.Context) {
	users, err := getStore(c).ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err, "Không thể tải danh sách người dùng")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": users, "total": len(users)})
}

func GetUser(c *gin.Context) {
	user, err := getStore(c).FindUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Người dùng không tồn tại")
		return
	}
	c.JSON(http.StatusOK, userResponse(user))
}

func CreateUser(c *gin.Context) {
	var input services.UserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := getStore(c).CreateUser(c.Request.Context(), input)
	if err != nil {
		respondError(c, err, "Lỗi khi tạo người dùng")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Tạo người dùng thành công", "user": userResponse(user)})
}

func UpdateUser(c *gin.Context) {
	var input services.UserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := getStore(c).UpdateUser(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		respondError(c, err, "Không thể cập nhật người dùng")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cập nhật người dùng thành công", "user": userResponse(user)})
}

func DeleteUser(c *gin.Context) {
	id := c.Param("id")
	if id == c.GetString("user_id") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Không thể tự xóa tài khoản đang đăng nhập"})
		return
	}
	if err := getStore(c).DeleteUser(c.Request.Context(), id); err != nil {
		respondError(c, err, "Không thể xóa người dùng")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Đã xóa người dùng"})
}
