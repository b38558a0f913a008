package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/bds-backend/metrics"
	"github.com/vnkhanh/bds-backend/services"
	"github.com/vnkhanh/bds-backend/utils"
)

type contactInput struct {
	PropertyID    string `json:"propertyId"`
	To            string `json:"to"`
	PropertyTitle string `json:"propertyTitle"`
	PropertyLink  string `json:"propertyLink"`
	CustomerName  string `json:"customerName" binding:"required"`
	CustomerPhone string `json:"customerPhone" binding:"required"`
	CustomerEmail string `json:"customerEmail"`
	Message       string `json:"message"`
}

// resolveRecipient chỉ gửi tới email của người đăng tin hoặc email của website,
// không gửi tới địa chỉ tùy ý client đưa lên.
func resolveRecipient(snap *services.Snapshot, in *contactInput, siteURL string) (string, bool) {
	fallback := snap.Config().FooterEmail

	if in.PropertyID != "" {
		p, ok := snap.PropertyByID(in.PropertyID)
		if !ok {
			return "", false
		}
		if in.PropertyTitle == "" {
			in.PropertyTitle = p.Title
		}
		if in.PropertyLink == "" {
			in.PropertyLink = siteURL + "/listings/" + p.ID
		}
		if p.ContactEmail != "" {
			return p.ContactEmail, true
		}
		return fallback, fallback != ""
	}

	to := strings.TrimSpace(in.To)
	if to == "" {
		return fallback, fallback != ""
	}
	if strings.EqualFold(to, fallback) {
		return to, true
	}
	for _, p := range snap.Properties() {
		if p.ContactEmail != "" && strings.EqualFold(p.ContactEmail, to) {
			return p.ContactEmail, true
		}
	}
	return "", false
}

// POST /api/contact: gửi yêu cầu tư vấn tới người đăng tin.
// Chưa cấu hình SMTP thì chỉ ghi log, vẫn trả thành công.
func SendContact(c *gin.Context) {
	var input contactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Vui lòng nhập họ tên và số điện thoại"})
		return
	}

	to, ok := resolveRecipient(currentSnapshot(c), &input, getSettings(c).SiteURL)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Không xác định được người nhận"})
		return
	}

	sent, err := utils.SendContactEmail(utils.ContactRequest{
		To:            to,
		PropertyTitle: strings.TrimSpace(input.PropertyTitle),
		PropertyLink:  strings.TrimSpace(input.PropertyLink),
		CustomerName:  strings.TrimSpace(input.CustomerName),
		CustomerPhone: strings.TrimSpace(input.CustomerPhone),
		CustomerEmail: strings.TrimSpace(input.CustomerEmail),
		Message:       strings.TrimSpace(input.Message),
	})
	if err != nil {
		metrics.ContactRequestsTotal.WithLabelValues("failed").Inc()
		respondError(c, err, "Không thể gửi yêu cầu, vui lòng thử lại")
		return
	}

	result := "sent"
	if !sent {
		result = "skipped"
	}
	metrics.ContactRequestsTotal.WithLabelValues(result).Inc()
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Đã gửi yêu cầu tư vấn", "sent": sent})
}
