package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"mime"
	"net/smtp"
	"os"
)

// sendMail cho phép thay thế khi test
var sendMail = smtp.SendMail

type mailSettings struct {
	User string
	Pass string
	Host string
	Port string
}

func loadMailSettings() mailSettings {
	s := mailSettings{
		User: os.Getenv("EMAIL_USER"),
		Pass: os.Getenv("EMAIL_PASS"),
		Host: os.Getenv("SMTP_HOST"),
		Port: os.Getenv("SMTP_PORT"),
	}
	if s.Host == "" {
		s.Host = "smtp.gmail.com"
	}
	if s.Port == "" {
		s.Port = "587"
	}
	return s
}

// MailConfigured cho biết đã có thông tin đăng nhập SMTP hay chưa
func MailConfigured() bool {
	s := loadMailSettings()
	return s.User != "" && s.Pass != ""
}

func SendEmail(to, subject, body string) error {
	s := loadMailSettings()
	from := s.User

	// Headers: hỗ trợ UTF-8 & HTML
	msg := ""
	msg += "MIME-Version: 1.0\r\n"
	msg += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	msg += fmt.Sprintf("From: %s <%s>\r\n", mime.QEncoding.Encode("utf-8", "Website Bất Động Sản"), from)
	msg += fmt.Sprintf("To: %s\r\n", to)
	msg += fmt.Sprintf("Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	msg += "\r\n" + body

	err := sendMail(
		s.Host+":"+s.Port,
		smtp.PlainAuth("", from, s.Pass, s.Host),
		from,
		[]string{to},
		[]byte(msg),
	)
	if err != nil {
		return fmt.Errorf("gửi email thất bại: %w", err)
	}
	return nil
}

// ContactRequest là yêu cầu tư vấn gửi tới người đăng tin
type ContactRequest struct {
	To            string
	PropertyTitle string
	PropertyLink  string
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Message       string
}

var contactTemplate = template.Must(template.New("contact").Parse(`<div style="font-family: Arial, sans-serif; padding: 20px; border: 1px solid #e0e0e0; border-radius: 10px; max-width: 600px;">
  <h2 style="color: #2563eb;">Có khách hàng quan tâm đến tin đăng của bạn!</h2>
  <p style="color: #666; font-size: 14px;">Bạn vừa nhận được một yêu cầu tư vấn mới từ website.</p>
  <div style="background-color: #f8fafc; padding: 15px; border-radius: 8px; margin: 20px 0;">
    <h3 style="margin-top: 0; color: #1e293b;">Thông tin khách hàng:</h3>
    <table style="width: 100%; border-collapse: collapse;">
      <tr><td style="padding: 5px 0; color: #64748b; width: 120px;">Họ tên:</td><td style="padding: 5px 0; font-weight: bold;">{{.CustomerName}}</td></tr>
      <tr><td style="padding: 5px 0; color: #64748b;">Số điện thoại:</td><td style="padding: 5px 0; font-weight: bold;">{{.CustomerPhone}}</td></tr>
      <tr><td style="padding: 5px 0; color: #64748b;">Email:</td><td style="padding: 5px 0;">{{if .CustomerEmail}}{{.CustomerEmail}}{{else}}Không cung cấp{{end}}</td></tr>
    </table>
  </div>
  <div style="margin: 20px 0;">
    <h3 style="color: #1e293b;">Bất động sản quan tâm:</h3>
    <p style="margin-bottom: 5px;"><strong>{{.PropertyTitle}}</strong></p>
    <p><a href="{{.PropertyLink}}" style="color: #2563eb; text-decoration: none;">Xem chi tiết tin đăng tại đây &rarr;</a></p>
  </div>
  <div style="margin: 20px 0;">
    <h3 style="color: #1e293b;">Lời nhắn của khách:</h3>
    <p style="font-style: italic; background-color: #fff7ed; padding: 10px; border-left: 4px solid #f97316;">"{{if .Message}}{{.Message}}{{else}}Tôi cần thêm thông tin về căn nhà này.{{end}}"</p>
  </div>
  <hr style="border: 0; border-top: 1px solid #e0e0e0;">
  <p style="font-size: 12px; color: #94a3b8; text-align: center;">Đây là email tự động từ hệ thống website Bất Động Sản.</p>
</div>`))

// RenderContactEmail dựng nội dung HTML (đã escape dữ liệu khách nhập)
func RenderContactEmail(req ContactRequest) (string, error) {
	var buf bytes.Buffer
	if err := contactTemplate.Execute(&buf, req); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// SendContactEmail gửi yêu cầu tư vấn. Khi chưa cấu hình SMTP thì chỉ ghi log
// và trả về sent=false, không coi là lỗi.
func SendContactEmail(req ContactRequest) (sent bool, err error) {
	if !MailConfigured() {
		log.Printf("Thiếu cấu hình SMTP (EMAIL_USER/EMAIL_PASS). Yêu cầu tư vấn cho %q vẫn được ghi nhận nhưng email không được gửi.", req.PropertyTitle)
		return false, nil
	}

	body, err := RenderContactEmail(req)
	if err != nil {
		return false, err
	}
	if err := SendEmail(req.To, "[Yêu cầu tư vấn] "+req.PropertyTitle, body); err != nil {
		return false, err
	}
	return true, nil
}
