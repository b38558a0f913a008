package services

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/vnkhanh/bds-backend/models"
)

const listingSheet = "Listings"

var listingHeader = []interface{}{
	"ID", "Tiêu đề", "Giá", "Đơn vị", "Giá quy đổi (tỷ)", "Diện tích (m2)",
	"Địa chỉ", "Thành phố", "Loại", "Danh mục", "Phòng ngủ", "Phòng tắm",
	"Người liên hệ", "Điện thoại", "Email", "Số ảnh", "Ngày tạo",
}

func intOrEmpty(v *int) interface{} {
	if v == nil {
		return ""
	}
	return *v
}

// WriteListingsXLSX xuất danh sách tin đăng ra file Excel
func WriteListingsXLSX(w io.Writer, props []models.Property) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", listingSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(listingSheet, "A1", &listingHeader); err != nil {
		return err
	}

	for i, p := range props {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			p.ID, p.Title, p.Price, p.Currency, NormalizedPrice(p), p.Area,
			p.Address, p.City, p.Type, p.Category, intOrEmpty(p.Bedrooms), intOrEmpty(p.Bathrooms),
			p.ContactName, p.ContactPhone, p.ContactEmail, len(p.Images), p.CreatedAt.Format("2006-01-02 15:04"),
		}
		if err := f.SetSheetRow(listingSheet, cell, &row); err != nil {
			return err
		}
	}

	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		last, _ := excelize.CoordinatesToCellName(len(listingHeader), 1)
		_ = f.SetCellStyle(listingSheet, "A1", last, style)
	}
	_ = f.SetColWidth(listingSheet, "B", "B", 40)
	_ = f.SetColWidth(listingSheet, "G", "G", 40)

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("không thể ghi file excel: %w", err)
	}
	return nil
}

// ListingsExportName tạo tên file kiểu listings-20240101.xlsx
func ListingsExportName(stamp string) string {
	stamp = strings.NewReplacer("-", "", ":", "", " ", "").Replace(stamp)
	return fmt.Sprintf("listings-%s.xlsx", stamp)
}
