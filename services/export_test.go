package services

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/vnkhanh/bds-backend/models"
)

func TestWriteListingsXLSX(t *testing.T) {
	props := []models.Property{
		{ID: "p1", Title: "Căn hộ Quận 2", Price: 4.2, Currency: models.CurrencyBillion, City: "Hồ Chí Minh",
			Bedrooms: intPtr(2), Images: models.ImageList{"a.jpg", "b.jpg"}, CreatedAt: time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)},
		{ID: "p2", Title: "Đất nền", Price: 900, Currency: models.CurrencyMillion},
	}

	var buf bytes.Buffer
	if err := WriteListingsXLSX(&buf, props); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(listingSheet)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d", len(rows))
	}
	if rows[0][1] != "Tiêu đề" || rows[1][0] != "p1" || rows[1][1] != "Căn hộ Quận 2" {
		t.Errorf("unexpected rows: %v", rows[:2])
	}
	if rows[2][4] != "0.9" {
		t.Errorf("normalized price cell = %q", rows[2][4])
	}
	if rows[1][15] != "2" || rows[1][16] != "2024-03-01 09:30" {
		t.Errorf("row 1 = %v", rows[1])
	}
}

func TestListingsExportName(t *testing.T) {
	if got := ListingsExportName("2024-03-01 09:30"); got != "listings-202403010930.xlsx" {
		t.Fatalf("got %q", got)
	}
}
