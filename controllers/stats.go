package controllers

import (
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/bds-backend/models"
	"github.com/vnkhanh/bds-backend/services"
	"github.com/vnkhanh/bds-backend/ws"
)

type MonthlyPoint struct {
	Month string `json:"month"` // "2025-01"
	Count int64  `json:"count"`
}

type BreakdownItem struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

type DashboardOverview struct {
	TotalProperties int64             `json:"total_properties"`
	SaleCount       int64             `json:"sale_count"`
	RentCount       int64             `json:"rent_count"`
	NewListings30d  int64             `json:"new_listings_30d"`
	TotalNews       int64             `json:"total_news"`
	PublishedNews   int64             `json:"published_news"`
	TotalPages      int64             `json:"total_pages"`
	TotalUsers      int64             `json:"total_users"`
	Counts          map[string]int    `json:"counts"`
	LatestListings  []models.Property `json:"latest_listings"`
	Realtime        map[string]int    `json:"realtime"`
}

// Helper to parse ?year=
func getYearParam(c *gin.Context) int {
	yStr := c.Query("year")
	if yStr == "" {
		return time.Now().Year()
	}
	if y, err := strconv.Atoi(yStr); err == nil {
		return y
	}
	return time.Now().Year()
}

var vnZone = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Ho_Chi_Minh"); err == nil {
		return loc
	}
	return time.FixedZone("ICT", 7*3600)
}()

// MonthlyListings đếm tin đăng mới theo tháng (giờ Việt Nam), luôn đủ 12 tháng
func MonthlyListings(props []models.Property, year int) []MonthlyPoint {
	months := make(map[string]int64)
	for _, p := range props {
		t := p.CreatedAt.In(vnZone)
		if t.Year() == year {
			months[t.Format("2006-01")]++
		}
	}
	out := []MonthlyPoint{}
	for m := 1; m <= 12; m++ {
		key := time.Date(year, time.Month(m), 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
		out = append(out, MonthlyPoint{Month: key, Count: months[key]})
	}
	return out
}

func breakdown(props []models.Property, key func(models.Property) string) []BreakdownItem {
	counts := map[string]int64{}
	for _, p := range props {
		k := key(p)
		if k == "" {
			k = "khác"
		}
		counts[k]++
	}
	out := make([]BreakdownItem, 0, len(counts))
	for k, n := range counts {
		out = append(out, BreakdownItem{Key: k, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// ===================== Tin đăng theo tháng =====================
func GetMonthlyListings(c *gin.Context) {
	c.JSON(http.StatusOK, MonthlyListings(currentSnapshot(c).Properties(), getYearParam(c)))
}

// ===================== Phân bố tin đăng =====================
func GetListingBreakdown(c *gin.Context) {
	props := currentSnapshot(c).Properties()
	c.JSON(http.StatusOK, gin.H{
		"by_type":     breakdown(props, func(p models.Property) string { return p.Type }),
		"by_category": breakdown(props, func(p models.Property) string { return p.Category }),
		"by_city":     breakdown(props, func(p models.Property) string { return p.City }),
	})
}

// ===================== Tổng quan Dashboard =====================
func GetDashboardOverview(c *gin.Context) {
	snap := currentSnapshot(c)
	props := services.SortProperties(snap.Properties(), services.SortNewest)

	overview := DashboardOverview{
		TotalProperties: int64(len(props)),
		TotalNews:       int64(len(snap.News())),
		PublishedNews:   int64(len(snap.PublishedNews())),
		TotalPages:      int64(len(snap.Pages())),
		TotalUsers:      getStore(c).CountUsers(c.Request.Context()),
		Counts:          snap.Counts(),
		Realtime:        ws.H.GetStats(),
	}
	since := time.Now().AddDate(0, 0, -30)
	for _, p := range props {
		switch models.PropertyType(p.Type) {
		case models.PropertySale:
			overview.SaleCount++
		case models.PropertyRent:
			overview.RentCount++
		}
		if p.CreatedAt.After(since) {
			overview.NewListings30d++
		}
	}
	if len(props) > 5 {
		props = props[:5]
	}
	overview.LatestListings = props

	c.JSON(http.StatusOK, overview)
}
