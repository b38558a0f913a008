package services

import (
	"math"
	"net/url"
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/vnkhanh/bds-backend/models"
)

// Giá trị đặc biệt nghĩa là "không lọc"
const FilterAll = "all"

const (
	SortNewest    = "newest"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
)

// ListingFilter là bộ lọc tin đăng; trường rỗng hoặc "all" bị bỏ qua
type ListingFilter struct {
	Type       string `json:"type"`
	Category   string `json:"category"`
	City       string `json:"city"`
	District   string `json:"district"`
	PriceRange string `json:"price"`
	SearchTerm string `json:"q"`
}

// ParseListingFilter đọc bộ lọc từ query string.
// Nhận cả tên cũ priceRange/searchTerm mà form tìm kiếm trang chủ gửi lên.
func ParseListingFilter(q url.Values) ListingFilter {
	search := q.Get("q")
	if search == "" {
		search = q.Get("searchTerm")
	}
	if search == "" {
		search = q.Get("search")
	}
	price := q.Get("price")
	if price == "" {
		price = q.Get("priceRange")
	}
	return ListingFilter{
		Type:       strings.TrimSpace(q.Get("type")),
		Category:   strings.TrimSpace(q.Get("category")),
		City:       strings.TrimSpace(q.Get("city")),
		District:   strings.TrimSpace(q.Get("district")),
		PriceRange: strings.TrimSpace(price),
		SearchTerm: strings.TrimSpace(search),
	}
}

func isNoop(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || strings.EqualFold(v, FilterAll)
}

// LocationResolver tra tên hiển thị của thành phố/quận theo id.
// Snapshot là bản cài đặt duy nhất trong ứng dụng.
type LocationResolver interface {
	CityName(id string) (string, bool)
	DistrictName(id string) (string, bool)
}

// MatchCity: giá trị lọc có thể là id hoặc tên cũ lưu trực tiếp.
// Qua nếu trường city chứa tên đã tra được hoặc chứa nguyên giá trị lọc.
func MatchCity(r LocationResolver, propertyCity, cityFilter string) bool {
	if isNoop(cityFilter) {
		return true
	}
	if r != nil {
		if name, ok := r.CityName(cityFilter); ok && name != "" && containsFold(propertyCity, name) {
			return true
		}
	}
	return containsFold(propertyCity, cityFilter)
}

// MatchDistrict so tên quận với địa chỉ vì tin đăng không có trường quận
func MatchDistrict(r LocationResolver, address, districtFilter string) bool {
	if isNoop(districtFilter) {
		return true
	}
	name := districtFilter
	if r != nil {
		if resolved, ok := r.DistrictName(districtFilter); ok && resolved != "" {
			name = resolved
		}
	}
	return containsFold(address, name)
}

// NormalizedPrice quy giá về đơn vị tỷ. Chỉ "Triệu" được chia 1000,
// các đơn vị khác giữ nguyên giá trị.
func NormalizedPrice(p models.Property) float64 {
	currency := norm.NFC.String(strings.TrimSpace(p.Currency))
	if currency == models.CurrencyMillion {
		return p.Price / 1000
	}
	return p.Price
}

// PriceBound là một cận của khoảng giá
type PriceBound struct {
	Value     float64
	Inclusive bool
}

// PriceBucket: cận nil nghĩa là không giới hạn phía đó
type PriceBucket struct {
	Min *PriceBound
	Max *PriceBound
}

func (b PriceBucket) Contains(price float64) bool {
	if b.Min != nil {
		if b.Min.Inclusive && price < b.Min.Value {
			return false
		}
		if !b.Min.Inclusive && price <= b.Min.Value {
			return false
		}
	}
	if b.Max != nil {
		if b.Max.Inclusive && price > b.Max.Value {
			return false
		}
		if !b.Max.Inclusive && price >= b.Max.Value {
			return false
		}
	}
	return true
}

// PriceBuckets ánh xạ mã khoảng giá (?price=) sang khoảng tương ứng
type PriceBuckets map[string]PriceBucket

func incl(v float64) *PriceBound { return &PriceBound{Value: v, Inclusive: true} }
func excl(v float64) *PriceBound { return &PriceBound{Value: v} }

// LegacyPriceBuckets giữ đúng hành vi cũ: "3-5" lọc [1,5]
func LegacyPriceBuckets() PriceBuckets {
	return PriceBuckets{
		"under-1": {Max: excl(1)},
		"1-3":     {Min: incl(1), Max: incl(3)},
		"3-5":     {Min: incl(1), Max: incl(5)},
		"over-5":  {Min: excl(5)},
	}
}

// StrictPriceBuckets sửa "3-5" thành (3,5]
func StrictPriceBuckets() PriceBuckets {
	b := LegacyPriceBuckets()
	b["3-5"] = PriceBucket{Min: excl(3), Max: incl(5)}
	return b
}

// PriceBucketsFor chọn bảng theo PRICE_RANGE_MODE
func PriceBucketsFor(mode string) PriceBuckets {
	if mode == "strict" {
		return StrictPriceBuckets()
	}
	return LegacyPriceBuckets()
}

// Match: mã không có trong bảng thì cho qua
func (pb PriceBuckets) Match(rangeKey string, p models.Property) bool {
	if isNoop(rangeKey) {
		return true
	}
	bucket, ok := pb[strings.ToLower(strings.TrimSpace(rangeKey))]
	if !ok {
		return true
	}
	return bucket.Contains(NormalizedPrice(p))
}

// FilterProperties trả về các tin thoả mọi điều kiện, giữ nguyên thứ tự đầu vào
func FilterProperties(props []models.Property, f ListingFilter, r LocationResolver, buckets PriceBuckets) []models.Property {
	if buckets == nil {
		buckets = LegacyPriceBuckets()
	}
	out := make([]models.Property, 0, len(props))
	for _, p := range props {
		if !isNoop(f.Type) && !strings.EqualFold(p.Type, strings.TrimSpace(f.Type)) {
			continue
		}
		if !isNoop(f.Category) && !strings.EqualFold(p.Category, strings.TrimSpace(f.Category)) {
			continue
		}
		if term := strings.TrimSpace(f.SearchTerm); term != "" && !containsFold(p.Title, term) && !containsFold(p.Address, term) {
			continue
		}
		if !MatchCity(r, p.City, f.City) {
			continue
		}
		if !MatchDistrict(r, p.Address, f.District) {
			continue
		}
		if !buckets.Match(f.PriceRange, p) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SortProperties sắp xếp ổn định trên bản sao; mode lạ giữ nguyên thứ tự
func SortProperties(props []models.Property, mode string) []models.Property {
	out := slices.Clone(props)
	switch mode {
	case SortNewest:
		slices.SortStableFunc(out, func(a, b models.Property) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	case SortPriceAsc:
		slices.SortStableFunc(out, func(a, b models.Property) int {
			return cmpFloat(NormalizedPrice(a), NormalizedPrice(b))
		})
	case SortPriceDesc:
		slices.SortStableFunc(out, func(a, b models.Property) int {
			return cmpFloat(NormalizedPrice(b), NormalizedPrice(a))
		})
	}
	return out
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// DefaultPageSize dùng khi cấu hình không có posts_per_page hợp lệ
const DefaultPageSize = models.DefaultPostsPerPage

type Page[T any] struct {
	Data       []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// Paginate cắt trang (1-based), kẹp page vào [1, totalPages]; luôn có ít nhất 1 trang
func Paginate[T any](items []T, page, size int) Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	total := len(items)
	totalPages := int(math.Ceil(float64(total) / float64(size)))
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * size
	end := min(start+size, total)
	data := make([]T, 0, max(end-start, 0))
	if start < total {
		data = append(data, items[start:end]...)
	}

	return Page[T]{
		Data:       data,
		Total:      total,
		Page:       page,
		Limit:      size,
		TotalPages: totalPages,
	}
}

// ListingQuery gom bộ lọc, kiểu sắp xếp và trang
type ListingQuery struct {
	Filter ListingFilter
	Sort   string
	Page   int
}

// QueryListings chạy filter → sort → paginate trên snapshot
func QueryListings(snap *Snapshot, q ListingQuery, buckets PriceBuckets) Page[models.Property] {
	props := FilterProperties(snap.Properties(), q.Filter, snap, buckets)
	props = SortProperties(props, q.Sort)
	return Paginate(props, q.Page, snap.Config().PostsPerPage)
}
