package services

import (
	"fmt"
	"net/url"
	"slices"
	"testing"
	"time"

	"github.com/vnkhanh/bds-backend/models"
)

func prop(id string, price float64, currency string) models.Property {
	return models.Property{ID: id, Title: "Tin " + id, Price: price, Currency: currency}
}

func ids(props []models.Property) []string {
	out := make([]string, len(props))
	for i, p := range props {
		out[i] = p.ID
	}
	return out
}

func fixtureSnapshot() *Snapshot {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	props := []models.Property{
		{ID: "p1", Title: "Căn hộ Vinhomes Central Park", Price: 5.5, Currency: models.CurrencyBillion,
			Address: "208 Nguyễn Hữu Cảnh, Bình Thạnh", City: "Hồ Chí Minh", Type: "sale", Category: "apartment", CreatedAt: base},
		{ID: "p2", Title: "Nhà phố Quận 1", Price: 25, Currency: models.CurrencyBillion,
			Address: "Đường Lê Lợi, Quận 1", City: "Hồ Chí Minh", Type: "sale", Category: "house", CreatedAt: base.Add(time.Hour)},
		{ID: "p3", Title: "Cho thuê văn phòng Cầu Giấy", Price: 15, Currency: models.CurrencyMillionPerMonth,
			Address: "Duy Tân, Cầu Giấy", City: "hn", Type: "rent", Category: "office", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "p4", Title: "Đất nền Hải Châu", Price: 800, Currency: models.CurrencyMillion,
			Address: "Hải Châu", City: "Đà Nẵng", Type: "sale", Category: "land", CreatedAt: base.Add(3 * time.Hour)},
	}
	cities := []models.City{{ID: "hcm", Name: "Hồ Chí Minh"}, {ID: "hn", Name: "Hà Nội"}, {ID: "dn", Name: "Đà Nẵng"}}
	districts := []models.District{
		{ID: "q1", Name: "Quận 1", CityID: "hcm"},
		{ID: "binhthanh", Name: "Bình Thạnh", CityID: "hcm"},
		{ID: "caugiay", Name: "Cầu Giấy", CityID: "hn"},
	}
	return NewSnapshot(props, cities, districts, models.SystemConfig{})
}

func TestFilterEmptyReturnsAllInOrder(t *testing.T) {
	snap := fixtureSnapshot()
	for _, f := range []ListingFilter{
		{},
		{Type: "all", Category: "all", City: "all", District: "all", PriceRange: "all"},
		{Type: "  ", Category: "ALL"},
	} {
		got := FilterProperties(snap.Properties(), f, snap, nil)
		if !slices.Equal(ids(got), []string{"p1", "p2", "p3", "p4"}) {
			t.Errorf("filter %+v = %v", f, ids(got))
		}
	}
}

func TestFilterPredicates(t *testing.T) {
	snap := fixtureSnapshot()
	tests := []struct {
		name string
		f    ListingFilter
		want []string
	}{
		{"type case-insensitive", ListingFilter{Type: "SALE"}, []string{"p1", "p2", "p4"}},
		{"category", ListingFilter{Category: "office"}, []string{"p3"}},
		{"search title", ListingFilter{SearchTerm: "vinhomes"}, []string{"p1"}},
		{"search address", ListingFilter{SearchTerm: "duy tân"}, []string{"p3"}},
		{"search padded", ListingFilter{SearchTerm: "  vinhomes "}, []string{"p1"}},
		{"search blank", ListingFilter{SearchTerm: "   "}, []string{"p1", "p2", "p3", "p4"}},
		{"city id resolved", ListingFilter{City: "hcm"}, []string{"p1", "p2"}},
		{"city raw id stored on legacy record", ListingFilter{City: "hn"}, []string{"p3"}},
		{"city unknown id falls back to literal", ListingFilter{City: "đà nẵng"}, []string{"p4"}},
		{"district matched against address", ListingFilter{District: "binhthanh"}, []string{"p1"}},
		{"district literal", ListingFilter{District: "Hải Châu"}, []string{"p4"}},
		{"combined AND", ListingFilter{Type: "sale", City: "hcm", PriceRange: "over-5"}, []string{"p1", "p2"}},
		{"unknown price bucket passes", ListingFilter{PriceRange: "10-20"}, []string{"p1", "p2", "p3", "p4"}},
		{"no match", ListingFilter{Type: "rent", City: "dn"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(FilterProperties(snap.Properties(), tt.f, snap, nil))
			if !slices.Equal(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterUnderOneNormalizesMillion(t *testing.T) {
	props := []models.Property{prop("a", 1.5, models.CurrencyBillion), prop("b", 500, models.CurrencyMillion)}
	got := FilterProperties(props, ListingFilter{PriceRange: "under-1"}, nil, nil)
	if !slices.Equal(ids(got), []string{"b"}) {
		t.Fatalf("got %v, want [b]", ids(got))
	}
}

func TestFilterUnderOneMatchesNormalizedPrice(t *testing.T) {
	var props []models.Property
	for i, c := range []struct {
		price    float64
		currency string
	}{
		{0.5, models.CurrencyBillion}, {1, models.CurrencyBillion}, {999, models.CurrencyMillion},
		{1000, models.CurrencyMillion}, {0.99, models.CurrencyMillionPerM2}, {12, models.CurrencyMillionPerMonth},
	} {
		props = append(props, prop(fmt.Sprint(i), c.price, c.currency))
	}
	got := FilterProperties(props, ListingFilter{PriceRange: "under-1"}, nil, nil)
	for _, p := range props {
		in := slices.ContainsFunc(got, func(g models.Property) bool { return g.ID == p.ID })
		if in != (NormalizedPrice(p) < 1) {
			t.Errorf("%s %v %s: included=%v normalized=%v", p.ID, p.Price, p.Currency, in, NormalizedPrice(p))
		}
	}
}

func TestPriceBucketTables(t *testing.T) {
	props := []models.Property{
		prop("0.5", 0.5, models.CurrencyBillion),
		prop("1", 1, models.CurrencyBillion),
		prop("2", 2000, models.CurrencyMillion),
		prop("3", 3, models.CurrencyBillion),
		prop("4", 4, models.CurrencyBillion),
		prop("5", 5, models.CurrencyBillion),
		prop("6", 6, models.CurrencyBillion),
	}
	tests := []struct {
		buckets PriceBuckets
		key     string
		want    []string
	}{
		{LegacyPriceBuckets(), "under-1", []string{"0.5"}},
		{LegacyPriceBuckets(), "1-3", []string{"1", "2", "3"}},
		{LegacyPriceBuckets(), "3-5", []string{"1", "2", "3", "4", "5"}},
		{LegacyPriceBuckets(), "over-5", []string{"6"}},
		{StrictPriceBuckets(), "3-5", []string{"4", "5"}},
		{StrictPriceBuckets(), "1-3", []string{"1", "2", "3"}},
		{PriceBucketsFor("strict"), "3-5", []string{"4", "5"}},
		{PriceBucketsFor("anything"), "3-5", []string{"1", "2", "3", "4", "5"}},
	}
	for _, tt := range tests {
		got := ids(FilterProperties(props, ListingFilter{PriceRange: tt.key}, nil, tt.buckets))
		if !slices.Equal(got, tt.want) {
			t.Errorf("%s: got %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestNormalizedPrice(t *testing.T) {
	tests := []struct {
		p    models.Property
		want float64
	}{
		{prop("a", 2.5, models.CurrencyBillion), 2.5},
		{prop("b", 500, models.CurrencyMillion), 0.5},
		{prop("c", 500, " Triệu "), 0.5},
		{prop("d", 60, models.CurrencyMillionPerM2), 60},
		{prop("e", 15, models.CurrencyMillionPerMonth), 15},
		// "Triệu" dạng NFD vẫn được nhận ra
		{prop("f", 500, "Trie\u0323\u0302u"), 0.5},
	}
	for _, tt := range tests {
		if got := NormalizedPrice(tt.p); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.p.ID, got, tt.want)
		}
	}
}

func TestSortProperties(t *testing.T) {
	snap := fixtureSnapshot()
	props := snap.Properties()

	if got := ids(SortProperties(props, SortNewest)); !slices.Equal(got, []string{"p4", "p3", "p2", "p1"}) {
		t.Errorf("newest = %v", got)
	}
	// p4 = 0.8 tỷ, p1 = 5.5, p3 = 15 (triệu/tháng so theo mệnh giá), p2 = 25
	if got := ids(SortProperties(props, SortPriceAsc)); !slices.Equal(got, []string{"p4", "p1", "p3", "p2"}) {
		t.Errorf("price-asc = %v", got)
	}
	if got := ids(SortProperties(props, "bogus")); !slices.Equal(got, ids(props)) {
		t.Errorf("unknown mode changed order: %v", got)
	}
	if !slices.Equal(ids(props), []string{"p1", "p2", "p3", "p4"}) {
		t.Errorf("input mutated: %v", ids(props))
	}
}

func TestSortPriceAscReversedEqualsDesc(t *testing.T) {
	props := []models.Property{
		prop("a", 3, models.CurrencyBillion),
		prop("b", 700, models.CurrencyMillion),
		prop("c", 12, models.CurrencyBillion),
		prop("d", 1.2, models.CurrencyBillion),
		prop("e", 2500, models.CurrencyMillion),
	}
	asc := ids(SortProperties(props, SortPriceAsc))
	slices.Reverse(asc)
	desc := ids(SortProperties(props, SortPriceDesc))
	if !slices.Equal(asc, desc) {
		t.Fatalf("reverse(asc) = %v, desc = %v", asc, desc)
	}
}

func TestSortNewestIsStable(t *testing.T) {
	at := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	props := []models.Property{
		{ID: "a", CreatedAt: at}, {ID: "b", CreatedAt: at.Add(time.Minute)}, {ID: "c", CreatedAt: at}, {ID: "d", CreatedAt: at},
	}
	if got := ids(SortProperties(props, SortNewest)); !slices.Equal(got, []string{"b", "a", "c", "d"}) {
		t.Fatalf("got %v", got)
	}
}

func TestPaginate(t *testing.T) {
	items := []int{0, 1, 2, 3, 4, 5, 6, 7}
	tests := []struct {
		page, size int
		want       []int
		wantPage   int
	}{
		{1, 6, []int{0, 1, 2, 3, 4, 5}, 1},
		{2, 6, []int{6, 7}, 2},
		{3, 6, []int{6, 7}, 2},
		{99, 6, []int{6, 7}, 2},
		{0, 6, []int{0, 1, 2, 3, 4, 5}, 1},
		{-4, 6, []int{0, 1, 2, 3, 4, 5}, 1},
		{2, 0, []int{6, 7}, 2},
	}
	for _, tt := range tests {
		got := Paginate(items, tt.page, tt.size)
		if !slices.Equal(got.Data, tt.want) || got.Page != tt.wantPage {
			t.Errorf("page=%d size=%d: got %v (page %d), want %v (page %d)",
				tt.page, tt.size, got.Data, got.Page, tt.want, tt.wantPage)
		}
		if got.Total != 8 || got.TotalPages != 2 {
			t.Errorf("page=%d: total=%d totalPages=%d", tt.page, got.Total, got.TotalPages)
		}
	}
}

func TestPaginateEmpty(t *testing.T) {
	got := Paginate([]models.Property{}, 5, 6)
	if got.TotalPages != 1 || got.Page != 1 || got.Data == nil || len(got.Data) != 0 {
		t.Fatalf("got %+v", got)
	}
}

func TestQueryListingsClampsBeyondLastPage(t *testing.T) {
	var props []models.Property
	for i := 0; i < 8; i++ {
		props = append(props, prop(fmt.Sprint(i), float64(i+1), models.CurrencyBillion))
	}
	snap := NewSnapshot(props, nil, nil, models.SystemConfig{PostsPerPage: 3})

	last := QueryListings(snap, ListingQuery{Sort: SortPriceDesc, Page: 3}, nil)
	beyond := QueryListings(snap, ListingQuery{Sort: SortPriceDesc, Page: 40}, nil)
	if !slices.Equal(ids(last.Data), ids(beyond.Data)) || beyond.Page != 3 {
		t.Fatalf("last = %v, beyond = %v (page %d)", ids(last.Data), ids(beyond.Data), beyond.Page)
	}
	if !slices.Equal(ids(last.Data), []string{"1", "0"}) {
		t.Errorf("last page = %v", ids(last.Data))
	}
}

func TestParseListingFilter(t *testing.T) {
	q := url.Values{}
	q.Set("type", "rent")
	q.Set("priceRange", "1-3")
	q.Set("searchTerm", " quận 7 ")
	q.Set("city", "hcm")

	f := ParseListingFilter(q)
	want := ListingFilter{Type: "rent", City: "hcm", PriceRange: "1-3", SearchTerm: "quận 7"}
	if f != want {
		t.Fatalf("got %+v, want %+v", f, want)
	}

	q.Set("price", "over-5")
	q.Set("q", "biệt thự")
	f = ParseListingFilter(q)
	if f.PriceRange != "over-5" || f.SearchTerm != "biệt thự" {
		t.Errorf("price/q should win over legacy names: %+v", f)
	}
}
