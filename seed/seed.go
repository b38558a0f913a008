package seed

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vnkhanh/bds-backend/models"
	"github.com/vnkhanh/bds-backend/services"
)

var images = []string{
	"https://images.unsplash.com/photo-1580587771525-78b9dba3b914?q=80&w=1074&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?q=80&w=1170&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1592595896551-12b371d546d5?q=80&w=1170&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1558036117-15d82a90b9b1?q=80&w=1170&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1564013799919-ab600027ffc6?q=80&w=1170&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1628624747186-a941c476b7ef?w=600&auto=format&fit=crop&q=60",
	"https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?q=80&w=1175&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1628133287836-40bd5453bed1?q=80&w=1170&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1613977257363-707ba9348227?q=80&w=1170&auto=format&fit=crop",
}

func pick(idx ...int) models.ImageList {
	out := models.ImageList{}
	for _, i := range idx {
		out = append(out, images[i])
	}
	return out
}

func n(v int) *int { return &v }

func Cities() []models.City {
	return []models.City{
		{ID: "hcm", Name: "Hồ Chí Minh"},
		{ID: "hn", Name: "Hà Nội"},
		{ID: "dn", Name: "Đà Nẵng"},
	}
}

func Districts() []models.District {
	return []models.District{
		{ID: "q1", Name: "Quận 1", CityID: "hcm"},
		{ID: "q2", Name: "TP. Thủ Đức", CityID: "hcm"},
		{ID: "q3", Name: "Quận 3", CityID: "hcm"},
		{ID: "q7", Name: "Quận 7", CityID: "hcm"},
		{ID: "binhthanh", Name: "Quận Bình Thạnh", CityID: "hcm"},
		{ID: "hoankiem", Name: "Quận Hoàn Kiếm", CityID: "hn"},
		{ID: "caugiay", Name: "Quận Cầu Giấy", CityID: "hn"},
		{ID: "haichau", Name: "Quận Hải Châu", CityID: "dn"},
	}
}

// Properties trả về tin đăng mẫu, CreatedAt giảm dần theo thứ tự khai báo
func Properties(now time.Time) []models.Property {
	props := []models.Property{
		{
			Title: "Biệt thự hiện đại Thảo Điền, hồ bơi riêng", Price: 45, Currency: models.CurrencyBillion, Area: 350,
			Address: "Lê Văn Miến, Thảo Điền, TP. Thủ Đức", City: "Hồ Chí Minh", Type: "sale", Category: "house",
			Description: "Biệt thự sân vườn rộng rãi, thiết kế Châu Âu hiện đại. Gồm 5 phòng ngủ, 6WC, hồ bơi riêng, gara ô tô.",
			Images:      pick(0, 2, 6), Bedrooms: n(5), Bathrooms: n(6),
			ContactName: "Nguyễn Văn An", ContactPhone: "0909123456", ContactEmail: "an.nguyen@bds.com",
			SeoTitle:       "Bán biệt thự Thảo Điền có hồ bơi",
			SeoDescription: "Bán biệt thự Thảo Điền, TP Thủ Đức. Diện tích 350m2, thiết kế hiện đại, có hồ bơi.",
			SeoKeywords:    "biet thu thao dien, nha thu duc, biet thu ho boi",
		},
		{
			Title: "Căn hộ cao cấp Vinhomes Central Park, view sông", Price: 6.5, Currency: models.CurrencyBillion, Area: 85,
			Address: "208 Nguyễn Hữu Cảnh, Bình Thạnh", City: "Hồ Chí Minh", Type: "sale", Category: "apartment",
			Description: "Căn hộ 2 phòng ngủ, tầng cao, view trực diện sông và công viên. Nội thất đầy đủ cao cấp.",
			Images:      pick(1, 7, 5), Bedrooms: n(2), Bathrooms: n(2),
			ContactName: "Trần Thị Bé", ContactPhone: "0909888999", ContactEmail: "be.tran@bds.com",
			SeoTitle:       "Bán căn hộ Vinhomes Central Park 2PN view sông",
			SeoDescription: "Căn hộ 2PN Vinhomes Central Park, tầng cao view đẹp, giá tốt.",
			SeoKeywords:    "can ho vinhomes, chung cu binh thanh",
		},
		{
			Title: "Nhà phố thương mại Quận 1, vị trí đắc địa", Price: 32, Currency: models.CurrencyBillion, Area: 120,
			Address: "Đường Hai Bà Trưng, Quận 1", City: "Hồ Chí Minh", Type: "sale", Category: "house",
			Description: "Nhà mặt tiền đường lớn, thuận tiện kinh doanh đa ngành nghề hoặc cho thuê văn phòng. Kết cấu trệt 3 lầu.",
			Images:      pick(3, 8, 6), Bedrooms: n(4), Bathrooms: n(4),
			ContactName: "Phạm Hùng", ContactPhone: "0987654321", ContactEmail: "hung.pham@realestate.com",
			SeoTitle: "Bán nhà mặt tiền Quận 1 Hai Bà Trưng",
		},
		{
			Title: "Biệt thự nghỉ dưỡng ngoại ô Hà Nội", Price: 18, Currency: models.CurrencyBillion, Area: 500,
			Address: "Khu đô thị Ecopark, Hà Nội", City: "Hà Nội", Type: "sale", Category: "house",
			Description: "Không gian sống xanh, trong lành. Biệt thự đơn lập, 4 mặt thoáng, sân vườn rộng.",
			Images:      pick(4, 2, 0), Bedrooms: n(4), Bathrooms: n(5),
			ContactName: "Lê Văn Cường", ContactPhone: "0912345678", ContactEmail: "cuong.le@mail.com",
		},
		{
			Title: "Cho thuê căn hộ dịch vụ Quận 7", Price: 15, Currency: models.CurrencyMillionPerMonth, Area: 60,
			Address: "Nguyễn Thị Thập, Quận 7", City: "Hồ Chí Minh", Type: "rent", Category: "apartment",
			Description: "Căn hộ dịch vụ full nội thất, bao phí quản lý, internet. Chỉ việc xách vali vào ở.",
			Images:      pick(5, 7, 1), Bedrooms: n(1), Bathrooms: n(1),
			ContactName: "Ms. Lan", ContactPhone: "0283777777", ContactEmail: "lan@apartments.com",
		},
		{
			Title: "Văn phòng trọn gói Quận Cầu Giấy", Price: 25, Currency: models.CurrencyMillionPerMonth, Area: 80,
			Address: "Duy Tân, Cầu Giấy", City: "Hà Nội", Type: "rent", Category: "office",
			Description: "Văn phòng hạng B, đầy đủ bàn ghế, phòng họp. Khu vực tập trung nhiều công ty công nghệ.",
			Images:      pick(8, 6), Bedrooms: n(0), Bathrooms: n(2),
			ContactName: "Mr. Tuấn", ContactPhone: "0999888777", ContactEmail: "tuan@office.vn",
		},
		{
			Title: "Penthouse Sky Villa - Đẳng cấp thượng lưu", Price: 85, Currency: models.CurrencyBillion, Area: 450,
			Address: "Khu Thủ Thiêm, TP. Thủ Đức", City: "Hồ Chí Minh", Type: "sale", Category: "apartment",
			Description: "Penthouse thông tầng, view panorama toàn cảnh sông Sài Gòn và Quận 1. Hồ bơi riêng, thang máy riêng.",
			Images:      pick(6, 4, 1), Bedrooms: n(4), Bathrooms: n(5),
			ContactName: "Luxury Homes", ContactPhone: "0909999999", ContactEmail: "vip@luxury.com",
		},
		{
			Title: "Đất nền dự án ven biển Đà Nẵng", Price: 3.5, Currency: models.CurrencyBillion, Area: 100,
			Address: "Đường Võ Nguyên Giáp, Sơn Trà", City: "Đà Nẵng", Type: "sale", Category: "land",
			Description: "Lô đất đẹp, cách biển 200m, thích hợp xây khách sạn hoặc homestay.",
			Images:      pick(2, 3), Bedrooms: n(0), Bathrooms: n(0),
			ContactName: "Trần Văn D", ContactPhone: "0933444555", ContactEmail: "d.tran@danang.bds",
		},
	}
	for i := range props {
		props[i].CreatedAt = now.Add(-time.Duration(i) * time.Hour)
	}
	return props
}

func NewsCategories() []models.NewsCategory {
	return []models.NewsCategory{
		{ID: "thi-truong", Name: "Thị trường"},
		{ID: "phap-ly", Name: "Pháp lý"},
		{ID: "phong-thuy", Name: "Phong thủy"},
	}
}

func News(now time.Time) []models.News {
	items := []models.News{
		{
			Title: "Thị trường căn hộ TP.HCM khởi sắc cuối năm", Slug: "thi-truong-can-ho-tphcm-khoi-sac-cuoi-nam",
			Summary:    "Nguồn cung mới tăng, giao dịch căn hộ trung cấp sôi động trở lại.",
			Content:    "<p>Nguồn cung căn hộ mới tại TP.HCM tăng mạnh trong quý cuối năm, tập trung ở khu Đông.</p>",
			Thumbnail:  images[1],
			CategoryID: "thi-truong", Author: "Ban biên tập", IsPublished: true,
		},
		{
			Title: "Những lưu ý pháp lý khi mua đất nền dự án", Slug: "nhung-luu-y-phap-ly-khi-mua-dat-nen-du-an",
			Summary:    "Kiểm tra quy hoạch, sổ đỏ và tiến độ hạ tầng trước khi xuống tiền.",
			Content:    "<p>Người mua cần kiểm tra kỹ giấy phép, quy hoạch 1/500 và tiến độ hạ tầng của dự án.</p>",
			Thumbnail:  images[2],
			CategoryID: "phap-ly", Author: "Ban biên tập", IsPublished: true,
		},
		{
			Title: "Chọn hướng nhà hợp tuổi", Slug: "chon-huong-nha-hop-tuoi",
			Summary:    "Vài nguyên tắc phong thủy cơ bản khi chọn hướng nhà.",
			Content:    "<p>Hướng nhà ảnh hưởng đến ánh sáng và thông gió, bên cạnh yếu tố phong thủy.</p>",
			Thumbnail:  images[4],
			CategoryID: "phong-thuy", Author: "Ban biên tập", IsPublished: false,
		},
	}
	for i := range items {
		items[i].CreatedAt = now.Add(-time.Duration(i) * 24 * time.Hour)
	}
	return items
}

func Pages() []models.Page {
	return []models.Page{
		{
			Title: "Giới thiệu", Slug: "gioi-thieu", IsPublished: true,
			Content: "<p>Nền tảng kết nối mua bán bất động sản uy tín.</p>",
		},
		{
			Title: "Liên hệ", Slug: "lien-he", IsPublished: true,
			Content: "<p>Email: contact@bds.com - Hotline: 0909 000 999</p>",
		},
	}
}

type Result struct {
	Skipped    bool
	Properties int
	Cities     int
	Districts  int
	News       int
	Pages      int
	MenuItems  int
}

// Run ghi dữ liệu mẫu. Khi đã có tin đăng thì bỏ qua, trừ khi force.
// force xóa tin đăng, quận/huyện, thành phố và tin tức trước khi ghi lại.
func Run(ctx context.Context, st *services.Store, force bool) (Result, error) {
	db := st.DB().WithContext(ctx)

	var count int64
	if err := db.Model(&models.Property{}).Count(&count).Error; err != nil {
		return Result{}, err
	}
	if count > 0 && !force {
		log.Printf("Đã có %d tin đăng, bỏ qua seed", count)
		return Result{Skipped: true}, nil
	}

	now := time.Now()
	res := Result{}
	err := db.Transaction(func(tx *gorm.DB) error {
		if force {
			for _, m := range []interface{}{&models.Property{}, &models.District{}, &models.City{}, &models.News{}, &models.NewsCategory{}} {
				if err := tx.Where("1 = 1").Delete(m).Error; err != nil {
					return err
				}
			}
		}

		ignore := tx.Clauses(clause.OnConflict{DoNothing: true}).Session(&gorm.Session{})

		cities := Cities()
		if err := ignore.Create(&cities).Error; err != nil {
			return err
		}
		districts := Districts()
		if err := ignore.Create(&districts).Error; err != nil {
			return err
		}
		props := Properties(now)
		if err := tx.Create(&props).Error; err != nil {
			return err
		}
		cats := NewsCategories()
		if err := ignore.Create(&cats).Error; err != nil {
			return err
		}
		news := News(now)
		if err := tx.Create(&news).Error; err != nil {
			return err
		}
		pages := Pages()
		if err := ignore.Create(&pages).Error; err != nil {
			return err
		}

		// Menu chỉ khởi tạo khi bảng còn trống
		var menuCount int64
		if err := tx.Model(&models.MenuItem{}).Count(&menuCount).Error; err != nil {
			return err
		}
		if menuCount == 0 {
			menu := services.NormalizeMenuOrder(models.DefaultMenuItems())
			if err := tx.Create(&menu).Error; err != nil {
				return err
			}
			res.MenuItems = len(menu)
		}

		cfg := models.DefaultSystemConfig()
		if err := ignore.Create(&cfg).Error; err != nil {
			return err
		}

		res.Cities, res.Districts = len(cities), len(districts)
		res.Properties, res.News, res.Pages = len(props), len(news), len(pages)
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	st.Refresh(ctx)
	log.Printf("Seed xong: %d tin đăng, %d thành phố, %d quận/huyện, %d tin tức", res.Properties, res.Cities, res.Districts, res.News)
	return res, nil
}
