package services

import (
	"github.com/vnkhanh/bds-backend/models"
)

// NewsFeed là dữ liệu trang tin tức: bài nổi bật và lưới bài phân trang
type NewsFeed struct {
	Featured   *models.News          `json:"featured"`
	Items      Page[models.News]     `json:"items"`
	Categories []models.NewsCategory `json:"categories"`
	Category   string                `json:"category"`
}

// BuildNewsFeed lấy bài đã xuất bản (mới nhất trước). Bài nổi bật là bài đầu tiên;
// nó bị loại khỏi lưới khi đang xem "tất cả" hoặc đúng danh mục của nó.
func BuildNewsFeed(news []models.News, category string, page, size int) NewsFeed {
	published := make([]models.News, 0, len(news))
	for _, n := range news {
		if n.IsPublished {
			published = append(published, n)
		}
	}

	feed := NewsFeed{Category: category}
	if isNoop(category) {
		feed.Category = FilterAll
	}
	if len(published) == 0 {
		feed.Items = Paginate([]models.News{}, page, size)
		return feed
	}

	featured := published[0]
	feed.Featured = &featured

	grid := make([]models.News, 0, len(published))
	for _, n := range published {
		if !isNoop(category) && n.CategoryID != category {
			continue
		}
		if n.ID == featured.ID && (isNoop(category) || featured.CategoryID == category) {
			continue
		}
		grid = append(grid, n)
	}
	feed.Items = Paginate(grid, page, size)
	return feed
}

// RelatedNews: cùng danh mục, đã xuất bản, khác bài hiện tại
func RelatedNews(news []models.News, current models.News, limit int) []models.News {
	if limit <= 0 {
		limit = models.DefaultRelatedPostsLimit
	}
	out := []models.News{}
	for _, n := range news {
		if len(out) >= limit {
			break
		}
		if n.ID == current.ID || !n.IsPublished || n.CategoryID != current.CategoryID {
			continue
		}
		out = append(out, n)
	}
	return out
}

// RelatedProperties: cùng loại hình hoặc cùng thành phố, khác tin hiện tại
func RelatedProperties(props []models.Property, current models.Property, limit int) []models.Property {
	if limit <= 0 {
		limit = models.DefaultRelatedPostsLimit
	}
	out := []models.Property{}
	for _, p := range props {
		if len(out) >= limit {
			break
		}
		if p.ID == current.ID {
			continue
		}
		if p.Category == current.Category || (current.City != "" && p.City == current.City) {
			out = append(out, p)
		}
	}
	return out
}

const homeListingCount = 3

// HomeFeed là dữ liệu trang chủ
type HomeFeed struct {
	Listings   []models.Property   `json:"listings"`
	LatestNews []models.News       `json:"latest_news"`
	Config     models.SystemConfig `json:"config"`
}

// BuildHomeFeed: 3 tin đăng mới nhất và các bài viết mới nhất
func BuildHomeFeed(snap *Snapshot) HomeFeed {
	props := SortProperties(snap.Properties(), SortNewest)
	if len(props) > homeListingCount {
		props = props[:homeListingCount]
	}
	cfg := snap.Config()
	news := snap.PublishedNews()
	if len(news) > cfg.RelatedPostsLimit {
		news = news[:cfg.RelatedPostsLimit]
	}
	return HomeFeed{Listings: props, LatestNews: news, Config: cfg}
}
