package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"

	"github.com/vnkhanh/bds-backend/metrics"
	"github.com/vnkhanh/bds-backend/models"
)

// Store là lớp truy cập dữ liệu kèm cache đọc-xuyên.
// Người đọc nhận *Snapshot bất biến; mọi thao tác ghi thành công đều gọi Refresh.
type Store struct {
	db  *gorm.DB
	ttl time.Duration

	mu   sync.RWMutex
	snap *Snapshot
	seq  atomic.Uint64

	group     singleflight.Group
	hookMu    sync.Mutex
	onRefresh []func(*Snapshot)
}

func NewStore(db *gorm.DB, ttl time.Duration) *Store {
	return &Store{db: db, ttl: ttl}
}

// DB trả về kết nối gốc (dùng cho CLI và job dọn dẹp)
func (s *Store) DB() *gorm.DB {
	return s.db
}

// OnRefresh đăng ký hàm được gọi sau mỗi lần nạp lại snapshot
func (s *Store) OnRefresh(fn func(*Snapshot)) {
	s.hookMu.Lock()
	s.onRefresh = append(s.onRefresh, fn)
	s.hookMu.Unlock()
}

// Snapshot trả về dữ liệu đang cache nếu còn hạn, hết hạn thì nạp lại.
// Các request đồng thời dùng chung một lần nạp. Không bao giờ trả nil.
func (s *Store) Snapshot(ctx context.Context) *Snapshot {
	s.mu.RLock()
	snap := s.snap
	s.mu.RUnlock()
	if snap != nil && (s.ttl <= 0 || time.Since(snap.LoadedAt) < s.ttl) {
		return snap
	}

	v, _, _ := s.group.Do("snapshot", func() (interface{}, error) {
		return s.Refresh(context.WithoutCancel(ctx)), nil
	})
	return v.(*Snapshot)
}

// Refresh nạp lại toàn bộ bảng và thay snapshot hiện tại.
// Lần nạp bắt đầu sau luôn thắng, kể cả khi xong trước một lần nạp cũ hơn.
func (s *Store) Refresh(ctx context.Context) *Snapshot {
	seq := s.seq.Add(1)
	snap, partial := s.load(ctx)
	snap.seq = seq

	s.mu.Lock()
	if s.snap != nil && s.snap.seq > seq {
		current := s.snap
		s.mu.Unlock()
		return current
	}
	s.snap = snap
	s.mu.Unlock()

	result := "ok"
	if partial {
		result = "partial"
	}
	metrics.StoreRefreshTotal.WithLabelValues(result).Inc()

	s.hookMu.Lock()
	hooks := append([]func(*Snapshot){}, s.onRefresh...)
	s.hookMu.Unlock()
	for _, fn := range hooks {
		fn(snap)
	}
	return snap
}

// Invalidate bỏ cache, lần đọc tiếp theo sẽ nạp lại
func (s *Store) Invalidate() {
	s.mu.Lock()
	s.snap = nil
	s.mu.Unlock()
}

// load đọc song song từng bảng; bảng lỗi được log và coi như rỗng
func (s *Store) load(ctx context.Context) (*Snapshot, bool) {
	snap := &Snapshot{}
	var failed atomic.Bool
	db := s.db.WithContext(ctx)

	fetch := func(name string, dest interface{}, order string) func() error {
		return func() error {
			if err := db.Order(order).Find(dest).Error; err != nil {
				log.Printf("Lỗi khi tải %s: %v", name, err)
				failed.Store(true)
			}
			return nil
		}
	}

	var g errgroup.Group
	g.SetLimit(4)
	g.Go(fetch("properties", &snap.properties, "created_at DESC"))
	g.Go(fetch("cities", &snap.cities, "name ASC"))
	g.Go(fetch("districts", &snap.districts, "name ASC"))
	g.Go(fetch("news", &snap.news, "created_at DESC"))
	g.Go(fetch("news_categories", &snap.newsCategories, "name ASC"))
	g.Go(fetch("pages", &snap.pages, "created_at DESC"))
	g.Go(fetch("menu_items", &snap.menuItems, "sort_order ASC"))
	g.Go(func() error {
		var cfg models.SystemConfig
		err := db.First(&cfg, "id = ?", models.SystemConfigID).Error
		switch {
		case err == nil:
			snap.config = cfg.WithDefaults()
		case errors.Is(err, gorm.ErrRecordNotFound):
			snap.config = models.DefaultSystemConfig()
		default:
			log.Printf("Lỗi khi tải system_configs: %v", err)
			failed.Store(true)
			snap.config = models.DefaultSystemConfig()
		}
		return nil
	})
	_ = g.Wait()

	// Bảng lỗi vẫn phải là slice rỗng chứ không phải nil
	if snap.properties == nil {
		snap.properties = []models.Property{}
	}
	for i := range snap.properties {
		if snap.properties[i].Images == nil {
			snap.properties[i].Images = models.ImageList{}
		}
	}
	if snap.cities == nil {
		snap.cities = []models.City{}
	}
	if snap.districts == nil {
		snap.districts = []models.District{}
	}
	if snap.news == nil {
		snap.news = []models.News{}
	}
	if snap.newsCategories == nil {
		snap.newsCategories = []models.NewsCategory{}
	}
	if snap.pages == nil {
		snap.pages = []models.Page{}
	}
	if snap.menuItems == nil {
		snap.menuItems = []models.MenuItem{}
	}
	snap.LoadedAt = time.Now()
	return snap, failed.Load()
}

// ---- helper chung ----

// updateByID ghi đè toàn bộ cột (kể cả giá trị rỗng) trừ id và created_at
func updateByID[T any](ctx context.Context, db *gorm.DB, id string, rec *T) error {
	res := db.WithContext(ctx).Model(new(T)).
		Where("id = ?", id).
		Select("*").Omit("id", "created_at").
		Updates(rec)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func deleteByID[T any](ctx context.Context, db *gorm.DB, id string) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func findByID[T any](ctx context.Context, db *gorm.DB, id string) (*T, error) {
	rec := new(T)
	if err := db.WithContext(ctx).First(rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

// afterWrite nạp lại snapshot khi ghi thành công
func (s *Store) afterWrite(ctx context.Context, err error) error {
	if err != nil {
		return err
	}
	s.Refresh(ctx)
	return nil
}

// ---- Property ----

func (s *Store) FindProperty(ctx context.Context, id string) (*models.Property, error) {
	return findByID[models.Property](ctx, s.db, id)
}

func (s *Store) CreateProperty(ctx context.Context, p *models.Property) error {
	if p.Images == nil {
		p.Images = models.ImageList{}
	}
	return s.afterWrite(ctx, s.db.WithContext(ctx).Create(p).Error)
}

func (s *Store) UpdateProperty(ctx context.Context, id string, p *models.Property) error {
	p.ID = id
	if p.Images == nil {
		p.Images = models.ImageList{}
	}
	return s.afterWrite(ctx, updateByID(ctx, s.db, id, p))
}

func (s *Store) DeleteProperty(ctx context.Context, id string) error {
	return s.afterWrite(ctx, deleteByID[models.Property](ctx, s.db, id))
}

// ---- City / District ----

func (s *Store) CreateCity(ctx context.Context, c *models.City) error {
	return s.afterWrite(ctx, s.db.WithContext(ctx).Create(c).Error)
}

// DeleteCity xóa thành phố cùng các quận/huyện thuộc nó
func (s *Store) DeleteCity(ctx context.Context, id string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("city_id = ?", id).Delete(&models.District{}).Error; err != nil {
			return err
		}
		return deleteByID[models.City](ctx, tx, id)
	})
	return s.afterWrite(ctx, err)
}

func (s *Store) CreateDistrict(ctx context.Context, d *models.District) error {
	if _, err := findByID[models.City](ctx, s.db, d.CityID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("%w: thành phố %q không tồn tại", ErrInvalidInput, d.CityID)
		}
		return err
	}
	return s.afterWrite(ctx, s.db.WithContext(ctx).Create(d).Error)
}

func (s *Store) DeleteDistrict(ctx context.Context, id string) error {
	return s.afterWrite(ctx, deleteByID[models.District](ctx, s.db, id))
}

// ---- News / NewsCategory ----

func (s *Store) FindNews(ctx context.Context, id string) (*models.News, error) {
	return findByID[models.News](ctx, s.db, id)
}

func (s *Store) CreateNews(ctx context.Context, n *models.News) error {
	return s.afterWrite(ctx, s.db.WithContext(ctx).Create(n).Error)
}

func (s *Store) UpdateNews(ctx context.Context, id string, n *models.News) error {
	n.ID = id
	return s.afterWrite(ctx, updateByID(ctx, s.db, id, n))
}

func (s *Store) DeleteNews(ctx context.Context, id string) error {
	return s.afterWrite(ctx, deleteByID[models.News](ctx, s.db, id))
}

func (s *Store) CreateNewsCategory(ctx context.Context, c *models.NewsCategory) error {
	if c.ID != "" {
		var count int64
		if err := s.db.WithContext(ctx).Model(&models.NewsCategory{}).Where("id = ?", c.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%w: danh mục %q đã tồn tại", ErrInvalidInput, c.ID)
		}
	}
	return s.afterWrite(ctx, s.db.WithContext(ctx).Create(c).Error)
}

func (s *Store) DeleteNewsCategory(ctx context.Context, id string) error {
	return s.afterWrite(ctx, deleteByID[models.NewsCategory](ctx, s.db, id))
}

// ---- Page ----

func (s *Store) FindPage(ctx context.Context, id string) (*models.Page, error) {
	return findByID[models.Page](ctx, s.db, id)
}

// slugTaken kiểm tra slug đã được trang khác dùng
func (s *Store) slugTaken(ctx context.Context, slug, exceptID string) (bool, error) {
	var count int64
	q := s.db.WithContext(ctx).Model(&models.Page{}).Where("slug = ?", slug)
	if exceptID != "" {
		q = q.Where("id <> ?", exceptID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) CreatePage(ctx context.Context, p *models.Page) error {
	taken, err := s.slugTaken(ctx, p.Slug, "")
	if err != nil {
		return err
	}
	if taken {
		return ErrDuplicateSlug
	}
	return s.afterWrite(ctx, s.db.WithContext(ctx).Create(p).Error)
}

func (s *Store) UpdatePage(ctx context.Context, id string, p *models.Page) error {
	taken, err := s.slugTaken(ctx, p.Slug, id)
	if err != nil {
		return err
	}
	if taken {
		return ErrDuplicateSlug
	}
	p.ID = id
	return s.afterWrite(ctx, updateByID(ctx, s.db, id, p))
}

func (s *Store) DeletePage(ctx context.Context, id string) error {
	return s.afterWrite(ctx, deleteByID[models.Page](ctx, s.db, id))
}
