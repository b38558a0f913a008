package seed

import (
	"context"
	"testing"
	"time"

	"github.com/vnkhanh/bds-backend/config"
	"github.com/vnkhanh/bds-backend/models"
	"github.com/vnkhanh/bds-backend/services"
)

func newStore(t *testing.T) *services.Store {
	t.Helper()
	db, err := config.NewMemoryDB(t.Name())
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return services.NewStore(db, time.Minute)
}

func TestRunSeedsEmptyDatabase(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	res, err := Run(ctx, st, false)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if res.Skipped {
		t.Fatal("empty database should not be skipped")
	}

	snap := st.Snapshot(ctx)
	if got := len(snap.Properties()); got != len(Properties(time.Now())) {
		t.Errorf("properties = %d", got)
	}
	if got := len(snap.Cities()); got != 3 {
		t.Errorf("cities = %d", got)
	}
	if got := len(snap.DistrictsByCity("hcm")); got != 5 {
		t.Errorf("hcm districts = %d", got)
	}
	if got := len(snap.PublishedNews()); got != 2 {
		t.Errorf("published news = %d", got)
	}
	if _, ok := snap.PageBySlug("gioi-thieu"); !ok {
		t.Error("page gioi-thieu missing")
	}

	menu := services.SortMenuItems(snap.MenuItems())
	if len(menu) != len(models.DefaultMenuItems()) {
		t.Fatalf("menu = %d items", len(menu))
	}
	for i, m := range menu {
		if m.Order != i {
			t.Errorf("menu[%d].Order = %d", i, m.Order)
		}
	}

	// Tin mới nhất đứng đầu
	newest := services.SortProperties(snap.Properties(), services.SortNewest)
	if newest[0].Title != Properties(time.Now())[0].Title {
		t.Errorf("newest = %q", newest[0].Title)
	}
}

func TestRunSkipsWhenPropertiesExist(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	if err := st.CreateProperty(ctx, &models.Property{Title: "Có sẵn", Currency: models.CurrencyBillion, Type: "sale"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	res, err := Run(ctx, st, false)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if !res.Skipped {
		t.Fatal("expected skip")
	}
	if got := len(st.Snapshot(ctx).Properties()); got != 1 {
		t.Errorf("properties = %d", got)
	}
}

func TestRunForceReplacesListings(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	if _, err := Run(ctx, st, false); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := Run(ctx, st, true); err != nil {
		t.Fatalf("force seed: %v", err)
	}

	snap := st.Snapshot(ctx)
	if got, want := len(snap.Properties()), len(Properties(time.Now())); got != want {
		t.Errorf("properties = %d, want %d", got, want)
	}
	// Menu đã có thì giữ nguyên
	if got := len(snap.MenuItems()); got != len(models.DefaultMenuItems()) {
		t.Errorf("menu = %d", got)
	}
	if got := len(snap.Pages()); got != 2 {
		t.Errorf("pages = %d", got)
	}
}

func TestRunForceTwiceOnEmptyDatabase(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	for i := 0; i < 2; i++ {
		res, err := Run(ctx, st, true)
		if err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
		if res.Skipped || res.Cities != 3 || res.Pages != 2 {
			t.Fatalf("run %d: result = %+v", i, res)
		}
	}

	snap := st.Snapshot(ctx)
	if got, want := len(snap.Properties()), len(Properties(time.Now())); got != want {
		t.Errorf("properties = %d, want %d", got, want)
	}
	if got := len(snap.Cities()); got != 3 {
		t.Errorf("cities = %d", got)
	}
	if got := len(snap.Districts()); got != len(Districts()) {
		t.Errorf("districts = %d", got)
	}
	if got := len(snap.NewsCategories()); got != len(NewsCategories()) {
		t.Errorf("news categories = %d", got)
	}
	if got := len(snap.News()); got != len(News(time.Now())) {
		t.Errorf("news = %d", got)
	}
	if got := snap.Config().FooterEmail; got != models.DefaultSystemConfig().FooterEmail {
		t.Errorf("footer email = %q", got)
	}
}
