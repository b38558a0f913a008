package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/bds-backend/config"
	"github.com/vnkhanh/bds-backend/models"
	"github.com/vnkhanh/bds-backend/seed"
	"github.com/vnkhanh/bds-backend/services"
)

type testServer struct {
	router *gin.Engine
	store  *services.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("EMAIL_USER", "")
	t.Setenv("EMAIL_PASS", "")

	db, err := config.NewMemoryDB(t.Name())
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	st := services.NewStore(db, time.Minute)
	if _, err := seed.Run(context.Background(), st, false); err != nil {
		t.Fatalf("seed: %v", err)
	}
	_, err = st.CreateUser(context.Background(), services.UserInput{
		Username: "admin", Password: "admin123", Name: "Admin", Role: models.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("create admin: %v", err)
	}

	settings := config.Settings{
		SiteURL:        "http://localhost:3000",
		StoreTTL:       time.Minute,
		PriceRangeMode: config.PriceRangeLegacy,
	}
	return &testServer{router: SetupRouter(gin.New(), st, settings), store: st}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}, token string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var out map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w, out
}

func (s *testServer) login(t *testing.T) string {
	t.Helper()
	w, body := s.do(t, http.MethodPost, "/api/auth/login", gin.H{"username": "admin", "password": "admin123"}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d, body = %s", w.Code, w.Body.String())
	}
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatal("login returned no token")
	}
	return token
}

func TestPublicListings(t *testing.T) {
	s := newTestServer(t)

	w, body := s.do(t, http.MethodGet, "/api/listings?type=sale", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if got := body["total"].(float64); got != 6 {
		t.Errorf("total = %v", got)
	}
	if got := body["limit"].(float64); got != 6 {
		t.Errorf("limit = %v", got)
	}
	if got := body["totalPages"].(float64); got != 1 {
		t.Errorf("totalPages = %v", got)
	}

	// Trang vượt quá được kéo về trang cuối
	_, body = s.do(t, http.MethodGet, "/api/listings?page=99", nil, "")
	if got := body["page"].(float64); got != 2 {
		t.Errorf("clamped page = %v", got)
	}

	_, body = s.do(t, http.MethodGet, "/api/listings?city=hn&sort=price-asc", nil, "")
	data := body["data"].([]interface{})
	if len(data) != 2 {
		t.Fatalf("hn listings = %d", len(data))
	}
}

func TestHealthReportsCacheCounts(t *testing.T) {
	s := newTestServer(t)

	w, body := s.do(t, http.MethodGet, "/api/health", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if body["status"] != "ok" || body["service"] != "bds-backend" {
		t.Errorf("body = %v", body)
	}
	db, _ := body["database"].(map[string]interface{})
	if db["ok"] != true {
		t.Errorf("database = %v", body["database"])
	}
	cache, _ := body["cache"].(map[string]interface{})
	counts, _ := cache["counts"].(map[string]interface{})
	if got := counts["properties"]; got != float64(len(seed.Properties(time.Now()))) {
		t.Errorf("cached properties = %v", got)
	}
	if got := counts["menu_items"]; got != float64(len(models.DefaultMenuItems())) {
		t.Errorf("cached menu items = %v", got)
	}
}

func TestNotFoundResponses(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/api/listings/khong-ton-tai", "/api/news/khong-ton-tai", "/api/pages/khong-ton-tai", "/khong-co-route"} {
		w, body := s.do(t, http.MethodGet, path, nil, "")
		if w.Code != http.StatusNotFound {
			t.Errorf("%s: status = %d", path, w.Code)
			continue
		}
		if body["error"] != "404 - Không tìm thấy trang" {
			t.Errorf("%s: error = %v", path, body["error"])
		}
	}
}

func TestAdminRequiresToken(t *testing.T) {
	s := newTestServer(t)

	if w, _ := s.do(t, http.MethodGet, "/api/admin/properties", nil, ""); w.Code != http.StatusUnauthorized {
		t.Errorf("no token: status = %d", w.Code)
	}
	if w, _ := s.do(t, http.MethodGet, "/api/admin/properties", nil, "khong-hop-le"); w.Code != http.StatusUnauthorized {
		t.Errorf("bad token: status = %d", w.Code)
	}
	if w, _ := s.do(t, http.MethodPost, "/api/auth/login", gin.H{"username": "admin", "password": "sai-mat-khau"}, ""); w.Code != http.StatusUnauthorized {
		t.Errorf("wrong password: status = %d", w.Code)
	}

	// Tài khoản thường không vào được trang quản trị
	_, err := s.store.CreateUser(context.Background(), services.UserInput{Username: "khach", Password: "khach123", Role: models.RoleUser})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	w, body := s.do(t, http.MethodPost, "/api/auth/login", gin.H{"username": "khach", "password": "khach123"}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("user login status = %d", w.Code)
	}
	userToken := body["token"].(string)
	if w, _ := s.do(t, http.MethodGet, "/api/admin/properties", nil, userToken); w.Code != http.StatusForbidden {
		t.Errorf("non-admin: status = %d", w.Code)
	}
	w, me := s.do(t, http.MethodGet, "/api/auth/me", nil, userToken)
	if w.Code != http.StatusOK || me["username"] != "khach" {
		t.Errorf("me: status = %d, body = %v", w.Code, me)
	}
}

func TestAdminDashboardAndPropertyCRUD(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t)

	w, body := s.do(t, http.MethodGet, "/api/admin/dashboard", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("dashboard status = %d", w.Code)
	}
	if body["total_properties"].(float64) != 8 || body["rent_count"].(float64) != 2 {
		t.Errorf("dashboard = %v", body)
	}

	w, body = s.do(t, http.MethodPost, "/api/admin/properties", gin.H{
		"title": "Nhà mới Quận 3", "price": 9, "currency": "Tỷ", "type": "sale", "category": "house", "city": "Hồ Chí Minh",
	}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", w.Code, w.Body.String())
	}
	id := body["property"].(map[string]interface{})["id"].(string)

	// Ghi xong thì trang công khai thấy ngay
	if w, _ := s.do(t, http.MethodGet, "/api/listings/"+id, nil, ""); w.Code != http.StatusOK {
		t.Errorf("public detail status = %d", w.Code)
	}

	if w, _ := s.do(t, http.MethodPost, "/api/admin/properties", gin.H{"title": "Sai đơn vị", "currency": "USD"}, token); w.Code != http.StatusBadRequest {
		t.Errorf("invalid currency: status = %d", w.Code)
	}

	if w, _ := s.do(t, http.MethodDelete, "/api/admin/properties/"+id, nil, token); w.Code != http.StatusOK {
		t.Errorf("delete status = %d", w.Code)
	}
	if w, _ := s.do(t, http.MethodGet, "/api/listings/"+id, nil, ""); w.Code != http.StatusNotFound {
		t.Errorf("after delete status = %d", w.Code)
	}
	if w, _ := s.do(t, http.MethodDelete, "/api/admin/properties/"+id, nil, token); w.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d", w.Code)
	}
}

func TestPageDuplicateSlug(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t)

	w, body := s.do(t, http.MethodPost, "/api/admin/pages", gin.H{"title": "Chính sách bảo mật", "is_published": true}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", w.Code, w.Body.String())
	}
	if slug := body["page"].(map[string]interface{})["slug"]; slug != "chinh-sach-bao-mat" {
		t.Errorf("slug = %v", slug)
	}

	if w, _ := s.do(t, http.MethodPost, "/api/admin/pages", gin.H{"title": "Giới thiệu"}, token); w.Code != http.StatusBadRequest {
		t.Errorf("duplicate slug: status = %d", w.Code)
	}
	if w, _ := s.do(t, http.MethodGet, "/api/pages/chinh-sach-bao-mat", nil, ""); w.Code != http.StatusOK {
		t.Errorf("public page status = %d", w.Code)
	}
}

func TestUpdateSystemConfig(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t)

	w, _ := s.do(t, http.MethodPut, "/api/admin/settings/config", gin.H{
		"posts_per_page": 2, "site_title": "BDS Test", "default_view_mode": "grid",
	}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d, body = %s", w.Code, w.Body.String())
	}

	_, cfg := s.do(t, http.MethodGet, "/api/config", nil, "")
	if cfg["posts_per_page"].(float64) != 2 || cfg["site_title"] != "BDS Test" || cfg["default_view_mode"] != "grid" {
		t.Errorf("config = %v", cfg)
	}
	// Trường không gửi lên giữ nguyên
	if cfg["grid_columns"].(float64) != 2 {
		t.Errorf("grid_columns = %v", cfg["grid_columns"])
	}

	_, body := s.do(t, http.MethodGet, "/api/listings", nil, "")
	if body["limit"].(float64) != 2 || body["totalPages"].(float64) != 4 {
		t.Errorf("listings page = %v/%v", body["limit"], body["totalPages"])
	}

	if w, _ := s.do(t, http.MethodPut, "/api/admin/settings/config", gin.H{"grid_columns": 9}, token); w.Code != http.StatusBadRequest {
		t.Errorf("invalid grid_columns: status = %d", w.Code)
	}
}

func TestMoveMenuItem(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t)

	menu := services.SortMenuItems(s.store.Snapshot(context.Background()).MenuItems())
	first := menu[0]

	w, _ := s.do(t, http.MethodPost, "/api/admin/menu/"+first.ID+"/move", gin.H{"direction": "down"}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("move status = %d, body = %s", w.Code, w.Body.String())
	}
	moved := services.SortMenuItems(s.store.Snapshot(context.Background()).MenuItems())
	if moved[1].ID != first.ID || moved[0].ID != menu[1].ID {
		t.Errorf("order after move = %v, %v", moved[0].Label, moved[1].Label)
	}

	// Mục đầu không lên được nữa, thứ tự giữ nguyên
	w, _ = s.do(t, http.MethodPost, "/api/admin/menu/"+moved[0].ID+"/move", gin.H{"direction": "up"}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("move up status = %d", w.Code)
	}
	again := services.SortMenuItems(s.store.Snapshot(context.Background()).MenuItems())
	for i := range again {
		if again[i].ID != moved[i].ID || again[i].Order != i {
			t.Errorf("item %d changed: %+v", i, again[i])
		}
	}

	if w, _ := s.do(t, http.MethodPost, "/api/admin/menu/khong-co/move", gin.H{"direction": "up"}, token); w.Code != http.StatusNotFound {
		t.Errorf("unknown id: status = %d", w.Code)
	}
	if w, _ := s.do(t, http.MethodPost, "/api/admin/menu/"+first.ID+"/move", gin.H{"direction": "left"}, token); w.Code != http.StatusBadRequest {
		t.Errorf("bad direction: status = %d", w.Code)
	}
}

func TestContactWithoutSMTP(t *testing.T) {
	s := newTestServer(t)
	props := s.store.Snapshot(context.Background()).Properties()

	w, body := s.do(t, http.MethodPost, "/api/contact", gin.H{
		"propertyId": props[0].ID, "customerName": "Khách", "customerPhone": "0909000000",
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if body["sent"] != false || body["success"] != true {
		t.Errorf("body = %v", body)
	}

	// Không cho gửi tới địa chỉ tùy ý
	w, _ = s.do(t, http.MethodPost, "/api/contact", gin.H{
		"to": "ai-do@example.com", "customerName": "Khách", "customerPhone": "0909000000",
	}, "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("arbitrary recipient: status = %d", w.Code)
	}

	if w, _ := s.do(t, http.MethodPost, "/api/contact", gin.H{"customerName": "Thiếu số điện thoại"}, ""); w.Code != http.StatusBadRequest {
		t.Errorf("missing phone: status = %d", w.Code)
	}
}
