package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vnkhanh/bds-backend/config"
	"github.com/vnkhanh/bds-backend/controllers"
	"github.com/vnkhanh/bds-backend/middleware"
	"github.com/vnkhanh/bds-backend/models"
	"github.com/vnkhanh/bds-backend/services"
	"github.com/vnkhanh/bds-backend/ws"
)

func SetupRouter(r *gin.Engine, st *services.Store, settings config.Settings) *gin.Engine {
	r.Use(middleware.StoreMiddleware(st, settings))

	r.GET("/ping", controllers.Ping)
	r.GET("/health", controllers.HealthCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/health", controllers.HealthCheck)
		api.GET("/ping", controllers.Ping)

		api.GET("/home", controllers.GetHome)
		api.GET("/listings", controllers.GetListings)
		api.GET("/listings/:id", controllers.GetListingDetail)

		api.GET("/news", controllers.GetNews)
		api.GET("/news/:id", controllers.GetNewsDetail)
		api.GET("/news-categories", controllers.GetNewsCategories)

		api.GET("/pages/:slug", controllers.GetPageBySlug)
		api.GET("/menu", controllers.GetMenu)
		api.GET("/config", controllers.GetSystemConfig)

		api.GET("/cities", controllers.GetCities)
		api.GET("/cities/:id/districts", controllers.GetDistrictsByCity)

		api.POST("/contact", controllers.SendContact)
	}

	auth := api.Group("/auth")
	{
		auth.POST("/login", controllers.Login)
		auth.GET("/me", middleware.AuthMiddleware(st), controllers.GetProfile)
	}

	admin := api.Group("/admin")
	{
		admin.Use(middleware.RequireRoles(st, string(models.RoleAdmin)))

		// Dashboard
		admin.GET("/dashboard", controllers.GetDashboardOverview)
		admin.GET("/dashboard/monthly-listings", controllers.GetMonthlyListings)
		admin.GET("/dashboard/breakdown", controllers.GetListingBreakdown)

		// Quản lý tin đăng
		admin.GET("/properties", controllers.AdminListProperties)
		admin.GET("/properties/export", controllers.ExportProperties)
		admin.GET("/properties/:id", controllers.AdminGetProperty)
		admin.POST("/properties", controllers.CreateProperty)
		admin.PUT("/properties/:id", controllers.UpdateProperty)
		admin.DELETE("/properties/:id", controllers.DeleteProperty)

		// Quản lý tin tức
		admin.GET("/news", controllers.AdminListNews)
		admin.GET("/news/:id", controllers.AdminGetNews)
		admin.POST("/news", controllers.CreateNews)
		admin.PUT("/news/:id", controllers.UpdateNews)
		admin.DELETE("/news/:id", controllers.DeleteNews)

		// Danh mục tin tức
		admin.GET("/news-categories", controllers.GetNewsCategories)
		admin.POST("/news-categories", controllers.CreateNewsCategory)
		admin.DELETE("/news-categories/:id", controllers.DeleteNewsCategory)

		// Trang tĩnh
		admin.GET("/pages", controllers.AdminListPages)
		admin.GET("/pages/:id", controllers.AdminGetPage)
		admin.POST("/pages", controllers.CreatePage)
		admin.PUT("/pages/:id", controllers.UpdatePage)
		admin.DELETE("/pages/:id", controllers.DeletePage)

		// Địa điểm
		admin.GET("/cities", controllers.GetCities)
		admin.POST("/cities", controllers.CreateCity)
		admin.DELETE("/cities/:id", controllers.DeleteCity)
		admin.GET("/districts", controllers.AdminListDistricts)
		admin.POST("/districts", controllers.CreateDistrict)
		admin.DELETE("/districts/:id", controllers.DeleteDistrict)

		// Menu
		admin.GET("/menu", controllers.GetMenu)
		admin.GET("/menu/icons", controllers.GetMenuIcons)
		admin.POST("/menu", controllers.CreateMenuItem)
		admin.PUT("/menu", controllers.SaveMenu)
		admin.POST("/menu/seed", controllers.SeedMenu)
		admin.PUT("/menu/:id", controllers.UpdateMenuItem)
		admin.DELETE("/menu/:id", controllers.DeleteMenuItem)
		admin.POST("/menu/:id/move", controllers.MoveMenuItem)

		// Người dùng
		admin.GET("/users", controllers.ListUsers)
		admin.GET("/users/:id", controllers.GetUser)
		admin.POST("/users", controllers.CreateUser)
		admin.PUT("/users/:id", controllers.UpdateUser)
		admin.DELETE("/users/:id", controllers.DeleteUser)

		// Cài đặt
		admin.GET("/settings/profile", controllers.GetProfile)
		admin.PUT("/settings/profile", controllers.UpdateProfile)
		admin.PUT("/settings/password", controllers.ChangePassword)
		admin.GET("/settings/config", controllers.GetSystemConfig)
		admin.PUT("/settings/config", controllers.UpdateSystemConfig)
		admin.POST("/settings/clear-cache", controllers.ClearCache)

		admin.POST("/uploads/images", controllers.UploadImages)
		admin.POST("/seo/suggest", controllers.SuggestPropertySEO)
		admin.POST("/seo/summary", controllers.SuggestNewsSummary)

		admin.GET("/ws", ws.HandleAdminWebSocket)
	}

	// Websocket cho trang quản trị, token truyền qua ?token=
	r.GET("/ws/admin", middleware.RequireRoles(st, string(models.RoleAdmin)), ws.HandleAdminWebSocket)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"error": "404 - Không tìm thấy trang", "message": "Đường dẫn không tồn tại"})
	})

	return r
}
