package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/vnkhanh/bds-backend/config"
	"github.com/vnkhanh/bds-backend/middleware"
	"github.com/vnkhanh/bds-backend/routes"
	"github.com/vnkhanh/bds-backend/services"
	"github.com/vnkhanh/bds-backend/utils"
	"github.com/vnkhanh/bds-backend/ws"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("Không tìm thấy file .env")
	}

	settings := config.LoadSettings()
	config.InitDB()

	st := services.NewStore(config.DB, settings.StoreTTL)
	// Báo cho trang quản trị mỗi khi dữ liệu được nạp lại
	st.OnRefresh(func(snap *services.Snapshot) {
		ws.BroadcastStoreRefreshed(snap.LoadedAt, snap.Counts())
	})
	snap := st.Refresh(context.Background())
	log.Printf("Đã nạp dữ liệu: %v", snap.Counts())

	utils.StartCleanupJob(config.DB, settings.CleanupEvery, func() {
		st.Refresh(context.Background())
	})

	r := gin.Default()

	//Bật CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     settings.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Auth-Token"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))
	r.Use(middleware.Metrics())

	// Gọi SetupRouter để đăng ký route
	r = routes.SetupRouter(r, st, settings)

	// Route test server
	r.GET("/", func(c *gin.Context) {
		c.String(200, "BDS server is running")
	})

	log.Println("Server running at Port:" + settings.Port)
	if err := r.Run(":" + settings.Port); err != nil {
		log.Fatal(err)
	}
}
