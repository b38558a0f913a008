package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/bds-backend/config"
	"github.com/vnkhanh/bds-backend/services"
)

// StoreMiddleware đưa store và settings vào context cho controller
func StoreMiddleware(st *services.Store, settings config.Settings) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("store", st)
		c.Set("db", st.DB())
		c.Set("settings", settings)
		c.Next()
	}
}
