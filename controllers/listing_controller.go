package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/bds-backend/services"
)

// GET /api/home
func GetHome(c *gin.Context) {
	c.JSON(http.StatusOK, services.BuildHomeFeed(currentSnapshot(c)))
}

// GET /api/listings?type=&category=&price=&city=&district=&q=&sort=&page=
func GetListings(c *gin.Context) {
	snap := currentSnapshot(c)
	q := services.ListingQuery{
		Filter: services.ParseListingFilter(c.Request.URL.Query()),
		Sort:   c.DefaultQuery("sort", services.SortNewest),
		Page:   queryInt(c, "page", 1),
	}
	result := services.QueryListings(snap, q, priceBuckets(c))

	cfg := snap.Config()
	c.JSON(http.StatusOK, gin.H{
		"data":       result.Data,
		"total":      result.Total,
		"page":       result.Page,
		"limit":      result.Limit,
		"totalPages": result.TotalPages,
		"filter":     q.Filter,
		"sort":       q.Sort,
		"view": gin.H{
			"default_view_mode": cfg.DefaultViewMode,
			"grid_columns":      cfg.GridColumns,
		},
	})
}

// GET /api/listings/:id
func GetListingDetail(c *gin.Context) {
	snap := currentSnapshot(c)
	p, ok := snap.PropertyByID(c.Param("id"))
	if !ok {
		respondNotFound(c, "Tin đăng không tồn tại hoặc đã bị xóa")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"property": p,
		"related":  services.RelatedProperties(snap.Properties(), p, snap.Config().RelatedPostsLimit),
	})
}
