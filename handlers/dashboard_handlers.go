package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vit0-9/mailr_api/models"
	"github.com/vit0-9/mailr_api/pkg/services"
	"github.com/vit0-9/mailr_api/pkg/store"
)

const defaultSearchLimit = 10

type DashboardHandlers struct {
	dashboard *services.DashboardService
	stores    *store.Stores
}

func NewDashboardHandlers(dashboard *services.DashboardService, stores *store.Stores) *DashboardHandlers {
	return &DashboardHandlers{dashboard: dashboard, stores: stores}
}

// DashboardHandler godoc
// @Summary      Dashboard metrics
// @Description  Domain, inbox and subscription totals, monthly spend, next billing date, free slots, orders by status and unread messages.
// @Tags         Dashboard
// @Produce      json
// @Success      200 {object} services.Dashboard
// @Router       /dashboard [get]
func (h *DashboardHandlers) DashboardHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboard.Summary())
}

// SearchHandler godoc
// @Summary      Quick search
// @Description  Fuzzy-matches domain names and order IDs, closest first.
// @Tags         Dashboard
// @Produce      json
// @Param        q query string true "Search text"
// @Param        limit query int false "Maximum hits (default 10)"
// @Success      200 {object} models.SearchResponse
// @Failure      400 {object} map[string]string
// @Router       /search [get]
func (h *DashboardHandlers) SearchHandler(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q query parameter is required"})
		return
	}
	limit := defaultSearchLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}
	hits := services.Search(h.stores, q, limit)
	if hits == nil {
		hits = []services.SearchHit{}
	}
	c.JSON(http.StatusOK, models.SearchResponse{Query: q, Hits: hits})
}
