package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vit0-9/mailr_api/models"
	"github.com/vit0-9/mailr_api/pkg/store"
	"github.com/vit0-9/mailr_api/pkg/utils/listing"
	"github.com/vit0-9/mailr_api/pkg/views"
)

// ViewHandlers expose the per-session table state: header clicks, page
// changes and filters are remembered between requests of the same session.
type ViewHandlers struct {
	registry *views.Registry
	stores   *store.Stores
	opts     Options
}

func NewViewHandlers(registry *views.Registry, stores *store.Stores, opts Options) *ViewHandlers {
	return &ViewHandlers{registry: registry, stores: stores, opts: opts}
}

func (h *ViewHandlers) render(c *gin.Context, s *views.Session, t views.Table) {
	resp := models.ViewResponse{Table: string(t)}
	switch t {
	case views.TableDomains:
		p := s.Domains(h.stores.Domains.List())
		resp.Items, resp.Total, resp.TotalPages = models.NewDomainResponses(p.Items), p.Total, p.TotalPages
	case views.TableOrders:
		p := s.Orders(h.stores.Orders.List())
		resp.Items, resp.Total, resp.TotalPages = models.NewOrderResponses(p.Items), p.Total, p.TotalPages
	case views.TableSubscriptions:
		p := s.Subscriptions(h.stores.Subscriptions.List())
		items := make([]models.SubscriptionResponse, len(p.Items))
		for i, sub := range p.Items {
			items[i] = models.NewSubscriptionResponse(sub)
		}
		resp.Items, resp.Total, resp.TotalPages = items, p.Total, p.TotalPages
	case views.TableInbox:
		p := s.Inbox(h.stores.Messages.List())
		resp.Items, resp.Total, resp.TotalPages = p.Items, p.Total, p.TotalPages
	}
	// Read after Apply, which may have clamped the page.
	state, err := s.State(t)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.State = state
	c.JSON(http.StatusOK, resp)
}

func (h *ViewHandlers) table(c *gin.Context) (views.Table, bool) {
	t, err := views.ParseTable(c.Param("table"))
	if err != nil {
		c.JSON(http.StatusNotFound, apiError(http.StatusNotFound, models.ErrorCodeNotFound, "Unknown table", err))
		return "", false
	}
	return t, true
}

// GetViewHandler godoc
// @Summary      Current table view
// @Description  Returns the session's search, filters, sort and the current page of the table. The session is taken from the X-Session-ID header.
// @Tags         Views
// @Produce      json
// @Param        table path string true "domains, orders, subscriptions or inbox"
// @Param        X-Session-ID header string false "Dashboard session"
// @Success      200 {object} models.ViewResponse
// @Failure      404 {object} models.APIErrorResponse
// @Router       /views/{table} [get]
func (h *ViewHandlers) GetViewHandler(c *gin.Context) {
	t, ok := h.table(c)
	if !ok {
		return
	}
	h.render(c, h.opts.session(c, h.registry), t)
}

// SortViewHandler godoc
// @Summary      Click a column header
// @Description  Clicking the sorted column flips its direction; another column sorts ascending. An explicit dir overrides the toggle. The page resets to 1.
// @Tags         Views
// @Accept       json
// @Produce      json
// @Param        table path string true "domains, orders, subscriptions or inbox"
// @Param        X-Session-ID header string false "Dashboard session"
// @Param        request body models.ViewSortRequest true "Column"
// @Success      200 {object} models.ViewResponse
// @Failure      400 {object} models.APIErrorResponse
// @Router       /views/{table}/sort [post]
func (h *ViewHandlers) SortViewHandler(c *gin.Context) {
	t, ok := h.table(c)
	if !ok {
		return
	}
	var req models.ViewSortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	s := h.opts.session(c, h.registry)
	var err error
	if req.Dir != "" {
		_, err = s.SetSort(t, listing.SortState{Key: req.Key, Dir: listing.ParseDirection(req.Dir)})
	} else {
		_, err = s.ToggleSort(t, req.Key)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	h.render(c, s, t)
}

// PageViewHandler godoc
// @Summary      Change page
// @Tags         Views
// @Accept       json
// @Produce      json
// @Param        table path string true "domains, orders, subscriptions or inbox"
// @Param        X-Session-ID header string false "Dashboard session"
// @Param        request body models.ViewPageRequest true "Page"
// @Success      200 {object} models.ViewResponse
// @Failure      400 {object} models.APIErrorResponse
// @Router       /views/{table}/page [post]
func (h *ViewHandlers) PageViewHandler(c *gin.Context) {
	t, ok := h.table(c)
	if !ok {
		return
	}
	var req models.ViewPageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	s := h.opts.session(c, h.registry)
	if _, err := s.SetPage(t, req.Page); err != nil {
		respondError(c, err)
		return
	}
	h.render(c, s, t)
}

// FilterViewHandler godoc
// @Summary      Change search and filters
// @Description  Replaces the search text and dropdown filters; the page resets to 1.
// @Tags         Views
// @Accept       json
// @Produce      json
// @Param        table path string true "domains, orders, subscriptions or inbox"
// @Param        X-Session-ID header string false "Dashboard session"
// @Param        request body models.ViewFilterRequest true "Search and filters"
// @Success      200 {object} models.ViewResponse
// @Failure      400 {object} models.APIErrorResponse
// @Router       /views/{table}/filter [post]
func (h *ViewHandlers) FilterViewHandler(c *gin.Context) {
	t, ok := h.table(c)
	if !ok {
		return
	}
	var req models.ViewFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	s := h.opts.session(c, h.registry)
	if _, err := s.SetQuery(t, queryFilters(req.Search, req.Filters)); err != nil {
		respondError(c, err)
		return
	}
	h.render(c, s, t)
}
