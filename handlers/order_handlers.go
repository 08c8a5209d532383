package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vit0-9/mailr_api/models"
	"github.com/vit0-9/mailr_api/pkg/services"
	"github.com/vit0-9/mailr_api/pkg/store"
	"github.com/vit0-9/mailr_api/pkg/utils/listing"
)

type OrderHandlers struct {
	orders *services.OrderService
	opts   Options
}

func NewOrderHandlers(orders *services.OrderService, opts Options) *OrderHandlers {
	return &OrderHandlers{orders: orders, opts: opts}
}

// ListOrdersHandler godoc
// @Summary      List orders
// @Description  Newest first unless a sort is given. Search matches order ID, sequencer and domain names.
// @Tags         Orders
// @Produce      json
// @Param        q query string false "Free-text search"
// @Param        status query string false "processing, completed or cancelled"
// @Param        provider query string false "Google or Microsoft"
// @Param        plan query string false "Pricing plan"
// @Param        sort query string false "id, date, domains, status or total"
// @Param        dir query string false "asc or desc"
// @Param        page query int false "1-based page"
// @Param        page_size query int false "Rows per page"
// @Success      200 {object} models.OrderListResponse
// @Failure      400 {object} models.APIErrorResponse
// @Router       /orders [get]
func (h *OrderHandlers) ListOrdersHandler(c *gin.Context) {
	var params models.OrderListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err)
		return
	}
	q := queryFilters(params.Query, map[string]string{
		"status": params.Status, "provider": params.Provider, "plan": params.Plan,
	})
	sort := sortState(params.ListParams)
	rows, err := h.orders.Visible(q, sort)
	if err != nil {
		respondError(c, err)
		return
	}
	if sort.Key == "" {
		sort = services.DefaultOrderSort
	}
	page := listing.Paginate(rows, params.Page, h.opts.pageSize(params.PageSize))
	c.JSON(http.StatusOK, models.OrderListResponse{
		Items:    models.NewOrderResponses(page.Items),
		PageMeta: models.NewPageMeta(page, sort),
	})
}

// GetOrderHandler godoc
// @Summary      Get an order
// @Tags         Orders
// @Produce      json
// @Param        id path string true "Order ID"
// @Success      200 {object} models.OrderResponse
// @Failure      404 {object} models.APIErrorResponse
// @Router       /orders/{id} [get]
func (h *OrderHandlers) GetOrderHandler(c *gin.Context) {
	o, err := h.orders.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewOrderResponse(o))
}

// OrderInboxesHandler godoc
// @Summary      List the mailboxes of an order
// @Tags         Orders
// @Produce      json
// @Param        id path string true "Order ID"
// @Success      200 {object} models.OrderInboxesResponse
// @Failure      404 {object} models.APIErrorResponse
// @Router       /orders/{id}/inboxes [get]
func (h *OrderHandlers) OrderInboxesHandler(c *gin.Context) {
	inboxes, err := h.orders.Inboxes(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if inboxes == nil {
		inboxes = []services.Inbox{}
	}
	c.JSON(http.StatusOK, models.OrderInboxesResponse{OrderID: c.Param("id"), Inboxes: inboxes})
}

// PlaceInboxOrderHandler godoc
// @Summary      Order inboxes
// @Description  Places a Google (priced per inbox) or Microsoft (priced per domain) inbox order.
// @Tags         Orders
// @Accept       json
// @Produce      json
// @Param        request body models.InboxOrderRequest true "Order form"
// @Success      201 {object} models.PlaceOrderResponse
// @Failure      400 {object} models.APIErrorResponse
// @Router       /orders/inboxes [post]
func (h *OrderHandlers) PlaceInboxOrderHandler(c *gin.Context) {
	var req models.InboxOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	order, quote, err := h.orders.PlaceInboxOrder(services.InboxOrder{
		Provider:         store.Provider(req.Provider),
		Sequencer:        req.Sequencer,
		InboxesPerDomain: req.InboxesPerDomain,
		Lines:            models.OrderLines(req.Domains),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.PlaceOrderResponse{
		Order: models.NewOrderResponse(order),
		Quote: models.NewQuoteResponse(quote),
	})
}

// PlaceDomainOrderHandler godoc
// @Summary      Order domains with inboxes
// @Description  Priced per inbox (domains x inboxes per domain) on the domain-inboxes table.
// @Tags         Orders
// @Accept       json
// @Produce      json
// @Param        request body models.DomainOrderRequest true "Order form"
// @Success      201 {object} models.PlaceOrderResponse
// @Failure      400 {object} models.APIErrorResponse
// @Router       /orders/domains [post]
func (h *OrderHandlers) PlaceDomainOrderHandler(c *gin.Context) {
	var req models.DomainOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	order, quote, err := h.orders.PlaceDomainOrder(models.OrderLines(req.Domains), req.InboxesPerDomain, req.Sequencer)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.PlaceOrderResponse{
		Order: models.NewOrderResponse(order),
		Quote: models.NewQuoteResponse(quote),
	})
}

// CancelOrderHandler godoc
// @Summary      Cancel an order
// @Description  Only processing orders can be cancelled.
// @Tags         Orders
// @Produce      json
// @Param        id path string true "Order ID"
// @Success      200 {object} models.OrderResponse
// @Failure      404 {object} models.APIErrorResponse
// @Failure      409 {object} models.APIErrorResponse
// @Router       /orders/{id}/cancel [post]
func (h *OrderHandlers) CancelOrderHandler(c *gin.Context) {
	o, err := h.orders.Cancel(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewOrderResponse(o))
}
