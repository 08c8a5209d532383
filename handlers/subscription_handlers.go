package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vit0-9/mailr_api/models"
	"github.com/vit0-9/mailr_api/pkg/services"
	"github.com/vit0-9/mailr_api/pkg/utils/listing"
)

type SubscriptionHandlers struct {
	subscriptions *services.SubscriptionService
	opts          Options
}

func NewSubscriptionHandlers(subscriptions *services.SubscriptionService, opts Options) *SubscriptionHandlers {
	return &SubscriptionHandlers{subscriptions: subscriptions, opts: opts}
}

// ListSubscriptionsHandler godoc
// @Summary      List subscriptions
// @Tags         Subscriptions
// @Produce      json
// @Param        q query string false "Free-text search"
// @Param        status query string false "active, canceled, trial or expired"
// @Param        sort query string false "plan, price, quantity, billing_date, status or slots"
// @Param        dir query string false "asc or desc"
// @Param        page query int false "1-based page"
// @Param        page_size query int false "Rows per page"
// @Success      200 {object} models.SubscriptionListResponse
// @Failure      400 {object} models.APIErrorResponse
// @Router       /subscriptions [get]
func (h *SubscriptionHandlers) ListSubscriptionsHandler(c *gin.Context) {
	var params models.SubscriptionListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err)
		return
	}
	q := queryFilters(params.Query, map[string]string{"status": params.Status})
	rows, err := h.subscriptions.Visible(q, sortState(params.ListParams))
	if err != nil {
		respondError(c, err)
		return
	}
	page := listing.Paginate(rows, params.Page, h.opts.pageSize(params.PageSize))
	items := make([]models.SubscriptionResponse, len(page.Items))
	for i, s := range page.Items {
		items[i] = models.NewSubscriptionResponse(s)
	}
	c.JSON(http.StatusOK, models.SubscriptionListResponse{
		Items:          items,
		AvailableSlots: h.subscriptions.AvailableSlots(),
		PageMeta:       models.NewPageMeta(page, sortState(params.ListParams)),
	})
}

// GetSubscriptionHandler godoc
// @Summary      Get a subscription
// @Tags         Subscriptions
// @Produce      json
// @Param        id path string true "Subscription ID"
// @Success      200 {object} models.SubscriptionResponse
// @Failure      404 {object} models.APIErrorResponse
// @Router       /subscriptions/{id} [get]
func (h *SubscriptionHandlers) GetSubscriptionHandler(c *gin.Context) {
	s, err := h.subscriptions.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewSubscriptionResponse(s))
}

// CancelSubscriptionHandler godoc
// @Summary      Cancel a subscription
// @Description  Only active or trial subscriptions can be cancelled; their slots stop counting as available.
// @Tags         Subscriptions
// @Produce      json
// @Param        id path string true "Subscription ID"
// @Success      200 {object} models.SubscriptionResponse
// @Failure      404 {object} models.APIErrorResponse
// @Failure      409 {object} models.APIErrorResponse
// @Router       /subscriptions/{id}/cancel [post]
func (h *SubscriptionHandlers) CancelSubscriptionHandler(c *gin.Context) {
	s, err := h.subscriptions.Cancel(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewSubscriptionResponse(s))
}

// AddSlotsHandler godoc
// @Summary      Buy domain slots
// @Description  Adds slots to a live subscription, priced on the domain-slots table.
// @Tags         Subscriptions
// @Accept       json
// @Produce      json
// @Param        id path string true "Subscription ID"
// @Param        request body models.AddSlotsRequest true "Slot count"
// @Success      200 {object} models.AddSlotsResponse
// @Failure      400 {object} models.APIErrorResponse
// @Failure      404 {object} models.APIErrorResponse
// @Failure      409 {object} models.APIErrorResponse
// @Router       /subscriptions/{id}/slots [post]
func (h *SubscriptionHandlers) AddSlotsHandler(c *gin.Context) {
	var req models.AddSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	s, quote, err := h.subscriptions.AddSlots(c.Param("id"), req.Slots)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.AddSlotsResponse{
		Subscription: models.NewSubscriptionResponse(s),
		Quote:        models.NewQuoteResponse(quote),
	})
}
