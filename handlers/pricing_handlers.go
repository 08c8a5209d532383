package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vit0-9/mailr_api/models"
	"github.com/vit0-9/mailr_api/pkg/utils/pricing"
)

type PricingHandlers struct{}

func NewPricingHandlers() *PricingHandlers {
	return &PricingHandlers{}
}

// QuoteHandler godoc
// @Summary      Price an order
// @Description  Prices either an explicit unit count or domains x inboxes. Tables priced per domain only use the domain count.
// @Tags         Pricing
// @Produce      json
// @Param        plan query string true "domain-inboxes, microsoft-inboxes, google-inboxes or domain-slots"
// @Param        units query int false "Unit count, at most 1000000"
// @Param        domains query int false "Domain count, at most 1000000"
// @Param        inboxes query int false "Inboxes per domain, at most 1000000"
// @Success      200 {object} models.QuoteResponse
// @Failure      400 {object} map[string]string
// @Router       /pricing/quote [get]
func (h *PricingHandlers) QuoteHandler(c *gin.Context) {
	var params models.QuoteParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err)
		return
	}
	table, ok := pricing.ByName(params.Plan)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown plan " + params.Plan})
		return
	}
	units := unitsFor(table, params)
	quote, err := table.Quote(units)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.NewQuoteResponse(quote))
}

func unitsFor(t pricing.Table, p models.QuoteParams) int {
	if p.Units != nil {
		return *p.Units
	}
	if t.Unit == "inbox" {
		inboxes := p.Inboxes
		if inboxes == 0 {
			inboxes = 1
		}
		return pricing.InboxUnits(p.Domains, inboxes)
	}
	return p.Domains
}

// TablesHandler godoc
// @Summary      List price tables
// @Tags         Pricing
// @Produce      json
// @Success      200 {array} models.PricingTableResponse
// @Router       /pricing/tables [get]
func (h *PricingHandlers) TablesHandler(c *gin.Context) {
	tables := pricing.Tables()
	out := make([]models.PricingTableResponse, len(tables))
	for i, t := range tables {
		out[i] = models.NewPricingTableResponse(t)
	}
	c.JSON(http.StatusOK, out)
}
