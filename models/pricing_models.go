package models

import "github.com/vit0-9/mailr_api/pkg/utils/pricing"

// QuoteParams prices either a raw unit count or domains x inboxes.
type QuoteParams struct {
	Plan    string `form:"plan" binding:"required" example:"domain-inboxes"`
	Units   *int   `form:"units" binding:"omitempty,min=0,max=1000000" example:"30"`
	Domains int    `form:"domains" binding:"omitempty,min=0,max=1000000" example:"10"`
	Inboxes int    `form:"inboxes" binding:"omitempty,min=0,max=1000000" example:"3"`
}

type QuoteResponse struct {
	Plan      string `json:"plan" example:"domain-inboxes"`
	Unit      string `json:"unit,omitempty" example:"inbox"`
	Units     int    `json:"units" example:"30"`
	UnitPrice string `json:"unit_price" example:"2.50"`
	Total     string `json:"total" example:"75.00"`
	Formatted string `json:"formatted" example:"$75.00"`
}

func NewQuoteResponse(q pricing.Quote) QuoteResponse {
	resp := QuoteResponse{
		Plan:      q.Plan,
		Units:     q.Units,
		UnitPrice: q.UnitPrice.StringFixed(2),
		Total:     q.Total.StringFixed(2),
		Formatted: q.Formatted,
	}
	if t, ok := pricing.ByName(q.Plan); ok {
		resp.Unit = t.Unit
	}
	return resp
}

type TierResponse struct {
	Min       int    `json:"min" example:"400"`
	UnitPrice string `json:"unit_price" example:"2.00"`
}

type PricingTableResponse struct {
	Name     string         `json:"name" example:"domain-inboxes"`
	Unit     string         `json:"unit" example:"inbox"`
	Tiers    []TierResponse `json:"tiers"`
	Fallback string         `json:"fallback" example:"2.50"`
}

func NewPricingTableResponse(t pricing.Table) PricingTableResponse {
	tiers := make([]TierResponse, len(t.Tiers))
	for i, tr := range t.Tiers {
		tiers[i] = TierResponse{Min: tr.Min, UnitPrice: tr.UnitPrice.StringFixed(2)}
	}
	return PricingTableResponse{Name: t.Name, Unit: t.Unit, Tiers: tiers, Fallback: t.Fallback.StringFixed(2)}
}
