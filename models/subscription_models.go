package models

import (
	"time"

	"github.com/vit0-9/mailr_api/pkg/store"
	"github.com/vit0-9/mailr_api/pkg/utils/pricing"
)

type SubscriptionResponse struct {
	ID                   string    `json:"id" example:"sub-001"`
	Plan                 string    `json:"plan" example:"Google Workspace Inboxes"`
	Status               string    `json:"status" example:"active"`
	Price                string    `json:"price" example:"3.00"`
	Quantity             int       `json:"quantity" example:"24"`
	MonthlyCost          string    `json:"monthly_cost" example:"$72.00"`
	BillingDate          time.Time `json:"billing_date"`
	LastBillingDate      time.Time `json:"last_billing_date"`
	AvailableDomainSlots int       `json:"available_domain_slots" example:"6"`
}

func NewSubscriptionResponse(s store.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		ID:                   s.ID,
		Plan:                 s.Plan,
		Status:               string(s.Status),
		Price:                s.Price.StringFixed(2),
		Quantity:             s.Quantity,
		MonthlyCost:          pricing.Format(s.MonthlyCost()),
		BillingDate:          s.BillingDate,
		LastBillingDate:      s.LastBillingDate,
		AvailableDomainSlots: s.AvailableDomainSlots,
	}
}

type SubscriptionListResponse struct {
	Items          []SubscriptionResponse `json:"items"`
	AvailableSlots int                    `json:"available_slots" example:"12"`
	PageMeta
}

type SubscriptionListParams struct {
	ListParams
	Status string `form:"status"`
}

type AddSlotsRequest struct {
	Slots int `json:"slots" binding:"required,min=1,max=10000" example:"50"`
}

type AddSlotsResponse struct {
	Subscription SubscriptionResponse `json:"subscription"`
	Quote        QuoteResponse        `json:"quote"`
}
