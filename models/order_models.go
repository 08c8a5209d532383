package models

import (
	"time"

	"github.com/vit0-9/mailr_api/pkg/services"
	"github.com/vit0-9/mailr_api/pkg/store"
	"github.com/vit0-9/mailr_api/pkg/utils/pricing"
)

type OrderDomainResponse struct {
	Domain        string        `json:"domain" example:"growthleads.com"`
	ForwardingURL SafeURLString `json:"forwarding_url" example:"https://acme.com"`
	DisplayNames  []string      `json:"display_names"`
	Status        string        `json:"status" example:"processing"`
	Progress      int           `json:"progress" example:"60"`
}

type OrderResponse struct {
	ID               string                `json:"id" example:"ORD-1002"`
	Date             time.Time             `json:"date"`
	Status           string                `json:"status" example:"processing"`
	Plan             string                `json:"plan" example:"microsoft-inboxes"`
	Provider         string                `json:"provider,omitempty" example:"Microsoft"`
	Sequencer        string                `json:"sequencer,omitempty" example:"Instantly"`
	InboxesPerDomain int                   `json:"inboxes_per_domain" example:"2"`
	Total            string                `json:"total" example:"120"`
	TotalDisplay     string                `json:"total_display" example:"$120.00"`
	Domains          []OrderDomainResponse `json:"domains"`
}

func NewOrderResponse(o store.Order) OrderResponse {
	domains := make([]OrderDomainResponse, len(o.Domains))
	for i, d := range o.Domains {
		names := d.DisplayNames
		if names == nil {
			names = []string{}
		}
		domains[i] = OrderDomainResponse{
			Domain:        d.Domain,
			ForwardingURL: SafeURLString(d.ForwardingURL),
			DisplayNames:  names,
			Status:        d.Status,
			Progress:      d.Progress,
		}
	}
	return OrderResponse{
		ID:               o.ID,
		Date:             o.Date,
		Status:           string(o.Status),
		Plan:             o.Plan,
		Provider:         string(o.Provider),
		Sequencer:        o.Sequencer,
		InboxesPerDomain: o.InboxesPerDomain,
		Total:            o.Total.StringFixed(2),
		TotalDisplay:     pricing.Format(o.Total),
		Domains:          domains,
	}
}

func NewOrderResponses(orders []store.Order) []OrderResponse {
	out := make([]OrderResponse, len(orders))
	for i, o := range orders {
		out[i] = NewOrderResponse(o)
	}
	return out
}

type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	PageMeta
}

type OrderListParams struct {
	ListParams
	Status   string `form:"status"`
	Provider string `form:"provider"`
	Plan     string `form:"plan"`
}

// OrderLineRequest is one domain of an order form.
type OrderLineRequest struct {
	Domain        string        `json:"domain" binding:"required,mailr_domain" example:"example.com"`
	ForwardingURL SafeURLString `json:"forwarding_url" binding:"required,https_url" example:"https://example.com"`
	DisplayNames  []string      `json:"display_names" example:"Sarah Miller"`
}

type InboxOrderRequest struct {
	Provider         string             `json:"provider" binding:"required" example:"Google"`
	Sequencer        string             `json:"sequencer" example:"Smartlead"`
	InboxesPerDomain int                `json:"inboxes_per_domain" binding:"required,min=1,max=100" example:"3"`
	Domains          []OrderLineRequest `json:"domains" binding:"required,min=1,dive"`
}

type DomainOrderRequest struct {
	Sequencer        string             `json:"sequencer" example:"Instantly"`
	InboxesPerDomain int                `json:"inboxes_per_domain" binding:"required,min=1,max=100" example:"3"`
	Domains          []OrderLineRequest `json:"domains" binding:"required,min=1,dive"`
}

func OrderLines(reqs []OrderLineRequest) []services.OrderLine {
	lines := make([]services.OrderLine, len(reqs))
	for i, r := range reqs {
		lines[i] = services.OrderLine{
			Domain:        r.Domain,
			ForwardingURL: r.ForwardingURL.String(),
			DisplayNames:  r.DisplayNames,
		}
	}
	return lines
}

type PlaceOrderResponse struct {
	Order OrderResponse `json:"order"`
	Quote QuoteResponse `json:"quote"`
}

type OrderInboxesResponse struct {
	OrderID string           `json:"order_id" example:"ORD-1002"`
	Inboxes []services.Inbox `json:"inboxes"`
}
