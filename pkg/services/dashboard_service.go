package services

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vit0-9/mailr_api/pkg/store"
	"github.com/vit0-9/mailr_api/pkg/utils/pricing"
)

// Dashboard is the set of headline figures on the landing page.
type Dashboard struct {
	TotalDomains        int                       `json:"total_domains"`
	ActiveDomains       int                       `json:"active_domains"`
	TotalInboxes        int                       `json:"total_inboxes"`
	DomainsByProvider   map[store.Provider]int    `json:"domains_by_provider"`
	DomainsByStatus     map[string]int            `json:"domains_by_status"`
	ActiveSubscriptions int                       `json:"active_subscriptions"`
	MonthlySpend        decimal.Decimal           `json:"monthly_spend"`
	MonthlySpendDisplay string                    `json:"monthly_spend_display"`
	NextBillingDate     *time.Time                `json:"next_billing_date,omitempty"`
	AvailableSlots      int                       `json:"available_slots"`
	OrdersByStatus      map[store.OrderStatus]int `json:"orders_by_status"`
	UnreadMessages      int                       `json:"unread_messages"`
}

type DashboardService struct {
	stores *store.Stores
}

func NewDashboardService(stores *store.Stores) *DashboardService {
	return &DashboardService{stores: stores}
}

// Summary derives the dashboard from the current store state. Spend and the
// next billing date only count live subscriptions.
func (s *DashboardService) Summary() Dashboard {
	d := Dashboard{
		DomainsByProvider: map[store.Provider]int{},
		DomainsByStatus:   map[string]int{},
		MonthlySpend:      decimal.Zero,
	}
	for _, dom := range s.stores.Domains.List() {
		d.TotalDomains++
		d.TotalInboxes += dom.Inboxes()
		d.DomainsByProvider[dom.Provider]++
		d.DomainsByStatus[dom.Status]++
		if dom.Status == store.DomainStatusActive {
			d.ActiveDomains++
		}
	}
	for _, sub := range s.stores.Subscriptions.List() {
		if !sub.Live() {
			continue
		}
		d.ActiveSubscriptions++
		d.AvailableSlots += sub.AvailableDomainSlots
		d.MonthlySpend = d.MonthlySpend.Add(sub.MonthlyCost())
		if d.NextBillingDate == nil || sub.BillingDate.Before(*d.NextBillingDate) {
			next := sub.BillingDate
			d.NextBillingDate = &next
		}
	}
	d.MonthlySpendDisplay = pricing.Format(d.MonthlySpend)
	d.OrdersByStatus = s.stores.Orders.CountByStatus()
	d.UnreadMessages = s.stores.Messages.UnreadCount()
	return d
}
