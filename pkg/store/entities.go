package store

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Provider string

const (
	ProviderGoogle    Provider = "Google"
	ProviderMicrosoft Provider = "Microsoft"
)

// ParseProvider accepts provider names in any case.
func ParseProvider(s string) (Provider, bool) {
	s = strings.TrimSpace(s)
	for _, p := range []Provider{ProviderGoogle, ProviderMicrosoft} {
		if strings.EqualFold(s, string(p)) {
			return p, true
		}
	}
	return "", false
}

// Domain status labels are free-form; these are the ones the service sets.
const (
	DomainStatusActive            = "Active"
	DomainStatusPending           = "Pending"
	DomainStatusUpdateNameservers = "Update Nameservers"
)

// DomainStatusPriority is the sort order of the status column.
var DomainStatusPriority = []string{DomainStatusActive, DomainStatusPending, DomainStatusUpdateNameservers}

type Domain struct {
	ID            string    `json:"id"`
	Domain        string    `json:"domain"`
	ForwardingURL string    `json:"forwarding_url"`
	DisplayNames  []string  `json:"display_names"`
	Status        string    `json:"status"`
	Provider      Provider  `json:"provider"`
	Selected      bool      `json:"selected"`
	CreatedAt     time.Time `json:"created_at"`
}

// Inboxes is the number of mailboxes provisioned on the domain.
func (d Domain) Inboxes() int {
	return len(d.DisplayNames)
}

func (d Domain) clone() Domain {
	d.DisplayNames = append([]string(nil), d.DisplayNames...)
	return d
}

type OrderStatus string

const (
	OrderProcessing OrderStatus = "processing"
	OrderCompleted  OrderStatus = "completed"
	OrderCancelled  OrderStatus = "cancelled"
)

var OrderStatusPriority = []string{string(OrderProcessing), string(OrderCompleted), string(OrderCancelled)}

type OrderDomain struct {
	Domain        string   `json:"domain"`
	ForwardingURL string   `json:"forwarding_url"`
	DisplayNames  []string `json:"display_names"`
	Status        string   `json:"status"`
	Progress      int      `json:"progress"`
}

type Order struct {
	ID               string          `json:"id"`
	Date             time.Time       `json:"date"`
	Status           OrderStatus     `json:"status"`
	Plan             string          `json:"plan"`
	Provider         Provider        `json:"provider,omitempty"`
	Sequencer        string          `json:"sequencer,omitempty"`
	InboxesPerDomain int             `json:"inboxes_per_domain"`
	Total            decimal.Decimal `json:"total"`
	Domains          []OrderDomain   `json:"domains"`
}

func (o Order) clone() Order {
	ds := make([]OrderDomain, len(o.Domains))
	for i, d := range o.Domains {
		d.DisplayNames = append([]string(nil), d.DisplayNames...)
		ds[i] = d
	}
	o.Domains = ds
	return o
}

type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionCanceled SubscriptionStatus = "canceled"
	SubscriptionTrial    SubscriptionStatus = "trial"
	SubscriptionExpired  SubscriptionStatus = "expired"
)

var SubscriptionStatusPriority = []string{
	string(SubscriptionActive), string(SubscriptionTrial), string(SubscriptionCanceled), string(SubscriptionExpired),
}

type Subscription struct {
	ID                   string             `json:"id"`
	Plan                 string             `json:"plan"`
	Status               SubscriptionStatus `json:"status"`
	Price                decimal.Decimal    `json:"price"`
	Quantity             int                `json:"quantity"`
	BillingDate          time.Time          `json:"billing_date"`
	LastBillingDate      time.Time          `json:"last_billing_date"`
	AvailableDomainSlots int                `json:"available_domain_slots"`
}

// Live reports whether the subscription currently grants slots.
func (s Subscription) Live() bool {
	return s.Status == SubscriptionActive || s.Status == SubscriptionTrial
}

// MonthlyCost is price * quantity.
func (s Subscription) MonthlyCost() decimal.Decimal {
	return s.Price.Mul(decimal.NewFromInt(int64(s.Quantity)))
}

type Message struct {
	ID         string    `json:"id"`
	Mailbox    string    `json:"mailbox"`
	From       string    `json:"from"`
	Subject    string    `json:"subject"`
	Snippet    string    `json:"snippet"`
	ReceivedAt time.Time `json:"received_at"`
	Read       bool      `json:"read"`
}
