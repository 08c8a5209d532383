package store

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stores bundles the in-memory state of the dashboard.
type Stores struct {
	Domains       *DomainStore
	Orders        *OrderStore
	Subscriptions *SubscriptionStore
	Messages      *MessageStore
}

func New(bus publisher) *Stores {
	return &Stores{
		Domains:       NewDomainStore(bus),
		Orders:        NewOrderStore(bus),
		Subscriptions: NewSubscriptionStore(bus),
		Messages:      NewMessageStore(bus),
	}
}

// NewSeeded returns stores loaded with the sample data set.
func NewSeeded(bus publisher) *Stores {
	s := New(bus)
	s.Domains.Seed(SeedDomains())
	s.Orders.Seed(SeedOrders())
	s.Subscriptions.Seed(SeedSubscriptions())
	s.Messages.Seed(SeedMessages())
	return s
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 9, 0, 0, 0, time.UTC)
}

func SeedDomains() []Domain {
	return []Domain{
		{ID: "dom-1001", Domain: "growthleads.com", ForwardingURL: "https://acme.com", DisplayNames: []string{"Sarah Miller", "James Carter", "Emily Chen"}, Status: DomainStatusActive, Provider: ProviderGoogle, CreatedAt: date(2024, time.January, 8)},
		{ID: "dom-1002", Domain: "getacmehq.com", ForwardingURL: "https://acme.com", DisplayNames: []string{"Sarah Miller", "James Carter"}, Status: DomainStatusActive, Provider: ProviderGoogle, CreatedAt: date(2024, time.January, 8)},
		{ID: "dom-1003", Domain: "tryacme.io", ForwardingURL: "https://acme.com/demo", DisplayNames: []string{"Emily Chen", "Michael Brown", "Olivia Davis"}, Status: DomainStatusPending, Provider: ProviderMicrosoft, CreatedAt: date(2024, time.February, 2)},
		{ID: "dom-1004", Domain: "acmeoutreach.co", ForwardingURL: "https://acme.com", DisplayNames: []string{"Michael Brown"}, Status: DomainStatusUpdateNameservers, Provider: ProviderGoogle, CreatedAt: date(2024, time.February, 14)},
		{ID: "dom-1005", Domain: "meetacme.net", ForwardingURL: "https://acme.com/book", DisplayNames: []string{"Olivia Davis", "Daniel Wilson"}, Status: DomainStatusActive, Provider: ProviderMicrosoft, CreatedAt: date(2024, time.March, 1)},
		{ID: "dom-1006", Domain: "acmesales.org", ForwardingURL: "https://acme.com/sales", DisplayNames: []string{"Daniel Wilson", "Sophia Martinez", "Liam Johnson"}, Status: DomainStatusActive, Provider: ProviderGoogle, CreatedAt: date(2024, time.March, 11)},
		{ID: "dom-1007", Domain: "hello-acme.com", ForwardingURL: "https://acme.com", DisplayNames: []string{"Sophia Martinez"}, Status: DomainStatusPending, Provider: ProviderGoogle, CreatedAt: date(2024, time.March, 19)},
		{ID: "dom-1008", Domain: "acmepartners.io", ForwardingURL: "https://partners.acme.com", DisplayNames: []string{"Liam Johnson", "Ava Thompson"}, Status: DomainStatusActive, Provider: ProviderMicrosoft, CreatedAt: date(2024, time.April, 3)},
		{ID: "dom-1009", Domain: "joinacme.co", ForwardingURL: "https://acme.com/careers", DisplayNames: []string{"Ava Thompson", "Noah Garcia"}, Status: DomainStatusUpdateNameservers, Provider: ProviderMicrosoft, CreatedAt: date(2024, time.April, 22)},
		{ID: "dom-1010", Domain: "acmegrowth.net", ForwardingURL: "https://acme.com", DisplayNames: []string{"Noah Garcia", "Sarah Miller", "James Carter"}, Status: DomainStatusActive, Provider: ProviderGoogle, CreatedAt: date(2024, time.May, 6)},
		{ID: "dom-1011", Domain: "teamacme.org", ForwardingURL: "https://acme.com/team", DisplayNames: []string{"Emily Chen"}, Status: DomainStatusActive, Provider: ProviderGoogle, CreatedAt: date(2024, time.May, 20)},
		{ID: "dom-1012", Domain: "acmemail.io", ForwardingURL: "https://acme.com", DisplayNames: []string{"Michael Brown", "Olivia Davis"}, Status: DomainStatusPending, Provider: ProviderMicrosoft, CreatedAt: date(2024, time.June, 2)},
	}
}

func SeedOrders() []Order {
	return []Order{
		{
			ID: "ORD-1001", Date: date(2024, time.May, 2), Status: OrderCompleted, Plan: "google-inboxes",
			Provider: ProviderGoogle, Sequencer: "Smartlead", InboxesPerDomain: 3, Total: decimal.RequireFromString("18.00"),
			Domains: []OrderDomain{
				{Domain: "growthleads.com", ForwardingURL: "https://acme.com", DisplayNames: []string{"Sarah Miller", "James Carter", "Emily Chen"}, Status: "completed", Progress: 100},
				{Domain: "acmegrowth.net", ForwardingURL: "https://acme.com", DisplayNames: []string{"Noah Garcia", "Sarah Miller", "James Carter"}, Status: "completed", Progress: 100},
			},
		},
		{
			ID: "ORD-1002", Date: date(2024, time.May, 28), Status: OrderProcessing, Plan: "microsoft-inboxes",
			Provider: ProviderMicrosoft, Sequencer: "Instantly", InboxesPerDomain: 2, Total: decimal.RequireFromString("120.00"),
			Domains: []OrderDomain{
				{Domain: "acmemail.io", ForwardingURL: "https://acme.com", DisplayNames: []string{"Michael Brown", "Olivia Davis"}, Status: "processing", Progress: 60},
				{Domain: "joinacme.co", ForwardingURL: "https://acme.com/careers", DisplayNames: []string{"Ava Thompson", "Noah Garcia"}, Status: "processing", Progress: 35},
			},
		},
		{
			ID: "ORD-1003", Date: date(2024, time.April, 15), Status: OrderCancelled, Plan: "domain-inboxes",
			Provider: ProviderGoogle, InboxesPerDomain: 3, Total: decimal.RequireFromString("7.50"),
			Domains: []OrderDomain{
				{Domain: "acmeoutreach.co", ForwardingURL: "https://acme.com", DisplayNames: []string{"Michael Brown"}, Status: "cancelled", Progress: 0},
			},
		},
		{
			ID: "ORD-1004", Date: date(2024, time.June, 3), Status: OrderProcessing, Plan: "domain-inboxes",
			Provider: ProviderGoogle, Sequencer: "Smartlead", InboxesPerDomain: 3, Total: decimal.RequireFromString("22.50"),
			Domains: []OrderDomain{
				{Domain: "teamacme.org", ForwardingURL: "https://acme.com/team", DisplayNames: []string{"Emily Chen"}, Status: "processing", Progress: 80},
				{Domain: "hello-acme.com", ForwardingURL: "https://acme.com", DisplayNames: []string{"Sophia Martinez"}, Status: "processing", Progress: 20},
				{Domain: "tryacme.io", ForwardingURL: "https://acme.com/demo", DisplayNames: []string{"Emily Chen", "Michael Brown", "Olivia Davis"}, Status: "processing", Progress: 10},
			},
		},
		{
			ID: "ORD-1005", Date: date(2024, time.March, 9), Status: OrderCompleted, Plan: "microsoft-inboxes",
			Provider: ProviderMicrosoft, InboxesPerDomain: 2, Total: decimal.RequireFromString("60.00"),
			Domains: []OrderDomain{
				{Domain: "meetacme.net", ForwardingURL: "https://acme.com/book", DisplayNames: []string{"Olivia Davis", "Daniel Wilson"}, Status: "completed", Progress: 100},
			},
		},
	}
}

func SeedSubscriptions() []Subscription {
	return []Subscription{
		{ID: "sub-001", Plan: "Google Workspace Inboxes", Status: SubscriptionActive, Price: decimal.RequireFromString("3.00"), Quantity: 24, BillingDate: date(2024, time.July, 1), LastBillingDate: date(2024, time.June, 1), AvailableDomainSlots: 6},
		{ID: "sub-002", Plan: "Microsoft 365 Inboxes", Status: SubscriptionActive, Price: decimal.RequireFromString("50.00"), Quantity: 5, BillingDate: date(2024, time.June, 15), LastBillingDate: date(2024, time.May, 15), AvailableDomainSlots: 4},
		{ID: "sub-003", Plan: "Domain Slots", Status: SubscriptionTrial, Price: decimal.RequireFromString("15.00"), Quantity: 10, BillingDate: date(2024, time.June, 20), LastBillingDate: date(2024, time.June, 6), AvailableDomainSlots: 2},
		{ID: "sub-004", Plan: "Google Workspace Inboxes", Status: SubscriptionCanceled, Price: decimal.RequireFromString("3.00"), Quantity: 12, BillingDate: date(2024, time.April, 1), LastBillingDate: date(2024, time.March, 1), AvailableDomainSlots: 5},
		{ID: "sub-005", Plan: "Domain Slots", Status: SubscriptionExpired, Price: decimal.RequireFromString("12.00"), Quantity: 50, BillingDate: date(2024, time.February, 1), LastBillingDate: date(2024, time.January, 1), AvailableDomainSlots: 20},
	}
}

func SeedMessages() []Message {
	return []Message{
		{ID: "msg-001", Mailbox: "sarah@growthleads.com", From: "dana@prospectco.com", Subject: "Re: Quick question about your outreach", Snippet: "Thanks for reaching out, happy to set up a call next week.", ReceivedAt: date(2024, time.June, 4), Read: false},
		{ID: "msg-002", Mailbox: "james@getacmehq.com", From: "noreply@smartlead.ai", Subject: "Warmup report", Snippet: "Your inbox warmup score is 94 this week.", ReceivedAt: date(2024, time.June, 3), Read: true},
		{ID: "msg-003", Mailbox: "olivia@meetacme.net", From: "mark@bigretail.com", Subject: "Re: Partnership", Snippet: "Could you send over pricing for the enterprise tier?", ReceivedAt: date(2024, time.June, 3), Read: false},
		{ID: "msg-004", Mailbox: "emily@tryacme.io", From: "postmaster@outlook.com", Subject: "Delivery status notification", Snippet: "Your message could not be delivered to one recipient.", ReceivedAt: date(2024, time.June, 2), Read: true},
		{ID: "msg-005", Mailbox: "liam@acmesales.org", From: "kate@fintechhub.io", Subject: "Re: Intro", Snippet: "Not interested at this time, please remove me.", ReceivedAt: date(2024, time.June, 1), Read: false},
		{ID: "msg-006", Mailbox: "sarah@growthleads.com", From: "tom@logistics.co", Subject: "Re: Following up", Snippet: "Let's talk Thursday at 2pm.", ReceivedAt: date(2024, time.May, 30), Read: false},
	}
}
