package services

import (
	"strconv"
	"time"

	"github.com/vit0-9/mailr_api/pkg/store"
	"github.com/vit0-9/mailr_api/pkg/utils/listing"
)

// Table schemas: which columns are searchable, filterable and sortable.
var (
	DomainSchema = &listing.Schema[store.Domain]{
		Text: []func(store.Domain) string{
			func(d store.Domain) string { return d.Domain },
			func(d store.Domain) string { return d.ForwardingURL },
		},
		Exact: map[string]func(store.Domain) string{
			"status":   func(d store.Domain) string { return d.Status },
			"provider": func(d store.Domain) string { return string(d.Provider) },
		},
		Sorts: map[string]listing.Comparator[store.Domain]{
			"domain":         listing.By(func(d store.Domain) string { return d.Domain }, listing.CompareStrings),
			"forwarding_url": listing.By(func(d store.Domain) string { return d.ForwardingURL }, listing.CompareStrings),
			"provider":       listing.By(func(d store.Domain) string { return string(d.Provider) }, listing.CompareStrings),
			"status":         listing.By(func(d store.Domain) string { return d.Status }, listing.ComparePriority(store.DomainStatusPriority)),
			"inboxes":        listing.By(store.Domain.Inboxes, listing.CompareInts),
			"created_at":     listing.By(func(d store.Domain) time.Time { return d.CreatedAt }, listing.CompareTimes),
		},
	}

	OrderSchema = &listing.Schema[store.Order]{
		Text: []func(store.Order) string{
			func(o store.Order) string { return o.ID },
			func(o store.Order) string { return o.Sequencer },
			func(o store.Order) string {
				names := ""
				for _, d := range o.Domains {
					names += d.Domain + " "
				}
				return names
			},
		},
		Exact: map[string]func(store.Order) string{
			"status":   func(o store.Order) string { return string(o.Status) },
			"provider": func(o store.Order) string { return string(o.Provider) },
			"plan":     func(o store.Order) string { return o.Plan },
		},
		Sorts: map[string]listing.Comparator[store.Order]{
			"id":      listing.By(func(o store.Order) string { return o.ID }, listing.CompareStrings),
			"date":    listing.By(func(o store.Order) time.Time { return o.Date }, listing.CompareTimes),
			"domains": listing.By(func(o store.Order) int { return len(o.Domains) }, listing.CompareInts),
			"status":  listing.By(func(o store.Order) string { return string(o.Status) }, listing.ComparePriority(store.OrderStatusPriority)),
			"total": listing.By(func(o store.Order) float64 {
				f, _ := o.Total.Float64()
				return f
			}, listing.CompareFloats),
		},
	}

	SubscriptionSchema = &listing.Schema[store.Subscription]{
		Text: []func(store.Subscription) string{
			func(s store.Subscription) string { return s.ID },
			func(s store.Subscription) string { return s.Plan },
		},
		Exact: map[string]func(store.Subscription) string{
			"status": func(s store.Subscription) string { return string(s.Status) },
		},
		Sorts: map[string]listing.Comparator[store.Subscription]{
			"plan": listing.By(func(s store.Subscription) string { return s.Plan }, listing.CompareStrings),
			"price": listing.By(func(s store.Subscription) float64 {
				f, _ := s.Price.Float64()
				return f
			}, listing.CompareFloats),
			"quantity":     listing.By(func(s store.Subscription) int { return s.Quantity }, listing.CompareInts),
			"billing_date": listing.By(func(s store.Subscription) time.Time { return s.BillingDate }, listing.CompareTimes),
			"status":       listing.By(func(s store.Subscription) string { return string(s.Status) }, listing.ComparePriority(store.SubscriptionStatusPriority)),
			"slots":        listing.By(func(s store.Subscription) int { return s.AvailableDomainSlots }, listing.CompareInts),
		},
	}

	MessageSchema = &listing.Schema[store.Message]{
		Text: []func(store.Message) string{
			func(m store.Message) string { return m.From },
			func(m store.Message) string { return m.Subject },
			func(m store.Message) string { return m.Snippet },
		},
		Exact: map[string]func(store.Message) string{
			"mailbox": func(m store.Message) string { return m.Mailbox },
			"read":    func(m store.Message) string { return strconv.FormatBool(m.Read) },
		},
		Sorts: map[string]listing.Comparator[store.Message]{
			"received_at": listing.By(func(m store.Message) time.Time { return m.ReceivedAt }, listing.CompareTimes),
			"from":        listing.By(func(m store.Message) string { return m.From }, listing.CompareStrings),
			"mailbox":     listing.By(func(m store.Message) string { return m.Mailbox }, listing.CompareStrings),
		},
	}
)

// Default sorts used when a request names none.
var (
	DefaultDomainSort       = listing.SortState{}
	DefaultOrderSort        = listing.SortState{Key: "date", Dir: listing.Desc}
	DefaultSubscriptionSort = listing.SortState{}
	DefaultMessageSort      = listing.SortState{Key: "received_at", Dir: listing.Desc}
)
