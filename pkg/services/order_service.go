package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vit0-9/mailr_api/pkg/store"
	"github.com/vit0-9/mailr_api/pkg/utils/listing"
	"github.com/vit0-9/mailr_api/pkg/utils/pricing"
	"github.com/vit0-9/mailr_api/pkg/utils/validate"
)

// OrderLine is one domain of an order form.
type OrderLine struct {
	Domain        string
	ForwardingURL string
	DisplayNames  []string
}

// InboxOrder is the inbox order form for a single provider.
type InboxOrder struct {
	Provider         store.Provider
	Sequencer        string
	InboxesPerDomain int
	Lines            []OrderLine
}

type OrderService struct {
	orders *store.OrderStore
	log    *logrus.Logger
}

func NewOrderService(orders *store.OrderStore, log *logrus.Logger) *OrderService {
	return &OrderService{orders: orders, log: log}
}

func (s *OrderService) List() []store.Order {
	return s.orders.List()
}

func (s *OrderService) Get(id string) (store.Order, error) {
	return s.orders.Get(id)
}

// Visible returns the filtered and sorted orders.
func (s *OrderService) Visible(q listing.Query, sort listing.SortState) ([]store.Order, error) {
	if err := OrderSchema.Validate(q, sort); err != nil {
		return nil, err
	}
	if sort.Key == "" {
		sort = DefaultOrderSort
	}
	return OrderSchema.Sort(OrderSchema.Filter(s.orders.List(), q), sort), nil
}

// QuoteInboxOrder prices an inbox order without placing it. Google is priced
// per inbox, Microsoft per domain.
func QuoteInboxOrder(provider store.Provider, domains, inboxesPerDomain int) (pricing.Quote, error) {
	switch provider {
	case store.ProviderGoogle:
		return pricing.GoogleInboxes.Quote(pricing.InboxUnits(domains, inboxesPerDomain))
	case store.ProviderMicrosoft:
		return pricing.MicrosoftInboxes.Quote(domains)
	}
	return pricing.Quote{}, fmt.Errorf("%w: %q", ErrUnknownProvider, provider)
}

// PlaceInboxOrder validates the form, prices it and stores a processing order.
func (s *OrderService) PlaceInboxOrder(form InboxOrder) (store.Order, pricing.Quote, error) {
	provider, ok := store.ParseProvider(string(form.Provider))
	if !ok {
		return store.Order{}, pricing.Quote{}, fmt.Errorf("%w: %q", ErrUnknownProvider, form.Provider)
	}
	if err := checkLines(form.Lines, form.InboxesPerDomain); err != nil {
		return store.Order{}, pricing.Quote{}, err
	}
	quote, err := QuoteInboxOrder(provider, len(form.Lines), form.InboxesPerDomain)
	if err != nil {
		return store.Order{}, pricing.Quote{}, err
	}
	order := s.orders.Create(store.Order{
		Plan:             quote.Plan,
		Provider:         provider,
		Sequencer:        strings.TrimSpace(form.Sequencer),
		InboxesPerDomain: form.InboxesPerDomain,
		Total:            quote.Total,
		Domains:          orderDomains(form.Lines),
	})
	s.log.WithFields(logrus.Fields{
		"order_id": order.ID, "provider": provider, "domains": len(order.Domains), "total": quote.Formatted,
	}).Info("inbox order placed")
	return order, quote, nil
}

// PlaceDomainOrder stores an order for new domains with inboxes, priced per
// inbox on the domain table.
func (s *OrderService) PlaceDomainOrder(lines []OrderLine, inboxesPerDomain int, sequencer string) (store.Order, pricing.Quote, error) {
	if err := checkLines(lines, inboxesPerDomain); err != nil {
		return store.Order{}, pricing.Quote{}, err
	}
	quote, err := pricing.DomainInboxes.Quote(pricing.InboxUnits(len(lines), inboxesPerDomain))
	if err != nil {
		return store.Order{}, pricing.Quote{}, err
	}
	order := s.orders.Create(store.Order{
		Plan:             quote.Plan,
		Sequencer:        strings.TrimSpace(sequencer),
		InboxesPerDomain: inboxesPerDomain,
		Total:            quote.Total,
		Domains:          orderDomains(lines),
	})
	s.log.WithFields(logrus.Fields{
		"order_id": order.ID, "domains": len(order.Domains), "total": quote.Formatted,
	}).Info("domain order placed")
	return order, quote, nil
}

func (s *OrderService) Cancel(id string) (store.Order, error) {
	return s.orders.Cancel(id)
}

// Inboxes lists the mailboxes of an order as address/display name pairs.
func (s *OrderService) Inboxes(id string) ([]Inbox, error) {
	o, err := s.orders.Get(id)
	if err != nil {
		return nil, err
	}
	var out []Inbox
	for _, d := range o.Domains {
		for _, name := range d.DisplayNames {
			out = append(out, Inbox{Address: mailboxAddress(name, d.Domain), DisplayName: name, Domain: d.Domain})
		}
	}
	return out, nil
}

type Inbox struct {
	Address     string `json:"address"`
	DisplayName string `json:"display_name"`
	Domain      string `json:"domain"`
}

func mailboxAddress(displayName, domain string) string {
	local := strings.ToLower(strings.Join(strings.Fields(displayName), "."))
	return local + "@" + domain
}

// checkLines stops at the first invalid field, naming it by its position.
func checkLines(lines []OrderLine, inboxesPerDomain int) error {
	if len(lines) == 0 {
		return ErrEmptyOrder
	}
	if inboxesPerDomain < 1 {
		return &validate.ValidationError{
			Field:  "inboxes_per_domain",
			Value:  fmt.Sprint(inboxesPerDomain),
			Reason: "at least one inbox per domain is required",
		}
	}
	for i, l := range lines {
		if err := validate.Domain(strings.TrimSpace(l.Domain)); err != nil {
			return indexed(err, i)
		}
		if err := validate.ForwardingURL(strings.TrimSpace(l.ForwardingURL)); err != nil {
			return indexed(err, i)
		}
	}
	return nil
}

func indexed(err error, i int) error {
	var ve *validate.ValidationError
	if errors.As(err, &ve) {
		out := *ve
		out.Field = fmt.Sprintf("domains[%d].%s", i, ve.Field)
		return &out
	}
	return err
}

func orderDomains(lines []OrderLine) []store.OrderDomain {
	out := make([]store.OrderDomain, len(lines))
	for i, l := range lines {
		out[i] = store.OrderDomain{
			Domain:        strings.TrimSpace(l.Domain),
			ForwardingURL: strings.TrimSpace(l.ForwardingURL),
			DisplayNames:  l.DisplayNames,
			Status:        string(store.OrderProcessing),
		}
	}
	return out
}
