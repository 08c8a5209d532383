package services

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/vit0-9/mailr_api/pkg/store"
	"github.com/vit0-9/mailr_api/pkg/utils/listing"
	"github.com/vit0-9/mailr_api/pkg/utils/pricing"
	"github.com/vit0-9/mailr_api/pkg/utils/validate"
)

type SubscriptionService struct {
	subscriptions *store.SubscriptionStore
	log           *logrus.Logger
}

func NewSubscriptionService(subscriptions *store.SubscriptionStore, log *logrus.Logger) *SubscriptionService {
	return &SubscriptionService{subscriptions: subscriptions, log: log}
}

func (s *SubscriptionService) Visible(q listing.Query, sort listing.SortState) ([]store.Subscription, error) {
	if err := SubscriptionSchema.Validate(q, sort); err != nil {
		return nil, err
	}
	return SubscriptionSchema.Sort(SubscriptionSchema.Filter(s.subscriptions.List(), q), sort), nil
}

func (s *SubscriptionService) Get(id string) (store.Subscription, error) {
	return s.subscriptions.Get(id)
}

func (s *SubscriptionService) Cancel(id string) (store.Subscription, error) {
	sub, err := s.subscriptions.Cancel(id)
	if err != nil {
		return store.Subscription{}, err
	}
	s.log.WithField("subscription_id", id).Info("subscription cancelled")
	return sub, nil
}

// AddSlots buys n more domain slots on a live subscription.
func (s *SubscriptionService) AddSlots(id string, n int) (store.Subscription, pricing.Quote, error) {
	if n < 1 {
		return store.Subscription{}, pricing.Quote{}, &validate.ValidationError{
			Field: "slots", Value: fmt.Sprint(n), Reason: "at least one slot is required",
		}
	}
	quote, err := pricing.DomainSlots.Quote(n)
	if err != nil {
		return store.Subscription{}, pricing.Quote{}, err
	}
	sub, err := s.subscriptions.AddSlots(id, n)
	if err != nil {
		return store.Subscription{}, pricing.Quote{}, err
	}
	s.log.WithFields(logrus.Fields{"subscription_id": id, "slots": n, "total": quote.Formatted}).Info("domain slots added")
	return sub, quote, nil
}

func (s *SubscriptionService) AvailableSlots() int {
	return s.subscriptions.AvailableSlots()
}
