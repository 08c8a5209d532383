package store

import (
	"errors"
	"fmt"
)

var (
	ErrDomainNotFound       = errors.New("domain not found")
	ErrDuplicateDomain      = errors.New("domain already exists")
	ErrOrderNotFound        = errors.New("order not found")
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrMessageNotFound      = errors.New("message not found")
	// ErrInvalidTransition is returned when a status change is not allowed
	// from the record's current status.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// SlotLimitError is returned when more domains are requested than the live
// subscriptions allow.
type SlotLimitError struct {
	Requested int
	Available int
}

func (e *SlotLimitError) Error() string {
	return fmt.Sprintf("cannot add %d domains: only %d slots available", e.Requested, e.Available)
}

func transitionError(kind, id string, from, to any) error {
	return fmt.Errorf("%w: %s %s is %v, cannot become %v", ErrInvalidTransition, kind, id, from, to)
}
