package store

// Change actions carried by store events.
const (
	ActionSeeded     = "seeded"
	ActionImported   = "imported"
	ActionSwapped    = "swapped"
	ActionForwarding = "forwarding_updated"
	ActionSelection  = "selection_changed"
	ActionStatus     = "status_changed"
	ActionDeleted    = "deleted"
	ActionCreated    = "created"
	ActionCancelled  = "cancelled"
	ActionSlots      = "slots_changed"
	ActionRead       = "read_changed"
)

type DomainsChanged struct {
	Action string
	IDs    []string
}

type OrdersChanged struct {
	Action string
	IDs    []string
}

type SubscriptionsChanged struct {
	Action string
	IDs    []string
}

type MessagesChanged struct {
	Action string
	IDs    []string
}

// publisher is the subset of eventbus.EventBus the stores need.
type publisher interface {
	Publish(args ...any)
}

type nopPublisher struct{}

func (nopPublisher) Publish(...any) {}

func orNop(p publisher) publisher {
	if p == nil {
		return nopPublisher{}
	}
	return p
}
