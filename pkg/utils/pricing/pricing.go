// Package pricing holds the per-page tiered price tables used to quote orders.
//
// Every table maps a unit count to a flat per-unit price through a list of
// breakpoints; the total is units * unit price.
package pricing

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

const Currency = money.USD

// MaxUnits is the largest unit count a table will price.
const MaxUnits = 1_000_000

// ErrTooManyUnits is returned when a unit count exceeds MaxUnits or its total
// cannot be represented in cents.
var ErrTooManyUnits = errors.New("pricing: unit count too large")

var maxCents = decimal.NewFromInt(math.MaxInt64)

// Tier applies UnitPrice when the unit count is at least Min.
type Tier struct {
	Min       int             `json:"min"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Table is a named breakpoint table. Tiers are checked from the highest Min
// down; Fallback applies below the lowest tier.
type Table struct {
	Name     string          `json:"name"`
	Unit     string          `json:"unit"`
	Tiers    []Tier          `json:"tiers"`
	Fallback decimal.Decimal `json:"fallback"`
}

// Quote is the priced result for a unit count.
type Quote struct {
	Plan      string          `json:"plan"`
	Units     int             `json:"units"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
	Formatted string          `json:"formatted"`
}

func newTable(name, unit string, fallback string, tiers ...Tier) Table {
	sorted := append([]Tier(nil), tiers...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Min > sorted[j].Min })
	return Table{Name: name, Unit: unit, Tiers: sorted, Fallback: decimal.RequireFromString(fallback)}
}

func tier(min int, price string) Tier {
	return Tier{Min: min, UnitPrice: decimal.RequireFromString(price)}
}

// UnitPrice returns the per-unit price for units.
func (t Table) UnitPrice(units int) decimal.Decimal {
	for _, tr := range t.Tiers {
		if units >= tr.Min {
			return tr.UnitPrice
		}
	}
	return t.Fallback
}

// Quote prices units against the table.
func (t Table) Quote(units int) (Quote, error) {
	if units < 0 {
		return Quote{}, fmt.Errorf("pricing: negative unit count %d", units)
	}
	if units > MaxUnits {
		return Quote{}, fmt.Errorf("%w: %d exceeds %d", ErrTooManyUnits, units, MaxUnits)
	}
	price := t.UnitPrice(units)
	total := price.Mul(decimal.NewFromInt(int64(units)))
	if total.Shift(2).Round(0).GreaterThan(maxCents) {
		return Quote{}, fmt.Errorf("%w: total %s", ErrTooManyUnits, total)
	}
	return Quote{
		Plan:      t.Name,
		Units:     units,
		UnitPrice: price,
		Total:     total,
		Formatted: Format(total),
	}, nil
}

// Format renders an amount as a currency string, e.g. "$1,250.00".
func Format(amount decimal.Decimal) string {
	cents := amount.Shift(2).Round(0).IntPart()
	return money.New(cents, Currency).Display()
}

const (
	PlanDomainInboxes    = "domain-inboxes"
	PlanMicrosoftInboxes = "microsoft-inboxes"
	PlanGoogleInboxes    = "google-inboxes"
	PlanDomainSlots      = "domain-slots"
)

var (
	// DomainInboxes prices the domain order page per inbox
	// (domains x inboxes per domain). The lowest tier and the fallback share
	// the same price.
	DomainInboxes = newTable(PlanDomainInboxes, "inbox", "2.50",
		tier(400, "2.00"),
		tier(150, "2.25"),
		tier(30, "2.50"),
	)

	// MicrosoftInboxes prices the Microsoft inbox order page per domain.
	MicrosoftInboxes = newTable(PlanMicrosoftInboxes, "domain", "60",
		tier(100, "25"),
		tier(50, "40"),
		tier(20, "50"),
	)

	// GoogleInboxes prices the Google inbox order page per inbox.
	GoogleInboxes = newTable(PlanGoogleInboxes, "inbox", "3.00",
		tier(500, "2.50"),
		tier(200, "2.75"),
		tier(100, "3.00"),
	)

	// DomainSlots prices additional subscription slots per slot.
	DomainSlots = newTable(PlanDomainSlots, "slot", "15",
		tier(100, "10"),
		tier(50, "12"),
	)
)

// Tables lists every table in a stable order.
func Tables() []Table {
	return []Table{DomainInboxes, MicrosoftInboxes, GoogleInboxes, DomainSlots}
}

// ByName finds a table by plan name, case-insensitively.
func ByName(name string) (Table, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, t := range Tables() {
		if t.Name == name {
			return t, true
		}
	}
	return Table{}, false
}

// InboxUnits is the unit count for tables priced per inbox. A product that
// overflows int saturates to math.MaxInt so that Quote rejects it.
func InboxUnits(domains, inboxesPerDomain int) int {
	if domains > 0 && inboxesPerDomain > math.MaxInt/domains {
		return math.MaxInt
	}
	return domains * inboxesPerDomain
}
