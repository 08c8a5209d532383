package services

import (
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/vit0-9/mailr_api/pkg/store"
	"github.com/vit0-9/mailr_api/pkg/utils/csvimport"
	"github.com/vit0-9/mailr_api/pkg/utils/listing"
	"github.com/vit0-9/mailr_api/pkg/utils/validate"
)

// Nameservers the operator points a domain at during a nameserver update.
var providerNameservers = map[store.Provider][]string{
	store.ProviderGoogle:    {"ns1.mailr.io", "ns2.mailr.io"},
	store.ProviderMicrosoft: {"ns3.mailr.io", "ns4.mailr.io"},
}

type DomainService struct {
	domains       *store.DomainStore
	subscriptions *store.SubscriptionStore
	log           *logrus.Logger

	// importMu serialises the slot check and the insert of an import.
	importMu sync.Mutex
}

func NewDomainService(domains *store.DomainStore, subscriptions *store.SubscriptionStore, log *logrus.Logger) *DomainService {
	return &DomainService{domains: domains, subscriptions: subscriptions, log: log}
}

func (s *DomainService) List() []store.Domain {
	return s.domains.List()
}

func (s *DomainService) Get(id string) (store.Domain, error) {
	return s.domains.Get(id)
}

// ImportPreview is the parsed upload together with the slot budget.
type ImportPreview struct {
	Rows           []csvimport.Row   `json:"rows"`
	Summary        csvimport.Summary `json:"summary"`
	AvailableSlots int               `json:"available_slots"`
	WithinLimit    bool              `json:"within_limit"`
}

// Preview parses an upload without changing any state.
func (s *DomainService) Preview(text string, mode csvimport.HeaderMode) ImportPreview {
	rows := csvimport.Parse(text, mode)
	summary := csvimport.Summarize(rows)
	slots := s.subscriptions.AvailableSlots()
	return ImportPreview{
		Rows:           rows,
		Summary:        summary,
		AvailableSlots: slots,
		WithinLimit:    summary.Valid <= slots,
	}
}

// ImportRequest carries the candidate rows to add.
type ImportRequest struct {
	Rows         []csvimport.Row
	Provider     store.Provider
	DisplayNames []string
}

type ImportResult struct {
	Imported []store.Domain    `json:"imported"`
	Skipped  []csvimport.Row   `json:"skipped"`
	Summary  csvimport.Summary `json:"summary"`
}

// Import re-validates the candidate rows and adds the valid ones as Pending
// domains. It fails without changes when no row is valid or the valid rows
// exceed the available slots.
func (s *DomainService) Import(req ImportRequest) (ImportResult, error) {
	rows := make([]csvimport.Row, len(req.Rows))
	for i, r := range req.Rows {
		line := r.Line
		if line == 0 {
			line = i + 1
		}
		rows[i] = csvimport.Check(line, strings.TrimSpace(r.Domain), strings.TrimSpace(r.URL))
	}
	valid := csvimport.ValidRows(rows)
	result := ImportResult{Summary: csvimport.Summarize(rows)}
	for _, r := range rows {
		if !r.Valid {
			result.Skipped = append(result.Skipped, r)
		}
	}
	if len(valid) == 0 {
		return result, ErrNoValidDomains
	}

	provider := req.Provider
	if provider == "" {
		provider = store.ProviderGoogle
	}

	s.importMu.Lock()
	defer s.importMu.Unlock()
	if err := s.subscriptions.ConsumeSlots(len(valid)); err != nil {
		s.log.WithFields(logrus.Fields{"requested": len(valid)}).WithError(err).Warn("domain import rejected")
		return result, err
	}
	candidates := make([]store.Domain, 0, len(valid))
	for _, r := range valid {
		candidates = append(candidates, store.Domain{
			Domain:        r.Domain,
			ForwardingURL: r.URL,
			DisplayNames:  req.DisplayNames,
			Status:        store.DomainStatusPending,
			Provider:      provider,
		})
	}
	result.Imported = s.domains.Add(candidates)
	s.log.WithFields(logrus.Fields{"imported": len(result.Imported), "skipped": len(result.Skipped)}).Info("domains imported")
	return result, nil
}

// Swap replaces a domain name, optionally moving its forwarding URL too.
func (s *DomainService) Swap(id, newDomain, forwardingURL string) (store.Domain, store.Domain, error) {
	newDomain = strings.TrimSpace(newDomain)
	if err := validate.Domain(newDomain); err != nil {
		return store.Domain{}, store.Domain{}, err
	}
	forwardingURL = strings.TrimSpace(forwardingURL)
	if forwardingURL != "" {
		if err := validate.ForwardingURL(forwardingURL); err != nil {
			return store.Domain{}, store.Domain{}, err
		}
	}
	return s.domains.Swap(id, newDomain, forwardingURL)
}

// UpdateForwarding sets the forwarding URL on ids, or on the selected
// domains when ids is empty.
func (s *DomainService) UpdateForwarding(ids []string, forwardingURL string) ([]store.Domain, error) {
	forwardingURL = strings.TrimSpace(forwardingURL)
	if err := validate.ForwardingURL(forwardingURL); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		for _, d := range s.domains.Selected() {
			ids = append(ids, d.ID)
		}
	}
	if len(ids) == 0 {
		return nil, ErrNoDomainsSelected
	}
	return s.domains.SetForwarding(ids, forwardingURL)
}

func (s *DomainService) Select(ids []string, selected bool) (int, error) {
	return s.domains.SetSelected(ids, selected)
}

// SelectAll toggles the selected flag of every row matching q; rows hidden
// by the filter keep their flag.
func (s *DomainService) SelectAll(q listing.Query, selected bool) ([]string, error) {
	if err := DomainSchema.ValidateQuery(q); err != nil {
		return nil, err
	}
	return s.domains.SetSelectedWhere(func(d store.Domain) bool {
		return DomainSchema.Matches(d, q)
	}, selected), nil
}

func (s *DomainService) Delete(id string) error {
	return s.domains.Delete(id)
}

// Visible returns the filtered and sorted domains as shown in the table.
func (s *DomainService) Visible(q listing.Query, sort listing.SortState) ([]store.Domain, error) {
	if err := DomainSchema.Validate(q, sort); err != nil {
		return nil, err
	}
	return DomainSchema.Sort(DomainSchema.Filter(s.domains.List(), q), sort), nil
}

// ExportRows maps domains to export rows.
func ExportRows(domains []store.Domain) []csvimport.ExportRow {
	rows := make([]csvimport.ExportRow, len(domains))
	for i, d := range domains {
		rows[i] = csvimport.ExportRow{
			Domain:        d.Domain,
			ForwardingURL: d.ForwardingURL,
			Status:        d.Status,
			Provider:      string(d.Provider),
		}
	}
	return rows
}

// NameserverUpdate describes the records an operator must set.
type NameserverUpdate struct {
	Domain      store.Domain `json:"domain"`
	Nameservers []string     `json:"nameservers"`
	Required    bool         `json:"required"`
}

func (s *DomainService) Nameservers(id string) (NameserverUpdate, error) {
	d, err := s.domains.Get(id)
	if err != nil {
		return NameserverUpdate{}, err
	}
	return NameserverUpdate{
		Domain:      d,
		Nameservers: providerNameservers[d.Provider],
		Required:    d.Status == store.DomainStatusUpdateNameservers,
	}, nil
}

// ConfirmNameservers records that the operator changed the nameservers; the
// domain waits as Pending until propagation.
func (s *DomainService) ConfirmNameservers(id string) (store.Domain, error) {
	d, err := s.domains.Get(id)
	if err != nil {
		return store.Domain{}, err
	}
	if d.Status != store.DomainStatusUpdateNameservers {
		return store.Domain{}, fmt.Errorf("%w: domain %s is %q, no nameserver update pending",
			store.ErrInvalidTransition, d.Domain, d.Status)
	}
	return s.domains.SetStatus(id, store.DomainStatusPending)
}
