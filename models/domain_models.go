package models

import (
	"time"

	"github.com/vit0-9/mailr_api/pkg/store"
	"github.com/vit0-9/mailr_api/pkg/utils/csvimport"
)

// DomainResponse is a row of the domains table.
type DomainResponse struct {
	ID            string        `json:"id" example:"dom-1001"`
	Domain        string        `json:"domain" example:"growthleads.com"`
	ForwardingURL SafeURLString `json:"forwarding_url" example:"https://acme.com"`
	DisplayNames  []string      `json:"display_names"`
	Inboxes       int           `json:"inboxes" example:"3"`
	Status        string        `json:"status" example:"Active"`
	Provider      string        `json:"provider" example:"Google"`
	Selected      bool          `json:"selected"`
	CreatedAt     time.Time     `json:"created_at"`
}

func NewDomainResponse(d store.Domain) DomainResponse {
	names := d.DisplayNames
	if names == nil {
		names = []string{}
	}
	return DomainResponse{
		ID:            d.ID,
		Domain:        d.Domain,
		ForwardingURL: SafeURLString(d.ForwardingURL),
		DisplayNames:  names,
		Inboxes:       d.Inboxes(),
		Status:        d.Status,
		Provider:      string(d.Provider),
		Selected:      d.Selected,
		CreatedAt:     d.CreatedAt,
	}
}

func NewDomainResponses(ds []store.Domain) []DomainResponse {
	out := make([]DomainResponse, len(ds))
	for i, d := range ds {
		out[i] = NewDomainResponse(d)
	}
	return out
}

type DomainListResponse struct {
	Items []DomainResponse `json:"items"`
	PageMeta
}

// DomainListParams filters the domains table.
type DomainListParams struct {
	ListParams
	Status   string `form:"status"`
	Provider string `form:"provider"`
}

// ImportRowRequest is a candidate row confirmed by the operator.
type ImportRowRequest struct {
	Line   int    `json:"line" example:"2"`
	Domain string `json:"domain" example:"example.com"`
	URL    string `json:"url" example:"https://example.com"`
}

// ImportDomainsRequest confirms an import. Rows are re-validated server side.
type ImportDomainsRequest struct {
	Rows         []ImportRowRequest `json:"rows" binding:"required,min=1,dive"`
	Provider     string             `json:"provider" binding:"omitempty,oneof=Google Microsoft google microsoft" example:"Google"`
	DisplayNames []string           `json:"display_names" binding:"omitempty,max=10,dive,required" example:"Sarah Miller"`
}

func (r ImportDomainsRequest) CSVRows() []csvimport.Row {
	rows := make([]csvimport.Row, len(r.Rows))
	for i, row := range r.Rows {
		rows[i] = csvimport.Row{Line: row.Line, Domain: row.Domain, URL: row.URL}
	}
	return rows
}

// ImportPreviewRequest carries the raw CSV text when no file is uploaded.
type ImportPreviewRequest struct {
	Content string `json:"content" binding:"required" example:"domain,url\nexample.com,https://example.com"`
	Mode    string `json:"mode" binding:"omitempty,oneof=domain domain-list domain_list list" example:"domain"`
}

type ImportPreviewResponse struct {
	Rows           []csvimport.Row   `json:"rows"`
	Summary        csvimport.Summary `json:"summary"`
	AvailableSlots int               `json:"available_slots" example:"12"`
	WithinLimit    bool              `json:"within_limit"`
}

type ImportDomainsResponse struct {
	Imported []DomainResponse  `json:"imported"`
	Skipped  []csvimport.Row   `json:"skipped"`
	Summary  csvimport.Summary `json:"summary"`
}

type SwapDomainRequest struct {
	NewDomain     string        `json:"new_domain" binding:"required,mailr_domain" example:"newdomain.com"`
	ForwardingURL SafeURLString `json:"forwarding_url" binding:"omitempty,https_url" example:"https://acme.com"`
}

type SwapDomainResponse struct {
	Before DomainResponse `json:"before"`
	After  DomainResponse `json:"after"`
}

// UpdateForwardingRequest updates the listed domains, or the selected ones
// when IDs is empty.
type UpdateForwardingRequest struct {
	IDs           []string      `json:"ids" example:"dom-1001"`
	ForwardingURL SafeURLString `json:"forwarding_url" binding:"required,https_url" example:"https://acme.com/new"`
}

type UpdateForwardingResponse struct {
	Updated []DomainResponse `json:"updated"`
}

type SelectDomainsRequest struct {
	IDs      []string `json:"ids" binding:"required,min=1" example:"dom-1001"`
	Selected bool     `json:"selected"`
}

// SelectAllRequest toggles every row matching the given filters.
type SelectAllRequest struct {
	Query    string `json:"q" example:"acme"`
	Status   string `json:"status" example:"Active"`
	Provider string `json:"provider" example:"Google"`
	Selected bool   `json:"selected"`
}

type SelectionResponse struct {
	IDs      []string `json:"ids"`
	Count    int      `json:"count" example:"5"`
	Selected bool     `json:"selected"`
}

type NameserversResponse struct {
	Domain      DomainResponse `json:"domain"`
	Nameservers []string       `json:"nameservers" example:"ns1.mailr.io"`
	Required    bool           `json:"required"`
}
