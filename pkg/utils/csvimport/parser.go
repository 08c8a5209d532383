// Package csvimport turns uploaded domain lists into validated candidate rows
// and renders domain tables back to CSV.
//
// The format is deliberately naive: lines are split on '\n' and fields on ','
// with no quoting or escaping support.
package csvimport

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/publicsuffix"

	"github.com/vit0-9/mailr_api/pkg/utils/validate"
)

// HeaderMode selects how the first line is recognised as a header row.
type HeaderMode int

const (
	// HeaderDomain treats the first line as a header when it mentions "domain".
	HeaderDomain HeaderMode = iota
	// HeaderDomainList also accepts "forwarding" or "url" in the first line.
	HeaderDomainList
)

var headerKeywords = map[HeaderMode][]string{
	HeaderDomain:     {"domain"},
	HeaderDomainList: {"domain", "forwarding", "url"},
}

// ParseHeaderMode maps the user-facing mode names to a HeaderMode.
func ParseHeaderMode(s string) (HeaderMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "domain":
		return HeaderDomain, nil
	case "domain-list", "domain_list", "list":
		return HeaderDomainList, nil
	default:
		return HeaderDomain, fmt.Errorf("unknown header mode %q (expected domain|domain-list)", s)
	}
}

// Row is a single candidate entry read from an upload.
type Row struct {
	Line              int      `json:"line"`
	Domain            string   `json:"domain"`
	URL               string   `json:"url"`
	Valid             bool     `json:"valid"`
	Error             string   `json:"error,omitempty"`
	Errors            []string `json:"errors,omitempty"`
	RegistrableDomain string   `json:"registrable_domain,omitempty"`
}

// ErrTooLarge is returned by ReadAll when the upload exceeds the size limit.
var ErrTooLarge = errors.New("csvimport: upload exceeds size limit")

// ReadAll reads an upload fully into memory. A limit <= 0 disables the check.
func ReadAll(r io.Reader, limit int64) (string, error) {
	if limit > 0 {
		r = io.LimitReader(r, limit+1)
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if limit > 0 && int64(len(b)) > limit {
		return "", ErrTooLarge
	}
	return string(b), nil
}

// IsHeader reports whether line would be skipped as a header row under mode.
func IsHeader(line string, mode HeaderMode) bool {
	lower := strings.ToLower(line)
	for _, kw := range headerKeywords[mode] {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Parse splits text into candidate rows, preserving file order. Blank lines
// are skipped and duplicates are kept.
func Parse(text string, mode HeaderMode) []Row {
	lines := strings.Split(text, "\n")
	rows := make([]Row, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if i == 0 && IsHeader(line, mode) {
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, ",")
		domain := strings.TrimSpace(fields[0])
		url := ""
		if len(fields) > 1 {
			url = strings.TrimSpace(fields[1])
		}
		rows = append(rows, Check(i+1, domain, url))
	}
	return rows
}

// Check validates a single (domain, url) pair. The domain error, when present,
// is reported first.
func Check(line int, domain, url string) Row {
	row := Row{Line: line, Domain: domain, URL: url}
	if err := validate.Domain(domain); err != nil {
		row.Errors = append(row.Errors, reason(err))
	}
	if err := validate.ForwardingURL(url); err != nil {
		row.Errors = append(row.Errors, reason(err))
	}
	row.Valid = len(row.Errors) == 0
	if !row.Valid {
		row.Error = row.Errors[0]
		return row
	}
	if apex, err := publicsuffix.EffectiveTLDPlusOne(strings.ToLower(domain)); err == nil {
		row.RegistrableDomain = apex
	}
	return row
}

func reason(err error) string {
	var vErr *validate.ValidationError
	if errors.As(err, &vErr) {
		return vErr.Reason
	}
	return err.Error()
}

// Summary counts valid and invalid rows.
type Summary struct {
	Total   int `json:"total"`
	Valid   int `json:"valid"`
	Invalid int `json:"invalid"`
}

func Summarize(rows []Row) Summary {
	s := Summary{Total: len(rows)}
	for _, r := range rows {
		if r.Valid {
			s.Valid++
		}
	}
	s.Invalid = s.Total - s.Valid
	return s
}

// ValidRows returns the rows that passed validation, in order.
func ValidRows(rows []Row) []Row {
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		if r.Valid {
			out = append(out, r)
		}
	}
	return out
}
