package validate

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// domainPattern accepts host-like names: one or more labels of 1-63
// alphanumerics (inner hyphens allowed) followed by a 2+ letter TLD.
var domainPattern = regexp.MustCompile(`(?i)^(?:[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?\.)+[a-z]{2,}$`)

// ValidationError describes a single rejected field value.
type ValidationError struct {
	Field  string `json:"field"`
	Value  string `json:"value"`
	Reason string `json:"reason"`
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("%s %q: %s", e.Field, e.Value, e.Reason)
}

// IsDomain reports whether s looks like a hostname.
func IsDomain(s string) bool {
	return domainPattern.MatchString(s)
}

const maxPort = 65535

// IsHTTPSURL reports whether s parses as an absolute URL with the https scheme.
// As in browsers, the slashes after "https:" may be missing and the port must
// be in range.
func IsHTTPSURL(s string) bool {
	if s == "" {
		return false
	}
	u, err := url.Parse(s)
	if err != nil || u.Scheme != "https" {
		return false
	}
	if u.Host == "" {
		rest := strings.TrimLeft(s[len("https:"):], "/")
		if rest == "" {
			return false
		}
		if u, err = url.Parse("https://" + rest); err != nil {
			return false
		}
	}
	if u.Hostname() == "" {
		return false
	}
	if p := u.Port(); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil || n > maxPort {
			return false
		}
	}
	return true
}

// Domain returns a *ValidationError when s is not an acceptable domain.
func Domain(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return &ValidationError{Field: "domain", Reason: "domain is required"}
	}
	if !IsDomain(s) {
		return &ValidationError{Field: "domain", Value: s, Reason: "invalid domain format"}
	}
	return nil
}

// ForwardingURL returns a *ValidationError when s is not an https URL.
func ForwardingURL(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return &ValidationError{Field: "forwarding_url", Reason: "forwarding URL is required"}
	}
	if !IsHTTPSURL(s) {
		return &ValidationError{Field: "forwarding_url", Value: s, Reason: "forwarding URL must be a valid https:// URL"}
	}
	return nil
}
