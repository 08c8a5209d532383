package services

import "errors"

var (
	ErrNoValidDomains    = errors.New("no valid domains to import")
	ErrNoDomainsSelected = errors.New("no domains selected")
	ErrEmptyOrder        = errors.New("order must contain at least one domain")
	ErrUnknownProvider   = errors.New("unknown provider")
)
