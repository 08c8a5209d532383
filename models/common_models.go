// models/common_models.go
package models

import "github.com/vit0-9/mailr_api/pkg/utils/listing"

// APIErrorResponse represents a standard error response format.
type APIErrorResponse struct {
	StatusCode int    `json:"status_code"`       // HTTP status code
	ErrorCode  string `json:"error_code"`        // Application-specific error code (optional)
	Message    string `json:"message"`           // User-friendly error message
	Details    string `json:"details,omitempty"` // More detailed information, if available
}

// Error codes carried in APIErrorResponse.ErrorCode.
const (
	ErrorCodeNotFound   = "not_found"
	ErrorCodeValidation = "validation_failed"
	ErrorCodeSlotLimit  = "slot_limit_exceeded"
	ErrorCodeConflict   = "invalid_transition"
	ErrorCodeDuplicate  = "duplicate_domain"
	ErrorCodeNoDomains  = "no_valid_domains"
	ErrorCodeBadRequest = "bad_request"
	ErrorCodeInternal   = "internal_error"
)

// FieldErrorResponse is returned when a single field fails validation.
type FieldErrorResponse struct {
	APIErrorResponse
	Field string `json:"field" example:"forwarding_url"`
	Value string `json:"value,omitempty" example:"http://example.com"`
}

// SlotLimitResponse is returned when an import needs more slots than are free.
type SlotLimitResponse struct {
	APIErrorResponse
	Requested int `json:"requested" example:"14"`
	Available int `json:"available" example:"12"`
}

// ListParams are the query parameters shared by list endpoints.
type ListParams struct {
	Query    string `form:"q"`
	Sort     string `form:"sort"`
	Dir      string `form:"dir" binding:"omitempty,oneof=asc desc ASC DESC"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1"`
}

// PageMeta describes the returned page of a list.
type PageMeta struct {
	Page       int               `json:"page" example:"1"`
	PageSize   int               `json:"page_size" example:"10"`
	Total      int               `json:"total" example:"12"`
	TotalPages int               `json:"total_pages" example:"2"`
	Sort       listing.SortState `json:"sort"`
}

func NewPageMeta[T any](p listing.Page[T], sort listing.SortState) PageMeta {
	return PageMeta{Page: p.Page, PageSize: p.PageSize, Total: p.Total, TotalPages: p.TotalPages, Sort: sort}
}

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}
