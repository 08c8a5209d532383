package models

import "github.com/vit0-9/mailr_api/pkg/utils/listing"

// ViewResponse is the stored state of a table together with its current page.
type ViewResponse struct {
	Table      string        `json:"table" example:"orders"`
	State      listing.State `json:"state"`
	Items      any           `json:"items"`
	Total      int           `json:"total" example:"5"`
	TotalPages int           `json:"total_pages" example:"1"`
}

type ViewSortRequest struct {
	Key string `json:"key" binding:"required" example:"domains"`
	// Dir sets an explicit direction; without it the click toggles.
	Dir string `json:"dir" binding:"omitempty,oneof=asc desc" example:"asc"`
}

type ViewPageRequest struct {
	Page int `json:"page" binding:"required,min=1" example:"2"`
}

type ViewFilterRequest struct {
	Search  string            `json:"search" example:"acme"`
	Filters map[string]string `json:"filters"`
}
