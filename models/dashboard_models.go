package models

import "github.com/vit0-9/mailr_api/pkg/services"

type SearchResponse struct {
	Query string               `json:"query" example:"acme"`
	Hits  []services.SearchHit `json:"hits"`
}
