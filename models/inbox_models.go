package models

import "github.com/vit0-9/mailr_api/pkg/store"

type InboxListResponse struct {
	Items  []store.Message `json:"items"`
	Unread int             `json:"unread" example:"4"`
	PageMeta
}

type InboxListParams struct {
	ListParams
	Mailbox string `form:"mailbox" example:"sarah@growthleads.com"`
	Unread  bool   `form:"unread"`
}

type MarkReadRequest struct {
	Read *bool `json:"read" example:"true"`
}
