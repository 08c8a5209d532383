package services

import (
	"github.com/vit0-9/mailr_api/pkg/store"
	"github.com/vit0-9/mailr_api/pkg/utils/listing"
)

type InboxService struct {
	messages *store.MessageStore
}

func NewInboxService(messages *store.MessageStore) *InboxService {
	return &InboxService{messages: messages}
}

// Visible returns the unified inbox, newest first unless sort says otherwise.
func (s *InboxService) Visible(q listing.Query, sort listing.SortState) ([]store.Message, error) {
	if err := MessageSchema.Validate(q, sort); err != nil {
		return nil, err
	}
	if sort.Key == "" {
		sort = DefaultMessageSort
	}
	return MessageSchema.Sort(MessageSchema.Filter(s.messages.List(), q), sort), nil
}

func (s *InboxService) MarkRead(id string, read bool) (store.Message, error) {
	return s.messages.MarkRead(id, read)
}

func (s *InboxService) UnreadCount() int {
	return s.messages.UnreadCount()
}
