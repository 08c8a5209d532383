package store

type MessageStore struct {
	items *OrderedMap[string, Message]
	bus   publisher
}

func NewMessageStore(bus publisher) *MessageStore {
	return &MessageStore{items: NewOrderedMap[string, Message](), bus: orNop(bus)}
}

func (s *MessageStore) Seed(msgs []Message) {
	for _, m := range msgs {
		s.items.Set(m.ID, m)
	}
	s.bus.Publish(MessagesChanged{Action: ActionSeeded})
}

func (s *MessageStore) List() []Message {
	return s.items.Values()
}

func (s *MessageStore) Get(id string) (Message, error) {
	m, ok := s.items.Get(id)
	if !ok {
		return Message{}, ErrMessageNotFound
	}
	return m, nil
}

func (s *MessageStore) MarkRead(id string, read bool) (Message, error) {
	var out Message
	err := s.items.Update(func(m *OrderedMap[string, Message]) error {
		msg, ok := m.m[id]
		if !ok {
			return ErrMessageNotFound
		}
		msg.Read = read
		m.m[id] = msg
		out = msg
		return nil
	})
	if err != nil {
		return Message{}, err
	}
	s.bus.Publish(MessagesChanged{Action: ActionRead, IDs: []string{id}})
	return out, nil
}

func (s *MessageStore) UnreadCount() int {
	n := 0
	for _, m := range s.items.Values() {
		if !m.Read {
			n++
		}
	}
	return n
}
