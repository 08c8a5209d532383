package eventbus

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type domainEvent struct{ ID string }
type orderEvent struct{ ID string }

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestPublish_MatchesBySignature(t *testing.T) {
	bus := NewEventPublisher(quietLogger())
	var domains, orders []string
	bus.Subscribe(func(e domainEvent) { domains = append(domains, e.ID) })
	bus.Subscribe(func(e *orderEvent) { orders = append(orders, e.ID) })

	bus.Publish(domainEvent{ID: "d1"})
	bus.Publish(&orderEvent{ID: "o1"})
	bus.Publish("unrelated")

	require.Equal(t, []string{"d1"}, domains)
	require.Equal(t, []string{"o1"}, orders)
}

func TestPublish_PanicDoesNotStopDelivery(t *testing.T) {
	bus := NewEventPublisher(quietLogger())
	called := false
	bus.Subscribe(func(domainEvent) { panic("boom") })
	bus.Subscribe(func(domainEvent) { called = true })

	require.NotPanics(t, func() { bus.Publish(domainEvent{}) })
	require.True(t, called)
}

func TestSubscribeUnsubscribe(t *testing.T) {
	bus := NewEventPublisher(quietLogger())
	h := func(domainEvent) {}
	bus.Subscribe(h)
	bus.Subscribe(func(orderEvent) {})
	require.Equal(t, 2, bus.SubscribersCount())

	bus.Unsubscribe(h)
	require.Equal(t, 1, bus.SubscribersCount())

	bus.Clear()
	require.Zero(t, bus.SubscribersCount())

	require.Panics(t, func() { bus.Subscribe("not a func") })
}
