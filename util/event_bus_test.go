package util

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventBus_PublishReachesEverySubscriber(t *testing.T) {
	bus := NewEventBus()
	var calls int32
	handler := func(ctx context.Context, e Event) error {
		atomic.AddInt32(&calls, 1)
		return nil
	}
	bus.Subscribe(EventMenuSynced, handler)
	bus.Subscribe(EventMenuSynced, handler)
	bus.Subscribe(EventMenuUpdated, handler)

	require.NoError(t, bus.PublishSync(context.Background(), EventMenuSynced, nil))

	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestEventBus_PublishSyncJoinsErrors(t *testing.T) {
	bus := NewEventBus()
	boom := errors.New("boom")
	var seen []int64
	bus.Subscribe(EventOverrideChanged, func(ctx context.Context, e Event) error {
		seen = append(seen, e.Payload.(UserScopedPayload).UserIDs...)
		return nil
	})
	bus.Subscribe(EventOverrideChanged, func(ctx context.Context, e Event) error { return boom })

	err := bus.PublishSync(context.Background(), EventOverrideChanged, UserScopedPayload{UserIDs: []int64{4}})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []int64{4}, seen)
}

func TestEventBus_NilBusIsNoop(t *testing.T) {
	var bus *EventBus
	assert.NoError(t, bus.PublishSync(context.Background(), EventMenuSynced, nil))
}
