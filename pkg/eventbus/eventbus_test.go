package eventbus

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type testEvent struct{ name string }

func (e testEvent) Name() string { return e.name }

func TestPublishReachesAllSubscribers(t *testing.T) {
	bus := New(zap.NewNop())
	got := make(chan Event, 2)

	handler := func(ctx context.Context, event Event) error {
		got <- event
		return nil
	}
	bus.Subscribe("thing.happened", handler)
	bus.Subscribe("thing.happened", handler)

	bus.Publish(context.Background(), testEvent{name: "thing.happened"})

	for i := 0; i < 2; i++ {
		select {
		case ev := <-got:
			assert.Equal(t, "thing.happened", ev.Name())
		case <-time.After(time.Second):
			t.Fatal("listener was not called")
		}
	}
}

func TestPublishIgnoresUnrelatedEvents(t *testing.T) {
	bus := New(zap.NewNop())
	got := make(chan Event, 1)

	bus.Subscribe("thing.happened", func(ctx context.Context, event Event) error {
		got <- event
		return nil
	})

	bus.Publish(context.Background(), testEvent{name: "other.happened"})

	select {
	case <-got:
		t.Fatal("listener should not have been called")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestPublishWithNoSubscribersIsFine(t *testing.T) {
	bus := New(zap.NewNop())
	assert.NotPanics(t, func() {
		bus.Publish(context.Background(), testEvent{name: "nobody.cares"})
	})
}
