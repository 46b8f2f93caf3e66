package notifications

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-room-mirror/internal/errors"
)

const payloadKey = "notification"

// BusConfig contains the dependencies for a bus notifier
type BusConfig struct {
	EventBus events.EventBus
}

// Validate validates the config
func (c *BusConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.EventBus == nil {
		return errors.InvalidArgument("event bus is required")
	}
	return nil
}

// BusNotifier publishes notifications as game events
type BusNotifier struct {
	bus events.EventBus
}

// NewBusNotifier creates a notifier on the given bus
func NewBusNotifier(cfg *BusConfig) (*BusNotifier, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &BusNotifier{bus: cfg.EventBus}, nil
}

// entityRef lets a notification name its subject without holding the entity
type entityRef struct {
	id  string
	typ string
}

func (e entityRef) GetID() string   { return e.id }
func (e entityRef) GetType() string { return e.typ }

var _ core.Entity = entityRef{}

// Notify publishes n under its type
func (b *BusNotifier) Notify(ctx context.Context, n Notification) error {
	var source core.Entity
	if n.EntityID != "" {
		source = entityRef{id: n.EntityID, typ: string(n.Type)}
	}

	event := events.NewGameEvent(string(n.Type), source, nil)
	event.Context().Set(payloadKey, n)

	if err := b.bus.Publish(ctx, event); err != nil {
		return errors.Wrapf(err, "failed to publish %s", n.Type)
	}
	return nil
}

// Subscribe registers fn for one notification type and returns the
// subscription id
func (b *BusNotifier) Subscribe(t Type, fn func(ctx context.Context, n Notification)) string {
	return b.bus.SubscribeFunc(string(t), 0, func(ctx context.Context, event events.Event) error {
		raw, ok := event.Context().Get(payloadKey)
		if !ok {
			return nil
		}
		if n, ok := raw.(Notification); ok {
			fn(ctx, n)
		}
		return nil
	})
}

// Unsubscribe removes a subscription
func (b *BusNotifier) Unsubscribe(id string) error {
	return b.bus.Unsubscribe(id)
}

// Verify that BusNotifier implements Notifier
var _ Notifier = (*BusNotifier)(nil)

// Discard drops every notification
type Discard struct{}

// Notify does nothing
func (Discard) Notify(context.Context, Notification) error { return nil }

var _ Notifier = Discard{}
