// Package modifier tracks whether a modifier key is held, fed by key events
// published on an rpg-toolkit event bus.
package modifier

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-deck/internal/errors"
)

// Key event types published on the bus
const (
	EventKeyDown = "input.key_down"
	EventKeyUp   = "input.key_up"
)

// DefaultKey is the modifier watched when none is configured
const DefaultKey = "Alt"

// Config holds the dependencies for a Tracker
type Config struct {
	Bus events.EventBus
	Key string
}

// Validate ensures the bus is provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Bus == nil {
		vb.RequiredField("Bus")
	}

	return vb.Build()
}

// Tracker observes key-down and key-up events for a single key
type Tracker struct {
	bus     events.EventBus
	key     string
	pressed atomic.Bool

	mu     sync.Mutex
	subIDs []string
}

// NewTracker creates a stopped tracker
func NewTracker(cfg *Config) (*Tracker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	key := cfg.Key
	if key == "" {
		key = DefaultKey
	}

	return &Tracker{
		bus: cfg.Bus,
		key: key,
	}, nil
}

// Key returns the watched key name
func (t *Tracker) Key() string {
	return t.key
}

// Start subscribes to key events. Calling it on a running tracker does nothing.
func (t *Tracker) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.subIDs != nil {
		return
	}

	t.subIDs = []string{
		t.bus.SubscribeFunc(EventKeyDown, 0, t.handle(true)),
		t.bus.SubscribeFunc(EventKeyUp, 0, t.handle(false)),
	}
}

// Stop removes the subscriptions made by Start and clears the pressed state
func (t *Tracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, id := range t.subIDs {
		if err := t.bus.Unsubscribe(id); err != nil {
			slog.Warn("Failed to unsubscribe modifier handler",
				"key", t.key,
				"subscription_id", id,
				"error", err)
		}
	}
	t.subIDs = nil
	t.pressed.Store(false)
}

// Running reports whether the tracker is subscribed
func (t *Tracker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.subIDs != nil
}

// Pressed reports whether the watched key is currently held
func (t *Tracker) Pressed() bool {
	return t.pressed.Load()
}

func (t *Tracker) handle(down bool) events.HandlerFunc {
	return func(_ context.Context, event events.Event) error {
		src := event.Source()
		if src == nil || !strings.EqualFold(src.GetID(), t.key) {
			return nil
		}
		t.pressed.Store(down)
		return nil
	}
}

// Key is the bus entity standing for a keyboard key
type Key string

// GetID returns the key name
func (k Key) GetID() string { return string(k) }

// GetType returns the entity type of keys
func (k Key) GetType() string { return "key" }

var _ core.Entity = Key("")

// PublishKeyDown publishes a key-down event for key
func PublishKeyDown(ctx context.Context, bus events.EventBus, key string) error {
	return publish(ctx, bus, EventKeyDown, key)
}

// PublishKeyUp publishes a key-up event for key
func PublishKeyUp(ctx context.Context, bus events.EventBus, key string) error {
	return publish(ctx, bus, EventKeyUp, key)
}

func publish(ctx context.Context, bus events.EventBus, eventType, key string) error {
	if err := bus.Publish(ctx, events.NewGameEvent(eventType, Key(key), nil)); err != nil {
		return errors.Wrapf(err, "failed to publish %s", eventType)
	}
	return nil
}
