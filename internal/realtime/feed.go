// Package realtime delivers synthetic metric update events on a fixed
// interval, standing in for a push transport. Each subscription is an
// explicit cancellable handle; there is no global registry.
package realtime

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fieldops/metrics-server/internal/analytics"
)

const defaultInterval = 5 * time.Second

// Feed manages at most one active subscription per event type.
type Feed struct {
	interval time.Duration
	logger   *zap.Logger

	mu   sync.Mutex
	subs map[string]*Subscription
}

// NewFeed creates a feed emitting one event per subscription per interval.
func NewFeed(interval time.Duration, logger *zap.Logger) *Feed {
	if interval <= 0 {
		interval = defaultInterval
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Feed{
		interval: interval,
		logger:   logger.Named("realtime-feed"),
		subs:     make(map[string]*Subscription),
	}
}

// Subscription is a handle to one event-type subscription. Stop cancels
// delivery; after Stop returns no further callbacks fire.
type Subscription struct {
	eventType string
	stop      chan struct{}
	once      sync.Once
	detach    func()
}

// Stop cancels the subscription. Safe to call more than once.
func (s *Subscription) Stop() {
	s.once.Do(func() {
		close(s.stop)
		s.detach()
	})
}

// Subscribe begins delivering synthetic events of the given type to fn.
// Subscribing a type that already has an active subscription replaces it.
func (f *Feed) Subscribe(eventType string, fn func(analytics.Event)) *Subscription {
	f.mu.Lock()
	prev := f.subs[eventType]

	sub := &Subscription{
		eventType: eventType,
		stop:      make(chan struct{}),
	}
	sub.detach = func() {
		f.mu.Lock()
		if f.subs[eventType] == sub {
			delete(f.subs, eventType)
		}
		f.mu.Unlock()
	}
	f.subs[eventType] = sub
	f.mu.Unlock()

	if prev != nil {
		prev.Stop()
	}
	go f.deliver(sub, fn)

	f.logger.Debug("subscribed", zap.String("event_type", eventType))
	return sub
}

// Unsubscribe cancels the active subscription for the event type, if any.
func (f *Feed) Unsubscribe(eventType string) {
	f.mu.Lock()
	sub := f.subs[eventType]
	f.mu.Unlock()

	if sub != nil {
		sub.Stop()
		f.logger.Debug("unsubscribed", zap.String("event_type", eventType))
	}
}

// Close cancels all active subscriptions.
func (f *Feed) Close() {
	f.mu.Lock()
	subs := make([]*Subscription, 0, len(f.subs))
	for _, s := range f.subs {
		subs = append(subs, s)
	}
	f.mu.Unlock()

	for _, s := range subs {
		s.Stop()
	}
}

func (f *Feed) deliver(sub *Subscription, fn func(analytics.Event)) {
	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	for {
		select {
		case <-sub.stop:
			return
		case <-ticker.C:
			fn(syntheticEvent(sub.eventType))
		}
	}
}

// syntheticEvent fabricates a plausible payload for the event type.
func syntheticEvent(eventType string) analytics.Event {
	ev := analytics.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Data:      map[string]any{},
	}

	switch eventType {
	case analytics.EventWorkOrderCompleted:
		ev.Data["order_id"] = uuid.NewString()
	case analytics.EventTechnicianCheckIn:
		ev.Data["technician"] = "tech-" + uuid.NewString()[:8]
		ev.Data["hours"] = 0.5 + rand.Float64()*2
		ev.Data["billable"] = rand.Intn(2) == 0
	case analytics.EventCustomerFeedback:
		ev.Data["rating"] = float64(1 + rand.Intn(5))
	}
	return ev
}
