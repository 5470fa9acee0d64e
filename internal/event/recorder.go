package event

import (
	"context"

	"github.com/formstate/formstate/internal/history"
)

// Recorder writes domain events to the history store.
type Recorder interface {
	Record(ctx context.Context, evt DomainEvent) error
}

// Publisher sends domain events to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, evt DomainEvent)
}

// HistoryRecorder implements Recorder by writing a DomainEvent as a history
// entry. If a Publisher is set, the event is also published to the event bus
// after the store write succeeds.
type HistoryRecorder struct {
	store history.Store
	bus   Publisher
}

// NewHistoryRecorder creates a new HistoryRecorder backed by the given store.
func NewHistoryRecorder(store history.Store) *HistoryRecorder {
	return &HistoryRecorder{store: store}
}

// SetPublisher attaches an event bus. Events are published after store writes.
func (r *HistoryRecorder) SetPublisher(p Publisher) {
	r.bus = p
}

// Record writes the event to the history store and publishes it to the bus.
func (r *HistoryRecorder) Record(ctx context.Context, evt DomainEvent) error {
	err := r.store.WriteEntries(ctx, []history.Entry{{
		EventID:    evt.ID,
		EventType:  evt.EventType,
		OccurredAt: evt.OccurredAt,
		FormID:     evt.FormID,
		Summary:    evt.Summary,
		Payload:    evt.Payload,
	}})
	if err != nil {
		return err
	}

	// Publish to the event bus after a successful store write.
	if r.bus != nil {
		r.bus.Publish(ctx, evt)
	}
	return nil
}
