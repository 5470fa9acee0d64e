package eventbus

import (
	"context"
	"log"

	"github.com/formstate/formstate/internal/event"
)

// LogConsumer logs all domain events for observability.
type LogConsumer struct{}

func NewLogConsumer() *LogConsumer { return &LogConsumer{} }

func (c *LogConsumer) HandleEvent(_ context.Context, evt event.DomainEvent) error {
	log.Printf("event: %s form=%s — %s", evt.EventType, evt.FormID, evt.Summary)
	return nil
}
