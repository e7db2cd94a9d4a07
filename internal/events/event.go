package events

import (
	"context"
	"time"

	"resto-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	OrderCreated             = "order.created"
	OrderStatusChanged       = "order.status_changed"
	ReservationCreated       = "reservation.created"
	ReservationStatusChanged = "reservation.status_changed"
)

// Event is the envelope written to the topic. Data holds the entity as returned to clients.
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Data       any       `json:"data"`
}

func New(eventType string, data any) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	}
}

type Publisher interface {
	Publish(ctx context.Context, key string, event Event) error
	Close() error
}

// Nop discards every event. Used when no broker is configured.
type Nop struct{}

func (Nop) Publish(context.Context, string, Event) error { return nil }
func (Nop) Close() error                                  { return nil }

// Emit publishes the event and logs a failure instead of returning it.
// Callers have already committed their write by the time they emit.
func Emit(ctx context.Context, p Publisher, key string, event Event) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, key, event); err != nil {
		logger.FromCtx(ctx).Warn("failed to publish event",
			zap.String("event_type", event.Type),
			zap.String("event_id", event.ID),
			zap.String("key", key),
			zap.Error(err),
		)
	}
}
