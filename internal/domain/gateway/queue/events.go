package queue

import (
	"context"
	"time"

	"github.com/google/uuid"

	"todo-api/pkg/log"
)

// EntityEvent describes a committed mutation on a domain entity.
type EntityEvent struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	Operation  string    `json:"operation"`
	EntityID   uint      `json:"entityId"`
	OccurredAt time.Time `json:"occurredAt"`
}

// EventPublisher emits entity-change events after successful mutations.
// Publication is fire-and-forget: a queue failure is logged and never fails
// the originating request. A nil publisher is a no-op, which keeps tests and
// queue-less deployments free of stub wiring.
type EventPublisher struct {
	sender    Sender
	queueName string
	health    HealthGateway
}

func NewEventPublisher(sender Sender, queueName string, health HealthGateway) *EventPublisher {
	return &EventPublisher{sender: sender, queueName: queueName, health: health}
}

// Publish sends an entity-change event for the given kind/operation/id.
func (p *EventPublisher) Publish(ctx context.Context, kind, operation string, entityID uint) {
	if p == nil || p.sender == nil {
		return
	}

	event := EntityEvent{
		ID:         uuid.NewString(),
		Kind:       kind,
		Operation:  operation,
		EntityID:   entityID,
		OccurredAt: time.Now(),
	}

	err := p.sender.SendMessage(ctx, p.queueName, event)
	if p.health != nil {
		p.health.RecordPublish(err == nil)
	}
	if err != nil {
		log.Errorw("failed to publish entity event",
			"kind", kind, "operation", operation, "entityId", entityID, "error", err)
	}
}
