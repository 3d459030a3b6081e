package service

import (
	"context"

	"fogon/internal/domain/entity"
)

// OrderEvent is emitted whenever an order is created or changes status, for
// downstream consumers (kitchen displays, reporting, notifications).
type OrderEvent struct {
	RequestID string                 `json:"request_id,omitempty"` // For distributed tracing
	OrderID   string                 `json:"order_id"`
	UserID    string                 `json:"user_id"`
	Status    entity.OrderStatus     `json:"status"`
	Type      entity.FulfillmentType `json:"type"`
	Total     float64                `json:"total"`
}

// EventPublisher defines the interface for publishing order events to a
// message queue.
type EventPublisher interface {
	// PublishOrderEvent publishes an order lifecycle event for async
	// processing. Failures are reported, never fatal to the order write.
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
