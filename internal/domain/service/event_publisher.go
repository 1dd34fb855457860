package service

import (
	"context"

	"buyhive/internal/domain/entity"
)

// CartSharedEvent asks the mail worker to send a cart snapshot to a recipient
type CartSharedEvent struct {
	EventID        string              `json:"event_id"`
	RequestID      string              `json:"request_id,omitempty"` // For distributed tracing
	RecipientEmail string              `json:"recipient_email"`
	SenderName     string              `json:"sender_name"`
	SenderEmail    string              `json:"sender_email,omitempty"`
	Message        string              `json:"message,omitempty"`
	Snapshot       entity.CartSnapshot `json:"snapshot"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCartSharedEvent publishes a share event for async delivery
	PublishCartSharedEvent(ctx context.Context, event *CartSharedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
