package service

import (
	"context"

	"uniform/internal/domain/entity"
)

// StudentNotificationEvent is a restock notification handed to the delivery worker.
type StudentNotificationEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	entity.StudentNotification
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishStudentNotification publishes a student notification for async delivery
	PublishStudentNotification(ctx context.Context, event *StudentNotificationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
