package pubsub

import (
	"uniform/internal/domain/constants"
	"uniform/internal/domain/service"
)

// eventAttributes are the routing attributes shared by every transport.
func eventAttributes(event *service.StudentNotificationEvent) map[string]string {
	attributes := map[string]string{
		"event_type": constants.EventTypeStudentNotification,
		"event":      string(event.Event),
		"student_id": event.StudentID.String(),
		"order_id":   event.OrderID.String(),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
