// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// StudentEvent is the kind of restock notification sent to a student.
type StudentEvent string

const (
	// StudentEventConverted means the student's pre-order became a regular order.
	StudentEventConverted StudentEvent = "converted"
	// StudentEventRestocked means a pre-ordered item is back but the order was not converted.
	StudentEventRestocked StudentEvent = "restocked"
)

// StudentNotification is the payload handed to the notification transport.
type StudentNotification struct {
	StudentID   uuid.UUID    `json:"studentId"`
	Event       StudentEvent `json:"event"`
	OrderID     uuid.UUID    `json:"orderId"`
	OrderNumber string       `json:"orderNumber"`
	Item        string       `json:"item"`
	Size        string       `json:"size,omitempty"`
	OccurredAt  time.Time    `json:"occurredAt"`
}
