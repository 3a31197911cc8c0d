package events

import (
	"time"

	"github.com/mangostorage/inventory-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventAccountCreated    EventType = "account_created"
	EventSerialCreated     EventType = "serial_created"
	EventSerialDeleted     EventType = "serial_deleted"
	EventQuantityCorrected EventType = "quantity_corrected"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Subject   string      `json:"subject"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// AccountCreatedPayload payload.
type AccountCreatedPayload struct {
	Username string          `json:"username"`
	Position domain.Position `json:"position"`
}

// SerialCreatedPayload payload.
type SerialCreatedPayload struct {
	SerialNo  string  `json:"serial_no"`
	ProductID string  `json:"product_id"`
	StorageID *string `json:"storage_id,omitempty"`
}

// SerialDeletedPayload payload.
type SerialDeletedPayload struct {
	SerialNo string `json:"serial_no"`
}

// QuantityCorrectedPayload payload.
type QuantityCorrectedPayload struct {
	ProductID   string `json:"product_id"`
	OldQuantity int64  `json:"old_quantity"`
	NewQuantity int64  `json:"new_quantity"`
}
