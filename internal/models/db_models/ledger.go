package db_models

import (
	"github.com/google/uuid"
)

type BookingType string

const (
	BookingTypeFlight BookingType = "Flight"
	BookingTypeHotel  BookingType = "Hotel"
	BookingTypeCar    BookingType = "Car"
)

type LedgerStatus string

const (
	LedgerConfirmed LedgerStatus = "Confirmed"
	LedgerCancelled LedgerStatus = "Cancelled"
)

// LedgerEntry is the provider-agnostic summary row behind the unified
// "my bookings" view. The row id doubles as the payment id. RequestID is
// the client-supplied idempotency key; the (request_id, booking_type)
// unique index rejects a resubmission of an already committed call.
type LedgerEntry struct {
	BaseModel
	UserID      uuid.UUID   `gorm:"type:uuid;index"`
	BookingID   uuid.UUID   `gorm:"type:uuid;index"`
	BookingType BookingType `gorm:"uniqueIndex:idx_ledger_request"`
	Status      LedgerStatus
	TotalPaid   float64
	Provider    string
	Location    string
	RequestID   *string `gorm:"uniqueIndex:idx_ledger_request"`
}

func (LedgerEntry) TableName() string { return "ledger_entries" }
