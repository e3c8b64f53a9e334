package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type CheckInStatus string

const (
	CheckInPending   CheckInStatus = "Pending"
	CheckInCheckedIn CheckInStatus = "CheckedIn"
	CheckInCancelled CheckInStatus = "Cancelled"
)

// FlightBooking is one flight reservation. Seat price is kept separate
// from any aggregate total; the full provider payload lives in Details.
type FlightBooking struct {
	BaseModel
	UserID        uuid.UUID  `gorm:"type:uuid;index"`
	TripID        *uuid.UUID `gorm:"type:uuid;index"` // nullable for standalone bookings
	Seats         int
	SeatPrice     float64
	CheckInStatus CheckInStatus  `gorm:"default:Pending"`
	Details       datatypes.JSON `gorm:"type:jsonb"`
}

type HotelBooking struct {
	BaseModel
	UserID        uuid.UUID  `gorm:"type:uuid;index"`
	TripID        *uuid.UUID `gorm:"type:uuid;index"`
	Guests        int
	Nights        int
	PricePerNight float64
	CheckInStatus CheckInStatus  `gorm:"default:Pending"`
	Details       datatypes.JSON `gorm:"type:jsonb"`
}

type CarBooking struct {
	BaseModel
	UserID        uuid.UUID  `gorm:"type:uuid;index"`
	TripID        *uuid.UUID `gorm:"type:uuid;index"`
	RentalDays    int
	PricePerDay   float64
	Features      pq.StringArray `gorm:"type:text[]"`
	CheckInStatus CheckInStatus  `gorm:"default:Pending"`
	Details       datatypes.JSON `gorm:"type:jsonb"`
}
