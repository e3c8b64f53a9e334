package db_models

import (
	"github.com/google/uuid"
	"time"
)

type TripStatus string

const (
	TripStatusPlanning  TripStatus = "Planning"
	TripStatusBooked    TripStatus = "Booked"
	TripStatusCancelled TripStatus = "Cancelled"
)

// Trip carries both the journey itself and, once booking runs, the
// per-resource inclusion flags and foreign keys set by the booking
// transaction. Resource columns stay NULL until the matching resource
// is booked.
type Trip struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;index"`
	Name        string
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	Travelers   int
	Budget      float64
	Description string
	Status      TripStatus `gorm:"default:Planning"`

	FlightIncluded  bool
	FlightDeparture *string
	FlightArrival   *string
	FlightBookingID *uuid.UUID `gorm:"type:uuid"`

	HotelIncluded  bool
	HotelName      *string
	HotelCheckIn   *time.Time
	HotelCheckOut  *time.Time
	HotelRooms     *int
	HotelBookingID *uuid.UUID `gorm:"type:uuid"`

	CarIncluded        bool
	CarType            *string
	CarPickupLocation  *string
	CarDropoffLocation *string
	CarBookingID       *uuid.UUID `gorm:"type:uuid"`
}
