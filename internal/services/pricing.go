package services

import (
	"math"
	"time"
)

// Derived-value math for the booking transaction. All functions are pure;
// date validation happens before they are called.

// Nights is the ceiling of the day difference between check-in and
// check-out. A same-day stay yields zero nights; there is no minimum.
func Nights(checkIn, checkOut time.Time) int {
	return ceilDays(checkOut.Sub(checkIn))
}

// RentalDays is the ceiling of the day difference with a floor of one:
// returning a car on the pickup day still bills a full day.
func RentalDays(start, end time.Time) int {
	days := ceilDays(end.Sub(start))
	if days < 1 {
		return 1
	}
	return days
}

func TotalCost(unitPrice float64, durationUnits int) float64 {
	return unitPrice * float64(durationUnits)
}

func ceilDays(d time.Duration) int {
	return int(math.Ceil(d.Hours() / 24))
}
