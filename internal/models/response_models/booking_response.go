package response_models

// BookedResource identifies one booking row created by the orchestrated
// call.
type BookedResource struct {
	ID string `json:"id"`
}

// BookTripResponse maps each requested resource to its created booking
// id; resources absent from the request stay null.
type BookTripResponse struct {
	Flight *BookedResource `json:"flight"`
	Hotel  *BookedResource `json:"hotel"`
	Car    *BookedResource `json:"car"`
}

type FlightBookingResponse struct {
	ID            string  `json:"id"`
	TripID        string  `json:"trip_id,omitempty"`
	Seats         int     `json:"numberOfSeats"`
	SeatPrice     float64 `json:"seatPrice"`
	TotalPaid     float64 `json:"totalPaid"`
	CheckInStatus string  `json:"checkInStatus"`
	BookedAt      int64   `json:"bookedAt"`
	Details       any     `json:"details"`
}

type HotelBookingResponse struct {
	ID            string  `json:"id"`
	TripID        string  `json:"trip_id,omitempty"`
	Guests        int     `json:"guests"`
	Nights        int     `json:"nights"`
	PricePerNight float64 `json:"pricePerNight"`
	TotalPaid     float64 `json:"totalPaid"`
	CheckInStatus string  `json:"checkInStatus"`
	BookedAt      int64   `json:"bookedAt"`
	Details       any     `json:"details"`
}

type CarBookingResponse struct {
	ID            string   `json:"id"`
	TripID        string   `json:"trip_id,omitempty"`
	RentalDays    int      `json:"rentalDays"`
	PricePerDay   float64  `json:"pricePerDay"`
	TotalPaid     float64  `json:"totalPaid"`
	Features      []string `json:"features"`
	CheckInStatus string   `json:"checkInStatus"`
	BookedAt      int64    `json:"bookedAt"`
	Details       any      `json:"details"`
}
