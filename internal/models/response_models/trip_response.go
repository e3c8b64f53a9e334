package response_models

type TripResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Destination string  `json:"destination"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	Travelers   int     `json:"travelers"`
	Budget      float64 `json:"budget"`
	Status      string  `json:"status"`
	Description string  `json:"description"`
	CreatedAt   int64   `json:"createdAt"`
	UpdatedAt   int64   `json:"updatedAt"`

	Flight TripFlightLeg `json:"flight"`
	Hotel  TripHotelStay `json:"hotel"`
	Car    TripCarRental `json:"car"`
}

type TripFlightLeg struct {
	Included  bool    `json:"included"`
	Departure *string `json:"departure"`
	Arrival   *string `json:"arrival"`
	BookingID *string `json:"bookingId"`
}

type TripHotelStay struct {
	Included  bool    `json:"included"`
	Name      *string `json:"name"`
	CheckIn   string  `json:"checkIn,omitempty"`
	CheckOut  string  `json:"checkOut,omitempty"`
	Rooms     *int    `json:"rooms"`
	BookingID *string `json:"bookingId"`
}

type TripCarRental struct {
	Included        bool    `json:"included"`
	Type            *string `json:"type"`
	PickupLocation  *string `json:"pickupLocation"`
	DropoffLocation *string `json:"dropoffLocation"`
	BookingID       *string `json:"bookingId"`
}
