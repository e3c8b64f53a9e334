package request_models

// BookTripRequest is the payload of the atomic multi-resource booking
// call. Zero or more of Flight/Hotel/Car may be present; absent resources
// are skipped entirely. RequestID is an optional client-generated
// idempotency key.
type BookTripRequest struct {
	RequestID string           `json:"request_id"`
	Flight    *FlightSelection `json:"flight"`
	Hotel     *HotelSelection  `json:"hotel"`
	Car       *CarSelection    `json:"car"`
}

type FlightSelection struct {
	FlightNumber       string  `json:"flightNumber" binding:"required"`
	Airline            string  `json:"airline" binding:"required"`
	DepartureAirport   string  `json:"departureAirport" binding:"required"`
	DestinationAirport string  `json:"destinationAirport" binding:"required"`
	DepartureTime      string  `json:"departureTime" binding:"required"`
	ArrivalTime        string  `json:"arrivalTime" binding:"required"`
	Duration           string  `json:"duration"`
	NumberOfStops      int     `json:"numberOfStops"`
	Prices             Prices  `json:"prices"`
	NumberOfSeats      int     `json:"numberOfSeats"` // defaults to 1
}

type Prices struct {
	Economy  float64 `json:"Economy" binding:"required"`
	Business float64 `json:"Business"`
	First    float64 `json:"First"`
}

type HotelSelection struct {
	Name          string        `json:"name" binding:"required"`
	Address       string        `json:"address"`
	Rooms         []RoomOption  `json:"rooms" binding:"required,min=1"`
	ReviewSummary ReviewSummary `json:"reviewSummary"`
	Guests        int           `json:"guests"`    // defaults to 2
	RoomCount     int           `json:"roomCount"` // defaults to 1
}

type RoomOption struct {
	Type          string  `json:"type" binding:"required"`
	PricePerNight float64 `json:"pricePerNight" binding:"required"`
}

type ReviewSummary struct {
	AverageRating float64 `json:"averageRating"`
	TotalReviews  int     `json:"totalReviews"`
}

type CarSelection struct {
	Name            string   `json:"name" binding:"required"`
	Type            string   `json:"type" binding:"required"`
	Company         string   `json:"company" binding:"required"`
	Price           float64  `json:"price" binding:"required"` // per rental day
	Seats           int      `json:"seats"`
	Features        []string `json:"features"`
	PickupLocation  string   `json:"pickupLocation"`  // "TBD" when omitted
	DropoffLocation string   `json:"dropoffLocation"` // "TBD" when omitted
}
