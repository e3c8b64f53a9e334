package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/internal/repositories"
	"voyago/pkg/utils"
)

type BookingServiceInterface interface {
	// BookTrip commits every resource present in the request as one
	// all-or-nothing transaction and returns the created booking ids.
	BookTrip(ctx context.Context, userID uuid.UUID, tripID string, req *request_models.BookTripRequest) (*response_models.BookTripResponse, error)

	ListFlightBookings(ctx context.Context, userID uuid.UUID) ([]response_models.FlightBookingResponse, error)
	ListHotelBookings(ctx context.Context, userID uuid.UUID) ([]response_models.HotelBookingResponse, error)
	ListCarBookings(ctx context.Context, userID uuid.UUID) ([]response_models.CarBookingResponse, error)
}

type BookingService struct {
	db          *gorm.DB
	tripRepo    repositories.TripRepository
	bookingRepo repositories.BookingRepository
	ledgerRepo  repositories.LedgerRepository
}

func NewBookingService(
	db *gorm.DB,
	tripRepo repositories.TripRepository,
	bookingRepo repositories.BookingRepository,
	ledgerRepo repositories.LedgerRepository,
) BookingServiceInterface {
	return &BookingService{
		db:          db,
		tripRepo:    tripRepo,
		bookingRepo: bookingRepo,
		ledgerRepo:  ledgerRepo,
	}
}

const locationTBD = "TBD"

func (s *BookingService) BookTrip(
	ctx context.Context,
	userID uuid.UUID,
	tripID string,
	req *request_models.BookTripRequest,
) (*response_models.BookTripResponse, error) {

	if tripID == "" {
		return nil, fmt.Errorf("%w: tripId", utils.ErrValidation)
	}
	tripUUID, err := uuid.Parse(tripID)
	if err != nil {
		return nil, fmt.Errorf("%w: tripId", utils.ErrValidation)
	}

	var requestID *string
	if req.RequestID != "" {
		requestID = &req.RequestID
	}

	resp := &response_models.BookTripResponse{}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// The trip row is locked for the whole transaction so concurrent
		// bookings of the same trip serialize instead of racing.
		trip, err := s.tripRepo.LockForBooking(ctx, tx, tripUUID, userID)
		if err != nil {
			return err
		}

		booked := false

		// Fixed order: flight, then hotel, then car.
		if req.Flight != nil {
			res, err := s.bookFlight(ctx, tx, trip, req.Flight, requestID)
			if err != nil {
				return err
			}
			resp.Flight = res
			booked = true
		}

		if req.Hotel != nil {
			res, err := s.bookHotel(ctx, tx, trip, req.Hotel, requestID)
			if err != nil {
				return err
			}
			resp.Hotel = res
			booked = true
		}

		if req.Car != nil {
			res, err := s.bookCar(ctx, tx, trip, req.Car, requestID)
			if err != nil {
				return err
			}
			resp.Car = res
			booked = true
		}

		// Status flips to Booked only when at least one resource was
		// actually written; an empty request leaves the trip untouched.
		if booked {
			if err := s.tripRepo.MarkBooked(ctx, tx, trip.ID, userID); err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *BookingService) bookFlight(
	ctx context.Context,
	tx *gorm.DB,
	trip *dbm.Trip,
	sel *request_models.FlightSelection,
	requestID *string,
) (*response_models.BookedResource, error) {

	seats := sel.NumberOfSeats
	if seats <= 0 {
		seats = 1
	}
	seatPrice := sel.Prices.Economy
	totalPaid := TotalCost(seatPrice, seats)

	booking := &dbm.FlightBooking{
		UserID:        trip.UserID,
		TripID:        &trip.ID,
		Seats:         seats,
		SeatPrice:     seatPrice,
		CheckInStatus: dbm.CheckInPending,
		Details: jsonRaw(map[string]any{
			"flightNumber":       sel.FlightNumber,
			"airline":            sel.Airline,
			"departureAirport":   sel.DepartureAirport,
			"destinationAirport": sel.DestinationAirport,
			"departureTime":      sel.DepartureTime,
			"arrivalTime":        sel.ArrivalTime,
			"duration":           sel.Duration,
			"numberOfStops":      sel.NumberOfStops,
			"prices":             sel.Prices,
		}),
	}
	if err := s.bookingRepo.InsertFlight(ctx, tx, booking); err != nil {
		return nil, err
	}

	if err := s.tripRepo.SetFlightLeg(ctx, tx, trip.ID, trip.UserID,
		sel.DepartureAirport, sel.DestinationAirport, booking.ID); err != nil {
		return nil, err
	}

	entry := &dbm.LedgerEntry{
		UserID:      trip.UserID,
		BookingID:   booking.ID,
		BookingType: dbm.BookingTypeFlight,
		Status:      dbm.LedgerConfirmed,
		TotalPaid:   totalPaid,
		Provider:    sel.Airline,
		Location:    fmt.Sprintf("%s → %s", sel.DepartureAirport, sel.DestinationAirport),
		RequestID:   requestID,
	}
	if err := s.ledgerRepo.Insert(ctx, tx, entry); err != nil {
		return nil, err
	}

	return &response_models.BookedResource{ID: booking.ID.String()}, nil
}

func (s *BookingService) bookHotel(
	ctx context.Context,
	tx *gorm.DB,
	trip *dbm.Trip,
	sel *request_models.HotelSelection,
	requestID *string,
) (*response_models.BookedResource, error) {

	if len(sel.Rooms) == 0 {
		return nil, fmt.Errorf("%w: hotel.rooms", utils.ErrValidation)
	}

	nights := Nights(trip.StartDate, trip.EndDate)
	if nights < 0 {
		return nil, utils.ErrInvalidInput
	}

	guests := sel.Guests
	if guests <= 0 {
		guests = 2
	}
	rooms := sel.RoomCount
	if rooms <= 0 {
		rooms = 1
	}

	pricePerNight := sel.Rooms[0].PricePerNight
	totalPaid := TotalCost(pricePerNight, nights)

	booking := &dbm.HotelBooking{
		UserID:        trip.UserID,
		TripID:        &trip.ID,
		Guests:        guests,
		Nights:        nights,
		PricePerNight: pricePerNight,
		CheckInStatus: dbm.CheckInPending,
		Details: jsonRaw(map[string]any{
			"name":          sel.Name,
			"address":       sel.Address,
			"roomType":      sel.Rooms[0].Type,
			"pricePerNight": pricePerNight,
			"reviewSummary": sel.ReviewSummary,
			"checkIn":       utils.FormatDate(trip.StartDate),
			"checkOut":      utils.FormatDate(trip.EndDate),
		}),
	}
	if err := s.bookingRepo.InsertHotel(ctx, tx, booking); err != nil {
		return nil, err
	}

	if err := s.tripRepo.SetHotelStay(ctx, tx, trip.ID, trip.UserID,
		sel.Name, trip.StartDate, trip.EndDate, rooms, booking.ID); err != nil {
		return nil, err
	}

	entry := &dbm.LedgerEntry{
		UserID:      trip.UserID,
		BookingID:   booking.ID,
		BookingType: dbm.BookingTypeHotel,
		Status:      dbm.LedgerConfirmed,
		TotalPaid:   totalPaid,
		Provider:    sel.Name,
		Location:    sel.Address,
		RequestID:   requestID,
	}
	if err := s.ledgerRepo.Insert(ctx, tx, entry); err != nil {
		return nil, err
	}

	return &response_models.BookedResource{ID: booking.ID.String()}, nil
}

func (s *BookingService) bookCar(
	ctx context.Context,
	tx *gorm.DB,
	trip *dbm.Trip,
	sel *request_models.CarSelection,
	requestID *string,
) (*response_models.BookedResource, error) {

	days := RentalDays(trip.StartDate, trip.EndDate)
	totalPaid := TotalCost(sel.Price, days)

	pickup := sel.PickupLocation
	if pickup == "" {
		pickup = locationTBD
	}
	dropoff := sel.DropoffLocation
	if dropoff == "" {
		dropoff = locationTBD
	}

	booking := &dbm.CarBooking{
		UserID:        trip.UserID,
		TripID:        &trip.ID,
		RentalDays:    days,
		PricePerDay:   sel.Price,
		Features:      sel.Features,
		CheckInStatus: dbm.CheckInPending,
		Details: jsonRaw(map[string]any{
			"name":            sel.Name,
			"type":            sel.Type,
			"company":         sel.Company,
			"pricePerDay":     sel.Price,
			"seats":           sel.Seats,
			"features":        sel.Features,
			"pickupLocation":  pickup,
			"dropoffLocation": dropoff,
		}),
	}
	if err := s.bookingRepo.InsertCar(ctx, tx, booking); err != nil {
		return nil, err
	}

	if err := s.tripRepo.SetCarRental(ctx, tx, trip.ID, trip.UserID,
		sel.Type, pickup, dropoff, booking.ID); err != nil {
		return nil, err
	}

	entry := &dbm.LedgerEntry{
		UserID:      trip.UserID,
		BookingID:   booking.ID,
		BookingType: dbm.BookingTypeCar,
		Status:      dbm.LedgerConfirmed,
		TotalPaid:   totalPaid,
		Provider:    sel.Company,
		Location:    pickup,
		RequestID:   requestID,
	}
	if err := s.ledgerRepo.Insert(ctx, tx, entry); err != nil {
		return nil, err
	}

	return &response_models.BookedResource{ID: booking.ID.String()}, nil
}

func (s *BookingService) ListFlightBookings(ctx context.Context, userID uuid.UUID) ([]response_models.FlightBookingResponse, error) {
	bookings, err := s.bookingRepo.ListFlightsByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.FlightBookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, response_models.FlightBookingResponse{
			ID:            b.ID.String(),
			TripID:        uuidString(b.TripID),
			Seats:         b.Seats,
			SeatPrice:     b.SeatPrice,
			TotalPaid:     TotalCost(b.SeatPrice, b.Seats),
			CheckInStatus: string(b.CheckInStatus),
			BookedAt:      b.CreatedAt,
			Details:       jsonAny(b.Details),
		})
	}
	return out, nil
}

func (s *BookingService) ListHotelBookings(ctx context.Context, userID uuid.UUID) ([]response_models.HotelBookingResponse, error) {
	bookings, err := s.bookingRepo.ListHotelsByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.HotelBookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, response_models.HotelBookingResponse{
			ID:            b.ID.String(),
			TripID:        uuidString(b.TripID),
			Guests:        b.Guests,
			Nights:        b.Nights,
			PricePerNight: b.PricePerNight,
			TotalPaid:     TotalCost(b.PricePerNight, b.Nights),
			CheckInStatus: string(b.CheckInStatus),
			BookedAt:      b.CreatedAt,
			Details:       jsonAny(b.Details),
		})
	}
	return out, nil
}

func (s *BookingService) ListCarBookings(ctx context.Context, userID uuid.UUID) ([]response_models.CarBookingResponse, error) {
	bookings, err := s.bookingRepo.ListCarsByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.CarBookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, response_models.CarBookingResponse{
			ID:            b.ID.String(),
			TripID:        uuidString(b.TripID),
			RentalDays:    b.RentalDays,
			PricePerDay:   b.PricePerDay,
			TotalPaid:     TotalCost(b.PricePerDay, b.RentalDays),
			Features:      b.Features,
			CheckInStatus: string(b.CheckInStatus),
			BookedAt:      b.CreatedAt,
			Details:       jsonAny(b.Details),
		})
	}
	return out, nil
}

func jsonRaw(v any) []byte {
	b, _ := json.Marshal(v)
	return b
}

func jsonAny(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return v
}

func uuidString(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}
