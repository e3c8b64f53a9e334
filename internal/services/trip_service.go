package services

import (
	"context"

	"github.com/google/uuid"

	dbm "voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/internal/repositories"
	"voyago/pkg/utils"
)

type TripServiceInterface interface {
	CreateTrip(ctx context.Context, userID uuid.UUID, req *request_models.CreateTripRequest) (*response_models.TripResponse, error)
	ListTrips(ctx context.Context, userID uuid.UUID) ([]response_models.TripResponse, error)
	GetTrip(ctx context.Context, userID uuid.UUID, tripID string) (*response_models.TripResponse, error)
	DeleteTrip(ctx context.Context, userID uuid.UUID, tripID string) error
}

type TripService struct {
	tripRepo repositories.TripRepository
}

func NewTripService(tripRepo repositories.TripRepository) TripServiceInterface {
	return &TripService{
		tripRepo: tripRepo,
	}
}

func (t *TripService) CreateTrip(ctx context.Context, userID uuid.UUID, req *request_models.CreateTripRequest) (*response_models.TripResponse, error) {

	start, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := utils.ParseDate(req.EndDate)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, utils.ErrInvalidInput
	}

	trip := &dbm.Trip{
		UserID:      userID,
		Name:        req.Name,
		Destination: req.Destination,
		StartDate:   start,
		EndDate:     end,
		Travelers:   req.Travelers,
		Budget:      req.Budget,
		Description: req.Description,
		Status:      dbm.TripStatusPlanning,
	}

	if err := t.tripRepo.Create(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return toTripResponse(trip), nil
}

func (t *TripService) ListTrips(ctx context.Context, userID uuid.UUID) ([]response_models.TripResponse, error) {
	trips, err := t.tripRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TripResponse, 0, len(trips))
	for i := range trips {
		out = append(out, *toTripResponse(&trips[i]))
	}
	return out, nil
}

func (t *TripService) GetTrip(ctx context.Context, userID uuid.UUID, tripID string) (*response_models.TripResponse, error) {
	id, err := uuid.Parse(tripID)
	if err != nil {
		return nil, utils.ErrTripNotFound
	}

	trip, err := t.tripRepo.GetByIDForUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	return toTripResponse(trip), nil
}

func (t *TripService) DeleteTrip(ctx context.Context, userID uuid.UUID, tripID string) error {
	id, err := uuid.Parse(tripID)
	if err != nil {
		return utils.ErrTripNotFound
	}

	return t.tripRepo.Delete(ctx, id, userID)
}

func toTripResponse(trip *dbm.Trip) *response_models.TripResponse {
	resp := &response_models.TripResponse{
		ID:          trip.ID.String(),
		Name:        trip.Name,
		Destination: trip.Destination,
		StartDate:   utils.FormatDate(trip.StartDate),
		EndDate:     utils.FormatDate(trip.EndDate),
		Travelers:   trip.Travelers,
		Budget:      trip.Budget,
		Status:      string(trip.Status),
		Description: trip.Description,
		CreatedAt:   trip.CreatedAt,
		UpdatedAt:   trip.UpdatedAt,
		Flight: response_models.TripFlightLeg{
			Included:  trip.FlightIncluded,
			Departure: trip.FlightDeparture,
			Arrival:   trip.FlightArrival,
			BookingID: uuidPtrString(trip.FlightBookingID),
		},
		Hotel: response_models.TripHotelStay{
			Included:  trip.HotelIncluded,
			Name:      trip.HotelName,
			Rooms:     trip.HotelRooms,
			BookingID: uuidPtrString(trip.HotelBookingID),
		},
		Car: response_models.TripCarRental{
			Included:        trip.CarIncluded,
			Type:            trip.CarType,
			PickupLocation:  trip.CarPickupLocation,
			DropoffLocation: trip.CarDropoffLocation,
			BookingID:       uuidPtrString(trip.CarBookingID),
		},
	}

	if trip.HotelCheckIn != nil {
		resp.Hotel.CheckIn = utils.FormatDate(*trip.HotelCheckIn)
	}
	if trip.HotelCheckOut != nil {
		resp.Hotel.CheckOut = utils.FormatDate(*trip.HotelCheckOut)
	}
	return resp
}

func uuidPtrString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
