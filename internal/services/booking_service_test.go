package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"voyago/internal/infra"
	dbm "voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/internal/repositories"
	"voyago/pkg/utils"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// A pooled second connection would see a different in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, infra.Migrate(db))
	return db
}

func newBookingService(db *gorm.DB) BookingServiceInterface {
	return NewBookingService(
		db,
		repositories.NewTripRepository(db),
		repositories.NewBookingRepository(db),
		repositories.NewLedgerRepository(db),
	)
}

func seedTrip(t *testing.T, db *gorm.DB, userID uuid.UUID, start, end string) *dbm.Trip {
	t.Helper()

	trip := &dbm.Trip{
		UserID:      userID,
		Name:        "Summer getaway",
		Destination: "Lisbon",
		StartDate:   date(start),
		EndDate:     date(end),
		Travelers:   2,
		Budget:      3000,
		Status:      dbm.TripStatusPlanning,
	}
	require.NoError(t, db.Create(trip).Error)
	return trip
}

func grandInnSelection() *request_models.HotelSelection {
	return &request_models.HotelSelection{
		Name:    "Grand Inn",
		Address: "12 Harbor St, Lisbon",
		Rooms: []request_models.RoomOption{
			{Type: "Deluxe", PricePerNight: 150},
		},
		ReviewSummary: request_models.ReviewSummary{AverageRating: 4.6, TotalReviews: 812},
	}
}

func sampleFlight() *request_models.FlightSelection {
	return &request_models.FlightSelection{
		FlightNumber:       "VG123",
		Airline:            "Voyago Air",
		DepartureAirport:   "JFK",
		DestinationAirport: "LIS",
		DepartureTime:      "2025-07-10T08:30:00Z",
		ArrivalTime:        "2025-07-10T20:15:00Z",
		Duration:           "7h 45m",
		Prices:             request_models.Prices{Economy: 420},
	}
}

func sampleCar() *request_models.CarSelection {
	return &request_models.CarSelection{
		Name:     "Corolla",
		Type:     "Sedan",
		Company:  "RentGo",
		Price:    55,
		Seats:    5,
		Features: []string{"GPS", "AC"},
	}
}

func TestBookTrip_HotelOnly(t *testing.T) {
	db := newTestDB(t)
	svc := newBookingService(db)
	userID := uuid.New()
	trip := seedTrip(t, db, userID, "2025-07-10", "2025-07-13")

	resp, err := svc.BookTrip(context.Background(), userID, trip.ID.String(),
		&request_models.BookTripRequest{Hotel: grandInnSelection()})
	require.NoError(t, err)

	require.NotNil(t, resp.Hotel)
	assert.Nil(t, resp.Flight)
	assert.Nil(t, resp.Car)

	var booking dbm.HotelBooking
	require.NoError(t, db.First(&booking, "user_id = ?", userID).Error)
	assert.Equal(t, 3, booking.Nights)
	assert.Equal(t, 150.0, booking.PricePerNight)
	assert.Equal(t, 2, booking.Guests) // default
	assert.Equal(t, dbm.CheckInPending, booking.CheckInStatus)
	assert.Equal(t, resp.Hotel.ID, booking.ID.String())

	var entry dbm.LedgerEntry
	require.NoError(t, db.First(&entry, "user_id = ?", userID).Error)
	assert.Equal(t, dbm.BookingTypeHotel, entry.BookingType)
	assert.Equal(t, 450.0, entry.TotalPaid) // 150 x 3 nights
	assert.Equal(t, "Grand Inn", entry.Provider)
	assert.Equal(t, booking.ID, entry.BookingID)
	assert.Equal(t, dbm.LedgerConfirmed, entry.Status)

	var got dbm.Trip
	require.NoError(t, db.First(&got, "id = ?", trip.ID).Error)
	assert.Equal(t, dbm.TripStatusBooked, got.Status)
	assert.True(t, got.HotelIncluded)
	require.NotNil(t, got.HotelName)
	assert.Equal(t, "Grand Inn", *got.HotelName)
	require.NotNil(t, got.HotelCheckIn)
	assert.Equal(t, "2025-07-10", utils.FormatDate(*got.HotelCheckIn))
	require.NotNil(t, got.HotelCheckOut)
	assert.Equal(t, "2025-07-13", utils.FormatDate(*got.HotelCheckOut))
	require.NotNil(t, got.HotelBookingID)
	assert.Equal(t, booking.ID, *got.HotelBookingID)

	// Flight and car fields stay untouched.
	assert.False(t, got.FlightIncluded)
	assert.Nil(t, got.FlightBookingID)
	assert.False(t, got.CarIncluded)
	assert.Nil(t, got.CarBookingID)
}

func TestBookTrip_FlightOnly_StatusTransition(t *testing.T) {
	db := newTestDB(t)
	svc := newBookingService(db)
	userID := uuid.New()
	trip := seedTrip(t, db, userID, "2025-07-10", "2025-07-13")

	resp, err := svc.BookTrip(context.Background(), userID, trip.ID.String(),
		&request_models.BookTripRequest{Flight: sampleFlight()})
	require.NoError(t, err)
	require.NotNil(t, resp.Flight)

	var booking dbm.FlightBooking
	require.NoError(t, db.First(&booking, "user_id = ?", userID).Error)
	assert.Equal(t, 1, booking.Seats) // defaults to 1
	assert.Equal(t, 420.0, booking.SeatPrice)

	var entry dbm.LedgerEntry
	require.NoError(t, db.First(&entry, "user_id = ?", userID).Error)
	assert.Equal(t, dbm.BookingTypeFlight, entry.BookingType)
	assert.Equal(t, 420.0, entry.TotalPaid)
	assert.Equal(t, "Voyago Air", entry.Provider)
	assert.Equal(t, "JFK → LIS", entry.Location)

	var got dbm.Trip
	require.NoError(t, db.First(&got, "id = ?", trip.ID).Error)
	assert.Equal(t, dbm.TripStatusBooked, got.Status)
	assert.True(t, got.FlightIncluded)
	require.NotNil(t, got.FlightDeparture)
	assert.Equal(t, "JFK", *got.FlightDeparture)
	require.NotNil(t, got.FlightArrival)
	assert.Equal(t, "LIS", *got.FlightArrival)
}

func TestBookTrip_NoResources_LeavesStatusUnchanged(t *testing.T) {
	db := newTestDB(t)
	svc := newBookingService(db)
	userID := uuid.New()
	trip := seedTrip(t, db, userID, "2025-07-10", "2025-07-13")

	resp, err := svc.BookTrip(context.Background(), userID, trip.ID.String(),
		&request_models.BookTripRequest{})
	require.NoError(t, err)
	assert.Nil(t, resp.Flight)
	assert.Nil(t, resp.Hotel)
	assert.Nil(t, resp.Car)

	var got dbm.Trip
	require.NoError(t, db.First(&got, "id = ?", trip.ID).Error)
	assert.Equal(t, dbm.TripStatusPlanning, got.Status)
}

func TestBookTrip_MissingTripID(t *testing.T) {
	db := newTestDB(t)
	svc := newBookingService(db)

	_, err := svc.BookTrip(context.Background(), uuid.New(), "",
		&request_models.BookTripRequest{Hotel: grandInnSelection()})
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestBookTrip_OwnershipEnforced(t *testing.T) {
	db := newTestDB(t)
	svc := newBookingService(db)
	owner := uuid.New()
	trip := seedTrip(t, db, owner, "2025-07-10", "2025-07-13")

	intruder := uuid.New()
	_, err := svc.BookTrip(context.Background(), intruder, trip.ID.String(),
		&request_models.BookTripRequest{Hotel: grandInnSelection()})
	assert.ErrorIs(t, err, utils.ErrTripNotFound)

	var bookings, entries int64
	require.NoError(t, db.Model(&dbm.HotelBooking{}).Count(&bookings).Error)
	require.NoError(t, db.Model(&dbm.LedgerEntry{}).Count(&entries).Error)
	assert.Zero(t, bookings)
	assert.Zero(t, entries)

	var got dbm.Trip
	require.NoError(t, db.First(&got, "id = ?", trip.ID).Error)
	assert.Equal(t, dbm.TripStatusPlanning, got.Status)
}

// Forcing the car write to fail must leave no trace of the flight and
// hotel writes that preceded it in the same call.
func TestBookTrip_Atomicity_CarFailureRollsBackEverything(t *testing.T) {
	db := newTestDB(t)
	svc := newBookingService(db)
	userID := uuid.New()
	trip := seedTrip(t, db, userID, "2025-07-10", "2025-07-13")

	require.NoError(t, db.Migrator().DropTable(&dbm.CarBooking{}))

	_, err := svc.BookTrip(context.Background(), userID, trip.ID.String(),
		&request_models.BookTripRequest{
			Flight: sampleFlight(),
			Hotel:  grandInnSelection(),
			Car:    sampleCar(),
		})
	require.Error(t, err)

	var flights, hotels, entries int64
	require.NoError(t, db.Model(&dbm.FlightBooking{}).Count(&flights).Error)
	require.NoError(t, db.Model(&dbm.HotelBooking{}).Count(&hotels).Error)
	require.NoError(t, db.Model(&dbm.LedgerEntry{}).Count(&entries).Error)
	assert.Zero(t, flights)
	assert.Zero(t, hotels)
	assert.Zero(t, entries)

	var got dbm.Trip
	require.NoError(t, db.First(&got, "id = ?", trip.ID).Error)
	assert.Equal(t, dbm.TripStatusPlanning, got.Status)
	assert.False(t, got.FlightIncluded)
	assert.False(t, got.HotelIncluded)
}

func TestBookTrip_CarMinimumOneDay(t *testing.T) {
	db := newTestDB(t)
	svc := newBookingService(db)
	userID := uuid.New()
	trip := seedTrip(t, db, userID, "2025-07-10", "2025-07-10")

	resp, err := svc.BookTrip(context.Background(), userID, trip.ID.String(),
		&request_models.BookTripRequest{Car: sampleCar()})
	require.NoError(t, err)
	require.NotNil(t, resp.Car)

	var booking dbm.CarBooking
	require.NoError(t, db.First(&booking, "user_id = ?", userID).Error)
	assert.Equal(t, 1, booking.RentalDays)
	assert.Equal(t, []string{"GPS", "AC"}, []string(booking.Features))

	var entry dbm.LedgerEntry
	require.NoError(t, db.First(&entry, "user_id = ?", userID).Error)
	assert.Equal(t, 55.0, entry.TotalPaid)
	assert.Equal(t, "RentGo", entry.Provider)
	assert.Equal(t, "TBD", entry.Location) // pickup defaults when omitted

	var got dbm.Trip
	require.NoError(t, db.First(&got, "id = ?", trip.ID).Error)
	require.NotNil(t, got.CarPickupLocation)
	assert.Equal(t, "TBD", *got.CarPickupLocation)
	require.NotNil(t, got.CarDropoffLocation)
	assert.Equal(t, "TBD", *got.CarDropoffLocation)
}

func TestBookTrip_DuplicateRequestID(t *testing.T) {
	db := newTestDB(t)
	svc := newBookingService(db)
	userID := uuid.New()
	trip := seedTrip(t, db, userID, "2025-07-10", "2025-07-13")

	req := &request_models.BookTripRequest{
		RequestID: "client-req-1",
		Hotel:     grandInnSelection(),
	}

	_, err := svc.BookTrip(context.Background(), userID, trip.ID.String(), req)
	require.NoError(t, err)

	_, err = svc.BookTrip(context.Background(), userID, trip.ID.String(), req)
	assert.ErrorIs(t, err, utils.ErrDuplicateRequest)

	// The first call's rows are the only ones.
	var bookings, entries int64
	require.NoError(t, db.Model(&dbm.HotelBooking{}).Count(&bookings).Error)
	require.NoError(t, db.Model(&dbm.LedgerEntry{}).Count(&entries).Error)
	assert.Equal(t, int64(1), bookings)
	assert.Equal(t, int64(1), entries)
}

func TestBookTrip_AllThreeResources(t *testing.T) {
	db := newTestDB(t)
	svc := newBookingService(db)
	userID := uuid.New()
	trip := seedTrip(t, db, userID, "2025-07-10", "2025-07-13")

	resp, err := svc.BookTrip(context.Background(), userID, trip.ID.String(),
		&request_models.BookTripRequest{
			Flight: sampleFlight(),
			Hotel:  grandInnSelection(),
			Car:    sampleCar(),
		})
	require.NoError(t, err)
	require.NotNil(t, resp.Flight)
	require.NotNil(t, resp.Hotel)
	require.NotNil(t, resp.Car)

	var entries int64
	require.NoError(t, db.Model(&dbm.LedgerEntry{}).Count(&entries).Error)
	assert.Equal(t, int64(3), entries)

	var got dbm.Trip
	require.NoError(t, db.First(&got, "id = ?", trip.ID).Error)
	assert.Equal(t, dbm.TripStatusBooked, got.Status)
	assert.True(t, got.FlightIncluded)
	assert.True(t, got.HotelIncluded)
	assert.True(t, got.CarIncluded)
}

func TestListBookingsByResource(t *testing.T) {
	db := newTestDB(t)
	svc := newBookingService(db)
	userID := uuid.New()
	trip := seedTrip(t, db, userID, "2025-07-10", "2025-07-13")

	_, err := svc.BookTrip(context.Background(), userID, trip.ID.String(),
		&request_models.BookTripRequest{
			Flight: sampleFlight(),
			Hotel:  grandInnSelection(),
			Car:    sampleCar(),
		})
	require.NoError(t, err)

	flights, err := svc.ListFlightBookings(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, flights, 1)
	assert.Equal(t, 420.0, flights[0].TotalPaid)

	hotels, err := svc.ListHotelBookings(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, hotels, 1)
	assert.Equal(t, 450.0, hotels[0].TotalPaid)
	assert.Equal(t, 3, hotels[0].Nights)

	cars, err := svc.ListCarBookings(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, cars, 1)
	assert.Equal(t, 165.0, cars[0].TotalPaid) // 55 x 3 days

	// Another user sees nothing.
	other, err := svc.ListFlightBookings(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, other)
}
