package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "voyago/internal/models/db_models"
)

// BookingRepository persists the per-resource booking rows. Inserts take
// the open transaction handle; list reads run on the pooled connection.
type BookingRepository interface {
	InsertFlight(ctx context.Context, tx *gorm.DB, booking *dbm.FlightBooking) error
	InsertHotel(ctx context.Context, tx *gorm.DB, booking *dbm.HotelBooking) error
	InsertCar(ctx context.Context, tx *gorm.DB, booking *dbm.CarBooking) error

	ListFlightsByUser(ctx context.Context, userID uuid.UUID) ([]dbm.FlightBooking, error)
	ListHotelsByUser(ctx context.Context, userID uuid.UUID) ([]dbm.HotelBooking, error)
	ListCarsByUser(ctx context.Context, userID uuid.UUID) ([]dbm.CarBooking, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) InsertFlight(ctx context.Context, tx *gorm.DB, booking *dbm.FlightBooking) error {
	return tx.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) InsertHotel(ctx context.Context, tx *gorm.DB, booking *dbm.HotelBooking) error {
	return tx.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) InsertCar(ctx context.Context, tx *gorm.DB, booking *dbm.CarBooking) error {
	return tx.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) ListFlightsByUser(ctx context.Context, userID uuid.UUID) ([]dbm.FlightBooking, error) {
	var bookings []dbm.FlightBooking
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) ListHotelsByUser(ctx context.Context, userID uuid.UUID) ([]dbm.HotelBooking, error) {
	var bookings []dbm.HotelBooking
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) ListCarsByUser(ctx context.Context, userID uuid.UUID) ([]dbm.CarBooking, error) {
	var bookings []dbm.CarBooking
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}
