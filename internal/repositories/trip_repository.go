package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbm "voyago/internal/models/db_models"
	"voyago/pkg/utils"
)

type TripRepository interface {
	Create(ctx context.Context, trip *dbm.Trip) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]dbm.Trip, error)
	GetByIDForUser(ctx context.Context, tripID, userID uuid.UUID) (*dbm.Trip, error)
	Delete(ctx context.Context, tripID, userID uuid.UUID) error

	// Transaction-scoped operations. Every method below takes the open
	// transaction handle explicitly so no write can run outside one.
	LockForBooking(ctx context.Context, tx *gorm.DB, tripID, userID uuid.UUID) (*dbm.Trip, error)
	SetFlightLeg(ctx context.Context, tx *gorm.DB, tripID, userID uuid.UUID, departure, arrival string, bookingID uuid.UUID) error
	SetHotelStay(ctx context.Context, tx *gorm.DB, tripID, userID uuid.UUID, name string, checkIn, checkOut time.Time, rooms int, bookingID uuid.UUID) error
	SetCarRental(ctx context.Context, tx *gorm.DB, tripID, userID uuid.UUID, carType, pickup, dropoff string, bookingID uuid.UUID) error
	MarkBooked(ctx context.Context, tx *gorm.DB, tripID, userID uuid.UUID) error
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) Create(ctx context.Context, trip *dbm.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *tripRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]dbm.Trip, error) {
	var trips []dbm.Trip
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&trips).Error
	return trips, err
}

func (r *tripRepository) GetByIDForUser(ctx context.Context, tripID, userID uuid.UUID) (*dbm.Trip, error) {
	var trip dbm.Trip
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", tripID, userID).
		First(&trip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrTripNotFound
		}
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) Delete(ctx context.Context, tripID, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", tripID, userID).
		Delete(&dbm.Trip{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return utils.ErrTripNotFound
	}
	return nil
}

// LockForBooking reads the trip under FOR UPDATE so two concurrent
// booking calls against the same trip serialize on the row lock. SQLite
// (tests) has no row locks; its single-writer lock serializes anyway.
func (r *tripRepository) LockForBooking(ctx context.Context, tx *gorm.DB, tripID, userID uuid.UUID) (*dbm.Trip, error) {
	q := tx.WithContext(ctx)
	if tx.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var trip dbm.Trip
	err := q.Where("id = ? AND user_id = ?", tripID, userID).First(&trip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrTripNotFound
		}
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) SetFlightLeg(ctx context.Context, tx *gorm.DB, tripID, userID uuid.UUID, departure, arrival string, bookingID uuid.UUID) error {
	return r.updateOwnedRow(ctx, tx, tripID, userID, map[string]interface{}{
		"flight_included":   true,
		"flight_departure":  departure,
		"flight_arrival":    arrival,
		"flight_booking_id": bookingID,
	})
}

func (r *tripRepository) SetHotelStay(ctx context.Context, tx *gorm.DB, tripID, userID uuid.UUID, name string, checkIn, checkOut time.Time, rooms int, bookingID uuid.UUID) error {
	return r.updateOwnedRow(ctx, tx, tripID, userID, map[string]interface{}{
		"hotel_included":   true,
		"hotel_name":       name,
		"hotel_check_in":   checkIn,
		"hotel_check_out":  checkOut,
		"hotel_rooms":      rooms,
		"hotel_booking_id": bookingID,
	})
}

func (r *tripRepository) SetCarRental(ctx context.Context, tx *gorm.DB, tripID, userID uuid.UUID, carType, pickup, dropoff string, bookingID uuid.UUID) error {
	return r.updateOwnedRow(ctx, tx, tripID, userID, map[string]interface{}{
		"car_included":         true,
		"car_type":             carType,
		"car_pickup_location":  pickup,
		"car_dropoff_location": dropoff,
		"car_booking_id":       bookingID,
	})
}

func (r *tripRepository) MarkBooked(ctx context.Context, tx *gorm.DB, tripID, userID uuid.UUID) error {
	return r.updateOwnedRow(ctx, tx, tripID, userID, map[string]interface{}{
		"status": dbm.TripStatusBooked,
	})
}

// updateOwnedRow bakes the ownership check into the update predicate.
// Zero rows affected means the trip vanished or is not ours; the caller
// must treat that as fatal and roll back.
func (r *tripRepository) updateOwnedRow(ctx context.Context, tx *gorm.DB, tripID, userID uuid.UUID, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now().Unix()
	result := tx.WithContext(ctx).
		Model(&dbm.Trip{}).
		Where("id = ? AND user_id = ?", tripID, userID).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return utils.ErrTripNotFound
	}
	return nil
}
