package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "voyago/internal/models/db_models"
	"voyago/pkg/utils"
)

type LedgerRepository interface {
	Insert(ctx context.Context, tx *gorm.DB, entry *dbm.LedgerEntry) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]dbm.LedgerEntry, error)
	GetByIDForUser(ctx context.Context, paymentID, userID uuid.UUID) (*dbm.LedgerEntry, error)
	Cancel(ctx context.Context, tx *gorm.DB, paymentID, userID uuid.UUID) error
}

type ledgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) LedgerRepository {
	return &ledgerRepository{db: db}
}

// Insert writes one summary row. A unique-key violation means the
// client's request id was already committed by an earlier call.
func (r *ledgerRepository) Insert(ctx context.Context, tx *gorm.DB, entry *dbm.LedgerEntry) error {
	err := tx.WithContext(ctx).Create(entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.ErrDuplicateRequest
		}
		return err
	}
	return nil
}

func (r *ledgerRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]dbm.LedgerEntry, error) {
	var entries []dbm.LedgerEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}

func (r *ledgerRepository) GetByIDForUser(ctx context.Context, paymentID, userID uuid.UUID) (*dbm.LedgerEntry, error) {
	var entry dbm.LedgerEntry
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", paymentID, userID).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrBookingNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *ledgerRepository) Cancel(ctx context.Context, tx *gorm.DB, paymentID, userID uuid.UUID) error {
	result := tx.WithContext(ctx).
		Model(&dbm.LedgerEntry{}).
		Where("id = ? AND user_id = ?", paymentID, userID).
		Update("status", dbm.LedgerCancelled)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return utils.ErrBookingNotFound
	}
	return nil
}
