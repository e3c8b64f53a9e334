package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "voyago/internal/models/db_models"
	"voyago/internal/models/response_models"
	"voyago/internal/repositories"
	"voyago/pkg/utils"
)

// LedgerServiceInterface serves the unified "my bookings" view across
// resource types and handles cancellation.
type LedgerServiceInterface interface {
	ListBookings(ctx context.Context, userID uuid.UUID) ([]response_models.LedgerEntryResponse, error)
	GetBooking(ctx context.Context, userID uuid.UUID, paymentID string) (*response_models.LedgerEntryResponse, error)
	CancelBooking(ctx context.Context, userID uuid.UUID, paymentID string) error
}

type LedgerService struct {
	db         *gorm.DB
	ledgerRepo repositories.LedgerRepository
}

func NewLedgerService(db *gorm.DB, ledgerRepo repositories.LedgerRepository) LedgerServiceInterface {
	return &LedgerService{
		db:         db,
		ledgerRepo: ledgerRepo,
	}
}

func (l *LedgerService) ListBookings(ctx context.Context, userID uuid.UUID) ([]response_models.LedgerEntryResponse, error) {
	entries, err := l.ledgerRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.LedgerEntryResponse, 0, len(entries))
	for i := range entries {
		out = append(out, toLedgerResponse(&entries[i]))
	}
	return out, nil
}

func (l *LedgerService) GetBooking(ctx context.Context, userID uuid.UUID, paymentID string) (*response_models.LedgerEntryResponse, error) {
	id, err := uuid.Parse(paymentID)
	if err != nil {
		return nil, utils.ErrBookingNotFound
	}

	entry, err := l.ledgerRepo.GetByIDForUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	resp := toLedgerResponse(entry)
	return &resp, nil
}

func (l *LedgerService) CancelBooking(ctx context.Context, userID uuid.UUID, paymentID string) error {
	id, err := uuid.Parse(paymentID)
	if err != nil {
		return utils.ErrBookingNotFound
	}

	return l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return l.ledgerRepo.Cancel(ctx, tx, id, userID)
	})
}

func toLedgerResponse(entry *dbm.LedgerEntry) response_models.LedgerEntryResponse {
	return response_models.LedgerEntryResponse{
		PaymentID:   entry.ID.String(),
		BookingID:   entry.BookingID.String(),
		BookingType: string(entry.BookingType),
		Status:      string(entry.Status),
		TotalPaid:   entry.TotalPaid,
		Provider:    entry.Provider,
		Location:    entry.Location,
		Date:        entry.CreatedAt,
	}
}
