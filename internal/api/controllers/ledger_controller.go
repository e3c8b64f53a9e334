package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voyago/internal/services"
	"voyago/pkg/utils"
)

type LedgerController struct {
	ledgerService services.LedgerServiceInterface
}

func NewLedgerController(ledgerService services.LedgerServiceInterface) *LedgerController {
	return &LedgerController{
		ledgerService: ledgerService,
	}
}

// ListBookings godoc
// @Summary Unified booking history
// @Description List the caller's ledger entries across flight, hotel and car bookings
// @Tags Ledger
// @Produce json
// @Security BearerAuth
// @Router /bookings [get]
func (l *LedgerController) ListBookings(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	entries, err := l.ledgerService.ListBookings(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entries, "Bookings fetched successfully")
}

// GetBooking godoc
// @Summary Get one booking by payment id
// @Tags Ledger
// @Produce json
// @Param bookingId path string true "Payment ID"
// @Success 200 {object} response_models.LedgerEntryResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings/{bookingId} [get]
func (l *LedgerController) GetBooking(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	bookingID := c.Param("bookingId")
	if bookingID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Booking ID is required")
		return
	}

	entry, err := l.ledgerService.GetBooking(c.Request.Context(), userID, bookingID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entry, "Booking fetched successfully")
}

// CancelBooking godoc
// @Summary Cancel a booking
// @Description Flip the ledger entry status to Cancelled; ownership is checked in the update predicate
// @Tags Ledger
// @Produce json
// @Param bookingId path string true "Payment ID"
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings/{bookingId} [delete]
func (l *LedgerController) CancelBooking(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	bookingID := c.Param("bookingId")
	if bookingID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Booking ID is required")
		return
	}

	if err := l.ledgerService.CancelBooking(c.Request.Context(), userID, bookingID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Booking cancelled successfully")
}
