package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"voyago/internal/models/request_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type BookingController struct {
	bookingService services.BookingServiceInterface
}

func NewBookingController(bookingService services.BookingServiceInterface) *BookingController {
	return &BookingController{
		bookingService: bookingService,
	}
}

// BookTrip godoc
// @Summary Book trip resources atomically
// @Description Book any combination of flight, hotel and car against a trip in one all-or-nothing transaction
// @Tags Booking
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.BookTripRequest true "Resources to book"
// @Success 200 {object} response_models.BookTripResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/book [post]
func (b *BookingController) BookTrip(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	tripID := c.Param("tripId")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	var req request_models.BookTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid booking payload: "+err.Error())
		return
	}

	result, err := b.bookingService.BookTrip(c.Request.Context(), userID, tripID, &req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Trip booked successfully")
}

// ListFlightBookings godoc
// @Summary List the caller's flight bookings
// @Tags Booking
// @Produce json
// @Security BearerAuth
// @Router /bookings/flights [get]
func (b *BookingController) ListFlightBookings(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	bookings, err := b.bookingService.ListFlightBookings(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, bookings, "Flight bookings fetched successfully")
}

// ListHotelBookings godoc
// @Summary List the caller's hotel bookings
// @Tags Booking
// @Produce json
// @Security BearerAuth
// @Router /bookings/hotels [get]
func (b *BookingController) ListHotelBookings(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	bookings, err := b.bookingService.ListHotelBookings(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, bookings, "Hotel bookings fetched successfully")
}

// ListCarBookings godoc
// @Summary List the caller's car bookings
// @Tags Booking
// @Produce json
// @Security BearerAuth
// @Router /bookings/cars [get]
func (b *BookingController) ListCarBookings(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	bookings, err := b.bookingService.ListCarBookings(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, bookings, "Car bookings fetched successfully")
}

// authenticatedUser pulls the JWT subject set by the auth middleware.
func authenticatedUser(c *gin.Context) (uuid.UUID, bool) {
	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
		return uuid.Nil, false
	}
	return userID, true
}
