package booking_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"voyago/internal/api/controllers"
	"voyago/internal/repositories"
	"voyago/internal/services"
)

var Module = fx.Provide(provideBookingRepo, provideBookingService, provideBookingController)

func provideBookingRepo(db *gorm.DB) repositories.BookingRepository {
	return repositories.NewBookingRepository(db)
}

func provideBookingService(
	db *gorm.DB,
	tripRepo repositories.TripRepository,
	bookingRepo repositories.BookingRepository,
	ledgerRepo repositories.LedgerRepository,
) services.BookingServiceInterface {
	return services.NewBookingService(db, tripRepo, bookingRepo, ledgerRepo)
}

func provideBookingController(bookingService services.BookingServiceInterface) *controllers.BookingController {
	return controllers.NewBookingController(bookingService)
}
