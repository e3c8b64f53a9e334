package main

import (
	"context"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"log"
	"os"
	"voyago/cmd/fx/account_fx"
	"voyago/cmd/fx/booking_fx"
	"voyago/cmd/fx/db_fx"
	"voyago/cmd/fx/ledger_fx"
	"voyago/cmd/fx/trip_fx"
	"voyago/internal/api/controllers"
	"voyago/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		trip_fx.Module,
		booking_fx.Module,
		ledger_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	tripController *controllers.TripController,
	bookingController *controllers.BookingController,
	ledgerController *controllers.LedgerController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, accountController, tripController, bookingController, ledgerController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	tripController *controllers.TripController,
	bookingController *controllers.BookingController,
	ledgerController *controllers.LedgerController) {

	authGroup := r.Group("/auth")
	authGroup.POST("/sign-up", accountController.SignUp)
	authGroup.POST("/log-in", accountController.LogIn)

	tripsGroup := r.Group("/trips")
	tripsGroup.Use(middleware.JWTAuthMiddleware())
	tripsGroup.GET("", tripController.ListTrips)
	tripsGroup.POST("", tripController.CreateTrip)
	tripsGroup.GET("/:tripId", tripController.GetTrip)
	tripsGroup.DELETE("/:tripId", tripController.DeleteTrip)
	tripsGroup.POST("/:tripId/book", bookingController.BookTrip)

	bookingsGroup := r.Group("/bookings")
	bookingsGroup.Use(middleware.JWTAuthMiddleware())
	bookingsGroup.GET("", ledgerController.ListBookings)
	bookingsGroup.GET("/flights", bookingController.ListFlightBookings)
	bookingsGroup.GET("/hotels", bookingController.ListHotelBookings)
	bookingsGroup.GET("/cars", bookingController.ListCarBookings)
	bookingsGroup.GET("/:bookingId", ledgerController.GetBooking)
	bookingsGroup.DELETE("/:bookingId", ledgerController.CancelBooking)
}
