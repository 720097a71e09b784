package routes

import (
	"github.com/gin-gonic/gin"

	"stayease-backend/handlers"
	"stayease-backend/services"
)

type BookingRouteHandler struct {
	bookingHandler handlers.BookingHandler
	authService    services.AuthService
}

func NewBookingRouteHandler(bookingHandler handlers.BookingHandler, authService services.AuthService) BookingRouteHandler {
	return BookingRouteHandler{bookingHandler, authService}
}

func (rc *BookingRouteHandler) BookingRoute(rg *gin.RouterGroup) {
	router := rg.Group("/bookings")
	router.Use(handlers.DeserializeUser(rc.authService))

	router.POST("", rc.bookingHandler.CreateBooking)
	router.GET("", rc.bookingHandler.ListBookings)
	router.GET("/:confirmationNumber", rc.bookingHandler.GetBooking)
	router.POST("/:confirmationNumber/cancel", rc.bookingHandler.CancelBooking)
}
