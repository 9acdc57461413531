package handlers

import (
	"BistroBoss/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterBookingRoutes(router *gin.RouterGroup, bookingController *controllers.BookingController, authRequired, adminRequired gin.HandlerFunc) {
	bookingGroup := router.Group("/bookings")
	{
		bookingGroup.POST("", authRequired, bookingController.CreateBooking)
		bookingGroup.GET("", authRequired, bookingController.GetBookings)
		bookingGroup.PATCH("/:id", authRequired, adminRequired, bookingController.ApproveBooking)
		bookingGroup.DELETE("/:id", authRequired, bookingController.DeleteBooking)
	}
}
