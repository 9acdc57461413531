package controllers

import (
	"BistroBoss/models"
	"BistroBoss/services"
	"BistroBoss/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	BookingService *services.BookingService
}

func NewBookingController(bookingService *services.BookingService) *BookingController {
	return &BookingController{
		BookingService: bookingService,
	}
}

func (b *BookingController) CreateBooking(c *gin.Context) {
	var booking models.Booking
	if err := c.ShouldBindJSON(&booking); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid booking payload")
		return
	}
	// status is server-controlled; new bookings always start unset
	booking.Status = ""

	result, err := b.BookingService.CreateBooking(c.Request.Context(), booking)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetBookings lists bookings, filtered by the email query when present.
func (b *BookingController) GetBookings(c *gin.Context) {
	bookings, err := b.BookingService.GetBookings(c.Request.Context(), c.Query("email"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, bookings)
}

func (b *BookingController) ApproveBooking(c *gin.Context) {
	result, err := b.BookingService.ApproveBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (b *BookingController) DeleteBooking(c *gin.Context) {
	result, err := b.BookingService.DeleteBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}
