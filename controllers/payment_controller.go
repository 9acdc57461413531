package controllers

import (
	"BistroBoss/models"
	"BistroBoss/services"
	"BistroBoss/utils"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	PaymentService *services.PaymentService
}

func NewPaymentController(paymentService *services.PaymentService) *PaymentController {
	return &PaymentController{
		PaymentService: paymentService,
	}
}

// CreatePaymentIntent exchanges a price for a Stripe client secret. The
// client confirms the charge on its side with that secret.
func (p *PaymentController) CreatePaymentIntent(c *gin.Context) {
	var requestBody struct {
		Price float64 `json:"price"`
	}

	if err := c.ShouldBindJSON(&requestBody); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid payment payload")
		return
	}

	amount := minorUnits(requestBody.Price)
	if amount <= 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "A positive price is required")
		return
	}

	clientSecret, err := p.PaymentService.CreatePaymentIntent(amount)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}

// Checkout records the payment and clears the cart entries it references.
func (p *PaymentController) Checkout(c *gin.Context) {
	var payment models.Payment
	if err := c.ShouldBindJSON(&payment); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid payment payload")
		return
	}

	result, err := p.PaymentService.RecordPayment(c.Request.Context(), payment)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (p *PaymentController) GetPaymentsByEmail(c *gin.Context) {
	payments, err := p.PaymentService.GetPaymentsByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, payments)
}

// minorUnits converts a dollar price to the cents Stripe expects.
func minorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}
