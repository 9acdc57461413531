package handlers

import (
	"BistroBoss/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterPaymentRoutes(router *gin.RouterGroup, paymentController *controllers.PaymentController, authRequired gin.HandlerFunc) {
	router.POST("/payment-post-api", authRequired, paymentController.CreatePaymentIntent)

	paymentGroup := router.Group("/payments")
	{
		paymentGroup.POST("", authRequired, paymentController.Checkout)
		paymentGroup.GET("/:email", authRequired, paymentController.GetPaymentsByEmail)
	}
}
