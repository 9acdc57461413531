package handlers

import (
	"BistroBoss/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterCartRoutes(router *gin.RouterGroup, cartController *controllers.CartController, authRequired gin.HandlerFunc) {
	cartGroup := router.Group("/carts")
	{
		cartGroup.POST("", cartController.CreateCart)
		cartGroup.GET("", authRequired, cartController.GetCarts)
		cartGroup.DELETE("/:id", cartController.DeleteCart)
	}
}
