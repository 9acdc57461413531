package handlers

import (
	"BistroBoss/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterUserRoutes(router *gin.RouterGroup, userController *controllers.UserController, authRequired, adminRequired gin.HandlerFunc) {
	userGroup := router.Group("/users")
	{
		userGroup.POST("", userController.CreateUser)
		userGroup.GET("", authRequired, userController.GetAllUsers)
		userGroup.DELETE("/:id", authRequired, adminRequired, userController.DeleteUser)
		userGroup.PATCH("/:id", authRequired, adminRequired, userController.PromoteUser)
		userGroup.GET("/admin/:email", authRequired, userController.CheckAdmin)
	}
}
