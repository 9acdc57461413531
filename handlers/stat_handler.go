package handlers

import (
	"BistroBoss/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterStatRoutes(router *gin.RouterGroup, statController *controllers.StatController, authRequired, adminRequired gin.HandlerFunc) {
	router.GET("/counts", authRequired, adminRequired, statController.Counts)
	router.GET("/menu-stage", authRequired, adminRequired, statController.MenuStage)
	router.GET("/user-stage/:email", authRequired, statController.UserStage)
}
