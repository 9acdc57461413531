package handlers

import (
	"BistroBoss/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterAuthRoutes(router *gin.RouterGroup, authController *controllers.AuthController) {
	router.POST("/jwt", authController.IssueToken)
}
