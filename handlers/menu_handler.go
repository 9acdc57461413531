package handlers

import (
	"BistroBoss/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterMenuRoutes(router *gin.RouterGroup, menuController *controllers.MenuController, authRequired, adminRequired gin.HandlerFunc) {
	menuGroup := router.Group("/menus")
	{
		menuGroup.GET("", menuController.GetAllMenus)
		menuGroup.GET("/:id", menuController.GetMenuByID)
		menuGroup.POST("", authRequired, adminRequired, menuController.CreateMenu)
		menuGroup.PUT("/:id", authRequired, adminRequired, menuController.UpdateMenu)
		menuGroup.DELETE("/:id", authRequired, adminRequired, menuController.DeleteMenu)
	}
}
