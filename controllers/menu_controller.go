package controllers

import (
	"BistroBoss/models"
	"BistroBoss/services"
	"BistroBoss/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	MenuService *services.MenuService
}

func NewMenuController(menuService *services.MenuService) *MenuController {
	return &MenuController{
		MenuService: menuService,
	}
}

func (m *MenuController) GetAllMenus(c *gin.Context) {
	menus, err := m.MenuService.GetAllMenus(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, menus)
}

func (m *MenuController) GetMenuByID(c *gin.Context) {
	menu, err := m.MenuService.GetMenuByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, menu)
}

func (m *MenuController) CreateMenu(c *gin.Context) {
	var menu models.Menu
	if err := c.ShouldBindJSON(&menu); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid menu payload")
		return
	}

	result, err := m.MenuService.CreateMenu(c.Request.Context(), menu)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// UpdateMenu replaces the editable fields, inserting when the id is new.
func (m *MenuController) UpdateMenu(c *gin.Context) {
	var menu models.Menu
	if err := c.ShouldBindJSON(&menu); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid menu payload")
		return
	}

	result, err := m.MenuService.UpdateMenu(c.Request.Context(), c.Param("id"), menu)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (m *MenuController) DeleteMenu(c *gin.Context) {
	result, err := m.MenuService.DeleteMenu(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}
