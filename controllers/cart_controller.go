package controllers

import (
	"BistroBoss/models"
	"BistroBoss/services"
	"BistroBoss/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	CartService *services.CartService
}

func NewCartController(cartService *services.CartService) *CartController {
	return &CartController{
		CartService: cartService,
	}
}

func (ct *CartController) CreateCart(c *gin.Context) {
	var cart models.Cart
	if err := c.ShouldBindJSON(&cart); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid cart payload")
		return
	}

	result, err := ct.CartService.CreateCart(c.Request.Context(), cart)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetCarts lists cart entries for the email in the query, which must match
// the token identity.
func (ct *CartController) GetCarts(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "The email query parameter is required")
		return
	}
	if email != c.GetString("email") {
		utils.ErrorResponse(c, http.StatusForbidden, "forbidden access")
		return
	}

	carts, err := ct.CartService.GetCartsByEmail(c.Request.Context(), email)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, carts)
}

func (ct *CartController) DeleteCart(c *gin.Context) {
	result, err := ct.CartService.DeleteCart(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}
