package controllers

import (
	"BistroBoss/services"
	"BistroBoss/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	TokenService *services.TokenService
}

func NewAuthController(tokenService *services.TokenService) *AuthController {
	return &AuthController{
		TokenService: tokenService,
	}
}

// IssueToken signs a bearer token for the email in the request body.
func (a *AuthController) IssueToken(c *gin.Context) {
	var requestBody struct {
		Email string `json:"email" binding:"required,email"`
	}

	if err := c.ShouldBindJSON(&requestBody); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "A valid email is required")
		return
	}

	token, err := a.TokenService.Generate(requestBody.Email)
	if err != nil {
		c.Error(utils.NewCustomError(http.StatusInternalServerError, "Failed to sign token"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
