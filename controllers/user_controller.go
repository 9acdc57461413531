package controllers

import (
	"BistroBoss/models"
	"BistroBoss/services"
	"BistroBoss/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *services.UserService
}

func NewUserController(userService *services.UserService) *UserController {
	return &UserController{
		UserService: userService,
	}
}

// CreateUser registers a user on first sign-in; repeat calls for the same
// email are no-ops.
func (u *UserController) CreateUser(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid user payload")
		return
	}

	result, err := u.UserService.CreateUser(c.Request.Context(), user)
	if err != nil {
		c.Error(err)
		return
	}
	if result == nil {
		c.JSON(http.StatusOK, gin.H{"message": "user already exists"})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (u *UserController) GetAllUsers(c *gin.Context) {
	users, err := u.UserService.GetAllUsers(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, users)
}

func (u *UserController) DeleteUser(c *gin.Context) {
	result, err := u.UserService.DeleteUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// PromoteUser grants the admin role to the user with the given id.
func (u *UserController) PromoteUser(c *gin.Context) {
	result, err := u.UserService.PromoteUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// CheckAdmin reports whether an email has the admin role.
func (u *UserController) CheckAdmin(c *gin.Context) {
	email := c.Param("email")

	isAdmin, err := u.UserService.IsAdmin(c.Request.Context(), email)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"admin": isAdmin})
}
