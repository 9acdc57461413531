package controllers

import (
	"BistroBoss/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type StatController struct {
	StatService *services.StatService
}

func NewStatController(statService *services.StatService) *StatController {
	return &StatController{
		StatService: statService,
	}
}

// Counts serves the admin dashboard header numbers.
func (s *StatController) Counts(c *gin.Context) {
	counts, err := s.StatService.Counts(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, counts)
}

// MenuStage serves the per-category purchase breakdown.
func (s *StatController) MenuStage(c *gin.Context) {
	stats, err := s.StatService.MenuStage(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// UserStage serves one user's dashboard counters.
func (s *StatController) UserStage(c *gin.Context) {
	stage, err := s.StatService.UserStage(c.Request.Context(), c.Param("email"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, stage)
}
