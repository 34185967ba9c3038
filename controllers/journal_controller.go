package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sourishdey2005/Annaprasanna/services"
	"github.com/sourishdey2005/Annaprasanna/utils"
)

type JournalController struct {
	Meals *services.MealService
}

func NewJournalController(meals *services.MealService) *JournalController {
	return &JournalController{Meals: meals}
}

func (h *JournalController) GetJournal(c *gin.Context) {
	meals, err := h.Meals.FetchAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.String(http.StatusOK, services.GenerateJournal(meals))
}

// GetProfile enforces the minimum-history precondition here; the exporter
// itself stays a total function.
func (h *JournalController) GetProfile(c *gin.Context) {
	meals, err := h.Meals.FetchAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(meals) < services.MinProfileMeals {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": fmt.Sprintf("%v: log at least %d meals to generate your profile",
				utils.ErrInsufficientData, services.MinProfileMeals),
			"logged": len(meals),
		})
		return
	}
	c.String(http.StatusOK, services.GenerateProfile(meals))
}
