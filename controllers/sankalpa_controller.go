package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sourishdey2005/Annaprasanna/services"
	"github.com/sourishdey2005/Annaprasanna/utils"
)

type SankalpaController struct {
	Settings *services.SettingsService
	Reports  *services.ReportService
}

func NewSankalpaController(settings *services.SettingsService, reports *services.ReportService) *SankalpaController {
	return &SankalpaController{Settings: settings, Reports: reports}
}

func (h *SankalpaController) GetSettings(c *gin.Context) {
	settings, err := h.Settings.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSettings accepts a partial update of dosha, sankalpa and digest email.
func (h *SankalpaController) UpdateSettings(c *gin.Context) {
	var req services.SettingsUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings, err := h.Settings.Update(req)
	if err != nil {
		if errors.Is(err, utils.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// GetProgress evaluates the active sankalpa against the current calendar
// week. Changing the sankalpa takes effect on the next call; no history kept.
func (h *SankalpaController) GetProgress(c *gin.Context) {
	settings, err := h.Settings.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	data, err := h.Reports.WeeklyReport(time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	progress, err := services.GoalProgress(settings.Sankalpa, data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, progress)
}
