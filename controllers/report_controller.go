package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sourishdey2005/Annaprasanna/services"
)

type ReportController struct {
	Reports *services.ReportService
	Gemini  *services.GeminiService
	Log     *zap.Logger
}

func NewReportController(reports *services.ReportService, gemini *services.GeminiService, log *zap.Logger) *ReportController {
	return &ReportController{Reports: reports, Gemini: gemini, Log: log}
}

// GetDailyReport returns the totals for one local calendar day, today by
// default. ?narrate=true adds the AI narrative; a failed narration is logged
// and omitted rather than failing the report.
func (h *ReportController) GetDailyReport(c *gin.Context) {
	now := time.Now()
	date := c.DefaultQuery("date", now.Format("2006-01-02"))
	if _, err := time.ParseInLocation("2006-01-02", date, now.Location()); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, want YYYY-MM-DD"})
		return
	}

	totals, err := h.Reports.DailyTotals(date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := gin.H{"totals": totals}
	if c.Query("narrate") == "true" {
		if narrative, err := h.Gemini.NarrateDaily(c.Request.Context(), totals); err != nil {
			h.Log.Warn("daily narrative unavailable", zap.Error(err))
		} else {
			out["narrative"] = narrative
		}
	}
	c.JSON(http.StatusOK, out)
}

// GetWeeklyReport covers the calendar Monday-start week containing today.
func (h *ReportController) GetWeeklyReport(c *gin.Context) {
	now := time.Now()
	data, err := h.Reports.WeeklyReport(now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := gin.H{
		"week_start": services.StartOfWeek(now).Format("2006-01-02"),
		"data":       data,
	}
	if c.Query("narrate") == "true" {
		if narrative, err := h.Gemini.NarrateWeekly(c.Request.Context(), data); err != nil {
			h.Log.Warn("weekly narrative unavailable", zap.Error(err))
		} else {
			out["narrative"] = narrative
		}
	}
	c.JSON(http.StatusOK, out)
}

// GetTrendReport covers the rolling trailing seven days; this is the window
// the protein trend chart reads.
func (h *ReportController) GetTrendReport(c *gin.Context) {
	now := time.Now()
	data, err := h.Reports.TrendReport(now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"from": services.RollingWeekStart(now).Format("2006-01-02"),
		"to":   now.Format("2006-01-02"),
		"data": data,
	})
}
