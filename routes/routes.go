package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sourishdey2005/Annaprasanna/controllers"
)

func SetupRouter(
	mealCtl *controllers.MealController,
	reportCtl *controllers.ReportController,
	sankalpaCtl *controllers.SankalpaController,
	journalCtl *controllers.JournalController,
	realtimeCtl *controllers.RealtimeController,
) *gin.Engine {
	r := gin.Default()

	meals := r.Group("/meals")
	{
		meals.POST("", mealCtl.LogMeal)
		meals.GET("", mealCtl.ListMeals)
	}

	reports := r.Group("/reports")
	{
		reports.GET("/daily", reportCtl.GetDailyReport)
		reports.GET("/weekly", reportCtl.GetWeeklyReport)
		reports.GET("/trend", reportCtl.GetTrendReport)
	}

	sankalpa := r.Group("/sankalpa")
	{
		sankalpa.GET("", sankalpaCtl.GetSettings)
		sankalpa.PUT("", sankalpaCtl.UpdateSettings)
		sankalpa.GET("/progress", sankalpaCtl.GetProgress)
	}

	journal := r.Group("/journal")
	{
		journal.GET("", journalCtl.GetJournal)
		journal.GET("/profile", journalCtl.GetProfile)
	}

	r.GET("/ws", realtimeCtl.JournalWS)

	return r
}
