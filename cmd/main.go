package main

import (
	"context"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/sourishdey2005/Annaprasanna/config"
	"github.com/sourishdey2005/Annaprasanna/controllers"
	"github.com/sourishdey2005/Annaprasanna/routes"
	"github.com/sourishdey2005/Annaprasanna/services"
	"github.com/sourishdey2005/Annaprasanna/utils"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	config.LoadEnv(log)
	db := config.InitDB(log)
	utils.InitS3(log)
	utils.InitSES(log)

	mealSvc := services.NewMealService(db)
	reportSvc := services.NewReportService(mealSvc)
	settingsSvc := services.NewSettingsService(db)
	gemini := services.NewGeminiService()
	hub := services.NewRealtimeHub()

	rek, err := services.NewRekognitionService(context.Background())
	if err != nil {
		log.Warn("Rekognition unavailable, image pre-check disabled", zap.Error(err))
		rek = nil
	}

	digest := services.NewDigestService(log, mealSvc, settingsSvc, gemini)
	sched := cron.New()
	if err := digest.Start(sched); err != nil {
		log.Fatal("Failed to schedule weekly digest", zap.Error(err))
	}
	sched.Start()

	r := routes.SetupRouter(
		controllers.NewMealController(mealSvc, gemini, rek, settingsSvc, hub, log),
		controllers.NewReportController(reportSvc, gemini, log),
		controllers.NewSankalpaController(settingsSvc, reportSvc),
		controllers.NewJournalController(mealSvc),
		controllers.NewRealtimeController(hub),
	)
	if err := r.Run(":8080"); err != nil {
		log.Fatal("Server exited", zap.Error(err))
	}
}
