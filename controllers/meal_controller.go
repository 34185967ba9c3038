package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sourishdey2005/Annaprasanna/models"
	"github.com/sourishdey2005/Annaprasanna/services"
	"github.com/sourishdey2005/Annaprasanna/utils"
)

type MealController struct {
	Meals    *services.MealService
	Gemini   *services.GeminiService
	Rek      *services.RekognitionService // optional; nil disables the pre-check
	Settings *services.SettingsService
	RT       *services.RealtimeHub
	Log      *zap.Logger
}

func NewMealController(
	meals *services.MealService,
	gemini *services.GeminiService,
	rek *services.RekognitionService,
	settings *services.SettingsService,
	rt *services.RealtimeHub,
	log *zap.Logger,
) *MealController {
	return &MealController{Meals: meals, Gemini: gemini, Rek: rek, Settings: settings, RT: rt, Log: log}
}

type logMealRequest struct {
	ImageDataURI string              `json:"image_data_uri" binding:"required"`
	Timestamp    int64               `json:"timestamp"`
	MealContext  *models.MealContext `json:"meal_context,omitempty"`
	RetainImage  bool                `json:"retain_image"`
}

// LogMeal classifies the photo, optionally retains it, and persists the
// record. Classification failure persists nothing; a failed image upload only
// drops the optional image reference.
func (h *MealController) LogMeal(c *gin.Context) {
	var req logMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Timestamp == 0 {
		req.Timestamp = time.Now().UnixMilli()
	}
	if req.MealContext != nil && !req.MealContext.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown meal context"})
		return
	}

	settings, err := h.Settings.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if h.Rek != nil {
		ok, err := h.Rek.LooksLikeFood(c.Request.Context(), req.ImageDataURI)
		if err != nil {
			// pre-check trouble is not fatal; the classifier still gets a look
			h.Log.Warn("rekognition pre-check failed", zap.Error(err))
		} else if !ok {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "no food detected in the image"})
			return
		}
	}

	cls, err := h.Gemini.ClassifyMeal(c.Request.Context(), req.ImageDataURI, settings.Dosha, req.Timestamp)
	if err != nil {
		if errors.Is(err, utils.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	rec := &models.MealRecord{
		FoodName:             cls.FoodName,
		Calories:             cls.Calories,
		ProteinG:             cls.ProteinG,
		CarbsG:               cls.CarbsG,
		FatsG:                cls.FatsG,
		Guna:                 cls.Guna,
		VedicTip:             cls.VedicTip,
		Timestamp:            req.Timestamp,
		MealContext:          req.MealContext,
		DoshaSuggestion:      cls.DoshaSuggestion,
		TimeOfDayWisdom:      cls.TimeOfDayWisdom,
		IngredientBreakdown:  cls.IngredientBreakdown,
		PortionAwareness:     cls.PortionAwareness,
		SeasonalAwareness:    cls.SeasonalAwareness,
		CookingMethod:        cls.CookingMethod,
		CookingMethodInsight: cls.CookingMethodInsight,
	}

	if req.RetainImage {
		url, err := utils.UploadMealImage(req.ImageDataURI)
		if err != nil {
			h.Log.Warn("meal image upload failed, record kept without image", zap.Error(err))
		} else {
			rec.ImageURL = &url
		}
	}

	saved, err := h.Meals.Create(rec)
	if err != nil {
		if errors.Is(err, utils.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.RT.Broadcast("meal.logged", saved)
	c.JSON(http.StatusCreated, saved)
}

func (h *MealController) ListMeals(c *gin.Context) {
	meals, err := h.Meals.FetchAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meals)
}
