package models

// ProteinTrend is the qualitative direction of protein intake across a window.
type ProteinTrend string

const (
	TrendIncreasing ProteinTrend = "increasing"
	TrendDecreasing ProteinTrend = "decreasing"
	TrendStable     ProteinTrend = "stable"
)

// DailyTotals aggregates all meals whose date equals the target day.
// Derived on demand, never persisted.
type DailyTotals struct {
	Date               string  `json:"date"`
	Calories           float64 `json:"calories"`
	Protein            float64 `json:"protein"`
	Carbs              float64 `json:"carbs"`
	Fats               float64 `json:"fats"`
	Sattvic            int     `json:"sattvic"`
	Rajasic            int     `json:"rajasic"`
	Tamasic            int     `json:"tamasic"`
	MealCount          int     `json:"mealCount"`
	LateNightMealCount int     `json:"lateNightMealCount"`
}

// WeeklyReportData aggregates a seven-day window of meals. Derived on demand,
// never persisted. The window itself (calendar week vs rolling seven days) is
// the caller's choice; see the report service's window helpers.
type WeeklyReportData struct {
	TotalMeals         int                   `json:"totalMeals"`
	SattvicCount       int                   `json:"sattvicCount"`
	RajasicCount       int                   `json:"rajasicCount"`
	TamasicCount       int                   `json:"tamasicCount"`
	LateNightMeals     int                   `json:"lateNightMeals"`
	OutsideMeals       int                   `json:"outsideMeals"`
	HomeCookedMeals    int                   `json:"homeCookedMeals"`
	PrasadamMeals      int                   `json:"prasadamMeals"`
	LargePortions      int                   `json:"largePortions"`
	CookingMethods     map[CookingMethod]int `json:"cookingMethods"`
	ProteinIntakeTrend ProteinTrend          `json:"proteinIntakeTrend"`
}
