package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sourishdey2005/Annaprasanna/models"
)

func mealOn(t *testing.T, day, clock string, guna models.Guna) models.MealRecord {
	t.Helper()
	ts, err := time.ParseInLocation("2006-01-02 15:04", day+" "+clock, time.Local)
	require.NoError(t, err)
	return models.MealRecord{
		FoodName:  "Kitchari",
		Calories:  300,
		ProteinG:  12,
		CarbsG:    45,
		FatsG:     8,
		Guna:      guna,
		VedicTip:  "Eat with gratitude.",
		Timestamp: ts.UnixMilli(),
		Date:      day,
	}
}

func contextPtr(c models.MealContext) *models.MealContext { return &c }
func methodPtr(m models.CookingMethod) *models.CookingMethod { return &m }
func strPtr(s string) *string { return &s }

func TestComputeDailyTotals(t *testing.T) {
	m1 := mealOn(t, "2024-01-01", "08:00", models.GunaSattvic)
	m1.Calories = 300
	m2 := mealOn(t, "2024-01-01", "13:00", models.GunaSattvic)
	m2.Calories = 400
	m3 := mealOn(t, "2024-01-01", "19:00", models.GunaRajasic)
	m3.Calories = 500
	other := mealOn(t, "2024-01-02", "08:00", models.GunaTamasic)

	totals := ComputeDailyTotals([]models.MealRecord{m1, m2, m3, other}, "2024-01-01")

	assert.Equal(t, 3, totals.MealCount)
	assert.Equal(t, 1200.0, totals.Calories)
	assert.Equal(t, 36.0, totals.Protein)
	assert.Equal(t, 2, totals.Sattvic)
	assert.Equal(t, 1, totals.Rajasic)
	assert.Equal(t, 0, totals.Tamasic)
	assert.Equal(t, 0, totals.LateNightMealCount)
}

func TestComputeDailyTotalsEmpty(t *testing.T) {
	totals := ComputeDailyTotals(nil, "2024-01-01")
	assert.Equal(t, models.DailyTotals{Date: "2024-01-01"}, totals)

	totals = ComputeDailyTotals([]models.MealRecord{mealOn(t, "2024-01-02", "08:00", models.GunaSattvic)}, "2024-01-01")
	assert.Zero(t, totals.MealCount)
	assert.Zero(t, totals.Calories)
}

func TestLateNightMealCountedOnce(t *testing.T) {
	m := mealOn(t, "2024-01-01", "22:15", models.GunaTamasic)

	totals := ComputeDailyTotals([]models.MealRecord{m}, "2024-01-01")
	assert.Equal(t, 1, totals.MealCount)
	assert.Equal(t, 1, totals.LateNightMealCount)

	data := ComputeWeeklyReportData([]models.MealRecord{m})
	assert.Equal(t, 1, data.LateNightMeals)
}

func TestIsLateNight(t *testing.T) {
	cases := []struct {
		hour int
		want bool
	}{
		{23, true},
		{21, true},
		{3, true},
		{0, true},
		{4, false},
		{20, false},
		{12, false},
	}
	for _, tc := range cases {
		ts := time.Date(2024, 1, 1, tc.hour, 30, 0, 0, time.Local).UnixMilli()
		assert.Equal(t, tc.want, isLateNight(ts), "hour %d", tc.hour)
	}
}

func TestComputeWeeklyReportDataTallies(t *testing.T) {
	m1 := mealOn(t, "2024-01-01", "08:00", models.GunaSattvic)
	m1.MealContext = contextPtr(models.ContextHomeCooked)
	m1.CookingMethod = methodPtr(models.MethodSteamed)

	m2 := mealOn(t, "2024-01-01", "13:00", models.GunaRajasic)
	m2.MealContext = contextPtr(models.ContextOutside)
	m2.CookingMethod = methodPtr(models.MethodFried)
	m2.PortionAwareness = strPtr("This portion appears LARGER than a traditional serving; consider sharing.")

	m3 := mealOn(t, "2024-01-02", "22:30", models.GunaTamasic)
	m3.PortionAwareness = strPtr("A mindful, moderate serving.")

	m4 := mealOn(t, "2024-01-03", "12:00", models.GunaSattvic)
	m4.MealContext = contextPtr(models.ContextPrasadam)
	m4.CookingMethod = methodPtr(models.MethodFried)
	m4.PortionAwareness = strPtr("a larger helping than the body needs at midday")

	data := ComputeWeeklyReportData([]models.MealRecord{m1, m2, m3, m4})

	assert.Equal(t, 4, data.TotalMeals)
	assert.Equal(t, 2, data.SattvicCount)
	assert.Equal(t, 1, data.RajasicCount)
	assert.Equal(t, 1, data.TamasicCount)
	assert.Equal(t, data.TotalMeals, data.SattvicCount+data.RajasicCount+data.TamasicCount)

	assert.Equal(t, 1, data.HomeCookedMeals)
	assert.Equal(t, 1, data.OutsideMeals)
	assert.Equal(t, 1, data.PrasadamMeals)

	assert.Equal(t, 1, data.LateNightMeals)
	assert.Equal(t, 2, data.LargePortions)

	assert.Equal(t, map[models.CookingMethod]int{
		models.MethodSteamed: 1,
		models.MethodFried:   2,
	}, data.CookingMethods)
}

func TestComputeWeeklyReportDataEmpty(t *testing.T) {
	data := ComputeWeeklyReportData(nil)
	assert.Zero(t, data.TotalMeals)
	assert.Equal(t, models.TrendStable, data.ProteinIntakeTrend)
	assert.NotNil(t, data.CookingMethods)
	assert.Len(t, data.CookingMethods, 0)
}

func TestProteinTrendNeedsThreeDays(t *testing.T) {
	m1 := mealOn(t, "2024-01-01", "08:00", models.GunaSattvic)
	m1.ProteinG = 5
	m2 := mealOn(t, "2024-01-02", "08:00", models.GunaSattvic)
	m2.ProteinG = 500 // huge jump, still not enough days

	data := ComputeWeeklyReportData([]models.MealRecord{m1, m2})
	assert.Equal(t, models.TrendStable, data.ProteinIntakeTrend)
}

func TestProteinTrendDirections(t *testing.T) {
	build := func(day1a, day1b, day2, day3 float64) []models.MealRecord {
		m1 := mealOn(t, "2024-01-01", "08:00", models.GunaSattvic)
		m1.ProteinG = day1a
		m2 := mealOn(t, "2024-01-01", "19:00", models.GunaSattvic)
		m2.ProteinG = day1b
		m3 := mealOn(t, "2024-01-02", "12:00", models.GunaSattvic)
		m3.ProteinG = day2
		m4 := mealOn(t, "2024-01-03", "12:00", models.GunaSattvic)
		m4.ProteinG = day3
		return []models.MealRecord{m1, m2, m3, m4}
	}

	// day1 mean 10, day3 mean 11.5 > 11 → increasing
	data := ComputeWeeklyReportData(build(8, 12, 10, 11.5))
	assert.Equal(t, models.TrendIncreasing, data.ProteinIntakeTrend)

	// day1 mean 10, day3 mean 8.5 < 9 → decreasing
	data = ComputeWeeklyReportData(build(8, 12, 10, 8.5))
	assert.Equal(t, models.TrendDecreasing, data.ProteinIntakeTrend)

	// within ±10% of the first day stays stable
	data = ComputeWeeklyReportData(build(8, 12, 10, 10.5))
	assert.Equal(t, models.TrendStable, data.ProteinIntakeTrend)
}

func TestProteinTrendComparesEarliestAndLatestDays(t *testing.T) {
	// the middle day's spike must not affect the two-point comparison
	m1 := mealOn(t, "2024-01-01", "08:00", models.GunaSattvic)
	m1.ProteinG = 10
	m2 := mealOn(t, "2024-01-02", "08:00", models.GunaSattvic)
	m2.ProteinG = 90
	m3 := mealOn(t, "2024-01-03", "08:00", models.GunaSattvic)
	m3.ProteinG = 10

	data := ComputeWeeklyReportData([]models.MealRecord{m3, m1, m2}) // order must not matter
	assert.Equal(t, models.TrendStable, data.ProteinIntakeTrend)
}

func TestStartOfWeek(t *testing.T) {
	wed := time.Date(2024, 1, 10, 15, 30, 0, 0, time.Local)
	sun := time.Date(2024, 1, 14, 9, 0, 0, 0, time.Local)
	mon := time.Date(2024, 1, 8, 0, 0, 0, 0, time.Local)

	assert.Equal(t, mon, StartOfWeek(wed))
	assert.Equal(t, mon, StartOfWeek(sun))
	assert.Equal(t, mon, StartOfWeek(mon))
}

func TestRollingWeekStart(t *testing.T) {
	wed := time.Date(2024, 1, 10, 15, 30, 0, 0, time.Local)
	assert.Equal(t, time.Date(2024, 1, 4, 0, 0, 0, 0, time.Local), RollingWeekStart(wed))
}
