package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sourishdey2005/Annaprasanna/models"
)

func TestGenerateJournalEmpty(t *testing.T) {
	assert.Equal(t, EmptyJournal, GenerateJournal(nil))
	assert.Equal(t, EmptyJournal, GenerateJournal([]models.MealRecord{}))
}

func TestGenerateJournalOrdering(t *testing.T) {
	lunch := mealOn(t, "2024-01-01", "13:00", models.GunaRajasic)
	lunch.FoodName = "Samosa Chaat"
	breakfast := mealOn(t, "2024-01-01", "09:00", models.GunaSattvic)
	breakfast.FoodName = "Oatmeal"
	nextDay := mealOn(t, "2024-01-02", "08:30", models.GunaSattvic)
	nextDay.FoodName = "Idli"

	// deliberately scrambled input
	out := GenerateJournal([]models.MealRecord{nextDay, lunch, breakfast})

	assert.True(t, strings.HasPrefix(out, "My Vedic Food Journal\n"))
	assert.True(t, strings.HasSuffix(out, "End of Journal.\n"))

	day1 := strings.Index(out, "Monday, January 1, 2024")
	day2 := strings.Index(out, "Tuesday, January 2, 2024")
	assert.Greater(t, day1, -1)
	assert.Greater(t, day2, day1, "dates must run chronologically")

	oatmeal := strings.Index(out, "Oatmeal")
	samosa := strings.Index(out, "Samosa Chaat")
	assert.Greater(t, samosa, oatmeal, "meals within a day must run by timestamp")
}

func TestGenerateJournalEntryFormat(t *testing.T) {
	m := mealOn(t, "2024-01-01", "09:00", models.GunaSattvic)
	m.FoodName = "Oatmeal"
	m.Calories = 250
	m.ProteinG = 9
	m.CarbsG = 40
	m.FatsG = 5
	m.MealContext = contextPtr(models.ContextHomeCooked)
	m.DoshaSuggestion = strPtr("Add warming spices for Vata.")

	out := GenerateJournal([]models.MealRecord{m})

	assert.Contains(t, out, "  - [9:00 AM] Oatmeal (250 kcal)")
	assert.Contains(t, out, "    Guna: Sattvic")
	assert.Contains(t, out, "    Context: Home-cooked")
	assert.Contains(t, out, "    Macros: P:9g, C:40g, F:5g")
	assert.Contains(t, out, `    Insight: "Eat with gratitude."`)
	assert.Contains(t, out, `    Suggestion: "Add warming spices for Vata."`)
}

func TestGenerateJournalOmitsAbsentFields(t *testing.T) {
	m := mealOn(t, "2024-01-01", "09:00", models.GunaSattvic)
	m.VedicTip = ""

	out := GenerateJournal([]models.MealRecord{m})

	assert.NotContains(t, out, "Context:")
	assert.NotContains(t, out, "Insight:")
	assert.NotContains(t, out, "Suggestion:")
}

func TestTimeBand(t *testing.T) {
	cases := []struct {
		hour int
		want string
	}{
		{4, "Morning"}, {9, "Morning"},
		{10, "Mid-day"}, {13, "Mid-day"},
		{14, "Afternoon"}, {17, "Afternoon"},
		{18, "Evening"}, {21, "Evening"},
		{22, "Late Night"}, {23, "Late Night"}, {0, "Late Night"}, {3, "Late Night"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, timeBand(tc.hour), "hour %d", tc.hour)
	}
}

func TestModeOf(t *testing.T) {
	assert.Equal(t, "b", modeOf([]string{"a", "b", "b"}))
	// tie resolves to whichever value reached the winning count first
	assert.Equal(t, "Sattvic", modeOf([]string{"Sattvic", "Rajasic", "Sattvic", "Rajasic"}))
	assert.Equal(t, "", modeOf(nil))
}

func TestGenerateProfileDominantsAndGuidance(t *testing.T) {
	var meals []models.MealRecord
	days := []string{
		"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05",
		"2024-01-06", "2024-01-07", "2024-01-08", "2024-01-09", "2024-01-10",
	}
	for _, day := range days {
		morning := mealOn(t, day, "08:00", models.GunaSattvic)
		morning.MealContext = contextPtr(models.ContextHomeCooked)

		dinner := mealOn(t, day, "20:00", models.GunaRajasic)
		dinner.MealContext = contextPtr(models.ContextOutside)

		late := mealOn(t, day, "21:30", models.GunaRajasic)
		late.MealContext = contextPtr(models.ContextOutside)

		meals = append(meals, morning, dinner, late)
	}

	out := GenerateProfile(meals)

	assert.Contains(t, out, "Meals studied: 30")
	assert.Contains(t, out, "Dominant Guna: Rajasic")
	assert.Contains(t, out, "Most common eating time: Evening")
	assert.Contains(t, out, "Most common meal context: Outside")

	assert.Contains(t, out, "Favor fresh, lightly spiced, home-cooked foods")
	assert.Contains(t, out, "Aim to finish your last meal earlier")
	assert.Contains(t, out, "pause for a moment of gratitude")
	assert.Contains(t, out, "awareness itself is the practice")
}

func TestGenerateProfileClosingAlwaysPresent(t *testing.T) {
	var meals []models.MealRecord
	for _, day := range []string{"2024-01-01", "2024-01-02", "2024-01-03"} {
		m := mealOn(t, day, "08:00", models.GunaSattvic)
		meals = append(meals, m)
	}

	out := GenerateProfile(meals)

	assert.Contains(t, out, "Dominant Guna: Sattvic")
	assert.Contains(t, out, "Most common eating time: Morning")
	// no context logged: everything falls into the Unknown bucket
	assert.Contains(t, out, "Most common meal context: Unknown")

	assert.NotContains(t, out, "Favor fresh, lightly spiced")
	assert.NotContains(t, out, "Aim to finish your last meal earlier")
	assert.NotContains(t, out, "pause for a moment of gratitude")
	assert.Contains(t, out, "awareness itself is the practice")
}
