package services

import (
	"sort"
	"strings"
	"time"

	"github.com/sourishdey2005/Annaprasanna/models"
)

// Late-night band: [21:00, 24:00) ∪ [00:00, 04:00) local time.
const (
	lateNightStartHour = 21
	lateNightEndHour   = 4
)

// portionWarningMarker flags classifier portion advisories that describe an
// oversized serving. The advisory is free text, so this stays a substring
// match against the wording the classifier is prompted to use.
const portionWarningMarker = "larger"

// Protein trend thresholds: last-day mean vs first-day mean.
const (
	trendUpFactor   = 1.10
	trendDownFactor = 0.90
)

// ReportService derives windowed statistics from the meal store. All the
// computation itself lives in pure functions over record slices; the service
// methods only pick the window and fetch it.
type ReportService struct {
	meals *MealService
}

func NewReportService(meals *MealService) *ReportService {
	return &ReportService{meals: meals}
}

// DailyTotals aggregates the given local calendar date.
func (s *ReportService) DailyTotals(date string) (models.DailyTotals, error) {
	meals, err := s.meals.ListByDate(date)
	if err != nil {
		return models.DailyTotals{}, err
	}
	return ComputeDailyTotals(meals, date), nil
}

// WeeklyReport aggregates the calendar Monday-start week containing now.
// This is the window the Sankalpa tracker and the weekly digest use.
func (s *ReportService) WeeklyReport(now time.Time) (models.WeeklyReportData, error) {
	from := StartOfWeek(now)
	to := from.AddDate(0, 0, 7)
	meals, err := s.meals.ListByRange(from.UnixMilli(), to.UnixMilli())
	if err != nil {
		return models.WeeklyReportData{}, err
	}
	return ComputeWeeklyReportData(meals), nil
}

// TrendReport aggregates the rolling trailing seven days ending today.
// This is the window the trend chart uses.
func (s *ReportService) TrendReport(now time.Time) (models.WeeklyReportData, error) {
	from := RollingWeekStart(now)
	to := dayStart(now).AddDate(0, 0, 1)
	meals, err := s.meals.ListByRange(from.UnixMilli(), to.UnixMilli())
	if err != nil {
		return models.WeeklyReportData{}, err
	}
	return ComputeWeeklyReportData(meals), nil
}

// ComputeDailyTotals sums the records whose date equals targetDate. String
// equality only; no timezone reinterpretation. An empty match yields all-zero
// totals, never an error.
func ComputeDailyTotals(meals []models.MealRecord, targetDate string) models.DailyTotals {
	t := models.DailyTotals{Date: targetDate}
	for _, m := range meals {
		if m.Date != targetDate {
			continue
		}
		t.Calories += m.Calories
		t.Protein += m.ProteinG
		t.Carbs += m.CarbsG
		t.Fats += m.FatsG
		switch m.Guna {
		case models.GunaSattvic:
			t.Sattvic++
		case models.GunaRajasic:
			t.Rajasic++
		case models.GunaTamasic:
			t.Tamasic++
		}
		if isLateNight(m.Timestamp) {
			t.LateNightMealCount++
		}
		t.MealCount++
	}
	return t
}

// ComputeWeeklyReportData tallies a pre-filtered seven-day window of meals.
// Records without a context or cooking method contribute to neither tally;
// an empty input yields zero counts, an empty histogram and a stable trend.
func ComputeWeeklyReportData(weeklyMeals []models.MealRecord) models.WeeklyReportData {
	data := models.WeeklyReportData{
		CookingMethods:     map[models.CookingMethod]int{},
		ProteinIntakeTrend: models.TrendStable,
	}

	proteinByDay := map[string]*dayProtein{}

	for _, m := range weeklyMeals {
		data.TotalMeals++

		switch m.Guna {
		case models.GunaSattvic:
			data.SattvicCount++
		case models.GunaRajasic:
			data.RajasicCount++
		case models.GunaTamasic:
			data.TamasicCount++
		}

		if isLateNight(m.Timestamp) {
			data.LateNightMeals++
		}

		if m.MealContext != nil {
			switch *m.MealContext {
			case models.ContextOutside:
				data.OutsideMeals++
			case models.ContextHomeCooked:
				data.HomeCookedMeals++
			case models.ContextPrasadam:
				data.PrasadamMeals++
			}
		}

		if m.PortionAwareness != nil &&
			strings.Contains(strings.ToLower(*m.PortionAwareness), portionWarningMarker) {
			data.LargePortions++
		}

		if m.CookingMethod != nil {
			data.CookingMethods[*m.CookingMethod]++
		}

		dp := proteinByDay[m.Date]
		if dp == nil {
			dp = &dayProtein{}
			proteinByDay[m.Date] = dp
		}
		dp.total += m.ProteinG
		dp.count++
	}

	data.ProteinIntakeTrend = proteinTrend(proteinByDay)
	return data
}

type dayProtein struct {
	total float64
	count int
}

// proteinTrend compares the mean protein of the earliest day in the window
// against the latest day. Fewer than three distinct days is stable by
// definition. A two-point comparison, not a regression.
func proteinTrend(byDay map[string]*dayProtein) models.ProteinTrend {
	if len(byDay) < 3 {
		return models.TrendStable
	}
	days := make([]string, 0, len(byDay))
	for d := range byDay {
		days = append(days, d)
	}
	sort.Strings(days)

	first := byDay[days[0]]
	last := byDay[days[len(days)-1]]
	firstAvg := first.total / float64(first.count)
	lastAvg := last.total / float64(last.count)

	switch {
	case lastAvg > firstAvg*trendUpFactor:
		return models.TrendIncreasing
	case lastAvg < firstAvg*trendDownFactor:
		return models.TrendDecreasing
	default:
		return models.TrendStable
	}
}

func isLateNight(timestampMs int64) bool {
	h := time.UnixMilli(timestampMs).Hour()
	return h >= lateNightStartHour || h < lateNightEndHour
}

// StartOfWeek returns local midnight of the Monday on or before t.
func StartOfWeek(t time.Time) time.Time {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	return dayStart(t).AddDate(0, 0, -(wd - 1))
}

// RollingWeekStart returns local midnight six days before t, so the rolling
// window [RollingWeekStart, tomorrow) spans exactly seven calendar days.
func RollingWeekStart(t time.Time) time.Time {
	return dayStart(t).AddDate(0, 0, -6)
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
