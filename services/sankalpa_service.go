package services

import (
	"fmt"

	"github.com/sourishdey2005/Annaprasanna/models"
	"github.com/sourishdey2005/Annaprasanna/utils"
)

// SankalpaProgress is the tracker's answer for one intention against one week.
type SankalpaProgress struct {
	Sankalpa    models.Sankalpa `json:"sankalpa"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Percent     float64         `json:"percent"`
	Label       string          `json:"label"`
}

type sankalpaStrategy struct {
	title       string
	description string
	progress    func(models.WeeklyReportData) float64
	label       func(models.WeeklyReportData) string
}

// The four fixed intentions. Each maps weekly data to a 0-100 progress figure
// and a one-line label of the raw counts behind it. For the three "reduce"
// goals an empty denominator counts as perfect attainment.
var sankalpaStrategies = map[models.Sankalpa]sankalpaStrategy{
	models.SankalpaIncreaseSattvic: {
		title:       "Increase Sattvic Meals",
		description: "Cultivate clarity and peace by favoring fresh, pure, and calming foods.",
		progress: func(d models.WeeklyReportData) float64 {
			total := d.SattvicCount + d.RajasicCount + d.TamasicCount
			if total == 0 {
				return 0
			}
			return float64(d.SattvicCount) / float64(total) * 100
		},
		label: func(d models.WeeklyReportData) string {
			return fmt.Sprintf("%d of %d meals were Sattvic this week.", d.SattvicCount, d.TotalMeals)
		},
	},
	models.SankalpaReduceRajasic: {
		title:       "Reduce Rajasic Meals",
		description: "Find balance by reducing stimulating, spicy, and overly flavorful foods.",
		progress: func(d models.WeeklyReportData) float64 {
			total := d.SattvicCount + d.RajasicCount + d.TamasicCount
			if total == 0 {
				return 100
			}
			return 100 - float64(d.RajasicCount)/float64(total)*100
		},
		label: func(d models.WeeklyReportData) string {
			return fmt.Sprintf("%d of %d meals were Rajasic this week.", d.RajasicCount, d.TotalMeals)
		},
	},
	models.SankalpaReduceTamasic: {
		title:       "Reduce Tamasic Meals",
		description: "Enhance energy by avoiding heavy, processed, and leftover foods.",
		progress: func(d models.WeeklyReportData) float64 {
			total := d.SattvicCount + d.RajasicCount + d.TamasicCount
			if total == 0 {
				return 100
			}
			return 100 - float64(d.TamasicCount)/float64(total)*100
		},
		label: func(d models.WeeklyReportData) string {
			return fmt.Sprintf("%d of %d meals were Tamasic this week.", d.TamasicCount, d.TotalMeals)
		},
	},
	models.SankalpaReduceLateEating: {
		title:       "Reduce Late-Night Eating",
		description: "Improve digestion and sleep by eating your last meal before sunset.",
		progress: func(d models.WeeklyReportData) float64 {
			if d.TotalMeals == 0 {
				return 100
			}
			return 100 - float64(d.LateNightMeals)/float64(d.TotalMeals)*100
		},
		label: func(d models.WeeklyReportData) string {
			return fmt.Sprintf("You had %d late meals this week.", d.LateNightMeals)
		},
	},
}

// GoalProgress applies the strategy for the given sankalpa to one week of
// data. Stateless: switching the active sankalpa is just a different lookup.
func GoalProgress(s models.Sankalpa, data models.WeeklyReportData) (SankalpaProgress, error) {
	strat, ok := sankalpaStrategies[s]
	if !ok {
		return SankalpaProgress{}, fmt.Errorf("%w: unknown sankalpa %q", utils.ErrValidation, s)
	}
	return SankalpaProgress{
		Sankalpa:    s,
		Title:       strat.title,
		Description: strat.description,
		Percent:     clampPercent(strat.progress(data)),
		Label:       strat.label(data),
	}, nil
}

func clampPercent(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
