package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sourishdey2005/Annaprasanna/models"
	"github.com/sourishdey2005/Annaprasanna/utils"
)

func TestGoalProgressIncreaseSattvic(t *testing.T) {
	data := models.WeeklyReportData{
		TotalMeals: 10, SattvicCount: 5, RajasicCount: 3, TamasicCount: 2,
	}

	p, err := GoalProgress(models.SankalpaIncreaseSattvic, data)
	require.NoError(t, err)
	assert.Equal(t, 50.0, p.Percent)
	assert.Equal(t, "5 of 10 meals were Sattvic this week.", p.Label)
	assert.Equal(t, "Increase Sattvic Meals", p.Title)
}

func TestGoalProgressIncreaseSattvicNoClassifiedMeals(t *testing.T) {
	p, err := GoalProgress(models.SankalpaIncreaseSattvic, models.WeeklyReportData{})
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.Percent)
}

func TestGoalProgressReduceStrategies(t *testing.T) {
	data := models.WeeklyReportData{
		TotalMeals: 10, SattvicCount: 5, RajasicCount: 3, TamasicCount: 2,
		LateNightMeals: 4,
	}

	p, err := GoalProgress(models.SankalpaReduceRajasic, data)
	require.NoError(t, err)
	assert.Equal(t, 70.0, p.Percent)
	assert.Equal(t, "3 of 10 meals were Rajasic this week.", p.Label)

	p, err = GoalProgress(models.SankalpaReduceTamasic, data)
	require.NoError(t, err)
	assert.Equal(t, 80.0, p.Percent)

	p, err = GoalProgress(models.SankalpaReduceLateEating, data)
	require.NoError(t, err)
	assert.Equal(t, 60.0, p.Percent)
	assert.Equal(t, "You had 4 late meals this week.", p.Label)
}

func TestGoalProgressEmptyDenominatorIsPerfect(t *testing.T) {
	empty := models.WeeklyReportData{}

	for _, s := range []models.Sankalpa{
		models.SankalpaReduceRajasic,
		models.SankalpaReduceTamasic,
		models.SankalpaReduceLateEating,
	} {
		p, err := GoalProgress(s, empty)
		require.NoError(t, err)
		assert.Equal(t, 100.0, p.Percent, "sankalpa %s", s)
	}
}

func TestGoalProgressAlwaysClamped(t *testing.T) {
	datasets := []models.WeeklyReportData{
		{},
		{TotalMeals: 1, SattvicCount: 1},
		{TotalMeals: 7, RajasicCount: 7},
		{TotalMeals: 5, TamasicCount: 5, LateNightMeals: 5},
		{TotalMeals: 20, SattvicCount: 6, RajasicCount: 7, TamasicCount: 7, LateNightMeals: 20},
	}
	for _, data := range datasets {
		for s := range sankalpaStrategies {
			p, err := GoalProgress(s, data)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, p.Percent, 0.0)
			assert.LessOrEqual(t, p.Percent, 100.0)
		}
	}
}

func TestGoalProgressUnknownSankalpa(t *testing.T) {
	_, err := GoalProgress(models.Sankalpa("eat-more-sweets"), models.WeeklyReportData{})
	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrValidation)
}
