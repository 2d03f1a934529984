package wellness_test

import (
	"testing"
	"time"

	"holistic/wellness-app/internal/domain"
	"holistic/wellness-app/internal/wellness"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// entrySeq builds consecutive daily entries starting at the given date.
func entrySeq(t *testing.T, start string, actuals []int, target int) []domain.DailyEntry {
	t.Helper()
	day, err := time.Parse(time.DateOnly, start)
	require.NoError(t, err)

	entries := make([]domain.DailyEntry, 0, len(actuals))
	for i, actual := range actuals {
		date := day.AddDate(0, 0, i).Format(time.DateOnly)
		entries = append(entries, mustEntry(t, date, actual, target))
	}
	return entries
}

func repeat(v, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func TestComputeWeeklyStatsIncompleteWeek(t *testing.T) {
	entries := entrySeq(t, "2026-08-01", repeat(2000, 6), 2000)

	stats := wellness.ComputeWeeklyStats(entries, nil)
	assert.False(t, stats.IsComplete)
	assert.Equal(t, 6, stats.DaysCompleted)
	assert.Equal(t, 1, stats.DaysRemaining)
	assert.Zero(t, stats.AverageCalories)
	assert.Zero(t, stats.SuccessRate)
}

func TestComputeWeeklyStatsGain(t *testing.T) {
	// 550 kcal over target every day: 3850 kcal surplus, exactly half a
	// kilogram of expected gain.
	entries := entrySeq(t, "2026-08-01", repeat(2550, 7), 2000)
	plan := &domain.Plan{GoalType: domain.GoalGain, TimelineWeeks: 20}

	stats := wellness.ComputeWeeklyStats(entries, plan)
	assert.True(t, stats.IsComplete)
	assert.Equal(t, 7, stats.DaysCompleted)
	assert.Equal(t, 2550, stats.AverageCalories)
	assert.Equal(t, 3850, stats.WeeklySurplus)
	assert.Equal(t, 0.5, stats.ExpectedWeightChangeKg)
	assert.Equal(t, 7, stats.OnTargetDays)
	assert.Equal(t, 7, stats.OverTargetDays)
	assert.Equal(t, 0, stats.UnderTargetDays)
	assert.Equal(t, "2026-08-01", stats.WeekStart)
	assert.Equal(t, "2026-08-07", stats.WeekEnd)

	assert.Equal(t, 1, stats.WeeksCompleted)
	assert.Equal(t, 20, stats.TotalWeeks)
	assert.Equal(t, 19, stats.WeeksRemaining)
	assert.Equal(t, 5, stats.ProgressPct)
	assert.Equal(t, 5, stats.SuccessRate)
	assert.Equal(t, "Great progress! You're 0.50 kg closer to your goal weight.", stats.Message)
}

func TestComputeWeeklyStatsLose(t *testing.T) {
	entries := entrySeq(t, "2026-08-01", repeat(1600, 7), 2200)
	plan := &domain.Plan{GoalType: domain.GoalLose, TimelineWeeks: 10}

	stats := wellness.ComputeWeeklyStats(entries, plan)
	assert.Equal(t, -4200, stats.WeeklySurplus)
	assert.Equal(t, -0.545, stats.ExpectedWeightChangeKg)
	assert.Equal(t, 7, stats.OnTargetDays)
	assert.Equal(t, "Great progress! You're 0.55 kg closer to your goal weight.", stats.Message)
}

func TestComputeWeeklyStatsLoseMovingAway(t *testing.T) {
	entries := entrySeq(t, "2026-08-01", repeat(2600, 7), 2200)
	plan := &domain.Plan{GoalType: domain.GoalLose, TimelineWeeks: 10}

	stats := wellness.ComputeWeeklyStats(entries, plan)
	assert.Equal(t, 0, stats.OnTargetDays)
	assert.Equal(t, 7, stats.UnderTargetDays)
	assert.Contains(t, stats.Message, "Reduce your calorie intake")
}

func TestComputeWeeklyStatsUsesMostRecentWeek(t *testing.T) {
	// Three old low days followed by a full week at target. The window
	// must cover the last seven entries only.
	actuals := append(repeat(1000, 3), repeat(2000, 7)...)
	entries := entrySeq(t, "2026-08-01", actuals, 2000)

	stats := wellness.ComputeWeeklyStats(entries, nil)
	assert.Equal(t, 2000, stats.AverageCalories)
	assert.Equal(t, "2026-08-04", stats.WeekStart)
	assert.Equal(t, "2026-08-10", stats.WeekEnd)
}

func TestComputeWeeklyStatsMaintain(t *testing.T) {
	actuals := []int{2000, 2000, 2000, 2000, 2000, 2400, 1000}
	entries := entrySeq(t, "2026-08-01", actuals, 2000)

	stats := wellness.ComputeWeeklyStats(entries, nil)
	assert.Equal(t, 5, stats.OnTargetDays)
	assert.Equal(t, 1, stats.OverTargetDays)
	assert.Equal(t, 1, stats.UnderTargetDays)
	// round(5/7 * 100)
	assert.Equal(t, 71, stats.SuccessRate)
	assert.Equal(t, "You're maintaining your weight this week.", stats.Message)
}

func TestComputeWeeklyStatsProgressCapped(t *testing.T) {
	entries := entrySeq(t, "2026-08-01", repeat(2000, 14), 2000)
	plan := &domain.Plan{GoalType: domain.GoalMaintain, TimelineWeeks: 1}

	stats := wellness.ComputeWeeklyStats(entries, plan)
	assert.Equal(t, 2, stats.WeeksCompleted)
	assert.Equal(t, 100, stats.ProgressPct)
	assert.Equal(t, 0, stats.WeeksRemaining)
}

func TestComputeMonthlyStats(t *testing.T) {
	now, err := time.Parse(time.DateOnly, "2026-08-15")
	require.NoError(t, err)

	t.Run("filters to the current month", func(t *testing.T) {
		entries := entrySeq(t, "2026-07-29", repeat(2000, 6), 2000)
		// 2026-07-29..08-03: three July days, three August days.
		stats := wellness.ComputeMonthlyStats(entries, now)
		require.NotNil(t, stats)
		assert.Equal(t, 3, stats.TotalDays)
		assert.Equal(t, 3, stats.OnTargetDays)
		assert.Equal(t, 100, stats.SuccessRate)
		assert.Equal(t, 2000, stats.AverageCalories)
	})
	t.Run("nil when the month is empty", func(t *testing.T) {
		entries := entrySeq(t, "2026-06-01", repeat(2000, 5), 2000)
		assert.Nil(t, wellness.ComputeMonthlyStats(entries, now))
	})
	t.Run("nil for no entries", func(t *testing.T) {
		assert.Nil(t, wellness.ComputeMonthlyStats(nil, now))
	})
}

func TestWeeklySummary(t *testing.T) {
	t.Run("partitions into seven-entry windows", func(t *testing.T) {
		actuals := append(repeat(2000, 7), repeat(2500, 7)...)
		actuals = append(actuals, repeat(2100, 3)...)
		entries := entrySeq(t, "2026-08-01", actuals, 2000)

		weeks := wellness.WeeklySummary(entries)
		require.Len(t, weeks, 3)

		assert.Equal(t, 1, weeks[0].WeekNumber)
		assert.Equal(t, 7, weeks[0].DaysTracked)
		assert.Equal(t, 0, weeks[0].WeeklySurplus)
		assert.Equal(t, 7, weeks[0].OnTargetDays)
		assert.Equal(t, 100, weeks[0].SuccessRate)

		assert.Equal(t, 2, weeks[1].WeekNumber)
		assert.Equal(t, 3500, weeks[1].WeeklySurplus)
		assert.Equal(t, 0.455, weeks[1].ExpectedWeightChangeKg)
		assert.Equal(t, 0, weeks[1].OnTargetDays)

		assert.Equal(t, 3, weeks[2].WeekNumber)
		assert.Equal(t, 3, weeks[2].DaysTracked)
		assert.Equal(t, "2026-08-15", weeks[2].WeekStart)
		assert.Equal(t, "2026-08-17", weeks[2].WeekEnd)
	})
	t.Run("caps at four windows", func(t *testing.T) {
		entries := entrySeq(t, "2026-07-01", repeat(2000, 35), 2000)
		weeks := wellness.WeeklySummary(entries)
		assert.Len(t, weeks, 4)
	})
	t.Run("empty history", func(t *testing.T) {
		assert.Empty(t, wellness.WeeklySummary(nil))
	})
}
