package wellness

import (
	"fmt"
	"math"
	"time"

	"holistic/wellness-app/internal/domain"
)

// One kilogram of body mass corresponds to roughly 7700 kcal. Every
// surplus-to-weight projection in the app uses this constant.
const kcalPerKg = 7700.0

// daysPerWeek is the fixed window size for weekly aggregation. Windows are
// seven consecutive entries, not calendar weeks: missed days never stretch a
// window.
const daysPerWeek = 7

// WeeklyStats summarizes the most recent seven tracked days against the
// active plan's timeline. Until seven days exist only the completion counters
// are populated.
type WeeklyStats struct {
	IsComplete    bool `json:"isComplete"`
	DaysCompleted int  `json:"daysCompleted"`
	DaysRemaining int  `json:"daysRemaining"`

	TotalDays              int     `json:"totalDays,omitempty"`
	AverageCalories        int     `json:"averageCalories,omitempty"`
	WeeklySurplus          int     `json:"weeklyCalorieSurplus,omitempty"`
	ExpectedWeightChangeKg float64 `json:"expectedWeightChangeKg,omitempty"`
	OnTargetDays           int     `json:"onTargetDays,omitempty"`
	OverTargetDays         int     `json:"overTargetDays,omitempty"`
	UnderTargetDays        int     `json:"underTargetDays,omitempty"`
	SuccessRate            int     `json:"successRate,omitempty"`

	WeeksCompleted int    `json:"weeksCompleted,omitempty"`
	TotalWeeks     int    `json:"totalWeeks,omitempty"`
	WeeksRemaining int    `json:"weeksRemaining,omitempty"`
	ProgressPct    int    `json:"progressPercentage,omitempty"`
	WeekStart      string `json:"weekStart,omitempty"`
	WeekEnd        string `json:"weekEnd,omitempty"`
	Message        string `json:"message,omitempty"`
}

// MonthlyStats summarizes the entries that fall in the current calendar
// month.
type MonthlyStats struct {
	TotalDays       int `json:"totalDays"`
	OnTargetDays    int `json:"onTargetDays"`
	OverTargetDays  int `json:"overTargetDays"`
	UnderTargetDays int `json:"underTargetDays"`
	AverageCalories int `json:"averageCalories"`
	SuccessRate     int `json:"successRate"`
}

// WeekSummary describes one fixed seven-entry window of the history.
type WeekSummary struct {
	WeekNumber             int     `json:"weekNumber"`
	WeekStart              string  `json:"weekStart"`
	WeekEnd                string  `json:"weekEnd"`
	DaysTracked            int     `json:"daysTracked"`
	AverageCalories        int     `json:"averageCalories"`
	WeeklySurplus          int     `json:"weeklyCalorieSurplus"`
	ExpectedWeightChangeKg float64 `json:"expectedWeightChangeKg"`
	OnTargetDays           int     `json:"onTargetDays"`
	SuccessRate            int     `json:"successRate"`
}

// ComputeWeeklyStats derives the weekly view from the full entry history and
// the active plan. It is pure: recomputing it at any time over the same
// inputs yields the same result.
func ComputeWeeklyStats(entries []domain.DailyEntry, plan *domain.Plan) WeeklyStats {
	sorted := Chronological(entries)

	if len(sorted) < daysPerWeek {
		return WeeklyStats{
			IsComplete:    false,
			DaysCompleted: len(sorted),
			DaysRemaining: daysPerWeek - len(sorted),
		}
	}

	recent := sorted[len(sorted)-daysPerWeek:]

	var totalActual, totalTarget int
	for _, e := range recent {
		totalActual += e.Actual
		totalTarget += e.Target
	}
	surplus := totalActual - totalTarget
	expectedChange := roundTo3(float64(surplus) / kcalPerKg)

	stats := WeeklyStats{
		IsComplete:             true,
		DaysCompleted:          daysPerWeek,
		TotalDays:              daysPerWeek,
		AverageCalories:        int(math.Round(float64(totalActual) / daysPerWeek)),
		WeeklySurplus:          surplus,
		ExpectedWeightChangeKg: expectedChange,
		WeekStart:              recent[0].Date,
		WeekEnd:                recent[len(recent)-1].Date,
	}

	goalType := domain.GoalMaintain
	if plan != nil {
		goalType = plan.GoalType
	}

	switch goalType {
	case domain.GoalGain:
		for _, e := range recent {
			switch {
			case e.Actual > e.Target+200:
				stats.OnTargetDays++
				stats.OverTargetDays++
			case e.Actual > e.Target:
				stats.OnTargetDays++
			default:
				stats.UnderTargetDays++
			}
		}
		stats.Message = gainMessage(expectedChange)
	case domain.GoalLose:
		for _, e := range recent {
			switch {
			case e.Actual < e.Target-200:
				stats.OnTargetDays++
				stats.OverTargetDays++
			case e.Actual < e.Target:
				stats.OnTargetDays++
			default:
				stats.UnderTargetDays++
			}
		}
		stats.Message = loseMessage(expectedChange)
	default:
		for _, e := range recent {
			switch {
			case e.Status == domain.StatusPerfect:
				stats.OnTargetDays++
			case e.Status.IsOver():
				stats.OverTargetDays++
			case e.Status.IsUnder():
				stats.UnderTargetDays++
			}
		}
		stats.Message = "You're maintaining your weight this week."
	}

	// Timeline progress counts whole weeks across the entire history, not
	// just the window under view.
	if plan != nil && plan.TimelineWeeks > 0 {
		stats.TotalWeeks = plan.TimelineWeeks
		stats.WeeksCompleted = len(sorted) / daysPerWeek
		pct := math.Min(float64(stats.WeeksCompleted)/float64(stats.TotalWeeks)*100, 100)
		stats.ProgressPct = int(math.Round(pct))
		stats.WeeksRemaining = stats.TotalWeeks - stats.WeeksCompleted
		if stats.WeeksRemaining < 0 {
			stats.WeeksRemaining = 0
		}
		stats.SuccessRate = stats.ProgressPct
	} else {
		stats.SuccessRate = int(math.Round(float64(stats.OnTargetDays) / daysPerWeek * 100))
	}

	return stats
}

// ComputeMonthlyStats summarizes the entries that belong to now's calendar
// month. It returns nil when the month has no entries yet.
func ComputeMonthlyStats(entries []domain.DailyEntry, now time.Time) *MonthlyStats {
	var monthEntries []domain.DailyEntry
	for _, e := range entries {
		d, err := time.Parse(time.DateOnly, e.Date)
		if err != nil {
			continue
		}
		if d.Year() == now.Year() && d.Month() == now.Month() {
			monthEntries = append(monthEntries, e)
		}
	}
	if len(monthEntries) == 0 {
		return nil
	}

	stats := &MonthlyStats{TotalDays: len(monthEntries)}
	var totalActual int
	for _, e := range monthEntries {
		totalActual += e.Actual
		switch {
		case e.Status == domain.StatusPerfect:
			stats.OnTargetDays++
		case e.Status.IsOver():
			stats.OverTargetDays++
		case e.Status.IsUnder():
			stats.UnderTargetDays++
		}
	}
	stats.AverageCalories = int(math.Round(float64(totalActual) / float64(stats.TotalDays)))
	stats.SuccessRate = int(math.Round(float64(stats.OnTargetDays) / float64(stats.TotalDays) * 100))
	return stats
}

// WeeklySummary partitions the chronologically sorted history into
// consecutive seven-entry windows and summarizes each independently. Only
// the first four windows (28 entries) are reported.
func WeeklySummary(entries []domain.DailyEntry) []WeekSummary {
	sorted := Chronological(entries)

	var weeks []WeekSummary
	for i := 0; i < 4; i++ {
		start := i * daysPerWeek
		if start >= len(sorted) {
			break
		}
		end := start + daysPerWeek
		if end > len(sorted) {
			end = len(sorted)
		}
		window := sorted[start:end]

		var totalActual, totalTarget, perfect int
		for _, e := range window {
			totalActual += e.Actual
			totalTarget += e.Target
			if e.Status == domain.StatusPerfect {
				perfect++
			}
		}
		surplus := totalActual - totalTarget

		weeks = append(weeks, WeekSummary{
			WeekNumber:             i + 1,
			WeekStart:              window[0].Date,
			WeekEnd:                window[len(window)-1].Date,
			DaysTracked:            len(window),
			AverageCalories:        int(math.Round(float64(totalActual) / float64(len(window)))),
			WeeklySurplus:          surplus,
			ExpectedWeightChangeKg: roundTo3(float64(surplus) / kcalPerKg),
			OnTargetDays:           perfect,
			SuccessRate:            int(math.Round(float64(perfect) / float64(len(window)) * 100)),
		})
	}
	return weeks
}

func gainMessage(expectedChange float64) string {
	switch {
	case expectedChange > 0:
		return fmt.Sprintf("Great progress! You're %.2f kg closer to your goal weight.", expectedChange)
	case expectedChange < 0:
		return "This week you're moving away from your goal. Increase your calorie intake to reach your target weight."
	default:
		return "You're maintaining your weight this week. Eat more calories to gain weight."
	}
}

func loseMessage(expectedChange float64) string {
	switch {
	case expectedChange < 0:
		return fmt.Sprintf("Great progress! You're %.2f kg closer to your goal weight.", math.Abs(expectedChange))
	case expectedChange > 0:
		return "This week you're moving away from your goal. Reduce your calorie intake to reach your target weight."
	default:
		return "You're maintaining your weight this week. Eat fewer calories to lose weight."
	}
}

func roundTo3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
