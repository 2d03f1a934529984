package wellness

import (
	"math"
	"sort"
	"time"

	"holistic/wellness-app/internal/domain"
)

// ClassifyIntake grades a day's actual intake against its calorie target.
// The rule is direction-agnostic: the same bands apply whether the active
// goal is gaining or losing.
//
//	within 5% of target  -> Perfect
//	within 15%           -> SlightlyOver / SlightlyUnder
//	beyond 15%           -> Over / Under
func ClassifyIntake(actual, target int) (domain.EntryStatus, error) {
	if target <= 0 {
		return "", invalid("target", "must be greater than zero")
	}
	if actual < 0 {
		return "", invalid("actual", "must not be negative")
	}

	diff := actual - target
	pct := math.Abs(float64(diff)) / float64(target) * 100

	switch {
	case pct <= 5:
		return domain.StatusPerfect, nil
	case pct <= 15:
		if diff > 0 {
			return domain.StatusSlightlyOver, nil
		}
		return domain.StatusSlightlyUnder, nil
	default:
		if diff > 0 {
			return domain.StatusOver, nil
		}
		return domain.StatusUnder, nil
	}
}

// NewEntry builds a classified daily entry for the given calendar date.
// Dates are day-granular ISO strings (2006-01-02); any time component is an
// input error.
func NewEntry(date string, actual, target int) (domain.DailyEntry, error) {
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		return domain.DailyEntry{}, invalid("date", "must be a calendar date in YYYY-MM-DD format")
	}
	status, err := ClassifyIntake(actual, target)
	if err != nil {
		return domain.DailyEntry{}, err
	}
	return domain.DailyEntry{
		Date:   date,
		Target: target,
		Actual: actual,
		Status: status,
	}, nil
}

// Upsert inserts the entry into the history, replacing any existing entry
// for the same date (last write wins). The returned slice is a fresh,
// chronologically sorted copy; the input is not modified.
func Upsert(entries []domain.DailyEntry, entry domain.DailyEntry) []domain.DailyEntry {
	out := make([]domain.DailyEntry, 0, len(entries)+1)
	for _, e := range entries {
		if e.Date != entry.Date {
			out = append(out, e)
		}
	}
	out = append(out, entry)
	sortByDate(out)
	return out
}

// Chronological returns a copy of the history sorted ascending by date, the
// order timeline computations expect.
func Chronological(entries []domain.DailyEntry) []domain.DailyEntry {
	out := make([]domain.DailyEntry, len(entries))
	copy(out, entries)
	sortByDate(out)
	return out
}

// RecentFirst returns a copy sorted most-recent-first for display feeds.
func RecentFirst(entries []domain.DailyEntry) []domain.DailyEntry {
	out := Chronological(entries)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// ISO date strings sort chronologically as plain strings.
func sortByDate(entries []domain.DailyEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date < entries[j].Date
	})
}
