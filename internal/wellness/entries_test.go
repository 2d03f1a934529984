package wellness_test

import (
	"testing"

	"holistic/wellness-app/internal/domain"
	"holistic/wellness-app/internal/wellness"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyIntake(t *testing.T) {
	cases := []struct {
		name   string
		actual int
		target int
		want   domain.EntryStatus
	}{
		{"exact match", 2096, 2096, domain.StatusPerfect},
		{"just over target", 2100, 2096, domain.StatusPerfect},
		{"within five percent", 2200, 2096, domain.StatusPerfect},
		{"five percent boundary", 2100, 2000, domain.StatusPerfect},
		{"fifteen percent boundary over", 2300, 2000, domain.StatusSlightlyOver},
		{"fifteen percent boundary under", 1700, 2000, domain.StatusSlightlyUnder},
		{"well over", 2500, 2096, domain.StatusOver},
		{"well under", 1600, 2000, domain.StatusUnder},
		{"zero intake", 0, 2000, domain.StatusUnder},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := wellness.ClassifyIntake(tc.actual, tc.target)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("rejects non-positive target", func(t *testing.T) {
		_, err := wellness.ClassifyIntake(2000, 0)
		assert.Error(t, err)
	})
	t.Run("rejects negative actual", func(t *testing.T) {
		_, err := wellness.ClassifyIntake(-1, 2000)
		assert.Error(t, err)
	})
}

func TestNewEntry(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		entry, err := wellness.NewEntry("2026-08-31", 2100, 2096)
		require.NoError(t, err)
		assert.Equal(t, "2026-08-31", entry.Date)
		assert.Equal(t, 2096, entry.Target)
		assert.Equal(t, 2100, entry.Actual)
		assert.Equal(t, domain.StatusPerfect, entry.Status)
	})
	t.Run("rejects malformed date", func(t *testing.T) {
		_, err := wellness.NewEntry("2026-13-01", 2000, 2000)
		assert.Error(t, err)
		_, err = wellness.NewEntry("31/08/2026", 2000, 2000)
		assert.Error(t, err)
	})
	t.Run("rejects date with time component", func(t *testing.T) {
		_, err := wellness.NewEntry("2026-08-31T10:00:00Z", 2000, 2000)
		assert.Error(t, err)
	})
}

func mustEntry(t *testing.T, date string, actual, target int) domain.DailyEntry {
	t.Helper()
	entry, err := wellness.NewEntry(date, actual, target)
	require.NoError(t, err)
	return entry
}

func TestUpsert(t *testing.T) {
	history := []domain.DailyEntry{
		mustEntry(t, "2026-08-03", 2000, 2000),
		mustEntry(t, "2026-08-01", 2100, 2000),
	}

	t.Run("inserts and sorts", func(t *testing.T) {
		out := wellness.Upsert(history, mustEntry(t, "2026-08-02", 1900, 2000))
		require.Len(t, out, 3)
		assert.Equal(t, "2026-08-01", out[0].Date)
		assert.Equal(t, "2026-08-02", out[1].Date)
		assert.Equal(t, "2026-08-03", out[2].Date)
	})
	t.Run("same date replaces", func(t *testing.T) {
		out := wellness.Upsert(history, mustEntry(t, "2026-08-03", 2500, 2000))
		require.Len(t, out, 2)
		assert.Equal(t, 2500, out[1].Actual)
		assert.Equal(t, domain.StatusOver, out[1].Status)
	})
	t.Run("input is not modified", func(t *testing.T) {
		wellness.Upsert(history, mustEntry(t, "2026-08-05", 2000, 2000))
		assert.Len(t, history, 2)
		assert.Equal(t, "2026-08-03", history[0].Date)
	})
}

func TestOrdering(t *testing.T) {
	history := []domain.DailyEntry{
		mustEntry(t, "2026-08-02", 2000, 2000),
		mustEntry(t, "2026-08-04", 2000, 2000),
		mustEntry(t, "2026-08-01", 2000, 2000),
	}

	asc := wellness.Chronological(history)
	assert.Equal(t, "2026-08-01", asc[0].Date)
	assert.Equal(t, "2026-08-04", asc[2].Date)

	desc := wellness.RecentFirst(history)
	assert.Equal(t, "2026-08-04", desc[0].Date)
	assert.Equal(t, "2026-08-01", desc[2].Date)

	// Originals untouched.
	assert.Equal(t, "2026-08-02", history[0].Date)
}
