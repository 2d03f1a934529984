package service

import (
	"context"
	"errors"
	"time"

	"holistic/wellness-app/internal/domain"
	"holistic/wellness-app/internal/repository"
	"holistic/wellness-app/internal/wellness"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	// ErrPlanNotFound means the prerequisite calculation has not happened
	// yet; the caller should complete it first.
	ErrPlanNotFound = errors.New("no weight-management plan found: calculate your plan first")
)

// EntryOrder selects how the daily-entry history is returned.
type EntryOrder int

const (
	// OrderChronological is ascending by date, for timeline computations.
	OrderChronological EntryOrder = iota
	// OrderRecentFirst is descending by date, for display feeds.
	OrderRecentFirst
)

// --- Service Interface ---

// TrackerService orchestrates the BMI / weight-management engine: it loads
// the persisted state, runs the pure calculations in the wellness package,
// and saves the results back. All numeric policy lives in wellness, not here.
type TrackerService interface {
	// Calculate runs the full pipeline over the profile and persists both.
	// The previous plan, if any, is replaced outright.
	Calculate(ctx context.Context, userID primitive.ObjectID, profile domain.Profile) (*domain.Plan, error)
	// Overview returns the whole tracker document; a user who never
	// calculated gets an empty tracker, not an error.
	Overview(ctx context.Context, userID primitive.ObjectID) (*domain.Tracker, error)
	// RecordEntry classifies and stores one calorie observation for a
	// calendar date, replacing any prior entry for that date.
	RecordEntry(ctx context.Context, userID primitive.ObjectID, date string, actualCalories int) (*domain.DailyEntry, error)
	Entries(ctx context.Context, userID primitive.ObjectID, order EntryOrder) ([]domain.DailyEntry, error)
	WeeklyStats(ctx context.Context, userID primitive.ObjectID) (*wellness.WeeklyStats, error)
	MonthlyStats(ctx context.Context, userID primitive.ObjectID) (*wellness.MonthlyStats, error)
	WeeklyProgress(ctx context.Context, userID primitive.ObjectID) ([]wellness.WeekSummary, error)
	// Reset erases the plan and the whole entry history. Irreversible.
	Reset(ctx context.Context, userID primitive.ObjectID) error
}

// --- Service Implementation ---

type trackerService struct {
	trackerRepo repository.TrackerRepository
	now         func() time.Time
}

// NewTrackerService creates a new instance of trackerService.
func NewTrackerService(trackerRepo repository.TrackerRepository) TrackerService {
	return &trackerService{
		trackerRepo: trackerRepo,
		now:         time.Now,
	}
}

func (s *trackerService) Calculate(ctx context.Context, userID primitive.ObjectID, profile domain.Profile) (*domain.Plan, error) {
	plan, err := wellness.BuildPlan(profile)
	if err != nil {
		return nil, err
	}
	// Echo the derived goal direction back onto the stored profile.
	profile.GoalType = plan.GoalType

	if err := s.trackerRepo.SavePlan(ctx, userID, &profile, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *trackerService) Overview(ctx context.Context, userID primitive.ObjectID) (*domain.Tracker, error) {
	tracker, err := s.trackerRepo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &domain.Tracker{UserID: userID, Entries: []domain.DailyEntry{}}, nil
		}
		return nil, err
	}
	tracker.Entries = wellness.RecentFirst(tracker.Entries)
	return tracker, nil
}

func (s *trackerService) RecordEntry(ctx context.Context, userID primitive.ObjectID, date string, actualCalories int) (*domain.DailyEntry, error) {
	tracker, err := s.activeTracker(ctx, userID)
	if err != nil {
		return nil, err
	}

	entry, err := wellness.NewEntry(date, actualCalories, tracker.Plan.DailyTarget)
	if err != nil {
		return nil, err
	}

	if err := s.trackerRepo.UpsertEntry(ctx, userID, entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *trackerService) Entries(ctx context.Context, userID primitive.ObjectID, order EntryOrder) ([]domain.DailyEntry, error) {
	tracker, err := s.trackerRepo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return []domain.DailyEntry{}, nil
		}
		return nil, err
	}
	if order == OrderRecentFirst {
		return wellness.RecentFirst(tracker.Entries), nil
	}
	return wellness.Chronological(tracker.Entries), nil
}

func (s *trackerService) WeeklyStats(ctx context.Context, userID primitive.ObjectID) (*wellness.WeeklyStats, error) {
	tracker, err := s.activeTracker(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats := wellness.ComputeWeeklyStats(tracker.Entries, tracker.Plan)
	return &stats, nil
}

func (s *trackerService) MonthlyStats(ctx context.Context, userID primitive.ObjectID) (*wellness.MonthlyStats, error) {
	tracker, err := s.activeTracker(ctx, userID)
	if err != nil {
		return nil, err
	}
	return wellness.ComputeMonthlyStats(tracker.Entries, s.now()), nil
}

func (s *trackerService) WeeklyProgress(ctx context.Context, userID primitive.ObjectID) ([]wellness.WeekSummary, error) {
	tracker, err := s.activeTracker(ctx, userID)
	if err != nil {
		return nil, err
	}
	return wellness.WeeklySummary(tracker.Entries), nil
}

func (s *trackerService) Reset(ctx context.Context, userID primitive.ObjectID) error {
	return s.trackerRepo.Clear(ctx, userID)
}

// activeTracker loads the tracker and requires an active plan on it.
func (s *trackerService) activeTracker(ctx context.Context, userID primitive.ObjectID) (*domain.Tracker, error) {
	tracker, err := s.trackerRepo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	if tracker.Plan == nil {
		return nil, ErrPlanNotFound
	}
	return tracker, nil
}
