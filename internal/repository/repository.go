package repository

import (
	"context"
	"time"

	"holistic/wellness-app/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicate    = RepositoryError("duplicate key")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	List(ctx context.Context) ([]domain.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// AdminRepository is the parallel realm's account store. Admins never share
// a collection with users.
type AdminRepository interface {
	Create(ctx context.Context, admin *domain.Admin) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.Admin, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Admin, error)
	List(ctx context.Context) ([]domain.Admin, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// TrackerRepository persists the per-user weight-management document:
// profile, active plan and daily-entry history. The core never touches
// storage itself; services load through here, compute, and save back.
type TrackerRepository interface {
	Get(ctx context.Context, userID primitive.ObjectID) (*domain.Tracker, error)
	// SavePlan upserts the profile and its freshly calculated plan, replacing
	// any previous plan outright.
	SavePlan(ctx context.Context, userID primitive.ObjectID, profile *domain.Profile, plan *domain.Plan) error
	// UpsertEntry stores a daily entry with last-write-wins semantics keyed
	// by calendar date.
	UpsertEntry(ctx context.Context, userID primitive.ObjectID, entry domain.DailyEntry) error
	// Clear removes the whole document: profile, plan and history.
	Clear(ctx context.Context, userID primitive.ObjectID) error
}

// ActivityRepository defines the interface for fitness activity logs.
type ActivityRepository interface {
	Create(ctx context.Context, activity *domain.Activity) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Activity, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Activity, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// NutritionRepository defines the interface for meal logs.
type NutritionRepository interface {
	Create(ctx context.Context, entry *domain.NutritionEntry) (primitive.ObjectID, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID, limit int64) ([]domain.NutritionEntry, error)
	GetSince(ctx context.Context, userID primitive.ObjectID, since time.Time) ([]domain.NutritionEntry, error)
}

// EmotionTipRepository defines the interface for saved emotion tips.
type EmotionTipRepository interface {
	Create(ctx context.Context, tip *domain.EmotionTip) (primitive.ObjectID, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.EmotionTip, error)
	// Delete removes a tip only when it belongs to the given user.
	Delete(ctx context.Context, id, userID primitive.ObjectID) error
}
