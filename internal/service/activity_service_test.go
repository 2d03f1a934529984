package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"holistic/wellness-app/internal/domain"
	"holistic/wellness-app/internal/repository"
	"holistic/wellness-app/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type activityRepoMock struct {
	state      mockState
	activities map[primitive.ObjectID]*domain.Activity
}

func newActivityRepoMock() *activityRepoMock {
	return &activityRepoMock{activities: make(map[primitive.ObjectID]*domain.Activity)}
}

func (m *activityRepoMock) Create(ctx context.Context, activity *domain.Activity) (primitive.ObjectID, error) {
	if m.state == stateDBError {
		return primitive.NilObjectID, errors.New("db error")
	}
	id := primitive.NewObjectID()
	stored := *activity
	stored.ID = id
	m.activities[id] = &stored
	return id, nil
}

func (m *activityRepoMock) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Activity, error) {
	if m.state == stateDBError {
		return nil, errors.New("db error")
	}
	a, ok := m.activities[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *a
	return &out, nil
}

func (m *activityRepoMock) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Activity, error) {
	if m.state == stateDBError {
		return nil, errors.New("db error")
	}
	out := []domain.Activity{}
	for _, a := range m.activities {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *activityRepoMock) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.state == stateDBError {
		return errors.New("db error")
	}
	if _, ok := m.activities[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.activities, id)
	return nil
}

func newActivityFixture() (*activityRepoMock, *userRepoMock, *mailerMock, service.ActivityService) {
	activityRepo := newActivityRepoMock()
	userRepo := newUserRepoMock()
	mailer := &mailerMock{}
	return activityRepo, userRepo, mailer, service.NewActivityService(activityRepo, userRepo, mailer)
}

func TestActivityAdd(t *testing.T) {
	_, userRepo, mailer, s := newActivityFixture()
	ctx := context.Background()

	userID, err := userRepo.Create(ctx, &domain.User{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)

	t.Run("success sends a notification", func(t *testing.T) {
		activity, err := s.Add(ctx, userID, "Morning run", 30, 280, time.Now())
		require.NoError(t, err)
		assert.False(t, activity.ID.IsZero())
		assert.Equal(t, "Morning run", activity.ActivityType)

		require.Len(t, mailer.sent, 1)
		assert.Equal(t, "alice@example.com", mailer.sent[0].To)
		assert.Contains(t, mailer.sent[0].Body, "Morning run")
	})
	t.Run("mail failure does not fail the request", func(t *testing.T) {
		mailer.state = stateDBError
		_, err := s.Add(ctx, userID, "Swim", 45, 400, time.Now())
		assert.NoError(t, err)
		mailer.state = stateSuccess
	})
	t.Run("rejects empty type", func(t *testing.T) {
		_, err := s.Add(ctx, userID, "", 30, 280, time.Now())
		assert.ErrorIs(t, err, service.ErrActivityInvalid)
	})
	t.Run("rejects negative values", func(t *testing.T) {
		_, err := s.Add(ctx, userID, "Run", -1, 280, time.Now())
		assert.ErrorIs(t, err, service.ErrActivityInvalid)
		_, err = s.Add(ctx, userID, "Run", 30, -1, time.Now())
		assert.ErrorIs(t, err, service.ErrActivityInvalid)
	})
}

func TestActivityDelete(t *testing.T) {
	_, userRepo, _, s := newActivityFixture()
	ctx := context.Background()

	userID, err := userRepo.Create(ctx, &domain.User{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)
	activity, err := s.Add(ctx, userID, "Morning run", 30, 280, time.Now())
	require.NoError(t, err)

	t.Run("wrong owner", func(t *testing.T) {
		err := s.Delete(ctx, primitive.NewObjectID(), activity.ID)
		assert.ErrorIs(t, err, service.ErrActivityAccessDenied)
	})
	t.Run("success", func(t *testing.T) {
		assert.NoError(t, s.Delete(ctx, userID, activity.ID))
	})
	t.Run("already gone", func(t *testing.T) {
		err := s.Delete(ctx, userID, activity.ID)
		assert.ErrorIs(t, err, service.ErrActivityNotFound)
	})
}

func TestActivityList(t *testing.T) {
	_, userRepo, _, s := newActivityFixture()
	ctx := context.Background()

	userID, err := userRepo.Create(ctx, &domain.User{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)
	_, err = s.Add(ctx, userID, "Run", 30, 280, time.Now())
	require.NoError(t, err)
	_, err = s.Add(ctx, userID, "Swim", 45, 400, time.Now())
	require.NoError(t, err)

	activities, err := s.List(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, activities, 2)

	other, err := s.List(ctx, primitive.NewObjectID())
	require.NoError(t, err)
	assert.Empty(t, other)
}
