package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"holistic/wellness-app/internal/domain"
	"holistic/wellness-app/internal/mail"
	"holistic/wellness-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrActivityNotFound     = errors.New("activity not found")
	ErrActivityAccessDenied = errors.New("access denied: activity belongs to another user")
	ErrActivityInvalid      = errors.New("activity validation failed")
)

// --- Service Interface ---
type ActivityService interface {
	List(ctx context.Context, userID primitive.ObjectID) ([]domain.Activity, error)
	Add(ctx context.Context, userID primitive.ObjectID, activityType string, durationMinutes, caloriesBurned int, date time.Time) (*domain.Activity, error)
	Delete(ctx context.Context, userID, activityID primitive.ObjectID) error
}

// --- Service Implementation ---

type activityService struct {
	activityRepo repository.ActivityRepository
	userRepo     repository.UserRepository
	mailer       mail.Mailer
}

// NewActivityService creates a new instance of activityService.
func NewActivityService(activityRepo repository.ActivityRepository, userRepo repository.UserRepository, mailer mail.Mailer) ActivityService {
	return &activityService{
		activityRepo: activityRepo,
		userRepo:     userRepo,
		mailer:       mailer,
	}
}

// List returns the user's activities, most recent first.
func (s *activityService) List(ctx context.Context, userID primitive.ObjectID) ([]domain.Activity, error) {
	return s.activityRepo.GetByUserID(ctx, userID)
}

// Add logs a new activity and notifies the user by mail. Mail failure never
// fails the request; the activity is already saved.
func (s *activityService) Add(ctx context.Context, userID primitive.ObjectID, activityType string, durationMinutes, caloriesBurned int, date time.Time) (*domain.Activity, error) {
	if activityType == "" {
		return nil, ErrActivityInvalid
	}
	if durationMinutes < 0 || caloriesBurned < 0 {
		return nil, ErrActivityInvalid
	}

	activity := &domain.Activity{
		UserID:          userID,
		ActivityType:    activityType,
		DurationMinutes: durationMinutes,
		CaloriesBurned:  caloriesBurned,
		Date:            date,
	}
	activityID, err := s.activityRepo.Create(ctx, activity)
	if err != nil {
		return nil, err
	}
	activity.ID = activityID

	s.notify(ctx, userID, "New Activity Plan Added",
		fmt.Sprintf("You have successfully added a new activity plan: %q. Keep up the great work!", activityType))

	return activity, nil
}

// Delete removes an activity after checking ownership and notifies the user.
func (s *activityService) Delete(ctx context.Context, userID, activityID primitive.ObjectID) error {
	activity, err := s.activityRepo.GetByID(ctx, activityID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrActivityNotFound
		}
		return err
	}
	if activity.UserID != userID {
		return ErrActivityAccessDenied
	}

	if err := s.activityRepo.Delete(ctx, activityID); err != nil {
		return err
	}

	s.notify(ctx, userID, "Activity Plan Deleted",
		fmt.Sprintf("Your activity plan %q has been successfully deleted.", activity.ActivityType))

	return nil
}

func (s *activityService) notify(ctx context.Context, userID primitive.ObjectID, subject, body string) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil || user.Email == "" {
		return
	}
	msg := mail.Message{
		To:      user.Email,
		Subject: subject,
		Body:    fmt.Sprintf("Hi %s!\n\n%s", user.Name, body),
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		log.Printf("WARN: activity notification mail to %s failed: %v", user.Email, err)
	}
}
