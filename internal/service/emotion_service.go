package service

import (
	"context"
	"errors"

	"holistic/wellness-app/internal/domain"
	"holistic/wellness-app/internal/emotion"
	"holistic/wellness-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrEmotionInputRequired = errors.New("input text is required")
	ErrEmotionDetection     = errors.New("failed to get recommendations from emotion service")
	ErrTipNotFound          = errors.New("tip not found")
)

// --- Service Interface ---
type EmotionService interface {
	// CheckIn sends the user's text to the detector and returns the
	// detected emotion with its tips. Nothing is persisted until the user
	// explicitly saves tips.
	CheckIn(ctx context.Context, input string) (*emotion.Detection, error)
	SaveTips(ctx context.Context, userID primitive.ObjectID, emotionName string, tips []domain.Tip) ([]domain.EmotionTip, error)
	SavedTips(ctx context.Context, userID primitive.ObjectID) ([]domain.EmotionTip, error)
	DeleteTip(ctx context.Context, userID, tipID primitive.ObjectID) error
}

// --- Service Implementation ---

type emotionService struct {
	detector emotion.Detector
	tipRepo  repository.EmotionTipRepository
}

// NewEmotionService creates a new instance of emotionService.
func NewEmotionService(detector emotion.Detector, tipRepo repository.EmotionTipRepository) EmotionService {
	return &emotionService{
		detector: detector,
		tipRepo:  tipRepo,
	}
}

func (s *emotionService) CheckIn(ctx context.Context, input string) (*emotion.Detection, error) {
	if input == "" {
		return nil, ErrEmotionInputRequired
	}
	detection, err := s.detector.Detect(ctx, input)
	if err != nil {
		// The detector's failure detail stays in the cause chain; the
		// caller-facing sentinel keeps the message stable.
		return nil, errors.Join(ErrEmotionDetection, err)
	}
	return detection, nil
}

func (s *emotionService) SaveTips(ctx context.Context, userID primitive.ObjectID, emotionName string, tips []domain.Tip) ([]domain.EmotionTip, error) {
	if emotionName == "" || len(tips) == 0 {
		return nil, errors.New("emotion and tips are required")
	}

	saved := make([]domain.EmotionTip, 0, len(tips))
	for _, t := range tips {
		tip := &domain.EmotionTip{
			UserID:      userID,
			Emotion:     emotionName,
			Title:       t.Title,
			Link:        t.Link,
			Description: t.Description,
		}
		tipID, err := s.tipRepo.Create(ctx, tip)
		if err != nil {
			return nil, err
		}
		tip.ID = tipID
		saved = append(saved, *tip)
	}
	return saved, nil
}

func (s *emotionService) SavedTips(ctx context.Context, userID primitive.ObjectID) ([]domain.EmotionTip, error) {
	return s.tipRepo.GetByUserID(ctx, userID)
}

func (s *emotionService) DeleteTip(ctx context.Context, userID, tipID primitive.ObjectID) error {
	if err := s.tipRepo.Delete(ctx, tipID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTipNotFound
		}
		return err
	}
	return nil
}
