package service

import (
	"context"
	"errors"
	"time"

	"holistic/wellness-app/internal/domain"
	"holistic/wellness-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrNutritionInvalid = errors.New("nutrition entry validation failed")
)

// nutritionListLimit caps the meal feed returned to the client.
const nutritionListLimit = 50

// --- Service Interface ---
type NutritionService interface {
	Add(ctx context.Context, userID primitive.ObjectID, foodItem string, calories int, protein, carbs, fats float64, mealType domain.MealType) (*domain.NutritionEntry, error)
	List(ctx context.Context, userID primitive.ObjectID) ([]domain.NutritionEntry, error)
	// TodaySummary totals calories and macros logged since local midnight.
	TodaySummary(ctx context.Context, userID primitive.ObjectID) (*domain.NutritionSummary, error)
}

// --- Service Implementation ---

type nutritionService struct {
	nutritionRepo repository.NutritionRepository
	now           func() time.Time
}

// NewNutritionService creates a new instance of nutritionService.
func NewNutritionService(nutritionRepo repository.NutritionRepository) NutritionService {
	return &nutritionService{
		nutritionRepo: nutritionRepo,
		now:           time.Now,
	}
}

func (s *nutritionService) Add(ctx context.Context, userID primitive.ObjectID, foodItem string, calories int, protein, carbs, fats float64, mealType domain.MealType) (*domain.NutritionEntry, error) {
	if foodItem == "" || calories < 0 {
		return nil, ErrNutritionInvalid
	}
	switch mealType {
	case "", domain.MealBreakfast, domain.MealLunch, domain.MealDinner, domain.MealSnack:
	default:
		return nil, ErrNutritionInvalid
	}

	entry := &domain.NutritionEntry{
		UserID:   userID,
		FoodItem: foodItem,
		Calories: calories,
		Protein:  protein,
		Carbs:    carbs,
		Fats:     fats,
		MealType: mealType,
		Date:     s.now().UTC(),
	}
	entryID, err := s.nutritionRepo.Create(ctx, entry)
	if err != nil {
		return nil, err
	}
	entry.ID = entryID
	return entry, nil
}

func (s *nutritionService) List(ctx context.Context, userID primitive.ObjectID) ([]domain.NutritionEntry, error) {
	return s.nutritionRepo.GetByUserID(ctx, userID, nutritionListLimit)
}

func (s *nutritionService) TodaySummary(ctx context.Context, userID primitive.ObjectID) (*domain.NutritionSummary, error) {
	now := s.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	entries, err := s.nutritionRepo.GetSince(ctx, userID, midnight)
	if err != nil {
		return nil, err
	}

	summary := &domain.NutritionSummary{}
	for _, e := range entries {
		summary.Calories += e.Calories
		summary.Protein += e.Protein
		summary.Carbs += e.Carbs
		summary.Fats += e.Fats
	}
	return summary, nil
}
