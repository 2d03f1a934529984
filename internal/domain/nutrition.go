package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MealType categorizes a nutrition entry.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// NutritionEntry is one logged food item with its macros.
type NutritionEntry struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID   primitive.ObjectID `bson:"userId" json:"userId"`
	FoodItem string             `bson:"foodItem" json:"foodItem"`
	Calories int                `bson:"calories" json:"calories"`
	Protein  float64            `bson:"protein,omitempty" json:"protein,omitempty"`
	Carbs    float64            `bson:"carbs,omitempty" json:"carbs,omitempty"`
	Fats     float64            `bson:"fats,omitempty" json:"fats,omitempty"`
	MealType MealType           `bson:"mealType,omitempty" json:"mealType,omitempty"`
	Date     time.Time          `bson:"date" json:"date"`
}

// NutritionSummary totals today's intake across all entries.
type NutritionSummary struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}
