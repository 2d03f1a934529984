package wellness

import (
	"math"

	"holistic/wellness-app/internal/domain"
)

// activityMultipliers scale BMR into maintenance calories (TDEE).
var activityMultipliers = map[domain.ActivityLevel]float64{
	domain.ActivitySedentary:  1.2,
	domain.ActivityLight:      1.375,
	domain.ActivityModerate:   1.55,
	domain.ActivityActive:     1.725,
	domain.ActivityVeryActive: 1.9,
}

// ActivityDescriptions are the user-facing labels for each level.
var ActivityDescriptions = map[domain.ActivityLevel]string{
	domain.ActivitySedentary:  "Little or no exercise",
	domain.ActivityLight:      "Light exercise 1-3 days/week",
	domain.ActivityModerate:   "Moderate exercise 3-5 days/week",
	domain.ActivityActive:     "Hard exercise 6-7 days/week",
	domain.ActivityVeryActive: "Very hard exercise, physical job",
}

// BMR computes the basal metabolic rate with the Mifflin-St Jeor equation.
// The unrounded value is returned so maintenance calories round once, not
// twice.
func BMR(weightKg, heightCm float64, age int, sex domain.Sex) (float64, error) {
	if weightKg <= 0 {
		return 0, invalid("weight", "must be greater than zero")
	}
	if heightCm <= 0 {
		return 0, invalid("height", "must be greater than zero")
	}
	if age < 1 || age > 120 {
		return 0, invalid("age", "must be between 1 and 120")
	}

	base := 10*weightKg + 6.25*heightCm - 5*float64(age)
	switch sex {
	case domain.SexMale:
		return base + 5, nil
	case domain.SexFemale:
		return base - 161, nil
	default:
		return 0, invalid("sex", "must be male or female")
	}
}

// MaintenanceCalories scales BMR by the activity multiplier and rounds to a
// whole calorie count.
func MaintenanceCalories(bmr float64, level domain.ActivityLevel) (int, error) {
	multiplier, ok := activityMultipliers[level]
	if !ok {
		return 0, invalid("activityLevel", "unknown activity level")
	}
	return int(math.Round(bmr * multiplier)), nil
}
