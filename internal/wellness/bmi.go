package wellness

import (
	"math"

	"holistic/wellness-app/internal/domain"
)

// BMI computes the unrounded body mass index from canonical metric inputs.
// Display rounding is a separate concern; downstream arithmetic always uses
// the unrounded value.
func BMI(heightCm, weightKg float64) (float64, error) {
	if heightCm <= 0 {
		return 0, invalid("height", "must be greater than zero")
	}
	if weightKg <= 0 {
		return 0, invalid("weight", "must be greater than zero")
	}
	heightM := heightCm / 100
	return weightKg / (heightM * heightM), nil
}

// RoundBMI rounds a BMI value to one decimal place for display.
func RoundBMI(bmi float64) float64 {
	return math.Round(bmi*10) / 10
}

// Category maps a BMI value to its bucket. Boundaries are closed-open:
// 18.5 is Normal, 25.0 is Overweight, 30.0 is Obese.
func Category(bmi float64) domain.BMICategory {
	switch {
	case bmi < 18.5:
		return domain.CategoryUnderweight
	case bmi < 25:
		return domain.CategoryNormal
	case bmi < 30:
		return domain.CategoryOverweight
	default:
		return domain.CategoryObese
	}
}

// RecommendedGoalWeightKg suggests a goal weight for the category, rounded
// to the nearest whole kilogram. Underweight users are pointed at the middle
// of the healthy BMI band, overweight and obese users at BMI 22, and users
// already in the Normal band keep their current weight.
func RecommendedGoalWeightKg(heightCm float64, category domain.BMICategory, currentWeightKg float64) float64 {
	heightM := heightCm / 100
	switch category {
	case domain.CategoryUnderweight:
		minHealthy := 18.5 * heightM * heightM
		maxHealthy := 24.9 * heightM * heightM
		return math.Round((minHealthy + maxHealthy) / 2)
	case domain.CategoryNormal:
		return math.Round(currentWeightKg)
	default:
		return math.Round(22 * heightM * heightM)
	}
}
