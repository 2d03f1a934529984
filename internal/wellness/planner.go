package wellness

import (
	"fmt"
	"math"

	"holistic/wellness-app/internal/domain"
)

// Plan parameters. The plan is a fixed-rate one: half a kilogram per week,
// driven by a 500 kcal daily surplus or deficit.
const (
	maintainBandKg    = 1.0 // |goal - current| below this means maintain
	weeklyRateKg      = 0.5
	calorieAdjustment = 500
)

var categoryMessages = map[domain.BMICategory]string{
	domain.CategoryUnderweight: "You are underweight. Focus on healthy weight gain.",
	domain.CategoryNormal:      "You are at a healthy weight. Keep up the good work!",
	domain.CategoryOverweight:  "You are overweight. Focus on healthy weight loss.",
	domain.CategoryObese:       "You are obese. Consult a healthcare provider for guidance.",
}

// BuildPlan runs the whole calculation pipeline over a profile and returns a
// complete plan snapshot: unit conversion, BMI classification, metabolic
// estimation, then goal planning. It is deterministic and side-effect free;
// identical profiles always produce identical plans.
func BuildPlan(p domain.Profile) (*domain.Plan, error) {
	heightCm, err := HeightToCm(p.HeightValue, p.HeightUnit, p.HeightFeet, p.HeightInches)
	if err != nil {
		return nil, err
	}
	weightKg, err := WeightToKg(p.WeightValue, p.WeightUnit)
	if err != nil {
		return nil, err
	}

	bmi, err := BMI(heightCm, weightKg)
	if err != nil {
		return nil, err
	}
	category := Category(bmi)
	recommendedKg := RecommendedGoalWeightKg(heightCm, category, weightKg)

	bmr, err := BMR(weightKg, heightCm, p.Age, p.Sex)
	if err != nil {
		return nil, err
	}
	maintenance, err := MaintenanceCalories(bmr, p.ActivityLevel)
	if err != nil {
		return nil, err
	}

	goalKg := recommendedKg
	if p.GoalWeightValue != 0 {
		goalKg, err = WeightToKg(p.GoalWeightValue, p.WeightUnit)
		if err != nil {
			return nil, invalid("goalWeight", "must be greater than zero")
		}
	}

	plan := &domain.Plan{
		BMI:                     RoundBMI(bmi),
		Category:                category,
		BMR:                     int(math.Round(bmr)),
		MaintenanceCalories:     maintenance,
		CurrentWeightKg:         weightKg,
		GoalWeightKg:            goalKg,
		RecommendedGoalWeightKg: recommendedKg,
		Message:                 categoryMessages[category],
	}

	diff := goalKg - weightKg
	plan.WeightDifferenceKg = math.Abs(diff)

	switch {
	case math.Abs(diff) < maintainBandKg:
		plan.GoalType = domain.GoalMaintain
		plan.WeeklyChangeKg = 0
		plan.DailyTarget = maintenance
		plan.TimelineWeeks = 0
		plan.Timeline = "Maintain current weight"
	case diff > 0:
		plan.GoalType = domain.GoalGain
		plan.WeeklyChangeKg = weeklyRateKg
		plan.DailyTarget = maintenance + calorieAdjustment
		plan.TimelineWeeks = int(math.Ceil(diff / weeklyRateKg))
		plan.Timeline = fmt.Sprintf("%d weeks to reach %gkg", plan.TimelineWeeks, goalKg)
	default:
		plan.GoalType = domain.GoalLose
		plan.WeeklyChangeKg = -weeklyRateKg
		plan.DailyTarget = maintenance - calorieAdjustment
		plan.TimelineWeeks = int(math.Ceil(math.Abs(diff) / weeklyRateKg))
		plan.Timeline = fmt.Sprintf("%d weeks to reach %gkg", plan.TimelineWeeks, goalKg)
	}

	return plan, nil
}
