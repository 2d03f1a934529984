package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HeightUnit selects how the user entered their height.
type HeightUnit string

// WeightUnit selects how the user entered their weight.
type WeightUnit string

const (
	HeightUnitCm   HeightUnit = "cm"
	HeightUnitFtIn HeightUnit = "ft_in"

	WeightUnitKg WeightUnit = "kg"
	WeightUnitLb WeightUnit = "lb"
)

// Sex as used by the Mifflin-St Jeor equation. Only these two values are
// supported by the formula.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// ActivityLevel scales BMR into maintenance calories.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"  // Little or no exercise
	ActivityLight      ActivityLevel = "light"      // Light exercise 1-3 days/week
	ActivityModerate   ActivityLevel = "moderate"   // Moderate exercise 3-5 days/week
	ActivityActive     ActivityLevel = "active"     // Hard exercise 6-7 days/week
	ActivityVeryActive ActivityLevel = "veryActive" // Very hard exercise, physical job
)

// GoalType is the direction of a weight-management plan.
type GoalType string

const (
	GoalGain     GoalType = "gain"
	GoalLose     GoalType = "lose"
	GoalMaintain GoalType = "maintain"
)

// BMICategory buckets a BMI value.
type BMICategory string

const (
	CategoryUnderweight BMICategory = "Underweight"
	CategoryNormal      BMICategory = "Normal"
	CategoryOverweight  BMICategory = "Overweight"
	CategoryObese       BMICategory = "Obese"
)

// EntryStatus classifies a day's intake relative to its calorie target.
type EntryStatus string

const (
	StatusPerfect       EntryStatus = "Perfect"
	StatusSlightlyOver  EntryStatus = "SlightlyOver"
	StatusSlightlyUnder EntryStatus = "SlightlyUnder"
	StatusOver          EntryStatus = "Over"
	StatusUnder         EntryStatus = "Under"
)

// IsOver reports whether the status is on the over-target side.
func (s EntryStatus) IsOver() bool {
	return s == StatusOver || s == StatusSlightlyOver
}

// IsUnder reports whether the status is on the under-target side.
func (s EntryStatus) IsUnder() bool {
	return s == StatusUnder || s == StatusSlightlyUnder
}

// Profile holds the user-entered attributes a plan is calculated from.
// Height and weight are kept in the unit the user typed; conversion to the
// canonical metric representation happens in the wellness package.
type Profile struct {
	HeightValue  float64    `bson:"heightValue" json:"heightValue"`
	HeightUnit   HeightUnit `bson:"heightUnit" json:"heightUnit"`
	HeightFeet   int        `bson:"heightFeet,omitempty" json:"heightFeet,omitempty"`
	HeightInches int        `bson:"heightInches,omitempty" json:"heightInches,omitempty"`

	WeightValue float64    `bson:"weightValue" json:"weightValue"`
	WeightUnit  WeightUnit `bson:"weightUnit" json:"weightUnit"`

	Age           int           `bson:"age" json:"age"`
	Sex           Sex           `bson:"sex" json:"sex"`
	ActivityLevel ActivityLevel `bson:"activityLevel" json:"activityLevel"`

	// GoalWeightValue is optional; zero means "use the recommended goal
	// weight". Same unit as WeightUnit.
	GoalWeightValue float64  `bson:"goalWeightValue,omitempty" json:"goalWeightValue,omitempty"`
	GoalType        GoalType `bson:"goalType,omitempty" json:"goalType,omitempty"`
}

// Plan is the immutable snapshot produced by a recalculation. A new
// calculation fully replaces the previous Plan, it never merges with it.
type Plan struct {
	BMI      float64     `bson:"bmi" json:"bmi"` // rounded to 1 decimal
	Category BMICategory `bson:"category" json:"category"`

	BMR                 int `bson:"bmr" json:"bmr"`
	MaintenanceCalories int `bson:"maintenanceCalories" json:"maintenanceCalories"`
	DailyTarget         int `bson:"dailyTarget" json:"dailyTarget"`

	GoalType                GoalType `bson:"goalType" json:"goalType"`
	CurrentWeightKg         float64  `bson:"currentWeightKg" json:"currentWeightKg"`
	GoalWeightKg            float64  `bson:"goalWeightKg" json:"goalWeightKg"`
	RecommendedGoalWeightKg float64  `bson:"recommendedGoalWeightKg" json:"recommendedGoalWeightKg"`
	WeightDifferenceKg      float64  `bson:"weightDifferenceKg" json:"weightDifferenceKg"` // always >= 0
	WeeklyChangeKg          float64  `bson:"weeklyChangeKg" json:"weeklyChangeKg"`         // signed, 0 when maintaining

	// TimelineWeeks is 0 for a maintain plan; Timeline carries the
	// human-readable description either way.
	TimelineWeeks int    `bson:"timelineWeeks" json:"timelineWeeks"`
	Timeline      string `bson:"timeline" json:"timeline"`
	Message       string `bson:"message" json:"message"`
}

// DailyEntry is one calorie-intake observation. At most one entry exists per
// calendar date; a later submission for the same date replaces it.
type DailyEntry struct {
	Date   string      `bson:"date" json:"date"` // day granularity, time.DateOnly format
	Target int         `bson:"target" json:"target"`
	Actual int         `bson:"actual" json:"actual"`
	Status EntryStatus `bson:"status" json:"status"`
}

// Tracker is the persisted weight-management document, one per user. It owns
// the Profile, the active Plan and the full daily-entry history.
type Tracker struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Profile   *Profile           `bson:"profile,omitempty" json:"profile,omitempty"`
	Plan      *Plan              `bson:"plan,omitempty" json:"plan,omitempty"`
	Entries   []DailyEntry       `bson:"dailyEntries" json:"dailyEntries"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
