package wellness

import (
	"math"

	"holistic/wellness-app/internal/domain"
)

// Conversion factors. Metric (cm, kg) is the canonical internal
// representation; imperial values only exist at the edges.
const (
	cmPerFoot = 30.48
	cmPerInch = 2.54
	kgPerLb   = 0.453592
)

// HeightToCm converts a user-entered height to centimeters. For
// domain.HeightUnitFtIn the feet/inches pair is used and value is ignored;
// for domain.HeightUnitCm the value passes through unchanged.
func HeightToCm(value float64, unit domain.HeightUnit, feet, inches int) (float64, error) {
	switch unit {
	case domain.HeightUnitCm:
		if !isFinite(value) {
			return 0, invalid("height", "must be a number")
		}
		if value <= 0 {
			return 0, invalid("height", "must be greater than zero")
		}
		return value, nil
	case domain.HeightUnitFtIn:
		if feet < 0 {
			return 0, invalid("heightFeet", "must not be negative")
		}
		if inches < 0 || inches > 11 {
			return 0, invalid("heightInches", "must be between 0 and 11")
		}
		cm := float64(feet)*cmPerFoot + float64(inches)*cmPerInch
		if cm <= 0 {
			return 0, invalid("height", "must be greater than zero")
		}
		return cm, nil
	default:
		return 0, invalid("heightUnit", "must be cm or ft_in")
	}
}

// WeightToKg converts a user-entered weight to kilograms.
func WeightToKg(value float64, unit domain.WeightUnit) (float64, error) {
	if !isFinite(value) {
		return 0, invalid("weight", "must be a number")
	}
	if value <= 0 {
		return 0, invalid("weight", "must be greater than zero")
	}
	switch unit {
	case domain.WeightUnitKg:
		return value, nil
	case domain.WeightUnitLb:
		return value * kgPerLb, nil
	default:
		return 0, invalid("weightUnit", "must be kg or lb")
	}
}

// CmToFeetInches converts centimeters to the nearest whole feet/inches pair
// for display. The round trip back through HeightToCm lands within half an
// inch (1.27 cm) of the original.
func CmToFeetInches(cm float64) (feet, inches int) {
	totalInches := int(math.Round(cm / cmPerInch))
	return totalInches / 12, totalInches % 12
}

// KgToLb converts kilograms to pounds for display.
func KgToLb(kg float64) float64 {
	return kg / kgPerLb
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
