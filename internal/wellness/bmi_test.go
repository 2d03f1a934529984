package wellness_test

import (
	"testing"

	"holistic/wellness-app/internal/domain"
	"holistic/wellness-app/internal/wellness"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBMI(t *testing.T) {
	t.Run("known value", func(t *testing.T) {
		bmi, err := wellness.BMI(175, 70)
		require.NoError(t, err)
		assert.InDelta(t, 22.857, bmi, 0.001)
		assert.Equal(t, 22.9, wellness.RoundBMI(bmi))
	})
	t.Run("rejects non-positive inputs", func(t *testing.T) {
		_, err := wellness.BMI(0, 70)
		assert.Error(t, err)
		_, err = wellness.BMI(175, 0)
		assert.Error(t, err)
	})
	t.Run("monotonic in weight", func(t *testing.T) {
		prev := 0.0
		for kg := 50.0; kg <= 120.0; kg += 5 {
			bmi, err := wellness.BMI(170, kg)
			require.NoError(t, err)
			assert.Greater(t, bmi, prev)
			prev = bmi
		}
	})
}

func TestCategoryBoundaries(t *testing.T) {
	cases := []struct {
		bmi  float64
		want domain.BMICategory
	}{
		{15.0, domain.CategoryUnderweight},
		{18.49, domain.CategoryUnderweight},
		{18.5, domain.CategoryNormal},
		{22.0, domain.CategoryNormal},
		{24.99, domain.CategoryNormal},
		{25.0, domain.CategoryOverweight},
		{29.99, domain.CategoryOverweight},
		{30.0, domain.CategoryObese},
		{45.0, domain.CategoryObese},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, wellness.Category(tc.bmi), "bmi=%v", tc.bmi)
	}
}

func TestRecommendedGoalWeightKg(t *testing.T) {
	t.Run("underweight targets middle of healthy band", func(t *testing.T) {
		// 170 cm: midpoint of 18.5..24.9 BMI is 21.7 -> 62.713 kg -> 63.
		got := wellness.RecommendedGoalWeightKg(170, domain.CategoryUnderweight, 48)
		assert.Equal(t, 63.0, got)
	})
	t.Run("normal keeps current weight", func(t *testing.T) {
		got := wellness.RecommendedGoalWeightKg(170, domain.CategoryNormal, 64.4)
		assert.Equal(t, 64.0, got)
	})
	t.Run("overweight targets BMI 22", func(t *testing.T) {
		// 22 * 1.7^2 = 63.58 -> 64.
		got := wellness.RecommendedGoalWeightKg(170, domain.CategoryOverweight, 80)
		assert.Equal(t, 64.0, got)
	})
	t.Run("obese targets BMI 22", func(t *testing.T) {
		got := wellness.RecommendedGoalWeightKg(170, domain.CategoryObese, 110)
		assert.Equal(t, 64.0, got)
	})
	t.Run("recommendation is a whole kilogram", func(t *testing.T) {
		for cm := 150.0; cm <= 200.0; cm += 3.7 {
			got := wellness.RecommendedGoalWeightKg(cm, domain.CategoryObese, 120)
			assert.Equal(t, float64(int(got)), got)
		}
	})
}
