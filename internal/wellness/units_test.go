package wellness_test

import (
	"math"
	"testing"

	"holistic/wellness-app/internal/domain"
	"holistic/wellness-app/internal/wellness"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeightToCm(t *testing.T) {
	t.Run("cm passes through", func(t *testing.T) {
		cm, err := wellness.HeightToCm(175, domain.HeightUnitCm, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, 175.0, cm)
	})
	t.Run("feet and inches", func(t *testing.T) {
		cm, err := wellness.HeightToCm(0, domain.HeightUnitFtIn, 5, 10)
		require.NoError(t, err)
		assert.InDelta(t, 177.8, cm, 1e-9)
	})
	t.Run("feet only", func(t *testing.T) {
		cm, err := wellness.HeightToCm(0, domain.HeightUnitFtIn, 6, 0)
		require.NoError(t, err)
		assert.InDelta(t, 182.88, cm, 1e-9)
	})
	t.Run("value ignored for ft_in", func(t *testing.T) {
		cm, err := wellness.HeightToCm(12345, domain.HeightUnitFtIn, 5, 0)
		require.NoError(t, err)
		assert.InDelta(t, 152.4, cm, 1e-9)
	})
	t.Run("rejects zero cm", func(t *testing.T) {
		_, err := wellness.HeightToCm(0, domain.HeightUnitCm, 0, 0)
		assert.Error(t, err)
	})
	t.Run("rejects NaN", func(t *testing.T) {
		_, err := wellness.HeightToCm(math.NaN(), domain.HeightUnitCm, 0, 0)
		assert.Error(t, err)
	})
	t.Run("rejects inches out of range", func(t *testing.T) {
		_, err := wellness.HeightToCm(0, domain.HeightUnitFtIn, 5, 12)
		assert.Error(t, err)
		_, err = wellness.HeightToCm(0, domain.HeightUnitFtIn, 5, -1)
		assert.Error(t, err)
	})
	t.Run("rejects zero ft_in height", func(t *testing.T) {
		_, err := wellness.HeightToCm(0, domain.HeightUnitFtIn, 0, 0)
		assert.Error(t, err)
	})
	t.Run("rejects unknown unit", func(t *testing.T) {
		_, err := wellness.HeightToCm(175, domain.HeightUnit("inches"), 0, 0)
		assert.Error(t, err)
	})
}

func TestWeightToKg(t *testing.T) {
	t.Run("kg passes through", func(t *testing.T) {
		kg, err := wellness.WeightToKg(70, domain.WeightUnitKg)
		require.NoError(t, err)
		assert.Equal(t, 70.0, kg)
	})
	t.Run("pounds convert", func(t *testing.T) {
		kg, err := wellness.WeightToKg(150, domain.WeightUnitLb)
		require.NoError(t, err)
		assert.InDelta(t, 68.0388, kg, 1e-9)
	})
	t.Run("rejects zero and negative", func(t *testing.T) {
		_, err := wellness.WeightToKg(0, domain.WeightUnitKg)
		assert.Error(t, err)
		_, err = wellness.WeightToKg(-5, domain.WeightUnitLb)
		assert.Error(t, err)
	})
	t.Run("rejects unknown unit", func(t *testing.T) {
		_, err := wellness.WeightToKg(70, domain.WeightUnit("stone"))
		assert.Error(t, err)
	})
}

func TestCmToFeetInchesRoundTrip(t *testing.T) {
	// Round-tripping through the display pair must land within half an
	// inch of the original height.
	for cm := 120.0; cm <= 220.0; cm += 2.5 {
		feet, inches := wellness.CmToFeetInches(cm)
		back, err := wellness.HeightToCm(0, domain.HeightUnitFtIn, feet, inches)
		require.NoError(t, err)
		assert.InDeltaf(t, cm, back, 1.27, "cm=%v gave %dft %din", cm, feet, inches)
	}
}

func TestKgToLbRoundTrip(t *testing.T) {
	for kg := 40.0; kg <= 150.0; kg += 7.3 {
		lb := wellness.KgToLb(kg)
		back, err := wellness.WeightToKg(lb, domain.WeightUnitLb)
		require.NoError(t, err)
		assert.InDelta(t, kg, back, 1e-9)
	}
}
