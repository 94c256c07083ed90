package filter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterGoldenValues(t *testing.T) {
	// Worked example: z = [0, 1, -1, 0.5], Q=0, R=0.1, x0=0, P0=1.
	// Exact fractions: K1=10/11, x1=10/11, P1=1/11;
	// K2=10/21, x2=0, P2=1/21.
	z := []float64{0.0, 1.0, -1.0, 0.5}
	estimates, errorEstimates, err := Filter(z, 0, 0.1, 0, 1.0)
	require.NoError(t, err)
	require.Len(t, estimates, 4)
	require.Len(t, errorEstimates, 4)

	assert.Equal(t, 0.0, estimates[0])
	assert.Equal(t, 1.0, errorEstimates[0])

	assert.InDelta(t, 10.0/11.0, estimates[1], 1e-12)
	assert.InDelta(t, 1.0/11.0, errorEstimates[1], 1e-12)

	assert.InDelta(t, 0.0, estimates[2], 1e-12)
	assert.InDelta(t, 1.0/21.0, errorEstimates[2], 1e-12)
}

func TestFilterStepperMatchesBatch(t *testing.T) {
	z := []float64{0.3, -0.2, 0.05, 0.7, -0.4, 0.1}
	estimates, errorEstimates, err := Filter(z, 0.01, 0.1, 0, 1.0)
	require.NoError(t, err)

	kf, err := NewScalarKF(0, 1.0, 0.01, 0.1)
	require.NoError(t, err)
	for k := 1; k < len(z); k++ {
		kf.Predict()
		kf.Update(z[k])
		xhat, p := kf.State()
		assert.Equal(t, estimates[k], xhat, "step %d", k)
		assert.Equal(t, errorEstimates[k], p, "step %d", k)
	}
}

func TestFilterGainBounds(t *testing.T) {
	z := make([]float64, 200)
	for k := range z {
		z[k] = math.Sin(float64(k) * 0.3)
	}
	kf, err := NewScalarKF(0, 1.0, 0.05, 0.2)
	require.NoError(t, err)
	for k := 1; k < len(z); k++ {
		kf.Predict()
		kf.Update(z[k])
		gain := kf.Gain()
		assert.GreaterOrEqual(t, gain, 0.0, "step %d", k)
		assert.LessOrEqual(t, gain, 1.0, "step %d", k)
		_, p := kf.State()
		assert.GreaterOrEqual(t, p, 0.0, "step %d", k)
	}
}

func TestFilterMonotonicConvergence(t *testing.T) {
	// With zero process noise and a constant signal the error estimate
	// shrinks at every step and heads toward zero.
	const n = 5000
	z := make([]float64, n)
	_, errorEstimates, err := Filter(z, 0, 0.1, 0, 1.0)
	require.NoError(t, err)

	for k := 1; k < n; k++ {
		assert.LessOrEqual(t, errorEstimates[k], errorEstimates[k-1], "step %d", k)
	}
	assert.Less(t, errorEstimates[n-1], errorEstimates[10])
	assert.Less(t, errorEstimates[n-1], 1e-3)
}

func TestFilterNearZeroMeasurementNoise(t *testing.T) {
	// Exact measurements of the constant under vanishing measurement
	// noise: the estimate locks onto the constant after one update.
	const truth = 3.5
	z := []float64{0, truth, truth, truth}
	estimates, _, err := Filter(z, 0, 1e-12, 0, 1.0)
	require.NoError(t, err)
	assert.InDelta(t, truth, estimates[1], 1e-9)
	assert.InDelta(t, truth, estimates[len(z)-1], 1e-9)
}

func TestFilterArgumentValidation(t *testing.T) {
	z := []float64{0, 1}

	_, _, err := Filter(nil, 0, 0.1, 0, 1.0)
	assert.Error(t, err)

	_, _, err = Filter(z, -0.1, 0.1, 0, 1.0)
	assert.Error(t, err)

	_, _, err = Filter(z, 0, -0.1, 0, 1.0)
	assert.Error(t, err)

	_, _, err = Filter(z, 0, 0.1, 0, -1.0)
	assert.Error(t, err)

	// Both variances zero leaves the gain 0/0; rejected up front.
	_, _, err = Filter(z, 0, 0, 0, 1.0)
	assert.Error(t, err)
}
