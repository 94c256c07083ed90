package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

func TestGenerateSignalShape(t *testing.T) {
	truth, z, err := GenerateSignal(500, 0.1, 42)
	require.NoError(t, err)
	require.Len(t, truth, 500)
	require.Len(t, z, 500)
	for k, x := range truth {
		assert.Equal(t, 0.0, x, "truth must be constant zero at step %d", k)
	}
}

func TestGenerateSignalDeterministicSeed(t *testing.T) {
	_, z1, err := GenerateSignal(200, 0.1, 7)
	require.NoError(t, err)
	_, z2, err := GenerateSignal(200, 0.1, 7)
	require.NoError(t, err)
	assert.True(t, floats.Equal(z1, z2), "identical seeds must produce identical measurements")

	_, z3, err := GenerateSignal(200, 0.1, 8)
	require.NoError(t, err)
	assert.False(t, floats.Equal(z1, z3), "different seeds should produce different measurements")
}

func TestGenerateSignalNoiseStatistics(t *testing.T) {
	const variance = 0.1
	_, z, err := GenerateSignal(20000, variance, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, stat.Mean(z, nil), 0.02)
	assert.InDelta(t, variance, stat.Variance(z, nil), 0.02)
}

func TestMeasureArbitraryTruth(t *testing.T) {
	truth := []float64{1, 2, 3, 4}
	z, err := Measure(truth, 0, 5)
	require.NoError(t, err)
	// Zero measurement variance reproduces the truth exactly.
	assert.Equal(t, truth, z)
}

func TestGenerateSignalArgumentValidation(t *testing.T) {
	_, _, err := GenerateSignal(0, 0.1, 1)
	assert.Error(t, err)

	_, _, err = GenerateSignal(-5, 0.1, 1)
	assert.Error(t, err)

	_, _, err = GenerateSignal(10, -0.1, 1)
	assert.Error(t, err)
}
