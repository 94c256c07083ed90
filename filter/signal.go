package filter

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Measure corrupts an arbitrary truth sequence with independent Gaussian
// noise of the given variance: z[k] = truth[k] + N(0, measurementVariance).
//
// A non-zero seed makes the output reproducible; seed 0 seeds from the
// clock.
func Measure(truth []float64, measurementVariance float64, seed int64) ([]float64, error) {
	if len(truth) == 0 {
		return nil, fmt.Errorf("truth sequence must not be empty")
	}
	if measurementVariance < 0 {
		return nil, fmt.Errorf("measurement variance must be non-negative, got %v", measurementVariance)
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	noise := distuv.Normal{
		Mu:    0,
		Sigma: math.Sqrt(measurementVariance),
		Src:   rand.NewSource(uint64(seed)),
	}

	measurements := make([]float64, len(truth))
	for k := range truth {
		measurements[k] = truth[k] + noise.Rand()
	}
	return measurements, nil
}

// GenerateSignal produces the demo scenario's ground truth and noisy
// measurements: a constant zero signal (a static unknown quantity)
// observed n times through Measure.
func GenerateSignal(n int, measurementVariance float64, seed int64) (truth, measurements []float64, err error) {
	if n <= 0 {
		return nil, nil, fmt.Errorf("step count must be positive, got %d", n)
	}
	truth = make([]float64, n)
	measurements, err = Measure(truth, measurementVariance, seed)
	if err != nil {
		return nil, nil, err
	}
	return truth, measurements, nil
}
