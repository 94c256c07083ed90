package filter

import (
	"fmt"
	"math"
)

// Params holds everything a simulation run needs. The zero value is not
// useful; start from DefaultParams.
type Params struct {
	Steps                int
	ProcessVariance      float64
	MeasurementVariance  float64
	InitialEstimate      float64
	InitialErrorEstimate float64
	Seed                 int64
}

// DefaultParams returns the reference scenario: 500 steps of a constant
// zero signal under 0.1 measurement variance, filtered from an
// uninformative prior.
func DefaultParams() Params {
	return Params{
		Steps:                DefaultSteps,
		ProcessVariance:      DefaultProcessVariance,
		MeasurementVariance:  DefaultMeasurementVariance,
		InitialEstimate:      DefaultInitialEstimate,
		InitialErrorEstimate: DefaultInitialErrorEstimate,
	}
}

// Result carries the four equal-length sequences a finished run hands to
// its consumers (plot, CSV, websocket). It is written once by Run and
// read-only afterwards.
type Result struct {
	Truth          []float64
	Measurements   []float64
	Estimates      []float64
	ErrorEstimates []float64
}

// Len returns the number of time steps in the run.
func (r *Result) Len() int {
	return len(r.Truth)
}

// Sigma returns the per-step standard deviation of the estimate,
// sqrt(P[k]), used for confidence-band rendering.
func (r *Result) Sigma() []float64 {
	sigma := make([]float64, len(r.ErrorEstimates))
	for k, p := range r.ErrorEstimates {
		sigma[k] = math.Sqrt(p)
	}
	return sigma
}

// Run executes the full pipeline: generate the signal and measurements,
// then run the scalar Kalman recursion over them.
func Run(p Params) (*Result, error) {
	truth, z, err := GenerateSignal(p.Steps, p.MeasurementVariance, p.Seed)
	if err != nil {
		return nil, fmt.Errorf("generate signal: %w", err)
	}
	estimates, errorEstimates, err := Filter(z, p.ProcessVariance, p.MeasurementVariance, p.InitialEstimate, p.InitialErrorEstimate)
	if err != nil {
		return nil, fmt.Errorf("run filter: %w", err)
	}
	return &Result{
		Truth:          truth,
		Measurements:   z,
		Estimates:      estimates,
		ErrorEstimates: errorEstimates,
	}, nil
}
