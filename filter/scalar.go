// Package filter implements a scalar discrete Kalman filter for a
// static signal observed through Gaussian noise, together with the
// signal/measurement generator feeding it.
package filter

import (
	"fmt"
)

// ScalarKF is a one-dimensional Kalman filter over a static hidden state.
// The state-transition is identity with no control input, so the predict
// step only inflates the error variance by the process noise. The entire
// state carried between steps is the (estimate, error variance) pair.
type ScalarKF struct {
	xhat float64 // current state estimate
	p    float64 // current error-estimate variance
	q    float64 // process-noise variance
	r    float64 // measurement-noise variance
	gain float64 // gain used by the most recent Update
}

// NewScalarKF initializes a scalar Kalman filter.
// x0: prior mean of the state.
// p0: prior variance (e.g. 1.0 for an uninformative prior).
// processVariance: variance of the process noise (0 for a constant state).
// measurementVariance: variance of the observation noise.
// Both variances zero is rejected: the gain would be 0/0 at every step.
func NewScalarKF(x0, p0, processVariance, measurementVariance float64) (*ScalarKF, error) {
	if p0 < 0 {
		return nil, fmt.Errorf("initial error estimate must be non-negative, got %v", p0)
	}
	if processVariance < 0 {
		return nil, fmt.Errorf("process variance must be non-negative, got %v", processVariance)
	}
	if measurementVariance < 0 {
		return nil, fmt.Errorf("measurement variance must be non-negative, got %v", measurementVariance)
	}
	if processVariance == 0 && measurementVariance == 0 {
		return nil, fmt.Errorf("process and measurement variance cannot both be zero: gain is undefined")
	}
	return &ScalarKF{
		xhat: x0,
		p:    p0,
		q:    processVariance,
		r:    measurementVariance,
	}, nil
}

// Predict advances the filter one step: the state estimate is unchanged
// (identity transition, no control) and uncertainty grows, P = P + Q.
func (kf *ScalarKF) Predict() {
	kf.p += kf.q
}

// Update folds measurement z into the a priori state left by Predict.
// The gain blends prior estimate and measurement: K=1 is full trust in
// the measurement, K=0 full trust in the prior.
func (kf *ScalarKF) Update(z float64) {
	k := kf.p / (kf.p + kf.r)
	kf.xhat += k * (z - kf.xhat)
	kf.p = (1 - k) * kf.p
	kf.gain = k
}

// State returns the current estimate and its error variance.
func (kf *ScalarKF) State() (xhat, p float64) {
	return kf.xhat, kf.p
}

// Gain returns the Kalman gain applied by the most recent Update.
func (kf *ScalarKF) Gain() float64 {
	return kf.gain
}

// Filter runs the full predict/update recursion over a measurement
// sequence and returns the estimate and error-estimate sequences, both
// the same length as z. Index 0 holds the initial condition (x0, p0);
// measurements z[1:] are folded in one step at a time. The recursion is
// deterministic for a given z.
func Filter(z []float64, processVariance, measurementVariance, x0, p0 float64) (estimates, errorEstimates []float64, err error) {
	if len(z) == 0 {
		return nil, nil, fmt.Errorf("measurement sequence must not be empty")
	}
	kf, err := NewScalarKF(x0, p0, processVariance, measurementVariance)
	if err != nil {
		return nil, nil, err
	}

	estimates = make([]float64, len(z))
	errorEstimates = make([]float64, len(z))
	estimates[0] = x0
	errorEstimates[0] = p0

	for k := 1; k < len(z); k++ {
		kf.Predict()
		kf.Update(z[k])
		estimates[k], errorEstimates[k] = kf.State()
	}
	return estimates, errorEstimates, nil
}
