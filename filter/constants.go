package filter

// Scenario constants mirrored from the reference demo: a static unknown
// quantity measured N times with fixed Gaussian noise.
const (
	DefaultSteps                = 500
	DefaultMeasurementVariance  = 0.1
	DefaultProcessVariance      = 0.0
	DefaultInitialEstimate      = 0.0
	DefaultInitialErrorEstimate = 1.0
)
