package telemetry

import "math/rand"

// Sampler makes stateless keep/drop decisions for recorded events.
// The zero value is ready to use and safe for concurrent callers.
type Sampler struct{}

// Keep reports whether an event recorded at the given sample rate should be
// retained: a uniform draw in [0,1) is compared against the rate. Rates at
// or above 1 always keep; rates at or below 0 never keep.
func (Sampler) Keep(rate float64) bool {
	if rate >= 1.0 {
		return true
	}
	if rate <= 0 {
		return false
	}
	return rand.Float64() < rate
}
