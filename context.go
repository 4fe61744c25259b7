package telemetry

import "sync"

// ExperimentContext holds the process-wide default experiment and cohort
// tags applied to events that do not carry their own. It changes rarely
// relative to event production, so reads take a shared lock.
type ExperimentContext struct {
	mu           sync.RWMutex
	experimentID *string
	cohort       *string
}

// NewExperimentContext creates an empty ambient context.
func NewExperimentContext() *ExperimentContext {
	return &ExperimentContext{}
}

// Set replaces the ambient experiment and cohort.
func (c *ExperimentContext) Set(experimentID, cohort string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.experimentID = &experimentID
	c.cohort = &cohort
}

// Clear removes the ambient tags.
func (c *ExperimentContext) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.experimentID = nil
	c.cohort = nil
}

// Current returns the ambient tags; both are nil when unset. The returned
// pointers are never written through, so callers may stamp them onto events
// directly.
func (c *ExperimentContext) Current() (experimentID, cohort *string) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.experimentID, c.cohort
}
