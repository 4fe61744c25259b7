package adapters

// NoopLoggerAdapter implements LoggerAdapter with no output
type NoopLoggerAdapter struct{}

// NewNoopLoggerAdapter creates a new noop logger
func NewNoopLoggerAdapter() *NoopLoggerAdapter {
	return &NoopLoggerAdapter{}
}

func (n *NoopLoggerAdapter) Debug(message string, args ...any) {}
func (n *NoopLoggerAdapter) Info(message string, args ...any)  {}
func (n *NoopLoggerAdapter) Warn(message string, args ...any)  {}
func (n *NoopLoggerAdapter) Error(message string, args ...any) {}
