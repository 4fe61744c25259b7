package adapters

import (
	"fmt"
	"log/slog"
)

// SlogLoggerAdapter implements LoggerAdapter on top of log/slog.
type SlogLoggerAdapter struct {
	logger *slog.Logger
}

// Ensure SlogLoggerAdapter implements LoggerAdapter interface
var _ LoggerAdapter = (*SlogLoggerAdapter)(nil)

// NewSlogLoggerAdapter creates a logger adapter backed by the given
// *slog.Logger. A nil logger falls back to slog.Default(). Level filtering
// is the slog handler's job.
func NewSlogLoggerAdapter(logger *slog.Logger) *SlogLoggerAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogLoggerAdapter{logger: logger.With("component", "telemetry")}
}

func (s *SlogLoggerAdapter) Debug(message string, args ...any) {
	s.logger.Debug(fmt.Sprintf(message, args...))
}

func (s *SlogLoggerAdapter) Info(message string, args ...any) {
	s.logger.Info(fmt.Sprintf(message, args...))
}

func (s *SlogLoggerAdapter) Warn(message string, args ...any) {
	s.logger.Warn(fmt.Sprintf(message, args...))
}

func (s *SlogLoggerAdapter) Error(message string, args ...any) {
	s.logger.Error(fmt.Sprintf(message, args...))
}
