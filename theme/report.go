package theme

import "log/slog"

// Reporter receives non-fatal diagnostics from the resolution pipeline.
// Implementations must be safe for concurrent use.
type Reporter interface {
	Report(msg string, err error)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(msg string, err error)

func (f ReporterFunc) Report(msg string, err error) { f(msg, err) }

// SlogReporter logs reports at error level with the cause under "error".
// A nil Logger means slog.Default().
type SlogReporter struct {
	Logger *slog.Logger
}

func (r SlogReporter) Report(msg string, err error) {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Error(msg, "error", err, "issues", Issues(err))
}
