package mylog

import "context"

type Severity string

const (
	SeverityDebug Severity = "DEBUG"
	SeverityInfo  Severity = "INFO"
	SeverityWarn  Severity = "WARN"
	SeverityError Severity = "ERROR"
)

// New creates a logger for the named component. The implementation is chosen
// at init time: structured json when running on gcloud, plain text otherwise.
var New func(name string) Logger

type Logger interface {
	Log(ctx context.Context, traceLabel string, severity Severity, format string, a ...any)
}

// Mask keeps the last 4 characters of an identifier so it can be logged.
func Mask(value string) string {
	const visible = 4
	if len(value) <= visible {
		return "****"
	}
	return "****" + value[len(value)-visible:]
}
