package core

// LogLevel orders log severities; a logger drops entries below its level
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

// Logger is the structured logging port used by the service, the HTTP layer
// and the storage adapters. Fields are flat key/value pairs such as
// "request_id", "file" or "error".
type Logger interface {
	SetLevel(level LogLevel)
	GetLevel() LogLevel

	Debug(message string, fields map[string]any)
	Info(message string, fields map[string]any)
	Warn(message string, fields map[string]any)
	Error(message string, fields map[string]any)

	// Flush writes out buffered entries; called once on shutdown
	Flush() error
}
