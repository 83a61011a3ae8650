package logger

// Logger defines the interface for logging operations
// This interface keeps the snapshot and config layers free of any
// concrete logging backend
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}
