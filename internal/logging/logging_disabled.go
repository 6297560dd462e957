//go:build !logging

package logging

// SetLogFilepath is a no-op in builds without the "logging" tag. It
// always succeeds.
func SetLogFilepath(path string) error {
	return nil
}

// IncrementIndentationLevel is a no-op in builds without the "logging"
// tag.
func IncrementIndentationLevel() {}

// DecrementIndentationLevel is a no-op in builds without the "logging"
// tag.
func DecrementIndentationLevel() {}

// Log is a no-op in builds without the "logging" tag.
func Log(message string) {}

// Logf is a no-op in builds without the "logging" tag.
func Logf(format string, args ...interface{}) {}
