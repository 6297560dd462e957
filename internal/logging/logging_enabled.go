//go:build logging

package logging

import (
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/antoine-trux/regexcrossword-tokenizer/internal/utils"
)

var (
	mu          sync.Mutex
	logger      *log.Logger
	indentLevel int
)

// SetLogFilepath opens path for writing and directs all subsequent Log
// and Logf calls to it, truncating any existing content. Passing an empty
// path detaches the current log file; later calls to Log/Logf are then
// silently dropped, matching the disabled build's no-op behavior. Passing
// "-" routes logging to the process's standard error stream instead of a
// file.
func SetLogFilepath(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if path == "" {
		logger = nil
		return nil
	}

	if path == "-" {
		logger = log.New(os.Stderr, "", 0)
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("opening log file %q: %w", path, err)
	}
	logger = log.New(f, "", 0)
	return nil
}

// IncrementIndentationLevel nests subsequent log lines one level deeper.
func IncrementIndentationLevel() {
	mu.Lock()
	indentLevel++
	mu.Unlock()
}

// DecrementIndentationLevel un-nests subsequent log lines one level.
func DecrementIndentationLevel() {
	mu.Lock()
	if indentLevel > 0 {
		indentLevel--
	}
	mu.Unlock()
}

// Log writes message to the configured log file, one line per '\n'-separated
// line of message, each indented to the current level. It is a no-op if no
// log file has been configured.
func Log(message string) {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		return
	}
	for _, line := range utils.SplitIntoLines(message) {
		logger.Print(indent() + line)
	}
}

// Logf formats a message and writes it as Log does. It is a no-op if no
// log file has been configured.
func Logf(format string, args ...interface{}) {
	Log(fmt.Sprintf(format, args...))
}

func indent() string {
	s := ""
	for i := 0; i < indentLevel; i++ {
		s += "  "
	}
	return s
}
