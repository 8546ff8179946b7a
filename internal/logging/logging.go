package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// DefaultFileName is the log destination used until Configure names another.
const DefaultFileName = "tvgrid.log"

var (
	mu           sync.Mutex
	traceEnabled bool
	logPath      = DefaultFileName
)

// Error appends a timestamped error line to the shared log file.
func Error(err error) {
	if err == nil {
		return
	}
	line := fmt.Sprintf("%s ERROR %v\n", time.Now().UTC().Format(time.RFC3339), err)
	if werr := appendToLog([]byte(line)); werr != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", werr)
	}
}

// Errorf formats and logs an error.
func Errorf(format string, args ...interface{}) {
	Error(fmt.Errorf(format, args...))
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// TraceEnabled reports whether Trace writes anything.
func TraceEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return traceEnabled
}

// Trace appends a structured JSON entry to the shared log when tracing is enabled.
func Trace(event string, payload interface{}) {
	if !TraceEnabled() {
		return
	}

	entry := struct {
		Time    time.Time   `json:"time"`
		Event   string      `json:"event"`
		Payload interface{} `json:"payload,omitempty"`
	}{
		Time:    time.Now().UTC(),
		Event:   event,
		Payload: payload,
	}

	data, err := json.Marshal(entry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "trace encoding failed: %v\n", err)
		return
	}
	if err := appendToLog(append(data, '\n')); err != nil {
		fmt.Fprintf(os.Stderr, "trace logging failed: %v\n", err)
	}
}

// Configure sets the log destination. Empty values fall back to the default
// path. Directories are created automatically when missing.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()
	if strings.TrimSpace(path) == "" {
		logPath = DefaultFileName
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		logPath = DefaultFileName
		return
	}
	logPath = path
}

// Path returns the configured log destination.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}

// appendToLog writes data under the lock so concurrent fetch goroutines and
// the UI loop never interleave partial lines.
func appendToLog(data []byte) error {
	mu.Lock()
	defer mu.Unlock()
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.Write(data)
	return err
}
