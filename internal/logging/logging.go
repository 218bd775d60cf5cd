// Package logging owns the playground's log file. Errors are written as
// timestamped lines and, when tracing is on, lifecycle events as JSON lines.
// The file is opened once, on first write after Configure, and kept open
// until Close or the next Configure.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const defaultLogFile = "aria-primitives.log"

var (
	mu           sync.Mutex
	traceEnabled bool
	logPath      = defaultLogFile
	out          io.WriteCloser
	openFailed   bool
	errLog       *log.Logger
	traceEnc     *json.Encoder
)

// Configure points the log at path, closing any file opened for an earlier
// path. Empty values fall back to aria-primitives.log in the working
// directory. Missing directories are created.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	path = strings.TrimSpace(path)
	if path == "" {
		logPath = defaultLogFile
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		logPath = defaultLogFile
		return
	}
	logPath = path
}

// Close releases the log file. A later write reopens it.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
}

func closeLocked() {
	if out != nil {
		out.Close()
	}
	out, errLog, traceEnc = nil, nil, nil
	openFailed = false
}

// writerLocked opens the log file on first use. A failed open is reported
// once and not retried until the next Configure.
func writerLocked() bool {
	if out != nil {
		return true
	}
	if openFailed {
		return false
	}
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
		openFailed = true
		return false
	}
	out = f
	errLog = log.New(f, "", log.LstdFlags)
	traceEnc = json.NewEncoder(f)
	return true
}

// Error appends err to the log file. Nil errors are ignored.
func Error(err error) {
	if err == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	if !writerLocked() {
		return
	}
	errLog.Println(err)
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

type traceEntry struct {
	Time    time.Time   `json:"time"`
	Event   string      `json:"event"`
	Payload interface{} `json:"payload,omitempty"`
}

// Trace appends one JSON line for event when tracing is enabled.
func Trace(event string, payload interface{}) {
	mu.Lock()
	defer mu.Unlock()
	if !traceEnabled || !writerLocked() {
		return
	}
	entry := traceEntry{Time: time.Now().UTC(), Event: event, Payload: payload}
	if err := traceEnc.Encode(entry); err != nil {
		fmt.Fprintf(os.Stderr, "trace encoding failed: %v\n", err)
	}
}
