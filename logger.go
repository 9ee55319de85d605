package ocular

import (
	"fmt"
	"os"
	"sync"
)

// Logger is the write-only diagnostics sink for non-fatal anomalies (for
// example a transform returning a non-iterable result). The core never reads
// from it and specifies no further contract on it.
type Logger interface {
	Warnf(format string, args ...any)
}

type stderrLogger struct{}

func (stderrLogger) Warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "ocular: warn: "+format+"\n", args...)
}

var (
	logMu  sync.RWMutex
	logger Logger = stderrLogger{}
)

// SetLogger injects the diagnostics sink. A nil logger silences diagnostics.
func SetLogger(l Logger) {
	logMu.Lock()
	logger = l
	logMu.Unlock()
}

func warnf(format string, args ...any) {
	logMu.RLock()
	l := logger
	logMu.RUnlock()
	if l != nil {
		l.Warnf(format, args...)
	}
}
