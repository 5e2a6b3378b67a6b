package logging

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// Logger wraps a zerolog.Logger so each package can carve out its own
// sub-logger with a stable key. All output is disabled until EnableDebug
// is called (normally from the --verbose flag), so the typewriter output
// stays clean by default.
type Logger struct {
	zl zerolog.Logger
}

var (
	mu   sync.Mutex
	base = zerolog.New(os.Stderr).Level(zerolog.Disabled)
)

// EnableDebug switches the global base logger to a console writer at debug
// level. Sub-loggers created after this call inherit the new level.
func EnableDebug() {
	mu.Lock()
	defer mu.Unlock()
	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	base = zerolog.New(writer).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}

// NewSubLogger returns a Logger tagged with a key-value pair identifying the
// module it belongs to, so debug output is grep-able per package.
func NewSubLogger(key, value string) *Logger {
	mu.Lock()
	defer mu.Unlock()
	return &Logger{zl: base.With().Str(key, value).Logger()}
}

func (l *Logger) Debug(msg string) {
	l.zl.Debug().Msg(msg)
}

func (l *Logger) Debugf(format string, args ...any) {
	l.zl.Debug().Msgf(format, args...)
}

// With returns a copy of the Logger carrying an extra string field, typically
// a per-request correlation id.
func (l *Logger) With(key, value string) *Logger {
	return &Logger{zl: l.zl.With().Str(key, value).Logger()}
}

func (l *Logger) Err(err error) *Logger {
	return &Logger{zl: l.zl.With().Err(err).Logger()}
}
