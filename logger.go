package goparsing

import (
	"io"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

var logger atomic.Pointer[zerolog.Logger]

func init() {
	nop := zerolog.Nop()
	logger.Store(&nop)
}

// Logger returns the logger used for debug events (union candidate
// rejection, discriminator dispatch, lazy resolution, catch recovery).
// It discards everything until SetLogger is called.
func Logger() *zerolog.Logger { return logger.Load() }

// SetLogger installs l as the package logger.
func SetLogger(l zerolog.Logger) { logger.Store(&l) }

// ConsoleLogger builds a human-readable logger writing to w.
func ConsoleLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).With().Timestamp().Logger()
}

// SetLogLevel sets the zerolog global level.
func SetLogLevel(level zerolog.Level) { zerolog.SetGlobalLevel(level) }
