package logger

import (
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/hariyalifarms/hariyali-backend-go/config"
)

var (
	l    zerolog.Logger
	once sync.Once
)

// Get returns the process-wide logger. Console output when LOG_FORMAT=console,
// JSON otherwise.
func Get() *zerolog.Logger {
	once.Do(func() {
		zerolog.TimeFieldFormat = time.RFC3339

		if config.GetEnv("LOG_FORMAT", "json") == "console" {
			w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
			l = zerolog.New(w).With().Timestamp().Str("service", "hariyali-backend").Logger()
		} else {
			l = zerolog.New(os.Stderr).With().Timestamp().Str("service", "hariyali-backend").Logger()
		}
	})
	return &l
}
