package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/cdot-network/substrate-ibc/config"
)

// Init builds the process logger from the translator configuration.
func Init(cfg config.Config) zerolog.Logger {
	return New(cfg.LogLevel, cfg.LogFormat, cfg.LogSampler)
}

// New returns a logger writing to stdout.
func New(logLevel int, logFormat string, logSampler bool) zerolog.Logger {
	return NewWithWriter(os.Stdout, logLevel, logFormat, logSampler)
}

// NewWithWriter is New writing to w.
func NewWithWriter(w io.Writer, logLevel int, logFormat string, logSampler bool) zerolog.Logger {
	writer := w
	if logFormat != "json" {
		writer = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		}
	}

	logger := zerolog.New(writer).
		Level(zerolog.Level(logLevel)).
		With().
		Timestamp().
		Logger()

	if logSampler {
		logger = logger.Sample(verboseSampler())
	}
	return logger
}

// verboseSampler keeps one in five trace, debug and info lines. Warn and
// above are never dropped.
func verboseSampler() zerolog.Sampler {
	return zerolog.LevelSampler{
		TraceSampler: &zerolog.BasicSampler{N: 5},
		DebugSampler: &zerolog.BasicSampler{N: 5},
		InfoSampler:  &zerolog.BasicSampler{N: 5},
	}
}
