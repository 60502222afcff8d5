// Package logger настраивает zerolog для всего приложения.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New создает логгер: в development человекочитаемый вывод в консоль,
// в остальных окружениях JSON в stdout.
func New(level, environment string) zerolog.Logger {
	var out io.Writer = os.Stdout
	if environment != "production" {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	return NewWithWriter(out, level)
}

// NewWithWriter нужен тестам, чтобы перехватывать вывод.
func NewWithWriter(out io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Str("service", "picnic-api").Logger()
}
