package utils

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger configures the global zerolog logger. Format "json" writes one
// JSON object per line, anything else a human readable console output.
func InitLogger(level, format string) {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	var out io.Writer = os.Stdout
	if !strings.EqualFold(format, "json") {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()

	switch strings.ToLower(level) {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "disabled":
		zerolog.SetGlobalLevel(zerolog.Disabled)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func LogDebug(format string, v ...interface{}) {
	log.Debug().Caller(1).Msgf(format, v...)
}

func LogInfo(format string, v ...interface{}) {
	log.Info().Msgf(format, v...)
}

func LogError(format string, v ...interface{}) {
	log.Error().Caller(1).Msgf(format, v...)
}

func LogWarning(format string, v ...interface{}) {
	log.Warn().Caller(1).Msgf(format, v...)
}
