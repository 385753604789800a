package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global zerolog logger from the environment:
// APP_ENV=development switches to the human-readable console writer,
// anything else emits JSON; LOG_LEVEL picks the minimum level.
func Setup() {
	var w io.Writer = os.Stdout
	if strings.EqualFold(os.Getenv("APP_ENV"), "development") {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	log.Logger = zerolog.New(w).
		Level(parseLevel(os.Getenv("LOG_LEVEL"))).
		With().Timestamp().Logger()
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
