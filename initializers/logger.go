package initializers

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const EnvLogLevel = "PAGES_DEPLOY_LOG_LEVEL"

func InitLogger(app string, getenv func(string) string, out io.Writer) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
	}
	logger := zerolog.New(output).Level(LogLevel(getenv)).With().Timestamp().Str("app", app).Logger()
	log.Logger = logger
	return logger
}

// LogLevel honours an explicit level first, then the runner's debug flag.
func LogLevel(getenv func(string) string) zerolog.Level {
	if raw := strings.ToLower(strings.TrimSpace(getenv(EnvLogLevel))); raw != "" {
		if lvl, err := zerolog.ParseLevel(raw); err == nil {
			return lvl
		}
	}
	if getenv("RUNNER_DEBUG") == "1" {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}
