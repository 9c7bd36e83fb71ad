package testutil

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// StartLog routes the global logger to t.Log for the duration of a test.
func StartLog(t *testing.T) {
	t.Helper()
	prev := log.Logger
	log.Logger = zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel)
	t.Cleanup(func() { log.Logger = prev })
	log.Debug().Str("test", t.Name()).Msg("start")
}
