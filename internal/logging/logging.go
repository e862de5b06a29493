// Package logging configures the process-wide zerolog logger.
// Diagnostic output goes to stderr so it never interleaves with prompts
// or the cleanup summary on stdout.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global logger. Debug mode lowers the level and adds
// caller information; otherwise only warnings and errors are shown.
func Setup(debug bool) {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}

	console := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
	}
	log.Logger = zerolog.New(console).With().Timestamp().Logger()

	if debug {
		log.Logger = log.Logger.With().Caller().Logger()
	}
}

// New returns a logger tagged with a component name.
func New(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}
