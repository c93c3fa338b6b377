package log

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultLevel is used when neither the --log-level flag nor the LOG_LEVEL
// environment variable is set.
const DefaultLevel = zerolog.WarnLevel

// Setup configures the global logger. level comes from the --log-level flag
// and may be empty, in which case the LOG_LEVEL environment variable is
// consulted before falling back to DefaultLevel.
func Setup(level string) error {
	if isatty.IsTerminal(os.Stderr.Fd()) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	lvl := DefaultLevel
	if level != "" {
		parsed, err := zerolog.ParseLevel(level)
		if err != nil {
			return err
		}
		lvl = parsed
	}
	log.Logger = log.Logger.Level(lvl)
	zerolog.DefaultContextLogger = &log.Logger
	return nil
}

// Logger returns the global logger.
func Logger() *zerolog.Logger {
	return &log.Logger
}

// Debug starts a debug-level message. Call Msg on the returned event to
// send it.
func Debug() *zerolog.Event {
	return log.Debug()
}

// Info starts an info-level message.
func Info() *zerolog.Event {
	return log.Info()
}

// Warn starts a warn-level message.
func Warn() *zerolog.Event {
	return log.Warn()
}

// Error starts an error-level message.
func Error() *zerolog.Event {
	return log.Error()
}
