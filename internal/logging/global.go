package logging

import "github.com/rs/zerolog"

var defaultLogger = NewFromEnv()

// SetDefault replaces the package-level logger. Called once at startup,
// before any other goroutine touches the logger.
func SetDefault(l zerolog.Logger) {
	defaultLogger = l
}

// Logger returns the package-level logger.
func Logger() zerolog.Logger {
	return defaultLogger
}

// Component returns a child logger tagged with a component name.
func Component(name string) zerolog.Logger {
	return defaultLogger.With().Str("component", name).Logger()
}

func Debug(msg string) { defaultLogger.Debug().Msg(msg) }
func Info(msg string)  { defaultLogger.Info().Msg(msg) }
func Warn(msg string)  { defaultLogger.Warn().Msg(msg) }
func Error(msg string) { defaultLogger.Error().Msg(msg) }
