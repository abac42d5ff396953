package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog.Logger with the fields mapkit attaches to request
// diagnostics.
type Logger struct {
	logger zerolog.Logger
}

// New creates a logger from config, writing to the configured output.
func New(cfg *Config) *Logger {
	c := *cfg
	c.ApplyDefaults()

	level, err := zerolog.ParseLevel(c.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	out := outputWriter(c.Output)
	var zl zerolog.Logger
	if strings.ToLower(c.Format) == "console" {
		zl = zerolog.New(zerolog.ConsoleWriter{Out: out, NoColor: c.NoColor})
	} else {
		zl = zerolog.New(out)
	}
	zl = zl.Level(level)
	if c.Timestamp {
		zl = zl.With().Timestamp().Logger()
	}

	return &Logger{logger: zl}
}

// NewDefault creates a JSON logger at info level on stderr.
func NewDefault() *Logger {
	return New(&Config{})
}

// Nop creates a logger that discards everything. Used when the embedding
// application supplies no logger of its own.
func Nop() *Logger {
	return &Logger{logger: zerolog.Nop()}
}

// FromZerolog wraps an existing zerolog.Logger, letting embedding
// applications route mapkit diagnostics into their own sink.
func FromZerolog(zl zerolog.Logger) *Logger {
	return &Logger{logger: zl}
}

// GetLogger returns the underlying zerolog.Logger.
func (l *Logger) GetLogger() zerolog.Logger {
	return l.logger
}

// WithComponent returns a logger tagged with a component name.
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{logger: l.logger.With().Str(FieldComponent, name).Logger()}
}

// WithService returns a logger tagged with the remote service name.
func (l *Logger) WithService(service string) *Logger {
	return &Logger{logger: l.logger.With().Str(FieldService, service).Logger()}
}

// WithRequestID returns a logger tagged with a request id.
func (l *Logger) WithRequestID(id string) *Logger {
	return &Logger{logger: l.logger.With().Str(FieldRequestID, id).Logger()}
}

// WithError returns a logger with an error field.
func (l *Logger) WithError(err error) *Logger {
	return &Logger{logger: l.logger.With().Err(err).Logger()}
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, fields ...map[string]interface{}) {
	event := l.logger.Debug()
	addFields(event, fields...)
	event.Msg(msg)
}

// Info logs an info message.
func (l *Logger) Info(msg string, fields ...map[string]interface{}) {
	event := l.logger.Info()
	addFields(event, fields...)
	event.Msg(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, fields ...map[string]interface{}) {
	event := l.logger.Warn()
	addFields(event, fields...)
	event.Msg(msg)
}

// Error logs an error message.
func (l *Logger) Error(msg string, fields ...map[string]interface{}) {
	event := l.logger.Error()
	addFields(event, fields...)
	event.Msg(msg)
}

func addFields(event *zerolog.Event, fields ...map[string]interface{}) {
	for _, fm := range fields {
		for k, v := range fm {
			event.Interface(k, v)
		}
	}
}

func outputWriter(output string) io.Writer {
	switch strings.ToLower(output) {
	case "stdout":
		return os.Stdout
	default:
		return os.Stderr
	}
}
