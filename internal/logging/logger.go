package logging

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/rs/zerolog"
)

// Field is a structured logging key/value pair.
type Field struct {
	Key   string
	Value any
}

// String creates a field with a string value.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int creates a field with an int value.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Int64 creates a field with an int64 value.
func Int64(key string, value int64) Field { return Field{Key: key, Value: value} }

// Uint64 creates a field with a uint64 value.
func Uint64(key string, value uint64) Field { return Field{Key: key, Value: value} }

// Float64 creates a field with a float64 value.
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }

// Err creates a field carrying an error under the key "error".
func Err(err error) Field { return Field{Key: "error", Value: err} }

// Logger is the logging abstraction used throughout the application.
// Printf and Println exist so the Logger can stand in for a *log.Logger
// where third-party code expects one.
type Logger interface {
	Info(msg string, fields ...Field)
	Error(msg string, err error, fields ...Field)
	Debug(msg string, fields ...Field)
	Printf(format string, v ...any)
	Println(v ...any)
}

// ZerologAdapter implements Logger on top of a zerolog.Logger.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter wraps an existing zerolog.Logger.
func NewZerologAdapter(logger zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: logger}
}

// NewLogger creates a ZerologAdapter writing JSON lines to w, tagged with a
// component field.
func NewLogger(w io.Writer, component string) *ZerologAdapter {
	logger := zerolog.New(w).With().Timestamp().Str("component", component).Logger()
	return &ZerologAdapter{logger: logger}
}

// NewDefaultLogger creates a ZerologAdapter writing to stderr.
func NewDefaultLogger() *ZerologAdapter {
	return NewLogger(os.Stderr, "convcalc")
}

// Info logs an informational message.
func (z *ZerologAdapter) Info(msg string, fields ...Field) {
	z.applyFields(z.logger.Info(), fields).Msg(msg)
}

// Error logs an error message with its cause.
func (z *ZerologAdapter) Error(msg string, err error, fields ...Field) {
	z.applyFields(z.logger.Error().Err(err), fields).Msg(msg)
}

// Debug logs a debug message.
func (z *ZerologAdapter) Debug(msg string, fields ...Field) {
	z.applyFields(z.logger.Debug(), fields).Msg(msg)
}

// Printf logs a formatted message at info level.
func (z *ZerologAdapter) Printf(format string, v ...any) {
	z.logger.Info().Msg(fmt.Sprintf(format, v...))
}

// Println logs its arguments at info level.
func (z *ZerologAdapter) Println(v ...any) {
	z.logger.Info().Msg(fmt.Sprintln(v...))
}

// applyFields attaches structured fields to a zerolog event.
func (z *ZerologAdapter) applyFields(event *zerolog.Event, fields []Field) *zerolog.Event {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			event = event.Str(f.Key, v)
		case int:
			event = event.Int(f.Key, v)
		case int64:
			event = event.Int64(f.Key, v)
		case uint64:
			event = event.Uint64(f.Key, v)
		case float64:
			event = event.Float64(f.Key, v)
		case bool:
			event = event.Bool(f.Key, v)
		case error:
			event = event.AnErr(f.Key, v)
		default:
			event = event.Interface(f.Key, v)
		}
	}
	return event
}

// StdLoggerAdapter implements Logger on top of the standard library logger.
// It is used where zerolog would be inappropriate, such as tests that only
// need plain text output.
type StdLoggerAdapter struct {
	logger *log.Logger
}

// NewStdLoggerAdapter wraps an existing *log.Logger.
func NewStdLoggerAdapter(logger *log.Logger) *StdLoggerAdapter {
	return &StdLoggerAdapter{logger: logger}
}

// Info logs an informational message.
func (s *StdLoggerAdapter) Info(msg string, fields ...Field) {
	s.logger.Println(append([]any{"[INFO]", msg}, fieldArgs(fields)...)...)
}

// Error logs an error message with its cause.
func (s *StdLoggerAdapter) Error(msg string, err error, fields ...Field) {
	args := append([]any{"[ERROR]", msg}, fieldArgs(fields)...)
	if err != nil {
		args = append(args, "error="+err.Error())
	}
	s.logger.Println(args...)
}

// Debug logs a debug message.
func (s *StdLoggerAdapter) Debug(msg string, fields ...Field) {
	s.logger.Println(append([]any{"[DEBUG]", msg}, fieldArgs(fields)...)...)
}

// Printf logs a formatted message.
func (s *StdLoggerAdapter) Printf(format string, v ...any) {
	s.logger.Printf(format, v...)
}

// Println logs its arguments.
func (s *StdLoggerAdapter) Println(v ...any) {
	s.logger.Println(v...)
}

func fieldArgs(fields []Field) []any {
	args := make([]any, 0, len(fields))
	for _, f := range fields {
		args = append(args, fmt.Sprintf("%s=%v", f.Key, f.Value))
	}
	return args
}
