package plugin

import (
	"fmt"
	"log/slog"
)

// LogLevel is the severity of a log event.
type LogLevel int

const (
	LevelInfo LogLevel = iota
	LevelError
)

func (l LogLevel) String() string {
	if l == LevelError {
		return "ERROR"
	}

	return "INFO"
}

// LogEvent is a severity-tagged message to be delivered to the host's
// logging sink.
type LogEvent struct {
	Message string
	Level   LogLevel
}

// Infof builds an info-level log event.
func Infof(msg string, args ...any) LogEvent {
	return LogEvent{Message: fmt.Sprintf(msg, args...), Level: LevelInfo}
}

// Errorf builds an error-level log event.
func Errorf(msg string, args ...any) LogEvent {
	return LogEvent{Message: fmt.Sprintf(msg, args...), Level: LevelError}
}

// LogSink is the capability handed to command handlers, exposing exactly one
// operation: submit a log event.
type LogSink interface {
	Log(event LogEvent)
}

// SlogSink forwards log events to the default slog logger, which the CLI
// routes through cmdlogger.
type SlogSink struct{}

func (SlogSink) Log(event LogEvent) {
	if event.Level == LevelError {
		slog.Error(event.Message)

		return
	}

	slog.Info(event.Message)
}

var _ LogSink = SlogSink{}
