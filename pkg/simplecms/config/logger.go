package config

import (
	"fmt"
	"log/slog"
)

// slogLogger adapts log/slog to the simplecms.Logger interface used by the
// logging event sink.
type slogLogger struct{}

func (slogLogger) Infof(format string, args ...interface{}) {
	slog.Info(fmt.Sprintf(format, args...))
}

func (slogLogger) Errorf(format string, args ...interface{}) {
	slog.Error(fmt.Sprintf(format, args...))
}
