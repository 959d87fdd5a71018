// Package notify defines the short status messages shown to the user after
// document operations.
package notify

import (
	"fmt"
	"time"
)

// Level represents the severity of a notification.
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notification represents a single notification event.
type Notification struct {
	Level     Level
	Message   string
	CreatedAt time.Time
}

// Infof builds an info-level notification.
func Infof(format string, args ...any) Notification {
	return newf(LevelInfo, format, args...)
}

// Warnf builds a warning-level notification.
func Warnf(format string, args ...any) Notification {
	return newf(LevelWarning, format, args...)
}

// Errorf builds an error-level notification.
func Errorf(format string, args ...any) Notification {
	return newf(LevelError, format, args...)
}

func newf(level Level, format string, args ...any) Notification {
	return Notification{
		Level:     level,
		Message:   fmt.Sprintf(format, args...),
		CreatedAt: time.Now(),
	}
}
