// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/vscfg/internal/core/ports"
)

// messager describes an error that can report its own message without the chain.
// This matches the Message() method provided by zerr.Error.
type messager interface {
	Message() string
}

// annotated describes an error carrying key-value metadata, as zerr.Error does.
type annotated interface {
	Metadata() map[string]any
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger *slog.Logger
	mu     sync.RWMutex
}

// New creates a new Logger writing to stderr.
func New() ports.Logger {
	return NewWithWriter(os.Stderr)
}

// NewWithWriter creates a new Logger writing to w.
func NewWithWriter(w io.Writer) *Logger {
	return &Logger{
		logger: slog.New(NewPrettyHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

// SetOutput updates the logger's output destination.
// If w is nil, os.Stderr is used.
func (l *Logger) SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	handler := NewPrettyHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})

	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = slog.New(handler)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error with its cause chain.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Error(FormatError(err))
}

// FormatError renders err as a main message followed by its causes.
//
//	Error: failed to write file
//
//	  Caused by:
//	    → permission denied
func FormatError(err error) string {
	messages := errorMessages(err)

	var lines []string
	for i, msg := range messages {
		parts := strings.Split(msg, "\n")
		if i == 0 {
			lines = append(lines, "Error: "+parts[0])
			for _, line := range parts[1:] {
				lines = append(lines, "       "+line)
			}
			continue
		}
		if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}
		lines = append(lines, "    → "+parts[0])
		for _, line := range parts[1:] {
			lines = append(lines, "      "+line)
		}
	}

	return strings.Join(lines, "\n")
}

// errorMessages walks the chain of zerr errors. A standard error ends the walk
// with its full message. Metadata is appended to the message of its level;
// levels without a message hand their metadata to the next one.
func errorMessages(err error) []string {
	var (
		messages []string
		pending  []string
	)
	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			messages = append(messages, withDetails(current.Error(), pending))
			pending = nil
			break
		}
		if a, ok := current.(annotated); ok {
			pending = append(pending, details(a.Metadata())...)
		}
		if msg := m.Message(); msg != "" {
			messages = append(messages, withDetails(msg, pending))
			pending = nil
		}
		current = errors.Unwrap(current)
	}
	if len(pending) > 0 && len(messages) > 0 {
		last := len(messages) - 1
		messages[last] = withDetails(messages[last], pending)
	}
	return messages
}

func details(meta map[string]any) []string {
	pairs := make([]string, 0, len(meta))
	for _, k := range slices.Sorted(maps.Keys(meta)) {
		pairs = append(pairs, fmt.Sprintf("%s=%v", k, meta[k]))
	}
	return pairs
}

func withDetails(msg string, pairs []string) string {
	if len(pairs) == 0 {
		return msg
	}
	return msg + " (" + strings.Join(pairs, ", ") + ")"
}
