// Package log provides a small leveled logger that tags every line with a
// colored component prefix.
package log

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/beka-birhanu/vinom-maze/config"
)

const timeLayout = "2006/01/02 15:04:05"

// Logger writes "<time> [PREFIX] [LEVEL] message" lines to an io.Writer.
// It is safe for concurrent use.
type Logger struct {
	prefix string
	color  string
	out    io.Writer
	mu     sync.Mutex
	now    func() time.Time
}

// New creates a Logger for the named component. color is one of the ANSI
// codes in the config package, or empty for plain output.
func New(prefix, color string, out io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, errors.New("logger prefix must not be empty")
	}
	if out == nil {
		return nil, errors.New("logger output must not be nil")
	}
	return &Logger{
		prefix: prefix,
		color:  color,
		out:    out,
		now:    time.Now,
	}, nil
}

// Info logs a routine event.
func (l *Logger) Info(msg string) {
	l.write("INFO", config.LogInfoColor, msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.write("WARNING", config.LogWarningColor, msg)
}

// Error logs a failed operation.
func (l *Logger) Error(msg string) {
	l.write("ERROR", config.LogErrorColor, msg)
}

// Debug logs diagnostics.
func (l *Logger) Debug(msg string) {
	l.write("DEBUG", "", msg)
}

func (l *Logger) write(level, levelColor, msg string) {
	tag, lvl := "["+l.prefix+"]", "["+level+"]"
	if l.color != "" {
		tag = l.color + tag + config.ColorReset
		if levelColor != "" {
			lvl = levelColor + lvl + config.LogColorReset
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = fmt.Fprintf(l.out, "%s %s %s %s\n", l.now().Format(timeLayout), tag, lvl, msg)
}
