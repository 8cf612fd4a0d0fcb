package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	committerErrors "github.com/bashhack/committer/internal/errors"
)

// Logger defines the common logging interface used throughout the application.
// It separates internal logs (Info, Warning, Error) from user-facing messages
// (InfoToUser, WarningToUser, Success, StatusMessage).
type Logger interface {
	// Info logs an informational message. It is written to the log file when
	// file logging is enabled and echoed to stdout in verbose mode.
	Info(format string, args ...interface{})

	// Warning logs a warning message. It is written to the log file when
	// file logging is enabled and echoed to stdout in verbose mode.
	Warning(format string, args ...interface{})

	// Error logs an error message. Errors are always shown on stderr.
	Error(format string, args ...interface{})

	// InfoToUser logs an informational message that is always shown.
	InfoToUser(format string, args ...interface{})

	// WarningToUser logs a warning message that is always shown.
	WarningToUser(format string, args ...interface{})

	// Success logs a success message to the user.
	Success(format string, args ...interface{})

	// StatusMessage prints a plain status line to stdout without logging it.
	StatusMessage(format string, args ...interface{})

	// Close flushes buffered records and closes the log file.
	Close() error
}

// DefaultLogger implements Logger with a zap core for the structured log file
// and plain writers for user-facing output.
type DefaultLogger struct {
	mu      sync.Mutex
	zap     *zap.Logger
	enabled bool
	logFile string
	verbose bool
	stdout  io.Writer
	stderr  io.Writer
	file    *os.File

	infoColor    *color.Color
	warnColor    *color.Color
	errorColor   *color.Color
	successColor *color.Color
}

// NewWithOutput creates a DefaultLogger with custom output writers.
// When enabled is false no log file is created and internal records are dropped.
func NewWithOutput(enabled bool, logFile string, verbose bool, stdout, stderr io.Writer) *DefaultLogger {
	var (
		zl   *zap.Logger
		file *os.File
	)

	if enabled {
		logDir := filepath.Dir(logFile)
		if logDir != "." {
			if err := os.MkdirAll(logDir, 0o755); err != nil {
				_, _ = fmt.Fprintf(stderr, "⚠️ Failed to create log directory: %v\n", err)
			}
		}

		f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err == nil {
			file = f
			zl = zap.New(newCore(zapcore.AddSync(f)))
			_, _ = fmt.Fprintf(stdout, "🔍 Debug logging enabled. Logs will be written to: %s\n", logFile)

			zl.Info("committer debug logging started")
		} else {
			zl = zap.New(newCore(zapcore.Lock(zapcore.AddSync(stderr))))
			_, _ = fmt.Fprintf(stderr, "⚠️ Failed to open log file: %v, using stderr instead\n", err)
		}
	} else {
		zl = zap.NewNop()
	}

	l := &DefaultLogger{
		zap:          zl,
		enabled:      enabled,
		logFile:      logFile,
		verbose:      verbose,
		stdout:       stdout,
		stderr:       stderr,
		file:         file,
		infoColor:    color.New(color.FgCyan),
		warnColor:    color.New(color.FgYellow),
		errorColor:   color.New(color.FgRed),
		successColor: color.New(color.FgGreen),
	}
	l.setColorMode(stdout)

	return l
}

func newCore(ws zapcore.WriteSyncer) zapcore.Core {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), ws, zapcore.InfoLevel)
}

// setColorMode enables colours only when w is a terminal.
func (l *DefaultLogger) setColorMode(w io.Writer) {
	useColor := false
	if f, ok := w.(*os.File); ok {
		fd := f.Fd()
		useColor = isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}

	for _, c := range []*color.Color{l.infoColor, l.warnColor, l.errorColor, l.successColor} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
}

// Info logs an informational message
func (l *DefaultLogger) Info(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)

	if l.enabled {
		l.zap.Info(msg)
	}

	if l.verbose {
		_, _ = l.infoColor.Fprintf(l.stdout, "ℹ️  %s\n", msg)
	}
}

// InfoToUser logs an informational message to both file and stdout
func (l *DefaultLogger) InfoToUser(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)

	if l.enabled {
		l.zap.Info(msg)
	}

	_, _ = l.infoColor.Fprintf(l.stdout, "ℹ️  %s\n", msg)
}

// Success logs a success message to both file and stdout
func (l *DefaultLogger) Success(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)

	if l.enabled {
		l.zap.Info(msg, zap.Bool("success", true))
	}

	_, _ = l.successColor.Fprintf(l.stdout, "✅ %s\n", msg)
}

// Warning logs a warning message
func (l *DefaultLogger) Warning(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)

	if l.enabled {
		l.zap.Warn(msg)
	}

	if l.verbose {
		_, _ = l.warnColor.Fprintf(l.stdout, "⚠️  %s\n", msg)
	}
}

// WarningToUser logs a warning message to both file and stdout
func (l *DefaultLogger) WarningToUser(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)

	if l.enabled {
		l.zap.Warn(msg)
	}

	_, _ = l.warnColor.Fprintf(l.stdout, "⚠️  %s\n", msg)
}

// Error logs an error message
func (l *DefaultLogger) Error(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)

	if l.enabled {
		l.zap.Error(msg)
	}

	_, _ = l.errorColor.Fprintf(l.stderr, "❌ %s\n", msg)
}

// StatusMessage prints a status message to stdout only (no logging)
func (l *DefaultLogger) StatusMessage(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintln(l.stdout, msg)
}

// Close flushes the zap core and closes the log file handle
func (l *DefaultLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}

	// Sync ensures any buffered data is flushed to disk before closing.
	// Some targets such as /dev/stdout reject fsync; the file is closed anyway.
	syncErr := l.zap.Sync()
	closeErr := l.file.Close()
	l.file = nil
	return committerErrors.Join(syncErr, closeErr)
}
