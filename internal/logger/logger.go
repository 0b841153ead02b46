// Package logger wraps logrus for kom. The pager owns the terminal, so log
// output always goes to a file.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

type Logger = logrus.Logger
type LogEntry = logrus.Entry
type Fields = logrus.Fields

// EnvLevel overrides the configured log level.
const EnvLevel = "KOM_LOG_LEVEL"

// LevelOff disables logging entirely.
const LevelOff = "off"

var rootLogger = logrus.StandardLogger()

// Configure sets the shared formatter and caller reporting.
func Configure() {
	root().SetReportCaller(true)
	root().SetFormatter(PlainFormatter{})
}

// SetLevel applies a level name such as "debug" or "off". Unknown names fall
// back to info and are reported as an error.
func SetLevel(name string) error {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == LevelOff {
		root().SetOutput(io.Discard)
		root().SetLevel(logrus.PanicLevel)
		return nil
	}
	if name == "" {
		name = "info"
	}
	level, err := logrus.ParseLevel(name)
	if err != nil {
		root().SetLevel(logrus.InfoLevel)
		return fmt.Errorf("log level %q: %w", name, err)
	}
	root().SetLevel(level)
	return nil
}

// SetupFile redirects the shared logger to logPath. An empty path creates a
// fresh kom.log.* file in the temp directory. The returned closer releases
// the file; the resolved path is returned for display.
func SetupFile(logPath string) (io.Closer, string, error) {
	f, err := openLogFile(logPath)
	if err != nil {
		return nil, "", err
	}
	root().SetOutput(f)
	return f, f.Name(), nil
}

// Root returns the shared logger.
func Root() *Logger {
	return root()
}

// SetRoot replaces the shared logger; nil restores the logrus default.
func SetRoot(l *Logger) {
	if l == nil {
		l = logrus.StandardLogger()
	}
	rootLogger = l
}

// Named returns an entry tagged with component.
func Named(component string) *LogEntry {
	entry := logrus.NewEntry(root())
	if component != "" {
		entry = entry.WithField("component", component)
	}
	return entry
}

func Debugf(format string, args ...any) {
	root().Debugf(format, args...)
}

func Infof(format string, args ...any) {
	root().Infof(format, args...)
}

func Warnf(format string, args ...any) {
	root().Warnf(format, args...)
}

func Errorf(format string, args ...any) {
	root().Errorf(format, args...)
}

func root() *logrus.Logger {
	if rootLogger == nil {
		rootLogger = logrus.StandardLogger()
	}
	return rootLogger
}

// PlainFormatter writes: caller [timestamp] [LEVEL] [component] message fields.
type PlainFormatter struct{}

func (PlainFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	if entry == nil {
		return []byte{}, nil
	}

	parts := make([]string, 0, 5)
	if caller := formatCaller(entry); caller != "" {
		parts = append(parts, caller)
	}
	parts = append(parts, "["+entry.Time.UTC().Format(time.RFC3339Nano)+"]")
	parts = append(parts, "["+strings.ToUpper(entry.Level.String())+"]")
	if component, ok := entry.Data["component"].(string); ok && component != "" {
		parts = append(parts, "["+component+"]")
	}
	parts = append(parts, entry.Message)
	if fields := formatFields(entry.Data); fields != "" {
		parts = append(parts, fields)
	}
	return []byte(strings.Join(parts, " ") + "\n"), nil
}

func formatCaller(entry *logrus.Entry) string {
	if !entry.HasCaller() || entry.Caller == nil {
		return ""
	}
	file := filepath.ToSlash(entry.Caller.File)
	for _, marker := range []string{"/internal/", "/cmd/"} {
		if idx := strings.Index(file, marker); idx != -1 {
			file = file[idx+1:]
			return fmt.Sprintf("%s:%d", file, entry.Caller.Line)
		}
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), entry.Caller.Line)
}

func formatFields(fields logrus.Fields) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		if k == "component" {
			continue
		}
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return ""
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, fields[k]))
	}
	return strings.Join(parts, " ")
}

func openLogFile(logPath string) (*os.File, error) {
	if logPath == "" {
		return os.CreateTemp("", "kom.log.*")
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}
