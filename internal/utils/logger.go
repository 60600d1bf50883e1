// Package utils provides logging and identifier helpers for the deviceinfo agent
//
//nolint:revive // utils is a common pattern for internal utilities
package utils

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/crewjam/rfc5424"
)

// AppName is the RFC 5424 APP-NAME of every agent log line.
const AppName = "ohos-deviceinfo"

// Logger defines the interface for logging operations
type Logger interface {
	LogInfo(message string, meta map[string]string)
	LogWarn(message string, meta map[string]string)
	LogError(message string, meta map[string]string)
	LogDebug(message string, meta map[string]string)
}

// RFC5424Logger implements Logger with RFC 5424 compliant syslog format using crewjam/rfc5424
type RFC5424Logger struct {
	appName   string
	hostname  string
	processID string
	facility  rfc5424.Priority
	debug     bool

	mu   sync.Mutex
	out  io.Writer
	logs []string // captured lines, attached to the report
}

// NewRFC5424Logger creates a logger writing to out. Debug messages are dropped
// unless debug is set.
func NewRFC5424Logger(appName string, out io.Writer, debug bool) *RFC5424Logger {
	if out == nil {
		out = os.Stderr
	}
	return &RFC5424Logger{
		appName:   appName,
		hostname:  getHostname(),
		processID: strconv.Itoa(os.Getpid()),
		facility:  rfc5424.User,
		debug:     debug,
		out:       out,
		logs:      make([]string, 0),
	}
}

func getHostname() string {
	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		return "localhost"
	}
	return hostname
}

func (l *RFC5424Logger) createMessage(severity rfc5424.Priority, message string, meta map[string]string) *rfc5424.Message {
	msg := &rfc5424.Message{
		Priority:  l.facility | severity,
		Timestamp: time.Now().UTC(),
		Hostname:  l.hostname,
		AppName:   l.appName,
		ProcessID: l.processID,
		Message:   []byte(message),
	}

	// Sorted so identical calls render identical lines.
	keys := make([]string, 0, len(meta))
	for key := range meta {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		msg.AddDatum("meta@1", key, meta[key])
	}

	return msg
}

func (l *RFC5424Logger) writeLog(severity rfc5424.Priority, message string, meta map[string]string) {
	if severity == rfc5424.Debug && !l.debug {
		return
	}
	msg := l.createMessage(severity, message, meta)

	var buf bytes.Buffer
	var line string
	if _, err := msg.WriteTo(&buf); err != nil {
		// Fall back to a minimal header when the message does not validate.
		line = fmt.Sprintf("<%d>1 %s %s %s %s - - %s",
			int(l.facility|severity),
			msg.Timestamp.Format(time.RFC3339),
			l.hostname, l.appName, l.processID, message)
	} else {
		line = strings.TrimRight(buf.String(), "\n")
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = fmt.Fprintln(l.out, line)
	l.logs = append(l.logs, line)
}

// LogInfo logs an informational message (severity Info)
func (l *RFC5424Logger) LogInfo(message string, meta map[string]string) {
	l.writeLog(rfc5424.Info, message, meta)
}

// LogWarn logs a warning message (severity Warning)
func (l *RFC5424Logger) LogWarn(message string, meta map[string]string) {
	l.writeLog(rfc5424.Warning, message, meta)
}

// LogError logs an error message (severity Error)
func (l *RFC5424Logger) LogError(message string, meta map[string]string) {
	l.writeLog(rfc5424.Error, message, meta)
}

// LogDebug logs a debug message (severity Debug)
func (l *RFC5424Logger) LogDebug(message string, meta map[string]string) {
	l.writeLog(rfc5424.Debug, message, meta)
}

// GetLogs returns a copy of all captured logs
func (l *RFC5424Logger) GetLogs() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	logsCopy := make([]string, len(l.logs))
	copy(logsCopy, l.logs)
	return logsCopy
}

// ClearLogs clears the in-memory log buffer
func (l *RFC5424Logger) ClearLogs() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logs = make([]string, 0)
}

// DefaultLogger is the global logger instance
var DefaultLogger *RFC5424Logger

// InitDefaultLogger initializes the global logger instance
func InitDefaultLogger(out io.Writer, debug bool) {
	DefaultLogger = NewRFC5424Logger(AppName, out, debug)
}

// Convenience functions using the global logger

// LogInfo logs an informational message using the default logger
func LogInfo(message string, meta map[string]string) {
	if DefaultLogger != nil {
		DefaultLogger.LogInfo(message, meta)
	}
}

// LogWarn logs a warning message using the default logger
func LogWarn(message string, meta map[string]string) {
	if DefaultLogger != nil {
		DefaultLogger.LogWarn(message, meta)
	}
}

// LogError logs an error message using the default logger
func LogError(message string, meta map[string]string) {
	if DefaultLogger != nil {
		DefaultLogger.LogError(message, meta)
	}
}

// LogDebug logs a debug message using the default logger
func LogDebug(message string, meta map[string]string) {
	if DefaultLogger != nil {
		DefaultLogger.LogDebug(message, meta)
	}
}

// GetLogs returns logs from the default logger
func GetLogs() []string {
	if DefaultLogger != nil {
		return DefaultLogger.GetLogs()
	}
	return []string{}
}

// ClearLogs clears logs from the default logger
func ClearLogs() {
	if DefaultLogger != nil {
		DefaultLogger.ClearLogs()
	}
}

// Default is a Logger that forwards to DefaultLogger, for components that take
// a Logger but should follow the global one.
var Default Logger = defaultLogger{}

type defaultLogger struct{}

func (defaultLogger) LogInfo(message string, meta map[string]string)  { LogInfo(message, meta) }
func (defaultLogger) LogWarn(message string, meta map[string]string)  { LogWarn(message, meta) }
func (defaultLogger) LogError(message string, meta map[string]string) { LogError(message, meta) }
func (defaultLogger) LogDebug(message string, meta map[string]string) { LogDebug(message, meta) }
