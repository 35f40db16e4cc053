package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/gioco-play/easy-i18n/i18n"
)

// Sink receives the human-readable lines of one upload.
// Format strings are i18n message keys.
type Sink interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// Level of a recorded line
type Level string

const (
	LevelInfo  Level = "INFO"
	LevelError Level = "ERROR"
)

// Line is one translated log line
type Line struct {
	Level   Level
	Message string
}

func (l Line) String() string {
	if l.Level == LevelError {
		return "ERROR: " + l.Message
	}
	return l.Message
}

// Recorder keeps every line in memory
type Recorder struct {
	mu    sync.Mutex
	lines []Line
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Infof(format string, args ...interface{}) {
	r.add(LevelInfo, i18n.Sprintf(format, args...))
}

func (r *Recorder) Errorf(format string, args ...interface{}) {
	r.add(LevelError, i18n.Sprintf(format, args...))
}

func (r *Recorder) add(level Level, msg string) {
	r.mu.Lock()
	r.lines = append(r.lines, Line{Level: level, Message: msg})
	r.mu.Unlock()
}

// Lines returns a copy of the recorded lines in emission order
func (r *Recorder) Lines() []Line {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Line, len(r.lines))
	copy(out, r.lines)
	return out
}

// Strings returns the recorded lines rendered as plain text
func (r *Recorder) Strings() []string {
	lines := r.Lines()
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, l.String())
	}
	return out
}

// Text returns all recorded lines joined by newlines
func (r *Recorder) Text() string {
	return strings.Join(r.Strings(), "\n")
}

// Tee fans every line out to all sinks
func Tee(sinks ...Sink) Sink {
	return tee(sinks)
}

type tee []Sink

func (t tee) Infof(format string, args ...interface{}) {
	for _, s := range t {
		s.Infof(format, args...)
	}
}

func (t tee) Errorf(format string, args ...interface{}) {
	for _, s := range t {
		s.Errorf(format, args...)
	}
}

// Context mirrors lines to the console and to an optional log file.
type Context struct {
	mu          sync.Mutex
	console     io.Writer
	logFile     *os.File
	logFileName string
	module      string
}

// NewConsole creates a context that only writes to w
func NewConsole(w io.Writer, module string) *Context {
	return &Context{console: w, module: module}
}

// NewContext creates a log context writing oss-upload-helper-{timestamp}.log.
// logFileName can be:
//   - Empty string: auto-generate the name inside logDir
//   - Relative path: joined with logDir
//   - Absolute path: used as-is
func NewContext(console io.Writer, logDir, logFileName, module string) (*Context, error) {
	var finalLogFileName string

	switch {
	case logFileName == "":
		if err := ensureLogsDir(logDir); err != nil {
			return nil, err
		}
		cleanOldLogs(logDir, 10)
		timestamp := time.Now().Format("20060102150405")
		finalLogFileName = filepath.Join(logDir, fmt.Sprintf("oss-upload-helper-%s.log", timestamp))
	case filepath.IsAbs(logFileName):
		finalLogFileName = logFileName
	default:
		finalLogFileName = filepath.Join(logDir, logFileName)
	}
	if err := ensureLogsDir(filepath.Dir(finalLogFileName)); err != nil {
		return nil, err
	}

	logFile, err := os.Create(finalLogFileName)
	if err != nil {
		return nil, fmt.Errorf("failed to create log file: %v", err)
	}

	ctx := &Context{
		console:     console,
		logFile:     logFile,
		logFileName: finalLogFileName,
		module:      module,
	}
	ctx.WriteLog("SYSTEM", "=== OSS Upload Helper Log Started ===")
	return ctx, nil
}

func (lc *Context) Infof(format string, args ...interface{}) {
	msg := i18n.Sprintf(format, args...)
	lc.printConsole(msg)
	lc.WriteLog(lc.module, "%s", msg)
}

func (lc *Context) Errorf(format string, args ...interface{}) {
	msg := Line{Level: LevelError, Message: i18n.Sprintf(format, args...)}.String()
	lc.printConsole(color.RedString(msg))
	lc.WriteLog(lc.module, "%s", msg)
}

func (lc *Context) printConsole(msg string) {
	if lc.console == nil {
		return
	}
	lc.mu.Lock()
	fmt.Fprintln(lc.console, msg)
	lc.mu.Unlock()
}

// WriteLog writes a log entry with [MODULE] prefix and timestamp
func (lc *Context) WriteLog(module string, format string, args ...interface{}) {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	if lc.logFile == nil {
		return
	}
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	message := fmt.Sprintf(format, args...)
	lc.logFile.WriteString(fmt.Sprintf("[%s] [%s] %s\n", timestamp, module, message))
	lc.logFile.Sync()
}

// FileName returns the log file path, empty for console-only contexts
func (lc *Context) FileName() string {
	return lc.logFileName
}

// Close closes the log file
func (lc *Context) Close() {
	if lc.logFile == nil {
		return
	}
	lc.WriteLog("SYSTEM", "=== OSS Upload Helper Log Ended ===")
	lc.mu.Lock()
	lc.logFile.Close()
	lc.logFile = nil
	lc.mu.Unlock()
}

func ensureLogsDir(dir string) error {
	if dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0755)
}

// cleanOldLogs keeps the newest keep auto-named logs in dir
func cleanOldLogs(dir string, keep int) {
	matches, err := filepath.Glob(filepath.Join(dir, "oss-upload-helper-*.log"))
	if err != nil || len(matches) < keep {
		return
	}
	// timestamped names sort chronologically
	sort.Strings(matches)
	for _, f := range matches[:len(matches)-keep+1] {
		os.Remove(f)
	}
}
