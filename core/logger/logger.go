package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"
)

const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorPurple = "\033[35m"
	ColorCyan   = "\033[36m"
	ColorWhite  = "\033[37m"
	ColorGray   = "\033[90m"
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	case FATAL:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// Sink receives walker diagnostics. The global logger satisfies it through
// Default; tests pass their own implementation.
type Sink interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
}

type MultiWriter struct {
	writers []io.Writer
}

func NewMultiWriter(writers ...io.Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

func (mw *MultiWriter) Write(p []byte) (n int, err error) {
	for _, w := range mw.writers {
		if _, err := w.Write(p); err != nil {
			return 0, err
		}
	}
	return len(p), nil
}

func (mw *MultiWriter) Add(writer io.Writer) {
	mw.writers = append(mw.writers, writer)
}

type ColoredLogger struct {
	verbose bool
	mu      sync.RWMutex
	writers map[LogLevel]io.Writer
	loggers map[LogLevel]*log.Logger
	now     func() time.Time
}

// New returns a logger writing every level to w.
func New(w io.Writer, verbose bool) *ColoredLogger {
	cl := &ColoredLogger{
		verbose: verbose,
		writers: make(map[LogLevel]io.Writer),
		loggers: make(map[LogLevel]*log.Logger),
		now:     time.Now,
	}
	for level := DEBUG; level <= FATAL; level++ {
		cl.writers[level] = w
		cl.loggers[level] = log.New(w, "", 0)
	}
	return cl
}

var globalLogger = New(os.Stdout, false)

func SetVerbose(verbose bool) {
	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()
	globalLogger.verbose = verbose
}

func IsVerbose() bool {
	globalLogger.mu.RLock()
	defer globalLogger.mu.RUnlock()
	return globalLogger.verbose
}

func SetWriter(level LogLevel, writer io.Writer) {
	globalLogger.setWriter(level, writer)
}

func SetWriterForAll(writer io.Writer) {
	for level := DEBUG; level <= FATAL; level++ {
		globalLogger.setWriter(level, writer)
	}
}

func AddWriter(level LogLevel, writer io.Writer) {
	globalLogger.addWriter(level, writer)
}

func AddWriterForAll(writer io.Writer) {
	for level := DEBUG; level <= FATAL; level++ {
		globalLogger.addWriter(level, writer)
	}
}

func SetErrorWriter() {
	SetWriter(ERROR, os.Stderr)
	SetWriter(FATAL, os.Stderr)
}

// OpenLogFile appends every level to the file at path. The returned closer
// must be called when the command finishes.
func OpenLogFile(path string) (io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	AddWriterForAll(f)
	return f, nil
}

func (cl *ColoredLogger) setWriter(level LogLevel, writer io.Writer) {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	cl.writers[level] = writer
	cl.loggers[level] = log.New(writer, "", 0)
}

func (cl *ColoredLogger) addWriter(level LogLevel, writer io.Writer) {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	currentWriter := cl.writers[level]

	if mw, ok := currentWriter.(*MultiWriter); ok {
		mw.Add(writer)
	} else {
		multiWriter := NewMultiWriter(currentWriter, writer)
		cl.writers[level] = multiWriter
		cl.loggers[level] = log.New(multiWriter, "", 0)
	}
}

func (cl *ColoredLogger) getColor(level LogLevel) string {
	switch level {
	case DEBUG:
		return ColorGray
	case INFO:
		return ColorBlue
	case WARN:
		return ColorYellow
	case ERROR:
		return ColorRed
	case FATAL:
		return ColorPurple
	default:
		return ColorWhite
	}
}

func (cl *ColoredLogger) formatMessage(level LogLevel, message string) string {
	timestamp := cl.now().Format("06-01-02 15:04:05")

	return fmt.Sprintf(
		"%s[%s%s%s]%s %s%-5s%s %s%s",
		ColorGray, ColorGray, timestamp, ColorGray, ColorReset,
		cl.getColor(level), level.String(), ColorReset,
		message, ColorReset,
	)
}

func (cl *ColoredLogger) log(level LogLevel, format string, args ...interface{}) {
	cl.mu.RLock()
	if level == DEBUG && !cl.verbose {
		cl.mu.RUnlock()
		return
	}

	logger := cl.loggers[level]
	cl.mu.RUnlock()

	logger.Println(cl.formatMessage(level, fmt.Sprintf(format, args...)))

	if level == FATAL {
		os.Exit(1)
	}
}

func (cl *ColoredLogger) Debug(format string, args ...interface{}) {
	cl.log(DEBUG, format, args...)
}

func (cl *ColoredLogger) Info(format string, args ...interface{}) {
	cl.log(INFO, format, args...)
}

func (cl *ColoredLogger) Warn(format string, args ...interface{}) {
	cl.log(WARN, format, args...)
}

func (cl *ColoredLogger) Error(format string, args ...interface{}) {
	cl.log(ERROR, format, args...)
}

// Default returns the process-wide logger as a Sink.
func Default() Sink {
	return globalLogger
}

type discard struct{}

func (discard) Debug(string, ...interface{}) {}
func (discard) Info(string, ...interface{})  {}
func (discard) Warn(string, ...interface{})  {}

// Discard returns a Sink that drops every message.
func Discard() Sink {
	return discard{}
}

func Debug(format string, args ...interface{}) {
	globalLogger.log(DEBUG, format, args...)
}

func Info(format string, args ...interface{}) {
	globalLogger.log(INFO, format, args...)
}

func Warn(format string, args ...interface{}) {
	globalLogger.log(WARN, format, args...)
}

func Error(format string, args ...interface{}) {
	globalLogger.log(ERROR, format, args...)
}

func Fatal(format string, args ...interface{}) {
	globalLogger.log(FATAL, format, args...)
}

func GetLogFromLevel(level LogLevel) func(format string, args ...interface{}) {
	return func(format string, args ...interface{}) {
		globalLogger.log(level, format, args...)
	}
}
