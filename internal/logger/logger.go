package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

type key int

const loggerKey key = iota

func NewContext(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext returns the logger stored in ctx, or a no-op logger.
func FromContext(ctx context.Context) Logger {
	if l, ok := ctx.Value(loggerKey).(Logger); ok && l != nil {
		return l
	}

	return NewNoOpLogger()
}

type LogLevel int8

const (
	DebugLevel LogLevel = iota - 1
	InfoLevel
	WarnLevel
	ErrorLevel
	FatalLevel
)

func (l LogLevel) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "LEVEL(" + strconv.Itoa(int(l)) + ")"
	}
}

// Config for New. Production never logs below InfoLevel.
type Config struct {
	Level        LogLevel
	IsProduction bool
}

type Logger interface {
	Debug(msg string, fields ...interface{})
	Info(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
	Error(msg string, fields ...interface{})
	Fatal(msg string, fields ...interface{})
	With(fields ...interface{}) Logger
}

type stdLogger struct {
	cfg           Config
	mu            *sync.Mutex
	out           io.Writer
	exit          func(int)
	contextFields []interface{}
}

type Option func(*stdLogger)

func WithOutput(w io.Writer) Option {
	return func(l *stdLogger) {
		if w != nil {
			l.out = w
		}
	}
}

// WithExitFunc replaces os.Exit for Fatal.
func WithExitFunc(fn func(int)) Option {
	return func(l *stdLogger) {
		if fn != nil {
			l.exit = fn
		}
	}
}

func New(cfg Config, opts ...Option) Logger {
	if cfg.IsProduction && cfg.Level < InfoLevel {
		cfg.Level = InfoLevel
	}

	l := &stdLogger{
		cfg:  cfg,
		mu:   &sync.Mutex{},
		out:  os.Stdout,
		exit: os.Exit,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

func (l *stdLogger) Debug(msg string, fields ...interface{}) {
	l.log(DebugLevel, msg, fields...)
}

func (l *stdLogger) Info(msg string, fields ...interface{}) {
	l.log(InfoLevel, msg, fields...)
}

func (l *stdLogger) Warn(msg string, fields ...interface{}) {
	l.log(WarnLevel, msg, fields...)
}

func (l *stdLogger) Error(msg string, fields ...interface{}) {
	l.log(ErrorLevel, msg, fields...)
}

func (l *stdLogger) Fatal(msg string, fields ...interface{}) {
	l.log(FatalLevel, msg, fields...)
	l.exit(1)
}

func (l *stdLogger) With(fields ...interface{}) Logger {
	newLogger := *l
	newLogger.contextFields = make([]interface{}, 0, len(l.contextFields)+len(fields))
	newLogger.contextFields = append(newLogger.contextFields, l.contextFields...)
	newLogger.contextFields = append(newLogger.contextFields, fields...)
	return &newLogger
}

func (l *stdLogger) log(level LogLevel, msg string, fields ...interface{}) {
	if level < l.cfg.Level {
		return
	}

	var sb strings.Builder
	sb.WriteString(time.Now().Format(time.RFC3339Nano))
	sb.WriteString(" ")
	sb.WriteString(level.String())
	sb.WriteString(" ")
	sb.WriteString(msg)

	allFields := make([]interface{}, 0, len(l.contextFields)+len(fields))
	allFields = append(allFields, l.contextFields...)
	allFields = append(allFields, fields...)

	for i := 0; i < len(allFields); i += 2 {
		key, ok := allFields[i].(string)
		if !ok {
			continue
		}
		sb.WriteString(" ")
		sb.WriteString(key)
		sb.WriteString("=")
		if i+1 < len(allFields) {
			appendValue(&sb, allFields[i+1])
		}
	}
	sb.WriteString("\n")

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, err := io.WriteString(l.out, sb.String()); err != nil {
		fmt.Fprintf(os.Stderr, "WARNING: failed to write log line: %v\n", err)
	}
}

func appendValue(sb *strings.Builder, value interface{}) {
	switch val := value.(type) {
	case string:
		if strings.ContainsAny(val, " \t\n\"=") {
			sb.WriteString(strconv.Quote(val))
			return
		}
		sb.WriteString(val)
	case int:
		sb.WriteString(strconv.Itoa(val))
	case int64:
		sb.WriteString(strconv.FormatInt(val, 10))
	case uint64:
		sb.WriteString(strconv.FormatUint(val, 10))
	case float64:
		sb.WriteString(strconv.FormatFloat(val, 'f', -1, 64))
	case bool:
		sb.WriteString(strconv.FormatBool(val))
	case time.Duration:
		sb.WriteString(val.String())
	case error:
		sb.WriteString(strconv.Quote(val.Error()))
	case fmt.Stringer:
		sb.WriteString(val.String())
	default:
		sb.WriteString(fmt.Sprintf("%v", val))
	}
}

func ParseLevel(level string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return DebugLevel
	case "info":
		return InfoLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	case "fatal":
		return FatalLevel
	default:
		return InfoLevel
	}
}

type noOpLogger struct{}

func (n *noOpLogger) Debug(msg string, fields ...interface{}) {}
func (n *noOpLogger) Info(msg string, fields ...interface{})  {}
func (n *noOpLogger) Warn(msg string, fields ...interface{})  {}
func (n *noOpLogger) Error(msg string, fields ...interface{}) {}
func (n *noOpLogger) Fatal(msg string, fields ...interface{}) {}

func (n *noOpLogger) With(fields ...interface{}) Logger {
	return n
}

func NewNoOpLogger() Logger {
	return &noOpLogger{}
}
