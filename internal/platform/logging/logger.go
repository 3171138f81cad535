package logging

import (
	"context"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Level = zapcore.Level

const (
	LevelDebug = zapcore.DebugLevel
	LevelInfo  = zapcore.InfoLevel
	LevelWarn  = zapcore.WarnLevel
	LevelError = zapcore.ErrorLevel
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Options controls how a CLI logger is built. Reports own stdout, so logs
// default to stderr.
type Options struct {
	Level  Level
	Format string
	Output io.Writer
}

type Logger struct {
	zap    *zap.Logger
	synced atomic.Bool
}

// MirrorFunc receives every entry that passes the level check, e.g. to
// forward it to a remote log backend.
type MirrorFunc func(ctx context.Context, level Level, msg string, args ...any)

var (
	defaultLogger atomic.Pointer[Logger]
	mirror        atomic.Pointer[MirrorFunc]
)

func init() {
	defaultLogger.Store(NewNop())
}

func New(opts Options) *Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	encoderCfg := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      zapcore.OmitKey,
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  zapcore.OmitKey,
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	var encoder zapcore.Encoder
	if strings.EqualFold(strings.TrimSpace(opts.Format), FormatJSON) {
		encoderCfg.CallerKey = "caller"
		encoderCfg.EncodeCaller = zapcore.ShortCallerEncoder
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(out)), opts.Level)
	return FromZap(zap.New(core, zap.AddCaller(), zap.AddCallerSkip(2)))
}

func NewNop() *Logger {
	return FromZap(zap.NewNop())
}

func FromZap(z *zap.Logger) *Logger {
	if z == nil {
		z = zap.NewNop()
	}
	return &Logger{zap: z}
}

func Default() *Logger {
	if logger := defaultLogger.Load(); logger != nil {
		return logger
	}
	return NewNop()
}

func SetDefault(logger *Logger) {
	if logger == nil {
		logger = NewNop()
	}
	defaultLogger.Store(logger)
}

// SetMirror installs fn for all loggers; nil removes it.
func SetMirror(fn MirrorFunc) {
	if fn == nil {
		mirror.Store(nil)
		return
	}
	mirror.Store(&fn)
}

// ParseLevel maps a level name to a Level. Unknown names mean info.
func ParseLevel(v string) Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Sync flushes buffered entries once; later calls are no-ops.
func (l *Logger) Sync() error {
	if l == nil || l.zap == nil {
		return nil
	}
	if l.synced.CompareAndSwap(false, true) {
		return l.zap.Sync()
	}
	return nil
}

func (l *Logger) With(args ...any) *Logger {
	if l == nil {
		return NewNop()
	}
	return FromZap(l.zap.With(zapFields(args)...))
}

func (l *Logger) Debug(msg string, args ...any) {
	l.log(nil, zap.DebugLevel, msg, args...)
}

func (l *Logger) Info(msg string, args ...any) {
	l.log(nil, zap.InfoLevel, msg, args...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.log(nil, zap.WarnLevel, msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.log(nil, zap.ErrorLevel, msg, args...)
}

func (l *Logger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.log(ctx, zap.DebugLevel, msg, args...)
}

func (l *Logger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.log(ctx, zap.InfoLevel, msg, args...)
}

func (l *Logger) WarnContext(ctx context.Context, msg string, args ...any) {
	l.log(ctx, zap.WarnLevel, msg, args...)
}

func (l *Logger) ErrorContext(ctx context.Context, msg string, args ...any) {
	l.log(ctx, zap.ErrorLevel, msg, args...)
}

func (l *Logger) log(ctx context.Context, level zapcore.Level, msg string, args ...any) {
	logger := l
	if logger == nil || logger.zap == nil {
		logger = Default()
	}
	ce := logger.zap.Check(level, msg)
	if ce == nil {
		return
	}
	fields := zapFields(args)
	fields = append(fields, traceFields(ctx)...)
	ce.Write(fields...)

	if fn := mirror.Load(); fn != nil {
		(*fn)(ctx, level, msg, args...)
	}
}

func traceFields(ctx context.Context) []zap.Field {
	if ctx == nil {
		return nil
	}
	spanCtx := trace.SpanContextFromContext(ctx)
	if !spanCtx.IsValid() {
		return nil
	}
	return []zap.Field{
		zap.String("trace_id", spanCtx.TraceID().String()),
		zap.String("span_id", spanCtx.SpanID().String()),
	}
}

func zapFields(args []any) []zap.Field {
	if len(args) == 0 {
		return nil
	}

	out := make([]zap.Field, 0, (len(args)+1)/2)
	for i := 0; i < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok || key == "" {
			key = "arg"
		}

		if i+1 >= len(args) {
			out = append(out, zap.Any(key, nil))
			break
		}

		value := args[i+1]
		if err, ok := value.(error); ok {
			out = append(out, zap.NamedError(key, err))
			continue
		}
		out = append(out, zap.Any(key, value))
	}

	return out
}
