package logger

import (
	"context"
	"os"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"stock-news-alert/internal/trace"
)

// frames between the zap call in logWithTrace and the caller of Info/Warn/...
const baseSkip = 2

var (
	// Global logger instance
	globalLogger = zap.NewNop()
	// Whether caller information is attached to every entry
	detailedLogging bool
)

// LogConfig holds logging configuration
type LogConfig struct {
	Level           string // DEBUG, INFO, WARN, ERROR
	Format          string // json or console
	DetailedLogging bool   // Attach caller to every entry
}

// Init initializes the global logger from environment variables
func Init() error {
	return InitWithConfig(LoadConfigFromEnv())
}

// LoadConfigFromEnv loads logging configuration from environment variables
func LoadConfigFromEnv() LogConfig {
	return LogConfig{
		Level:           getEnvOrDefault("LOG_LEVEL", "INFO"),
		Format:          getEnvOrDefault("LOG_FORMAT", "json"),
		DetailedLogging: getEnvOrDefault("LOG_DETAILED", "false") == "true",
	}
}

// InitWithConfig builds the zap logger. Entries go to stderr so stdout only
// carries the job's own output.
func InitWithConfig(config LogConfig) error {
	detailedLogging = config.DetailedLogging

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(parseLogLevel(config.Level))
	zc.Encoding = "json"
	if strings.EqualFold(config.Format, "console") || strings.EqualFold(config.Format, "text") {
		zc.Encoding = "console"
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	zc.EncoderConfig.TimeKey = "time"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	zc.DisableCaller = !detailedLogging
	zc.DisableStacktrace = true
	zc.Sampling = nil

	l, err := zc.Build(zap.AddCallerSkip(baseSkip))
	if err != nil {
		return err
	}
	globalLogger = l
	return nil
}

// UseCore swaps the backing core, typically for a zaptest/observer core in
// tests, and returns a func restoring the previous logger.
func UseCore(core zapcore.Core) (restore func()) {
	prev := globalLogger
	globalLogger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(baseSkip))
	return func() { globalLogger = prev }
}

// Sync flushes buffered entries.
func Sync() {
	_ = globalLogger.Sync()
}

// parseLogLevel converts string log level to a zap level
func parseLogLevel(level string) zapcore.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return zapcore.DebugLevel
	case "INFO":
		return zapcore.InfoLevel
	case "WARN":
		return zapcore.WarnLevel
	case "ERROR":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// getEnvOrDefault gets environment variable or returns default value
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getTraceAttrs extracts trace ID and span ID from context for logging
func getTraceAttrs(ctx context.Context) []any {
	traceID, spanID, ok := trace.GetTraceFields(ctx)
	if !ok {
		return nil
	}
	return []any{"trace_id", traceID, "span_id", spanID}
}

func Debug(ctx context.Context, msg string, args ...any) {
	logWithTrace(ctx, zapcore.DebugLevel, msg, 0, args...)
}

func Info(ctx context.Context, msg string, args ...any) {
	logWithTrace(ctx, zapcore.InfoLevel, msg, 0, args...)
}

func Warn(ctx context.Context, msg string, args ...any) {
	logWithTrace(ctx, zapcore.WarnLevel, msg, 0, args...)
}

func Error(ctx context.Context, msg string, args ...any) {
	logWithTrace(ctx, zapcore.ErrorLevel, msg, 0, args...)
}

// ErrorWithErr logs an error message with an error object and marks the
// current span as failed
func ErrorWithErr(ctx context.Context, msg string, err error, args ...any) {
	trace.RecordError(ctx, err)
	logWithTrace(ctx, zapcore.ErrorLevel, msg, 0, append([]any{"error", err}, args...)...)
}

// The *Skip variants are for middleware: skip is the number of extra frames
// between the real caller and the logging call.

func DebugSkip(ctx context.Context, skip int, msg string, args ...any) {
	logWithTrace(ctx, zapcore.DebugLevel, msg, skip, args...)
}

func InfoSkip(ctx context.Context, skip int, msg string, args ...any) {
	logWithTrace(ctx, zapcore.InfoLevel, msg, skip, args...)
}

func WarnSkip(ctx context.Context, skip int, msg string, args ...any) {
	logWithTrace(ctx, zapcore.WarnLevel, msg, skip, args...)
}

func ErrorWithErrSkip(ctx context.Context, skip int, msg string, err error, args ...any) {
	trace.RecordError(ctx, err)
	logWithTrace(ctx, zapcore.ErrorLevel, msg, skip, append([]any{"error", err}, args...)...)
}

func logWithTrace(ctx context.Context, level zapcore.Level, msg string, skip int, args ...any) {
	if !globalLogger.Core().Enabled(level) {
		return
	}
	if traceAttrs := getTraceAttrs(ctx); traceAttrs != nil {
		args = append(traceAttrs, args...)
	}

	l := globalLogger
	if skip > 0 {
		l = l.WithOptions(zap.AddCallerSkip(skip))
	}
	s := l.Sugar()

	switch level {
	case zapcore.DebugLevel:
		s.Debugw(msg, args...)
	case zapcore.InfoLevel:
		s.Infow(msg, args...)
	case zapcore.WarnLevel:
		s.Warnw(msg, args...)
	default:
		s.Errorw(msg, args...)
	}
}

// OperationTimer helps measure operation duration with a span
type OperationTimer struct {
	ctx    context.Context
	end    func()
	start  time.Time
	fields []any
}

// StartOperation starts timing an operation with a span
func StartOperation(ctx context.Context, operation string, fields ...any) *OperationTimer {
	ctx, span := trace.StartSpan(ctx, operation)
	DebugSkip(ctx, 1, "Operation started", append([]any{"operation", operation}, fields...)...)
	return &OperationTimer{
		ctx:    ctx,
		end:    func() { span.End() },
		start:  time.Now(),
		fields: append([]any{"operation", operation}, fields...),
	}
}

// End completes the operation timer and logs the duration
func (ot *OperationTimer) End(additionalFields ...any) {
	defer ot.end()
	fields := append(append([]any{}, ot.fields...), "duration_ms", time.Since(ot.start).Milliseconds())
	DebugSkip(ot.ctx, 1, "Operation completed", append(fields, additionalFields...)...)
}

// EndWithError completes the operation timer with an error
func (ot *OperationTimer) EndWithError(err error, additionalFields ...any) {
	defer ot.end()
	fields := append(append([]any{}, ot.fields...), "duration_ms", time.Since(ot.start).Milliseconds())
	ErrorWithErrSkip(ot.ctx, 1, "Operation failed", err, append(fields, additionalFields...)...)
}

// GetContext returns the context with the span
func (ot *OperationTimer) GetContext() context.Context {
	return ot.ctx
}

// Move logs the measured close-to-close move of a symbol (always at INFO)
func Move(ctx context.Context, symbol string, pct, threshold float64, alerted bool, fields ...any) {
	trace.AddEvent(ctx, "price_move",
		attribute.String("symbol", symbol),
		attribute.Float64("percent", pct),
		attribute.Float64("threshold", threshold),
		attribute.Bool("alerted", alerted),
	)

	allFields := append([]any{
		"type", "MOVE",
		"symbol", symbol,
		"percent", pct,
		"threshold", threshold,
		"alerted", alerted,
	}, fields...)
	logWithTrace(ctx, zapcore.InfoLevel, "Price move measured", 0, allFields...)
}

// Alert logs a delivered alert message
func Alert(ctx context.Context, symbol, sid, status string, fields ...any) {
	trace.AddEvent(ctx, "alert_delivered",
		attribute.String("symbol", symbol),
		attribute.String("sid", sid),
		attribute.String("status", status),
	)

	allFields := append([]any{
		"type", "ALERT",
		"symbol", symbol,
		"sid", sid,
		"status", status,
	}, fields...)
	logWithTrace(ctx, zapcore.InfoLevel, "Alert delivered", 0, allFields...)
}

// IsDebugEnabled returns whether debug entries are written
func IsDebugEnabled() bool {
	return globalLogger.Core().Enabled(zapcore.DebugLevel)
}
