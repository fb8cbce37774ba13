// Package logger writes structured debug logs to a file, since the
// terminal UI owns stdout.
package logger

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/palemoky/kali-teeri/internal/config"
)

type loggerKey struct{}

// Logger is a file-backed sugared logger.
type Logger struct {
	*zap.SugaredLogger

	file *os.File
	path string
}

// New opens (or creates) the log file described by cfg and returns a logger
// writing JSON lines to it. The file is rotated aside when it is larger than
// cfg.MaxSizeMB.
func New(cfg config.LogConfig) (*Logger, error) {
	dir := cfg.Dir
	if dir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dir = filepath.Join(homeDir, ".kali-teeri")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	path := filepath.Join(dir, cfg.File)
	if err := rotate(path, int64(cfg.MaxSizeMB)*1024*1024); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.MessageKey = "message"
	encCfg.LevelKey = "severity"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(f), level)
	zl := zap.New(core, zap.AddCaller()).Named("kali")

	return &Logger{SugaredLogger: zl.Sugar(), file: f, path: path}, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}

// Path returns the log file path, or "" for a Nop logger.
func (l *Logger) Path() string {
	return l.path
}

// Close flushes and closes the log file.
func (l *Logger) Close() error {
	_ = l.Sync()
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// LogPanic records a recovered panic with its stack.
func (l *Logger) LogPanic(r any) {
	l.Errorw("panic", "recovered", r, "stack", string(debug.Stack()))
}

func rotate(path string, maxBytes int64) error {
	info, err := os.Stat(path)
	if err != nil || maxBytes <= 0 || info.Size() <= maxBytes {
		return nil
	}
	backup := fmt.Sprintf("%s.%d", path, time.Now().Unix())
	if err := os.Rename(path, backup); err != nil {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}
	return nil
}

// WithLogger stores l in ctx.
func WithLogger(ctx context.Context, l *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// FromContext returns the logger stored in ctx, or a no-op logger.
func FromContext(ctx context.Context) *zap.SugaredLogger {
	if l, ok := ctx.Value(loggerKey{}).(*zap.SugaredLogger); ok {
		return l
	}
	return zap.NewNop().Sugar()
}
