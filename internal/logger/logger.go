package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

func (l Level) zapLevel() zapcore.Level {
	switch l {
	case DEBUG:
		return zapcore.DebugLevel
	case WARN:
		return zapcore.WarnLevel
	case ERROR:
		return zapcore.ErrorLevel
	}
	return zapcore.InfoLevel
}

func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return DEBUG, nil
	case "info", "":
		return INFO, nil
	case "warn", "warning":
		return WARN, nil
	case "error":
		return ERROR, nil
	}
	return INFO, fmt.Errorf("unknown log level %q", s)
}

// Config is the `log` block of the config file.
type Config struct {
	Level string `yaml:"level"`
	// Format is "console" or "json".
	Format string `yaml:"format"`
	// OutputFile is a path, or "stdout"/"stderr".
	OutputFile string `yaml:"output_file"`
}

type Logger struct {
	level  Level
	logger *zap.SugaredLogger
	closer io.Closer
}

func New(out io.Writer, level Level) *Logger {
	return newLogger(zapcore.AddSync(out), "console", level)
}

// FromConfig builds a logger from the config file settings.
func FromConfig(cfg Config) (*Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	ws, closer, err := writeSyncer(cfg.OutputFile)
	if err != nil {
		return nil, err
	}
	l := newLogger(ws, cfg.Format, level)
	l.closer = closer
	return l, nil
}

// Nop discards everything.
func Nop() *Logger {
	return &Logger{
		level:  ERROR + 1,
		logger: zap.NewNop().Sugar(),
	}
}

func newLogger(ws zapcore.WriteSyncer, format string, level Level) *Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	var enc zapcore.Encoder
	if strings.ToLower(format) == "json" {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, ws, level.zapLevel())
	return &Logger{
		level:  level,
		logger: zap.New(core).Sugar(),
	}
}

func writeSyncer(outputFile string) (zapcore.WriteSyncer, io.Closer, error) {
	switch strings.ToLower(outputFile) {
	case "stdout":
		return zapcore.AddSync(os.Stdout), nil, nil
	case "stderr", "":
		return zapcore.AddSync(os.Stderr), nil, nil
	}

	f, err := os.OpenFile(outputFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0666)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", outputFile, err)
	}
	return zapcore.AddSync(f), f, nil
}

// With returns a child logger carrying key/value context.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		level:  l.level,
		logger: l.logger.With(args...),
	}
}

func (l *Logger) logf(level Level, format string, args ...any) {
	if level < l.level {
		return
	}
	switch level {
	case DEBUG:
		l.logger.Debugf(format, args...)
	case INFO:
		l.logger.Infof(format, args...)
	case WARN:
		l.logger.Warnf(format, args...)
	default:
		l.logger.Errorf(format, args...)
	}
}

func (l *Logger) Debugf(format string, args ...any) {
	l.logf(DEBUG, format, args...)
}

func (l *Logger) Infof(format string, args ...any) {
	l.logf(INFO, format, args...)
}

func (l *Logger) Warnf(format string, args ...any) {
	l.logf(WARN, format, args...)
}

func (l *Logger) Errorf(format string, args ...any) {
	l.logf(ERROR, format, args...)
}

func (l *Logger) Sync() error {
	return l.logger.Sync()
}

// Close flushes and releases the log file, if the logger owns one.
func (l *Logger) Close() error {
	_ = l.logger.Sync()
	if l.closer == nil {
		return nil
	}
	err := l.closer.Close()
	l.closer = nil
	return err
}
