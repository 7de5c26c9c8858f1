package logging

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger    = zap.NewNop().Sugar()
	debugMode bool
)

// SetupLogging configures logging.
// If filename is empty, logging is disabled (except log.Fatal/panic).
// If filename is set, logs go to that file and Bubble Tea logs are enabled too.
func SetupLogging(filename string, level string) (cleanup func(), err error) {
	if filename == "" {
		logger = zap.NewNop().Sugar()
		debugMode = false
		return func() {}, nil
	}

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	lvl := parseLevel(level)
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(f), lvl)
	base := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	logger = base.Sugar()
	debugMode = lvl == zapcore.DebugLevel

	// Bubble Tea keeps its own logger; point it at the same file
	tf, err := tea.LogToFile(filename, "tea")
	if err != nil {
		f.Close()
		return nil, err
	}

	cleanup = func() {
		_ = base.Sync()
		tf.Close()
		f.Close()
	}
	return cleanup, nil
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.DebugLevel
	}
}

func IsDebugMode() bool {
	return debugMode
}

func Debugf(format string, args ...any) {
	logger.Debugf(format, args...)
}

func Infof(format string, args ...any) {
	logger.Infof(format, args...)
}

func Warnf(format string, args ...any) {
	logger.Warnf(format, args...)
}

func Errorf(format string, args ...any) {
	logger.Errorf(format, args...)
}
