package obs

import (
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu           sync.RWMutex
	sharedLogger *zap.SugaredLogger = zap.NewNop().Sugar()
)

// InitLogger installs a console logger writing to w. LOG_LEVEL overrides
// the given default level when it parses.
func InitLogger(w io.Writer, defaultLevel zapcore.Level) *zap.SugaredLogger {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "T",
		LevelKey:       "L",
		MessageKey:     "M",
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.0000"),
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	level := defaultLevel
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if parsedLevel, err := zapcore.ParseLevel(lvl); err == nil {
			level = parsedLevel
		}
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(w),
		level,
	)

	logger := zap.New(core).Sugar()
	SetLogger(logger)
	return logger
}

// SetLogger replaces the shared logger. Tests pass a zaptest logger.
func SetLogger(l *zap.SugaredLogger) {
	if l == nil {
		l = zap.NewNop().Sugar()
	}
	mu.Lock()
	sharedLogger = l
	mu.Unlock()
}

// Logger returns the shared logger. Until InitLogger or SetLogger is
// called it discards everything.
func Logger() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return sharedLogger
}

func SyncLogger() {
	_ = Logger().Sync()
}
