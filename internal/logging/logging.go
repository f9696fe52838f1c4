package logging

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

var once sync.Once

// Init installs a JSON slog handler writing to stdout and a size-rotated
// file. Safe to call more than once; only the first call takes effect.
func Init(logPath string) {
	once.Do(func() {
		rotator := &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    50,
			MaxBackups: 5,
			MaxAge:     28,
			Compress:   true,
		}

		handler := slog.NewJSONHandler(io.MultiWriter(os.Stdout, rotator), &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
		slog.SetDefault(slog.New(handler))
	})
}
