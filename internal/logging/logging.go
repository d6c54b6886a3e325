package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// ParseLevel maps a level name to a slog.Level. Unknown names are info.
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New builds a text logger writing to outW and, when file is set, to a
// rotating log file as well. The returned closer releases the file.
func New(levelStr, file string, outW io.Writer) (*slog.Logger, io.Closer, error) {
	w := outW
	var closer io.Closer = nopCloser{}
	if file != "" {
		if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
			return nil, nil, err
		}
		logWriter := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    5,
			MaxBackups: 3,
			MaxAge:     28,
			Compress:   true,
		}
		w = io.MultiWriter(outW, logWriter)
		closer = logWriter
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(levelStr)})
	return slog.New(handler), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
