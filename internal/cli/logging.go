package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/msomdec/yatube/internal/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// setupLogging installs the default slog logger: human readable text on
// stdout plus JSON either to a rotating file or to errOut.
func setupLogging(cfg *config.Config, errOut io.Writer) io.Closer {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}

	var jsonOut io.Writer = errOut
	var closer io.Closer = nopCloser{}
	if cfg.Log.File != "" {
		lj := &lumberjack.Logger{
			Filename:   cfg.Log.File,
			MaxSize:    cfg.Log.MaxSizeMB, // megabytes
			MaxBackups: cfg.Log.MaxBackups,
			MaxAge:     cfg.Log.MaxAgeDays, // days
			Compress:   true,
		}
		jsonOut, closer = lj, lj
	}

	logger := slog.New(slog.NewMultiHandler(
		slog.NewTextHandler(os.Stdout, opts),
		slog.NewJSONHandler(jsonOut, opts),
	))
	slog.SetDefault(logger)
	return closer
}
