package log_test

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/archetype/log"
)

func Example_basic() {
	logger := log.Make(os.Stdout, log.WithTimeLayout("none"))
	logger.Info("application started", slog.String("version", "1.0.0"))
	// Output: level=INFO msg="application started" version=1.0.0
}

func Example_levels() {
	logger := log.Make(os.Stdout, log.WithLevel(log.LevelWarn), log.WithTimeLayout("none"))

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warning message", slog.String("key", "value"))
	// Output: level=WARN msg="warning message" key=value
}

func Example_jsonFormat() {
	logger := log.Make(os.Stdout,
		log.WithFormat(log.FormatJSON),
		log.WithTimeLayout("none"))

	logger.With(slog.String("request_id", "12345")).Info("processing request")
	// Output: {"level":"INFO","msg":"processing request","request_id":"12345"}
}

func Example_withContext() {
	type requestIDKey struct{}

	ctx := context.WithValue(context.Background(), requestIDKey{}, "req-789")

	logger := log.Make(os.Stdout, log.WithLevel(log.LevelDebug))
	logger.DebugContext(ctx, "request details", slog.String("method", "POST"))
}
