package rcore

import (
	"context"
	"log/slog"
)

// LevelTrace is used for high frequency diagnostics that are
// usually not of interest, even when debugging.
const LevelTrace = slog.LevelDebug - 4

func trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}
