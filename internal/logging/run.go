package logging

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// NewRunID generates a random run ID.
func NewRunID() string {
	return uuid.NewString()
}

// StartRun attaches a run ID to ctx unless one is already present.
func StartRun(ctx context.Context) (context.Context, string) {
	if runID := GetRunID(ctx); runID != "" {
		return ctx, runID
	}
	runID := NewRunID()
	return WithRunID(ctx, runID), runID
}

// Stage runs fn and logs its duration at debug level. A failing stage is
// logged by the caller, which knows the input it was working on.
func Stage(ctx context.Context, name string, fn func() error) error {
	start := time.Now()
	err := fn()
	LoggerFromContext(ctx).Debug("stage",
		"name", name,
		"duration_ms", time.Since(start).Milliseconds(),
		"ok", err == nil,
	)
	return err
}
