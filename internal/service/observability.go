package service

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"time"
)

// UseCaseEvent describes one finished service use case.
type UseCaseEvent struct {
	Name      string
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
	StartedAt time.Time
}

// UseCaseObserver receives use-case execution events.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver ignores all events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

// LogUseCaseObserver logs each event through the logger returned by Logger
// at event time. Services are wired before flags pick the log level and
// destination, so the logger is looked up late.
type LogUseCaseObserver struct {
	Logger func() *slog.Logger
}

// NewLogUseCaseObserver returns an observer logging through logger.
func NewLogUseCaseObserver(logger func() *slog.Logger) *LogUseCaseObserver {
	return &LogUseCaseObserver{Logger: logger}
}

func (o *LogUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	if o == nil || o.Logger == nil {
		return
	}
	logger := o.Logger()
	if logger == nil {
		return
	}

	attrs := make([]slog.Attr, 0, 4+len(event.Fields))
	attrs = append(attrs,
		slog.String("use_case", event.Name),
		slog.Int64("duration_ms", event.Duration.Milliseconds()),
		slog.Bool("success", event.Success),
	)
	for _, k := range slices.Sorted(maps.Keys(event.Fields)) {
		attrs = append(attrs, slog.Any(k, event.Fields[k]))
	}

	level := slog.LevelInfo
	if event.Err != nil {
		level = slog.LevelError
		attrs = append(attrs, slog.String("error", event.Err.Error()))
	}
	logger.LogAttrs(ctx, level, "service_use_case", attrs...)
}

func useCaseObserverOrNoop(observers []UseCaseObserver) UseCaseObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopUseCaseObserver{}
}
