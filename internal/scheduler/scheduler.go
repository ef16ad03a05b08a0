package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	portssvc "github.com/patrimonia/asset_inventory_app/internal/core/ports/services"
	"github.com/patrimonia/asset_inventory_app/internal/middleware"
)

// Scheduler triggers the monthly depreciation run automatically.
type Scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger
}

// New builds a scheduler that runs the depreciation engine for the previous
// calendar month on the given cron spec. An empty spec disables it.
func New(spec string, depreciationService portssvc.DepreciationSvcFacade, logger *slog.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:   cron.New(),
		logger: logger,
	}

	if spec == "" {
		logger.Info("Depreciation scheduler disabled")
		return s, nil
	}

	_, err := s.cron.AddFunc(spec, func() {
		runPreviousMonth(depreciationService, logger)
	})
	if err != nil {
		return nil, fmt.Errorf("invalid depreciation schedule %q: %w", spec, err)
	}

	logger.Info("Depreciation scheduler registered", slog.String("schedule", spec))
	return s, nil
}

// Start begins dispatching scheduled runs in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts scheduling and waits for an in-flight run to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func runPreviousMonth(depreciationService portssvc.DepreciationSvcFacade, logger *slog.Logger) {
	// The schedule fires early in a month, closing the month before it.
	now := time.Now().UTC()
	prev := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	month, year := int(prev.Month()), prev.Year()

	runLogger := logger.With(slog.Int("month", month), slog.Int("year", year))
	ctx := middleware.WithLogger(context.Background(), runLogger)

	runLogger.Info("Scheduled depreciation run starting")
	summary, err := depreciationService.Run(ctx, month, year, "")
	if err != nil {
		runLogger.Error("Scheduled depreciation run failed", slog.String("error", err.Error()))
		return
	}

	runLogger.Info("Scheduled depreciation run finished",
		slog.Int("computed", summary.ComputedCount),
		slog.Int("skipped", summary.SkippedCount),
		slog.Int("errors", len(summary.Errors)),
	)
}
