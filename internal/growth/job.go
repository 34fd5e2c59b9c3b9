package growth

import (
	"context"
	"time"

	"github.com/hieuluvjingliu/GardenBredN/internal/domain"
	"github.com/hieuluvjingliu/GardenBredN/internal/logger"
	"github.com/hieuluvjingliu/GardenBredN/internal/metrics"
	"github.com/hieuluvjingliu/GardenBredN/internal/repository"
)

// Job is the periodic growth pass. It scans every planted or growing plot and
// advances the ones whose transition time has passed. Each advance is a
// conditional stage update, so a pass that races a harvest or another pass
// simply affects zero rows.
type Job struct {
	repo repository.Farm
	now  func() time.Time
}

// NewJob creates a new growth pass job
func NewJob(repo repository.Farm) *Job {
	return &Job{repo: repo, now: time.Now}
}

// Process executes one growth pass (implements worker.Job interface)
func (j *Job) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)

	plots, err := j.repo.ListActivePlots(ctx)
	if err != nil {
		metrics.GrowthPassErrors.Inc()
		log.Error("Growth pass failed to list active plots", "error", err)
		return err
	}

	now := j.now()
	advanced := 0
	for _, plot := range plots {
		from, to, due := nextTransition(&plot, now)
		if !due {
			continue
		}

		changed, err := j.repo.AdvancePlotStage(ctx, plot.ID, from, to)
		if err != nil {
			// One broken plot must not stall the rest of the pass.
			metrics.GrowthPassErrors.Inc()
			log.Error("Growth pass failed to advance plot",
				"plotID", plot.ID, "from", from, "to", to, "error", err)
			continue
		}
		if changed {
			metrics.PlotStageTransitions.WithLabelValues(string(to)).Inc()
			advanced++
		}
	}

	if advanced > 0 {
		log.Info("Growth pass advanced plots", "scanned", len(plots), "advanced", advanced)
	}
	return nil
}

// nextTransition returns the stage move a plot is due for at the given
// instant. Planted plots past their halfway point jump straight to mature
// when the full duration has also elapsed, so a stalled pass never leaves a
// ripe plot stuck in growing.
func nextTransition(plot *domain.Plot, now time.Time) (from, to domain.Stage, due bool) {
	if plot.MatureAt == nil {
		return "", "", false
	}

	switch plot.Stage {
	case domain.StagePlanted:
		if !now.Before(*plot.MatureAt) {
			return domain.StagePlanted, domain.StageMature, true
		}
		if !now.Before(plot.GrowingAt()) {
			return domain.StagePlanted, domain.StageGrowing, true
		}
	case domain.StageGrowing:
		if !now.Before(*plot.MatureAt) {
			return domain.StageGrowing, domain.StageMature, true
		}
	}
	return "", "", false
}
