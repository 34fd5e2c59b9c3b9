package sse

import (
	"context"

	"github.com/hieuluvjingliu/GardenBredN/internal/logger"
	"github.com/hieuluvjingliu/GardenBredN/internal/metrics"
	"github.com/hieuluvjingliu/GardenBredN/internal/view"
)

// PushJob recomputes and pushes the full snapshot of every connected player.
// Scheduled at a fixed interval; delivery is best-effort, latest wins.
type PushJob struct {
	hub     *Hub
	viewSvc view.Service
}

// NewPushJob creates a new view push job
func NewPushJob(hub *Hub, viewSvc view.Service) *PushJob {
	return &PushJob{hub: hub, viewSvc: viewSvc}
}

// Process executes one push pass (implements worker.Job interface)
func (j *PushJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)

	for _, playerID := range j.hub.ConnectedPlayers() {
		v, err := j.viewSvc.Compute(ctx, playerID)
		if err != nil {
			// One broken snapshot must not stop the other players' pushes.
			log.Error("Failed to compute player view", "playerID", playerID, "error", err)
			continue
		}
		j.hub.SendToPlayer(playerID, EventTypeViewUpdate, v)
		metrics.ViewsPushed.Inc()
	}
	return nil
}
