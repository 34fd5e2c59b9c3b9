package bootstrap

import (
	"context"
	"log/slog"

	"github.com/hieuluvjingliu/GardenBredN/internal/database"
	"github.com/hieuluvjingliu/GardenBredN/internal/scheduler"
	"github.com/hieuluvjingliu/GardenBredN/internal/server"
	"github.com/hieuluvjingliu/GardenBredN/internal/sse"
	"github.com/hieuluvjingliu/GardenBredN/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server      *server.Server
	Scheduler   *scheduler.Scheduler
	WorkerPool  *worker.Pool
	Hub         *sse.Hub
	CancelWatch context.CancelFunc
	DBPool      database.Pool
}

// GracefulShutdown stops all application components in dependency order:
// 1. HTTP server (stop accepting new requests)
// 2. Scheduler (stop enqueueing periodic jobs)
// 3. Worker pool (drain and finish in-flight jobs)
// 4. SSE hub (close client streams)
// 5. Config watcher and database pool
func GracefulShutdown(components ShutdownComponents) {
	slog.Info(LogMsgShutdownStarted)

	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerStopFailed, "error", err)
		}
	}

	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}

	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
	}

	if components.Hub != nil {
		components.Hub.Stop()
	}

	if components.CancelWatch != nil {
		components.CancelWatch()
	}

	if components.DBPool != nil {
		components.DBPool.Close()
	}

	slog.Info(LogMsgShutdownComplete)
}
