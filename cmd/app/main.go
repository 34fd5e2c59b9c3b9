package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hieuluvjingliu/GardenBredN/internal/bootstrap"
	"github.com/hieuluvjingliu/GardenBredN/internal/config"
	"github.com/hieuluvjingliu/GardenBredN/internal/database"
	"github.com/hieuluvjingliu/GardenBredN/internal/event"
	"github.com/hieuluvjingliu/GardenBredN/internal/growth"
	"github.com/hieuluvjingliu/GardenBredN/internal/scheduler"
	"github.com/hieuluvjingliu/GardenBredN/internal/server"
	"github.com/hieuluvjingliu/GardenBredN/internal/sse"
	"github.com/hieuluvjingliu/GardenBredN/internal/worker"
)

const (
	dbMaxConns = 20
	dbMaxIdle  = 5 * time.Minute
	dbMaxLife  = 30 * time.Minute
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	dbPool, err := database.NewPool(cfg.GetDBConnString(), dbMaxConns, dbMaxIdle, dbMaxLife)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	repos := bootstrap.InitializeRepositories(dbPool)
	eventBus := event.NewMemoryBus()

	services, weights := bootstrap.InitializeServices(cfg, repos, eventBus)

	// Hot-reload the class weight table on file changes
	watchCtx, cancelWatch := context.WithCancel(context.Background())
	go func() {
		if err := weights.Watch(watchCtx); err != nil && watchCtx.Err() == nil {
			slog.Error("Class weight watcher stopped", "error", err)
		}
	}()

	hub := sse.NewHub()
	hub.Start()

	bootstrap.RegisterViewPusher(eventBus, hub, services.View)

	// Periodic jobs: plot growth pass and live view push
	pool := worker.NewPool(bootstrap.DefaultPoolWorkers, bootstrap.DefaultPoolQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	sched.Schedule(cfg.GrowthTickInterval, growth.NewJob(repos.Farm))
	sched.Schedule(cfg.PushInterval, sse.NewPushJob(hub, services.View))

	srv := server.NewServer(cfg.Port, cfg.APIKey, nil, dbPool, services, hub)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		slog.Info("Received shutdown signal", "signal", sig)
	case err := <-errCh:
		slog.Error("Server exited", "error", err)
	}

	bootstrap.GracefulShutdown(bootstrap.ShutdownComponents{
		Server:      srv,
		Scheduler:   sched,
		WorkerPool:  pool,
		Hub:         hub,
		CancelWatch: cancelWatch,
		DBPool:      dbPool,
	})
}
