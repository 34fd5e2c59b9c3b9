package bootstrap

import "time"

// Worker pool sizing
const (
	DefaultPoolWorkers   = 4
	DefaultPoolQueueSize = 64
)

// Log file retention
const (
	LogFilesKept      = 9
	LogDirPermission  = 0755
	LogFilePermission = 0666
)

// Shutdown timeout for in-flight HTTP requests
const ShutdownTimeout = 10 * time.Second

// Log messages
const (
	LogMsgLoggingInitialized   = "Logging initialized"
	LogMsgStartingApplication  = "Starting garden server"
	LogMsgConfigurationLoaded  = "Configuration loaded"
	LogMsgViewPusherRegistered = "Live view pusher subscribed to event bus"
	LogMsgClassWeightsFallback = "Class weights file unavailable, using defaults"
	LogMsgShutdownStarted      = "Graceful shutdown started"
	LogMsgShutdownComplete     = "Graceful shutdown complete"
	LogMsgServerStopFailed     = "Failed to stop HTTP server cleanly"
)
