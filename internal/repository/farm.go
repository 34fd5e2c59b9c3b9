package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/hieuluvjingliu/GardenBredN/internal/domain"
)

// Farm defines the interface for floor and plot persistence
type Farm interface {
	ListFloors(ctx context.Context, playerID uuid.UUID) ([]domain.Floor, error)
	GetFloorByOrdinal(ctx context.Context, playerID uuid.UUID, ordinal int) (*domain.Floor, error)
	ListPlots(ctx context.Context, floorID uuid.UUID) ([]domain.Plot, error)
	GetPlot(ctx context.Context, floorID uuid.UUID, slot int) (*domain.Plot, error)

	// ListActivePlots returns every plot currently in the planted or growing
	// stage, across all players. Used by the growth pass.
	ListActivePlots(ctx context.Context) ([]domain.Plot, error)

	// AdvancePlotStage moves a plot from one stage to the next. The update is
	// conditional on the current stage so a concurrent harvest or a repeated
	// pass is a no-op; it reports whether a row actually changed.
	AdvancePlotStage(ctx context.Context, plotID uuid.UUID, from, to domain.Stage) (bool, error)

	// SetPlotLock toggles the owner-only lock flag.
	SetPlotLock(ctx context.Context, plotID uuid.UUID, locked bool) error

	BeginTx(ctx context.Context) (FarmTx, error)
}

// FarmTx defines the transactional operations for plot and floor mutations
type FarmTx interface {
	Tx
	PlayerTx
	SeedTx

	GetFloorForUpdate(ctx context.Context, floorID uuid.UUID) (*domain.Floor, error)
	GetPlotForUpdate(ctx context.Context, floorID uuid.UUID, slot int) (*domain.Plot, error)
	GetPlotByIDForUpdate(ctx context.Context, plotID uuid.UUID) (*domain.Plot, error)
	UpdatePlot(ctx context.Context, plot domain.Plot) error

	// ListMaturePlotsForUpdate locks and returns the caller's unlocked mature
	// plots for harvest-all.
	ListMaturePlotsForUpdate(ctx context.Context, playerID uuid.UUID) ([]domain.Plot, error)

	CountFloors(ctx context.Context, playerID uuid.UUID) (int, error)

	// CreateFloor inserts a floor and its full set of empty plots.
	CreateFloor(ctx context.Context, playerID uuid.UUID, ordinal int) (*domain.Floor, error)

	// ListFloorsForUpdate locks all of a player's floors, ordered by ordinal.
	// Used by trap purchase to distribute units across capacity.
	ListFloorsForUpdate(ctx context.Context, playerID uuid.UUID) ([]domain.Floor, error)
	SetFloorTrapCount(ctx context.Context, floorID uuid.UUID, count int) error

	GetPotForUpdate(ctx context.Context, potID uuid.UUID) (*domain.Pot, error)
	DeletePot(ctx context.Context, potID uuid.UUID) (bool, error)
}
