package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/hieuluvjingliu/GardenBredN/internal/domain"
)

// Tx defines the interface for transactional operations
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// PlayerTx groups the coin mutation methods shared by every transactional path
// that pays or credits a player. The read locks the player row so concurrent
// spends cannot double-apply.
type PlayerTx interface {
	GetPlayerForUpdate(ctx context.Context, playerID uuid.UUID) (*domain.Player, error)
	UpdatePlayerCoins(ctx context.Context, playerID uuid.UUID, coins int64) error
}

// SeedTx groups the seed mutation methods shared by transactional paths that
// consume or produce inventory seeds.
type SeedTx interface {
	GetSeedForUpdate(ctx context.Context, seedID uuid.UUID) (*domain.Seed, error)
	InsertSeed(ctx context.Context, seed domain.Seed) error
	DeleteSeed(ctx context.Context, seedID uuid.UUID) (bool, error)
}
