package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/hieuluvjingliu/GardenBredN/internal/domain"
)

// Inventory defines the interface for seed and pot persistence
type Inventory interface {
	ListSeeds(ctx context.Context, playerID uuid.UUID) ([]domain.Seed, error)
	GetSeed(ctx context.Context, seedID uuid.UUID) (*domain.Seed, error)
	ListPots(ctx context.Context, playerID uuid.UUID) ([]domain.Pot, error)

	// CountMatureSeedsByClass aggregates a player's mature seeds per class.
	CountMatureSeedsByClass(ctx context.Context, playerID uuid.UUID) (map[string]int, error)

	BeginTx(ctx context.Context) (InventoryTx, error)
}

// InventoryTx defines the transactional operations for shop, sell and breed
type InventoryTx interface {
	Tx
	PlayerTx
	SeedTx

	InsertPot(ctx context.Context, pot domain.Pot) error
	UpsertCatalogPrice(ctx context.Context, class string, basePrice int) error
}

// Catalog defines read access to the dynamic class price catalog
type Catalog interface {
	GetPrice(ctx context.Context, class string) (int, error)
	ListPrices(ctx context.Context) (map[string]int, error)
}
