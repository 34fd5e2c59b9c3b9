package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hieuluvjingliu/GardenBredN/internal/database/postgres"
	"github.com/hieuluvjingliu/GardenBredN/internal/repository"
)

// Repositories holds all repository implementations used by the application.
// This provides a centralized location for repository initialization and
// makes dependency injection clearer.
type Repositories struct {
	Player    repository.Player
	Farm      repository.Farm
	Inventory repository.Inventory
	Catalog   repository.Catalog
	Market    repository.Market
	Gacha     repository.Gacha
}

// InitializeRepositories creates all repository implementations.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Player:    postgres.NewPlayerRepository(dbPool),
		Farm:      postgres.NewFarmRepository(dbPool),
		Inventory: postgres.NewInventoryRepository(dbPool),
		Catalog:   postgres.NewCatalogRepository(dbPool),
		Market:    postgres.NewMarketRepository(dbPool),
		Gacha:     postgres.NewGachaRepository(dbPool),
	}
}
