package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hieuluvjingliu/GardenBredN/internal/domain"
	"github.com/hieuluvjingliu/GardenBredN/internal/repository"
)

// InventoryRepository implements the inventory repository for PostgreSQL
type InventoryRepository struct {
	db *pgxpool.Pool
}

// NewInventoryRepository creates a new inventory repository
func NewInventoryRepository(db *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// ListSeeds returns a player's inventory seeds
func (r *InventoryRepository) ListSeeds(ctx context.Context, playerID uuid.UUID) ([]domain.Seed, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+seedColumns+" FROM seeds WHERE player_id = $1", playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list seeds: %w", err)
	}
	defer rows.Close()

	var seeds []domain.Seed
	for rows.Next() {
		s, err := scanSeed(rows)
		if err != nil {
			return nil, err
		}
		seeds = append(seeds, *s)
	}
	return seeds, rows.Err()
}

// GetSeed retrieves a single seed
func (r *InventoryRepository) GetSeed(ctx context.Context, seedID uuid.UUID) (*domain.Seed, error) {
	row := r.db.QueryRow(ctx,
		"SELECT "+seedColumns+" FROM seeds WHERE seed_id = $1", seedID)
	seed, err := scanSeed(row)
	if err != nil {
		if errors.Is(err, domain.ErrSeedNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get seed: %w", err)
	}
	return seed, nil
}

// ListPots returns a player's unplaced pots
func (r *InventoryRepository) ListPots(ctx context.Context, playerID uuid.UUID) ([]domain.Pot, error) {
	rows, err := r.db.Query(ctx,
		"SELECT pot_id, player_id, pot_type FROM pots WHERE player_id = $1", playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pots: %w", err)
	}
	defer rows.Close()

	var pots []domain.Pot
	for rows.Next() {
		var p domain.Pot
		if err := rows.Scan(&p.ID, &p.PlayerID, &p.Type); err != nil {
			return nil, err
		}
		pots = append(pots, p)
	}
	return pots, rows.Err()
}

// CountMatureSeedsByClass aggregates mature seeds per class for one player
func (r *InventoryRepository) CountMatureSeedsByClass(ctx context.Context, playerID uuid.UUID) (map[string]int, error) {
	rows, err := r.db.Query(ctx,
		`SELECT class, COUNT(*) FROM seeds
		 WHERE player_id = $1 AND is_mature
		 GROUP BY class`, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count mature seeds: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var class string
		var count int
		if err := rows.Scan(&class, &count); err != nil {
			return nil, err
		}
		counts[class] = count
	}
	return counts, rows.Err()
}

// BeginTx starts a transaction and returns an InventoryTx
func (r *InventoryRepository) BeginTx(ctx context.Context) (repository.InventoryTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin inventory transaction: %w", err)
	}
	return &inventoryTx{tx: tx}, nil
}

// inventoryTx implements repository.InventoryTx
type inventoryTx struct {
	tx pgx.Tx
}

func (t *inventoryTx) Commit(ctx context.Context) error   { return t.tx.Commit(ctx) }
func (t *inventoryTx) Rollback(ctx context.Context) error { return t.tx.Rollback(ctx) }

func (t *inventoryTx) GetPlayerForUpdate(ctx context.Context, playerID uuid.UUID) (*domain.Player, error) {
	return getPlayerForUpdate(ctx, t.tx, playerID)
}

func (t *inventoryTx) UpdatePlayerCoins(ctx context.Context, playerID uuid.UUID, coins int64) error {
	return updatePlayerCoins(ctx, t.tx, playerID, coins)
}

func (t *inventoryTx) GetSeedForUpdate(ctx context.Context, seedID uuid.UUID) (*domain.Seed, error) {
	return getSeedForUpdate(ctx, t.tx, seedID)
}

func (t *inventoryTx) InsertSeed(ctx context.Context, seed domain.Seed) error {
	return insertSeed(ctx, t.tx, seed)
}

func (t *inventoryTx) DeleteSeed(ctx context.Context, seedID uuid.UUID) (bool, error) {
	return deleteSeed(ctx, t.tx, seedID)
}

func (t *inventoryTx) InsertPot(ctx context.Context, pot domain.Pot) error {
	id := pot.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	_, err := t.tx.Exec(ctx,
		"INSERT INTO pots (pot_id, player_id, pot_type) VALUES ($1, $2, $3)",
		id, pot.PlayerID, pot.Type)
	if err != nil {
		return fmt.Errorf("failed to insert pot: %w", err)
	}
	return nil
}

func (t *inventoryTx) UpsertCatalogPrice(ctx context.Context, class string, basePrice int) error {
	_, err := t.tx.Exec(ctx,
		`INSERT INTO price_catalog (class, base_price) VALUES ($1, $2)
		 ON CONFLICT (class) DO UPDATE SET base_price = EXCLUDED.base_price`,
		class, basePrice)
	if err != nil {
		return fmt.Errorf("failed to upsert catalog price: %w", err)
	}
	return nil
}

// CatalogRepository implements read access to the price catalog
type CatalogRepository struct {
	db *pgxpool.Pool
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// GetPrice returns the catalog base price for a class
func (r *CatalogRepository) GetPrice(ctx context.Context, class string) (int, error) {
	var price int
	err := r.db.QueryRow(ctx,
		"SELECT base_price FROM price_catalog WHERE class = $1", class).Scan(&price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrClassNotFound
		}
		return 0, fmt.Errorf("failed to get catalog price: %w", err)
	}
	return price, nil
}

// ListPrices returns the full catalog
func (r *CatalogRepository) ListPrices(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.Query(ctx, "SELECT class, base_price FROM price_catalog")
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog prices: %w", err)
	}
	defer rows.Close()

	prices := make(map[string]int)
	for rows.Next() {
		var class string
		var price int
		if err := rows.Scan(&class, &price); err != nil {
			return nil, err
		}
		prices[class] = price
	}
	return prices, rows.Err()
}
