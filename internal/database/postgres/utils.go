package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/hieuluvjingliu/GardenBredN/internal/domain"
	"github.com/hieuluvjingliu/GardenBredN/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}

// ---- Common Helper Functions ----

const (
	playerColumns  = "player_id, username, coins, created_at, updated_at"
	floorColumns   = "floor_id, player_id, ordinal, trap_count, created_at"
	plotColumns    = "plot_id, floor_id, slot, pot_type, seed_class, mutation, base_price, planted_at, mature_at, stage, locked"
	seedColumns    = "seed_id, player_id, class, base_price, mutation, is_mature"
	listingColumns = "listing_id, seller_id, class, base_price, mutation, ask_price, status, created_at, sold_at"

	// plot columns qualified for joins against floors
	plotColumnsPrefixed = "p.plot_id, p.floor_id, p.slot, p.pot_type, p.seed_class, p.mutation, p.base_price, p.planted_at, p.mature_at, p.stage, p.locked"
)

func scanPlayer(row pgx.Row) (*domain.Player, error) {
	var p domain.Player
	err := row.Scan(&p.ID, &p.Username, &p.Coins, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, err
	}
	return &p, nil
}

func scanFloor(row pgx.Row) (*domain.Floor, error) {
	var f domain.Floor
	err := row.Scan(&f.ID, &f.PlayerID, &f.Ordinal, &f.TrapCount, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFloorNotFound
		}
		return nil, err
	}
	return &f, nil
}

func scanPlot(row pgx.Row) (*domain.Plot, error) {
	var p domain.Plot
	var plantedAt, matureAt *time.Time
	err := row.Scan(&p.ID, &p.FloorID, &p.Slot, &p.PotType, &p.SeedClass, &p.Mutation,
		&p.BasePrice, &plantedAt, &matureAt, &p.Stage, &p.Locked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlotNotFound
		}
		return nil, err
	}
	p.PlantedAt = plantedAt
	p.MatureAt = matureAt
	return &p, nil
}

func scanSeed(row pgx.Row) (*domain.Seed, error) {
	var s domain.Seed
	err := row.Scan(&s.ID, &s.PlayerID, &s.Class, &s.BasePrice, &s.Mutation, &s.IsMature)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSeedNotFound
		}
		return nil, err
	}
	return &s, nil
}

func scanListing(row pgx.Row) (*domain.MarketListing, error) {
	var l domain.MarketListing
	var soldAt *time.Time
	err := row.Scan(&l.ID, &l.SellerID, &l.Class, &l.BasePrice, &l.Mutation,
		&l.AskPrice, &l.Status, &l.CreatedAt, &soldAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrListingNotFound
		}
		return nil, err
	}
	l.SoldAt = soldAt
	return &l, nil
}

func collectPlots(rows pgx.Rows) ([]domain.Plot, error) {
	defer rows.Close()
	var plots []domain.Plot
	for rows.Next() {
		p, err := scanPlot(rows)
		if err != nil {
			return nil, err
		}
		plots = append(plots, *p)
	}
	return plots, rows.Err()
}

// getPlayerForUpdate locks a player row inside a transaction.
func getPlayerForUpdate(ctx context.Context, tx pgx.Tx, playerID uuid.UUID) (*domain.Player, error) {
	row := tx.QueryRow(ctx,
		"SELECT "+playerColumns+" FROM players WHERE player_id = $1 FOR UPDATE", playerID)
	return scanPlayer(row)
}

// updatePlayerCoins writes a player's new balance.
func updatePlayerCoins(ctx context.Context, tx pgx.Tx, playerID uuid.UUID, coins int64) error {
	tag, err := tx.Exec(ctx,
		"UPDATE players SET coins = $2, updated_at = NOW() WHERE player_id = $1", playerID, coins)
	if err != nil {
		return fmt.Errorf("failed to update player coins: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlayerNotFound
	}
	return nil
}

// getSeedForUpdate locks a seed row inside a transaction.
func getSeedForUpdate(ctx context.Context, tx pgx.Tx, seedID uuid.UUID) (*domain.Seed, error) {
	row := tx.QueryRow(ctx,
		"SELECT "+seedColumns+" FROM seeds WHERE seed_id = $1 FOR UPDATE", seedID)
	return scanSeed(row)
}

// insertSeed writes a new inventory seed.
func insertSeed(ctx context.Context, tx pgx.Tx, seed domain.Seed) error {
	id := seed.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	_, err := tx.Exec(ctx,
		`INSERT INTO seeds (seed_id, player_id, class, base_price, mutation, is_mature)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		id, seed.PlayerID, seed.Class, seed.BasePrice, seed.Mutation, seed.IsMature)
	if err != nil {
		return fmt.Errorf("failed to insert seed: %w", err)
	}
	return nil
}

// deleteSeed removes a seed and reports whether a row existed.
func deleteSeed(ctx context.Context, tx pgx.Tx, seedID uuid.UUID) (bool, error) {
	tag, err := tx.Exec(ctx, "DELETE FROM seeds WHERE seed_id = $1", seedID)
	if err != nil {
		return false, fmt.Errorf("failed to delete seed: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
