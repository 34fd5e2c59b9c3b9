package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hieuluvjingliu/GardenBredN/internal/domain"
)

// PlayerRepository implements the player repository for PostgreSQL
type PlayerRepository struct {
	db *pgxpool.Pool
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// CreatePlayer inserts a new player with a zero balance. The caller is
// expected to follow up with the free first floor and gacha profile.
func (r *PlayerRepository) CreatePlayer(ctx context.Context, username string) (*domain.Player, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO players (username) VALUES ($1) RETURNING `+playerColumns, username)
	player, err := scanPlayer(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("%w: username %q taken", domain.ErrInvalidInput, username)
		}
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	return player, nil
}

// GetPlayerByID retrieves a player by id
func (r *PlayerRepository) GetPlayerByID(ctx context.Context, playerID uuid.UUID) (*domain.Player, error) {
	row := r.db.QueryRow(ctx,
		"SELECT "+playerColumns+" FROM players WHERE player_id = $1", playerID)
	player, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, domain.ErrPlayerNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return player, nil
}

// GetPlayerByUsername retrieves a player by username
func (r *PlayerRepository) GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error) {
	row := r.db.QueryRow(ctx,
		"SELECT "+playerColumns+" FROM players WHERE username = $1", username)
	player, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, domain.ErrPlayerNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get player by username: %w", err)
	}
	return player, nil
}
