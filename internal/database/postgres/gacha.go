package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hieuluvjingliu/GardenBredN/internal/domain"
	"github.com/hieuluvjingliu/GardenBredN/internal/repository"
)

// GachaRepository implements the gacha repository for PostgreSQL
type GachaRepository struct {
	db *pgxpool.Pool
}

// NewGachaRepository creates a new gacha repository
func NewGachaRepository(db *pgxpool.Pool) *GachaRepository {
	return &GachaRepository{db: db}
}

const gachaProfileColumns = "player_id, total_pulls, pity10, pity90, step, queue, updated_at"

func scanProfile(row pgx.Row) (*domain.GachaProfile, error) {
	var p domain.GachaProfile
	var queueJSON []byte
	err := row.Scan(&p.PlayerID, &p.TotalPulls, &p.Pity10, &p.Pity90, &p.Step, &queueJSON, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(queueJSON, &p.Queue); err != nil {
		return nil, fmt.Errorf("failed to decode gacha queue: %w", err)
	}
	return &p, nil
}

// GetProfile retrieves a player's gacha profile
func (r *GachaRepository) GetProfile(ctx context.Context, playerID uuid.UUID) (*domain.GachaProfile, error) {
	row := r.db.QueryRow(ctx,
		"SELECT "+gachaProfileColumns+" FROM gacha_profiles WHERE player_id = $1", playerID)
	profile, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, domain.ErrPlayerNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get gacha profile: %w", err)
	}
	return profile, nil
}

// CreateProfile initializes a gacha profile with a freshly generated queue
func (r *GachaRepository) CreateProfile(ctx context.Context, playerID uuid.UUID, queue []string) (*domain.GachaProfile, error) {
	queueJSON, err := json.Marshal(queue)
	if err != nil {
		return nil, fmt.Errorf("failed to encode gacha queue: %w", err)
	}
	row := r.db.QueryRow(ctx,
		`INSERT INTO gacha_profiles (player_id, queue) VALUES ($1, $2)
		 RETURNING `+gachaProfileColumns, playerID, queueJSON)
	profile, err := scanProfile(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create gacha profile: %w", err)
	}
	return profile, nil
}

// SaveQueue persists an extended queue without touching the counters
func (r *GachaRepository) SaveQueue(ctx context.Context, playerID uuid.UUID, queue []string) error {
	queueJSON, err := json.Marshal(queue)
	if err != nil {
		return fmt.Errorf("failed to encode gacha queue: %w", err)
	}
	tag, err := r.db.Exec(ctx,
		"UPDATE gacha_profiles SET queue = $2, updated_at = NOW() WHERE player_id = $1",
		playerID, queueJSON)
	if err != nil {
		return fmt.Errorf("failed to save gacha queue: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlayerNotFound
	}
	return nil
}

// ListRolls returns a player's roll history, newest first
func (r *GachaRepository) ListRolls(ctx context.Context, playerID uuid.UUID, limit int) ([]domain.RollRecord, error) {
	rows, err := r.db.Query(ctx,
		`SELECT roll_id, player_id, pull_index, reward_type, class, mutation, value, created_at
		 FROM gacha_rolls WHERE player_id = $1
		 ORDER BY created_at DESC LIMIT $2`, playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list rolls: %w", err)
	}
	defer rows.Close()

	var records []domain.RollRecord
	for rows.Next() {
		var rec domain.RollRecord
		if err := rows.Scan(&rec.ID, &rec.PlayerID, &rec.PullIndex, &rec.RewardType,
			&rec.Class, &rec.Mutation, &rec.Value, &rec.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// BeginTx starts a transaction and returns a GachaTx
func (r *GachaRepository) BeginTx(ctx context.Context) (repository.GachaTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin gacha transaction: %w", err)
	}
	return &gachaTx{tx: tx}, nil
}

// gachaTx implements repository.GachaTx
type gachaTx struct {
	tx pgx.Tx
}

func (t *gachaTx) Commit(ctx context.Context) error   { return t.tx.Commit(ctx) }
func (t *gachaTx) Rollback(ctx context.Context) error { return t.tx.Rollback(ctx) }

func (t *gachaTx) GetPlayerForUpdate(ctx context.Context, playerID uuid.UUID) (*domain.Player, error) {
	return getPlayerForUpdate(ctx, t.tx, playerID)
}

func (t *gachaTx) UpdatePlayerCoins(ctx context.Context, playerID uuid.UUID, coins int64) error {
	return updatePlayerCoins(ctx, t.tx, playerID, coins)
}

func (t *gachaTx) GetSeedForUpdate(ctx context.Context, seedID uuid.UUID) (*domain.Seed, error) {
	return getSeedForUpdate(ctx, t.tx, seedID)
}

func (t *gachaTx) InsertSeed(ctx context.Context, seed domain.Seed) error {
	return insertSeed(ctx, t.tx, seed)
}

func (t *gachaTx) DeleteSeed(ctx context.Context, seedID uuid.UUID) (bool, error) {
	return deleteSeed(ctx, t.tx, seedID)
}

// GetProfileForUpdate locks the profile row; concurrent rolls for the same
// player serialize here.
func (t *gachaTx) GetProfileForUpdate(ctx context.Context, playerID uuid.UUID) (*domain.GachaProfile, error) {
	row := t.tx.QueryRow(ctx,
		"SELECT "+gachaProfileColumns+" FROM gacha_profiles WHERE player_id = $1 FOR UPDATE", playerID)
	return scanProfile(row)
}

// SaveProfile writes every profile field in one statement so partial writes
// cannot happen.
func (t *gachaTx) SaveProfile(ctx context.Context, profile domain.GachaProfile) error {
	queueJSON, err := json.Marshal(profile.Queue)
	if err != nil {
		return fmt.Errorf("failed to encode gacha queue: %w", err)
	}
	tag, err := t.tx.Exec(ctx,
		`UPDATE gacha_profiles
		 SET total_pulls = $2, pity10 = $3, pity90 = $4, step = $5, queue = $6, updated_at = NOW()
		 WHERE player_id = $1`,
		profile.PlayerID, profile.TotalPulls, profile.Pity10, profile.Pity90, profile.Step, queueJSON)
	if err != nil {
		return fmt.Errorf("failed to save gacha profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlayerNotFound
	}
	return nil
}

// SelectMatureSeedIDs picks candidate seeds for consumption
func (t *gachaTx) SelectMatureSeedIDs(ctx context.Context, playerID uuid.UUID, class string, limit int) ([]uuid.UUID, error) {
	rows, err := t.tx.Query(ctx,
		`SELECT seed_id FROM seeds
		 WHERE player_id = $1 AND class = $2 AND is_mature
		 LIMIT $3`, playerID, class, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to select mature seeds: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// DeleteSeeds removes the exact ids; the returned count lets the caller detect
// a concurrent consumption of the same seeds.
func (t *gachaTx) DeleteSeeds(ctx context.Context, seedIDs []uuid.UUID) (int, error) {
	tag, err := t.tx.Exec(ctx,
		"DELETE FROM seeds WHERE seed_id = ANY($1)", seedIDs)
	if err != nil {
		return 0, fmt.Errorf("failed to delete seeds: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

func (t *gachaTx) CountMatureSeeds(ctx context.Context, playerID uuid.UUID, class string) (int, error) {
	var count int
	err := t.tx.QueryRow(ctx,
		"SELECT COUNT(*) FROM seeds WHERE player_id = $1 AND class = $2 AND is_mature",
		playerID, class).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count mature seeds: %w", err)
	}
	return count, nil
}

func (t *gachaTx) InsertRollRecord(ctx context.Context, record domain.RollRecord) error {
	id := record.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	_, err := t.tx.Exec(ctx,
		`INSERT INTO gacha_rolls (roll_id, player_id, pull_index, reward_type, class, mutation, value)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, record.PlayerID, record.PullIndex, record.RewardType, record.Class, record.Mutation, record.Value)
	if err != nil {
		return fmt.Errorf("failed to insert roll record: %w", err)
	}
	return nil
}
