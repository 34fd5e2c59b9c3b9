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

// FarmRepository implements the farm repository for PostgreSQL
type FarmRepository struct {
	db *pgxpool.Pool
}

// NewFarmRepository creates a new farm repository
func NewFarmRepository(db *pgxpool.Pool) *FarmRepository {
	return &FarmRepository{db: db}
}

// ListFloors returns a player's floors ordered by ordinal
func (r *FarmRepository) ListFloors(ctx context.Context, playerID uuid.UUID) ([]domain.Floor, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+floorColumns+" FROM floors WHERE player_id = $1 ORDER BY ordinal", playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list floors: %w", err)
	}
	defer rows.Close()

	var floors []domain.Floor
	for rows.Next() {
		f, err := scanFloor(rows)
		if err != nil {
			return nil, err
		}
		floors = append(floors, *f)
	}
	return floors, rows.Err()
}

// GetFloorByOrdinal retrieves a single floor by its owner and index
func (r *FarmRepository) GetFloorByOrdinal(ctx context.Context, playerID uuid.UUID, ordinal int) (*domain.Floor, error) {
	row := r.db.QueryRow(ctx,
		"SELECT "+floorColumns+" FROM floors WHERE player_id = $1 AND ordinal = $2", playerID, ordinal)
	floor, err := scanFloor(row)
	if err != nil {
		if errors.Is(err, domain.ErrFloorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get floor: %w", err)
	}
	return floor, nil
}

// ListPlots returns a floor's plots ordered by slot
func (r *FarmRepository) ListPlots(ctx context.Context, floorID uuid.UUID) ([]domain.Plot, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+plotColumns+" FROM plots WHERE floor_id = $1 ORDER BY slot", floorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list plots: %w", err)
	}
	return collectPlots(rows)
}

// GetPlot retrieves a plot by floor and slot
func (r *FarmRepository) GetPlot(ctx context.Context, floorID uuid.UUID, slot int) (*domain.Plot, error) {
	row := r.db.QueryRow(ctx,
		"SELECT "+plotColumns+" FROM plots WHERE floor_id = $1 AND slot = $2", floorID, slot)
	plot, err := scanPlot(row)
	if err != nil {
		if errors.Is(err, domain.ErrPlotNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get plot: %w", err)
	}
	return plot, nil
}

// ListActivePlots returns every plot mid-growth, across all players
func (r *FarmRepository) ListActivePlots(ctx context.Context) ([]domain.Plot, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+plotColumns+" FROM plots WHERE stage IN ($1, $2)",
		domain.StagePlanted, domain.StageGrowing)
	if err != nil {
		return nil, fmt.Errorf("failed to list active plots: %w", err)
	}
	return collectPlots(rows)
}

// AdvancePlotStage conditionally moves a plot between stages. The stage guard
// makes repeated passes and racing harvests a no-op.
func (r *FarmRepository) AdvancePlotStage(ctx context.Context, plotID uuid.UUID, from, to domain.Stage) (bool, error) {
	tag, err := r.db.Exec(ctx,
		"UPDATE plots SET stage = $3 WHERE plot_id = $1 AND stage = $2", plotID, from, to)
	if err != nil {
		return false, fmt.Errorf("failed to advance plot stage: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// SetPlotLock toggles the lock flag
func (r *FarmRepository) SetPlotLock(ctx context.Context, plotID uuid.UUID, locked bool) error {
	tag, err := r.db.Exec(ctx,
		"UPDATE plots SET locked = $2 WHERE plot_id = $1", plotID, locked)
	if err != nil {
		return fmt.Errorf("failed to set plot lock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlotNotFound
	}
	return nil
}

// BeginTx starts a transaction and returns a FarmTx
func (r *FarmRepository) BeginTx(ctx context.Context) (repository.FarmTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin farm transaction: %w", err)
	}
	return &farmTx{tx: tx}, nil
}

// farmTx implements repository.FarmTx
type farmTx struct {
	tx pgx.Tx
}

func (t *farmTx) Commit(ctx context.Context) error   { return t.tx.Commit(ctx) }
func (t *farmTx) Rollback(ctx context.Context) error { return t.tx.Rollback(ctx) }

func (t *farmTx) GetPlayerForUpdate(ctx context.Context, playerID uuid.UUID) (*domain.Player, error) {
	return getPlayerForUpdate(ctx, t.tx, playerID)
}

func (t *farmTx) UpdatePlayerCoins(ctx context.Context, playerID uuid.UUID, coins int64) error {
	return updatePlayerCoins(ctx, t.tx, playerID, coins)
}

func (t *farmTx) GetSeedForUpdate(ctx context.Context, seedID uuid.UUID) (*domain.Seed, error) {
	return getSeedForUpdate(ctx, t.tx, seedID)
}

func (t *farmTx) InsertSeed(ctx context.Context, seed domain.Seed) error {
	return insertSeed(ctx, t.tx, seed)
}

func (t *farmTx) DeleteSeed(ctx context.Context, seedID uuid.UUID) (bool, error) {
	return deleteSeed(ctx, t.tx, seedID)
}

// GetFloorForUpdate locks a floor row. Trap consumption and trap purchase
// contend on this lock.
func (t *farmTx) GetFloorForUpdate(ctx context.Context, floorID uuid.UUID) (*domain.Floor, error) {
	row := t.tx.QueryRow(ctx,
		"SELECT "+floorColumns+" FROM floors WHERE floor_id = $1 FOR UPDATE", floorID)
	return scanFloor(row)
}

func (t *farmTx) GetPlotForUpdate(ctx context.Context, floorID uuid.UUID, slot int) (*domain.Plot, error) {
	row := t.tx.QueryRow(ctx,
		"SELECT "+plotColumns+" FROM plots WHERE floor_id = $1 AND slot = $2 FOR UPDATE", floorID, slot)
	return scanPlot(row)
}

func (t *farmTx) GetPlotByIDForUpdate(ctx context.Context, plotID uuid.UUID) (*domain.Plot, error) {
	row := t.tx.QueryRow(ctx,
		"SELECT "+plotColumns+" FROM plots WHERE plot_id = $1 FOR UPDATE", plotID)
	return scanPlot(row)
}

// UpdatePlot writes every mutable plot field
func (t *farmTx) UpdatePlot(ctx context.Context, plot domain.Plot) error {
	tag, err := t.tx.Exec(ctx,
		`UPDATE plots
		 SET pot_type = $2, seed_class = $3, mutation = $4, base_price = $5,
		     planted_at = $6, mature_at = $7, stage = $8, locked = $9
		 WHERE plot_id = $1`,
		plot.ID, plot.PotType, plot.SeedClass, plot.Mutation, plot.BasePrice,
		plot.PlantedAt, plot.MatureAt, plot.Stage, plot.Locked)
	if err != nil {
		return fmt.Errorf("failed to update plot: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlotNotFound
	}
	return nil
}

// ListMaturePlotsForUpdate locks the caller's unlocked mature plots
func (t *farmTx) ListMaturePlotsForUpdate(ctx context.Context, playerID uuid.UUID) ([]domain.Plot, error) {
	rows, err := t.tx.Query(ctx,
		`SELECT `+plotColumnsPrefixed+`
		 FROM plots p
		 JOIN floors f ON f.floor_id = p.floor_id
		 WHERE f.player_id = $1 AND p.stage = $2 AND NOT p.locked
		 ORDER BY f.ordinal, p.slot
		 FOR UPDATE OF p`,
		playerID, domain.StageMature)
	if err != nil {
		return nil, fmt.Errorf("failed to list mature plots: %w", err)
	}
	return collectPlots(rows)
}

func (t *farmTx) CountFloors(ctx context.Context, playerID uuid.UUID) (int, error) {
	var count int
	err := t.tx.QueryRow(ctx,
		"SELECT COUNT(*) FROM floors WHERE player_id = $1", playerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count floors: %w", err)
	}
	return count, nil
}

// CreateFloor inserts a floor and its full grid of empty plots
func (t *farmTx) CreateFloor(ctx context.Context, playerID uuid.UUID, ordinal int) (*domain.Floor, error) {
	row := t.tx.QueryRow(ctx,
		`INSERT INTO floors (player_id, ordinal) VALUES ($1, $2) RETURNING `+floorColumns,
		playerID, ordinal)
	floor, err := scanFloor(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create floor: %w", err)
	}

	for slot := 1; slot <= domain.PlotsPerFloor; slot++ {
		if _, err := t.tx.Exec(ctx,
			"INSERT INTO plots (floor_id, slot) VALUES ($1, $2)", floor.ID, slot); err != nil {
			return nil, fmt.Errorf("failed to create plot %d: %w", slot, err)
		}
	}
	return floor, nil
}

func (t *farmTx) ListFloorsForUpdate(ctx context.Context, playerID uuid.UUID) ([]domain.Floor, error) {
	rows, err := t.tx.Query(ctx,
		"SELECT "+floorColumns+" FROM floors WHERE player_id = $1 ORDER BY ordinal FOR UPDATE", playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock floors: %w", err)
	}
	defer rows.Close()

	var floors []domain.Floor
	for rows.Next() {
		f, err := scanFloor(rows)
		if err != nil {
			return nil, err
		}
		floors = append(floors, *f)
	}
	return floors, rows.Err()
}

func (t *farmTx) SetFloorTrapCount(ctx context.Context, floorID uuid.UUID, count int) error {
	tag, err := t.tx.Exec(ctx,
		"UPDATE floors SET trap_count = $2 WHERE floor_id = $1", floorID, count)
	if err != nil {
		return fmt.Errorf("failed to set trap count: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrFloorNotFound
	}
	return nil
}

func (t *farmTx) GetPotForUpdate(ctx context.Context, potID uuid.UUID) (*domain.Pot, error) {
	var p domain.Pot
	err := t.tx.QueryRow(ctx,
		"SELECT pot_id, player_id, pot_type FROM pots WHERE pot_id = $1 FOR UPDATE", potID).
		Scan(&p.ID, &p.PlayerID, &p.Type)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPotNotFound
		}
		return nil, fmt.Errorf("failed to get pot: %w", err)
	}
	return &p, nil
}

func (t *farmTx) DeletePot(ctx context.Context, potID uuid.UUID) (bool, error) {
	tag, err := t.tx.Exec(ctx, "DELETE FROM pots WHERE pot_id = $1", potID)
	if err != nil {
		return false, fmt.Errorf("failed to delete pot: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
