package farm

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/hieuluvjingliu/GardenBredN/internal/domain"
	"github.com/hieuluvjingliu/GardenBredN/internal/event"
	"github.com/hieuluvjingliu/GardenBredN/internal/logger"
	"github.com/hieuluvjingliu/GardenBredN/internal/metrics"
	"github.com/hieuluvjingliu/GardenBredN/internal/repository"
)

// Service defines the floor and plot business logic
type Service interface {
	// GetFarm returns every floor the player owns with its plots.
	GetFarm(ctx context.Context, playerID uuid.UUID) ([]domain.FloorView, error)

	// PlacePot attaches an inventory pot to an empty slot.
	PlacePot(ctx context.Context, playerID uuid.UUID, floorOrdinal, slot int, potID uuid.UUID) (*domain.Plot, error)

	// Plant sows an immature inventory seed into a potted empty plot. A
	// non-empty mutation overrides the seed's own tier on the plot.
	Plant(ctx context.Context, playerID uuid.UUID, floorOrdinal, slot int, seedID uuid.UUID, mutation string) (*domain.Plot, error)

	// Harvest collects a mature plot into a mature inventory seed.
	Harvest(ctx context.Context, playerID uuid.UUID, floorOrdinal, slot int) (*domain.Seed, error)

	// HarvestAll harvests all of the player's unlocked mature plots. Partial
	// success is normal and reported, never an error.
	HarvestAll(ctx context.Context, playerID uuid.UUID) (*domain.HarvestAllResult, error)

	// Remove unconditionally clears pot, plant state and lock from a plot.
	Remove(ctx context.Context, playerID uuid.UUID, floorOrdinal, slot int) error

	// SetLock toggles the owner-only lock flag on a plot.
	SetLock(ctx context.Context, playerID uuid.UUID, floorOrdinal, slot int, locked bool) error

	// Steal attempts to take a mature seed from another player's plot. Any
	// remaining trap on the target floor always fires first.
	Steal(ctx context.Context, attackerID, targetID uuid.UUID, floorOrdinal, slot int) (*domain.StealResult, error)

	// BuyFloor purchases the player's next floor with its empty plots.
	BuyFloor(ctx context.Context, playerID uuid.UUID) (*domain.Floor, error)

	// BuyTrap purchases trap units and distributes them across floors with
	// remaining capacity.
	BuyTrap(ctx context.Context, playerID uuid.UUID, units int) (*domain.TrapPurchase, error)
}

type service struct {
	repo repository.Farm
	bus  event.Bus
	now  func() time.Time
}

// NewService creates a new farm service
func NewService(repo repository.Farm, bus event.Bus) Service {
	return &service{repo: repo, bus: bus, now: time.Now}
}

func (s *service) GetFarm(ctx context.Context, playerID uuid.UUID) ([]domain.FloorView, error) {
	floors, err := s.repo.ListFloors(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list floors: %w", err)
	}

	views := make([]domain.FloorView, 0, len(floors))
	for _, floor := range floors {
		plots, err := s.repo.ListPlots(ctx, floor.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list plots for floor %d: %w", floor.Ordinal, err)
		}
		views = append(views, domain.FloorView{Floor: floor, Plots: plots})
	}
	return views, nil
}

func (s *service) PlacePot(ctx context.Context, playerID uuid.UUID, floorOrdinal, slot int, potID uuid.UUID) (*domain.Plot, error) {
	floor, err := s.repo.GetFloorByOrdinal(ctx, playerID, floorOrdinal)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	plot, err := tx.GetPlotForUpdate(ctx, floor.ID, slot)
	if err != nil {
		return nil, err
	}
	if plot.HasPot() {
		return nil, domain.ErrPlotHasPot
	}

	pot, err := tx.GetPotForUpdate(ctx, potID)
	if err != nil {
		return nil, err
	}
	if pot.PlayerID != playerID {
		return nil, domain.ErrNotOwner
	}

	deleted, err := tx.DeletePot(ctx, potID)
	if err != nil {
		return nil, fmt.Errorf("failed to consume pot: %w", err)
	}
	if !deleted {
		return nil, domain.ErrConflict
	}

	plot.PotType = pot.Type
	if err := tx.UpdatePlot(ctx, *plot); err != nil {
		return nil, fmt.Errorf("failed to update plot: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return plot, nil
}

func (s *service) Plant(ctx context.Context, playerID uuid.UUID, floorOrdinal, slot int, seedID uuid.UUID, mutation string) (*domain.Plot, error) {
	log := logger.FromContext(ctx)

	if mutation != "" && !domain.ValidTier(mutation) {
		return nil, fmt.Errorf("%w: unknown mutation %q", domain.ErrInvalidInput, mutation)
	}

	floor, err := s.repo.GetFloorByOrdinal(ctx, playerID, floorOrdinal)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	plot, err := tx.GetPlotForUpdate(ctx, floor.ID, slot)
	if err != nil {
		return nil, err
	}
	if !plot.HasPot() {
		return nil, domain.ErrPlotNoPot
	}
	if plot.Stage != domain.StageEmpty {
		return nil, domain.ErrPlotNotEmpty
	}

	seed, err := tx.GetSeedForUpdate(ctx, seedID)
	if err != nil {
		return nil, err
	}
	if seed.PlayerID != playerID {
		return nil, domain.ErrNotOwner
	}
	if seed.IsMature {
		return nil, domain.ErrSeedMature
	}

	deleted, err := tx.DeleteSeed(ctx, seedID)
	if err != nil {
		return nil, fmt.Errorf("failed to consume seed: %w", err)
	}
	if !deleted {
		return nil, domain.ErrConflict
	}

	now := s.now()
	matureAt := now.Add(domain.GrowthDuration(seed.Class, plot.PotType))
	plot.SeedClass = seed.Class
	plot.Mutation = seed.Mutation
	if mutation != "" {
		plot.Mutation = mutation
	}
	plot.BasePrice = seed.BasePrice
	plot.PlantedAt = &now
	plot.MatureAt = &matureAt
	plot.Stage = domain.StagePlanted
	if err := tx.UpdatePlot(ctx, *plot); err != nil {
		return nil, fmt.Errorf("failed to update plot: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Info("Seed planted", "playerID", playerID, "plotID", plot.ID,
		"class", seed.Class, "matureAt", matureAt)
	return plot, nil
}

// harvestPlot converts a mature plot into a mature inventory seed inside an
// open transaction. The pot stays on the plot; a gold pot doubles the
// harvested seed's base price.
func (s *service) harvestPlot(ctx context.Context, tx repository.FarmTx, plot *domain.Plot, ownerID uuid.UUID) (*domain.Seed, error) {
	seed := domain.Seed{
		ID:        uuid.New(),
		PlayerID:  ownerID,
		Class:     plot.SeedClass,
		BasePrice: int(math.Floor(float64(plot.BasePrice) * domain.PotYield(plot.PotType))),
		Mutation:  plot.Mutation,
		IsMature:  true,
	}
	if err := tx.InsertSeed(ctx, seed); err != nil {
		return nil, fmt.Errorf("failed to insert harvested seed: %w", err)
	}

	plot.SeedClass = ""
	plot.Mutation = ""
	plot.BasePrice = 0
	plot.PlantedAt = nil
	plot.MatureAt = nil
	plot.Stage = domain.StageEmpty
	if err := tx.UpdatePlot(ctx, *plot); err != nil {
		return nil, fmt.Errorf("failed to clear plot: %w", err)
	}
	return &seed, nil
}

func (s *service) Harvest(ctx context.Context, playerID uuid.UUID, floorOrdinal, slot int) (*domain.Seed, error) {
	floor, err := s.repo.GetFloorByOrdinal(ctx, playerID, floorOrdinal)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	plot, err := tx.GetPlotForUpdate(ctx, floor.ID, slot)
	if err != nil {
		return nil, err
	}
	if plot.Locked {
		return nil, domain.ErrPlotLocked
	}
	if plot.Stage != domain.StageMature {
		return nil, domain.ErrPlotNotMature
	}

	plotID := plot.ID
	seed, err := s.harvestPlot(ctx, tx, plot, playerID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	metrics.SeedsHarvested.WithLabelValues(seed.Class).Inc()
	s.publish(ctx, event.NewPlotHarvestEvent(
		playerID.String(), plotID.String(), seed.ID.String(),
		seed.Class, seed.Mutation, int64(seed.EffectiveValue())))
	return seed, nil
}

func (s *service) HarvestAll(ctx context.Context, playerID uuid.UUID) (*domain.HarvestAllResult, error) {
	log := logger.FromContext(ctx)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	plots, err := tx.ListMaturePlotsForUpdate(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list mature plots: %w", err)
	}

	result := &domain.HarvestAllResult{Seeds: []domain.Seed{}}
	for i := range plots {
		seed, err := s.harvestPlot(ctx, tx, &plots[i], playerID)
		if err != nil {
			return nil, err
		}
		result.Seeds = append(result.Seeds, *seed)
		result.Harvested++
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	for i := range result.Seeds {
		metrics.SeedsHarvested.WithLabelValues(result.Seeds[i].Class).Inc()
	}
	log.Info("Harvest all completed", "playerID", playerID, "harvested", result.Harvested)
	return result, nil
}

func (s *service) Remove(ctx context.Context, playerID uuid.UUID, floorOrdinal, slot int) error {
	floor, err := s.repo.GetFloorByOrdinal(ctx, playerID, floorOrdinal)
	if err != nil {
		return err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	plot, err := tx.GetPlotForUpdate(ctx, floor.ID, slot)
	if err != nil {
		return err
	}

	plot.PotType = ""
	plot.SeedClass = ""
	plot.Mutation = ""
	plot.BasePrice = 0
	plot.PlantedAt = nil
	plot.MatureAt = nil
	plot.Stage = domain.StageEmpty
	plot.Locked = false
	if err := tx.UpdatePlot(ctx, *plot); err != nil {
		return fmt.Errorf("failed to clear plot: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *service) SetLock(ctx context.Context, playerID uuid.UUID, floorOrdinal, slot int, locked bool) error {
	floor, err := s.repo.GetFloorByOrdinal(ctx, playerID, floorOrdinal)
	if err != nil {
		return err
	}
	plot, err := s.repo.GetPlot(ctx, floor.ID, slot)
	if err != nil {
		return err
	}
	return s.repo.SetPlotLock(ctx, plot.ID, locked)
}

func (s *service) Steal(ctx context.Context, attackerID, targetID uuid.UUID, floorOrdinal, slot int) (*domain.StealResult, error) {
	log := logger.FromContext(ctx)

	if attackerID == targetID {
		return nil, domain.ErrSelfSteal
	}

	floor, err := s.repo.GetFloorByOrdinal(ctx, targetID, floorOrdinal)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	// Lock the floor row first: trap consumption must serialize with other
	// steal attempts on the same floor.
	lockedFloor, err := tx.GetFloorForUpdate(ctx, floor.ID)
	if err != nil {
		return nil, err
	}

	if lockedFloor.TrapCount > 0 {
		if err := tx.SetFloorTrapCount(ctx, lockedFloor.ID, lockedFloor.TrapCount-1); err != nil {
			return nil, fmt.Errorf("failed to consume trap: %w", err)
		}

		attacker, err := tx.GetPlayerForUpdate(ctx, attackerID)
		if err != nil {
			return nil, err
		}
		penalty := int64(math.Floor(float64(attacker.Coins) * domain.TrapPenaltyRate))
		if penalty < domain.TrapPenaltyMinimum {
			penalty = domain.TrapPenaltyMinimum
		}
		if err := tx.UpdatePlayerCoins(ctx, attackerID, attacker.Coins-penalty); err != nil {
			return nil, fmt.Errorf("failed to apply trap penalty: %w", err)
		}

		if err := tx.Commit(ctx); err != nil {
			return nil, fmt.Errorf("failed to commit transaction: %w", err)
		}

		metrics.StealAttempts.WithLabelValues("trapped").Inc()
		s.publish(ctx, event.NewStealTrappedEvent(attackerID.String(), targetID.String(), "", penalty))
		log.Info("Steal trapped", "attackerID", attackerID, "targetID", targetID, "penalty", penalty)
		return &domain.StealResult{Trapped: true, Penalty: penalty}, nil
	}

	plot, err := tx.GetPlotForUpdate(ctx, floor.ID, slot)
	if err != nil {
		return nil, err
	}
	if plot.Locked {
		metrics.StealAttempts.WithLabelValues("locked").Inc()
		return nil, domain.ErrPlotLocked
	}
	if plot.Stage != domain.StageMature {
		metrics.StealAttempts.WithLabelValues("not_mature").Inc()
		return nil, domain.ErrPlotNotMature
	}

	plotID := plot.ID
	seed, err := s.harvestPlot(ctx, tx, plot, attackerID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	metrics.StealAttempts.WithLabelValues("success").Inc()
	s.publish(ctx, event.NewStealSuccessEvent(attackerID.String(), targetID.String(), plotID.String(), seed.Class))
	log.Info("Steal succeeded", "attackerID", attackerID, "targetID", targetID, "class", seed.Class)
	return &domain.StealResult{Seed: seed}, nil
}

func (s *service) BuyFloor(ctx context.Context, playerID uuid.UUID) (*domain.Floor, error) {
	log := logger.FromContext(ctx)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	// Locking the player row serializes concurrent floor purchases, so the
	// ordinal count read below is stable.
	player, err := tx.GetPlayerForUpdate(ctx, playerID)
	if err != nil {
		return nil, err
	}

	count, err := tx.CountFloors(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count floors: %w", err)
	}

	ordinal := count + 1
	price := domain.FloorPrice(ordinal)
	if player.Coins < price {
		return nil, &domain.InsufficientFundsError{Required: price, Available: player.Coins}
	}
	if price > 0 {
		if err := tx.UpdatePlayerCoins(ctx, playerID, player.Coins-price); err != nil {
			return nil, fmt.Errorf("failed to charge for floor: %w", err)
		}
	}

	floor, err := tx.CreateFloor(ctx, playerID, ordinal)
	if err != nil {
		return nil, fmt.Errorf("failed to create floor: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Info("Floor purchased", "playerID", playerID, "ordinal", ordinal, "price", price)
	return floor, nil
}

func (s *service) BuyTrap(ctx context.Context, playerID uuid.UUID, units int) (*domain.TrapPurchase, error) {
	log := logger.FromContext(ctx)

	if units <= 0 {
		return nil, fmt.Errorf("%w: units must be positive", domain.ErrInvalidInput)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	player, err := tx.GetPlayerForUpdate(ctx, playerID)
	if err != nil {
		return nil, err
	}

	floors, err := tx.ListFloorsForUpdate(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list floors: %w", err)
	}

	capacity := 0
	for _, f := range floors {
		capacity += domain.MaxTrapsPerFloor - f.TrapCount
	}
	if capacity < units {
		return nil, domain.ErrNoTrapCapacity
	}

	// Unit price scales with the number of unlocked floors.
	price := int64(units) * domain.TrapUnitPrice * int64(len(floors))
	if player.Coins < price {
		return nil, &domain.InsufficientFundsError{Required: price, Available: player.Coins}
	}
	if err := tx.UpdatePlayerCoins(ctx, playerID, player.Coins-price); err != nil {
		return nil, fmt.Errorf("failed to charge for traps: %w", err)
	}

	purchase := &domain.TrapPurchase{Units: units, PricePaid: price, Floors: make(map[int]int)}
	remaining := units
	for _, f := range floors {
		free := domain.MaxTrapsPerFloor - f.TrapCount
		if free <= 0 || remaining <= 0 {
			purchase.Floors[f.Ordinal] = f.TrapCount
			continue
		}
		add := free
		if add > remaining {
			add = remaining
		}
		if err := tx.SetFloorTrapCount(ctx, f.ID, f.TrapCount+add); err != nil {
			return nil, fmt.Errorf("failed to place traps on floor %d: %w", f.Ordinal, err)
		}
		purchase.Floors[f.Ordinal] = f.TrapCount + add
		remaining -= add
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Info("Traps purchased", "playerID", playerID, "units", units, "price", price)
	return purchase, nil
}

// publish forwards an event to the bus; handler failures are logged, never
// surfaced to the caller.
func (s *service) publish(ctx context.Context, e event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, e); err != nil {
		logger.FromContext(ctx).Warn("Event publish failed", "type", e.Type, "error", err)
	}
}
