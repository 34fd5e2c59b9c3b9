package farm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hieuluvjingliu/GardenBredN/internal/domain"
	"github.com/hieuluvjingliu/GardenBredN/internal/repository"
)

// fakeStore is an in-memory stand-in for the farm repository. Tests run
// single-threaded so row locks degrade to plain lookups.
type fakeStore struct {
	players map[uuid.UUID]*domain.Player
	floors  map[uuid.UUID]*domain.Floor
	plots   map[uuid.UUID]*domain.Plot
	seeds   map[uuid.UUID]*domain.Seed
	pots    map[uuid.UUID]*domain.Pot
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		players: make(map[uuid.UUID]*domain.Player),
		floors:  make(map[uuid.UUID]*domain.Floor),
		plots:   make(map[uuid.UUID]*domain.Plot),
		seeds:   make(map[uuid.UUID]*domain.Seed),
		pots:    make(map[uuid.UUID]*domain.Pot),
	}
}

func (s *fakeStore) addPlayer(coins int64) uuid.UUID {
	id := uuid.New()
	s.players[id] = &domain.Player{ID: id, Username: "p-" + id.String()[:8], Coins: coins}
	return id
}

func (s *fakeStore) addFloor(playerID uuid.UUID, ordinal, traps int) *domain.Floor {
	f := &domain.Floor{ID: uuid.New(), PlayerID: playerID, Ordinal: ordinal, TrapCount: traps}
	s.floors[f.ID] = f
	for i := 0; i < domain.PlotsPerFloor; i++ {
		p := &domain.Plot{ID: uuid.New(), FloorID: f.ID, Slot: i, Stage: domain.StageEmpty}
		s.plots[p.ID] = p
	}
	return f
}

func (s *fakeStore) plot(floorID uuid.UUID, slot int) *domain.Plot {
	for _, p := range s.plots {
		if p.FloorID == floorID && p.Slot == slot {
			return p
		}
	}
	return nil
}

func (s *fakeStore) ListFloors(ctx context.Context, playerID uuid.UUID) ([]domain.Floor, error) {
	var out []domain.Floor
	for ord := 1; ord <= len(s.floors); ord++ {
		for _, f := range s.floors {
			if f.PlayerID == playerID && f.Ordinal == ord {
				out = append(out, *f)
			}
		}
	}
	return out, nil
}

func (s *fakeStore) GetFloorByOrdinal(ctx context.Context, playerID uuid.UUID, ordinal int) (*domain.Floor, error) {
	for _, f := range s.floors {
		if f.PlayerID == playerID && f.Ordinal == ordinal {
			cp := *f
			return &cp, nil
		}
	}
	return nil, domain.ErrFloorNotFound
}

func (s *fakeStore) ListPlots(ctx context.Context, floorID uuid.UUID) ([]domain.Plot, error) {
	out := make([]domain.Plot, 0)
	for slot := 0; slot < domain.PlotsPerFloor; slot++ {
		if p := s.plot(floorID, slot); p != nil {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *fakeStore) GetPlot(ctx context.Context, floorID uuid.UUID, slot int) (*domain.Plot, error) {
	if p := s.plot(floorID, slot); p != nil {
		cp := *p
		return &cp, nil
	}
	return nil, domain.ErrPlotNotFound
}

func (s *fakeStore) ListActivePlots(ctx context.Context) ([]domain.Plot, error) {
	var out []domain.Plot
	for _, p := range s.plots {
		if p.Stage == domain.StagePlanted || p.Stage == domain.StageGrowing {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *fakeStore) AdvancePlotStage(ctx context.Context, plotID uuid.UUID, from, to domain.Stage) (bool, error) {
	p, ok := s.plots[plotID]
	if !ok || p.Stage != from {
		return false, nil
	}
	p.Stage = to
	return true, nil
}

func (s *fakeStore) SetPlotLock(ctx context.Context, plotID uuid.UUID, locked bool) error {
	p, ok := s.plots[plotID]
	if !ok {
		return domain.ErrPlotNotFound
	}
	p.Locked = locked
	return nil
}

func (s *fakeStore) BeginTx(ctx context.Context) (repository.FarmTx, error) {
	return &fakeTx{store: s}, nil
}

type fakeTx struct {
	store *fakeStore
	done  bool
}

func (t *fakeTx) Commit(ctx context.Context) error {
	if t.done {
		return errors.New(domain.ErrMsgTxClosed)
	}
	t.done = true
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	t.done = true
	return nil
}

func (t *fakeTx) GetPlayerForUpdate(ctx context.Context, playerID uuid.UUID) (*domain.Player, error) {
	p, ok := t.store.players[playerID]
	if !ok {
		return nil, domain.ErrPlayerNotFound
	}
	cp := *p
	return &cp, nil
}

func (t *fakeTx) UpdatePlayerCoins(ctx context.Context, playerID uuid.UUID, coins int64) error {
	p, ok := t.store.players[playerID]
	if !ok {
		return domain.ErrPlayerNotFound
	}
	p.Coins = coins
	return nil
}

func (t *fakeTx) GetSeedForUpdate(ctx context.Context, seedID uuid.UUID) (*domain.Seed, error) {
	sd, ok := t.store.seeds[seedID]
	if !ok {
		return nil, domain.ErrSeedNotFound
	}
	cp := *sd
	return &cp, nil
}

func (t *fakeTx) InsertSeed(ctx context.Context, seed domain.Seed) error {
	cp := seed
	t.store.seeds[seed.ID] = &cp
	return nil
}

func (t *fakeTx) DeleteSeed(ctx context.Context, seedID uuid.UUID) (bool, error) {
	if _, ok := t.store.seeds[seedID]; !ok {
		return false, nil
	}
	delete(t.store.seeds, seedID)
	return true, nil
}

func (t *fakeTx) GetFloorForUpdate(ctx context.Context, floorID uuid.UUID) (*domain.Floor, error) {
	f, ok := t.store.floors[floorID]
	if !ok {
		return nil, domain.ErrFloorNotFound
	}
	cp := *f
	return &cp, nil
}

func (t *fakeTx) GetPlotForUpdate(ctx context.Context, floorID uuid.UUID, slot int) (*domain.Plot, error) {
	if p := t.store.plot(floorID, slot); p != nil {
		cp := *p
		return &cp, nil
	}
	return nil, domain.ErrPlotNotFound
}

func (t *fakeTx) GetPlotByIDForUpdate(ctx context.Context, plotID uuid.UUID) (*domain.Plot, error) {
	p, ok := t.store.plots[plotID]
	if !ok {
		return nil, domain.ErrPlotNotFound
	}
	cp := *p
	return &cp, nil
}

func (t *fakeTx) UpdatePlot(ctx context.Context, plot domain.Plot) error {
	if _, ok := t.store.plots[plot.ID]; !ok {
		return domain.ErrPlotNotFound
	}
	cp := plot
	t.store.plots[plot.ID] = &cp
	return nil
}

func (t *fakeTx) ListMaturePlotsForUpdate(ctx context.Context, playerID uuid.UUID) ([]domain.Plot, error) {
	var out []domain.Plot
	for _, p := range t.store.plots {
		f := t.store.floors[p.FloorID]
		if f != nil && f.PlayerID == playerID && p.Stage == domain.StageMature && !p.Locked {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (t *fakeTx) CountFloors(ctx context.Context, playerID uuid.UUID) (int, error) {
	n := 0
	for _, f := range t.store.floors {
		if f.PlayerID == playerID {
			n++
		}
	}
	return n, nil
}

func (t *fakeTx) CreateFloor(ctx context.Context, playerID uuid.UUID, ordinal int) (*domain.Floor, error) {
	f := t.store.addFloor(playerID, ordinal, 0)
	cp := *f
	return &cp, nil
}

func (t *fakeTx) ListFloorsForUpdate(ctx context.Context, playerID uuid.UUID) ([]domain.Floor, error) {
	return t.store.ListFloors(ctx, playerID)
}

func (t *fakeTx) SetFloorTrapCount(ctx context.Context, floorID uuid.UUID, count int) error {
	f, ok := t.store.floors[floorID]
	if !ok {
		return domain.ErrFloorNotFound
	}
	f.TrapCount = count
	return nil
}

func (t *fakeTx) GetPotForUpdate(ctx context.Context, potID uuid.UUID) (*domain.Pot, error) {
	p, ok := t.store.pots[potID]
	if !ok {
		return nil, domain.ErrPotNotFound
	}
	cp := *p
	return &cp, nil
}

func (t *fakeTx) DeletePot(ctx context.Context, potID uuid.UUID) (bool, error) {
	if _, ok := t.store.pots[potID]; !ok {
		return false, nil
	}
	delete(t.store.pots, potID)
	return true, nil
}

func newTestService(store *fakeStore) Service {
	return NewService(store, nil)
}

func TestPlacePot(t *testing.T) {
	store := newFakeStore()
	playerID := store.addPlayer(0)
	floor := store.addFloor(playerID, 1, 0)
	pot := &domain.Pot{ID: uuid.New(), PlayerID: playerID, Type: domain.PotGold}
	store.pots[pot.ID] = pot

	svc := newTestService(store)
	plot, err := svc.PlacePot(context.Background(), playerID, 1, 3, pot.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PotGold, plot.PotType)
	assert.Empty(t, store.pots, "pot should leave free inventory")
	assert.Equal(t, domain.PotGold, store.plot(floor.ID, 3).PotType)
}

func TestPlacePot_AlreadyHasPot(t *testing.T) {
	store := newFakeStore()
	playerID := store.addPlayer(0)
	floor := store.addFloor(playerID, 1, 0)
	store.plot(floor.ID, 0).PotType = domain.PotBasic
	pot := &domain.Pot{ID: uuid.New(), PlayerID: playerID, Type: domain.PotBasic}
	store.pots[pot.ID] = pot

	svc := newTestService(store)
	_, err := svc.PlacePot(context.Background(), playerID, 1, 0, pot.ID)
	assert.ErrorIs(t, err, domain.ErrPlotHasPot)
	assert.Len(t, store.pots, 1, "pot must not be consumed")
}

func TestPlacePot_NotOwnedPot(t *testing.T) {
	store := newFakeStore()
	playerID := store.addPlayer(0)
	otherID := store.addPlayer(0)
	store.addFloor(playerID, 1, 0)
	pot := &domain.Pot{ID: uuid.New(), PlayerID: otherID, Type: domain.PotBasic}
	store.pots[pot.ID] = pot

	svc := newTestService(store)
	_, err := svc.PlacePot(context.Background(), playerID, 1, 0, pot.ID)
	assert.ErrorIs(t, err, domain.ErrNotOwner)
}

func TestPlant(t *testing.T) {
	store := newFakeStore()
	playerID := store.addPlayer(0)
	floor := store.addFloor(playerID, 1, 0)
	store.plot(floor.ID, 0).PotType = domain.PotBasic
	seed := &domain.Seed{ID: uuid.New(), PlayerID: playerID, Class: domain.ClassFire, BasePrice: 100}
	store.seeds[seed.ID] = seed

	svc := newTestService(store).(*service)
	now := time.Now()
	svc.now = func() time.Time { return now }

	plot, err := svc.Plant(context.Background(), playerID, 1, 0, seed.ID, "")
	require.NoError(t, err)
	assert.Equal(t, domain.StagePlanted, plot.Stage)
	assert.Equal(t, domain.ClassFire, plot.SeedClass)
	assert.Equal(t, 100, plot.BasePrice)
	require.NotNil(t, plot.MatureAt)
	assert.Equal(t, now.Add(5*time.Minute), *plot.MatureAt, "base class in a basic pot matures in 5 minutes")
	assert.Empty(t, store.seeds, "planted seed is consumed")
}

func TestPlant_MutationOverride(t *testing.T) {
	store := newFakeStore()
	playerID := store.addPlayer(0)
	floor := store.addFloor(playerID, 1, 0)
	store.plot(floor.ID, 0).PotType = domain.PotBasic
	seed := &domain.Seed{ID: uuid.New(), PlayerID: playerID, Class: domain.ClassFire, BasePrice: 100, Mutation: domain.TierGreen}
	store.seeds[seed.ID] = seed

	svc := newTestService(store)

	_, err := svc.Plant(context.Background(), playerID, 1, 0, seed.ID, "shiny")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "unknown tier is rejected before any state changes")
	assert.Len(t, store.seeds, 1, "seed survives a rejected plant")

	plot, err := svc.Plant(context.Background(), playerID, 1, 0, seed.ID, domain.TierGold)
	require.NoError(t, err)
	assert.Equal(t, domain.TierGold, plot.Mutation, "explicit tier replaces the seed's own")
}

func TestPlant_TimeskipPotShortensGrowth(t *testing.T) {
	store := newFakeStore()
	playerID := store.addPlayer(0)
	floor := store.addFloor(playerID, 1, 0)
	store.plot(floor.ID, 0).PotType = domain.PotTimeskip
	seed := &domain.Seed{ID: uuid.New(), PlayerID: playerID, Class: "lava", BasePrice: 320}
	store.seeds[seed.ID] = seed

	svc := newTestService(store).(*service)
	now := time.Now()
	svc.now = func() time.Time { return now }

	plot, err := svc.Plant(context.Background(), playerID, 1, 0, seed.ID, "")
	require.NoError(t, err)
	want := now.Add(time.Duration(float64(10*time.Minute) * 0.67))
	assert.Equal(t, want, *plot.MatureAt)
}

func TestPlant_Preconditions(t *testing.T) {
	store := newFakeStore()
	playerID := store.addPlayer(0)
	floor := store.addFloor(playerID, 1, 0)
	svc := newTestService(store)

	seed := &domain.Seed{ID: uuid.New(), PlayerID: playerID, Class: domain.ClassFire, BasePrice: 100}
	store.seeds[seed.ID] = seed

	// No pot on the plot.
	_, err := svc.Plant(context.Background(), playerID, 1, 0, seed.ID, "")
	assert.ErrorIs(t, err, domain.ErrPlotNoPot)

	// Mature seeds cannot be planted.
	store.plot(floor.ID, 0).PotType = domain.PotBasic
	seed.IsMature = true
	_, err = svc.Plant(context.Background(), playerID, 1, 0, seed.ID, "")
	assert.ErrorIs(t, err, domain.ErrSeedMature)

	// Occupied plot.
	seed.IsMature = false
	store.plot(floor.ID, 0).Stage = domain.StageGrowing
	_, err = svc.Plant(context.Background(), playerID, 1, 0, seed.ID, "")
	assert.ErrorIs(t, err, domain.ErrPlotNotEmpty)
}

func maturePlot(store *fakeStore, floorID uuid.UUID, slot int, potType, class, mutation string, basePrice int) *domain.Plot {
	p := store.plot(floorID, slot)
	planted := time.Now().Add(-time.Hour)
	matureAt := time.Now().Add(-30 * time.Minute)
	p.PotType = potType
	p.SeedClass = class
	p.Mutation = mutation
	p.BasePrice = basePrice
	p.PlantedAt = &planted
	p.MatureAt = &matureAt
	p.Stage = domain.StageMature
	return p
}

func TestHarvest(t *testing.T) {
	store := newFakeStore()
	playerID := store.addPlayer(0)
	floor := store.addFloor(playerID, 1, 0)
	maturePlot(store, floor.ID, 2, domain.PotGold, domain.ClassWater, domain.TierBlue, 100)

	svc := newTestService(store)
	seed, err := svc.Harvest(context.Background(), playerID, 1, 2)
	require.NoError(t, err)

	assert.Equal(t, domain.ClassWater, seed.Class)
	assert.Equal(t, domain.TierBlue, seed.Mutation)
	assert.True(t, seed.IsMature)
	assert.Equal(t, 200, seed.BasePrice, "gold pot doubles the harvested base price")

	p := store.plot(floor.ID, 2)
	assert.Equal(t, domain.StageEmpty, p.Stage)
	assert.Empty(t, p.SeedClass)
	assert.Nil(t, p.MatureAt)
	assert.Equal(t, domain.PotGold, p.PotType, "pot stays on the plot")
}

func TestHarvest_LockedAndNotMature(t *testing.T) {
	store := newFakeStore()
	playerID := store.addPlayer(0)
	floor := store.addFloor(playerID, 1, 0)

	maturePlot(store, floor.ID, 0, domain.PotBasic, domain.ClassFire, "", 100).Locked = true
	svc := newTestService(store)

	_, err := svc.Harvest(context.Background(), playerID, 1, 0)
	assert.ErrorIs(t, err, domain.ErrPlotLocked)

	_, err = svc.Harvest(context.Background(), playerID, 1, 1)
	assert.ErrorIs(t, err, domain.ErrPlotNotMature)
}

func TestHarvestAll_SkipsLockedPlots(t *testing.T) {
	store := newFakeStore()
	playerID := store.addPlayer(0)
	floor := store.addFloor(playerID, 1, 0)
	maturePlot(store, floor.ID, 0, domain.PotBasic, domain.ClassFire, "", 100)
	maturePlot(store, floor.ID, 1, domain.PotBasic, domain.ClassWind, "", 100)
	maturePlot(store, floor.ID, 2, domain.PotBasic, domain.ClassEarth, "", 100).Locked = true

	svc := newTestService(store)
	result, err := svc.HarvestAll(context.Background(), playerID)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Harvested)
	assert.Len(t, result.Seeds, 2)
	assert.Equal(t, domain.StageMature, store.plot(floor.ID, 2).Stage, "locked plot untouched")
}

func TestRemove_ClearsEverything(t *testing.T) {
	store := newFakeStore()
	playerID := store.addPlayer(0)
	floor := store.addFloor(playerID, 1, 0)
	p := maturePlot(store, floor.ID, 0, domain.PotTimeskip, domain.ClassFire, domain.TierRed, 100)
	p.Locked = true

	svc := newTestService(store)
	require.NoError(t, svc.Remove(context.Background(), playerID, 1, 0))

	got := store.plot(floor.ID, 0)
	assert.Empty(t, got.PotType)
	assert.Empty(t, got.SeedClass)
	assert.Equal(t, domain.StageEmpty, got.Stage)
	assert.False(t, got.Locked)
}

func TestSteal_TrapAlwaysFiresFirst(t *testing.T) {
	store := newFakeStore()
	attackerID := store.addPlayer(1000)
	victimID := store.addPlayer(0)
	floor := store.addFloor(victimID, 1, 2)
	maturePlot(store, floor.ID, 0, domain.PotBasic, domain.ClassFire, domain.TierRainbow, 100)

	svc := newTestService(store)
	result, err := svc.Steal(context.Background(), attackerID, victimID, 1, 0)
	require.NoError(t, err)

	assert.True(t, result.Trapped)
	assert.Equal(t, int64(50), result.Penalty)
	assert.Equal(t, int64(950), store.players[attackerID].Coins)
	assert.Equal(t, 1, store.floors[floor.ID].TrapCount)
	assert.Equal(t, domain.StageMature, store.plot(floor.ID, 0).Stage, "plot never touched when a trap fires")
}

func TestSteal_TrapPenaltyMinimumOne(t *testing.T) {
	store := newFakeStore()
	attackerID := store.addPlayer(3) // 5% of 3 rounds down to 0
	victimID := store.addPlayer(0)
	store.addFloor(victimID, 1, 1)

	svc := newTestService(store)
	result, err := svc.Steal(context.Background(), attackerID, victimID, 1, 0)
	require.NoError(t, err)

	assert.Equal(t, int64(1), result.Penalty)
	assert.Equal(t, int64(2), store.players[attackerID].Coins)
}

func TestSteal_Success(t *testing.T) {
	store := newFakeStore()
	attackerID := store.addPlayer(0)
	victimID := store.addPlayer(0)
	floor := store.addFloor(victimID, 1, 0)
	maturePlot(store, floor.ID, 4, domain.PotBasic, domain.ClassEarth, domain.TierGreen, 150)

	svc := newTestService(store)
	result, err := svc.Steal(context.Background(), attackerID, victimID, 1, 4)
	require.NoError(t, err)

	require.NotNil(t, result.Seed)
	assert.False(t, result.Trapped)
	assert.Equal(t, attackerID, result.Seed.PlayerID, "seed goes to the attacker")
	assert.Equal(t, domain.ClassEarth, result.Seed.Class)
	assert.Equal(t, domain.StageEmpty, store.plot(floor.ID, 4).Stage)
}

func TestSteal_LockedPlotBlocked(t *testing.T) {
	store := newFakeStore()
	attackerID := store.addPlayer(500)
	victimID := store.addPlayer(0)
	floor := store.addFloor(victimID, 1, 0)
	maturePlot(store, floor.ID, 0, domain.PotBasic, domain.ClassFire, "", 100)
	store.plot(floor.ID, 0).Locked = true

	svc := newTestService(store)
	_, err := svc.Steal(context.Background(), attackerID, victimID, 1, 0)
	assert.ErrorIs(t, err, domain.ErrPlotLocked)

	assert.Equal(t, domain.StageMature, store.plot(floor.ID, 0).Stage, "locked plot keeps its crop")
	assert.Equal(t, int64(500), store.players[attackerID].Coins, "no penalty without a trap")
}

func TestSteal_SelfAndNotMature(t *testing.T) {
	store := newFakeStore()
	attackerID := store.addPlayer(100)
	victimID := store.addPlayer(0)
	store.addFloor(victimID, 1, 0)

	svc := newTestService(store)

	_, err := svc.Steal(context.Background(), attackerID, attackerID, 1, 0)
	assert.ErrorIs(t, err, domain.ErrSelfSteal)

	_, err = svc.Steal(context.Background(), attackerID, victimID, 1, 0)
	assert.ErrorIs(t, err, domain.ErrPlotNotMature)
}

func TestBuyFloor(t *testing.T) {
	store := newFakeStore()
	playerID := store.addPlayer(2500)

	svc := newTestService(store)

	// First floor is free.
	first, err := svc.BuyFloor(context.Background(), playerID)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Ordinal)
	assert.Equal(t, int64(2500), store.players[playerID].Coins)

	// Second floor costs 2 * 1000.
	second, err := svc.BuyFloor(context.Background(), playerID)
	require.NoError(t, err)
	assert.Equal(t, 2, second.Ordinal)
	assert.Equal(t, int64(500), store.players[playerID].Coins)

	plots, err := store.ListPlots(context.Background(), second.ID)
	require.NoError(t, err)
	assert.Len(t, plots, domain.PlotsPerFloor)

	// Third floor costs 3000, which the player cannot afford.
	_, err = svc.BuyFloor(context.Background(), playerID)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	var fundsErr *domain.InsufficientFundsError
	require.ErrorAs(t, err, &fundsErr)
	assert.Equal(t, int64(3000), fundsErr.Required)
	assert.Equal(t, int64(500), fundsErr.Available)
}

func TestBuyTrap_DistributesAcrossFloors(t *testing.T) {
	store := newFakeStore()
	playerID := store.addPlayer(10000)
	f1 := store.addFloor(playerID, 1, 4) // one free slot
	f2 := store.addFloor(playerID, 2, 0) // five free slots

	svc := newTestService(store)
	purchase, err := svc.BuyTrap(context.Background(), playerID, 3)
	require.NoError(t, err)

	// 3 units * 200 * 2 floors
	assert.Equal(t, int64(1200), purchase.PricePaid)
	assert.Equal(t, int64(8800), store.players[playerID].Coins)
	assert.Equal(t, 5, store.floors[f1.ID].TrapCount)
	assert.Equal(t, 2, store.floors[f2.ID].TrapCount)
}

func TestBuyTrap_Failures(t *testing.T) {
	store := newFakeStore()
	playerID := store.addPlayer(100)
	store.addFloor(playerID, 1, domain.MaxTrapsPerFloor)

	svc := newTestService(store)

	_, err := svc.BuyTrap(context.Background(), playerID, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.BuyTrap(context.Background(), playerID, 1)
	assert.ErrorIs(t, err, domain.ErrNoTrapCapacity)

	// Free a slot; now the price (1 * 200 * 1) exceeds the balance of 100.
	for _, f := range store.floors {
		f.TrapCount = 0
	}
	_, err = svc.BuyTrap(context.Background(), playerID, 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
}
