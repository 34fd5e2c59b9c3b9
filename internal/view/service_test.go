package view

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hieuluvjingliu/GardenBredN/internal/domain"
	"github.com/hieuluvjingliu/GardenBredN/internal/repository"
)

type stubPlayerRepo struct {
	player *domain.Player
	calls  int
}

func (s *stubPlayerRepo) CreatePlayer(ctx context.Context, username string) (*domain.Player, error) {
	return nil, nil
}

func (s *stubPlayerRepo) GetPlayerByID(ctx context.Context, playerID uuid.UUID) (*domain.Player, error) {
	s.calls++
	if s.player == nil || s.player.ID != playerID {
		return nil, domain.ErrPlayerNotFound
	}
	return s.player, nil
}

func (s *stubPlayerRepo) GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error) {
	return nil, domain.ErrPlayerNotFound
}

type stubInvRepo struct {
	seeds []domain.Seed
	pots  []domain.Pot
}

func (s *stubInvRepo) ListSeeds(ctx context.Context, playerID uuid.UUID) ([]domain.Seed, error) {
	return s.seeds, nil
}

func (s *stubInvRepo) GetSeed(ctx context.Context, seedID uuid.UUID) (*domain.Seed, error) {
	return nil, domain.ErrSeedNotFound
}

func (s *stubInvRepo) ListPots(ctx context.Context, playerID uuid.UUID) ([]domain.Pot, error) {
	return s.pots, nil
}

func (s *stubInvRepo) CountMatureSeedsByClass(ctx context.Context, playerID uuid.UUID) (map[string]int, error) {
	return nil, nil
}

func (s *stubInvRepo) BeginTx(ctx context.Context) (repository.InventoryTx, error) {
	return nil, nil
}

type stubMarketRepo struct {
	listings []domain.MarketListing
}

func (s *stubMarketRepo) GetListing(ctx context.Context, listingID uuid.UUID) (*domain.MarketListing, error) {
	return nil, domain.ErrListingNotFound
}

func (s *stubMarketRepo) ListOpen(ctx context.Context, limit int) ([]domain.MarketListing, error) {
	return nil, nil
}

func (s *stubMarketRepo) ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]domain.MarketListing, error) {
	return s.listings, nil
}

func (s *stubMarketRepo) BeginTx(ctx context.Context) (repository.MarketTx, error) {
	return nil, nil
}

type stubFarmService struct {
	floors []domain.FloorView
}

func (s *stubFarmService) GetFarm(ctx context.Context, playerID uuid.UUID) ([]domain.FloorView, error) {
	return s.floors, nil
}

func (s *stubFarmService) PlacePot(ctx context.Context, playerID uuid.UUID, floorOrdinal, slot int, potID uuid.UUID) (*domain.Plot, error) {
	return nil, nil
}

func (s *stubFarmService) Plant(ctx context.Context, playerID uuid.UUID, floorOrdinal, slot int, seedID uuid.UUID, mutation string) (*domain.Plot, error) {
	return nil, nil
}

func (s *stubFarmService) Harvest(ctx context.Context, playerID uuid.UUID, floorOrdinal, slot int) (*domain.Seed, error) {
	return nil, nil
}

func (s *stubFarmService) HarvestAll(ctx context.Context, playerID uuid.UUID) (*domain.HarvestAllResult, error) {
	return nil, nil
}

func (s *stubFarmService) Remove(ctx context.Context, playerID uuid.UUID, floorOrdinal, slot int) error {
	return nil
}

func (s *stubFarmService) SetLock(ctx context.Context, playerID uuid.UUID, floorOrdinal, slot int, locked bool) error {
	return nil
}

func (s *stubFarmService) Steal(ctx context.Context, thiefID, victimID uuid.UUID, floorOrdinal, slot int) (*domain.StealResult, error) {
	return nil, nil
}

func (s *stubFarmService) BuyFloor(ctx context.Context, playerID uuid.UUID) (*domain.Floor, error) {
	return nil, nil
}

func (s *stubFarmService) BuyTrap(ctx context.Context, playerID uuid.UUID, units int) (*domain.TrapPurchase, error) {
	return nil, nil
}

type stubGachaService struct {
	state *domain.GachaState
}

func (s *stubGachaService) GetState(ctx context.Context, playerID uuid.UUID) (*domain.GachaState, error) {
	return s.state, nil
}

func (s *stubGachaService) Roll(ctx context.Context, playerID uuid.UUID) (*domain.RollResult, error) {
	return nil, nil
}

func (s *stubGachaService) History(ctx context.Context, playerID uuid.UUID, limit int) ([]domain.RollRecord, error) {
	return nil, nil
}

func newTestService(playerRepo *stubPlayerRepo, invRepo *stubInvRepo) (*service, uuid.UUID) {
	playerID := uuid.New()
	playerRepo.player = &domain.Player{ID: playerID, Username: "viewer", Coins: 500}

	svc := NewService(
		playerRepo,
		invRepo,
		&stubMarketRepo{listings: []domain.MarketListing{{ID: uuid.New(), SellerID: playerID}}},
		&stubFarmService{floors: []domain.FloorView{{Floor: domain.Floor{Ordinal: 1}}}},
		&stubGachaService{state: &domain.GachaState{Step: 3, Current: domain.Requirement{Class: domain.ClassFire, Cost: 7}}},
	).(*service)
	return svc, playerID
}

func TestCompute_AggregatesAllParts(t *testing.T) {
	playerRepo := &stubPlayerRepo{}
	invRepo := &stubInvRepo{
		seeds: []domain.Seed{{ID: uuid.New(), Class: domain.ClassFire}},
		pots:  []domain.Pot{{ID: uuid.New(), Type: domain.PotBasic}},
	}
	svc, playerID := newTestService(playerRepo, invRepo)

	v, err := svc.Compute(context.Background(), playerID)
	require.NoError(t, err)

	assert.Equal(t, playerID, v.Player.ID)
	assert.Len(t, v.Floors, 1)
	assert.Len(t, v.Seeds, 1)
	assert.Len(t, v.Pots, 1)
	assert.Len(t, v.Listings, 1)
	assert.Equal(t, 3, v.Gacha.Step)
	assert.False(t, v.ComputedAt.IsZero())
}

func TestCompute_UnknownPlayer(t *testing.T) {
	playerRepo := &stubPlayerRepo{}
	invRepo := &stubInvRepo{}
	svc, _ := newTestService(playerRepo, invRepo)

	_, err := svc.Compute(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}

func TestGet_ServesCachedSnapshot(t *testing.T) {
	playerRepo := &stubPlayerRepo{}
	invRepo := &stubInvRepo{}
	svc, playerID := newTestService(playerRepo, invRepo)

	first, err := svc.Get(context.Background(), playerID)
	require.NoError(t, err)
	require.Equal(t, 1, playerRepo.calls)

	second, err := svc.Get(context.Background(), playerID)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, playerRepo.calls, "cached read should not hit the repository")
}

func TestCompute_RefreshesCache(t *testing.T) {
	playerRepo := &stubPlayerRepo{}
	invRepo := &stubInvRepo{}
	svc, playerID := newTestService(playerRepo, invRepo)

	first, err := svc.Get(context.Background(), playerID)
	require.NoError(t, err)

	fresh, err := svc.Compute(context.Background(), playerID)
	require.NoError(t, err)
	assert.NotSame(t, first, fresh)

	cached, err := svc.Get(context.Background(), playerID)
	require.NoError(t, err)
	assert.Same(t, fresh, cached)
}

func TestCache_VersionMismatchInvalidates(t *testing.T) {
	cache := newViewCache(8, time.Minute)
	playerID := uuid.New()

	cache.lru.Add(playerID, &cachedViewEntry{Version: "0.9", View: &domain.PlayerView{}})
	_, ok := cache.Get(playerID)
	assert.False(t, ok, "stale schema version should miss")

	cache.Set(playerID, &domain.PlayerView{})
	_, ok = cache.Get(playerID)
	assert.True(t, ok)
}
