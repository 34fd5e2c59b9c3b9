package economy

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hieuluvjingliu/GardenBredN/internal/domain"
	"github.com/hieuluvjingliu/GardenBredN/internal/repository"
)

type fakeInventoryStore struct {
	players map[uuid.UUID]*domain.Player
	seeds   map[uuid.UUID]*domain.Seed
	pots    map[uuid.UUID]*domain.Pot
	prices  map[string]int
}

func newFakeInventoryStore() *fakeInventoryStore {
	return &fakeInventoryStore{
		players: make(map[uuid.UUID]*domain.Player),
		seeds:   make(map[uuid.UUID]*domain.Seed),
		pots:    make(map[uuid.UUID]*domain.Pot),
		prices:  map[string]int{domain.ClassFire: 100, domain.ClassWater: 100},
	}
}

func (s *fakeInventoryStore) addPlayer(coins int64) uuid.UUID {
	id := uuid.New()
	s.players[id] = &domain.Player{ID: id, Coins: coins}
	return id
}

func (s *fakeInventoryStore) ListSeeds(ctx context.Context, playerID uuid.UUID) ([]domain.Seed, error) {
	var out []domain.Seed
	for _, sd := range s.seeds {
		if sd.PlayerID == playerID {
			out = append(out, *sd)
		}
	}
	return out, nil
}

func (s *fakeInventoryStore) GetSeed(ctx context.Context, seedID uuid.UUID) (*domain.Seed, error) {
	sd, ok := s.seeds[seedID]
	if !ok {
		return nil, domain.ErrSeedNotFound
	}
	cp := *sd
	return &cp, nil
}

func (s *fakeInventoryStore) ListPots(ctx context.Context, playerID uuid.UUID) ([]domain.Pot, error) {
	var out []domain.Pot
	for _, p := range s.pots {
		if p.PlayerID == playerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *fakeInventoryStore) CountMatureSeedsByClass(ctx context.Context, playerID uuid.UUID) (map[string]int, error) {
	out := make(map[string]int)
	for _, sd := range s.seeds {
		if sd.PlayerID == playerID && sd.IsMature {
			out[sd.Class]++
		}
	}
	return out, nil
}

func (s *fakeInventoryStore) BeginTx(ctx context.Context) (repository.InventoryTx, error) {
	return &fakeInventoryTx{store: s}, nil
}

func (s *fakeInventoryStore) GetPrice(ctx context.Context, class string) (int, error) {
	p, ok := s.prices[class]
	if !ok {
		return 0, domain.ErrClassNotFound
	}
	return p, nil
}

func (s *fakeInventoryStore) ListPrices(ctx context.Context) (map[string]int, error) {
	out := make(map[string]int, len(s.prices))
	for k, v := range s.prices {
		out[k] = v
	}
	return out, nil
}

type fakeInventoryTx struct {
	store *fakeInventoryStore
}

func (t *fakeInventoryTx) Commit(ctx context.Context) error   { return nil }
func (t *fakeInventoryTx) Rollback(ctx context.Context) error { return nil }

func (t *fakeInventoryTx) GetPlayerForUpdate(ctx context.Context, playerID uuid.UUID) (*domain.Player, error) {
	p, ok := t.store.players[playerID]
	if !ok {
		return nil, domain.ErrPlayerNotFound
	}
	cp := *p
	return &cp, nil
}

func (t *fakeInventoryTx) UpdatePlayerCoins(ctx context.Context, playerID uuid.UUID, coins int64) error {
	t.store.players[playerID].Coins = coins
	return nil
}

func (t *fakeInventoryTx) GetSeedForUpdate(ctx context.Context, seedID uuid.UUID) (*domain.Seed, error) {
	return t.store.GetSeed(ctx, seedID)
}

func (t *fakeInventoryTx) InsertSeed(ctx context.Context, seed domain.Seed) error {
	cp := seed
	t.store.seeds[seed.ID] = &cp
	return nil
}

func (t *fakeInventoryTx) DeleteSeed(ctx context.Context, seedID uuid.UUID) (bool, error) {
	if _, ok := t.store.seeds[seedID]; !ok {
		return false, nil
	}
	delete(t.store.seeds, seedID)
	return true, nil
}

func (t *fakeInventoryTx) InsertPot(ctx context.Context, pot domain.Pot) error {
	cp := pot
	t.store.pots[pot.ID] = &cp
	return nil
}

func (t *fakeInventoryTx) UpsertCatalogPrice(ctx context.Context, class string, basePrice int) error {
	t.store.prices[class] = basePrice
	return nil
}

func TestBuySeed(t *testing.T) {
	store := newFakeInventoryStore()
	playerID := store.addPlayer(250)
	svc := NewService(store, store)

	seed, err := svc.BuySeed(context.Background(), playerID, domain.ClassFire)
	require.NoError(t, err)

	assert.Equal(t, domain.ClassFire, seed.Class)
	assert.Equal(t, 100, seed.BasePrice)
	assert.False(t, seed.IsMature)
	assert.Empty(t, seed.Mutation, "shop seeds carry no mutation")
	assert.Equal(t, int64(150), store.players[playerID].Coins)
}

func TestBuySeed_Failures(t *testing.T) {
	store := newFakeInventoryStore()
	playerID := store.addPlayer(50)
	svc := NewService(store, store)

	_, err := svc.BuySeed(context.Background(), playerID, "obsidian")
	assert.ErrorIs(t, err, domain.ErrClassNotFound)

	_, err = svc.BuySeed(context.Background(), playerID, domain.ClassFire)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, int64(50), store.players[playerID].Coins, "no charge on failure")
}

func TestBuyPot(t *testing.T) {
	store := newFakeInventoryStore()
	playerID := store.addPlayer(1200)
	svc := NewService(store, store)

	pot, err := svc.BuyPot(context.Background(), playerID, domain.PotTimeskip)
	require.NoError(t, err)

	assert.Equal(t, domain.PotTimeskip, pot.Type)
	assert.Equal(t, int64(200), store.players[playerID].Coins)
	assert.Len(t, store.pots, 1)
}

func TestBuyPot_UnknownType(t *testing.T) {
	store := newFakeInventoryStore()
	playerID := store.addPlayer(1000)
	svc := NewService(store, store)

	_, err := svc.BuyPot(context.Background(), playerID, "diamond")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSellToShop(t *testing.T) {
	store := newFakeInventoryStore()
	playerID := store.addPlayer(0)
	seed := &domain.Seed{
		ID: uuid.New(), PlayerID: playerID,
		Class: domain.ClassWater, BasePrice: 100,
		Mutation: domain.TierBlue, IsMature: true,
	}
	store.seeds[seed.ID] = seed

	svc := NewService(store, store)
	payout, err := svc.SellToShop(context.Background(), playerID, seed.ID)
	require.NoError(t, err)

	// floor(100 * 4 * 1.1) = 440
	assert.Equal(t, int64(440), payout)
	assert.Equal(t, int64(440), store.players[playerID].Coins)
	assert.Empty(t, store.seeds)
}

func TestSellToShop_Failures(t *testing.T) {
	store := newFakeInventoryStore()
	playerID := store.addPlayer(0)
	otherID := store.addPlayer(0)

	immature := &domain.Seed{ID: uuid.New(), PlayerID: playerID, Class: domain.ClassFire, BasePrice: 100}
	foreign := &domain.Seed{ID: uuid.New(), PlayerID: otherID, Class: domain.ClassFire, BasePrice: 100, IsMature: true}
	store.seeds[immature.ID] = immature
	store.seeds[foreign.ID] = foreign

	svc := NewService(store, store)

	_, err := svc.SellToShop(context.Background(), playerID, immature.ID)
	assert.ErrorIs(t, err, domain.ErrSeedNotMature)

	_, err = svc.SellToShop(context.Background(), playerID, foreign.ID)
	assert.ErrorIs(t, err, domain.ErrNotOwner)

	_, err = svc.SellToShop(context.Background(), playerID, uuid.New())
	assert.ErrorIs(t, err, domain.ErrSeedNotFound)
}
