package handler_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/hieuluvjingliu/GardenBredN/internal/domain"
)

// Function-field service stubs. Each test wires only the methods the handler
// under test will call; an unexpected call panics on the nil function.

type stubFarmService struct {
	getFarm    func(ctx context.Context, playerID uuid.UUID) ([]domain.FloorView, error)
	placePot   func(ctx context.Context, playerID uuid.UUID, floorOrdinal, slot int, potID uuid.UUID) (*domain.Plot, error)
	plant      func(ctx context.Context, playerID uuid.UUID, floorOrdinal, slot int, seedID uuid.UUID, mutation string) (*domain.Plot, error)
	harvest    func(ctx context.Context, playerID uuid.UUID, floorOrdinal, slot int) (*domain.Seed, error)
	harvestAll func(ctx context.Context, playerID uuid.UUID) (*domain.HarvestAllResult, error)
	remove     func(ctx context.Context, playerID uuid.UUID, floorOrdinal, slot int) error
	setLock    func(ctx context.Context, playerID uuid.UUID, floorOrdinal, slot int, locked bool) error
	steal      func(ctx context.Context, attackerID, targetID uuid.UUID, floorOrdinal, slot int) (*domain.StealResult, error)
	buyFloor   func(ctx context.Context, playerID uuid.UUID) (*domain.Floor, error)
	buyTrap    func(ctx context.Context, playerID uuid.UUID, units int) (*domain.TrapPurchase, error)
}

func (s *stubFarmService) GetFarm(ctx context.Context, playerID uuid.UUID) ([]domain.FloorView, error) {
	return s.getFarm(ctx, playerID)
}

func (s *stubFarmService) PlacePot(ctx context.Context, playerID uuid.UUID, floorOrdinal, slot int, potID uuid.UUID) (*domain.Plot, error) {
	return s.placePot(ctx, playerID, floorOrdinal, slot, potID)
}

func (s *stubFarmService) Plant(ctx context.Context, playerID uuid.UUID, floorOrdinal, slot int, seedID uuid.UUID, mutation string) (*domain.Plot, error) {
	return s.plant(ctx, playerID, floorOrdinal, slot, seedID, mutation)
}

func (s *stubFarmService) Harvest(ctx context.Context, playerID uuid.UUID, floorOrdinal, slot int) (*domain.Seed, error) {
	return s.harvest(ctx, playerID, floorOrdinal, slot)
}

func (s *stubFarmService) HarvestAll(ctx context.Context, playerID uuid.UUID) (*domain.HarvestAllResult, error) {
	return s.harvestAll(ctx, playerID)
}

func (s *stubFarmService) Remove(ctx context.Context, playerID uuid.UUID, floorOrdinal, slot int) error {
	return s.remove(ctx, playerID, floorOrdinal, slot)
}

func (s *stubFarmService) SetLock(ctx context.Context, playerID uuid.UUID, floorOrdinal, slot int, locked bool) error {
	return s.setLock(ctx, playerID, floorOrdinal, slot, locked)
}

func (s *stubFarmService) Steal(ctx context.Context, attackerID, targetID uuid.UUID, floorOrdinal, slot int) (*domain.StealResult, error) {
	return s.steal(ctx, attackerID, targetID, floorOrdinal, slot)
}

func (s *stubFarmService) BuyFloor(ctx context.Context, playerID uuid.UUID) (*domain.Floor, error) {
	return s.buyFloor(ctx, playerID)
}

func (s *stubFarmService) BuyTrap(ctx context.Context, playerID uuid.UUID, units int) (*domain.TrapPurchase, error) {
	return s.buyTrap(ctx, playerID, units)
}

type stubGachaService struct {
	getState func(ctx context.Context, playerID uuid.UUID) (*domain.GachaState, error)
	roll     func(ctx context.Context, playerID uuid.UUID) (*domain.RollResult, error)
	history  func(ctx context.Context, playerID uuid.UUID, limit int) ([]domain.RollRecord, error)
}

func (s *stubGachaService) GetState(ctx context.Context, playerID uuid.UUID) (*domain.GachaState, error) {
	return s.getState(ctx, playerID)
}

func (s *stubGachaService) Roll(ctx context.Context, playerID uuid.UUID) (*domain.RollResult, error) {
	return s.roll(ctx, playerID)
}

func (s *stubGachaService) History(ctx context.Context, playerID uuid.UUID, limit int) ([]domain.RollRecord, error) {
	return s.history(ctx, playerID, limit)
}

type stubMarketService struct {
	browse   func(ctx context.Context, limit int) ([]domain.MarketListing, error)
	bySeller func(ctx context.Context, sellerID uuid.UUID) ([]domain.MarketListing, error)
	list     func(ctx context.Context, playerID, seedID uuid.UUID, askPrice int64) (*domain.MarketListing, error)
	buy      func(ctx context.Context, buyerID, listingID uuid.UUID) (*domain.Seed, error)
}

func (s *stubMarketService) Browse(ctx context.Context, limit int) ([]domain.MarketListing, error) {
	return s.browse(ctx, limit)
}

func (s *stubMarketService) ListingsBySeller(ctx context.Context, sellerID uuid.UUID) ([]domain.MarketListing, error) {
	return s.bySeller(ctx, sellerID)
}

func (s *stubMarketService) List(ctx context.Context, playerID, seedID uuid.UUID, askPrice int64) (*domain.MarketListing, error) {
	return s.list(ctx, playerID, seedID, askPrice)
}

func (s *stubMarketService) Buy(ctx context.Context, buyerID, listingID uuid.UUID) (*domain.Seed, error) {
	return s.buy(ctx, buyerID, listingID)
}

type stubEconomyService struct {
	catalog      func(ctx context.Context) (map[string]int, error)
	resolvePrice func(ctx context.Context, class string) (int, error)
	buySeed      func(ctx context.Context, playerID uuid.UUID, class string) (*domain.Seed, error)
	buyPot       func(ctx context.Context, playerID uuid.UUID, potType string) (*domain.Pot, error)
	sellToShop   func(ctx context.Context, playerID, seedID uuid.UUID) (int64, error)
}

func (s *stubEconomyService) Catalog(ctx context.Context) (map[string]int, error) {
	return s.catalog(ctx)
}

func (s *stubEconomyService) ResolvePrice(ctx context.Context, class string) (int, error) {
	return s.resolvePrice(ctx, class)
}

func (s *stubEconomyService) BuySeed(ctx context.Context, playerID uuid.UUID, class string) (*domain.Seed, error) {
	return s.buySeed(ctx, playerID, class)
}

func (s *stubEconomyService) BuyPot(ctx context.Context, playerID uuid.UUID, potType string) (*domain.Pot, error) {
	return s.buyPot(ctx, playerID, potType)
}

func (s *stubEconomyService) SellToShop(ctx context.Context, playerID, seedID uuid.UUID) (int64, error) {
	return s.sellToShop(ctx, playerID, seedID)
}

type stubBreedingService struct {
	breed func(ctx context.Context, playerID, seedAID, seedBID uuid.UUID) (*domain.Seed, error)
}

func (s *stubBreedingService) Breed(ctx context.Context, playerID, seedAID, seedBID uuid.UUID) (*domain.Seed, error) {
	return s.breed(ctx, playerID, seedAID, seedBID)
}

type stubPlayerService struct {
	register      func(ctx context.Context, username string) (*domain.Player, error)
	get           func(ctx context.Context, playerID uuid.UUID) (*domain.Player, error)
	getByUsername func(ctx context.Context, username string) (*domain.Player, error)
}

func (s *stubPlayerService) Register(ctx context.Context, username string) (*domain.Player, error) {
	return s.register(ctx, username)
}

func (s *stubPlayerService) Get(ctx context.Context, playerID uuid.UUID) (*domain.Player, error) {
	return s.get(ctx, playerID)
}

func (s *stubPlayerService) GetByUsername(ctx context.Context, username string) (*domain.Player, error) {
	return s.getByUsername(ctx, username)
}
