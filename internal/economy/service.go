package economy

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/hieuluvjingliu/GardenBredN/internal/domain"
	"github.com/hieuluvjingliu/GardenBredN/internal/logger"
	"github.com/hieuluvjingliu/GardenBredN/internal/repository"
)

// Service defines the shop and price catalog business logic
type Service interface {
	// Catalog returns the current class price catalog.
	Catalog(ctx context.Context) (map[string]int, error)

	// ResolvePrice resolves a class to its base price.
	ResolvePrice(ctx context.Context, class string) (int, error)

	// BuySeed purchases a fresh immature seed of a cataloged class.
	BuySeed(ctx context.Context, playerID uuid.UUID, class string) (*domain.Seed, error)

	// BuyPot purchases an inventory pot of the given type.
	BuyPot(ctx context.Context, playerID uuid.UUID, potType string) (*domain.Pot, error)

	// SellToShop destroys a mature seed and credits the payout.
	SellToShop(ctx context.Context, playerID, seedID uuid.UUID) (int64, error)
}

type service struct {
	invRepo repository.Inventory
	catalog repository.Catalog
}

// NewService creates a new economy service
func NewService(invRepo repository.Inventory, catalog repository.Catalog) Service {
	return &service{invRepo: invRepo, catalog: catalog}
}

func (s *service) Catalog(ctx context.Context) (map[string]int, error) {
	prices, err := s.catalog.ListPrices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog prices: %w", err)
	}
	return prices, nil
}

func (s *service) ResolvePrice(ctx context.Context, class string) (int, error) {
	return s.catalog.GetPrice(ctx, class)
}

func (s *service) BuySeed(ctx context.Context, playerID uuid.UUID, class string) (*domain.Seed, error) {
	log := logger.FromContext(ctx)

	price, err := s.catalog.GetPrice(ctx, class)
	if err != nil {
		if errors.Is(err, domain.ErrClassNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to resolve class price: %w", err)
	}

	tx, err := s.invRepo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	player, err := tx.GetPlayerForUpdate(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if player.Coins < int64(price) {
		return nil, &domain.InsufficientFundsError{Required: int64(price), Available: player.Coins}
	}
	if err := tx.UpdatePlayerCoins(ctx, playerID, player.Coins-int64(price)); err != nil {
		return nil, fmt.Errorf("failed to charge for seed: %w", err)
	}

	seed := domain.Seed{
		ID:        uuid.New(),
		PlayerID:  playerID,
		Class:     class,
		BasePrice: price,
	}
	if err := tx.InsertSeed(ctx, seed); err != nil {
		return nil, fmt.Errorf("failed to insert seed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Info("Seed purchased", "playerID", playerID, "class", class, "price", price)
	return &seed, nil
}

func (s *service) BuyPot(ctx context.Context, playerID uuid.UUID, potType string) (*domain.Pot, error) {
	log := logger.FromContext(ctx)

	price := domain.PotPrice(potType)
	if price == 0 {
		return nil, fmt.Errorf("%w: unknown pot type %q", domain.ErrInvalidInput, potType)
	}

	tx, err := s.invRepo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	player, err := tx.GetPlayerForUpdate(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if player.Coins < price {
		return nil, &domain.InsufficientFundsError{Required: price, Available: player.Coins}
	}
	if err := tx.UpdatePlayerCoins(ctx, playerID, player.Coins-price); err != nil {
		return nil, fmt.Errorf("failed to charge for pot: %w", err)
	}

	pot := domain.Pot{ID: uuid.New(), PlayerID: playerID, Type: potType}
	if err := tx.InsertPot(ctx, pot); err != nil {
		return nil, fmt.Errorf("failed to insert pot: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Info("Pot purchased", "playerID", playerID, "type", potType, "price", price)
	return &pot, nil
}

func (s *service) SellToShop(ctx context.Context, playerID, seedID uuid.UUID) (int64, error) {
	log := logger.FromContext(ctx)

	tx, err := s.invRepo.BeginTx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	seed, err := tx.GetSeedForUpdate(ctx, seedID)
	if err != nil {
		return 0, err
	}
	if seed.PlayerID != playerID {
		return 0, domain.ErrNotOwner
	}
	if !seed.IsMature {
		return 0, domain.ErrSeedNotMature
	}

	payout := int64(math.Floor(float64(seed.EffectiveValue()) * domain.SellToShopRate))

	deleted, err := tx.DeleteSeed(ctx, seedID)
	if err != nil {
		return 0, fmt.Errorf("failed to consume seed: %w", err)
	}
	if !deleted {
		return 0, domain.ErrConflict
	}

	player, err := tx.GetPlayerForUpdate(ctx, playerID)
	if err != nil {
		return 0, err
	}
	if err := tx.UpdatePlayerCoins(ctx, playerID, player.Coins+payout); err != nil {
		return 0, fmt.Errorf("failed to credit payout: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Info("Seed sold to shop", "playerID", playerID, "class", seed.Class, "payout", payout)
	return payout, nil
}
