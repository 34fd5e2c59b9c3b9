package market

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

// Service defines the player market business logic
type Service interface {
	// Browse returns open listings, newest first.
	Browse(ctx context.Context, limit int) ([]domain.MarketListing, error)

	// ListingsBySeller returns all of a seller's listings regardless of status.
	ListingsBySeller(ctx context.Context, sellerID uuid.UUID) ([]domain.MarketListing, error)

	// List escrows a mature seed into an open listing at the asked price.
	List(ctx context.Context, playerID, seedID uuid.UUID, askPrice int64) (*domain.MarketListing, error)

	// Buy purchases an open listing: coins move buyer to seller and a mature
	// seed is issued to the buyer.
	Buy(ctx context.Context, buyerID, listingID uuid.UUID) (*domain.Seed, error)
}

type service struct {
	repo repository.Market
	bus  event.Bus
	now  func() time.Time
}

// NewService creates a new market service
func NewService(repo repository.Market, bus event.Bus) Service {
	return &service{repo: repo, bus: bus, now: time.Now}
}

// AskBounds returns the inclusive ask price range for a seed: the effective
// value (base price scaled by mutation, never below 1) scaled by the market
// band rates, floored.
func AskBounds(seed *domain.Seed) (min, max int64) {
	eff := float64(seed.EffectiveValue())
	return int64(math.Floor(eff * domain.MarketAskMinRate)), int64(math.Floor(eff * domain.MarketAskMaxRate))
}

func (s *service) Browse(ctx context.Context, limit int) ([]domain.MarketListing, error) {
	listings, err := s.repo.ListOpen(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list open listings: %w", err)
	}
	return listings, nil
}

func (s *service) ListingsBySeller(ctx context.Context, sellerID uuid.UUID) ([]domain.MarketListing, error) {
	listings, err := s.repo.ListBySeller(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list seller listings: %w", err)
	}
	return listings, nil
}

func (s *service) List(ctx context.Context, playerID, seedID uuid.UUID, askPrice int64) (*domain.MarketListing, error) {
	log := logger.FromContext(ctx)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	seed, err := tx.GetSeedForUpdate(ctx, seedID)
	if err != nil {
		return nil, err
	}
	if seed.PlayerID != playerID {
		return nil, domain.ErrNotOwner
	}
	if !seed.IsMature {
		return nil, domain.ErrSeedNotMature
	}

	min, max := AskBounds(seed)
	if askPrice < min || askPrice > max {
		return nil, fmt.Errorf("%w: ask %d outside [%d, %d]", domain.ErrAskPriceOutOfRange, askPrice, min, max)
	}

	// Escrow: the seed leaves the seller's inventory while listed.
	deleted, err := tx.DeleteSeed(ctx, seedID)
	if err != nil {
		return nil, fmt.Errorf("failed to escrow seed: %w", err)
	}
	if !deleted {
		return nil, domain.ErrConflict
	}

	listing := domain.MarketListing{
		ID:        uuid.New(),
		SellerID:  playerID,
		Class:     seed.Class,
		BasePrice: seed.BasePrice,
		Mutation:  seed.Mutation,
		AskPrice:  askPrice,
		Status:    domain.ListingOpen,
		CreatedAt: s.now(),
	}
	if err := tx.InsertListing(ctx, listing); err != nil {
		return nil, fmt.Errorf("failed to insert listing: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	metrics.MarketListings.Inc()
	log.Info("Seed listed", "playerID", playerID, "listingID", listing.ID, "ask", askPrice)
	return &listing, nil
}

func (s *service) Buy(ctx context.Context, buyerID, listingID uuid.UUID) (*domain.Seed, error) {
	log := logger.FromContext(ctx)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	listing, err := tx.GetListingForUpdate(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing.Status != domain.ListingOpen {
		return nil, domain.ErrListingNotOpen
	}

	buyer, err := tx.GetPlayerForUpdate(ctx, buyerID)
	if err != nil {
		return nil, err
	}
	if buyer.Coins < listing.AskPrice {
		return nil, &domain.InsufficientFundsError{Required: listing.AskPrice, Available: buyer.Coins}
	}
	if err := tx.UpdatePlayerCoins(ctx, buyerID, buyer.Coins-listing.AskPrice); err != nil {
		return nil, fmt.Errorf("failed to charge buyer: %w", err)
	}

	seller, err := tx.GetPlayerForUpdate(ctx, listing.SellerID)
	if err != nil {
		return nil, err
	}
	if err := tx.UpdatePlayerCoins(ctx, listing.SellerID, seller.Coins+listing.AskPrice); err != nil {
		return nil, fmt.Errorf("failed to credit seller: %w", err)
	}

	if err := tx.MarkListingSold(ctx, listingID, s.now()); err != nil {
		return nil, err
	}

	seed := domain.Seed{
		ID:        uuid.New(),
		PlayerID:  buyerID,
		Class:     listing.Class,
		BasePrice: listing.BasePrice,
		Mutation:  listing.Mutation,
		IsMature:  true,
	}
	if err := tx.InsertSeed(ctx, seed); err != nil {
		return nil, fmt.Errorf("failed to issue seed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	metrics.MarketSales.Inc()
	if s.bus != nil {
		if err := s.bus.Publish(ctx, event.NewMarketSoldEvent(
			listingID.String(), listing.SellerID.String(), buyerID.String(),
			listing.Class, listing.Mutation, listing.AskPrice)); err != nil {
			log.Warn("Event publish failed", "type", event.MarketSold, "error", err)
		}
	}
	log.Info("Listing sold", "listingID", listingID, "buyerID", buyerID, "price", listing.AskPrice)
	return &seed, nil
}
