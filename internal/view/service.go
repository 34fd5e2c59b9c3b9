package view

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hieuluvjingliu/GardenBredN/internal/domain"
	"github.com/hieuluvjingliu/GardenBredN/internal/farm"
	"github.com/hieuluvjingliu/GardenBredN/internal/gacha"
	"github.com/hieuluvjingliu/GardenBredN/internal/repository"
)

// Cache sizing; a snapshot is only fresh between two push intervals anyway.
const (
	defaultCacheSize = 1024
	defaultCacheTTL  = 2 * time.Second
)

// Service computes the full per-player snapshot served by the state endpoint
// and pushed over the live-update channel.
type Service interface {
	// Get returns a possibly cached snapshot.
	Get(ctx context.Context, playerID uuid.UUID) (*domain.PlayerView, error)

	// Compute builds a fresh snapshot, bypassing and refilling the cache.
	Compute(ctx context.Context, playerID uuid.UUID) (*domain.PlayerView, error)
}

type service struct {
	playerRepo repository.Player
	invRepo    repository.Inventory
	marketRepo repository.Market
	farmSvc    farm.Service
	gachaSvc   gacha.Service
	cache      *viewCache
	now        func() time.Time
}

// NewService creates a new view service
func NewService(
	playerRepo repository.Player,
	invRepo repository.Inventory,
	marketRepo repository.Market,
	farmSvc farm.Service,
	gachaSvc gacha.Service,
) Service {
	return &service{
		playerRepo: playerRepo,
		invRepo:    invRepo,
		marketRepo: marketRepo,
		farmSvc:    farmSvc,
		gachaSvc:   gachaSvc,
		cache:      newViewCache(defaultCacheSize, defaultCacheTTL),
		now:        time.Now,
	}
}

func (s *service) Get(ctx context.Context, playerID uuid.UUID) (*domain.PlayerView, error) {
	if v, ok := s.cache.Get(playerID); ok {
		return v, nil
	}
	return s.Compute(ctx, playerID)
}

func (s *service) Compute(ctx context.Context, playerID uuid.UUID) (*domain.PlayerView, error) {
	player, err := s.playerRepo.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	floors, err := s.farmSvc.GetFarm(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to build farm view: %w", err)
	}

	seeds, err := s.invRepo.ListSeeds(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list seeds: %w", err)
	}
	pots, err := s.invRepo.ListPots(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pots: %w", err)
	}

	listings, err := s.marketRepo.ListBySeller(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list listings: %w", err)
	}

	gachaState, err := s.gachaSvc.GetState(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to build gacha state: %w", err)
	}

	v := &domain.PlayerView{
		Player:     *player,
		Floors:     floors,
		Seeds:      seeds,
		Pots:       pots,
		Listings:   listings,
		Gacha:      *gachaState,
		ComputedAt: s.now(),
	}
	s.cache.Set(playerID, v)
	return v, nil
}
