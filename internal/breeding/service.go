package breeding

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/google/uuid"

	"github.com/hieuluvjingliu/GardenBredN/internal/classweights"
	"github.com/hieuluvjingliu/GardenBredN/internal/domain"
	"github.com/hieuluvjingliu/GardenBredN/internal/logger"
	"github.com/hieuluvjingliu/GardenBredN/internal/mutation"
	"github.com/hieuluvjingliu/GardenBredN/internal/repository"
)

// TableSource yields the current class weight table used for offspring draws.
type TableSource interface {
	Table() *classweights.Table
}

// Service defines the breeding business logic
type Service interface {
	// Breed destroys two mature parent seeds and produces one immature
	// offspring seed. The offspring's class comes from the weighted class
	// draw, its mutation from an independent tier draw, and its base price
	// from the combined parent prices. The price catalog is updated so the
	// offspring class can be bought and valued from then on.
	Breed(ctx context.Context, playerID, seedAID, seedBID uuid.UUID) (*domain.Seed, error)
}

type service struct {
	invRepo repository.Inventory
	weights TableSource
	roller  *mutation.Roller
	rnd     func() float64
}

// NewService creates a new breeding service
func NewService(invRepo repository.Inventory, weights TableSource, roller *mutation.Roller) Service {
	return &service{
		invRepo: invRepo,
		weights: weights,
		roller:  roller,
		rnd:     rand.Float64,
	}
}

func (s *service) Breed(ctx context.Context, playerID, seedAID, seedBID uuid.UUID) (*domain.Seed, error) {
	log := logger.FromContext(ctx)

	if seedAID == seedBID {
		return nil, fmt.Errorf("%w: cannot breed a seed with itself", domain.ErrInvalidInput)
	}

	tx, err := s.invRepo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	parentA, err := tx.GetSeedForUpdate(ctx, seedAID)
	if err != nil {
		return nil, err
	}
	parentB, err := tx.GetSeedForUpdate(ctx, seedBID)
	if err != nil {
		return nil, err
	}
	for _, parent := range []*domain.Seed{parentA, parentB} {
		if parent.PlayerID != playerID {
			return nil, domain.ErrNotOwner
		}
		if !parent.IsMature {
			return nil, domain.ErrSeedNotMature
		}
	}

	class := s.weights.Table().Draw(s.rnd())
	price := int(math.Floor(float64(parentA.BasePrice+parentB.BasePrice) * domain.BreedPriceRate))
	if price < 1 {
		price = 1
	}
	tier := s.roller.Independent()

	for _, id := range []uuid.UUID{seedAID, seedBID} {
		deleted, err := tx.DeleteSeed(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to consume parent seed: %w", err)
		}
		if !deleted {
			return nil, domain.ErrConflict
		}
	}

	child := domain.Seed{
		ID:        uuid.New(),
		PlayerID:  playerID,
		Class:     class,
		BasePrice: price,
		Mutation:  tier,
	}
	if err := tx.InsertSeed(ctx, child); err != nil {
		return nil, fmt.Errorf("failed to insert offspring seed: %w", err)
	}

	if err := tx.UpsertCatalogPrice(ctx, class, price); err != nil {
		return nil, fmt.Errorf("failed to update price catalog: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Info("Seeds bred", "playerID", playerID, "class", class, "price", price, "tier", tier)
	return &child, nil
}
