package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/hieuluvjingliu/GardenBredN/internal/domain"
)

// Gacha defines the interface for gacha profile and roll history persistence
type Gacha interface {
	GetProfile(ctx context.Context, playerID uuid.UUID) (*domain.GachaProfile, error)
	CreateProfile(ctx context.Context, playerID uuid.UUID, queue []string) (*domain.GachaProfile, error)

	// SaveQueue persists a lazily extended queue. Callers only invoke it when
	// the queue actually grew.
	SaveQueue(ctx context.Context, playerID uuid.UUID, queue []string) error

	ListRolls(ctx context.Context, playerID uuid.UUID, limit int) ([]domain.RollRecord, error)

	BeginTx(ctx context.Context) (GachaTx, error)
}

// GachaTx defines the transactional operations for a single roll. Everything a
// roll touches - seed consumption, reward issuance, counter updates and the
// history record - commits as one unit.
type GachaTx interface {
	Tx
	PlayerTx
	SeedTx

	GetProfileForUpdate(ctx context.Context, playerID uuid.UUID) (*domain.GachaProfile, error)
	SaveProfile(ctx context.Context, profile domain.GachaProfile) error

	// SelectMatureSeedIDs returns up to limit ids of the player's mature seeds
	// of the given class.
	SelectMatureSeedIDs(ctx context.Context, playerID uuid.UUID, class string, limit int) ([]uuid.UUID, error)

	// DeleteSeeds removes the exact ids and reports how many rows went away,
	// so the caller can detect a concurrent consumption.
	DeleteSeeds(ctx context.Context, seedIDs []uuid.UUID) (int, error)

	CountMatureSeeds(ctx context.Context, playerID uuid.UUID, class string) (int, error)

	InsertRollRecord(ctx context.Context, record domain.RollRecord) error
}
