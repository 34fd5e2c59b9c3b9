package player

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/hieuluvjingliu/GardenBredN/internal/domain"
	"github.com/hieuluvjingliu/GardenBredN/internal/logger"
	"github.com/hieuluvjingliu/GardenBredN/internal/repository"
)

// Service defines player registration and lookup
type Service interface {
	// Register creates a player with their free first floor. Registering an
	// existing username returns that player instead.
	Register(ctx context.Context, username string) (*domain.Player, error)

	Get(ctx context.Context, playerID uuid.UUID) (*domain.Player, error)
	GetByUsername(ctx context.Context, username string) (*domain.Player, error)
}

type service struct {
	playerRepo repository.Player
	farmRepo   repository.Farm
}

// NewService creates a new player service
func NewService(playerRepo repository.Player, farmRepo repository.Farm) Service {
	return &service{playerRepo: playerRepo, farmRepo: farmRepo}
}

func (s *service) Register(ctx context.Context, username string) (*domain.Player, error) {
	log := logger.FromContext(ctx)

	if username == "" {
		return nil, fmt.Errorf("%w: username required", domain.ErrInvalidInput)
	}

	if existing, err := s.playerRepo.GetPlayerByUsername(ctx, username); err == nil {
		return existing, nil
	} else if !errors.Is(err, domain.ErrPlayerNotFound) {
		return nil, fmt.Errorf("failed to look up player: %w", err)
	}

	created, err := s.playerRepo.CreatePlayer(ctx, username)
	if err != nil {
		return nil, err
	}

	// The first floor is free and comes with the account.
	tx, err := s.farmRepo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	if _, err := tx.CreateFloor(ctx, created.ID, 1); err != nil {
		return nil, fmt.Errorf("failed to create first floor: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Info("Player registered", "playerID", created.ID, "username", username)
	return created, nil
}

func (s *service) Get(ctx context.Context, playerID uuid.UUID) (*domain.Player, error) {
	return s.playerRepo.GetPlayerByID(ctx, playerID)
}

func (s *service) GetByUsername(ctx context.Context, username string) (*domain.Player, error) {
	return s.playerRepo.GetPlayerByUsername(ctx, username)
}
