package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/hieuluvjingliu/GardenBredN/internal/domain"
)

// Player defines the interface for player persistence
type Player interface {
	CreatePlayer(ctx context.Context, username string) (*domain.Player, error)
	GetPlayerByID(ctx context.Context, playerID uuid.UUID) (*domain.Player, error)
	GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error)
}
