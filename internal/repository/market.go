package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hieuluvjingliu/GardenBredN/internal/domain"
)

// Market defines the interface for market listing persistence
type Market interface {
	GetListing(ctx context.Context, listingID uuid.UUID) (*domain.MarketListing, error)
	ListOpen(ctx context.Context, limit int) ([]domain.MarketListing, error)
	ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]domain.MarketListing, error)

	BeginTx(ctx context.Context) (MarketTx, error)
}

// MarketTx defines the transactional operations for listing and buying
type MarketTx interface {
	Tx
	PlayerTx
	SeedTx

	InsertListing(ctx context.Context, listing domain.MarketListing) error
	GetListingForUpdate(ctx context.Context, listingID uuid.UUID) (*domain.MarketListing, error)
	MarkListingSold(ctx context.Context, listingID uuid.UUID, soldAt time.Time) error
}
