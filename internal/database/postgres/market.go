package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hieuluvjingliu/GardenBredN/internal/domain"
	"github.com/hieuluvjingliu/GardenBredN/internal/repository"
)

// MarketRepository implements the market repository for PostgreSQL
type MarketRepository struct {
	db *pgxpool.Pool
}

// NewMarketRepository creates a new market repository
func NewMarketRepository(db *pgxpool.Pool) *MarketRepository {
	return &MarketRepository{db: db}
}

// GetListing retrieves a single listing
func (r *MarketRepository) GetListing(ctx context.Context, listingID uuid.UUID) (*domain.MarketListing, error) {
	row := r.db.QueryRow(ctx,
		"SELECT "+listingColumns+" FROM market_listings WHERE listing_id = $1", listingID)
	listing, err := scanListing(row)
	if err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}
	return listing, nil
}

// ListOpen returns open listings, newest first
func (r *MarketRepository) ListOpen(ctx context.Context, limit int) ([]domain.MarketListing, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+listingColumns+` FROM market_listings
		 WHERE status = $1 ORDER BY created_at DESC LIMIT $2`,
		domain.ListingOpen, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list open listings: %w", err)
	}
	return collectListings(rows)
}

// ListBySeller returns all of a seller's listings, newest first
func (r *MarketRepository) ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]domain.MarketListing, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+listingColumns+` FROM market_listings
		 WHERE seller_id = $1 ORDER BY created_at DESC`, sellerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list seller listings: %w", err)
	}
	return collectListings(rows)
}

func collectListings(rows pgx.Rows) ([]domain.MarketListing, error) {
	defer rows.Close()
	var listings []domain.MarketListing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		listings = append(listings, *l)
	}
	return listings, rows.Err()
}

// BeginTx starts a transaction and returns a MarketTx
func (r *MarketRepository) BeginTx(ctx context.Context) (repository.MarketTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin market transaction: %w", err)
	}
	return &marketTx{tx: tx}, nil
}

// marketTx implements repository.MarketTx
type marketTx struct {
	tx pgx.Tx
}

func (t *marketTx) Commit(ctx context.Context) error   { return t.tx.Commit(ctx) }
func (t *marketTx) Rollback(ctx context.Context) error { return t.tx.Rollback(ctx) }

func (t *marketTx) GetPlayerForUpdate(ctx context.Context, playerID uuid.UUID) (*domain.Player, error) {
	return getPlayerForUpdate(ctx, t.tx, playerID)
}

func (t *marketTx) UpdatePlayerCoins(ctx context.Context, playerID uuid.UUID, coins int64) error {
	return updatePlayerCoins(ctx, t.tx, playerID, coins)
}

func (t *marketTx) GetSeedForUpdate(ctx context.Context, seedID uuid.UUID) (*domain.Seed, error) {
	return getSeedForUpdate(ctx, t.tx, seedID)
}

func (t *marketTx) InsertSeed(ctx context.Context, seed domain.Seed) error {
	return insertSeed(ctx, t.tx, seed)
}

func (t *marketTx) DeleteSeed(ctx context.Context, seedID uuid.UUID) (bool, error) {
	return deleteSeed(ctx, t.tx, seedID)
}

func (t *marketTx) InsertListing(ctx context.Context, listing domain.MarketListing) error {
	id := listing.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	_, err := t.tx.Exec(ctx,
		`INSERT INTO market_listings (listing_id, seller_id, class, base_price, mutation, ask_price, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, listing.SellerID, listing.Class, listing.BasePrice, listing.Mutation,
		listing.AskPrice, domain.ListingOpen)
	if err != nil {
		return fmt.Errorf("failed to insert listing: %w", err)
	}
	return nil
}

// GetListingForUpdate locks a listing row so two buyers cannot both pay for it
func (t *marketTx) GetListingForUpdate(ctx context.Context, listingID uuid.UUID) (*domain.MarketListing, error) {
	row := t.tx.QueryRow(ctx,
		"SELECT "+listingColumns+" FROM market_listings WHERE listing_id = $1 FOR UPDATE", listingID)
	return scanListing(row)
}

func (t *marketTx) MarkListingSold(ctx context.Context, listingID uuid.UUID, soldAt time.Time) error {
	tag, err := t.tx.Exec(ctx,
		`UPDATE market_listings SET status = $2, sold_at = $3
		 WHERE listing_id = $1 AND status = $4`,
		listingID, domain.ListingSold, soldAt, domain.ListingOpen)
	if err != nil {
		return fmt.Errorf("failed to mark listing sold: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrListingNotOpen
	}
	return nil
}
