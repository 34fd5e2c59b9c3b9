package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/hieuluvjingliu/GardenBredN/internal/logger"
	"github.com/hieuluvjingliu/GardenBredN/internal/market"
)

// ListSeedRequest represents the request to list a mature seed on the market
type ListSeedRequest struct {
	PlayerID uuid.UUID `json:"player_id" validate:"required"`
	SeedID   uuid.UUID `json:"seed_id" validate:"required"`
	AskPrice int64     `json:"ask_price" validate:"required,min=1"`
}

// BuyListingRequest represents the request to buy an open listing
type BuyListingRequest struct {
	PlayerID  uuid.UUID `json:"player_id" validate:"required"`
	ListingID uuid.UUID `json:"listing_id" validate:"required"`
}

// defaultBrowseLimit caps browse responses when no limit is given.
const defaultBrowseLimit = 50

// MarketHandler handles player market HTTP endpoints
type MarketHandler struct {
	marketSvc market.Service
}

// NewMarketHandler creates a new market handler
func NewMarketHandler(marketSvc market.Service) *MarketHandler {
	return &MarketHandler{marketSvc: marketSvc}
}

// Browse handles fetching open listings
// @Summary Browse open market listings
// @Tags market
// @Produce json
// @Param limit query int false "Maximum listings to return" default(50)
// @Success 200 {array} domain.MarketListing
// @Router /market [get]
func (h *MarketHandler) Browse(w http.ResponseWriter, r *http.Request) {
	limit := defaultBrowseLimit
	if raw := GetOptionalQueryParam(r, "limit", ""); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			respondError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	listings, err := h.marketSvc.Browse(r.Context(), limit)
	if err != nil {
		respondServiceError(w, r, ErrMsgBrowseFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, listings)
}

// BySeller handles fetching a seller's listings regardless of status
// @Summary Get a seller's listings
// @Tags market
// @Produce json
// @Param playerID path string true "Seller ID"
// @Success 200 {array} domain.MarketListing
// @Router /market/seller/{playerID} [get]
func (h *MarketHandler) BySeller(w http.ResponseWriter, r *http.Request) {
	sellerID, ok := GetUUIDParam(r, w, "playerID")
	if !ok {
		return
	}

	listings, err := h.marketSvc.ListingsBySeller(r.Context(), sellerID)
	if err != nil {
		respondServiceError(w, r, ErrMsgBrowseFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, listings)
}

// List handles escrowing a mature seed into an open listing
// @Summary List a seed for sale
// @Description Escrows a mature seed into an open listing. The ask price must fall inside the band derived from the seed's effective value.
// @Tags market
// @Accept json
// @Produce json
// @Param request body ListSeedRequest true "List request"
// @Success 201 {object} domain.MarketListing
// @Failure 400 {object} ErrorResponse "Ask price out of range or seed not mature"
// @Failure 409 {object} ErrorResponse "Seed was spent concurrently"
// @Router /market [post]
func (h *MarketHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req ListSeedRequest
	if err := DecodeAndValidateRequest(r, w, &req, "List seed"); err != nil {
		return
	}

	log.Info("List seed request received", "player_id", req.PlayerID, "seed_id", req.SeedID, "ask_price", req.AskPrice)

	listing, err := h.marketSvc.List(r.Context(), req.PlayerID, req.SeedID, req.AskPrice)
	if err != nil {
		respondServiceError(w, r, ErrMsgListSeedFailed, err)
		return
	}

	respondJSON(w, http.StatusCreated, listing)
}

// Buy handles purchasing an open listing
// @Summary Buy a market listing
// @Tags market
// @Accept json
// @Produce json
// @Param request body BuyListingRequest true "Buy request"
// @Success 200 {object} domain.Seed "The purchased seed"
// @Failure 400 {object} ErrorResponse "Not enough coins"
// @Failure 409 {object} ErrorResponse "Listing already sold"
// @Router /market/buy [post]
func (h *MarketHandler) Buy(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req BuyListingRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Buy listing"); err != nil {
		return
	}

	seed, err := h.marketSvc.Buy(r.Context(), req.PlayerID, req.ListingID)
	if err != nil {
		respondServiceError(w, r, ErrMsgBuyListingFailed, err)
		return
	}

	log.Info("Listing purchased", "player_id", req.PlayerID, "listing_id", req.ListingID, "class", seed.Class)

	respondJSON(w, http.StatusOK, seed)
}
