package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/hieuluvjingliu/GardenBredN/internal/economy"
	"github.com/hieuluvjingliu/GardenBredN/internal/logger"
)

// BuySeedRequest represents the request to buy a seed from the shop
type BuySeedRequest struct {
	PlayerID uuid.UUID `json:"player_id" validate:"required"`
	Class    string    `json:"class" validate:"required,max=100"`
}

// BuyPotRequest represents the request to buy a pot from the shop
type BuyPotRequest struct {
	PlayerID uuid.UUID `json:"player_id" validate:"required"`
	PotType  string    `json:"pot_type" validate:"required,pottype"`
}

// SellSeedRequest represents the request to sell a mature seed to the shop
type SellSeedRequest struct {
	PlayerID uuid.UUID `json:"player_id" validate:"required"`
	SeedID   uuid.UUID `json:"seed_id" validate:"required"`
}

// SellSeedResponse is the response for a successful shop sale
type SellSeedResponse struct {
	Message string `json:"message"`
	Payout  int64  `json:"payout"`
}

// EconomyHandler handles shop HTTP endpoints
type EconomyHandler struct {
	economySvc economy.Service
}

// NewEconomyHandler creates a new economy handler
func NewEconomyHandler(economySvc economy.Service) *EconomyHandler {
	return &EconomyHandler{economySvc: economySvc}
}

// Catalog handles fetching the class price catalog
// @Summary Get the seed price catalog
// @Description Returns every known seed class with its current base price, including classes discovered through breeding.
// @Tags economy
// @Produce json
// @Success 200 {object} map[string]int
// @Router /shop/catalog [get]
func (h *EconomyHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.economySvc.Catalog(r.Context())
	if err != nil {
		respondServiceError(w, r, ErrMsgCatalogFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, catalog)
}

// BuySeed handles purchasing a fresh immature seed
// @Summary Buy a seed
// @Tags economy
// @Accept json
// @Produce json
// @Param request body BuySeedRequest true "Buy seed request"
// @Success 201 {object} domain.Seed
// @Failure 400 {object} ErrorResponse "Unknown class or not enough coins"
// @Router /shop/seed [post]
func (h *EconomyHandler) BuySeed(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req BuySeedRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Buy seed"); err != nil {
		return
	}

	log.Info("Buy seed request received", "player_id", req.PlayerID, "class", req.Class)

	seed, err := h.economySvc.BuySeed(r.Context(), req.PlayerID, req.Class)
	if err != nil {
		respondServiceError(w, r, ErrMsgBuySeedFailed, err)
		return
	}

	respondJSON(w, http.StatusCreated, seed)
}

// BuyPot handles purchasing an inventory pot
// @Summary Buy a pot
// @Tags economy
// @Accept json
// @Produce json
// @Param request body BuyPotRequest true "Buy pot request"
// @Success 201 {object} domain.Pot
// @Failure 400 {object} ErrorResponse "Unknown pot type or not enough coins"
// @Router /shop/pot [post]
func (h *EconomyHandler) BuyPot(w http.ResponseWriter, r *http.Request) {
	var req BuyPotRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Buy pot"); err != nil {
		return
	}

	pot, err := h.economySvc.BuyPot(r.Context(), req.PlayerID, req.PotType)
	if err != nil {
		respondServiceError(w, r, ErrMsgBuyPotFailed, err)
		return
	}

	respondJSON(w, http.StatusCreated, pot)
}

// SellSeed handles selling a mature seed back to the shop
// @Summary Sell a mature seed to the shop
// @Tags economy
// @Accept json
// @Produce json
// @Param request body SellSeedRequest true "Sell request"
// @Success 200 {object} SellSeedResponse
// @Failure 400 {object} ErrorResponse "Seed is not mature"
// @Failure 409 {object} ErrorResponse "Seed was spent concurrently"
// @Router /shop/sell [post]
func (h *EconomyHandler) SellSeed(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req SellSeedRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Sell seed"); err != nil {
		return
	}

	payout, err := h.economySvc.SellToShop(r.Context(), req.PlayerID, req.SeedID)
	if err != nil {
		respondServiceError(w, r, ErrMsgSellSeedFailed, err)
		return
	}

	log.Info("Seed sold to shop", "player_id", req.PlayerID, "payout", payout)

	respondJSON(w, http.StatusOK, SellSeedResponse{Message: "Seed sold", Payout: payout})
}
