package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/hieuluvjingliu/GardenBredN/internal/farm"
	"github.com/hieuluvjingliu/GardenBredN/internal/logger"
)

// PlacePotRequest represents the request to place an inventory pot on a plot
type PlacePotRequest struct {
	PlayerID uuid.UUID `json:"player_id" validate:"required"`
	Floor    int       `json:"floor" validate:"required,min=1"`
	Slot     int       `json:"slot" validate:"gte=0"`
	PotID    uuid.UUID `json:"pot_id" validate:"required"`
}

// PlantRequest represents the request to plant an inventory seed
type PlantRequest struct {
	PlayerID uuid.UUID `json:"player_id" validate:"required"`
	Floor    int       `json:"floor" validate:"required,min=1"`
	Slot     int       `json:"slot" validate:"gte=0"`
	SeedID   uuid.UUID `json:"seed_id" validate:"required"`
	Mutation string    `json:"mutation,omitempty" validate:"omitempty,max=20"`
}

// PlotRequest addresses a single plot for harvest, remove and similar actions
type PlotRequest struct {
	PlayerID uuid.UUID `json:"player_id" validate:"required"`
	Floor    int       `json:"floor" validate:"required,min=1"`
	Slot     int       `json:"slot" validate:"gte=0"`
}

// PlayerRequest addresses a whole farm
type PlayerRequest struct {
	PlayerID uuid.UUID `json:"player_id" validate:"required"`
}

// SetLockRequest represents the request to toggle a plot's lock
type SetLockRequest struct {
	PlayerID uuid.UUID `json:"player_id" validate:"required"`
	Floor    int       `json:"floor" validate:"required,min=1"`
	Slot     int       `json:"slot" validate:"gte=0"`
	Locked   bool      `json:"locked"`
}

// StealRequest represents the request to steal from another player's plot
type StealRequest struct {
	PlayerID uuid.UUID `json:"player_id" validate:"required"`
	TargetID uuid.UUID `json:"target_id" validate:"required"`
	Floor    int       `json:"floor" validate:"required,min=1"`
	Slot     int       `json:"slot" validate:"gte=0"`
}

// BuyTrapRequest represents the request to buy trap units
type BuyTrapRequest struct {
	PlayerID uuid.UUID `json:"player_id" validate:"required"`
	Units    int       `json:"units" validate:"required,min=1"`
}

// FarmHandler handles farm HTTP endpoints
type FarmHandler struct {
	farmSvc farm.Service
}

// NewFarmHandler creates a new farm handler
func NewFarmHandler(farmSvc farm.Service) *FarmHandler {
	return &FarmHandler{farmSvc: farmSvc}
}

// GetFarm handles fetching a player's floors and plots
// @Summary Get a player's farm
// @Tags farm
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {array} domain.FloorView
// @Failure 404 {object} ErrorResponse "Player not found"
// @Router /farm/{playerID} [get]
func (h *FarmHandler) GetFarm(w http.ResponseWriter, r *http.Request) {
	playerID, ok := GetUUIDParam(r, w, "playerID")
	if !ok {
		return
	}

	floors, err := h.farmSvc.GetFarm(r.Context(), playerID)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetFarmFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, floors)
}

// PlacePot handles attaching an inventory pot to an empty slot
// @Summary Place a pot on a plot
// @Tags farm
// @Accept json
// @Produce json
// @Param request body PlacePotRequest true "Place pot request"
// @Success 200 {object} domain.Plot
// @Failure 400 {object} ErrorResponse "Plot already has a pot"
// @Failure 409 {object} ErrorResponse "Concurrent modification"
// @Router /farm/pot [post]
func (h *FarmHandler) PlacePot(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req PlacePotRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Place pot"); err != nil {
		return
	}

	log.Info("Place pot request received", "player_id", req.PlayerID, "floor", req.Floor, "slot", req.Slot)

	plot, err := h.farmSvc.PlacePot(r.Context(), req.PlayerID, req.Floor, req.Slot, req.PotID)
	if err != nil {
		respondServiceError(w, r, ErrMsgPlacePotFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, plot)
}

// Plant handles sowing an immature seed into a potted plot
// @Summary Plant a seed
// @Tags farm
// @Accept json
// @Produce json
// @Param request body PlantRequest true "Plant request"
// @Success 200 {object} domain.Plot
// @Failure 400 {object} ErrorResponse "Plot is not plantable"
// @Router /farm/plant [post]
func (h *FarmHandler) Plant(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req PlantRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Plant"); err != nil {
		return
	}

	log.Info("Plant request received", "player_id", req.PlayerID, "floor", req.Floor, "slot", req.Slot)

	plot, err := h.farmSvc.Plant(r.Context(), req.PlayerID, req.Floor, req.Slot, req.SeedID, req.Mutation)
	if err != nil {
		respondServiceError(w, r, ErrMsgPlantFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, plot)
}

// Harvest handles collecting one mature plot
// @Summary Harvest a mature plot
// @Tags farm
// @Accept json
// @Produce json
// @Param request body PlotRequest true "Harvest request"
// @Success 200 {object} domain.Seed "The harvested seed"
// @Failure 400 {object} ErrorResponse "Plot is not mature or is locked"
// @Router /farm/harvest [post]
func (h *FarmHandler) Harvest(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req PlotRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Harvest"); err != nil {
		return
	}

	seed, err := h.farmSvc.Harvest(r.Context(), req.PlayerID, req.Floor, req.Slot)
	if err != nil {
		respondServiceError(w, r, ErrMsgHarvestFailed, err)
		return
	}

	log.Info("Harvest successful", "player_id", req.PlayerID, "class", seed.Class)

	respondJSON(w, http.StatusOK, seed)
}

// HarvestAll handles collecting every unlocked mature plot at once
// @Summary Harvest all mature plots
// @Tags farm
// @Accept json
// @Produce json
// @Param request body PlayerRequest true "Harvest all request"
// @Success 200 {object} domain.HarvestAllResult
// @Router /farm/harvest-all [post]
func (h *FarmHandler) HarvestAll(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req PlayerRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Harvest all"); err != nil {
		return
	}

	result, err := h.farmSvc.HarvestAll(r.Context(), req.PlayerID)
	if err != nil {
		respondServiceError(w, r, ErrMsgHarvestAllFailed, err)
		return
	}

	log.Info("Harvest all successful", "player_id", req.PlayerID, "harvested", result.Harvested)

	respondJSON(w, http.StatusOK, result)
}

// Remove handles clearing a plot back to bare state
// @Summary Clear a plot
// @Tags farm
// @Accept json
// @Produce json
// @Param request body PlotRequest true "Remove request"
// @Success 200 {object} SuccessResponse
// @Router /farm/remove [post]
func (h *FarmHandler) Remove(w http.ResponseWriter, r *http.Request) {
	var req PlotRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Remove"); err != nil {
		return
	}

	if err := h.farmSvc.Remove(r.Context(), req.PlayerID, req.Floor, req.Slot); err != nil {
		respondServiceError(w, r, ErrMsgRemoveFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Plot cleared"})
}

// SetLock handles toggling the owner-only lock on a plot
// @Summary Lock or unlock a plot
// @Tags farm
// @Accept json
// @Produce json
// @Param request body SetLockRequest true "Lock request"
// @Success 200 {object} SuccessResponse
// @Router /farm/lock [post]
func (h *FarmHandler) SetLock(w http.ResponseWriter, r *http.Request) {
	var req SetLockRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set lock"); err != nil {
		return
	}

	if err := h.farmSvc.SetLock(r.Context(), req.PlayerID, req.Floor, req.Slot, req.Locked); err != nil {
		respondServiceError(w, r, ErrMsgLockFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Plot lock updated"})
}

// Steal handles taking a mature seed from another player's plot
// @Summary Steal from another player's plot
// @Description Attempts to harvest a mature plot on another player's farm. Any remaining trap on the target floor fires first and costs the attacker coins instead.
// @Tags farm
// @Accept json
// @Produce json
// @Param request body StealRequest true "Steal request"
// @Success 200 {object} domain.StealResult
// @Failure 400 {object} ErrorResponse "Plot is not stealable"
// @Router /farm/steal [post]
func (h *FarmHandler) Steal(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req StealRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Steal"); err != nil {
		return
	}

	log.Info("Steal request received", "player_id", req.PlayerID, "target_id", req.TargetID, "floor", req.Floor, "slot", req.Slot)

	result, err := h.farmSvc.Steal(r.Context(), req.PlayerID, req.TargetID, req.Floor, req.Slot)
	if err != nil {
		respondServiceError(w, r, ErrMsgStealFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// BuyFloor handles purchasing the player's next floor
// @Summary Buy the next floor
// @Tags farm
// @Accept json
// @Produce json
// @Param request body PlayerRequest true "Buy floor request"
// @Success 201 {object} domain.Floor
// @Failure 400 {object} ErrorResponse "Not enough coins"
// @Router /farm/floor [post]
func (h *FarmHandler) BuyFloor(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req PlayerRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Buy floor"); err != nil {
		return
	}

	floor, err := h.farmSvc.BuyFloor(r.Context(), req.PlayerID)
	if err != nil {
		respondServiceError(w, r, ErrMsgBuyFloorFailed, err)
		return
	}

	log.Info("Floor purchased", "player_id", req.PlayerID, "ordinal", floor.Ordinal)

	respondJSON(w, http.StatusCreated, floor)
}

// BuyTrap handles purchasing trap units
// @Summary Buy trap units
// @Description Buys trap units and distributes them across the player's floors with remaining capacity.
// @Tags farm
// @Accept json
// @Produce json
// @Param request body BuyTrapRequest true "Buy trap request"
// @Success 201 {object} domain.TrapPurchase
// @Failure 400 {object} ErrorResponse "No trap capacity or not enough coins"
// @Router /farm/trap [post]
func (h *FarmHandler) BuyTrap(w http.ResponseWriter, r *http.Request) {
	var req BuyTrapRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Buy trap"); err != nil {
		return
	}

	purchase, err := h.farmSvc.BuyTrap(r.Context(), req.PlayerID, req.Units)
	if err != nil {
		respondServiceError(w, r, ErrMsgBuyTrapFailed, err)
		return
	}

	respondJSON(w, http.StatusCreated, purchase)
}
