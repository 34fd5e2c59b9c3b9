package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/hieuluvjingliu/GardenBredN/internal/gacha"
	"github.com/hieuluvjingliu/GardenBredN/internal/logger"
)

// GachaRollRequest represents the request to roll the gacha
type GachaRollRequest struct {
	PlayerID uuid.UUID `json:"player_id" validate:"required"`
}

// defaultHistoryLimit caps history responses when no limit is given.
const defaultHistoryLimit = 20

// GachaHandler handles gacha HTTP endpoints
type GachaHandler struct {
	gachaSvc gacha.Service
}

// NewGachaHandler creates a new gacha handler
func NewGachaHandler(gachaSvc gacha.Service) *GachaHandler {
	return &GachaHandler{gachaSvc: gachaSvc}
}

// State handles fetching a player's gacha snapshot
// @Summary Get gacha state
// @Description Returns the player's pull counters, the current step requirement, a preview of upcoming steps and mature seed counts by class.
// @Tags gacha
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {object} domain.GachaState
// @Router /gacha/{playerID} [get]
func (h *GachaHandler) State(w http.ResponseWriter, r *http.Request) {
	playerID, ok := GetUUIDParam(r, w, "playerID")
	if !ok {
		return
	}

	state, err := h.gachaSvc.GetState(r.Context(), playerID)
	if err != nil {
		respondServiceError(w, r, ErrMsgGachaStateFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, state)
}

// Roll handles resolving one gacha pull
// @Summary Roll the gacha
// @Description Consumes the current step's mature seeds and resolves one reward. A 409 means the seed set changed underneath the roll and the client should refresh and retry.
// @Tags gacha
// @Accept json
// @Produce json
// @Param request body GachaRollRequest true "Roll request"
// @Success 200 {object} domain.RollResult
// @Failure 400 {object} ErrorResponse "Not enough mature seeds"
// @Failure 409 {object} ErrorResponse "Seeds changed concurrently, retry"
// @Router /gacha/roll [post]
func (h *GachaHandler) Roll(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req GachaRollRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Gacha roll"); err != nil {
		return
	}

	result, err := h.gachaSvc.Roll(r.Context(), req.PlayerID)
	if err != nil {
		respondServiceError(w, r, ErrMsgGachaRollFailed, err)
		return
	}

	log.Info("Gacha roll resolved",
		"player_id", req.PlayerID,
		"pull", result.PullIndex,
		"reward_type", result.RewardType,
		"fresh_start", result.FreshStart)

	respondJSON(w, http.StatusOK, result)
}

// History handles fetching a player's recent rolls
// @Summary Get gacha roll history
// @Tags gacha
// @Produce json
// @Param playerID path string true "Player ID"
// @Param limit query int false "Maximum records to return" default(20)
// @Success 200 {array} domain.RollRecord
// @Router /gacha/{playerID}/history [get]
func (h *GachaHandler) History(w http.ResponseWriter, r *http.Request) {
	playerID, ok := GetUUIDParam(r, w, "playerID")
	if !ok {
		return
	}

	limit := defaultHistoryLimit
	if raw := GetOptionalQueryParam(r, "limit", ""); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			respondError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	records, err := h.gachaSvc.History(r.Context(), playerID, limit)
	if err != nil {
		respondServiceError(w, r, ErrMsgGachaHistoryFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, records)
}
