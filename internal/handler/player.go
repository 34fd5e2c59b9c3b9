package handler

import (
	"net/http"

	"github.com/hieuluvjingliu/GardenBredN/internal/logger"
	"github.com/hieuluvjingliu/GardenBredN/internal/player"
)

// RegisterPlayerRequest represents the request to register a new player
type RegisterPlayerRequest struct {
	Username string `json:"username" validate:"required,max=100,excludesall= "`
}

// PlayerHandler handles player HTTP endpoints
type PlayerHandler struct {
	playerSvc player.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(playerSvc player.Service) *PlayerHandler {
	return &PlayerHandler{playerSvc: playerSvc}
}

// Register handles player registration
// @Summary Register a player
// @Description Creates a player with their free first floor. Registering an existing username returns that player.
// @Tags player
// @Accept json
// @Produce json
// @Param request body RegisterPlayerRequest true "Registration request"
// @Success 201 {object} domain.Player "Player created or already existed"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /player/register [post]
func (h *PlayerHandler) Register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req RegisterPlayerRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Register player"); err != nil {
		return
	}

	log.Info("Register request received", "username", req.Username)

	p, err := h.playerSvc.Register(r.Context(), req.Username)
	if err != nil {
		respondServiceError(w, r, ErrMsgRegisterFailed, err)
		return
	}

	respondJSON(w, http.StatusCreated, p)
}

// Get handles fetching a player by ID
// @Summary Get a player
// @Tags player
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {object} domain.Player
// @Failure 404 {object} ErrorResponse "Player not found"
// @Router /player/{playerID} [get]
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	playerID, ok := GetUUIDParam(r, w, "playerID")
	if !ok {
		return
	}

	p, err := h.playerSvc.Get(r.Context(), playerID)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetPlayerFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, p)
}

// GetByUsername handles looking up a player by username
// @Summary Look up a player by username
// @Tags player
// @Produce json
// @Param username query string true "Username"
// @Success 200 {object} domain.Player
// @Failure 404 {object} ErrorResponse "Player not found"
// @Router /player [get]
func (h *PlayerHandler) GetByUsername(w http.ResponseWriter, r *http.Request) {
	username, ok := GetQueryParam(r, w, "username")
	if !ok {
		return
	}

	p, err := h.playerSvc.GetByUsername(r.Context(), username)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetPlayerFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, p)
}
