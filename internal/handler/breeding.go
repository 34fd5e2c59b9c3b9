package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/hieuluvjingliu/GardenBredN/internal/breeding"
	"github.com/hieuluvjingliu/GardenBredN/internal/logger"
)

// BreedRequest represents the request to breed two mature seeds
type BreedRequest struct {
	PlayerID uuid.UUID `json:"player_id" validate:"required"`
	SeedAID  uuid.UUID `json:"seed_a_id" validate:"required"`
	SeedBID  uuid.UUID `json:"seed_b_id" validate:"required"`
}

// BreedingHandler handles breeding HTTP endpoints
type BreedingHandler struct {
	breedingSvc breeding.Service
}

// NewBreedingHandler creates a new breeding handler
func NewBreedingHandler(breedingSvc breeding.Service) *BreedingHandler {
	return &BreedingHandler{breedingSvc: breedingSvc}
}

// Breed handles combining two mature seeds into one immature offspring
// @Summary Breed two seeds
// @Description Destroys two mature parent seeds and produces one immature offspring. The offspring's class is drawn from the weighted class table and its base price derives from the parents.
// @Tags breeding
// @Accept json
// @Produce json
// @Param request body BreedRequest true "Breed request"
// @Success 201 {object} domain.Seed "The offspring seed"
// @Failure 400 {object} ErrorResponse "Parents not mature or not distinct"
// @Failure 409 {object} ErrorResponse "A parent was spent concurrently"
// @Router /breed [post]
func (h *BreedingHandler) Breed(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req BreedRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Breed"); err != nil {
		return
	}

	log.Info("Breed request received", "player_id", req.PlayerID, "seed_a", req.SeedAID, "seed_b", req.SeedBID)

	offspring, err := h.breedingSvc.Breed(r.Context(), req.PlayerID, req.SeedAID, req.SeedBID)
	if err != nil {
		respondServiceError(w, r, ErrMsgBreedFailed, err)
		return
	}

	log.Info("Breed successful", "player_id", req.PlayerID, "class", offspring.Class, "base_price", offspring.BasePrice)

	respondJSON(w, http.StatusCreated, offspring)
}
