package handler

import (
	"net/http"

	"github.com/hieuluvjingliu/GardenBredN/internal/view"
)

// ViewHandler serves the per-player state snapshot
type ViewHandler struct {
	viewSvc view.Service
}

// NewViewHandler creates a new view handler
func NewViewHandler(viewSvc view.Service) *ViewHandler {
	return &ViewHandler{viewSvc: viewSvc}
}

// Get handles fetching a player's full snapshot
// @Summary Get a player's full state snapshot
// @Description Returns floors, plots, inventory, listings and gacha state in one response. Served from a short-lived cache; pass refresh=true to force a rebuild.
// @Tags view
// @Produce json
// @Param playerID path string true "Player ID"
// @Param refresh query bool false "Bypass the snapshot cache"
// @Success 200 {object} domain.PlayerView
// @Failure 404 {object} ErrorResponse "Player not found"
// @Router /view/{playerID} [get]
func (h *ViewHandler) Get(w http.ResponseWriter, r *http.Request) {
	playerID, ok := GetUUIDParam(r, w, "playerID")
	if !ok {
		return
	}

	var err error
	var snapshot interface{}
	if GetOptionalQueryParam(r, "refresh", "false") == "true" {
		snapshot, err = h.viewSvc.Compute(r.Context(), playerID)
	} else {
		snapshot, err = h.viewSvc.Get(r.Context(), playerID)
	}
	if err != nil {
		respondServiceError(w, r, ErrMsgGetViewFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, snapshot)
}
