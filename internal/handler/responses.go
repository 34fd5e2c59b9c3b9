package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/hieuluvjingliu/GardenBredN/internal/domain"
	"github.com/hieuluvjingliu/GardenBredN/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	// Encode to the buffer first so a marshal failure never truncates the body
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and maps the error to a
// user-facing HTTP response.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())
	log.Error(opName+" failed", "error", err)

	status, userMsg := mapServiceErrorToUserMessage(err)
	respondError(w, status, userMsg)
}

// User-facing error messages for service errors
const (
	// Generic messages
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidInputError   = "Invalid request. Please check your inputs."
	ErrMsgConflictRetryError  = "Someone got there first. Please retry."
	ErrMsgAuthFailedError     = "Authentication failed. Please check your API key."
	ErrMsgResourceNotFoundErr = "Resource not found."

	// Player messages
	ErrMsgPlayerNotFoundError = "Player not found"
	ErrMsgNotOwnerError       = "You don't own that"

	// Farm messages
	ErrMsgFloorNotFoundError  = "Floor not found"
	ErrMsgPlotNotFoundError   = "Plot not found"
	ErrMsgPlotHasPotError     = "That plot already has a pot"
	ErrMsgPlotNoPotError      = "That plot needs a pot first"
	ErrMsgPlotNotEmptyError   = "That plot is already planted"
	ErrMsgPlotNotMatureError  = "That plot is not ready to harvest"
	ErrMsgPlotLockedError     = "That plot is locked"
	ErrMsgNoTrapCapacityError = "No trap capacity available on your floors"
	ErrMsgSelfStealError      = "You cannot steal from your own farm"

	// Inventory messages
	ErrMsgSeedNotFoundError  = "Seed not found"
	ErrMsgPotNotFoundError   = "Pot not found"
	ErrMsgSeedMatureError    = "That seed is already mature"
	ErrMsgSeedNotMatureError = "That seed is not mature yet"

	// Economy messages
	ErrMsgNotEnoughMoneyError = "Not enough coins"
	ErrMsgClassNotFoundError  = "Unknown seed class"

	// Market messages
	ErrMsgListingNotFoundError = "Listing not found"
	ErrMsgListingNotOpenError  = "That listing is no longer available"
	ErrMsgAskOutOfRangeError   = "Ask price is outside the allowed range"

	// Gacha messages
	ErrMsgNotEnoughSeedsError = "Not enough mature seeds for this step"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// responses. Detail-carrying errors (insufficient funds/materials, ask price
// bounds) keep their message so clients can show exact numbers.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	// Detail-carrying errors surface their own message
	var insufficientMaterials *domain.InsufficientMaterialsError
	if errors.As(err, &insufficientMaterials) {
		return http.StatusBadRequest, insufficientMaterials.Error()
	}
	var insufficientFunds *domain.InsufficientFundsError
	if errors.As(err, &insufficientFunds) {
		return http.StatusBadRequest, insufficientFunds.Error()
	}

	switch {
	case errors.Is(err, domain.ErrPlayerNotFound):
		return http.StatusNotFound, ErrMsgPlayerNotFoundError
	case errors.Is(err, domain.ErrNotOwner):
		return http.StatusForbidden, ErrMsgNotOwnerError
	case errors.Is(err, domain.ErrFloorNotFound):
		return http.StatusNotFound, ErrMsgFloorNotFoundError
	case errors.Is(err, domain.ErrPlotNotFound):
		return http.StatusNotFound, ErrMsgPlotNotFoundError
	case errors.Is(err, domain.ErrPlotHasPot):
		return http.StatusBadRequest, ErrMsgPlotHasPotError
	case errors.Is(err, domain.ErrPlotNoPot):
		return http.StatusBadRequest, ErrMsgPlotNoPotError
	case errors.Is(err, domain.ErrPlotNotEmpty):
		return http.StatusBadRequest, ErrMsgPlotNotEmptyError
	case errors.Is(err, domain.ErrPlotNotMature):
		return http.StatusBadRequest, ErrMsgPlotNotMatureError
	case errors.Is(err, domain.ErrPlotLocked):
		return http.StatusBadRequest, ErrMsgPlotLockedError
	case errors.Is(err, domain.ErrNoTrapCapacity):
		return http.StatusBadRequest, ErrMsgNoTrapCapacityError
	case errors.Is(err, domain.ErrSelfSteal):
		return http.StatusBadRequest, ErrMsgSelfStealError
	case errors.Is(err, domain.ErrSeedNotFound):
		return http.StatusNotFound, ErrMsgSeedNotFoundError
	case errors.Is(err, domain.ErrPotNotFound):
		return http.StatusNotFound, ErrMsgPotNotFoundError
	case errors.Is(err, domain.ErrSeedMature):
		return http.StatusBadRequest, ErrMsgSeedMatureError
	case errors.Is(err, domain.ErrSeedNotMature):
		return http.StatusBadRequest, ErrMsgSeedNotMatureError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughMoneyError
	case errors.Is(err, domain.ErrClassNotFound):
		return http.StatusBadRequest, ErrMsgClassNotFoundError
	case errors.Is(err, domain.ErrListingNotFound):
		return http.StatusNotFound, ErrMsgListingNotFoundError
	case errors.Is(err, domain.ErrListingNotOpen):
		return http.StatusConflict, ErrMsgListingNotOpenError
	case errors.Is(err, domain.ErrAskPriceOutOfRange):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrNotEnoughMaterials):
		return http.StatusBadRequest, ErrMsgNotEnoughSeedsError
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, ErrMsgConflictRetryError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	}

	// For wrapped errors with domain errors as the base, try unwrapping
	unwrapped := errors.Unwrap(err)
	if unwrapped != nil && unwrapped != err {
		return mapServiceErrorToUserMessage(unwrapped)
	}

	errMsg := err.Error()
	if errMsg != "" && len(errMsg) < 200 {
		return http.StatusInternalServerError, errMsg
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
