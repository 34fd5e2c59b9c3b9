package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hieuluvjingliu/GardenBredN/internal/domain"
	"github.com/hieuluvjingliu/GardenBredN/internal/handler"
)

func newPlayerRouter(svc *stubPlayerService) http.Handler {
	h := handler.NewPlayerHandler(svc)
	r := chi.NewRouter()
	r.Post("/player/register", h.Register)
	r.Get("/player/{playerID}", h.Get)
	r.Get("/player", h.GetByUsername)
	return r
}

func TestPlayerHandler_Register(t *testing.T) {
	handler.InitValidator()

	tests := []struct {
		name           string
		body           interface{}
		register       func(ctx context.Context, username string) (*domain.Player, error)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "success",
			body: handler.RegisterPlayerRequest{Username: "gardener42"},
			register: func(_ context.Context, username string) (*domain.Player, error) {
				assert.Equal(t, "gardener42", username)
				return &domain.Player{ID: uuid.New(), Username: username}, nil
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "existing username returns the existing player",
			body: handler.RegisterPlayerRequest{Username: "veteran"},
			register: func(_ context.Context, username string) (*domain.Player, error) {
				return &domain.Player{ID: uuid.New(), Username: username, Coins: 7500}, nil
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing username",
			body:           handler.RegisterPlayerRequest{},
			expectedStatus: http.StatusBadRequest,
			expectedError:  handler.ErrMsgInvalidRequestSummary,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newPlayerRouter(&stubPlayerService{register: tt.register})

			rec := postJSON(t, router, "/player/register", tt.body)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedError != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestPlayerHandler_Get(t *testing.T) {
	handler.InitValidator()

	playerID := uuid.New()
	svc := &stubPlayerService{
		get: func(_ context.Context, id uuid.UUID) (*domain.Player, error) {
			assert.Equal(t, playerID, id)
			return &domain.Player{ID: id, Username: "gardener42", Coins: 250}, nil
		},
	}
	router := newPlayerRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/player/"+playerID.String(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var p domain.Player
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, int64(250), p.Coins)
}

func TestPlayerHandler_GetByUsername(t *testing.T) {
	handler.InitValidator()

	t.Run("not found", func(t *testing.T) {
		svc := &stubPlayerService{
			getByUsername: func(_ context.Context, _ string) (*domain.Player, error) {
				return nil, domain.ErrPlayerNotFound
			},
		}
		router := newPlayerRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/player?username=ghost", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), handler.ErrMsgPlayerNotFoundError)
	})

	t.Run("missing username parameter", func(t *testing.T) {
		router := newPlayerRouter(&stubPlayerService{})

		req := httptest.NewRequest(http.MethodGet, "/player", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "username")
	})
}
