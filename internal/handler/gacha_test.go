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

func newGachaRouter(svc *stubGachaService) http.Handler {
	h := handler.NewGachaHandler(svc)
	r := chi.NewRouter()
	r.Get("/gacha/{playerID}", h.State)
	r.Get("/gacha/{playerID}/history", h.History)
	r.Post("/gacha/roll", h.Roll)
	return r
}

func TestGachaHandler_State(t *testing.T) {
	handler.InitValidator()

	playerID := uuid.New()
	svc := &stubGachaService{
		getState: func(_ context.Context, id uuid.UUID) (*domain.GachaState, error) {
			assert.Equal(t, playerID, id)
			return &domain.GachaState{
				TotalPulls: 4,
				Pity10:     4,
				Pity90:     4,
				Step:       2,
				Current:    domain.Requirement{Class: domain.ClassFire, Cost: 5},
			}, nil
		},
	}
	router := newGachaRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/gacha/"+playerID.String(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var state domain.GachaState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.Equal(t, 4, state.TotalPulls)
	assert.Equal(t, 5, state.Current.Cost)
}

func TestGachaHandler_Roll(t *testing.T) {
	handler.InitValidator()

	playerID := uuid.New()

	tests := []struct {
		name           string
		roll           func(ctx context.Context, id uuid.UUID) (*domain.RollResult, error)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "success",
			roll: func(_ context.Context, id uuid.UUID) (*domain.RollResult, error) {
				assert.Equal(t, playerID, id)
				return &domain.RollResult{PullIndex: 1, RewardType: domain.RewardCoins, Value: 42, Consumed: 3, NextStep: 1}, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "insufficient materials reports exact shortfall",
			roll: func(_ context.Context, _ uuid.UUID) (*domain.RollResult, error) {
				return nil, &domain.InsufficientMaterialsError{Class: "fire", Required: 5, Available: 2}
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  `need 5 mature \"fire\" seeds, have 2`,
		},
		{
			name: "concurrent seed spend is a retryable conflict",
			roll: func(_ context.Context, _ uuid.UUID) (*domain.RollResult, error) {
				return nil, domain.ErrConflict
			},
			expectedStatus: http.StatusConflict,
			expectedError:  handler.ErrMsgConflictRetryError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newGachaRouter(&stubGachaService{roll: tt.roll})

			rec := postJSON(t, router, "/gacha/roll", handler.GachaRollRequest{PlayerID: playerID})

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedError != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestGachaHandler_Roll_FreshStartPayload(t *testing.T) {
	handler.InitValidator()

	svc := &stubGachaService{
		roll: func(_ context.Context, _ uuid.UUID) (*domain.RollResult, error) {
			return &domain.RollResult{
				PullIndex:  91,
				RewardType: domain.RewardSeedRainbow,
				Mutation:   domain.TierRainbow,
				Value:      9_100_000,
				Consumed:   4,
				FreshStart: true,
				NextStep:   0,
			}, nil
		},
	}
	router := newGachaRouter(svc)

	rec := postJSON(t, router, "/gacha/roll", handler.GachaRollRequest{PlayerID: uuid.New()})

	assert.Equal(t, http.StatusOK, rec.Code)

	var result domain.RollResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.FreshStart)
	assert.Equal(t, 0, result.NextStep)
	assert.Equal(t, int64(9_100_000), result.Value)
}

func TestGachaHandler_History(t *testing.T) {
	handler.InitValidator()

	playerID := uuid.New()

	t.Run("default limit", func(t *testing.T) {
		var gotLimit int
		svc := &stubGachaService{
			history: func(_ context.Context, _ uuid.UUID, limit int) ([]domain.RollRecord, error) {
				gotLimit = limit
				return []domain.RollRecord{{PullIndex: 1, RewardType: domain.RewardCoins}}, nil
			},
		}
		router := newGachaRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/gacha/"+playerID.String()+"/history", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 20, gotLimit)
	})

	t.Run("explicit limit", func(t *testing.T) {
		var gotLimit int
		svc := &stubGachaService{
			history: func(_ context.Context, _ uuid.UUID, limit int) ([]domain.RollRecord, error) {
				gotLimit = limit
				return nil, nil
			},
		}
		router := newGachaRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/gacha/"+playerID.String()+"/history?limit=5", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 5, gotLimit)
	})

	t.Run("bad limit", func(t *testing.T) {
		router := newGachaRouter(&stubGachaService{})

		req := httptest.NewRequest(http.MethodGet, "/gacha/"+playerID.String()+"/history?limit=zero", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
