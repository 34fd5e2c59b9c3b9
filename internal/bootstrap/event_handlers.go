package bootstrap

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hieuluvjingliu/GardenBredN/internal/event"
	"github.com/hieuluvjingliu/GardenBredN/internal/logger"
	"github.com/hieuluvjingliu/GardenBredN/internal/sse"
	"github.com/hieuluvjingliu/GardenBredN/internal/view"
)

// pushedEventTypes lists every event that changes some player's visible state.
var pushedEventTypes = []event.Type{
	event.PlotPlanted,
	event.PlotHarvest,
	event.StealSuccess,
	event.StealTrapped,
	event.FloorBought,
	event.GachaRolled,
	event.GachaFreshStart,
	event.MarketListed,
	event.MarketSold,
	event.SeedsBred,
}

// affectedPlayers is the superset of player id fields across event payloads.
// Decoding into it extracts whoever the event touched without caring about
// the concrete payload type.
type affectedPlayers struct {
	PlayerID string `json:"player_id"`
	ThiefID  string `json:"thief_id"`
	VictimID string `json:"victim_id"`
	SellerID string `json:"seller_id"`
	BuyerID  string `json:"buyer_id"`
}

func (a affectedPlayers) ids() []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, 4)
	var out []uuid.UUID
	for _, raw := range []string{a.PlayerID, a.ThiefID, a.VictimID, a.SellerID, a.BuyerID} {
		if raw == "" {
			continue
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// RegisterViewPusher subscribes a handler that recomputes and pushes a fresh
// snapshot to every connected player an event touched. The periodic push job
// covers timer-driven growth; this covers the immediate reaction to actions.
func RegisterViewPusher(bus event.Bus, hub *sse.Hub, viewSvc view.Service) {
	handler := func(ctx context.Context, e event.Event) error {
		affected, err := event.DecodePayload[affectedPlayers](e.Payload)
		if err != nil {
			return nil
		}

		connected := make(map[uuid.UUID]struct{})
		for _, id := range hub.ConnectedPlayers() {
			connected[id] = struct{}{}
		}

		log := logger.FromContext(ctx)
		for _, playerID := range affected.ids() {
			if _, ok := connected[playerID]; !ok {
				continue
			}
			snapshot, err := viewSvc.Compute(ctx, playerID)
			if err != nil {
				log.Error("Failed to compute pushed view", "error", err, "player_id", playerID, "event_type", e.Type)
				continue
			}
			hub.SendToPlayer(playerID, sse.EventTypeViewUpdate, snapshot)
		}
		return nil
	}

	for _, t := range pushedEventTypes {
		bus.Subscribe(t, handler)
	}

	slog.Info(LogMsgViewPusherRegistered, "event_types", len(pushedEventTypes))
}
