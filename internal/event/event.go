package event

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Common event types
const (
	PlotPlanted  Type = "farm.plot_planted"
	PlotHarvest  Type = "farm.plot_harvested"
	StealSuccess Type = "farm.steal_succeeded"
	StealTrapped Type = "farm.steal_trapped"
	FloorBought  Type = "farm.floor_bought"

	GachaRolled     Type = "gacha.rolled"
	GachaFreshStart Type = "gacha.fresh_start"

	MarketListed Type = "market.listed"
	MarketSold   Type = "market.sold"

	SeedsBred Type = "breeding.completed"
)

// Typed event payloads for type safety

// PlotPlantedPayloadV1 is the typed payload for plant events
type PlotPlantedPayloadV1 struct {
	PlayerID  string `json:"player_id"`
	PlotID    string `json:"plot_id"`
	SeedClass string `json:"seed_class"`
	Mutation  string `json:"mutation,omitempty"`
	MatureAt  int64  `json:"mature_at"`
	Timestamp int64  `json:"timestamp"`
}

// PlotHarvestPayloadV1 is the typed payload for harvest events
type PlotHarvestPayloadV1 struct {
	PlayerID  string `json:"player_id"`
	PlotID    string `json:"plot_id"`
	SeedID    string `json:"seed_id"`
	SeedClass string `json:"seed_class"`
	Mutation  string `json:"mutation,omitempty"`
	Value     int64  `json:"value"`
	Timestamp int64  `json:"timestamp"`
}

// StealPayloadV1 is the typed payload for steal events, covering both
// successful thefts and trap triggers
type StealPayloadV1 struct {
	ThiefID   string `json:"thief_id"`
	VictimID  string `json:"victim_id"`
	PlotID    string `json:"plot_id"`
	SeedClass string `json:"seed_class,omitempty"`
	Penalty   int64  `json:"penalty,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// FloorBoughtPayloadV1 is the typed payload for floor purchase events
type FloorBoughtPayloadV1 struct {
	PlayerID  string `json:"player_id"`
	Ordinal   int    `json:"ordinal"`
	Price     int64  `json:"price"`
	Timestamp int64  `json:"timestamp"`
}

// GachaRolledPayloadV1 is the typed payload for gacha roll events
type GachaRolledPayloadV1 struct {
	PlayerID   string `json:"player_id"`
	PullIndex  int64  `json:"pull_index"`
	RewardType string `json:"reward_type"`
	Class      string `json:"class,omitempty"`
	Mutation   string `json:"mutation,omitempty"`
	Value      int64  `json:"value"`
	FreshStart bool   `json:"fresh_start"`
	Timestamp  int64  `json:"timestamp"`
}

// MarketPayloadV1 is the typed payload for market listing events
type MarketPayloadV1 struct {
	ListingID string `json:"listing_id"`
	SellerID  string `json:"seller_id"`
	BuyerID   string `json:"buyer_id,omitempty"`
	SeedClass string `json:"seed_class"`
	Mutation  string `json:"mutation,omitempty"`
	AskPrice  int64  `json:"ask_price"`
	Timestamp int64  `json:"timestamp"`
}

// SeedsBredPayloadV1 is the typed payload for breeding events
type SeedsBredPayloadV1 struct {
	PlayerID    string `json:"player_id"`
	ParentA     string `json:"parent_a"`
	ParentB     string `json:"parent_b"`
	ChildClass  string `json:"child_class"`
	ChildSeedID string `json:"child_seed_id"`
	ChildPrice  int64  `json:"child_price"`
	Timestamp   int64  `json:"timestamp"`
}

// NewPlotHarvestEvent creates a new harvest event with type-safe payload
func NewPlotHarvestEvent(playerID, plotID, seedID, seedClass, mutation string, value int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PlotHarvest,
		Payload: PlotHarvestPayloadV1{
			PlayerID:  playerID,
			PlotID:    plotID,
			SeedID:    seedID,
			SeedClass: seedClass,
			Mutation:  mutation,
			Value:     value,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewStealSuccessEvent creates a new steal success event
func NewStealSuccessEvent(thiefID, victimID, plotID, seedClass string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    StealSuccess,
		Payload: StealPayloadV1{
			ThiefID:   thiefID,
			VictimID:  victimID,
			PlotID:    plotID,
			SeedClass: seedClass,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewStealTrappedEvent creates a new trap trigger event
func NewStealTrappedEvent(thiefID, victimID, plotID string, penalty int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    StealTrapped,
		Payload: StealPayloadV1{
			ThiefID:   thiefID,
			VictimID:  victimID,
			PlotID:    plotID,
			Penalty:   penalty,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewGachaRolledEvent creates a new gacha roll event with type-safe payload
func NewGachaRolledEvent(playerID string, pullIndex int64, rewardType, class, mutation string, value int64, freshStart bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    GachaRolled,
		Payload: GachaRolledPayloadV1{
			PlayerID:   playerID,
			PullIndex:  pullIndex,
			RewardType: rewardType,
			Class:      class,
			Mutation:   mutation,
			Value:      value,
			FreshStart: freshStart,
			Timestamp:  time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewMarketSoldEvent creates a new market sale event
func NewMarketSoldEvent(listingID, sellerID, buyerID, seedClass, mutation string, askPrice int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    MarketSold,
		Payload: MarketPayloadV1{
			ListingID: listingID,
			SellerID:  sellerID,
			BuyerID:   buyerID,
			SeedClass: seedClass,
			Mutation:  mutation,
			AskPrice:  askPrice,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	// Handlers run synchronously; a failing handler does not stop the rest.
	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
