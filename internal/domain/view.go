package domain

import "time"

// FloorView is a floor together with its plots, ordered by slot.
type FloorView struct {
	Floor Floor  `json:"floor"`
	Plots []Plot `json:"plots"`
}

// PlayerView is the full per-player snapshot pushed to connected clients and
// served by the state endpoint: floors, plots, inventory, open listings and
// gacha state.
type PlayerView struct {
	Player     Player          `json:"player"`
	Floors     []FloorView     `json:"floors"`
	Seeds      []Seed          `json:"seeds"`
	Pots       []Pot           `json:"pots"`
	Listings   []MarketListing `json:"listings"`
	Gacha      GachaState      `json:"gacha"`
	ComputedAt time.Time       `json:"computed_at"`
}
