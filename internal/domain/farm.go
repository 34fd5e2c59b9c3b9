package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stage is a plot's growth state
type Stage string

// Plot stages, ordered. A plot only ever moves forward:
// empty -> planted -> growing -> mature -> empty (after harvest).
const (
	StageEmpty   Stage = "empty"
	StagePlanted Stage = "planted"
	StageGrowing Stage = "growing"
	StageMature  Stage = "mature"
)

// Floor belongs to exactly one player and holds a fixed grid of plots
type Floor struct {
	ID        uuid.UUID `json:"id"`
	PlayerID  uuid.UUID `json:"player_id"`
	Ordinal   int       `json:"ordinal"`
	TrapCount int       `json:"trap_count"`
	CreatedAt time.Time `json:"created_at"`
}

// Price returns the purchase price for a floor at the given ordinal.
// The first floor is free.
func FloorPrice(ordinal int) int64 {
	if ordinal <= 1 {
		return 0
	}
	return int64(ordinal) * FloorPriceStep
}

// Plot is a single farmable slot on a floor, holding at most one pot and one
// growing seed.
type Plot struct {
	ID        uuid.UUID  `json:"id"`
	FloorID   uuid.UUID  `json:"floor_id"`
	Slot      int        `json:"slot"`
	PotType   string     `json:"pot_type,omitempty"` // empty string = no pot
	SeedClass string     `json:"seed_class,omitempty"`
	Mutation  string     `json:"mutation,omitempty"`
	BasePrice int        `json:"base_price,omitempty"`
	PlantedAt *time.Time `json:"planted_at,omitempty"`
	MatureAt  *time.Time `json:"mature_at,omitempty"`
	Stage     Stage      `json:"stage"`
	Locked    bool       `json:"locked"`
}

// HasPot reports whether a pot is attached to the plot.
func (p *Plot) HasPot() bool {
	return p.PotType != ""
}

// GrowingAt returns the instant the plot transitions from planted to growing:
// halfway through the growth duration.
func (p *Plot) GrowingAt() time.Time {
	if p.PlantedAt == nil || p.MatureAt == nil {
		return time.Time{}
	}
	return p.PlantedAt.Add(p.MatureAt.Sub(*p.PlantedAt) / 2)
}

// StealResult reports the outcome of a steal attempt. Trapped means a trap
// fired before the plot was ever looked at and the penalty was charged.
type StealResult struct {
	Trapped bool  `json:"trapped"`
	Penalty int64 `json:"penalty,omitempty"`
	Seed    *Seed `json:"seed,omitempty"`
}

// HarvestAllResult reports a bulk harvest. Skipped counts mature plots left
// alone because they were locked.
type HarvestAllResult struct {
	Harvested int    `json:"harvested"`
	Seeds     []Seed `json:"seeds"`
}

// TrapPurchase reports a trap purchase: how many units were placed, what they
// cost, and the resulting per-floor trap counts.
type TrapPurchase struct {
	Units     int         `json:"units"`
	PricePaid int64       `json:"price_paid"`
	Floors    map[int]int `json:"floors"` // ordinal -> trap count after purchase
}

// GrowthDuration returns the scaled growth duration for a class planted in the
// given pot type. Base elemental classes grow in 5 minutes, everything else in
// 10, scaled by the pot's speed multiplier.
func GrowthDuration(class, potType string) time.Duration {
	base := OtherClassGrowthDuration
	for _, c := range BaseClasses {
		if class == c {
			base = BaseClassGrowthDuration
			break
		}
	}
	return time.Duration(float64(base) * PotSpeed(potType))
}
