package domain

import "github.com/google/uuid"

// Seed is an inventory seed. BasePrice is frozen at acquisition time and all
// derived values (sell payout, market bounds) are computed from it.
type Seed struct {
	ID        uuid.UUID `json:"id"`
	PlayerID  uuid.UUID `json:"player_id"`
	Class     string    `json:"class"`
	BasePrice int       `json:"base_price"`
	Mutation  string    `json:"mutation,omitempty"` // empty string = no tier
	IsMature  bool      `json:"is_mature"`
}

// EffectiveValue is the seed's base price scaled by its mutation multiplier,
// never below 1.
func (s *Seed) EffectiveValue() int {
	v := int(float64(s.BasePrice) * TierMultiplier(s.Mutation))
	if v < 1 {
		return 1
	}
	return v
}

// Pot is an unplaced inventory pot. Once placed it becomes plot state and is
// no longer tracked separately.
type Pot struct {
	ID       uuid.UUID `json:"id"`
	PlayerID uuid.UUID `json:"player_id"`
	Type     string    `json:"type"`
}

// PotSpeed returns the growth duration multiplier for a pot type.
func PotSpeed(potType string) float64 {
	if potType == PotTimeskip {
		return 0.67
	}
	return 1.0
}

// PotYield returns the harvest value multiplier for a pot type.
func PotYield(potType string) float64 {
	if potType == PotGold {
		return 2.0
	}
	return 1.0
}

// PotPrice returns the shop price for a pot type, or 0 for unknown types.
func PotPrice(potType string) int64 {
	switch potType {
	case PotBasic:
		return PotBasicPrice
	case PotGold:
		return PotGoldPrice
	case PotTimeskip:
		return PotTimeskipPrice
	default:
		return 0
	}
}
