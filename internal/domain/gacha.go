package domain

import (
	"time"

	"github.com/google/uuid"
)

// Gacha reward type constants - the fixed-rate reward table. This is a
// separate probability system from the mutation tier ladder: the reward type
// decides coins/seed/forced-tier-seed, the pity rules govern the mutation on
// the plain seed rewards.
const (
	RewardCoins       = "coins"
	RewardSeedPlanted = "seed_planted"
	RewardSeedMature  = "seed_mature"
	RewardSeedRedGold = "seed_mature_redgold"
	RewardSeedRainbow = "seed_mature_rainbow"
)

// GachaProfile is a player's gacha sub-aggregate: pull totals, both pity
// counters, the step cursor and the persisted class queue. It has its own
// transactional update path so partial field writes cannot happen.
type GachaProfile struct {
	PlayerID   uuid.UUID `json:"player_id"`
	TotalPulls int       `json:"total_pulls"`
	Pity10     int       `json:"pity10"`
	Pity90     int       `json:"pity90"`
	Step       int       `json:"step"`
	Queue      []string  `json:"queue"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// StepCost returns the mature seed consumption count for a 0-indexed step:
// 1, 3, 5, 7, ...
func StepCost(step int) int {
	return 2*step + 1
}

// Requirement is one queue entry resolved to its consumption cost.
type Requirement struct {
	Class string `json:"class"`
	Cost  int    `json:"cost"`
}

// GachaState is the state snapshot returned to clients: counters, the current
// requirement, a preview of upcoming requirements, and the caller's mature
// seed counts by class for affordability checks.
type GachaState struct {
	TotalPulls  int            `json:"total_pulls"`
	Pity10      int            `json:"pity10"`
	Pity90      int            `json:"pity90"`
	Step        int            `json:"step"`
	Current     Requirement    `json:"current"`
	Upcoming    []Requirement  `json:"upcoming"`
	MatureSeeds map[string]int `json:"mature_seeds"`
}

// RollResult describes the outcome of a single gacha roll.
type RollResult struct {
	PullIndex  int         `json:"pull_index"`
	RewardType string      `json:"reward_type"`
	Class      string      `json:"class,omitempty"`
	Mutation   string      `json:"mutation,omitempty"`
	Value      int64       `json:"value"`
	Consumed   int         `json:"consumed"`
	FreshStart bool        `json:"fresh_start"` // rainbow reward: step and queue were reset
	Seed       *Seed       `json:"seed,omitempty"`
	NextStep   int         `json:"next_step"`
	State      *GachaState `json:"state,omitempty"`
}

// RollRecord is the immutable append-only history row written with every roll.
type RollRecord struct {
	ID         uuid.UUID `json:"id"`
	PlayerID   uuid.UUID `json:"player_id"`
	PullIndex  int       `json:"pull_index"`
	RewardType string    `json:"reward_type"`
	Class      string    `json:"class,omitempty"`
	Mutation   string    `json:"mutation,omitempty"`
	Value      int64     `json:"value"`
	CreatedAt  time.Time `json:"created_at"`
}
