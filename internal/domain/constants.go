package domain

import "time"

// Seed class constants - the four base elemental classes
const (
	ClassFire  = "fire"
	ClassWater = "water"
	ClassEarth = "earth"
	ClassWind  = "wind"
)

// BaseClasses lists the four elemental classes every catalog starts with.
var BaseClasses = []string{ClassFire, ClassWater, ClassEarth, ClassWind}

// BaseClassPrice is the shop price of a base elemental seed.
const BaseClassPrice = 100

// Growth durations before pot speed scaling
const (
	BaseClassGrowthDuration  = 5 * time.Minute
	OtherClassGrowthDuration = 10 * time.Minute
)

// Pot type constants
const (
	PotBasic    = "basic"
	PotGold     = "gold"
	PotTimeskip = "timeskip"
)

// Pot shop prices
const (
	PotBasicPrice    = 50
	PotGoldPrice     = 500
	PotTimeskipPrice = 1000
)

// Floor and plot layout
const (
	PlotsPerFloor    = 10
	MaxTrapsPerFloor = 5
	FloorPriceStep   = 1000 // floor price = ordinal * FloorPriceStep, first floor free
)

// TrapUnitPrice is the per-unit trap price multiplier; the actual price scales
// with the player's current unlocked floor count.
const TrapUnitPrice = 200

// Steal penalty when a trap triggers: 5% of the attacker's coins, minimum 1.
const (
	TrapPenaltyRate    = 0.05
	TrapPenaltyMinimum = 1
)

// SellToShopRate is the payout bonus applied when selling a mature seed to the shop.
const SellToShopRate = 1.1

// BreedPriceRate scales the combined parent prices into the offspring base price.
const BreedPriceRate = 0.8

// Market ask price bounds relative to the seed's effective value.
const (
	MarketAskMinRate = 0.9
	MarketAskMaxRate = 1.5
)

// Market listing status values
const (
	ListingOpen = "open"
	ListingSold = "sold"
)
