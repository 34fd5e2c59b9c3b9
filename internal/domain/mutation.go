package domain

// Mutation tier keys - the rarity ladder, rarest last
const (
	TierGreen   = "green"
	TierBlue    = "blue"
	TierYellow  = "yellow"
	TierPink    = "pink"
	TierRed     = "red"
	TierGold    = "gold"
	TierRainbow = "rainbow"
)

// TierWeight pairs a tier key with its independent draw probability.
type TierWeight struct {
	Tier        string
	Probability float64
}

// TierLadder is the ordered rarity ladder used by the independent draw: walked
// in increasing rarity order, accumulating probabilities. The remaining ~79%
// is "no tier".
var TierLadder = []TierWeight{
	{TierGreen, 0.10},
	{TierBlue, 0.05},
	{TierYellow, 0.025},
	{TierPink, 0.0125},
	{TierRed, 0.01},
	{TierGold, 0.0075},
	{TierRainbow, 0.005},
}

var tierMultipliers = map[string]float64{
	TierGreen:   2,
	TierBlue:    4,
	TierYellow:  8,
	TierPink:    16,
	TierRed:     32,
	TierGold:    64,
	TierRainbow: 128,
}

// ValidTier reports whether the key names a tier on the ladder.
func ValidTier(tier string) bool {
	_, ok := tierMultipliers[tier]
	return ok
}

// TierMultiplier resolves a tier key to its fixed value multiplier. Unknown or
// empty keys resolve to 1.0.
func TierMultiplier(tier string) float64 {
	if m, ok := tierMultipliers[tier]; ok {
		return m
	}
	return 1.0
}
