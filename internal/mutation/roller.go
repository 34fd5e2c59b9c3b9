// Package mutation implements the rarity tier draws for freshly produced
// seeds. Two modes exist: an independent weighted draw (breeding, plain gacha
// seed rewards) and a pity-governed draw that forces rare tiers once the
// counters hit their thresholds. The tier ladder is a separate probability
// system from the gacha reward-type table and must stay that way.
package mutation

import (
	"math"
	"math/rand"

	"github.com/hieuluvjingliu/GardenBredN/internal/domain"
)

// tierThresholds are the cumulative draw boundaries for the ladder, snapped
// to nine decimals so accumulated float drift cannot push the final boundary
// past the ladder's 21% total.
var tierThresholds = func() []float64 {
	out := make([]float64, len(domain.TierLadder))
	cumulative := 0.0
	for i, tw := range domain.TierLadder {
		cumulative += tw.Probability
		out[i] = math.Round(cumulative*1e9) / 1e9
	}
	return out
}()

// Pity thresholds. The counters passed to Forced already include this pull's
// increment.
const (
	Pity10Threshold = 10
	Pity90Threshold = 90
)

// Roller draws mutation tiers from an injectable random source.
type Roller struct {
	rnd func() float64
}

// NewRoller creates a roller backed by math/rand.
func NewRoller() *Roller {
	return &Roller{rnd: rand.Float64}
}

// NewRollerWithSource creates a roller with a custom random source for tests.
func NewRollerWithSource(rnd func() float64) *Roller {
	return &Roller{rnd: rnd}
}

// Independent draws a tier by walking the ladder in increasing rarity order.
// Returns "" (no tier, multiplier 1.0) when the roll lands at or past the
// cumulative 21%.
func (r *Roller) Independent() string {
	roll := r.rnd()
	for i, threshold := range tierThresholds {
		if roll < threshold {
			return domain.TierLadder[i].Tier
		}
	}
	return ""
}

// Forced resolves a pity-governed draw. pity10 and pity90 are the counter
// values after this pull's increment; the returned values are the counters to
// persist. Reaching pity90 forces rainbow, reaching pity10 forces a coin flip
// between red and gold; otherwise the independent draw runs. Any red, gold or
// rainbow outcome resets pity10, rainbow resets both.
func (r *Roller) Forced(pity10, pity90 int) (tier string, outPity10, outPity90 int) {
	if pity90 >= Pity90Threshold {
		return domain.TierRainbow, 0, 0
	}
	if pity10 >= Pity10Threshold {
		tier = domain.TierRed
		if r.rnd() < 0.5 {
			tier = domain.TierGold
		}
		return tier, 0, pity90
	}

	tier = r.Independent()
	switch tier {
	case domain.TierRainbow:
		return tier, 0, 0
	case domain.TierRed, domain.TierGold:
		return tier, 0, pity90
	default:
		return tier, pity10, pity90
	}
}
