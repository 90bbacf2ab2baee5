package vault

import (
	"math"

	"github.com/lootvault/vaultsim/internal/domain"
)

// Payout constants
const (
	// FlatReduction is subtracted from every payout before rounding
	FlatReduction = 2

	// MinimumPayout floors every reveal value
	MinimumPayout = 1
)

// PickRarity draws a uniform number in [0, 100) and walks the rarities in
// fixed order (common, uncommon, rare, legendary), accumulating weights.
// The first rarity whose cumulative weight meets or exceeds the draw wins.
//
// If the weights sum below 100 from floating-point drift the draw can walk
// off the end; that case falls back to common rather than erroring.
func PickRarity(dist domain.Distribution, rnd func() float64) domain.Rarity {
	draw := rnd() * 100

	cumulative := 0.0
	for _, r := range domain.Rarities {
		cumulative += dist.Weight(r)
		if draw <= cumulative {
			return r
		}
	}
	return domain.RarityCommon
}

// PickValue draws a uniform multiplier in [min, max] for the rarity,
// computes price*multiplier minus the flat reduction, rounds to the
// nearest integer and floors at the minimum payout.
func PickValue(price int, cfg domain.RarityConfig, rnd func() float64) int {
	mult := cfg.MinValueMultiplier + rnd()*(cfg.MaxValueMultiplier-cfg.MinValueMultiplier)
	value := math.Round(float64(price)*mult - FlatReduction)
	if value < MinimumPayout {
		return MinimumPayout
	}
	return int(value)
}
