// Package odds shifts a base rarity distribution toward rarer outcomes as a
// player's prestige level rises.
package odds

import (
	"log/slog"
	"math"

	"github.com/lootvault/vaultsim/internal/domain"
)

// Prestige shift constants. Each prestige level moves ShiftPerLevel
// percentage points out of common, split across the rarer tiers.
const (
	ShiftPerLevel = 4.0

	UncommonShare  = 0.3
	RareShare      = 0.4
	LegendaryShare = 0.3
)

// Adjust returns the distribution used at resolution time for the given
// prestige level. Prestige 0 returns base unchanged. Each level shifts
// 4 points from common into uncommon/rare/legendary at a 30/40/30 split,
// with every weight rounded to one decimal place; the total stays at ~100
// because exactly what leaves common arrives elsewhere.
//
// A prestige outside 0..3 is rejected with domain.ErrInvalidPrestige rather
// than clamped.
func Adjust(base domain.Distribution, prestige int) (domain.Distribution, error) {
	if prestige < domain.MinPrestigeLevel || prestige > domain.MaxPrestigeLevel {
		return domain.Distribution{}, domain.ErrInvalidPrestige
	}
	if prestige == 0 {
		return base, nil
	}

	shift := ShiftPerLevel * float64(prestige)

	adjusted := domain.Distribution{
		Common:    round1(base.Common - shift),
		Uncommon:  round1(base.Uncommon + UncommonShare*shift),
		Rare:      round1(base.Rare + RareShare*shift),
		Legendary: round1(base.Legendary + LegendaryShare*shift),
	}

	// Unreachable with the shipped tier data (lowest base common is well
	// above the maximum shift of 12), but enforced so a future tier with a
	// thin common weight cannot go negative.
	if adjusted.Common < 0 {
		slog.Warn("Prestige shift drove common weight negative, clamping",
			"base_common", base.Common, "prestige", prestige)
		adjusted.Common = 0
	}

	return adjusted, nil
}

// round1 rounds to one decimal place
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
