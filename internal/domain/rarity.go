package domain

// Rarity represents the outcome tier of a vault reveal
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityLegendary Rarity = "legendary"
)

// Rarities lists the four rarity tiers in resolution order.
// PickRarity walks them in exactly this order when accumulating weights.
var Rarities = []Rarity{RarityCommon, RarityUncommon, RarityRare, RarityLegendary}

// IsValid reports whether r is one of the four known rarity tiers
func (r Rarity) IsValid() bool {
	switch r {
	case RarityCommon, RarityUncommon, RarityRare, RarityLegendary:
		return true
	}
	return false
}

// RarityConfig defines the payout multiplier range for a rarity tier.
// The reveal value is price * multiplier with the multiplier drawn
// uniformly from [MinValueMultiplier, MaxValueMultiplier].
//
// The rare max (1.35) equals the legendary min (1.35) on purpose - the
// ranges meet at the boundary rather than leaving a gap.
type RarityConfig struct {
	Rarity             Rarity  `json:"rarity"`
	MinValueMultiplier float64 `json:"min_value_multiplier"`
	MaxValueMultiplier float64 `json:"max_value_multiplier"`
}

// Distribution holds the four rarity weights as percentage points.
// A well-formed distribution sums to 100.
type Distribution struct {
	Common    float64 `json:"common"`
	Uncommon  float64 `json:"uncommon"`
	Rare      float64 `json:"rare"`
	Legendary float64 `json:"legendary"`
}

// Sum returns the total weight of the distribution
func (d Distribution) Sum() float64 {
	return d.Common + d.Uncommon + d.Rare + d.Legendary
}

// Weight returns the weight assigned to a rarity tier
func (d Distribution) Weight(r Rarity) float64 {
	switch r {
	case RarityCommon:
		return d.Common
	case RarityUncommon:
		return d.Uncommon
	case RarityRare:
		return d.Rare
	case RarityLegendary:
		return d.Legendary
	}
	return 0
}
