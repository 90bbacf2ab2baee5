package vault

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lootvault/vaultsim/internal/domain"
)

// seq returns an rnd source that cycles through the given values
func seq(vals ...float64) func() float64 {
	i := 0
	return func() float64 {
		v := vals[i%len(vals)]
		i++
		return v
	}
}

func TestPickRarity_WalksCumulativeWeights(t *testing.T) {
	dist := domain.Distribution{Common: 55, Uncommon: 25, Rare: 17, Legendary: 3}

	tests := []struct {
		name string
		draw float64 // Pre-scaled to [0,1)
		want domain.Rarity
	}{
		{"low draw lands common", 0.10, domain.RarityCommon},
		// 0.55*100 rounds up to 55.000000000000007 in float64, just past
		// the common cumulative of 55
		{"draw just past common lands uncommon", 0.55, domain.RarityUncommon},
		{"mid draw lands uncommon", 0.70, domain.RarityUncommon},
		{"high draw lands rare", 0.90, domain.RarityRare},
		{"top draw lands legendary", 0.99, domain.RarityLegendary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PickRarity(dist, seq(tt.draw))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPickRarity_ExactBoundaryStaysLower(t *testing.T) {
	// 0.5*100 is exactly 50 in float64, so the draw sits on the common
	// cumulative and the inclusive walk keeps it common.
	dist := domain.Distribution{Common: 50, Uncommon: 30, Rare: 17, Legendary: 3}

	got := PickRarity(dist, seq(0.5))
	assert.Equal(t, domain.RarityCommon, got)
}

func TestPickRarity_FallsBackToCommonOnUnderweightDistribution(t *testing.T) {
	// Weights sum to 99; a draw above the total walks off the end
	dist := domain.Distribution{Common: 50, Uncommon: 25, Rare: 20, Legendary: 4}

	got := PickRarity(dist, seq(0.995))
	assert.Equal(t, domain.RarityCommon, got)
}

func TestPickRarity_EmpiricalDistribution(t *testing.T) {
	dist := domain.Distribution{Common: 55, Uncommon: 25, Rare: 17, Legendary: 3}
	rnd := rand.New(rand.NewSource(42)).Float64

	const n = 100000
	counts := map[domain.Rarity]int{}
	for i := 0; i < n; i++ {
		counts[PickRarity(dist, rnd)]++
	}

	// 100k draws keep each observed share well within a percentage point
	// of its weight.
	for _, r := range domain.Rarities {
		share := float64(counts[r]) / n * 100
		assert.InDelta(t, dist.Weight(r), share, 1.0, "rarity %s share", r)
	}
}

func TestPickValue_FormulaAndBounds(t *testing.T) {
	legendary := domain.RarityConfig{
		Rarity:             domain.RarityLegendary,
		MinValueMultiplier: 1.35,
		MaxValueMultiplier: 1.667,
	}

	// Price 12: min roll gives round(12*1.35-2)=14, max roll approaches
	// round(12*1.667-2)=18.
	assert.Equal(t, 14, PickValue(12, legendary, seq(0.0)))
	assert.Equal(t, 18, PickValue(12, legendary, seq(0.9999)))

	rnd := rand.New(rand.NewSource(7)).Float64
	for i := 0; i < 1000; i++ {
		v := PickValue(12, legendary, rnd)
		assert.GreaterOrEqual(t, v, 14)
		assert.LessOrEqual(t, v, 18)
	}
}

func TestPickValue_FloorsAtMinimumPayout(t *testing.T) {
	common := domain.RarityConfig{
		Rarity:             domain.RarityCommon,
		MinValueMultiplier: 0.05,
		MaxValueMultiplier: 0.10,
	}

	// round(12*0.05-2) is negative; the payout floors at 1
	assert.Equal(t, MinimumPayout, PickValue(12, common, seq(0.0)))
}

func TestPickProduct_CoversRarityAndClampsIndex(t *testing.T) {
	assert.NotEmpty(t, pickProduct(domain.RarityLegendary, seq(0.0)))
	assert.NotEmpty(t, pickProduct(domain.RarityCommon, seq(0.9999)))
	assert.Equal(t, "Mystery Collectible", pickProduct(domain.Rarity("bogus"), seq(0.5)))
}
