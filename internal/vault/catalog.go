// Package vault resolves vault-opening outcomes: which rarity a spin lands
// on and what the reveal is worth.
package vault

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/lootvault/vaultsim/internal/domain"
)

// TierCount is the number of vault tiers the catalog must define
const TierCount = 6

// DistributionTolerance is the allowed float drift when validating that a
// tier's weights sum to 100
const DistributionTolerance = 0.5

// Catalog holds the immutable vault tier and rarity configuration loaded
// at startup.
type Catalog struct {
	tiers   []domain.VaultTier
	configs map[domain.Rarity]domain.RarityConfig
}

// LoadCatalog reads and validates configs/vault_tiers.json
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vault catalog: %w", err)
	}

	var cfg domain.VaultCatalogConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse vault catalog: %w", err)
	}
	return NewCatalog(cfg)
}

// NewCatalog validates a parsed config and builds the catalog
func NewCatalog(cfg domain.VaultCatalogConfig) (*Catalog, error) {
	if len(cfg.Tiers) != TierCount {
		return nil, fmt.Errorf("expected %d vault tiers, got %d", TierCount, len(cfg.Tiers))
	}
	if len(cfg.RarityConfigs) != len(domain.Rarities) {
		return nil, fmt.Errorf("expected %d rarity configs, got %d", len(domain.Rarities), len(cfg.RarityConfigs))
	}

	tiers := append([]domain.VaultTier(nil), cfg.Tiers...)
	sort.Slice(tiers, func(i, j int) bool { return tiers[i].Price < tiers[j].Price })

	for _, t := range tiers {
		if t.Name == "" || t.Price <= 0 {
			return nil, fmt.Errorf("tier %q has invalid name or price", t.Name)
		}
		if sum := t.Distribution.Sum(); math.Abs(sum-100) > DistributionTolerance {
			return nil, fmt.Errorf("tier %q distribution sums to %.2f, want 100", t.Name, sum)
		}
	}

	configs := make(map[domain.Rarity]domain.RarityConfig, len(cfg.RarityConfigs))
	for _, rc := range cfg.RarityConfigs {
		if !rc.Rarity.IsValid() {
			return nil, fmt.Errorf("unknown rarity %q in rarity configs", rc.Rarity)
		}
		if rc.MinValueMultiplier <= 0 || rc.MaxValueMultiplier < rc.MinValueMultiplier {
			return nil, fmt.Errorf("rarity %q has invalid multiplier range", rc.Rarity)
		}
		configs[rc.Rarity] = rc
	}
	if len(configs) != len(domain.Rarities) {
		return nil, fmt.Errorf("rarity configs must cover all %d rarities", len(domain.Rarities))
	}

	return &Catalog{tiers: tiers, configs: configs}, nil
}

// Tiers returns the vault tiers in ascending price order
func (c *Catalog) Tiers() []domain.VaultTier {
	return c.tiers
}

// Tier looks a tier up by name
func (c *Catalog) Tier(name string) (domain.VaultTier, error) {
	for _, t := range c.tiers {
		if t.Name == name {
			return t, nil
		}
	}
	return domain.VaultTier{}, fmt.Errorf("%w: %s", domain.ErrTierNotFound, name)
}

// RarityConfig returns the payout multiplier range for a rarity
func (c *Catalog) RarityConfig(r domain.Rarity) domain.RarityConfig {
	return c.configs[r]
}
