package domain

// VaultTier represents a purchasable vault with a fixed price and
// rarity-outcome distribution. Six fixed instances exist, ordered by
// ascending price; they are loaded once at startup and never mutated.
type VaultTier struct {
	Name         string       `json:"name"`
	Price        int          `json:"price"`
	Distribution Distribution `json:"distribution"`
}

// VaultCatalogConfig is the on-disk shape of configs/vault_tiers.json
type VaultCatalogConfig struct {
	Version       string         `json:"version"`
	Tiers         []VaultTier    `json:"tiers"`
	RarityConfigs []RarityConfig `json:"rarity_configs"`
}

// RevealStage represents a step in the vault-opening sequence.
// The stages are cosmetic pacing; no persisted state is written until a
// reveal outcome is claimed or stored.
type RevealStage string

const (
	StageIdle           RevealStage = "idle"
	StageAuthenticating RevealStage = "authenticating"
	StagePicking        RevealStage = "picking"
	StageSpinning       RevealStage = "spinning"
	StageRevealed       RevealStage = "revealed"
)

// RevealOutcome is the (rarity, value) pair produced once per spin.
// It is resolved when the vault is purchased and never re-rolled.
type RevealOutcome struct {
	TierName string `json:"tier_name"`
	Rarity   Rarity `json:"rarity"`
	Value    int    `json:"value"`
	Product  string `json:"product"`
}
