package vault

import "github.com/lootvault/vaultsim/internal/domain"

// Mock product names per rarity. Purely cosmetic flavor for reveal
// outcomes and inventory items.
var productNames = map[domain.Rarity][]string{
	domain.RarityCommon: {
		"Tin Pin Set", "Sticker Pack", "Canvas Patch", "Enamel Keychain", "Trading Card Bundle",
	},
	domain.RarityUncommon: {
		"Glow Figurine", "Holo Print", "Desk Totem", "Collector Coin", "Mini Diorama",
	},
	domain.RarityRare: {
		"Cobalt Figure", "Signed Art Cel", "Crystal Bust", "Numbered Lithograph", "Chrome Model Kit",
	},
	domain.RarityLegendary: {
		"Founders Statue", "Golden Relic", "Prototype Mold", "One-of-One Sculpt", "Vault Masterwork",
	},
}

// pickProduct chooses a flavor name for an outcome
func pickProduct(rarity domain.Rarity, rnd func() float64) string {
	names := productNames[rarity]
	if len(names) == 0 {
		return "Mystery Collectible"
	}
	idx := int(rnd() * float64(len(names)))
	if idx >= len(names) {
		idx = len(names) - 1
	}
	return names[idx]
}
