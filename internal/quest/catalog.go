// Package quest tracks named progress counters against static quest
// definitions and hands out XP/credit rewards on completion.
package quest

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lootvault/vaultsim/internal/domain"
)

// LoadCatalog reads and validates the static quest definitions
func LoadCatalog(path string) ([]domain.Quest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read quest catalog: %w", err)
	}

	var cfg domain.QuestCatalogConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse quest catalog: %w", err)
	}

	if err := validateCatalog(cfg.Quests); err != nil {
		return nil, fmt.Errorf("invalid quest catalog: %w", err)
	}
	return cfg.Quests, nil
}

func validateCatalog(quests []domain.Quest) error {
	seen := make(map[string]bool, len(quests))
	for _, q := range quests {
		if q.ID == "" {
			return fmt.Errorf("quest with empty id")
		}
		if seen[q.ID] {
			return fmt.Errorf("duplicate quest id %q", q.ID)
		}
		seen[q.ID] = true

		if q.Requirement.Type == "" {
			return fmt.Errorf("quest %q has no requirement type", q.ID)
		}
		if q.Requirement.Target <= 0 {
			return fmt.Errorf("quest %q has non-positive target", q.ID)
		}
		if q.XPReward < 0 || q.CreditReward < 0 {
			return fmt.Errorf("quest %q has negative reward", q.ID)
		}
	}
	return nil
}
