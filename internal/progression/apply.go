package progression

import "github.com/lootvault/vaultsim/internal/domain"

// XPAwardResult describes the effect of one XP grant
type XPAwardResult struct {
	Awarded   int       `json:"awarded"`
	LeveledUp bool      `json:"leveled_up"`
	Info      LevelInfo `json:"info"`
}

// ApplyXP credits XP to the aggregate in place and reports whether the
// player crossed a level threshold. Negative amounts are ignored; XP only
// ever grows outside a full demo reset.
func ApplyXP(s *domain.PlayerState, amount int) XPAwardResult {
	if amount < 0 {
		amount = 0
	}

	before := LevelFromXP(s.XP)
	s.XP += amount
	info := GetLevelInfo(s.XP)

	return XPAwardResult{
		Awarded:   amount,
		LeveledUp: info.Level > before,
		Info:      info,
	}
}
