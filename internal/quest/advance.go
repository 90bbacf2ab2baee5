package quest

import (
	"time"

	"github.com/lootvault/vaultsim/internal/domain"
	"github.com/lootvault/vaultsim/internal/economy"
	"github.com/lootvault/vaultsim/internal/progression"
)

// Completion describes one quest finishing, with the progression effect of
// its XP reward.
type Completion struct {
	Quest    domain.Quest              `json:"quest"`
	XPResult progression.XPAwardResult `json:"xp_result"`
}

// SyncUnlocks flips locked quests to active once the player's level reaches
// their required level, creating progress records as needed. Already-active
// and completed quests are untouched, so the call is idempotent.
// Returns the newly activated quests.
func SyncUnlocks(s *domain.PlayerState, catalog []domain.Quest, now time.Time) []domain.Quest {
	level := progression.LevelFromXP(s.XP)

	var activated []domain.Quest
	for _, q := range catalog {
		qp := s.Progress(q.ID)
		if qp == nil {
			s.QuestProgress = append(s.QuestProgress, domain.QuestProgress{
				QuestID: q.ID,
				Status:  domain.QuestStatusLocked,
			})
			qp = s.Progress(q.ID)
		}

		if qp.Status != domain.QuestStatusLocked {
			continue
		}
		if level < q.RequiredLevel {
			continue
		}

		unlockedAt := now
		qp.Status = domain.QuestStatusActive
		qp.UnlockedAt = &unlockedAt
		activated = append(activated, q)
	}
	return activated
}

// Advance increments every active quest whose requirement type matches,
// clamping progress at the target. Quests that reach their target complete
// (terminal - completed quests never move again) and their rewards land in
// the same aggregate update: XP is applied, an optional incentive credit is
// appended, and newly reachable quests unlock.
func Advance(s *domain.PlayerState, catalog []domain.Quest, requirementType string, incrementBy int, now time.Time) []Completion {
	if incrementBy <= 0 {
		return nil
	}

	var completions []Completion
	for _, q := range catalog {
		if q.Requirement.Type != requirementType {
			continue
		}

		qp := s.Progress(q.ID)
		if qp == nil || qp.Status != domain.QuestStatusActive {
			continue
		}

		qp.Progress += incrementBy
		if qp.Progress > q.Requirement.Target {
			qp.Progress = q.Requirement.Target
		}
		if qp.Progress < q.Requirement.Target {
			continue
		}

		completedAt := now
		qp.Status = domain.QuestStatusCompleted
		qp.CompletedAt = &completedAt

		xpResult := progression.ApplyXP(s, q.XPReward)
		if q.CreditReward > 0 {
			economy.Award(s, q.CreditReward, "Quest reward: "+q.Title, now)
		}
		completions = append(completions, Completion{Quest: q, XPResult: xpResult})
	}

	// Completion XP may have crossed a level threshold
	if len(completions) > 0 {
		SyncUnlocks(s, catalog, now)
	}
	return completions
}
