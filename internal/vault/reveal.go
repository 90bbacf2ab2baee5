package vault

import (
	"time"

	"github.com/google/uuid"

	"github.com/lootvault/vaultsim/internal/domain"
)

// Reveal stage pacing. The durations are cosmetic; nothing correctness-
// critical hangs on them, but the relative ordering and rough timing match
// the vault-opening animation they pace.
const (
	AuthenticatingDuration = 1200 * time.Millisecond
	PickingDuration        = 900 * time.Millisecond
	SpinningDuration       = 1800 * time.Millisecond

	// RevealRetention is how long an unconsumed reveal stays claimable
	// before it is abandoned. Abandonment writes nothing: the outcome was
	// never claimed or stored, so there is nothing to roll back.
	RevealRetention = 15 * time.Minute
)

// Reveal is one vault-opening session. The outcome is resolved exactly once
// at purchase time; the stage machine only paces when it becomes visible.
// Stages advance idle -> authenticating -> picking -> spinning -> revealed.
type Reveal struct {
	ID        uuid.UUID
	PlayerID  string
	TierName  string
	Stage     domain.RevealStage
	Outcome   domain.RevealOutcome
	Consumed  bool
	StartedAt time.Time
}

// View is the externally visible shape of a reveal. The outcome is hidden
// until the spinning stage completes.
type View struct {
	ID       uuid.UUID             `json:"id"`
	TierName string                `json:"tier_name"`
	Stage    domain.RevealStage    `json:"stage"`
	Outcome  *domain.RevealOutcome `json:"outcome,omitempty"`
	Consumed bool                  `json:"consumed"`
}

// view renders the reveal, masking the outcome before it is revealed
func (r *Reveal) view() View {
	v := View{
		ID:       r.ID,
		TierName: r.TierName,
		Stage:    r.Stage,
		Consumed: r.Consumed,
	}
	if r.Stage == domain.StageRevealed {
		outcome := r.Outcome
		v.Outcome = &outcome
	}
	return v
}
