package quest

import (
	"context"

	"github.com/jonboulle/clockwork"

	"github.com/lootvault/vaultsim/internal/domain"
	"github.com/lootvault/vaultsim/internal/event"
	"github.com/lootvault/vaultsim/internal/logger"
	"github.com/lootvault/vaultsim/internal/metrics"
	"github.com/lootvault/vaultsim/internal/player"
)

// View pairs a quest definition with the player's progress on it
type View struct {
	Quest    domain.Quest         `json:"quest"`
	Progress domain.QuestProgress `json:"progress"`
}

// Tracker defines the quest progress interface
type Tracker interface {
	Catalog() []domain.Quest
	Progress(ctx context.Context, playerID string) ([]View, error)
	Advance(ctx context.Context, playerID, requirementType string, incrementBy int) ([]Completion, error)
}

type tracker struct {
	players player.Store
	bus     event.Bus
	clock   clockwork.Clock
	catalog []domain.Quest
}

// NewTracker creates a quest tracker over a loaded catalog
func NewTracker(catalog []domain.Quest, players player.Store, bus event.Bus, clock clockwork.Clock) Tracker {
	return &tracker{
		players: players,
		bus:     bus,
		clock:   clock,
		catalog: catalog,
	}
}

// Catalog returns the static quest definitions
func (t *tracker) Catalog() []domain.Quest {
	return t.catalog
}

// Progress returns the player's progress on every quest, unlocking any
// quests whose level requirement is now met.
func (t *tracker) Progress(ctx context.Context, playerID string) ([]View, error) {
	var activated []domain.Quest
	state, err := t.players.Update(ctx, playerID, func(s *domain.PlayerState) error {
		activated = SyncUnlocks(s, t.catalog, t.clock.Now().UTC())
		return nil
	})
	if err != nil {
		return nil, err
	}
	PublishUnlocks(ctx, t.bus, playerID, activated)

	views := make([]View, 0, len(t.catalog))
	for _, q := range t.catalog {
		qp := state.Progress(q.ID)
		if qp == nil {
			continue
		}
		views = append(views, View{Quest: q, Progress: *qp})
	}
	return views, nil
}

// Advance applies one requirement-type increment atomically against the
// current aggregate snapshot and publishes completion events.
func (t *tracker) Advance(ctx context.Context, playerID, requirementType string, incrementBy int) ([]Completion, error) {
	var (
		activated   []domain.Quest
		completions []Completion
	)
	_, err := t.players.Update(ctx, playerID, func(s *domain.PlayerState) error {
		activated = SyncUnlocks(s, t.catalog, t.clock.Now().UTC())
		completions = Advance(s, t.catalog, requirementType, incrementBy, t.clock.Now().UTC())
		return nil
	})
	if err != nil {
		return nil, err
	}

	PublishUnlocks(ctx, t.bus, playerID, activated)
	PublishCompletions(ctx, t.bus, playerID, completions)
	return completions, nil
}

// PublishUnlocks emits a quest.unlocked event for each newly activated quest.
func PublishUnlocks(ctx context.Context, bus event.Bus, playerID string, activated []domain.Quest) {
	for _, q := range activated {
		publish(ctx, bus, event.QuestUnlocked, event.QuestUnlockedPayloadV1{
			PlayerID: playerID,
			QuestID:  q.ID,
			Title:    q.Title,
		})
	}
}

// PublishCompletions records metrics and emits quest.completed (and, when a
// reward crossed a level threshold, level.up) events for each completion.
// Any service that advances quests inside its own aggregate update calls
// this after the update commits.
func PublishCompletions(ctx context.Context, bus event.Bus, playerID string, completions []Completion) {
	log := logger.FromContext(ctx)

	for _, c := range completions {
		metrics.QuestsCompleted.WithLabelValues(c.Quest.ID).Inc()
		log.Info("Quest completed",
			"player_id", playerID, "quest_id", c.Quest.ID,
			"xp_reward", c.Quest.XPReward, "credit_reward", c.Quest.CreditReward)

		publish(ctx, bus, event.QuestCompleted, event.QuestCompletedPayloadV1{
			PlayerID:     playerID,
			QuestID:      c.Quest.ID,
			Title:        c.Quest.Title,
			XPReward:     c.Quest.XPReward,
			CreditReward: c.Quest.CreditReward,
		})
		if c.XPResult.LeveledUp {
			publish(ctx, bus, event.LevelUp, event.LevelUpPayloadV1{
				PlayerID: playerID,
				NewLevel: c.XPResult.Info.Level,
			})
		}
	}
}

func publish(ctx context.Context, bus event.Bus, typ event.Type, payload interface{}) {
	if bus == nil {
		return
	}
	evt := event.Event{Version: "1.0", Type: typ, Payload: payload}
	if err := bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn("Event publish failed", "type", typ, "error", err)
	}
}
