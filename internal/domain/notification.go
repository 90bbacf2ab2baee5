package domain

import "time"

// NotificationKind classifies a transient UI notification
type NotificationKind string

const (
	NotificationQuestComplete NotificationKind = "quest_complete"
	NotificationLevelUp       NotificationKind = "level_up"
)

// Notification is a transient message queued for display. Notifications
// auto-dismiss after a fixed timeout and are never persisted.
type Notification struct {
	ID        string           `json:"id"`
	PlayerID  string           `json:"player_id"`
	Kind      NotificationKind `json:"kind"`
	Title     string           `json:"title"`
	Body      string           `json:"body"`
	CreatedAt time.Time        `json:"created_at"`
}
