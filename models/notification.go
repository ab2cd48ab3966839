package models

import "time"

const (
	NotificationAlert   = "alert"
	NotificationWarning = "warning"
	NotificationInfo    = "info"
	NotificationSuccess = "success"
)

// Notification is derived and ephemeral: regenerated on every read, never
// persisted, so it is not an event log.
type Notification struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"` // "alert"|"warning"|"info"|"success"
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	GeneratedAt time.Time `json:"generated_at"`
	Read        bool      `json:"read"`
}
