package models

import (
	"time"

	"gorm.io/gorm"
)

type WellnessEvent struct {
	gorm.Model
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Capacity    int       `gorm:"not null" json:"capacity"`
	StartsAt    time.Time `json:"starts_at"`
}

// A user's spot in an event. The composite unique index is what turns a
// duplicate join into a Conflict instead of a second row.
type EventParticipation struct {
	gorm.Model
	UserID  uint `gorm:"uniqueIndex:idx_event_participant;not null" json:"user_id"`
	EventID uint `gorm:"uniqueIndex:idx_event_participant;not null" json:"event_id"`
}
