package models

import (
	"time"

	"gorm.io/gorm"
)

// One logged workout session. Records are append-only; the owner may delete.
type ActivityRecord struct {
	gorm.Model
	UserID         uint      `gorm:"index;not null" json:"user_id"`
	ActivityType   string    `gorm:"size:30;not null" json:"activity_type"` // "running"|"gym"|"yoga"|…
	DurationMins   int       `gorm:"not null" json:"duration_mins"`
	CaloriesBurned float64   `json:"calories_burned"`
	LoggedAt       time.Time `gorm:"index;not null" json:"logged_at"`
}

var ActivityTypes = []string{"running", "gym", "yoga", "cycling", "swimming", "walking", "sports"}

func ValidActivityType(t string) bool {
	for _, known := range ActivityTypes {
		if t == known {
			return true
		}
	}
	return false
}
