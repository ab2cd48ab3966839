package models

import (
	"gorm.io/gorm"
)

// A user-submitted wellbeing report. Append-only; recency queries order by
// creation time.
type Report struct {
	gorm.Model
	UserID   uint   `gorm:"index;not null" json:"user_id"`
	Category string `gorm:"size:40" json:"category"`
	Body     string `gorm:"type:text" json:"body"`
}
