package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// A mood check-in, stored in the document store.
type MoodRecord struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    uint               `bson:"user_id" json:"user_id"`
	MoodScore int                `bson:"mood_score" json:"mood_score"` // 0 (awful) .. 4 (great)
	Note      string             `bson:"note" json:"note"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
