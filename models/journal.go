package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// A private journal entry, stored in the document store.
type JournalRecord struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    uint               `bson:"user_id" json:"user_id"`
	Title     string             `bson:"title" json:"title"`
	Body      string             `bson:"body" json:"body"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
