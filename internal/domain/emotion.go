package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tip is a single recommendation returned by the emotion detector.
type Tip struct {
	Title       string `bson:"title" json:"title"`
	Link        string `bson:"link" json:"link"`
	Description string `bson:"description" json:"description"`
}

// EmotionTip is a tip the user chose to keep, stored as an individual
// document so single tips can be deleted later.
type EmotionTip struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	Emotion     string             `bson:"emotion" json:"emotion"`
	Title       string             `bson:"title" json:"title"`
	Link        string             `bson:"link" json:"link"`
	Description string             `bson:"description" json:"description"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
