package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Activity is a logged fitness activity (a run, a gym session, ...).
type Activity struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          primitive.ObjectID `bson:"userId" json:"userId"`
	ActivityType    string             `bson:"activityType" json:"activityType"`
	DurationMinutes int                `bson:"durationMinutes" json:"durationMinutes"`
	CaloriesBurned  int                `bson:"caloriesBurned" json:"caloriesBurned"`
	Date            time.Time          `bson:"date" json:"date"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}
