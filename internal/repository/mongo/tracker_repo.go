package mongo

import (
	"context"
	"errors"
	"time"

	"holistic/wellness-app/internal/domain"
	"holistic/wellness-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const trackerCollectionName = "trackers"

// mongoTrackerRepository implements repository.TrackerRepository using a
// single document per user, mirroring how the tracker is consumed: the whole
// thing is loaded for every calculation or aggregation anyway.
type mongoTrackerRepository struct {
	collection *mongo.Collection
}

// NewMongoTrackerRepository creates a new instance of mongoTrackerRepository.
func NewMongoTrackerRepository(db *mongo.Database) repository.TrackerRepository {
	return &mongoTrackerRepository{
		collection: db.Collection(trackerCollectionName),
	}
}

// Get loads the user's tracker document.
func (r *mongoTrackerRepository) Get(ctx context.Context, userID primitive.ObjectID) (*domain.Tracker, error) {
	var tracker domain.Tracker
	err := r.collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&tracker)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &tracker, nil
}

// SavePlan upserts the profile and the freshly calculated plan. The previous
// plan is replaced wholesale; the entry history is left untouched.
func (r *mongoTrackerRepository) SavePlan(ctx context.Context, userID primitive.ObjectID, profile *domain.Profile, plan *domain.Plan) error {
	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"profile":   profile,
			"plan":      plan,
			"updatedAt": now,
		},
		"$setOnInsert": bson.M{
			"userId":       userID,
			"dailyEntries": []domain.DailyEntry{},
			"createdAt":    now,
		},
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{"userId": userID}, update, options.Update().SetUpsert(true))
	return err
}

// UpsertEntry stores one daily entry with last-write-wins semantics: any
// existing entry for the same date is pulled before the new one is pushed.
func (r *mongoTrackerRepository) UpsertEntry(ctx context.Context, userID primitive.ObjectID, entry domain.DailyEntry) error {
	filter := bson.M{"userId": userID}

	pull := bson.M{
		"$pull": bson.M{"dailyEntries": bson.M{"date": entry.Date}},
	}
	result, err := r.collection.UpdateOne(ctx, filter, pull)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}

	push := bson.M{
		"$push": bson.M{"dailyEntries": entry},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}
	_, err = r.collection.UpdateOne(ctx, filter, push)
	return err
}

// Clear removes the user's whole tracker document. Irreversible.
func (r *mongoTrackerRepository) Clear(ctx context.Context, userID primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"userId": userID})
	return err
}

// EnsureTrackerIndexes creates necessary indexes for the trackers collection.
func EnsureTrackerIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
