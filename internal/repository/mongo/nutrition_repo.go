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

const nutritionCollectionName = "nutrition_entries"

// mongoNutritionRepository implements repository.NutritionRepository using MongoDB.
type mongoNutritionRepository struct {
	collection *mongo.Collection
}

// NewMongoNutritionRepository creates a new instance of mongoNutritionRepository.
func NewMongoNutritionRepository(db *mongo.Database) repository.NutritionRepository {
	return &mongoNutritionRepository{
		collection: db.Collection(nutritionCollectionName),
	}
}

// Create inserts a new meal log entry.
func (r *mongoNutritionRepository) Create(ctx context.Context, entry *domain.NutritionEntry) (primitive.ObjectID, error) {
	if entry.FoodItem == "" {
		return primitive.NilObjectID, errors.New("food item is required")
	}

	entry.ID = primitive.NewObjectID()
	if entry.Date.IsZero() {
		entry.Date = time.Now().UTC()
	}

	result, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByUserID returns the user's meal log, most recent first, capped at
// limit entries.
func (r *mongoNutritionRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID, limit int64) ([]domain.NutritionEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []domain.NutritionEntry
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// GetSince returns the user's meal entries logged at or after the given
// instant, used for the daily summary.
func (r *mongoNutritionRepository) GetSince(ctx context.Context, userID primitive.ObjectID, since time.Time) ([]domain.NutritionEntry, error) {
	filter := bson.M{
		"userId": userID,
		"date":   bson.M{"$gte": since},
	}
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []domain.NutritionEntry
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// EnsureNutritionIndexes creates necessary indexes for the nutrition collection.
func EnsureNutritionIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: -1}},
			Options: options.Index(),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
