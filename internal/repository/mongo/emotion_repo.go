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

const emotionTipCollectionName = "emotion_tips"

// mongoEmotionTipRepository implements repository.EmotionTipRepository using MongoDB.
type mongoEmotionTipRepository struct {
	collection *mongo.Collection
}

// NewMongoEmotionTipRepository creates a new instance of mongoEmotionTipRepository.
func NewMongoEmotionTipRepository(db *mongo.Database) repository.EmotionTipRepository {
	return &mongoEmotionTipRepository{
		collection: db.Collection(emotionTipCollectionName),
	}
}

// Create saves one tip as its own document so it can be deleted individually.
func (r *mongoEmotionTipRepository) Create(ctx context.Context, tip *domain.EmotionTip) (primitive.ObjectID, error) {
	if tip.Emotion == "" || tip.Title == "" {
		return primitive.NilObjectID, errors.New("emotion and title are required")
	}

	tip.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	tip.CreatedAt = now
	tip.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, tip)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByUserID returns the user's saved tips, most recent first.
func (r *mongoEmotionTipRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.EmotionTip, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tips []domain.EmotionTip
	if err = cursor.All(ctx, &tips); err != nil {
		return nil, err
	}
	return tips, nil
}

// Delete removes a tip, but only when it belongs to the given user.
func (r *mongoEmotionTipRepository) Delete(ctx context.Context, id, userID primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureEmotionTipIndexes creates necessary indexes for the emotion tips collection.
func EnsureEmotionTipIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
