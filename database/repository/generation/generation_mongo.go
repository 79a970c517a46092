package generationRepo

import (
	"context"
	"fmt"
	"time"

	"tripcraft/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "generations"

type mongoGenerationLog struct {
	coll *mongo.Collection
}

// NewMongoGenerationLog returns a GenerationLog backed by the generations collection.
func NewMongoGenerationLog(client *mongo.Client, dbName string) GenerationLog {
	return &mongoGenerationLog{
		coll: client.Database(dbName).Collection(collectionName),
	}
}

// EnsureIndexes creates the lookup index used by ListByUser.
func EnsureIndexes(ctx context.Context, client *mongo.Client, dbName string) error {
	coll := client.Database(dbName).Collection(collectionName)
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("create generations index: %w", err)
	}
	return nil
}

// Append inserts a generation record and returns its ID.
func (r *mongoGenerationLog) Append(ctx context.Context, record models.GenerationRecord) (string, error) {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	if _, err := r.coll.InsertOne(ctx, record); err != nil {
		return "", fmt.Errorf("insert generation record: %w", err)
	}
	return record.ID, nil
}

// ListByUser returns the user's most recent generation attempts, newest first.
func (r *mongoGenerationLog) ListByUser(ctx context.Context, userID string, limit int64) ([]models.GenerationRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := []models.GenerationRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
