package generationRepo

import (
	"context"
	"testing"
	"time"

	"tripcraft/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoGenerationLog(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("append assigns id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := NewMongoGenerationLog(mt.Client, mt.DB.Name())

		id, err := repo.Append(context.Background(), models.GenerationRecord{
			UserID:      "user-1",
			Destination: "Kyoto",
			Days:        3,
			Outcome:     models.GenerationOK,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, id)
	})

	mt.Run("append surfaces write errors", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index: 0, Code: 11000, Message: "duplicate key",
		}))
		repo := NewMongoGenerationLog(mt.Client, mt.DB.Name())

		_, err := repo.Append(context.Background(), models.GenerationRecord{ID: "dup"})
		assert.Error(t, err)
	})

	mt.Run("list by user decodes records", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + collectionName
		created := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
				bson.D{
					{Key: "id", Value: "gen-1"},
					{Key: "userId", Value: "user-1"},
					{Key: "destination", Value: "Kyoto"},
					{Key: "days", Value: 3},
					{Key: "outcome", Value: models.GenerationMalformed},
					{Key: "createdAt", Value: created},
				}),
		)
		repo := NewMongoGenerationLog(mt.Client, mt.DB.Name())

		records, err := repo.ListByUser(context.Background(), "user-1", 10)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "gen-1", records[0].ID)
		assert.Equal(t, models.GenerationMalformed, records[0].Outcome)
		assert.Equal(t, 3, records[0].Days)
	})
}

func TestNopGenerationLog(t *testing.T) {
	var log GenerationLog = NopGenerationLog{}

	id, err := log.Append(context.Background(), models.GenerationRecord{ID: "x"})
	require.NoError(t, err)
	assert.Equal(t, "x", id)

	records, err := log.ListByUser(context.Background(), "user-1", 5)
	require.NoError(t, err)
	assert.Empty(t, records)
}
