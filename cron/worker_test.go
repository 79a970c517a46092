package cron

import (
	"context"
	"errors"
	"io"
	"testing"

	"tripcraft/services/storage"
	"tripcraft/services/tasks"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingStorage struct {
	deleted []string
	err     error
}

func (r *recordingStorage) UploadImage(context.Context, io.Reader, string) (*storage.UploadedAsset, error) {
	return nil, errors.New("not used")
}

func (r *recordingStorage) DeleteFile(_ context.Context, publicID string) error {
	r.deleted = append(r.deleted, publicID)
	return r.err
}

func TestHandleDeleteAsset(t *testing.T) {
	store := &recordingStorage{}
	task, _, err := tasks.NewDeleteAssetTask("trips/t1/cover-1")
	require.NoError(t, err)

	require.NoError(t, HandleDeleteAsset(store)(context.Background(), task))
	assert.Equal(t, []string{"trips/t1/cover-1"}, store.deleted)
}

func TestHandleDeleteAssetRetryPolicy(t *testing.T) {
	handler := HandleDeleteAsset(&recordingStorage{err: errors.New("cloudinary 500")})
	task, _, _ := tasks.NewDeleteAssetTask("a")
	err := handler(context.Background(), task)
	require.Error(t, err)
	assert.NotErrorIs(t, err, asynq.SkipRetry)

	err = HandleDeleteAsset(storage.DisabledStorage{})(context.Background(), task)
	assert.ErrorIs(t, err, asynq.SkipRetry)

	err = handler(context.Background(), asynq.NewTask(tasks.TypeDeleteAsset, []byte("{bad")))
	assert.ErrorIs(t, err, asynq.SkipRetry)

	err = handler(context.Background(), asynq.NewTask(tasks.TypeDeleteAsset, []byte(`{}`)))
	assert.ErrorIs(t, err, asynq.SkipRetry)
}
