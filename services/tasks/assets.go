package tasks

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	TypeDeleteAsset = "asset:delete"
	assetQueue      = "cleanup"
)

// DeleteAssetPayload names a stored media asset to remove.
type DeleteAssetPayload struct {
	PublicID string `json:"publicId"`
}

func NewDeleteAssetTask(publicID string) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(DeleteAssetPayload{PublicID: publicID})
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeDeleteAsset, b)
	opts := []asynq.Option{
		asynq.Queue(assetQueue),
		asynq.MaxRetry(8),
		asynq.Timeout(30 * time.Second),
	}
	return task, opts, nil
}

// AssetQueue schedules asset deletions on the background queue.
type AssetQueue struct {
	client *asynq.Client
}

func NewAssetQueue(client *asynq.Client) *AssetQueue {
	return &AssetQueue{client: client}
}

func (q *AssetQueue) ScheduleAssetDeletion(ctx context.Context, publicID string) error {
	task, opts, err := NewDeleteAssetTask(publicID)
	if err != nil {
		return err
	}
	_, err = q.client.EnqueueContext(ctx, task, opts...)
	return err
}

// Close releases the queue's Redis connection.
func (q *AssetQueue) Close() error {
	return q.client.Close()
}
