package cron

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"tripcraft/config"
	"tripcraft/services/storage"
	"tripcraft/services/tasks"
	"tripcraft/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// QueueRedisOpt is the Redis connection shared by the asset queue client and worker.
func QueueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitAssetWorker starts the background worker that removes stale media assets.
// The returned server must be shut down on exit.
func InitAssetWorker(store storage.MediaStorage) (*asynq.Server, error) {
	logger := utils.GetLogger()

	srv := asynq.NewServer(
		QueueRedisOpt(),
		asynq.Config{
			Concurrency: 4,
			Queues:      map[string]int{"cleanup": 1},
			Logger:      logger.Sugar(),
			HealthCheckFunc: func(err error) {
				if err != nil {
					logger.Warn("AssetWorker: Redis connection lost", zap.Error(err))
				}
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeDeleteAsset, HandleDeleteAsset(store))

	if err := srv.Start(mux); err != nil {
		return nil, fmt.Errorf("start asset worker: %w", err)
	}
	logger.Info("AssetWorker: started")
	return srv, nil
}

// HandleDeleteAsset removes the asset named in the task payload.
// Malformed payloads and disabled storage are not retried.
func HandleDeleteAsset(store storage.MediaStorage) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p tasks.DeleteAssetPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("AssetWorker: invalid payload", zap.Error(err))
			return fmt.Errorf("decode payload: %v: %w", err, asynq.SkipRetry)
		}
		if p.PublicID == "" {
			return fmt.Errorf("empty public id: %w", asynq.SkipRetry)
		}

		if err := store.DeleteFile(ctx, p.PublicID); err != nil {
			if errors.Is(err, storage.ErrStorageDisabled) {
				return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
			}
			logger.Warn("AssetWorker: delete failed", zap.String("publicID", p.PublicID), zap.Error(err))
			return err
		}
		logger.Info("AssetWorker: asset removed", zap.String("publicID", p.PublicID))
		return nil
	}
}
