package cron

import (
	"context"
	"fmt"
	"log"
	"time"

	"workmate/config"
	"workmate/services/feed"

	"github.com/hibiken/asynq"
)

const TypeFeedRefresh = "feed:refresh"

// InitFeedWorker runs the background feed refresher: an asynq worker that
// re-fetches the open-jobs listing, plus a scheduler enqueuing the refresh
// task on an interval. Both run in background goroutines and never take
// the gateway down.
func InitFeedWorker(feedSvc *feed.Service) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeFeedRefresh, handleFeedRefresh(feedSvc))

	go func() {
		log.Println("[FeedWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[FeedWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Printf("[FeedWorker] max retry attempts reached; feed refresh disabled")
					return
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()

	go runScheduler(redisOpts)
}

// handleFeedRefresh warms the jobs cache from the backend.
func handleFeedRefresh(feedSvc *feed.Service) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		if err := feedSvc.Refresh(ctx); err != nil {
			return fmt.Errorf("feed refresh: %w", err)
		}
		return nil
	}
}

// runScheduler enqueues the refresh task periodically.
func runScheduler(redisOpts asynq.RedisClientOpt) {
	mins := config.AppConfig.FeedRefreshMins
	if mins <= 0 {
		mins = 10
	}

	scheduler := asynq.NewScheduler(redisOpts, nil)
	spec := fmt.Sprintf("@every %dm", mins)
	if _, err := scheduler.Register(spec, asynq.NewTask(TypeFeedRefresh, nil)); err != nil {
		log.Printf("[FeedWorker] failed to register refresh schedule: %v", err)
		return
	}
	if err := scheduler.Run(); err != nil {
		log.Printf("[FeedWorker] scheduler stopped: %v", err)
	}
}
