package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"servigo/config"

	"github.com/hibiken/asynq"
)

const TypeRatingRecompute = "rating:recompute"

// RatingService recomputes a provider's aggregate rating from its reviews.
type RatingService interface {
	RecomputeRating(providerID string) error
}

type ratingRecomputePayload struct {
	ProviderID string `json:"provider_id"`
}

// NewRatingRecomputeTask builds the asynq task enqueued after a review is created.
func NewRatingRecomputeTask(providerID string) (*asynq.Task, error) {
	payload, err := json.Marshal(ratingRecomputePayload{ProviderID: providerID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeRatingRecompute, payload), nil
}

// NewTaskClient creates the asynq client used to enqueue background tasks.
func NewTaskClient() *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	})
}

// InitRatingWorker runs the async worker in background.
func InitRatingWorker(ratingSvc RatingService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeRatingRecompute, handleRatingRecomputeTask(ratingSvc))

	// Start async worker with retry logic
	go func() {
		log.Println("[RatingWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[RatingWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[RatingWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleRatingRecomputeTask(ratingSvc RatingService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p ratingRecomputePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[RatingWorker] Invalid payload: %v", err)
			return err
		}

		if err := ratingSvc.RecomputeRating(p.ProviderID); err != nil {
			log.Printf("[RatingWorker] Failed to recompute rating for %s: %v", p.ProviderID, err)
			return err
		}
		return nil
	}
}
