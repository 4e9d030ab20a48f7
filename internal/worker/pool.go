// Package worker implements the async job queue: jobs are LPUSHed onto Redis
// lists and a pool of goroutines consumes them via BRPOP. Only side channels
// (welcome emails) run here; rating recomputation is synchronous and never
// goes through this queue.
package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const QueueEmail = "jobs:email"

// Job is the generic envelope for all async tasks.
type Job struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Dispatcher enqueues async jobs into Redis lists.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// EnqueueEmail pushes an email job to Redis. Best effort from the caller's
// point of view: registration never fails because the queue is down.
func (d *Dispatcher) EnqueueEmail(ctx context.Context, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	job := Job{Type: "email", Payload: data}
	encoded, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, QueueEmail, encoded).Err()
}

// Handlers holds the per-job-type processors wired at the composition root.
type Handlers struct {
	Email *EmailWorker
}

// StartPool launches numWorkers goroutines consuming the queue.
// Each goroutine blocks on BRPOP — zero CPU when idle.
func StartPool(ctx context.Context, rdb *redis.Client, handlers *Handlers, numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		go run(ctx, rdb, handlers, i)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func run(ctx context.Context, rdb *redis.Client, handlers *Handlers, id int) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		default:
			// Blocking pop — waits up to 5s then loops to check ctx
			result, err := rdb.BRPop(ctx, 5*time.Second, QueueEmail).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			if len(result) < 2 {
				continue
			}

			var job Job
			if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
				log.Error().Err(err).Msg("worker: invalid job envelope")
				continue
			}

			switch job.Type {
			case "email":
				handlers.Email.Process(ctx, job.Payload)
			default:
				log.Warn().Str("type", job.Type).Msg("worker: unknown job type")
			}
		}
	}
}
