package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/infra"
	"github.com/AxelOreamuno/Demo-inventario-de-repuestos/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	QueueRegistroProveedor = "jobs:registro_proveedor"
	QueueAlertaStock       = "jobs:alerta_stock"
)

// Job is the generic envelope for all async tasks.
type Job struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Dispatcher enqueues async jobs into Redis lists.
// The worker pool dequeues them via BRPOP.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// EnqueueRegistroProveedor pushes a supplier audit snapshot to Redis.
func (d *Dispatcher) EnqueueRegistroProveedor(ctx context.Context, payload interface{}) error {
	return d.enqueue(ctx, QueueRegistroProveedor, "registro_proveedor", payload)
}

// EnqueueAlertaStock pushes an out-of-stock alert job to Redis.
func (d *Dispatcher) EnqueueAlertaStock(ctx context.Context, payload interface{}) error {
	return d.enqueue(ctx, QueueAlertaStock, "alerta_stock", payload)
}

func (d *Dispatcher) enqueue(ctx context.Context, queue, jobType string, payload interface{}) error {
	if d == nil || d.rdb == nil {
		return redis.ErrClosed
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	job := Job{Type: jobType, Payload: data}
	encoded, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, queue, encoded).Err()
}

// Deps holds everything the workers need to process jobs.
type Deps struct {
	RegistroRepo repository.RegistroRepository
	Mailer       *infra.Mailer
}

// StartWorkerPool launches numWorkers goroutines consuming both queues.
// Each goroutine blocks on BRPOP — zero CPU when idle.
func StartWorkerPool(ctx context.Context, rdb *redis.Client, numWorkers int, deps Deps) {
	for i := 0; i < numWorkers; i++ {
		go runWorker(ctx, rdb, i, deps)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func runWorker(ctx context.Context, rdb *redis.Client, id int, deps Deps) {
	queues := []string{QueueRegistroProveedor, QueueAlertaStock}
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		default:
			// Blocking pop — waits up to 5s then loops to check ctx
			result, err := rdb.BRPop(ctx, 5*time.Second, queues...).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			if len(result) < 2 {
				continue
			}
			processJob(ctx, deps, result[0], result[1])
		}
	}
}

func processJob(ctx context.Context, deps Deps, queue, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Str("queue", queue).Err(err).Msg("failed to unmarshal job")
		return
	}
	switch job.Type {
	case "registro_proveedor":
		processRegistroProveedor(ctx, deps, job.Payload)
	case "alerta_stock":
		processAlertaStock(ctx, deps, job.Payload)
	default:
		log.Warn().Str("type", job.Type).Str("queue", queue).Msg("unknown job type, discarding")
	}
}
