// Package job runs background work on asynq, a Redis-backed task queue.
//
// The API process enqueues tasks with the asynq client; the embedded asynq
// server pulls them from Redis and runs the registered handlers.
package job

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/deppfellow/recipebox/internal/config"
	"github.com/deppfellow/recipebox/internal/lib/email"
)

type enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
	Close() error
}

type welcomeMailer interface {
	SendWelcomeEmail(ctx context.Context, to, username string) error
}

// JobService owns the asynq client and worker server.
type JobService struct {
	client enqueuer
	server *asynq.Server
	mailer welcomeMailer
	logger *zerolog.Logger

	// emailEnabled is false when no Resend API key is configured; email
	// tasks are then skipped at enqueue time.
	emailEnabled bool
}

// NewJobService configures the asynq client and worker server. Nothing
// connects until Start.
func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
	}

	server := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 10,
		Queues: map[string]int{
			"critical": 6,
			"default":  3,
			"low":      1,
		},
		Logger:   newAsynqLogger(logger),
		LogLevel: asynq.WarnLevel,
	})

	return &JobService{
		client:       asynq.NewClient(redisOpt),
		server:       server,
		mailer:       email.NewClient(cfg, logger),
		logger:       logger,
		emailEnabled: cfg.Integration.ResendAPIKey != "",
	}
}

func (j *JobService) mux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskWelcome, j.handleWelcomeEmailTask)
	return mux
}

// Start launches the worker pool in the background.
func (j *JobService) Start() error {
	if j.emailEnabled {
		if err := email.Validate(); err != nil {
			return fmt.Errorf("invalid email templates: %w", err)
		}
	}

	j.logger.Info().Msg("starting background job server")
	return j.server.Start(j.mux())
}

// Stop waits for in-flight tasks, then closes the client connection.
func (j *JobService) Stop() {
	j.logger.Info().Msg("stopping background job server")
	j.server.Shutdown()
	if err := j.client.Close(); err != nil {
		j.logger.Error().Err(err).Msg("failed to close job client")
	}
}
