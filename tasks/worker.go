package tasks

import (
	"barangay-mancruz-backend/config"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// StartWorker runs the asynq server in-process. The queue only carries
// best-effort side effects (confirmation emails), so one worker process next
// to the HTTP server is enough for a single barangay.
func StartWorker(redisOpt asynq.RedisClientOpt) *asynq.Server {
	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 5,
	})

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReportConfirmation, HandleReportConfirmationTask)

	go func() {
		if err := srv.Run(mux); err != nil {
			config.Logger.Error("Asynq worker stopped", zap.Error(err))
		}
	}()

	return srv
}
