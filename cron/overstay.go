package cron

import (
	"context"
	"log"
	"time"

	"parkwise/config"
	"parkwise/services/parking"
	"parkwise/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeOverstayScan = "overstay:scan"

// InitOverstayWorker starts the background worker and scheduler that
// periodically flag active bookings past their expected checkout. Overstay is
// informational: the scan never frees a slot or closes a booking.
func InitOverstayWorker(bookingSvc parking.BookingService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeOverstayScan, handleOverstayScan(bookingSvc))

	go func() {
		log.Println("[OverstayWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Fatalf("[OverstayWorker] failed to start worker: %v", err)
		}
	}()

	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{})
	spec := config.AppConfig.OverstayScanSpec
	if spec == "" {
		spec = "@every 5m"
	}
	if _, err := scheduler.Register(spec, asynq.NewTask(TypeOverstayScan, nil)); err != nil {
		log.Fatalf("[OverstayWorker] failed to register scan schedule: %v", err)
	}

	go func() {
		if err := scheduler.Run(); err != nil {
			log.Fatalf("[OverstayWorker] failed to start scheduler: %v", err)
		}
	}()
}

func handleOverstayScan(bookingSvc parking.BookingService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		started := time.Now()
		marked, err := bookingSvc.MarkOverstays()
		if err != nil {
			utils.GetLogger().Error("overstay scan failed", zap.Error(err))
			return err
		}
		if marked > 0 {
			utils.GetLogger().Info("overstay scan complete",
				zap.Int64("marked", marked),
				zap.Duration("took", time.Since(started)))
		}
		return nil
	}
}
