package workers

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"counselhub/config"
	counselorRepo "counselhub/database/repository/counselor"
	"counselhub/models"
	"counselhub/services/notification"
	"counselhub/services/schedule"
)

const (
	TypeScheduleExtend = "schedule:extend"
	TypeReminderSend   = "reminder:send"
)

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitWorker runs the asynq worker and scheduler in the background. The
// scheduler enqueues a nightly schedule:extend task that keeps every
// counselor's rolling availability window materialized.
func InitWorker(scheduleSvc schedule.ScheduleService, repo counselorRepo.CounselorRepository, notifSvc notification.NotificationService) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeScheduleExtend, handleScheduleExtend(scheduleSvc, repo))
	mux.HandleFunc(TypeReminderSend, handleReminderTask(notifSvc))

	go func() {
		log.Println("[Worker] Starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Fatalf("[Worker] failed to start worker: %v", err)
		}
	}()

	scheduler := asynq.NewScheduler(redisOpts(), &asynq.SchedulerOpts{Location: time.Local})
	if _, err := scheduler.Register("0 3 * * *", asynq.NewTask(TypeScheduleExtend, nil)); err != nil {
		log.Fatalf("[Worker] failed to register schedule:extend: %v", err)
	}

	go func() {
		log.Println("[Worker] Starting scheduler...")
		if err := scheduler.Run(); err != nil {
			log.Fatalf("[Worker] failed to start scheduler: %v", err)
		}
	}()
}

// handleScheduleExtend materializes the default window for every counselor
// with a weekly pattern. Already-materialized dates are skipped, so the task
// only ever appends the newly reachable tail of the window.
func handleScheduleExtend(scheduleSvc schedule.ScheduleService, repo counselorRepo.CounselorRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		counselors, err := repo.ListWithAvailability(ctx)
		if err != nil {
			log.Printf("[ScheduleExtend] failed to list counselors: %v", err)
			return err
		}

		for _, c := range counselors {
			// Zero weeks resolves to the configured window.
			report, err := scheduleSvc.MaterializeWindow(ctx, c.ID, 0)
			if err != nil {
				log.Printf("[ScheduleExtend] counselor %s: %v", c.ID, err)
				continue
			}
			if len(report.Created) > 0 || len(report.Failed) > 0 {
				log.Printf("[ScheduleExtend] counselor %s: created=%d skipped=%d failed=%d",
					c.ID, len(report.Created), len(report.Skipped), len(report.Failed))
			}
		}
		return nil
	}
}

func handleReminderTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		data := map[string]string{
			"date": p.Date,
			"time": p.Time,
		}
		if err := notifSvc.SendCounselorPush(ctx, p.CounselorID, p.Title, p.Body, data); err != nil {
			log.Printf("[ReminderHandler] failed to send notification: %v", err)
			return err
		}
		return nil
	}
}
