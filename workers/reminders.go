package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"counselhub/models"
)

// AsynqReminderScheduler enqueues reminder:send tasks for future delivery.
// It implements schedule.ReminderScheduler.
type AsynqReminderScheduler struct {
	client *asynq.Client
}

// NewReminderScheduler creates a scheduler backed by the shared queue Redis.
func NewReminderScheduler() *AsynqReminderScheduler {
	return &AsynqReminderScheduler{client: asynq.NewClient(redisOpts())}
}

func (s *AsynqReminderScheduler) ScheduleReminder(ctx context.Context, payload models.ReminderPayload, at time.Time) error {
	if !at.After(time.Now()) {
		// Session starts within the reminder lead time; nothing to schedule.
		return nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}
	task := asynq.NewTask(TypeReminderSend, raw)
	if _, err := s.client.EnqueueContext(ctx, task, asynq.ProcessAt(at)); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}

// Close releases the underlying queue connection.
func (s *AsynqReminderScheduler) Close() error {
	return s.client.Close()
}
