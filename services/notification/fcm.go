package notification

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/messaging"

	counselorRepo "counselhub/database/repository/counselor"
	"counselhub/utils"
)

// DefaultNotificationService sends pushes through Firebase Cloud Messaging.
type DefaultNotificationService struct {
	CounselorRepo counselorRepo.CounselorRepository
}

func (s *DefaultNotificationService) SendCounselorPush(ctx context.Context, counselorID, title, body string, data map[string]string) error {
	counselor, err := s.CounselorRepo.GetByID(ctx, counselorID)
	if err != nil {
		return fmt.Errorf("notification: counselor lookup failed: %w", err)
	}
	if counselor.FCMToken == "" {
		return fmt.Errorf("notification: counselor %s has no registered device", counselorID)
	}

	msg := &messaging.Message{
		Token: counselor.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("notification: FCM send failed: %w", err)
	}
	return nil
}
