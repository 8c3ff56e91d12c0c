package notification

import "context"

// NotificationService delivers push notifications to counselor devices.
type NotificationService interface {
	SendCounselorPush(ctx context.Context, counselorID, title, body string, data map[string]string) error
}
