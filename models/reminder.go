package models

// ReminderPayload is the asynq task payload for session reminders.
type ReminderPayload struct {
	CounselorID string `json:"counselorId"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	UserName    string `json:"userName"`
	Title       string `json:"title"`
	Body        string `json:"body"`
}
