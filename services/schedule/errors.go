package schedule

import "fmt"

// Error codes returned by the schedule service.
const (
	CodeInvalidInput      = "invalidInput"
	CodeCounselorNotFound = "counselorNotFound"
	CodeDayNotFound       = "dayNotFound"
	CodeSlotUnavailable   = "slotUnavailable"
	CodeBookingNotFound   = "bookingNotFound"
)

// ScheduleError carries a stable code alongside the human-readable message so
// handlers can map failures onto HTTP statuses.
type ScheduleError struct {
	Code    string
	Message string
}

func (e *ScheduleError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewScheduleError(code, msg string) error {
	return &ScheduleError{Code: code, Message: msg}
}

func invalidInput(format string, args ...interface{}) error {
	return &ScheduleError{Code: CodeInvalidInput, Message: fmt.Sprintf(format, args...)}
}
