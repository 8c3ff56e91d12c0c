package handlers

import (
	"errors"
	"net/http"

	"counselhub/services/schedule"
)

// statusForScheduleError maps schedule service error codes to HTTP statuses.
func statusForScheduleError(err error) int {
	var schedErr *schedule.ScheduleError
	if !errors.As(err, &schedErr) {
		return http.StatusInternalServerError
	}
	switch schedErr.Code {
	case schedule.CodeInvalidInput:
		return http.StatusBadRequest
	case schedule.CodeCounselorNotFound, schedule.CodeDayNotFound, schedule.CodeBookingNotFound:
		return http.StatusNotFound
	case schedule.CodeSlotUnavailable:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
