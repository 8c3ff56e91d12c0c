package models

// DashboardStats is the aggregate view served to the console dashboard.
type DashboardStats struct {
	Counselors    int64 `json:"counselors"`
	TotalSessions int64 `json:"totalSessions"`
	BookingsToday int64 `json:"bookingsToday"`
	OpenSlotsWeek int64 `json:"openSlotsWeek"`
}
