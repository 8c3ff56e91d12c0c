package handlers

// HandlerBundle aggregates all HTTP handlers so route registration takes a
// single dependency.
type HandlerBundle struct {
	Counselor *CounselorHandler
	Schedule  *ScheduleHandler
	Booking   *BookingHandler
	Community *CommunityHandler
	Operator  *OperatorHandler
	Dashboard *DashboardHandler
	Storage   *StorageHandler
}
