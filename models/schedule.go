package models

// Slot is a single bookable (date, time) unit inside an AvailabilityDay.
type Slot struct {
	Time     string `bson:"time" json:"time"` // "HH:MM"
	IsBooked bool   `bson:"isBooked" json:"isBooked"`
	MeetLink string `bson:"meetLink,omitempty" json:"meetLink,omitempty"`
}

// AvailabilityDay is the per-date materialization of a counselor's weekly
// pattern. One document per (counselor, date); keyed by the ISO date string.
// Invariant: AvailableSlots == count(Slots where !IsBooked).
type AvailabilityDay struct {
	CounselorID    string `bson:"counselorId" json:"counselorId"`
	Date           string `bson:"date" json:"date"` // "YYYY-MM-DD"
	FormattedDate  string `bson:"formattedDate" json:"formattedDate"`
	DayOfWeek      string `bson:"dayOfWeek" json:"dayOfWeek"`
	IsAvailable    bool   `bson:"isAvailable" json:"isAvailable"`
	Slots          []Slot `bson:"slots" json:"slots"`
	AvailableSlots int    `bson:"availableSlots" json:"availableSlots"`
	TotalSlots     int    `bson:"totalSlots" json:"totalSlots"`
}

// OpenSlotCount recounts open slots directly from the slot list.
func (d *AvailabilityDay) OpenSlotCount() int {
	n := 0
	for _, s := range d.Slots {
		if !s.IsBooked {
			n++
		}
	}
	return n
}

// MaterializeReport summarizes one materialization run. Per-date failures are
// collected here instead of aborting the run.
type MaterializeReport struct {
	CounselorID string   `json:"counselorId"`
	Created     []string `json:"created"` // dates materialized by this run
	Skipped     []string `json:"skipped"` // dates that already had a document
	Failed      []string `json:"failed"`  // dates whose insert errored
	Errors      []string `json:"errors,omitempty"`
}

// UpdateAvailabilityRequest sets the slots for one weekday of the template.
type UpdateAvailabilityRequest struct {
	Day   string   `json:"day" binding:"required"`
	Slots []string `json:"slots" binding:"required"`
}

// BookSlotRequest reserves a (date, time) slot for a user.
type BookSlotRequest struct {
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
	UserID   string `json:"userId" binding:"required"`
	UserName string `json:"userName" binding:"required"`
}

// CancelBookingRequest releases a previously booked slot.
type CancelBookingRequest struct {
	Date   string `json:"date" binding:"required"`
	Time   string `json:"time" binding:"required"`
	UserID string `json:"userId" binding:"required"`
}
