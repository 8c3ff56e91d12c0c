package models

import "time"

// DayPattern is one entry in a counselor's weekly availability template:
// a weekday name and the time-of-day slots offered on that weekday.
type DayPattern struct {
	Day   string   `bson:"day" json:"day"`     // "Monday" .. "Sunday"
	Slots []string `bson:"slots" json:"slots"` // "HH:MM", 24-hour
}

// BookedSlot is one entry in a counselor's booking ledger.
type BookedSlot struct {
	Date     string `bson:"date" json:"date"` // "YYYY-MM-DD"
	Time     string `bson:"time" json:"time"` // "HH:MM"
	UserID   string `bson:"userId" json:"userId"`
	UserName string `bson:"userName" json:"userName"`
	Status   string `bson:"status" json:"status"` // "confirmed"
	MeetLink string `bson:"meetLink,omitempty" json:"meetLink,omitempty"`
}

// Counselor represents a counselor profile document.
type Counselor struct {
	ID           string       `bson:"id" json:"id"`
	Name         string       `bson:"name" json:"name"`
	Email        string       `bson:"email" json:"email"`
	Phone        string       `bson:"phone,omitempty" json:"phone,omitempty"`
	Specialty    string       `bson:"specialty,omitempty" json:"specialty,omitempty"`
	Bio          string       `bson:"bio,omitempty" json:"bio,omitempty"`
	PhotoURL     string       `bson:"photoUrl,omitempty" json:"photoUrl,omitempty"`
	Availability []DayPattern `bson:"availability,omitempty" json:"availability,omitempty"`
	BookedSlots  []BookedSlot `bson:"bookedSlots,omitempty" json:"bookedSlots,omitempty"`
	SessionCount int          `bson:"sessionCount" json:"sessionCount"`
	Rating       float64      `bson:"rating" json:"rating"`
	FCMToken     string       `bson:"fcmToken,omitempty" json:"-"`
	CreatedAt    time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time    `bson:"updatedAt" json:"updatedAt"`
}

// CounselorSearchCriteria narrows counselor listings.
type CounselorSearchCriteria struct {
	Query     string  `json:"query"`     // matches name or specialty, case-insensitive
	MinRating float64 `json:"minRating"` // 0 disables the filter
	Limit     int64   `json:"limit"`
}
