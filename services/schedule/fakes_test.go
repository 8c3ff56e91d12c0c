package schedule

import (
	"context"
	"fmt"
	"sync"
	"time"

	scheduleRepo "counselhub/database/repository/schedule"
	"counselhub/models"
)

// fakeStore backs both fake repositories so booking writes touch the day
// document and the counselor ledger together, like the Mongo transaction.
type fakeStore struct {
	mu         sync.Mutex
	days       map[string]*models.AvailabilityDay // key: counselorID|date
	counselors map[string]*models.Counselor
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		days:       make(map[string]*models.AvailabilityDay),
		counselors: make(map[string]*models.Counselor),
	}
}

func dayKey(counselorID, date string) string {
	return counselorID + "|" + date
}

func (f *fakeStore) addCounselor(c *models.Counselor) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counselors[c.ID] = c
}

type fakeScheduleRepo struct {
	store *fakeStore

	// failDates makes InsertDayIfAbsent error for specific dates, to test
	// continue-past-failure behavior.
	failDates map[string]bool
}

func (r *fakeScheduleRepo) GetDay(ctx context.Context, counselorID, date string) (*models.AvailabilityDay, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	day, ok := r.store.days[dayKey(counselorID, date)]
	if !ok {
		return nil, scheduleRepo.ErrDayNotFound
	}
	cp := *day
	cp.Slots = append([]models.Slot(nil), day.Slots...)
	return &cp, nil
}

func (r *fakeScheduleRepo) ListDays(ctx context.Context, counselorID, from, to string) ([]models.AvailabilityDay, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []models.AvailabilityDay
	for _, day := range r.store.days {
		if day.CounselorID == counselorID && day.Date >= from && day.Date <= to {
			out = append(out, *day)
		}
	}
	return out, nil
}

func (r *fakeScheduleRepo) InsertDayIfAbsent(ctx context.Context, day models.AvailabilityDay) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.failDates[day.Date] {
		return false, fmt.Errorf("simulated write failure for %s", day.Date)
	}
	key := dayKey(day.CounselorID, day.Date)
	if _, exists := r.store.days[key]; exists {
		return false, nil
	}
	cp := day
	r.store.days[key] = &cp
	return true, nil
}

func (r *fakeScheduleRepo) ReplaceDaySlots(ctx context.Context, counselorID, date string, slots []models.Slot) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	day, ok := r.store.days[dayKey(counselorID, date)]
	if !ok {
		return scheduleRepo.ErrDayNotFound
	}
	day.Slots = append([]models.Slot(nil), slots...)
	open := 0
	for _, s := range slots {
		if !s.IsBooked {
			open++
		}
	}
	day.AvailableSlots = open
	day.TotalSlots = len(slots)
	day.IsAvailable = open > 0
	return nil
}

func (r *fakeScheduleRepo) BookSlot(ctx context.Context, counselorID string, entry models.BookedSlot) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	day, ok := r.store.days[dayKey(counselorID, entry.Date)]
	if !ok {
		return scheduleRepo.ErrDayNotFound
	}
	idx := -1
	for i, s := range day.Slots {
		if s.Time == entry.Time && !s.IsBooked {
			idx = i
			break
		}
	}
	if idx < 0 {
		return scheduleRepo.ErrSlotUnavailable
	}
	counselor, ok := r.store.counselors[counselorID]
	if !ok {
		return scheduleRepo.ErrCounselorNotFound
	}

	// Both writes apply only after every precondition holds.
	day.Slots[idx].IsBooked = true
	day.Slots[idx].MeetLink = entry.MeetLink
	day.AvailableSlots--
	counselor.BookedSlots = append(counselor.BookedSlots, entry)
	counselor.SessionCount++
	return nil
}

func (r *fakeScheduleRepo) CancelBooking(ctx context.Context, counselorID, date, timeOfDay, userID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	counselor, ok := r.store.counselors[counselorID]
	if !ok {
		return scheduleRepo.ErrBookingNotFound
	}
	idx := -1
	for i, b := range counselor.BookedSlots {
		if b.Date == date && b.Time == timeOfDay && b.UserID == userID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return scheduleRepo.ErrBookingNotFound
	}
	counselor.BookedSlots = append(counselor.BookedSlots[:idx], counselor.BookedSlots[idx+1:]...)

	if day, ok := r.store.days[dayKey(counselorID, date)]; ok {
		for i, s := range day.Slots {
			if s.Time == timeOfDay && s.IsBooked {
				day.Slots[i].IsBooked = false
				day.Slots[i].MeetLink = ""
				day.AvailableSlots++
				break
			}
		}
	}
	return nil
}

func (r *fakeScheduleRepo) CountBookingsOn(ctx context.Context, date string) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var n int64
	for _, c := range r.store.counselors {
		for _, b := range c.BookedSlots {
			if b.Date == date {
				n++
			}
		}
	}
	return n, nil
}

func (r *fakeScheduleRepo) SumOpenSlots(ctx context.Context, from, to string) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var n int64
	for _, day := range r.store.days {
		if day.Date >= from && day.Date <= to {
			n += int64(day.AvailableSlots)
		}
	}
	return n, nil
}

type fakeCounselorRepo struct {
	store *fakeStore
}

func (r *fakeCounselorRepo) Create(ctx context.Context, c *models.Counselor) error {
	r.store.addCounselor(c)
	return nil
}

func (r *fakeCounselorRepo) GetByID(ctx context.Context, id string) (*models.Counselor, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	c, ok := r.store.counselors[id]
	if !ok {
		return nil, fmt.Errorf("counselor %s not found", id)
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCounselorRepo) GetByEmail(ctx context.Context, email string) (*models.Counselor, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, c := range r.store.counselors {
		if c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("counselor with email %s not found", email)
}

func (r *fakeCounselorRepo) Update(ctx context.Context, c *models.Counselor) error {
	r.store.addCounselor(c)
	return nil
}

func (r *fakeCounselorRepo) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.counselors, id)
	return nil
}

func (r *fakeCounselorRepo) List(ctx context.Context, limit, offset int64) ([]models.Counselor, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []models.Counselor
	for _, c := range r.store.counselors {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCounselorRepo) ListWithAvailability(ctx context.Context) ([]models.Counselor, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []models.Counselor
	for _, c := range r.store.counselors {
		if len(c.Availability) > 0 {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeCounselorRepo) SetAvailability(ctx context.Context, id string, availability []models.DayPattern) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	c, ok := r.store.counselors[id]
	if !ok {
		return fmt.Errorf("counselor %s not found", id)
	}
	c.Availability = append([]models.DayPattern(nil), availability...)
	return nil
}

func (r *fakeCounselorRepo) Search(ctx context.Context, criteria models.CounselorSearchCriteria) ([]models.Counselor, error) {
	return r.List(ctx, criteria.Limit, 0)
}

func (r *fakeCounselorRepo) Count(ctx context.Context) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.store.counselors)), nil
}

func (r *fakeCounselorRepo) SumSessionCounts(ctx context.Context) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var n int64
	for _, c := range r.store.counselors {
		n += int64(c.SessionCount)
	}
	return n, nil
}

// fakeProfileCache records which counselor profiles were evicted.
type fakeProfileCache struct {
	mu          sync.Mutex
	invalidated []string
}

func (f *fakeProfileCache) InvalidateProfile(ctx context.Context, counselorID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.invalidated = append(f.invalidated, counselorID)
}

func (f *fakeProfileCache) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.invalidated)
}

// newTestService wires a service over the in-memory store with a fixed clock.
// March 2, 2026 is a Monday.
func newTestService(store *fakeStore) (*DefaultScheduleService, *fakeScheduleRepo) {
	repo := &fakeScheduleRepo{store: store, failDates: make(map[string]bool)}
	svc := &DefaultScheduleService{
		Repo:          repo,
		CounselorRepo: &fakeCounselorRepo{store: store},
		Now: func() time.Time {
			return time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)
		},
	}
	return svc, repo
}
