package schedule

import (
	"context"
	"testing"

	"counselhub/config"
	"counselhub/models"
)

func assertScheduleCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with code %s, got nil", code)
	}
	schedErr, ok := err.(*ScheduleError)
	if !ok {
		t.Fatalf("expected *ScheduleError, got %T: %v", err, err)
	}
	if schedErr.Code != code {
		t.Fatalf("expected code %s, got %s (%s)", code, schedErr.Code, schedErr.Message)
	}
}

func seedCounselor(store *fakeStore, id string, availability []models.DayPattern) {
	store.addCounselor(&models.Counselor{
		ID:           id,
		Name:         "Test Counselor",
		Email:        id + "@counselhub.app",
		Availability: availability,
	})
}

func TestMaterializeWindowCreatesPatternDates(t *testing.T) {
	store := newFakeStore()
	seedCounselor(store, "c1", []models.DayPattern{
		{Day: "Monday", Slots: []string{"10:00", "14:00"}},
	})
	svc, _ := newTestService(store)

	report, err := svc.MaterializeWindow(context.Background(), "c1", 4)
	if err != nil {
		t.Fatalf("MaterializeWindow failed: %v", err)
	}

	// Five Mondays fall inside the 28-day window starting Monday March 2.
	wantDates := []string{"2026-03-02", "2026-03-09", "2026-03-16", "2026-03-23", "2026-03-30"}
	if len(report.Created) != len(wantDates) {
		t.Fatalf("expected %d created dates, got %d: %v", len(wantDates), len(report.Created), report.Created)
	}
	for i, want := range wantDates {
		if report.Created[i] != want {
			t.Errorf("created[%d] = %s, want %s", i, report.Created[i], want)
		}
	}
	if len(report.Skipped) != 0 || len(report.Failed) != 0 {
		t.Fatalf("expected clean run, got skipped=%v failed=%v", report.Skipped, report.Failed)
	}

	day, err := svc.GetDay(context.Background(), "c1", "2026-03-02")
	if err != nil {
		t.Fatalf("GetDay failed: %v", err)
	}
	if day.DayOfWeek != "Monday" {
		t.Errorf("DayOfWeek = %s, want Monday", day.DayOfWeek)
	}
	if day.FormattedDate != "March 2, 2026" {
		t.Errorf("FormattedDate = %s, want March 2, 2026", day.FormattedDate)
	}
	if day.TotalSlots != 2 || day.AvailableSlots != 2 || !day.IsAvailable {
		t.Errorf("expected 2 open slots, got total=%d available=%d isAvailable=%v",
			day.TotalSlots, day.AvailableSlots, day.IsAvailable)
	}
	for _, s := range day.Slots {
		if s.IsBooked {
			t.Errorf("slot %s should start open", s.Time)
		}
	}
}

func TestMaterializeWindowSkipsDaysWithoutPattern(t *testing.T) {
	store := newFakeStore()
	seedCounselor(store, "c1", []models.DayPattern{
		{Day: "Monday", Slots: []string{"10:00"}},
	})
	svc, _ := newTestService(store)

	if _, err := svc.MaterializeWindow(context.Background(), "c1", 4); err != nil {
		t.Fatalf("MaterializeWindow failed: %v", err)
	}

	// Tuesday has no pattern entry, so no document should exist.
	_, err := svc.GetDay(context.Background(), "c1", "2026-03-03")
	assertScheduleCode(t, err, CodeDayNotFound)
}

func TestMaterializeWindowIdempotent(t *testing.T) {
	store := newFakeStore()
	seedCounselor(store, "c1", []models.DayPattern{
		{Day: "Monday", Slots: []string{"10:00", "14:00"}},
	})
	svc, _ := newTestService(store)
	ctx := context.Background()

	if _, err := svc.MaterializeWindow(ctx, "c1", 4); err != nil {
		t.Fatalf("first run failed: %v", err)
	}

	// Book a slot so the second run has live state to clobber.
	if _, err := svc.BookSlot(ctx, "c1", models.BookSlotRequest{
		Date: "2026-03-02", Time: "10:00", UserID: "u1", UserName: "Amina",
	}); err != nil {
		t.Fatalf("BookSlot failed: %v", err)
	}

	report, err := svc.MaterializeWindow(ctx, "c1", 4)
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	if len(report.Created) != 0 {
		t.Fatalf("second run created dates: %v", report.Created)
	}
	if len(report.Skipped) != 5 {
		t.Fatalf("expected 5 skipped dates, got %v", report.Skipped)
	}

	day, err := svc.GetDay(ctx, "c1", "2026-03-02")
	if err != nil {
		t.Fatalf("GetDay failed: %v", err)
	}
	if day.AvailableSlots != 1 {
		t.Errorf("booked state was clobbered, availableSlots = %d", day.AvailableSlots)
	}
	for _, s := range day.Slots {
		if s.Time == "10:00" && !s.IsBooked {
			t.Error("booked slot was reopened by re-materialization")
		}
	}
}

func TestMaterializeWindowContinuesPastFailures(t *testing.T) {
	store := newFakeStore()
	seedCounselor(store, "c1", []models.DayPattern{
		{Day: "Monday", Slots: []string{"10:00"}},
	})
	svc, repo := newTestService(store)
	repo.failDates["2026-03-09"] = true

	report, err := svc.MaterializeWindow(context.Background(), "c1", 4)
	if err != nil {
		t.Fatalf("MaterializeWindow failed: %v", err)
	}
	if len(report.Failed) != 1 || report.Failed[0] != "2026-03-09" {
		t.Fatalf("expected 2026-03-09 to fail, got %v", report.Failed)
	}
	if len(report.Created) != 4 {
		t.Fatalf("expected the remaining 4 dates to be created, got %v", report.Created)
	}
	if len(report.Errors) != 1 {
		t.Fatalf("expected one error entry, got %v", report.Errors)
	}
}

func TestMaterializeWindowUsesConfiguredDefault(t *testing.T) {
	prev := config.AppConfig.MaterializeWeeks
	config.AppConfig.MaterializeWeeks = 2
	defer func() { config.AppConfig.MaterializeWeeks = prev }()

	store := newFakeStore()
	seedCounselor(store, "c1", []models.DayPattern{
		{Day: "Monday", Slots: []string{"10:00"}},
	})
	svc, _ := newTestService(store)

	// Zero weeks means "use the configured window": 14 days from Monday
	// March 2 contain three Mondays.
	report, err := svc.MaterializeWindow(context.Background(), "c1", 0)
	if err != nil {
		t.Fatalf("MaterializeWindow failed: %v", err)
	}
	wantDates := []string{"2026-03-02", "2026-03-09", "2026-03-16"}
	if len(report.Created) != len(wantDates) {
		t.Fatalf("expected %d created dates, got %v", len(wantDates), report.Created)
	}
	for i, want := range wantDates {
		if report.Created[i] != want {
			t.Errorf("created[%d] = %s, want %s", i, report.Created[i], want)
		}
	}
}

func TestMaterializeWindowUnknownCounselor(t *testing.T) {
	svc, _ := newTestService(newFakeStore())
	_, err := svc.MaterializeWindow(context.Background(), "missing", 4)
	assertScheduleCode(t, err, CodeCounselorNotFound)
}

func TestPatternEditsAreNotRetroactive(t *testing.T) {
	store := newFakeStore()
	seedCounselor(store, "c1", []models.DayPattern{
		{Day: "Monday", Slots: []string{"10:00", "14:00"}},
	})
	svc, _ := newTestService(store)
	ctx := context.Background()

	if _, err := svc.MaterializeWindow(ctx, "c1", 4); err != nil {
		t.Fatalf("MaterializeWindow failed: %v", err)
	}

	// Updating the template re-materializes the window, but the already
	// materialized Mondays must keep their original slots.
	report, err := svc.UpdateAvailability(ctx, "c1", "Monday", []string{"09:00"})
	if err != nil {
		t.Fatalf("UpdateAvailability failed: %v", err)
	}
	if len(report.Created) != 0 {
		t.Fatalf("expected no new dates, got %v", report.Created)
	}

	day, err := svc.GetDay(ctx, "c1", "2026-03-02")
	if err != nil {
		t.Fatalf("GetDay failed: %v", err)
	}
	if day.TotalSlots != 2 {
		t.Errorf("existing day was rewritten, totalSlots = %d", day.TotalSlots)
	}
	if day.Slots[0].Time != "10:00" {
		t.Errorf("existing day slots changed: %+v", day.Slots)
	}
}

func TestRefreshDayAppliesPatternAndPreservesBookings(t *testing.T) {
	store := newFakeStore()
	seedCounselor(store, "c1", []models.DayPattern{
		{Day: "Monday", Slots: []string{"10:00", "14:00"}},
	})
	svc, _ := newTestService(store)
	ctx := context.Background()

	if _, err := svc.MaterializeWindow(ctx, "c1", 4); err != nil {
		t.Fatalf("MaterializeWindow failed: %v", err)
	}
	if _, err := svc.BookSlot(ctx, "c1", models.BookSlotRequest{
		Date: "2026-03-02", Time: "10:00", UserID: "u1", UserName: "Amina",
	}); err != nil {
		t.Fatalf("BookSlot failed: %v", err)
	}

	// New pattern drops 10:00 and 14:00, adds 09:00. The booked 10:00 must
	// survive; the open 14:00 must go.
	if _, err := svc.UpdateAvailability(ctx, "c1", "Monday", []string{"09:00"}); err != nil {
		t.Fatalf("UpdateAvailability failed: %v", err)
	}

	day, err := svc.RefreshDay(ctx, "c1", "2026-03-02")
	if err != nil {
		t.Fatalf("RefreshDay failed: %v", err)
	}
	if day.TotalSlots != 2 {
		t.Fatalf("expected 09:00 plus the booked 10:00, got %+v", day.Slots)
	}
	if day.Slots[0].Time != "09:00" || day.Slots[0].IsBooked {
		t.Errorf("expected open 09:00 first, got %+v", day.Slots[0])
	}
	if day.Slots[1].Time != "10:00" || !day.Slots[1].IsBooked {
		t.Errorf("expected booked 10:00 preserved, got %+v", day.Slots[1])
	}
	if day.AvailableSlots != 1 {
		t.Errorf("availableSlots = %d, want 1", day.AvailableSlots)
	}
}

func TestRefreshDayCreatesMissingDate(t *testing.T) {
	store := newFakeStore()
	seedCounselor(store, "c1", []models.DayPattern{
		{Day: "Monday", Slots: []string{"10:00"}},
	})
	svc, _ := newTestService(store)

	day, err := svc.RefreshDay(context.Background(), "c1", "2026-04-06")
	if err != nil {
		t.Fatalf("RefreshDay failed: %v", err)
	}
	if day.Date != "2026-04-06" || day.TotalSlots != 1 {
		t.Fatalf("unexpected day: %+v", day)
	}
}

func TestRefreshDayWithoutPatternOrDocument(t *testing.T) {
	store := newFakeStore()
	seedCounselor(store, "c1", nil)
	svc, _ := newTestService(store)

	// Tuesday has no pattern entry and nothing materialized.
	_, err := svc.RefreshDay(context.Background(), "c1", "2026-03-03")
	assertScheduleCode(t, err, CodeDayNotFound)
}

func TestListDaysCoversWindow(t *testing.T) {
	store := newFakeStore()
	seedCounselor(store, "c1", []models.DayPattern{
		{Day: "Monday", Slots: []string{"10:00"}},
	})
	svc, _ := newTestService(store)
	ctx := context.Background()

	if _, err := svc.MaterializeWindow(ctx, "c1", 4); err != nil {
		t.Fatalf("MaterializeWindow failed: %v", err)
	}

	days, err := svc.ListDays(ctx, "c1", 4)
	if err != nil {
		t.Fatalf("ListDays failed: %v", err)
	}
	if len(days) != 5 {
		t.Fatalf("expected 5 days in window, got %d", len(days))
	}
}
