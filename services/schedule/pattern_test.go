package schedule

import (
	"context"
	"reflect"
	"testing"

	"counselhub/models"
)

func TestUpdateAvailabilityRejectsInvalidInput(t *testing.T) {
	store := newFakeStore()
	seedCounselor(store, "c1", nil)
	svc, _ := newTestService(store)
	ctx := context.Background()

	_, err := svc.UpdateAvailability(ctx, "c1", "Funday", []string{"10:00"})
	assertScheduleCode(t, err, CodeInvalidInput)

	_, err = svc.UpdateAvailability(ctx, "c1", "Monday", []string{"25:00"})
	assertScheduleCode(t, err, CodeInvalidInput)

	_, err = svc.UpdateAvailability(ctx, "c1", "Monday", []string{"10am"})
	assertScheduleCode(t, err, CodeInvalidInput)

	_, err = svc.UpdateAvailability(ctx, "c1", "Monday", []string{"10:00", "10:00"})
	assertScheduleCode(t, err, CodeInvalidInput)
}

func TestUpdateAvailabilityUnknownCounselor(t *testing.T) {
	svc, _ := newTestService(newFakeStore())
	_, err := svc.UpdateAvailability(context.Background(), "missing", "Monday", []string{"10:00"})
	assertScheduleCode(t, err, CodeCounselorNotFound)
}

func TestUpdateAvailabilityReplacesExistingDay(t *testing.T) {
	store := newFakeStore()
	seedCounselor(store, "c1", nil)
	svc, _ := newTestService(store)
	ctx := context.Background()

	if _, err := svc.UpdateAvailability(ctx, "c1", "Monday", []string{"14:00", "10:00"}); err != nil {
		t.Fatalf("first update failed: %v", err)
	}
	if _, err := svc.UpdateAvailability(ctx, "c1", "Monday", []string{"09:00"}); err != nil {
		t.Fatalf("second update failed: %v", err)
	}

	availability, err := svc.GetAvailability(ctx, "c1")
	if err != nil {
		t.Fatalf("GetAvailability failed: %v", err)
	}
	if len(availability) != 1 {
		t.Fatalf("expected a single Monday entry, got %+v", availability)
	}
	if !reflect.DeepEqual(availability[0].Slots, []string{"09:00"}) {
		t.Errorf("Monday slots = %v, want [09:00]", availability[0].Slots)
	}
}

func TestUpdateAvailabilityAppendsNewDay(t *testing.T) {
	store := newFakeStore()
	seedCounselor(store, "c1", nil)
	svc, _ := newTestService(store)
	ctx := context.Background()

	if _, err := svc.UpdateAvailability(ctx, "c1", "Monday", []string{"10:00"}); err != nil {
		t.Fatalf("Monday update failed: %v", err)
	}
	if _, err := svc.UpdateAvailability(ctx, "c1", "Wednesday", []string{"16:00", "11:00"}); err != nil {
		t.Fatalf("Wednesday update failed: %v", err)
	}

	availability, err := svc.GetAvailability(ctx, "c1")
	if err != nil {
		t.Fatalf("GetAvailability failed: %v", err)
	}
	if len(availability) != 2 {
		t.Fatalf("expected two entries, got %+v", availability)
	}
	// Slots come back sorted regardless of input order.
	if !reflect.DeepEqual(availability[1].Slots, []string{"11:00", "16:00"}) {
		t.Errorf("Wednesday slots = %v, want [11:00 16:00]", availability[1].Slots)
	}
}

func TestUpdateAvailabilityMaterializesWindow(t *testing.T) {
	store := newFakeStore()
	seedCounselor(store, "c1", nil)
	svc, _ := newTestService(store)

	report, err := svc.UpdateAvailability(context.Background(), "c1", "Monday", []string{"10:00"})
	if err != nil {
		t.Fatalf("UpdateAvailability failed: %v", err)
	}
	if len(report.Created) != 5 {
		t.Fatalf("expected 5 Mondays materialized, got %v", report.Created)
	}
}

func TestUpdateAvailabilityEmptySlotsClearsDay(t *testing.T) {
	store := newFakeStore()
	seedCounselor(store, "c1", nil)
	svc, _ := newTestService(store)
	ctx := context.Background()

	if _, err := svc.UpdateAvailability(ctx, "c1", "Monday", []string{"10:00"}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if _, err := svc.UpdateAvailability(ctx, "c1", "Monday", nil); err != nil {
		t.Fatalf("clearing update failed: %v", err)
	}

	availability, _ := svc.GetAvailability(ctx, "c1")
	if len(availability) != 1 || len(availability[0].Slots) != 0 {
		t.Fatalf("expected empty Monday entry, got %+v", availability)
	}

	// An emptied day materializes nothing new on later runs.
	report, err := svc.MaterializeWindow(ctx, "c1", 4)
	if err != nil {
		t.Fatalf("MaterializeWindow failed: %v", err)
	}
	if len(report.Created) != 0 {
		t.Errorf("empty pattern still created dates: %v", report.Created)
	}
}

func TestGetAvailabilityUnknownCounselor(t *testing.T) {
	svc, _ := newTestService(newFakeStore())
	_, err := svc.GetAvailability(context.Background(), "missing")
	assertScheduleCode(t, err, CodeCounselorNotFound)
}

func TestMergeSlots(t *testing.T) {
	existing := []models.Slot{
		{Time: "10:00", IsBooked: true, MeetLink: "https://meet.counselhub.app/session/abc"},
		{Time: "14:00", IsBooked: false},
	}

	merged := mergeSlots(existing, []string{"09:00", "14:00"})
	want := []models.Slot{
		{Time: "09:00"},
		{Time: "10:00", IsBooked: true, MeetLink: "https://meet.counselhub.app/session/abc"},
		{Time: "14:00"},
	}
	if !reflect.DeepEqual(merged, want) {
		t.Errorf("mergeSlots = %+v, want %+v", merged, want)
	}
}
