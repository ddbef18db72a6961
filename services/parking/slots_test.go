package parking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"parkwise/models"
)

func TestCreateSlotValidation(t *testing.T) {
	svc := &DefaultSlotService{Repo: newFakeSlotRepo()}

	tests := []struct {
		name string
		slot models.ParkingSlot
	}{
		{"missing number", models.ParkingSlot{Section: "A"}},
		{"missing section", models.ParkingSlot{Number: "A-01"}},
		{"negative rate", models.ParkingSlot{Number: "A-01", Section: "A", HourlyRate: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateSlot(tt.slot)
			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestCreateSlotDefaults(t *testing.T) {
	svc := &DefaultSlotService{Repo: newFakeSlotRepo()}

	created, err := svc.CreateSlot(models.ParkingSlot{Number: "A-01", Section: "A", HourlyRate: 5})
	if err != nil {
		t.Fatalf("CreateSlot failed: %v", err)
	}
	if created.Type != models.SlotTypeRegular {
		t.Errorf("type = %q, want regular default", created.Type)
	}
	if created.Status != models.SlotStatusAvailable {
		t.Errorf("status = %q, want available", created.Status)
	}
	if created.MaxTimeLimit != 24 {
		t.Errorf("maxTimeLimit = %d, want 24 default", created.MaxTimeLimit)
	}
	if created.ID == "" {
		t.Error("no id assigned")
	}
}

func TestCreateSlotDuplicateNumber(t *testing.T) {
	svc := &DefaultSlotService{Repo: newFakeSlotRepo()}

	if _, err := svc.CreateSlot(models.ParkingSlot{Number: "A-01", Section: "A"}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	_, err := svc.CreateSlot(models.ParkingSlot{Number: "A-01", Section: "B"})
	var dup DuplicateNumberError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateNumberError, got %v", err)
	}
}

func TestGetSlotNotFound(t *testing.T) {
	svc := &DefaultSlotService{Repo: newFakeSlotRepo()}
	_, err := svc.GetSlot("missing")
	var nfe NotFoundError
	if !errors.As(err, &nfe) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestUpdateSlotStripsIdentityFields(t *testing.T) {
	repo := newFakeSlotRepo()
	svc := &DefaultSlotService{Repo: repo}
	slot := repo.add(models.ParkingSlot{Number: "A-01", Section: "A", HourlyRate: 5})

	updated, err := svc.UpdateSlot(slot.ID, map[string]interface{}{
		"id":         "forged",
		"hourlyRate": 7.5,
		"section":    "B",
	})
	if err != nil {
		t.Fatalf("UpdateSlot failed: %v", err)
	}
	if updated.ID != slot.ID {
		t.Errorf("id changed to %q", updated.ID)
	}
	if updated.HourlyRate != 7.5 || updated.Section != "B" {
		t.Errorf("patch not applied: %+v", updated)
	}
}

func TestBlockSlot(t *testing.T) {
	repo := newFakeSlotRepo()
	svc := &DefaultSlotService{Repo: repo}
	slot := repo.add(models.ParkingSlot{Number: "A-01", Section: "A"})

	blocked, err := svc.BlockSlot(slot.ID, "")
	if err != nil {
		t.Fatalf("BlockSlot failed: %v", err)
	}
	if blocked.Status != models.SlotStatusBlocked {
		t.Errorf("status = %q, want blocked", blocked.Status)
	}
	if blocked.BookedBy != "Maintenance" {
		t.Errorf("reason marker = %q, want default Maintenance", blocked.BookedBy)
	}

	unblocked, err := svc.UnblockSlot(slot.ID)
	if err != nil {
		t.Fatalf("UnblockSlot failed: %v", err)
	}
	if unblocked.Status != models.SlotStatusAvailable {
		t.Errorf("status = %q, want available", unblocked.Status)
	}
	if unblocked.BookedBy != "" || unblocked.BookedAt != nil {
		t.Errorf("maintenance marker not cleared: %+v", unblocked)
	}
}

func TestBlockOccupiedSlot(t *testing.T) {
	repo := newFakeSlotRepo()
	svc := &DefaultSlotService{Repo: repo}
	slot := repo.add(models.ParkingSlot{Number: "A-01", Status: models.SlotStatusOccupied})

	_, err := svc.BlockSlot(slot.ID, "Repainting")
	var nae NotAvailableError
	if !errors.As(err, &nae) {
		t.Fatalf("expected NotAvailableError, got %v", err)
	}
}

// raceBookingRepo books the slot right after the service reads it, before the
// block lands.
type raceBookingRepo struct {
	*fakeSlotRepo
	once sync.Once
}

func (r *raceBookingRepo) GetByID(id string) (*models.ParkingSlot, error) {
	slot, err := r.fakeSlotRepo.GetByID(id)
	r.once.Do(func() {
		r.fakeSlotRepo.Book(id, models.SlotOccupancy{
			BookedBy:         "John Doe",
			BookedByUserID:   "user-1",
			VehicleNumber:    "ABC123",
			VehicleType:      "car",
			ExpectedCheckout: time.Now().Add(2 * time.Hour),
		})
	})
	return slot, err
}

func TestBlockLosesRaceToBooking(t *testing.T) {
	repo := &raceBookingRepo{fakeSlotRepo: newFakeSlotRepo()}
	svc := &DefaultSlotService{Repo: repo}
	slot := repo.fakeSlotRepo.add(models.ParkingSlot{Number: "A-01", Section: "A", HourlyRate: 5})

	_, err := svc.BlockSlot(slot.ID, "Maintenance")
	var nae NotAvailableError
	if !errors.As(err, &nae) {
		t.Fatalf("expected NotAvailableError, got %v", err)
	}

	current, _ := repo.fakeSlotRepo.GetByID(slot.ID)
	if current.Status != models.SlotStatusOccupied {
		t.Errorf("status = %q, want occupied preserved", current.Status)
	}
	if current.VehicleNumber != "ABC123" || current.BookedBy != "John Doe" {
		t.Errorf("occupancy fields lost: %+v", current)
	}
}

func TestDeleteOccupiedSlot(t *testing.T) {
	repo := newFakeSlotRepo()
	svc := &DefaultSlotService{Repo: repo}
	slot := repo.add(models.ParkingSlot{Number: "A-01", Status: models.SlotStatusOccupied})

	err := svc.DeleteSlot(slot.ID)
	var occ OccupiedError
	if !errors.As(err, &occ) {
		t.Fatalf("expected OccupiedError, got %v", err)
	}
	if occ.Error() != "Cannot delete an occupied slot" {
		t.Errorf("unexpected message %q", occ.Error())
	}

	if remaining, _ := repo.GetByID(slot.ID); remaining == nil {
		t.Error("occupied slot was deleted")
	}
}

func TestSlotStatsWithoutCache(t *testing.T) {
	repo := newFakeSlotRepo()
	svc := &DefaultSlotService{Repo: repo}
	repo.add(models.ParkingSlot{Number: "A-01", Status: models.SlotStatusAvailable})
	repo.add(models.ParkingSlot{Number: "A-02", Status: models.SlotStatusAvailable})
	repo.add(models.ParkingSlot{Number: "A-03", Status: models.SlotStatusBlocked})

	stats, err := svc.SlotStats(context.Background())
	if err != nil {
		t.Fatalf("SlotStats failed: %v", err)
	}
	if stats.StatusCounts[models.SlotStatusAvailable] != 2 {
		t.Errorf("available count = %d, want 2", stats.StatusCounts[models.SlotStatusAvailable])
	}
	if stats.StatusCounts[models.SlotStatusBlocked] != 1 {
		t.Errorf("blocked count = %d, want 1", stats.StatusCounts[models.SlotStatusBlocked])
	}
}
