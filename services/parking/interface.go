package parking

import (
	"context"

	"parkwise/models"
)

// BookRequest carries everything needed to check a vehicle into a slot.
type BookRequest struct {
	SlotID           string
	UserID           string
	UserName         string
	VehicleNumber    string
	VehicleType      string
	ExpectedDuration int // hours; 0 means use the slot's max time limit
}

// BookResult returns the slot and its ledger record together, as booked.
type BookResult struct {
	Slot    *models.ParkingSlot `json:"slot"`
	Booking *models.Booking     `json:"booking"`
}

// SlotService manages the slot inventory.
type SlotService interface {
	CreateSlot(slot models.ParkingSlot) (*models.ParkingSlot, error)
	ListSlots() ([]models.ParkingSlot, error)
	ListSlotsByStatus(status string) ([]models.ParkingSlot, error)
	GetSlot(id string) (*models.ParkingSlot, error)
	UpdateSlot(id string, patch map[string]interface{}) (*models.ParkingSlot, error)
	BlockSlot(id string, reason string) (*models.ParkingSlot, error)
	UnblockSlot(id string) (*models.ParkingSlot, error)
	DeleteSlot(id string) error
	SlotStats(ctx context.Context) (*models.SlotStats, error)
}

// BookingService is the coordinator: it keeps slot status and the booking
// ledger consistent, and exposes the ledger's query surface.
type BookingService interface {
	Book(ctx context.Context, req BookRequest) (*BookResult, error)
	Free(ctx context.Context, slotID string) (*models.ParkingSlot, error)
	GetBooking(id string) (*models.Booking, error)
	UserBookings(userID string) ([]models.Booking, error)
	ActiveBookings() ([]models.Booking, error)
	BookingHistory(limit int64) ([]models.Booking, error)
	BookingStats() (*models.BookingStats, error)
	MarkOverstays() (int64, error)
}
