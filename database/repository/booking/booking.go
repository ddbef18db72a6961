package bookingRepo

import (
	"context"
	"errors"

	"parkwise/models"
)

// ErrSlotUnavailable is returned by the transactional book when the slot's
// availability precondition fails inside the transaction.
var ErrSlotUnavailable = errors.New("slot is not available")

// BookingRepository defines methods for booking ledger access. Lookups return
// (nil, nil) when no document matches.
type BookingRepository interface {
	// Create inserts a new active booking with a pending payment.
	Create(booking *models.Booking) error
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
	// GetByUser retrieves a user's bookings, newest first.
	GetByUser(userID string) ([]models.Booking, error)
	// GetActive retrieves every active booking.
	GetActive() ([]models.Booking, error)
	// FindActiveBySlot retrieves the active booking for a slot, if any.
	FindActiveBySlot(slotID string) (*models.Booking, error)
	// Complete closes a booking, computing actual duration and total amount.
	Complete(id string) (*models.Booking, error)
	// GetHistory retrieves the most recent bookings, newest first.
	GetHistory(limit int64) ([]models.Booking, error)
	// MarkOverstays flags active bookings past their expected checkout.
	MarkOverstays() (int64, error)
	// Stats aggregates ledger counts and completed revenue.
	Stats() (*models.BookingStats, error)

	// BookSlotTx books a slot and inserts its booking record inside a single
	// Mongo transaction. Requires a replica-set deployment.
	BookSlotTx(ctx context.Context, slotID string, occ models.SlotOccupancy, booking *models.Booking) (*models.ParkingSlot, error)
	// FreeSlotTx completes the booking (when present) and frees the slot
	// inside a single Mongo transaction.
	FreeSlotTx(ctx context.Context, slotID string, bookingID string) (*models.ParkingSlot, error)
}
