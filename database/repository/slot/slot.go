package slotRepo

import (
	"errors"

	"parkwise/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrDuplicateNumber is returned by Create when the slot number is taken.
var ErrDuplicateNumber = errors.New("slot with this number already exists")

// ErrOccupied is returned by Delete when the slot is currently occupied.
var ErrOccupied = errors.New("cannot delete an occupied slot")

// SlotRepository defines methods for parking slot data access. Lookups return
// (nil, nil) when no document matches; state transitions conditioned on a
// prior status return (nil, nil) when the precondition does not hold.
type SlotRepository interface {
	// Create inserts a new slot record, enforcing number uniqueness.
	Create(slot *models.ParkingSlot) error
	// GetAll retrieves every slot sorted by number.
	GetAll() ([]models.ParkingSlot, error)
	// GetByID retrieves a slot by its unique ID.
	GetByID(id string) (*models.ParkingSlot, error)
	// GetByNumber retrieves a slot by its human-readable number.
	GetByNumber(number string) (*models.ParkingSlot, error)
	// GetByStatus retrieves all slots with the given status.
	GetByStatus(status string) ([]models.ParkingSlot, error)
	// Update applies a field patch and returns the updated document.
	Update(id string, patch bson.M) (*models.ParkingSlot, error)
	// Book atomically transitions an available slot to occupied.
	Book(id string, occ models.SlotOccupancy) (*models.ParkingSlot, error)
	// Free resets a slot to available and clears its occupancy fields.
	Free(id string) (*models.ParkingSlot, error)
	// Block marks a non-occupied slot blocked, keeping only the
	// maintenance marker.
	Block(id string, reason string) (*models.ParkingSlot, error)
	// Delete removes a slot unless it is occupied.
	Delete(id string) error
	// Stats aggregates status counts and projected revenue of occupancies.
	Stats() (*models.SlotStats, error)
}
