package parking

import (
	"context"
	"encoding/json"
	"errors"

	slotRepo "parkwise/database/repository/slot"
	"parkwise/models"
	"parkwise/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// DefaultSlotService implements SlotService over the slot store, with a
// Redis-cached stats snapshot.
type DefaultSlotService struct {
	Repo  slotRepo.SlotRepository
	Cache *redis.Client
}

// CreateSlot validates and persists a new slot.
func (s *DefaultSlotService) CreateSlot(slot models.ParkingSlot) (*models.ParkingSlot, error) {
	if slot.Number == "" || slot.Section == "" {
		return nil, ValidationError{Message: "Slot number and section are required"}
	}
	if slot.HourlyRate < 0 {
		return nil, ValidationError{Message: "Hourly rate must not be negative"}
	}
	if slot.Type == "" {
		slot.Type = models.SlotTypeRegular
	}
	if slot.MaxTimeLimit <= 0 {
		slot.MaxTimeLimit = 24
	}

	if err := s.Repo.Create(&slot); err != nil {
		if errors.Is(err, slotRepo.ErrDuplicateNumber) {
			return nil, DuplicateNumberError{Number: slot.Number}
		}
		return nil, err
	}
	return &slot, nil
}

// ListSlots returns every slot sorted by number.
func (s *DefaultSlotService) ListSlots() ([]models.ParkingSlot, error) {
	return s.Repo.GetAll()
}

// ListSlotsByStatus returns slots filtered by status.
func (s *DefaultSlotService) ListSlotsByStatus(status string) ([]models.ParkingSlot, error) {
	return s.Repo.GetByStatus(status)
}

// GetSlot returns a slot by ID.
func (s *DefaultSlotService) GetSlot(id string) (*models.ParkingSlot, error) {
	slot, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return nil, NotFoundError{Resource: "Slot", ID: id}
	}
	return slot, nil
}

// UpdateSlot applies an arbitrary field patch to a slot.
func (s *DefaultSlotService) UpdateSlot(id string, patch map[string]interface{}) (*models.ParkingSlot, error) {
	// Identity and provenance fields are never patched.
	delete(patch, "id")
	delete(patch, "_id")
	delete(patch, "createdAt")

	slot, err := s.Repo.Update(id, patch)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return nil, NotFoundError{Resource: "Slot", ID: id}
	}
	return slot, nil
}

// BlockSlot takes a slot out of service, recording the reason as the
// maintenance marker. Occupied slots must be freed first.
func (s *DefaultSlotService) BlockSlot(id string, reason string) (*models.ParkingSlot, error) {
	if reason == "" {
		reason = "Maintenance"
	}

	current, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, NotFoundError{Resource: "Slot", ID: id}
	}
	if current.Status == models.SlotStatusOccupied {
		return nil, NotAvailableError{SlotID: id}
	}

	slot, err := s.Repo.Block(id, reason)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		// A booking landed between the read above and the conditional
		// block, or the slot was deleted meanwhile.
		return nil, NotAvailableError{SlotID: id}
	}
	return slot, nil
}

// UnblockSlot returns a blocked slot to the available pool.
func (s *DefaultSlotService) UnblockSlot(id string) (*models.ParkingSlot, error) {
	slot, err := s.Repo.Free(id)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return nil, NotFoundError{Resource: "Slot", ID: id}
	}
	return slot, nil
}

// DeleteSlot removes a slot unless it is occupied.
func (s *DefaultSlotService) DeleteSlot(id string) error {
	err := s.Repo.Delete(id)
	if err != nil {
		if errors.Is(err, slotRepo.ErrOccupied) {
			return OccupiedError{SlotID: id}
		}
		return err
	}
	return nil
}

// SlotStats returns the slot statistics snapshot, served from the Redis cache
// when a recent one exists. Cache failures degrade to a direct aggregation.
func (s *DefaultSlotService) SlotStats(ctx context.Context) (*models.SlotStats, error) {
	logger := utils.GetLogger()

	if s.Cache != nil {
		cached, err := s.Cache.Get(ctx, utils.SlotStatsCacheKey).Result()
		if err == nil {
			var stats models.SlotStats
			if err := json.Unmarshal([]byte(cached), &stats); err == nil {
				return &stats, nil
			}
		} else if err != redis.Nil {
			logger.Warn("slot stats cache read failed", zap.Error(err))
		}
	}

	stats, err := s.Repo.Stats()
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if payload, err := json.Marshal(stats); err == nil {
			if err := s.Cache.Set(ctx, utils.SlotStatsCacheKey, payload, utils.SlotStatsCacheTTL).Err(); err != nil {
				logger.Warn("slot stats cache write failed", zap.Error(err))
			}
		}
	}
	return stats, nil
}
