package parking

import (
	"context"
	"errors"
	"time"

	bookingRepo "parkwise/database/repository/booking"
	slotRepo "parkwise/database/repository/slot"
	"parkwise/models"
	"parkwise/utils"

	"go.uber.org/zap"
)

// DefaultBookingService coordinates slot-status transitions with the booking
// ledger. With UseTransactions set, both writes of a Book or Free run in one
// Mongo transaction; otherwise they run sequentially with the conditional
// slot update first, so the at-most-one-booker guarantee holds either way.
type DefaultBookingService struct {
	Slots           slotRepo.SlotRepository
	Bookings        bookingRepo.BookingRepository
	UseTransactions bool
}

// Book checks a vehicle into a slot: it validates the request, transitions
// the slot from available to occupied with a conditional update, and inserts
// the ledger record denormalizing the slot's number and rate.
func (s *DefaultBookingService) Book(ctx context.Context, req BookRequest) (*BookResult, error) {
	if req.UserID == "" || req.UserName == "" || req.VehicleNumber == "" || req.VehicleType == "" {
		return nil, ValidationError{Message: "Missing required booking information"}
	}

	slot, err := s.Slots.GetByID(req.SlotID)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return nil, NotFoundError{Resource: "Slot", ID: req.SlotID}
	}
	if slot.Status != models.SlotStatusAvailable {
		return nil, NotAvailableError{SlotID: req.SlotID}
	}

	duration := req.ExpectedDuration
	if duration <= 0 {
		duration = slot.MaxTimeLimit
	}

	occ := models.SlotOccupancy{
		BookedBy:         req.UserName,
		BookedByUserID:   req.UserID,
		VehicleNumber:    req.VehicleNumber,
		VehicleType:      req.VehicleType,
		ExpectedCheckout: time.Now().Add(time.Duration(duration) * time.Hour),
	}
	booking := &models.Booking{
		UserID:           req.UserID,
		SlotID:           req.SlotID,
		SlotNumber:       slot.Number,
		VehicleNumber:    req.VehicleNumber,
		VehicleType:      req.VehicleType,
		ExpectedDuration: duration,
		HourlyRate:       slot.HourlyRate,
	}

	if s.UseTransactions {
		bookedSlot, err := s.Bookings.BookSlotTx(ctx, req.SlotID, occ, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotUnavailable) {
				return nil, NotAvailableError{SlotID: req.SlotID}
			}
			return nil, err
		}
		return &BookResult{Slot: bookedSlot, Booking: booking}, nil
	}

	bookedSlot, err := s.Slots.Book(req.SlotID, occ)
	if err != nil {
		return nil, err
	}
	if bookedSlot == nil {
		// Lost the race: another booker matched the availability filter first.
		return nil, NotAvailableError{SlotID: req.SlotID}
	}

	booking.StartTime = *bookedSlot.BookedAt
	if err := s.Bookings.Create(booking); err != nil {
		utils.GetLogger().Error("slot booked but ledger insert failed",
			zap.String("slotId", req.SlotID), zap.Error(err))
		return nil, err
	}
	return &BookResult{Slot: bookedSlot, Booking: booking}, nil
}

// Free checks a vehicle out: it completes the slot's open booking when one
// exists and resets the slot to available. A missing booking record does not
// block the checkout; the slot is freed regardless and the divergence is
// logged.
func (s *DefaultBookingService) Free(ctx context.Context, slotID string) (*models.ParkingSlot, error) {
	slot, err := s.Slots.GetByID(slotID)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return nil, NotFoundError{Resource: "Slot", ID: slotID}
	}

	current, err := s.Bookings.FindActiveBySlot(slotID)
	if err != nil {
		return nil, err
	}
	if current == nil && slot.Status == models.SlotStatusOccupied {
		utils.GetLogger().Warn("freeing occupied slot with no open booking",
			zap.String("slotId", slotID), zap.String("number", slot.Number))
	}

	if s.UseTransactions {
		bookingID := ""
		if current != nil {
			bookingID = current.ID
		}
		return s.Bookings.FreeSlotTx(ctx, slotID, bookingID)
	}

	if current != nil {
		if _, err := s.Bookings.Complete(current.ID); err != nil {
			return nil, err
		}
	}

	freed, err := s.Slots.Free(slotID)
	if err != nil {
		return nil, err
	}
	if freed == nil {
		return nil, NotFoundError{Resource: "Slot", ID: slotID}
	}
	return freed, nil
}

// GetBooking returns a booking by ID.
func (s *DefaultBookingService) GetBooking(id string) (*models.Booking, error) {
	booking, err := s.Bookings.GetByID(id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, NotFoundError{Resource: "Booking", ID: id}
	}
	return booking, nil
}

// UserBookings returns a user's bookings, newest first.
func (s *DefaultBookingService) UserBookings(userID string) ([]models.Booking, error) {
	return s.Bookings.GetByUser(userID)
}

// ActiveBookings returns every active booking.
func (s *DefaultBookingService) ActiveBookings() ([]models.Booking, error) {
	return s.Bookings.GetActive()
}

// BookingHistory returns the most recent bookings, newest first.
func (s *DefaultBookingService) BookingHistory(limit int64) ([]models.Booking, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.Bookings.GetHistory(limit)
}

// BookingStats returns the ledger statistics.
func (s *DefaultBookingService) BookingStats() (*models.BookingStats, error) {
	return s.Bookings.Stats()
}

// MarkOverstays flags active bookings past their expected duration.
func (s *DefaultBookingService) MarkOverstays() (int64, error) {
	return s.Bookings.MarkOverstays()
}
