package parking

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	bookingRepo "parkwise/database/repository/booking"
	slotRepo "parkwise/database/repository/slot"
	"parkwise/models"

	"go.mongodb.org/mongo-driver/bson"
)

// fakeSlotRepo is an in-memory SlotRepository with the same conditional
// transition semantics as the Mongo implementation.
type fakeSlotRepo struct {
	mu    sync.Mutex
	slots map[string]*models.ParkingSlot
	seq   int
}

func newFakeSlotRepo() *fakeSlotRepo {
	return &fakeSlotRepo{slots: make(map[string]*models.ParkingSlot)}
}

func (r *fakeSlotRepo) add(slot models.ParkingSlot) *models.ParkingSlot {
	r.mu.Lock()
	defer r.mu.Unlock()
	if slot.ID == "" {
		r.seq++
		slot.ID = fmt.Sprintf("slot-%d", r.seq)
	}
	if slot.Status == "" {
		slot.Status = models.SlotStatusAvailable
	}
	r.slots[slot.ID] = &slot
	return &slot
}

func copySlot(s *models.ParkingSlot) *models.ParkingSlot {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

func (r *fakeSlotRepo) Create(slot *models.ParkingSlot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.slots {
		if existing.Number == slot.Number {
			return slotRepo.ErrDuplicateNumber
		}
	}
	r.seq++
	if slot.ID == "" {
		slot.ID = fmt.Sprintf("slot-%d", r.seq)
	}
	if slot.Status == "" {
		slot.Status = models.SlotStatusAvailable
	}
	now := time.Now()
	slot.CreatedAt = now
	slot.UpdatedAt = now
	r.slots[slot.ID] = copySlot(slot)
	return nil
}

func (r *fakeSlotRepo) GetAll() ([]models.ParkingSlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.ParkingSlot
	for _, s := range r.slots {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

func (r *fakeSlotRepo) GetByID(id string) (*models.ParkingSlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return copySlot(r.slots[id]), nil
}

func (r *fakeSlotRepo) GetByNumber(number string) (*models.ParkingSlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.slots {
		if s.Number == number {
			return copySlot(s), nil
		}
	}
	return nil, nil
}

func (r *fakeSlotRepo) GetByStatus(status string) ([]models.ParkingSlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.ParkingSlot
	for _, s := range r.slots {
		if s.Status == status {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeSlotRepo) Update(id string, patch bson.M) (*models.ParkingSlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.slots[id]
	if !ok {
		return nil, nil
	}
	for key, value := range patch {
		switch key {
		case "number":
			s.Number, _ = value.(string)
		case "section":
			s.Section, _ = value.(string)
		case "type":
			s.Type, _ = value.(string)
		case "status":
			s.Status, _ = value.(string)
		case "description":
			s.Description, _ = value.(string)
		case "hourlyRate":
			if f, ok := value.(float64); ok {
				s.HourlyRate = f
			}
		case "maxTimeLimit":
			switch v := value.(type) {
			case int:
				s.MaxTimeLimit = v
			case float64:
				s.MaxTimeLimit = int(v)
			}
		}
	}
	s.UpdatedAt = time.Now()
	return copySlot(s), nil
}

func (r *fakeSlotRepo) Book(id string, occ models.SlotOccupancy) (*models.ParkingSlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.slots[id]
	if !ok || s.Status != models.SlotStatusAvailable {
		return nil, nil
	}
	now := time.Now()
	checkout := occ.ExpectedCheckout
	s.Status = models.SlotStatusOccupied
	s.BookedBy = occ.BookedBy
	s.BookedByUserID = occ.BookedByUserID
	s.VehicleNumber = occ.VehicleNumber
	s.VehicleType = occ.VehicleType
	s.BookedAt = &now
	s.ExpectedCheckout = &checkout
	s.UpdatedAt = now
	return copySlot(s), nil
}

func (r *fakeSlotRepo) Free(id string) (*models.ParkingSlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.slots[id]
	if !ok {
		return nil, nil
	}
	s.Status = models.SlotStatusAvailable
	s.BookedBy = ""
	s.BookedByUserID = ""
	s.VehicleNumber = ""
	s.VehicleType = ""
	s.BookedAt = nil
	s.ExpectedCheckout = nil
	s.UpdatedAt = time.Now()
	return copySlot(s), nil
}

func (r *fakeSlotRepo) Block(id string, reason string) (*models.ParkingSlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.slots[id]
	if !ok || s.Status == models.SlotStatusOccupied {
		return nil, nil
	}
	now := time.Now()
	s.Status = models.SlotStatusBlocked
	s.BookedBy = reason
	s.BookedAt = &now
	s.BookedByUserID = ""
	s.VehicleNumber = ""
	s.VehicleType = ""
	s.ExpectedCheckout = nil
	s.UpdatedAt = now
	return copySlot(s), nil
}

func (r *fakeSlotRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.slots[id]
	if !ok {
		return fmt.Errorf("slot with id %s not found", id)
	}
	if s.Status == models.SlotStatusOccupied {
		return slotRepo.ErrOccupied
	}
	delete(r.slots, id)
	return nil
}

func (r *fakeSlotRepo) Stats() (*models.SlotStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stats := &models.SlotStats{StatusCounts: make(map[string]int64)}
	for _, s := range r.slots {
		stats.StatusCounts[s.Status]++
		if s.Status == models.SlotStatusOccupied && s.BookedAt != nil {
			hours := math.Ceil(time.Since(*s.BookedAt).Hours())
			if hours < 1 {
				hours = 1
			}
			stats.TotalRevenue += s.HourlyRate * hours
		}
	}
	return stats, nil
}

// fakeBookingRepo is an in-memory BookingRepository.
type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
	seq      int
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func copyBooking(b *models.Booking) *models.Booking {
	if b == nil {
		return nil
	}
	c := *b
	return &c
}

func (r *fakeBookingRepo) Create(booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	if booking.ID == "" {
		booking.ID = fmt.Sprintf("booking-%d", r.seq)
	}
	now := time.Now()
	if booking.StartTime.IsZero() {
		booking.StartTime = now
	}
	booking.Status = models.BookingStatusActive
	booking.PaymentStatus = models.PaymentStatusPending
	booking.CreatedAt = now
	booking.UpdatedAt = now
	r.bookings[booking.ID] = copyBooking(booking)
	return nil
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return copyBooking(r.bookings[id]), nil
}

func (r *fakeBookingRepo) GetByUser(userID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeBookingRepo) GetActive() ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.Status == models.BookingStatusActive {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) FindActiveBySlot(slotID string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.SlotID == slotID &&
			(b.Status == models.BookingStatusActive || b.Status == models.BookingStatusOverstay) {
			return copyBooking(b), nil
		}
	}
	return nil, nil
}

func (r *fakeBookingRepo) Complete(id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	endTime := time.Now()
	actual := int(math.Ceil(endTime.Sub(b.StartTime).Hours()))
	if actual < 1 {
		actual = 1
	}
	b.EndTime = &endTime
	b.ActualDuration = actual
	b.TotalAmount = float64(actual) * b.HourlyRate
	b.Status = models.BookingStatusCompleted
	b.PaymentStatus = models.PaymentStatusPaid
	b.UpdatedAt = endTime
	return copyBooking(b), nil
}

func (r *fakeBookingRepo) GetHistory(limit int64) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeBookingRepo) MarkOverstays() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var marked int64
	now := time.Now()
	for _, b := range r.bookings {
		if b.Status != models.BookingStatusActive {
			continue
		}
		deadline := b.StartTime.Add(time.Duration(b.ExpectedDuration) * time.Hour)
		if deadline.Before(now) {
			b.Status = models.BookingStatusOverstay
			b.UpdatedAt = now
			marked++
		}
	}
	return marked, nil
}

func (r *fakeBookingRepo) Stats() (*models.BookingStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stats := &models.BookingStats{}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for _, b := range r.bookings {
		stats.TotalBookings++
		if b.Status == models.BookingStatusActive {
			stats.ActiveBookings++
		}
		if !b.CreatedAt.Before(today) {
			stats.TodayBookings++
		}
		if b.Status == models.BookingStatusCompleted {
			stats.TotalRevenue += b.TotalAmount
		}
	}
	return stats, nil
}

func (r *fakeBookingRepo) BookSlotTx(ctx context.Context, slotID string, occ models.SlotOccupancy, booking *models.Booking) (*models.ParkingSlot, error) {
	return nil, bookingRepo.ErrSlotUnavailable
}

func (r *fakeBookingRepo) FreeSlotTx(ctx context.Context, slotID string, bookingID string) (*models.ParkingSlot, error) {
	return nil, fmt.Errorf("transactions not supported by fake")
}
