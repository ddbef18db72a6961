package models

import "time"

// Booking status values.
const (
	BookingStatusActive    = "active"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
	BookingStatusOverstay  = "overstay"
)

// Payment status values.
const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
)

// Booking is the ledger record of one occupancy interval of a slot. SlotNumber
// and HourlyRate are denormalized from the slot at booking time so the record
// stays meaningful if the slot is later edited or deleted.
type Booking struct {
	ID               string     `bson:"id" json:"id"`
	UserID           string     `bson:"userId" json:"userId"`
	SlotID           string     `bson:"slotId" json:"slotId"`
	SlotNumber       string     `bson:"slotNumber" json:"slotNumber"`
	VehicleNumber    string     `bson:"vehicleNumber" json:"vehicleNumber"`
	VehicleType      string     `bson:"vehicleType" json:"vehicleType"`
	StartTime        time.Time  `bson:"startTime" json:"startTime"`
	EndTime          *time.Time `bson:"endTime,omitempty" json:"endTime,omitempty"`
	ExpectedDuration int        `bson:"expectedDuration" json:"expectedDuration"` // hours
	ActualDuration   int        `bson:"actualDuration,omitempty" json:"actualDuration,omitempty"`
	HourlyRate       float64    `bson:"hourlyRate" json:"hourlyRate"`
	TotalAmount      float64    `bson:"totalAmount,omitempty" json:"totalAmount,omitempty"`
	Status           string     `bson:"status" json:"status"`
	PaymentStatus    string     `bson:"paymentStatus" json:"paymentStatus"`
	CreatedAt        time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// BookingStats summarizes the booking ledger.
type BookingStats struct {
	TotalBookings  int64   `json:"totalBookings"`
	ActiveBookings int64   `json:"activeBookings"`
	TodayBookings  int64   `json:"todayBookings"`
	TotalRevenue   float64 `json:"totalRevenue"`
}
