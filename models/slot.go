package models

import "time"

// Slot type values.
const (
	SlotTypeRegular  = "regular"
	SlotTypeCompact  = "compact"
	SlotTypeLarge    = "large"
	SlotTypeElectric = "electric"
	SlotTypeHandicap = "handicap"
	SlotTypeVIP      = "vip"
)

// Slot status values.
const (
	SlotStatusAvailable = "available"
	SlotStatusOccupied  = "occupied"
	SlotStatusBlocked   = "blocked"
	SlotStatusReserved  = "reserved"
)

// ParkingSlot represents one physical parking space. The occupancy fields
// (BookedBy, BookedByUserID, VehicleNumber, VehicleType, BookedAt,
// ExpectedCheckout) are set only while the slot is occupied; a blocked slot
// carries only BookedBy (the maintenance reason) and BookedAt.
type ParkingSlot struct {
	ID               string     `bson:"id" json:"id"`
	Number           string     `bson:"number" json:"number"`
	Section          string     `bson:"section" json:"section"`
	Type             string     `bson:"type" json:"type"`
	Status           string     `bson:"status" json:"status"`
	HourlyRate       float64    `bson:"hourlyRate" json:"hourlyRate"`
	MaxTimeLimit     int        `bson:"maxTimeLimit" json:"maxTimeLimit"` // hours
	Description      string     `bson:"description,omitempty" json:"description,omitempty"`
	BookedBy         string     `bson:"bookedBy,omitempty" json:"bookedBy,omitempty"`
	BookedByUserID   string     `bson:"bookedByUserId,omitempty" json:"bookedByUserId,omitempty"`
	VehicleNumber    string     `bson:"vehicleNumber,omitempty" json:"vehicleNumber,omitempty"`
	VehicleType      string     `bson:"vehicleType,omitempty" json:"vehicleType,omitempty"`
	BookedAt         *time.Time `bson:"bookedAt,omitempty" json:"bookedAt,omitempty"`
	ExpectedCheckout *time.Time `bson:"expectedCheckout,omitempty" json:"expectedCheckout,omitempty"`
	CreatedAt        time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// SlotOccupancy carries the fields written onto a slot when it is booked.
type SlotOccupancy struct {
	BookedBy         string
	BookedByUserID   string
	VehicleNumber    string
	VehicleType      string
	ExpectedCheckout time.Time
}

// SlotStats summarizes the slot inventory: document counts per status and the
// projected revenue of all current occupancies (rate x hours parked so far,
// rounded up).
type SlotStats struct {
	StatusCounts map[string]int64 `json:"statusCounts"`
	TotalRevenue float64          `json:"totalRevenue"`
}
