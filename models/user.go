package models

import "time"

// User roles.
const (
	RoleUser      = "user"
	RoleAdmin     = "admin"
	RoleAttendant = "attendant"
)

// Account status values.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// Admin levels.
const (
	AdminLevelManager = "manager"
	AdminLevelSuper   = "super"
)

// User represents an account of any role. Password carries the plain-text
// password only on inbound registration payloads and is never persisted;
// PasswordHash is stored and stripped from every API response.
type User struct {
	ID            string     `bson:"id" json:"id"`
	Name          string     `bson:"name" json:"name"`
	Email         string     `bson:"email" json:"email"`
	Password      string     `bson:"-" json:"password,omitempty"`
	PasswordHash  string     `bson:"passwordHash" json:"-"`
	Role          string     `bson:"role" json:"role"`
	Phone         string     `bson:"phone,omitempty" json:"phone,omitempty"`
	VehicleNumber string     `bson:"vehicleNumber,omitempty" json:"vehicleNumber,omitempty"`
	VehicleType   string     `bson:"vehicleType,omitempty" json:"vehicleType,omitempty"`
	AdminLevel    string     `bson:"adminLevel,omitempty" json:"adminLevel,omitempty"`
	Permissions   []string   `bson:"permissions,omitempty" json:"permissions,omitempty"`
	Status        string     `bson:"status" json:"status"`
	LastLogin     *time.Time `bson:"lastLogin,omitempty" json:"lastLogin,omitempty"`
	CreatedAt     time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time  `bson:"updatedAt" json:"updatedAt"`
}
