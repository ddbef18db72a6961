package handlers

import (
	userRepo "parkwise/database/repository/user"
)

// HandlerBundle assembles every handler group for route registration.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	Auth     *AuthHandler
	Users    *UserHandler
	Slots    *SlotHandler
	Bookings *BookingHandler
}
