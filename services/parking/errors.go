package parking

import "fmt"

// NotFoundError signals that an ID did not resolve to a document.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// NotAvailableError signals a booking attempt against a slot that is not
// available, including losing the race against a concurrent booker.
type NotAvailableError struct {
	SlotID string
}

func (e NotAvailableError) Error() string {
	return "Slot is not available"
}

// OccupiedError signals an operation that is forbidden while a slot is
// occupied, such as deletion.
type OccupiedError struct {
	SlotID string
}

func (e OccupiedError) Error() string {
	return "Cannot delete an occupied slot"
}

// DuplicateNumberError signals a slot number collision at creation.
type DuplicateNumberError struct {
	Number string
}

func (e DuplicateNumberError) Error() string {
	return "Slot with this number already exists"
}

// ValidationError signals missing or malformed input.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}
