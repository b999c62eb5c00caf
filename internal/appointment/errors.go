package appointment

import (
	"errors"
	"fmt"
)

var (
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrInvalidStatus        = errors.New("invalid appointment status")
	ErrInvalidChannel       = errors.New("channel must be SMS or WhatsApp")
	ErrConfirmationRequired = errors.New("deleting an appointment requires confirmation")
	ErrReminderUnavailable  = errors.New("patient or doctor for this appointment no longer exists")
)

// ConflictError carries the advisor's warning for a booking that was not saved.
type ConflictError struct {
	Warning string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("possible scheduling conflict: %s", e.Warning)
}
