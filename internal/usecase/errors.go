package usecase

import (
	"errors"
	"fmt"
)

// Terminal request errors. Handlers translate these to HTTP statuses; none
// of them are retried.
var (
	ErrMissingFields      = errors.New("Missing required fields")
	ErrLocationRequired   = errors.New("Location is required for attendance marking")
	ErrStaffNotFound      = errors.New("Staff ID not found")
	ErrLeaveNotFound      = errors.New("Leave request not found")
	ErrLeaveDecided       = errors.New("Leave request has already been decided")
	ErrInvalidLeaveStatus = errors.New("Invalid status")
	ErrInvalidCredentials = errors.New("Invalid Credentials")
	ErrPasswordNotSet     = errors.New("Setup Required: Ask Admin to set your password")
)

// AdmissionError rejects a punch outside the office geofence. It carries
// the measured distance so an operator can judge how far off the report was.
type AdmissionError struct {
	DistanceMeters float64
}

func (e *AdmissionError) Error() string {
	return fmt.Sprintf("You are %.0fm away from the office. Attendance not marked.", e.DistanceMeters)
}
