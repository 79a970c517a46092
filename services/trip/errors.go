package trip

import (
	"errors"
	"fmt"
)

var (
	// ErrTripNotFound covers both missing trips and trips owned by someone else.
	ErrTripNotFound     = errors.New("trip not found")
	ErrStopNotFound     = errors.New("stop not found")
	ErrInvalidTrip      = errors.New("invalid trip")
	ErrInvalidStopOrder = errors.New("stop order must list every stop of the trip exactly once")
	ErrGenerationOff    = errors.New("itinerary generation is not available")
)

// ValidationError describes a rejected field. It matches ErrInvalidTrip.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidTrip
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
