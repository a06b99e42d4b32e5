package appointments

import (
	"github.com/meinhoongagan/pharmacy-portal/models"
)

// ValidationError rejects input before any call to the backend.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidateAvailability checks a slot's time range. Ranges are never
// adjusted, only rejected.
func ValidateAvailability(in models.AvailabilityInput) error {
	if in.StartTime.IsZero() {
		return &ValidationError{Field: "startTime", Message: "Start time is required"}
	}
	if in.EndTime.IsZero() {
		return &ValidationError{Field: "endTime", Message: "End time is required"}
	}
	if !in.EndTime.After(in.StartTime) {
		return &ValidationError{Field: "endTime", Message: "End time must be after start time"}
	}
	return nil
}
