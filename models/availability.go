package models

import "time"

// AvailabilityRecord is a slot as returned by the backend availability API.
// Timestamps are UTC ISO-8601 strings.
type AvailabilityRecord struct {
	ID         int    `json:"id"`
	ProviderID int    `json:"providerId"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	IsBooked   bool   `json:"isBooked"`
	UserEmail  string `json:"userEmail"`
	RoomID     string `json:"roomId"`
	UserNote   string `json:"userNote"`
	DoctorNote string `json:"doctorNote"`
}

// AvailabilityInput is the payload for creating or editing a slot.
type AvailabilityInput struct {
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
	DoctorNote string    `json:"doctorNote,omitempty"`
}
