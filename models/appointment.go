package models

import (
	"strconv"
	"time"
)

// Appointment is the unified shape produced from both the regular
// availability source and the care-package source.
type Appointment struct {
	ID              int       `json:"id"`
	ProviderID      int       `json:"providerId"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	IsBooked        bool      `json:"isBooked"`
	UserEmail       string    `json:"userEmail,omitempty"`
	RoomID          string    `json:"roomId,omitempty"`
	IsCarePackage   bool      `json:"isCarePackage"`
	CarePackageID   *int      `json:"carePackageId,omitempty"`
	CarePackageName string    `json:"carePackageName,omitempty"`
	UserNote        string    `json:"userNote,omitempty"`
	DoctorNote      string    `json:"doctorNote,omitempty"`
}

// Source names the subsystem an appointment came from.
func (a Appointment) Source() string {
	if a.IsCarePackage {
		return "care"
	}
	return "regular"
}

// Key identifies an appointment across both sources; IDs are only
// unique within their own source.
func (a Appointment) Key() string {
	return a.Source() + ":" + strconv.Itoa(a.ID)
}

// HasRoom reports whether a video room was provisioned.
func (a Appointment) HasRoom() bool {
	return a.RoomID != ""
}

// Available is true for unbooked regular slots.
func (a Appointment) Available() bool {
	return !a.IsBooked
}
