package models

import (
	"time"

	"gorm.io/gorm"
)

// MeetingAttendance records a provider joining and leaving a video room.
type MeetingAttendance struct {
	gorm.Model
	SessionID      string     `json:"session_id" gorm:"index;type:varchar(36)"`
	AccountID      int        `json:"account_id" gorm:"index"`
	AppointmentKey string     `json:"appointment_key" gorm:"index"`
	RoomID         string     `json:"room_id"`
	JoinedAt       time.Time  `json:"joined_at"`
	LeftAt         *time.Time `json:"left_at"`
}

// Open reports whether the attendee has not left yet.
func (m *MeetingAttendance) Open() bool {
	return m.LeftAt == nil
}
