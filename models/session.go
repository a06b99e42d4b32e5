package models

import (
	"time"
)

// Session is the persisted state of a signed-in account. It replaces the
// token and user-type flags the dashboard used to keep in browser storage.
type Session struct {
	ID            string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Kind          AccountKind `json:"kind" gorm:"type:varchar(16);not null"`
	AccountID     int         `json:"accountId" gorm:"index;not null"`
	Name          string      `json:"name"`
	Email         string      `json:"email"`
	UpstreamToken string      `json:"-" gorm:"not null"`
	RefreshHash   string      `json:"-"`
	ExpiresAt     time.Time   `json:"expiresAt" gorm:"index"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

// Expired reports whether the session can no longer be used at now.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
