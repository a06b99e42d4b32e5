package meetings

import (
	"fmt"
	"sort"
	"time"

	"github.com/meinhoongagan/pharmacy-portal/models"
)

// DefaultLead is how long before its start a meeting may be joined.
const DefaultLead = 15 * time.Minute

// UpcomingLimit caps Upcoming.
const UpcomingLimit = 10

// IsActive reports whether now is within [StartTime, EndTime], both ends
// included.
func IsActive(a models.Appointment, now time.Time) bool {
	return !now.Before(a.StartTime) && !now.After(a.EndTime)
}

// IsStartingSoon reports whether now is within [StartTime-lead, StartTime).
func IsStartingSoon(a models.Appointment, now time.Time, lead time.Duration) bool {
	return !now.Before(a.StartTime.Add(-lead)) && now.Before(a.StartTime)
}

// CanJoin applies the default lead time. A meeting without a room is
// never joinable.
func CanJoin(a models.Appointment, now time.Time) bool {
	return CanJoinWithin(a, now, DefaultLead)
}

func CanJoinWithin(a models.Appointment, now time.Time, lead time.Duration) bool {
	if !a.HasRoom() {
		return false
	}
	return IsStartingSoon(a, now, lead) || IsActive(a, now)
}

// TimeUntil renders the countdown to a meeting's start.
func TimeUntil(a models.Appointment, now time.Time) string {
	if !now.Before(a.StartTime) {
		return "Meeting time passed"
	}

	diff := a.StartTime.Sub(now).Truncate(time.Minute)
	hours := int(diff / time.Hour)
	minutes := int((diff % time.Hour) / time.Minute)

	switch {
	case hours > 0:
		return fmt.Sprintf("in %d %s %dmin", hours, plural(hours, "hour"), minutes)
	case minutes > 0:
		return fmt.Sprintf("in %d %s", minutes, plural(minutes, "minute"))
	default:
		return "Starting now"
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

// CurrentActive returns the first booked appointment with a room that is
// in progress at now.
func CurrentActive(booked []models.Appointment, now time.Time) (models.Appointment, bool) {
	for _, a := range booked {
		if a.HasRoom() && IsActive(a, now) {
			return a, true
		}
	}
	return models.Appointment{}, false
}

// NextStartingSoon returns the first booked appointment with a room. It
// does not look at the time window.
func NextStartingSoon(booked []models.Appointment) (models.Appointment, bool) {
	for _, a := range booked {
		if a.HasRoom() {
			return a, true
		}
	}
	return models.Appointment{}, false
}

// Upcoming returns booked appointments with a room, earliest first, at
// most UpcomingLimit of them.
func Upcoming(booked []models.Appointment) []models.Appointment {
	out := make([]models.Appointment, 0, len(booked))
	for _, a := range booked {
		if a.HasRoom() {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})
	if len(out) > UpcomingLimit {
		out = out[:UpcomingLimit]
	}
	return out
}
