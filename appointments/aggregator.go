package appointments

import (
	"sort"
	"time"

	"github.com/meinhoongagan/pharmacy-portal/models"
)

// Partitions is the merged view of both appointment sources. Every slice
// is ordered by StartTime ascending.
type Partitions struct {
	All       []models.Appointment
	Booked    []models.Appointment
	Available []models.Appointment
	Weekly    []models.Appointment
}

// Aggregate merges regular and care-package appointments, sorts them by
// start instant and partitions them. Equal start times keep concatenation
// order (regular before care-package). now and loc only decide the week.
func Aggregate(regular, carePackage []models.Appointment, now time.Time, loc *time.Location) Partitions {
	all := make([]models.Appointment, 0, len(regular)+len(carePackage))
	for _, a := range regular {
		a.IsCarePackage = false
		all = append(all, a)
	}
	all = append(all, carePackage...)

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].StartTime.Before(all[j].StartTime)
	})

	p := Partitions{
		All:       all,
		Booked:    make([]models.Appointment, 0, len(all)),
		Available: make([]models.Appointment, 0),
		Weekly:    make([]models.Appointment, 0),
	}

	weekStart, weekEnd := WeekBounds(now, loc)
	for _, a := range all {
		if a.Available() {
			p.Available = append(p.Available, a)
		} else {
			p.Booked = append(p.Booked, a)
		}
		if !a.StartTime.Before(weekStart) && !a.StartTime.After(weekEnd) {
			p.Weekly = append(p.Weekly, a)
		}
	}
	return p
}

// WeekBounds returns Monday 00:00 and the last instant of the following
// Sunday in loc. Monday is taken as the calendar week's Sunday plus one
// day, so on a Sunday the bounds cover the week that starts tomorrow.
func WeekBounds(now time.Time, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	sunday := time.Date(local.Year(), local.Month(), local.Day()-int(local.Weekday()), 0, 0, 0, 0, loc)
	monday := sunday.AddDate(0, 0, 1)
	end := monday.AddDate(0, 0, 7).Add(-time.Nanosecond)
	return monday, end
}
