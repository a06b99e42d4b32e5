package timezone

import (
	"fmt"
	"math"
	"time"
)

const (
	daysPerMonth = 30.436875
	hoursPerDay  = 24
)

// relativePhrase renders target relative to now the way the dashboard's
// date library does ("in 3 hours", "2 days ago").
func relativePhrase(target, now time.Time) string {
	diff := target.Sub(now)
	future := diff > 0
	if diff < 0 {
		diff = -diff
	}

	phrase := relativeAmount(diff)
	if future {
		return "in " + phrase
	}
	return phrase + " ago"
}

func relativeAmount(d time.Duration) string {
	seconds := math.Round(d.Seconds())
	switch {
	case seconds <= 44:
		return "a few seconds"
	case seconds <= 89:
		return "a minute"
	}

	minutes := math.Round(d.Minutes())
	switch {
	case minutes <= 1:
		return "a minute"
	case minutes <= 44:
		return fmt.Sprintf("%d minutes", int(minutes))
	case minutes <= 89:
		return "an hour"
	}

	hours := math.Round(d.Hours())
	switch {
	case hours <= 1:
		return "an hour"
	case hours <= 21:
		return fmt.Sprintf("%d hours", int(hours))
	case hours <= 35:
		return "a day"
	}

	days := math.Round(d.Hours() / hoursPerDay)
	switch {
	case days <= 1:
		return "a day"
	case days <= 25:
		return fmt.Sprintf("%d days", int(days))
	case days <= 45:
		return "a month"
	}

	months := math.Round(d.Hours() / hoursPerDay / daysPerMonth)
	switch {
	case months <= 1:
		return "a month"
	case months <= 10:
		return fmt.Sprintf("%d months", int(months))
	case months <= 17:
		return "a year"
	}

	years := math.Round(d.Hours() / hoursPerDay / daysPerMonth / 12)
	if years <= 1 {
		return "a year"
	}
	return fmt.Sprintf("%d years", int(years))
}
