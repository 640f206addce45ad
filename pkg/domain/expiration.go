package domain

import (
	"fmt"
	"time"
)

// ExpiringWindowDays is the inclusive number of days before expiration during
// which a service counts as expiring.
const ExpiringWindowDays = 30

// DateLayout is the wire and storage format of calendar dates.
const DateLayout = "2006-01-02"

// Expiration is the status derived from an expiration date at a given instant.
type Expiration struct {
	Status   Status
	DaysLeft int // negative once expired
	Text     string
}

// Classify derives the expiration status of a service. The difference is
// counted in whole calendar days: the expiration date as written against
// today's date in loc. A nil loc means UTC.
func Classify(expiration, now time.Time, loc *time.Location) Expiration {
	if loc == nil {
		loc = time.UTC
	}
	days := DaysBetween(now.In(loc), expiration)

	switch {
	case days < 0:
		return Expiration{Status: StatusExpired, DaysLeft: days, Text: "Expired"}
	case days <= ExpiringWindowDays:
		return Expiration{Status: StatusExpiring, DaysLeft: days, Text: fmt.Sprintf("%d days left", days)}
	default:
		return Expiration{Status: StatusActive, DaysLeft: days, Text: "Active"}
	}
}

// DaysBetween counts calendar days from the date of a to the date of b,
// each taken in its own location.
func DaysBetween(a, b time.Time) int {
	return civilDay(b) - civilDay(a)
}

func civilDay(t time.Time) int {
	y, m, d := t.Date()
	return int(time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400)
}

// ParseDate parses a YYYY-MM-DD calendar date as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	return t, nil
}

// FormatDate renders t's calendar date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
