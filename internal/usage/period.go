package usage

import "time"

// Limits are the monthly import allowances per identity kind.
type Limits struct {
	Guest    int
	SignedIn int
}

// DefaultLimits returns the built-in allowances.
func DefaultLimits() Limits {
	return Limits{Guest: 3, SignedIn: 20}
}

const (
	planGuest = "Guest"
	planFree  = "Free"
)

func (l Limits) usageFor(guest bool, now time.Time) Usage {
	u := Usage{Plan: planFree, Limit: l.SignedIn, ResetsAt: nextMonthStart(now)}
	if guest {
		u.Plan = planGuest
		u.Limit = l.Guest
	}
	return u
}

func nowUTC() time.Time {
	return time.Now().UTC()
}

// nextMonthStart returns midnight UTC on the first of the following month.
func nextMonthStart(now time.Time) time.Time {
	now = now.UTC()
	return time.Date(now.Year(), now.Month()+1, 1, 0, 0, 0, 0, time.UTC)
}
