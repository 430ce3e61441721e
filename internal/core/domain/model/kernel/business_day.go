package kernel

import (
	"time"

	"tableorder/internal/pkg/errs"
)

// BusinessDay is the half-open interval [Start, End) of one calendar day in
// the restaurant's timezone. Dashboard counters ("today's orders") use it.
type BusinessDay struct {
	start time.Time
	end   time.Time
}

// BusinessDayOf returns the calendar day in loc that contains at.
func BusinessDayOf(at time.Time, loc *time.Location) (BusinessDay, error) {
	if loc == nil {
		return BusinessDay{}, errs.NewValueIsRequiredError("location")
	}
	local := at.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return BusinessDay{start: start, end: start.AddDate(0, 0, 1)}, nil
}

func (d BusinessDay) Start() time.Time {
	return d.start
}

func (d BusinessDay) End() time.Time {
	return d.end
}

func (d BusinessDay) Contains(t time.Time) bool {
	return !t.Before(d.start) && t.Before(d.end)
}

// Date formats the day as YYYY-MM-DD.
func (d BusinessDay) Date() string {
	return d.start.Format(time.DateOnly)
}

func (d BusinessDay) Validate() error {
	if d.start.IsZero() || !d.end.After(d.start) {
		return errs.NewValueIsRequiredError("business day")
	}
	return nil
}
