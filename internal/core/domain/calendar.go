package domain

import "time"

// MonthDay identifies a recurring calendar holiday (same month/day every year).
type MonthDay struct {
	Month time.Month
	Day   int
}

// DefaultHolidays are the exchange holidays observed by the rate source.
func DefaultHolidays() []MonthDay {
	return []MonthDay{
		{Month: time.December, Day: 25},
		{Month: time.January, Day: 1},
	}
}

// MarketCalendar evaluates working days and the market close cutoff against a
// fixed reference timezone.
type MarketCalendar struct {
	Location  *time.Location
	CloseHour int // hour of day (reference timezone) after which today's rate is settled
	Holidays  []MonthDay
}

// NewMarketCalendar builds a calendar with the default holiday set.
func NewMarketCalendar(loc *time.Location, closeHour int) MarketCalendar {
	return MarketCalendar{
		Location:  loc,
		CloseHour: closeHour,
		Holidays:  DefaultHolidays(),
	}
}

// IsNonWorkingDay reports whether the given date is a weekend or holiday.
func (c MarketCalendar) IsNonWorkingDay(date time.Time) bool {
	if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return true
	}
	for _, h := range c.Holidays {
		if date.Month() == h.Month && date.Day() == h.Day {
			return true
		}
	}
	return false
}

// PreviousWorkingDay walks backward day by day from date-1 until a working day
// is found.
func (c MarketCalendar) PreviousWorkingDay(date time.Time) time.Time {
	candidate := date.AddDate(0, 0, -1)
	for c.IsNonWorkingDay(candidate) {
		candidate = candidate.AddDate(0, 0, -1)
	}
	return candidate
}

// IsAfterClose reports whether the given instant falls at or after the market
// close hour in the reference timezone.
func (c MarketCalendar) IsAfterClose(now time.Time) bool {
	return now.In(c.Location).Hour() >= c.CloseHour
}

// DateOf truncates an instant to its calendar date in the given timezone,
// normalized to midnight UTC so dates compare and store consistently.
func DateOf(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
