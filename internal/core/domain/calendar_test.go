package domain_test

import (
	"testing"
	"time"

	"github.com/bankcore/txn_limit_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newYorkCalendar(t *testing.T) domain.MarketCalendar {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	return domain.NewMarketCalendar(loc, 17)
}

func TestMarketCalendar_IsNonWorkingDay(t *testing.T) {
	cal := newYorkCalendar(t)

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{name: "regular Tuesday", date: time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC), want: false},
		{name: "Saturday", date: time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC), want: true},
		{name: "Sunday", date: time.Date(2025, 4, 13, 0, 0, 0, 0, time.UTC), want: true},
		{name: "Christmas", date: time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC), want: true},
		{name: "New Year's Day", date: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cal.IsNonWorkingDay(tt.date))
		})
	}
}

func TestMarketCalendar_PreviousWorkingDay(t *testing.T) {
	cal := newYorkCalendar(t)

	tests := []struct {
		name string
		date time.Time
		want time.Time
	}{
		{
			name: "Tuesday yields Monday",
			date: time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC),
			want: time.Date(2025, 4, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "Monday skips weekend to Friday",
			date: time.Date(2025, 4, 14, 0, 0, 0, 0, time.UTC),
			want: time.Date(2025, 4, 11, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "day after New Year walks over holiday",
			date: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
			want: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "day after Christmas walks over holiday",
			date: time.Date(2024, 12, 26, 0, 0, 0, 0, time.UTC),
			want: time.Date(2024, 12, 24, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cal.PreviousWorkingDay(tt.date)
			assert.True(t, got.Equal(tt.want), "PreviousWorkingDay(%s) = %s, want %s", tt.date, got, tt.want)
		})
	}
}

func TestMarketCalendar_IsAfterClose(t *testing.T) {
	cal := newYorkCalendar(t)

	// 16:59 New York is before close, 17:00 is at-or-after.
	before := time.Date(2025, 4, 15, 16, 59, 0, 0, cal.Location)
	atClose := time.Date(2025, 4, 15, 17, 0, 0, 0, cal.Location)

	assert.False(t, cal.IsAfterClose(before))
	assert.True(t, cal.IsAfterClose(atClose))

	// The cutoff is evaluated in the reference timezone regardless of the
	// instant's own location: 21:00 UTC is 17:00 in New York during DST.
	utcEvening := time.Date(2025, 4, 15, 21, 0, 0, 0, time.UTC)
	assert.True(t, cal.IsAfterClose(utcEvening))
}

func TestDateOf(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	tests := []struct {
		name string
		in   time.Time
		loc  *time.Location
		want time.Time
	}{
		{
			name: "UTC evening is still the same New York day",
			in:   time.Date(2025, 4, 15, 21, 0, 0, 0, time.UTC),
			loc:  loc,
			want: time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "UTC early morning is the previous New York day",
			in:   time.Date(2025, 4, 15, 2, 0, 0, 0, time.UTC),
			loc:  loc,
			want: time.Date(2025, 4, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "midnight UTC in UTC is a fixed point",
			in:   time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC),
			loc:  time.UTC,
			want: time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.DateOf(tt.in, tt.loc)
			assert.True(t, got.Equal(tt.want), "DateOf(%s) = %s, want %s", tt.in, got, tt.want)
		})
	}
}
