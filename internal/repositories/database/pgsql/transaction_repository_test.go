package pgsql

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthOfUTC(t *testing.T) {
	nyc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		name      string
		input     time.Time
		wantYear  int
		wantMonth int
	}{
		{
			name:      "utc timestamp mid-month",
			input:     time.Date(2025, 4, 15, 12, 0, 0, 0, time.UTC),
			wantYear:  2025,
			wantMonth: 4,
		},
		{
			name:      "local month boundary rolls forward in utc",
			input:     time.Date(2025, 4, 30, 21, 0, 0, 0, nyc), // 2025-05-01 01:00 UTC
			wantYear:  2025,
			wantMonth: 5,
		},
		{
			name:      "positive offset rolls back in utc",
			input:     time.Date(2025, 5, 1, 2, 0, 0, 0, time.FixedZone("UTC+6", 6*3600)),
			wantYear:  2025,
			wantMonth: 4,
		},
		{
			name:      "year boundary",
			input:     time.Date(2024, 12, 31, 19, 30, 0, 0, nyc), // 2025-01-01 00:30 UTC
			wantYear:  2025,
			wantMonth: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			year, month := monthOfUTC(tc.input)
			assert.Equal(t, tc.wantYear, year)
			assert.Equal(t, tc.wantMonth, month)
		})
	}
}
