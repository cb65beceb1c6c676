package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInstant(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		clock   string
		want    time.Time
		wantErr bool
	}{
		{name: "date only", date: "2024-03-01", want: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{name: "colon time", date: "2024-03-01", clock: "18:45", want: time.Date(2024, 3, 1, 18, 45, 0, 0, time.UTC)},
		{name: "compact time", date: "2024-03-01", clock: "0705", want: time.Date(2024, 3, 1, 7, 5, 0, 0, time.UTC)},
		{name: "seconds", date: "2024-03-01", clock: "23:59:30", want: time.Date(2024, 3, 1, 23, 59, 30, 0, time.UTC)},
		{name: "bad date", date: "03/01/2024", wantErr: true},
		{name: "bad time", date: "2024-03-01", clock: "noon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInstant(tt.date, tt.clock)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}

func TestDayDiff(t *testing.T) {
	a := time.Date(2024, 2, 28, 23, 0, 0, 0, time.UTC)
	b := time.Date(2024, 3, 1, 1, 0, 0, 0, time.UTC)

	assert.Equal(t, 2, DayDiff(a, b))
	assert.Equal(t, -2, DayDiff(b, a))
	assert.Equal(t, 0, DayDiff(a, a))
}

func TestYearAndMonthOf(t *testing.T) {
	assert.Equal(t, "2024", YearOf("2024-03-01"))
	assert.Equal(t, "", YearOf("24-3"))
	assert.Equal(t, "2024-03", MonthOf("2024-03-01"))
	assert.Equal(t, "", MonthOf("2024/03/01"))
}
