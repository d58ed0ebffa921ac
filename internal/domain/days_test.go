package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		token   string
		want    time.Weekday
		wantErr bool
	}{
		{token: "monday", want: time.Monday},
		{token: "Mon", want: time.Monday},
		{token: " FRIDAY ", want: time.Friday},
		{token: "7", want: time.Sunday},
		{token: "1", want: time.Monday},
		{token: "someday", wantErr: true},
		{token: "0", wantErr: true},
		{token: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseWeekday(tt.token)
		if tt.wantErr {
			assert.Error(t, err, "token %q", tt.token)
			continue
		}
		require.NoError(t, err, "token %q", tt.token)
		assert.Equal(t, tt.want, got, "token %q", tt.token)
	}
}

func TestParseDayFilter(t *testing.T) {
	tests := []struct {
		name    string
		filter  string
		want    []time.Weekday
		wantErr bool
	}{
		{
			name:   "Should expand weekdays",
			filter: "weekdays",
			want:   []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
		},
		{
			name:   "Should expand everyday",
			filter: "everyday",
			want: []time.Weekday{time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
				time.Thursday, time.Friday, time.Saturday},
		},
		{
			name:   "Should parse a comma list",
			filter: "mon,wed,fri",
			want:   []time.Weekday{time.Monday, time.Wednesday, time.Friday},
		},
		{
			name:   "Should parse ISO numbers",
			filter: "1,3,5",
			want:   []time.Weekday{time.Monday, time.Wednesday, time.Friday},
		},
		{
			name:   "Should default an empty filter to weekdays",
			filter: "",
			want:   []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
		},
		{
			name:    "Should reject unknown tokens",
			filter:  "mon,funday",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDayFilter(tt.filter)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Len(t, got, len(tt.want))
			for _, d := range tt.want {
				assert.True(t, got[d], "missing %s", d)
			}
		})
	}
}

func TestParseDayList(t *testing.T) {
	days, err := ParseDayList([]string{"monday", "Wednesday", "monday"})
	require.NoError(t, err)
	assert.Equal(t, []time.Weekday{time.Monday, time.Wednesday}, days)

	_, err = ParseDayList(nil)
	assert.Error(t, err)

	_, err = ParseDayList([]string{"notaday"})
	assert.Error(t, err)
}
