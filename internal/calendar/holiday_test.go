package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func date(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse(dateLayout, value)
	require.NoError(t, err)
	return d
}

func TestHolidayCalendar_IsHoliday(t *testing.T) {
	h := NewHolidayCalendar(zap.NewNop())

	tests := []struct {
		name    string
		date    string
		country string
		want    bool
	}{
		{
			name:    "Should recognize new year's day in the US",
			date:    "2024-01-01",
			country: "United States",
			want:    true,
		},
		{
			name:    "Should recognize independence day in the US",
			date:    "2024-07-04",
			country: "US",
			want:    true,
		},
		{
			name:    "Should not flag an ordinary day",
			date:    "2024-03-14",
			country: "United States",
			want:    false,
		},
		{
			name:    "Should resolve country aliases",
			date:    "2024-12-25",
			country: "uk",
			want:    true,
		},
		{
			name:    "Should fall back to US tables for unsupported countries",
			date:    "2024-07-04",
			country: "Atlantis",
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, h.IsHoliday(date(t, tt.date), tt.country))
		})
	}
}

func TestHolidayCalendar_CustomHolidayOverrides(t *testing.T) {
	h := NewHolidayCalendar(zap.NewNop())

	day := date(t, "2024-03-14")
	assert.False(t, h.IsHoliday(day, "United States"))

	require.NoError(t, h.AddCustomHoliday("2024-03-14", "Company offsite"))

	assert.True(t, h.IsHoliday(day, "United States"))
	// Custom holidays apply to every country.
	assert.True(t, h.IsHoliday(day, "Germany"))

	name, ok := h.HolidayName(day, "United States")
	require.True(t, ok)
	assert.Equal(t, "Company offsite", name)
}

func TestHolidayCalendar_AddCustomHolidayInvalidDate(t *testing.T) {
	h := NewHolidayCalendar(zap.NewNop())
	assert.Error(t, h.AddCustomHoliday("03/14/2024", "bad format"))
}

func TestIsWeekend(t *testing.T) {
	assert.True(t, IsWeekend(date(t, "2024-06-08")))  // Saturday
	assert.True(t, IsWeekend(date(t, "2024-06-09")))  // Sunday
	assert.False(t, IsWeekend(date(t, "2024-06-10"))) // Monday
}

func TestHolidayCalendar_NextBusinessDay(t *testing.T) {
	h := NewHolidayCalendar(zap.NewNop())

	// Friday 2024-07-05: next business day is Monday.
	next, err := h.NextBusinessDay(date(t, "2024-07-05"), "United States")
	require.NoError(t, err)
	assert.Equal(t, "2024-07-08", next.Format(dateLayout))

	// Wednesday 2024-07-03: the 4th is a holiday, the 5th is the next
	// business day.
	next, err = h.NextBusinessDay(date(t, "2024-07-03"), "United States")
	require.NoError(t, err)
	assert.Equal(t, "2024-07-05", next.Format(dateLayout))
}
