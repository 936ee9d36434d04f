package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-10-16: пятница.
func at(hour, minute int) time.Time {
	return time.Date(2026, time.October, 16, hour, minute, 0, 0, time.UTC)
}

func friday(closed bool) []ScheduleEntry {
	return []ScheduleEntry{
		{ID: "1", Day: Thursday, OpeningTime: "00:00", ClosingTime: "23:59", Active: true},
		{ID: "2", Day: Friday, OpeningTime: "09:00", ClosingTime: "18:00", Closed: closed, Active: true},
	}
}

func TestWeekdayOf(t *testing.T) {
	assert.Equal(t, Friday, WeekdayOf(at(12, 0)))
	assert.Equal(t, Sunday, WeekdayOf(at(12, 0).AddDate(0, 0, 2)))
}

func TestEvaluateHours(t *testing.T) {
	tests := []struct {
		name     string
		schedule []ScheduleEntry
		now      time.Time
		want     HoursState
	}{
		{"closing minute is inclusive", friday(false), at(18, 0), OpenNow},
		{"one minute after closing", friday(false), at(18, 1), OutsideHours},
		{"opening minute", friday(false), at(9, 0), OpenNow},
		{"before opening", friday(false), at(8, 59), OutsideHours},
		{"closed all day ignores clock", friday(true), at(12, 0), ClosedAllDay},
		{"closed all day at night", friday(true), at(23, 0), ClosedAllDay},
		{"no entry for today", friday(false)[:1], at(12, 0), OutsideHours},
		{"overnight window is empty", []ScheduleEntry{
			{Day: Friday, OpeningTime: "20:00", ClosingTime: "02:00", Active: true},
		}, at(21, 0), OutsideHours},
		{"inactive entry is ignored", []ScheduleEntry{
			{Day: Friday, OpeningTime: "00:00", ClosingTime: "23:59", Active: false},
		}, at(12, 0), OutsideHours},
		{"malformed time", []ScheduleEntry{
			{Day: Friday, OpeningTime: "nine", ClosingTime: "18:00", Active: true},
		}, at(12, 0), OutsideHours},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EvaluateHours(tt.schedule, tt.now).State)
		})
	}
}

func TestEvaluateHours_ReturnsTodayEntry(t *testing.T) {
	status := EvaluateHours(friday(false), at(10, 0))
	require.NotNil(t, status.Today)
	assert.Equal(t, "2", status.Today.ID)
	assert.True(t, status.AllowsImmediateOrder())
}

func TestParseClock(t *testing.T) {
	m, err := ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 570, m)

	m, err = ParseClock("18:00:00")
	require.NoError(t, err)
	assert.Equal(t, 1080, m)

	for _, bad := range []string{"", "9", "24:00", "10:60", "ab:cd"} {
		_, err := ParseClock(bad)
		assert.Error(t, err, bad)
	}
}

func TestHoursState_String(t *testing.T) {
	assert.Equal(t, "open_now", OpenNow.String())
	assert.Equal(t, "closed_all_day", ClosedAllDay.String())
	assert.Equal(t, "outside_hours", OutsideHours.String())
}
