package tz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAfterToday(t *testing.T) {
	now := time.Date(2024, 3, 10, 23, 59, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start time.Time
		want  bool
	}{
		{"yesterday", now.AddDate(0, 0, -1), false},
		{"earlier today", time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), false},
		{"later today", time.Date(2024, 3, 10, 23, 59, 59, 0, time.UTC), false},
		{"tomorrow midnight", time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), true},
		{"next month", time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, AfterToday(tt.start, now))
		})
	}
}

func TestAfterTodayUsesUTCCalendar(t *testing.T) {
	buenosAires := time.FixedZone("ART", -3*60*60)
	// 22:00 local on the 10th is already the 11th in UTC.
	now := time.Date(2024, 3, 10, 22, 0, 0, 0, buenosAires)
	start := time.Date(2024, 3, 11, 20, 0, 0, 0, buenosAires)

	require.False(t, AfterToday(start, now))
	require.True(t, AfterToday(start.AddDate(0, 0, 1), now))
}

func TestDate(t *testing.T) {
	got := Date(time.Date(2024, 3, 10, 15, 4, 5, 6, time.UTC))
	require.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), got)
}

func TestSystemClockIsUTC(t *testing.T) {
	require.Equal(t, time.UTC, SystemClock{}.Now().Location())
}
