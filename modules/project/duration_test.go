package project

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBetween(t *testing.T) {
	tests := []struct {
		name     string
		from, to time.Time
		want     Duration
	}{
		{
			name: "thirty days",
			from: date(2024, 1, 1),
			to:   date(2024, 1, 31),
			want: Duration{Days: 30, Months: 1},
		},
		{
			name: "same day",
			from: date(2024, 5, 5),
			to:   date(2024, 5, 5),
			want: Duration{},
		},
		{
			name: "leap year",
			from: date(2024, 1, 1),
			to:   date(2025, 1, 1),
			want: Duration{Days: 366, Months: 12, Years: 1},
		},
		{
			name: "end before start",
			from: date(2024, 1, 31),
			to:   date(2024, 1, 1),
			want: Duration{Days: -30, Months: -1, Years: -1},
		},
		{
			name: "sub-day remainder",
			from: date(2024, 1, 1),
			to:   date(2024, 1, 2).Add(3*time.Hour + 25*time.Minute + 10*time.Second),
			want: Duration{Seconds: 12310, Minutes: 25, Hours: 3, Days: 1},
		},
		{
			name: "negative sub-day keeps positive remainder",
			from: date(2024, 1, 2),
			to:   date(2024, 1, 1).Add(23 * time.Hour),
			want: Duration{Seconds: 82800, Minutes: 0, Hours: 23, Days: -1, Months: -1, Years: -1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Between(tt.from, tt.to); got != tt.want {
				t.Errorf("Between() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSpan(t *testing.T) {
	start := date(2024, 1, 1)
	end := date(2024, 12, 31)
	now := time.Date(2024, 6, 15, 17, 45, 0, 0, time.UTC)
	today := date(2024, 6, 15)

	tests := []struct {
		mode     Mode
		from, to time.Time
		ok       bool
	}{
		{StartToEnd, start, end, true},
		{StartToToday, start, today, true},
		{TodayToEnd, today, end, true},
		{Mode("sideways"), time.Time{}, time.Time{}, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			from, to, ok := Span(tt.mode, start, end, now)
			if ok != tt.ok || !from.Equal(tt.from) || !to.Equal(tt.to) {
				t.Errorf("Span(%q) = (%v, %v, %v), want (%v, %v, %v)", tt.mode, from, to, ok, tt.from, tt.to, tt.ok)
			}
		})
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct{ a, b, want int64 }{
		{7, 2, 3},
		{-7, 2, -4},
		{-6, 2, -3},
		{0, 30, 0},
		{-1, 365, -1},
	}
	for _, tt := range tests {
		if got := floorDiv(tt.a, tt.b); got != tt.want {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
