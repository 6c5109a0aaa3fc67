package project

import (
	"time"
)

// Mode selects the two dates a duration is measured between.
type Mode string

const (
	StartToEnd   Mode = "start-to-end"
	StartToToday Mode = "start-to-today"
	TodayToEnd   Mode = "today-to-end"
)

// Modes returns the supported modes.
func Modes() []string {
	return []string{string(StartToEnd), string(StartToToday), string(TodayToEnd)}
}

// Duration is the breakdown of one date difference. Seconds, minutes and
// hours cover the remainder below one day; Days is the floored day count and
// months and years are derived from it.
type Duration struct {
	Seconds int64 `json:"Difference-of-Seconds"`
	Minutes int64 `json:"Difference-in-Minutes"`
	Hours   int64 `json:"Difference-in-Hours"`
	Days    int64 `json:"Difference-of-Days"`
	Months  int64 `json:"Difference-in-Months"`
	Years   int64 `json:"Difference-in-Years"`
}

const secondsPerDay = 24 * 60 * 60

// Between computes to minus from. A negative difference keeps a non-negative
// sub-day remainder and a negative day count.
func Between(from, to time.Time) Duration {
	total := int64(to.Sub(from) / time.Second)
	days := floorDiv(total, secondsPerDay)
	rest := total - days*secondsPerDay

	return Duration{
		Seconds: rest,
		Minutes: (rest / 60) % 60,
		Hours:   rest / 3600,
		Days:    days,
		Months:  floorDiv(days, 30),
		Years:   floorDiv(days, 365),
	}
}

// Span returns the dates compared by mode. today is truncated to its date.
func Span(mode Mode, start, end, today time.Time) (from, to time.Time, ok bool) {
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	switch mode {
	case StartToEnd:
		return start, end, true
	case StartToToday:
		return start, today, true
	case TodayToEnd:
		return today, end, true
	default:
		return time.Time{}, time.Time{}, false
	}
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
