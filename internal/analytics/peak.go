package analytics

import (
	"strconv"
	"time"
)

// Peak is the busiest hour of the day and its order count.
type Peak struct {
	Hour  int
	Count int64
}

// Label renders the hour in 12-hour form, e.g. "3pm".
func (p Peak) Label() string { return HourLabel(p.Hour) }

// Map renders the peak as {"3pm": 3}, the wire shape of the peak hour endpoint.
func (p Peak) Map() map[string]int64 {
	return map[string]int64{p.Label(): p.Count}
}

// HourLabel formats an hour 0..23 as 12am..11pm.
func HourLabel(hour int) string {
	display := hour % 12
	if display == 0 {
		display = 12
	}
	suffix := "am"
	if hour >= 12 {
		suffix = "pm"
	}
	return strconv.Itoa(display) + suffix
}

// PeakHour finds the hour of day with the most timestamps. Hours are read
// from each timestamp as stored, without converting time zones. Ties go to
// the earliest hour. ok is false when timestamps is empty.
func PeakHour(timestamps []time.Time) (peak Peak, ok bool) {
	if len(timestamps) == 0 {
		return Peak{}, false
	}
	var hours [24]int64
	for _, ts := range timestamps {
		hours[ts.Hour()]++
	}
	for h, n := range hours {
		if n > peak.Count {
			peak = Peak{Hour: h, Count: n}
		}
	}
	return peak, true
}
