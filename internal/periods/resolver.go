// Package periods computes which ranking dates a chart is missing.
// All period math is pure: callers supply the clock time and the stored
// dates, the resolver never touches the database.
package periods

import (
	"time"

	"github.com/wavemetrics/chartsync/internal/domain"
)

// truncateDay drops the time-of-day component, keeping the date in UTC
func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Latest returns the most recent completed period date of a chart as of now.
// Daily charts publish for the previous day. Weekly charts publish on a fixed
// weekday; the latest period is the most recent such weekday on or before
// today. Monthly charts publish for the first of the current month.
func Latest(freq domain.Frequency, weekday time.Weekday, now time.Time) time.Time {
	today := truncateDay(now)
	switch freq {
	case domain.FrequencyWeekly:
		d := today
		for d.Weekday() != weekday {
			d = d.AddDate(0, 0, -1)
		}
		return d
	case domain.FrequencyMonthly:
		return time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		return today.AddDate(0, 0, -1)
	}
}

// HorizonPeriods converts a lookback window into a period count at the
// chart's frequency: a one-year window is 365 daily, 52 weekly or 12
// monthly periods. Windows shorter than one period still cover one.
func HorizonPeriods(freq domain.Frequency, window time.Duration) int {
	var step time.Duration
	switch freq {
	case domain.FrequencyWeekly:
		step = 7 * 24 * time.Hour
	case domain.FrequencyMonthly:
		step = 30 * 24 * time.Hour
	default:
		step = 24 * time.Hour
	}

	n := int(window / step)
	if n < 1 {
		return 1
	}
	return n
}

// Expected returns the horizon most recent period dates of a chart as of
// now, ascending. A horizon below one yields a single period.
func Expected(freq domain.Frequency, weekday time.Weekday, now time.Time, horizon int) []time.Time {
	if horizon < 1 {
		horizon = 1
	}

	dates := make([]time.Time, horizon)
	d := Latest(freq, weekday, now)
	for i := horizon - 1; i >= 0; i-- {
		dates[i] = d
		d = freq.Previous(d)
	}
	return dates
}

// Missing returns the expected period dates absent from existing, ascending.
// With historical=false only the latest expected period is considered, so a
// fresh non-historical schedule fetches a single snapshot.
func Missing(freq domain.Frequency, weekday time.Weekday, now time.Time, horizon int, historical bool, existing []time.Time) []time.Time {
	if !historical {
		horizon = 1
	}

	have := make(map[time.Time]struct{}, len(existing))
	for _, d := range existing {
		have[truncateDay(d)] = struct{}{}
	}

	var missing []time.Time
	for _, d := range Expected(freq, weekday, now, horizon) {
		if _, ok := have[d]; !ok {
			missing = append(missing, d)
		}
	}
	return missing
}
