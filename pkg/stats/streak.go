package stats

import (
	"sort"
	"time"
)

// Streak returns the number of consecutive calendar days with at least one
// entry, ending at today or yesterday relative to now. A most recent entry
// older than yesterday means the streak is broken and the result is 0.
func Streak(entryTimes []time.Time, now time.Time) int {
	if len(entryTimes) == 0 {
		return 0
	}

	loc := now.Location()
	seen := make(map[string]time.Time, len(entryTimes))
	for _, t := range entryTimes {
		d := truncateToDay(t.In(loc))
		seen[d.Format(time.DateOnly)] = d
	}

	days := make([]time.Time, 0, len(seen))
	for _, d := range seen {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].After(days[j])
	})

	today := truncateToDay(now)
	yesterday := today.AddDate(0, 0, -1)

	latest := days[0]
	if !latest.Equal(today) && !latest.Equal(yesterday) {
		return 0
	}

	streak := 1
	expect := latest.AddDate(0, 0, -1)
	for _, d := range days[1:] {
		if !d.Equal(expect) {
			break
		}
		streak++
		expect = expect.AddDate(0, 0, -1)
	}

	return streak
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// PeriodStart returns the wall-clock start of the daily/weekly/monthly period
// containing now. Weeks start on Monday.
func PeriodStart(period string, now time.Time) time.Time {
	today := truncateToDay(now)
	switch period {
	case "weekly":
		offset := (int(today.Weekday()) + 6) % 7
		return today.AddDate(0, 0, -offset)
	case "monthly":
		return time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	default:
		return today
	}
}

// CountWords counts whitespace-separated tokens, the same measure used for
// goal progress and entry word counts.
func CountWords(s string) int64 {
	var (
		count   int64
		inToken bool
	)
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r':
			inToken = false
		default:
			if !inToken {
				count++
			}
			inToken = true
		}
	}
	return count
}
