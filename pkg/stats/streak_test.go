package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)

func day(offset int) time.Time {
	return testNow.AddDate(0, 0, offset)
}

func TestStreakTwoConsecutiveDays(t *testing.T) {
	// entries today and yesterday, nothing the day before
	entries := []time.Time{day(0), day(-1)}
	assert.Equal(t, 2, Streak(entries, testNow))
}

func TestStreakBrokenBeforeToday(t *testing.T) {
	// nothing today or yesterday
	entries := []time.Time{day(-2), day(-3)}
	assert.Equal(t, 0, Streak(entries, testNow))
}

func TestStreakSeedsFromYesterday(t *testing.T) {
	entries := []time.Time{day(-1), day(-2), day(-3)}
	assert.Equal(t, 3, Streak(entries, testNow))
}

func TestStreakStopsAtGap(t *testing.T) {
	entries := []time.Time{day(0), day(-1), day(-3), day(-4)}
	assert.Equal(t, 2, Streak(entries, testNow))
}

func TestStreakDistinctDates(t *testing.T) {
	// several entries on the same day count once
	entries := []time.Time{
		day(0),
		day(0).Add(-2 * time.Hour),
		day(-1),
		day(-1).Add(-5 * time.Hour),
	}
	assert.Equal(t, 2, Streak(entries, testNow))
}

func TestStreakEmpty(t *testing.T) {
	assert.Equal(t, 0, Streak(nil, testNow))
}

func TestPeriodStart(t *testing.T) {
	// 2025-03-10 is a Monday
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), PeriodStart("daily", testNow))
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), PeriodStart("weekly", testNow))
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), PeriodStart("monthly", testNow))

	sunday := time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), PeriodStart("weekly", sunday))
}

func TestCountWords(t *testing.T) {
	assert.Equal(t, int64(0), CountWords(""))
	assert.Equal(t, int64(0), CountWords("   \n\t"))
	assert.Equal(t, int64(4), CountWords("today was a day"))
	assert.Equal(t, int64(3), CountWords("  spaced   out\nwords  "))
}
