// internal/daily/daily.go
//
// Day arithmetic for the puzzle of the day.
//   - DateKey: the UTC calendar date used as the results key.
//   - DayIndex: whole days since an epoch, reduced modulo the catalog size.

package daily

import "time"

const day = 24 * time.Hour

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// DaysSince returns floor((t - epoch) / 24h). Times before the epoch give
// negative values.
func DaysSince(t, epoch time.Time) int64 {
	d := t.Sub(epoch)
	days := int64(d / day)
	if d < 0 && d%day != 0 {
		days--
	}
	return days
}

// DayIndex returns DaysSince(t, epoch) mod n, always in [0, n).
// It returns 0 when n is not positive.
func DayIndex(t, epoch time.Time, n int) int {
	if n <= 0 {
		return 0
	}
	m := DaysSince(t, epoch) % int64(n)
	if m < 0 {
		m += int64(n)
	}
	return int(m)
}
