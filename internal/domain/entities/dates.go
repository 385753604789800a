package entities

import "time"

// AddMonths performs calendar-month addition with the day-of-month clamped
// to the target month's length: 2024-01-31 + 1 month = 2024-02-29. Go's
// time.AddDate normalizes overflow into the next month instead, which is not
// what warranty durations mean.
func AddMonths(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	firstOfTarget := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	if last := lastDayOfMonth(firstOfTarget); d > last {
		d = last
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), d, 0, 0, 0, 0, t.Location())
}

func lastDayOfMonth(firstOfMonth time.Time) int {
	return firstOfMonth.AddDate(0, 1, -1).Day()
}

// dateOnly truncates to midnight, keeping only the calendar date.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func today() time.Time {
	return dateOnly(time.Now())
}

// daysBetween counts whole calendar days from a to b, negative when b is
// before a. Both are compared as UTC dates so DST transitions cannot skew
// the count.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	ua := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	ub := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua) / (24 * time.Hour))
}
