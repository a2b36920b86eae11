// Package calendar generates the day, week and month windows that bill
// aggregations bucket into. Windows carry inclusive end-of-day bounds:
// End is 23:59:59 of the last included day, computed as the start of the
// next period minus one second.
package calendar

import "time"

// Window is a time range with a 1-based ordinal. For week windows the
// ordinal counts forward from the week containing the 1st of the month;
// for month windows ordinal 1 is the most recent month.
type Window struct {
	Ordinal int
	Start   time.Time
	End     time.Time
}

// Contains reports whether t falls inside the window, bounds inclusive.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// DayWindow returns the inclusive bounds of the calendar day containing t.
func DayWindow(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1).Add(-time.Second)
}

// MonthWindow returns the inclusive bounds of the given calendar month.
func MonthWindow(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0).Add(-time.Second)
}

// YearWindow returns the inclusive bounds of the given calendar year.
func YearWindow(year int) (time.Time, time.Time) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(1, 0, 0).Add(-time.Second)
}

// WeeksOfMonth partitions a month into calendar weeks (Monday-first).
// The first window is clipped to the 1st, the last to the month's final
// day, so the windows cover every day of the month exactly once.
func WeeksOfMonth(year int, month time.Month) []Window {
	monthStart, monthEnd := MonthWindow(year, month)
	lastDay := monthEnd.Day()

	var windows []Window
	cur := monthStart
	for ordinal := 1; cur.Month() == month; ordinal++ {
		// Days remaining until the Sunday closing this calendar week.
		untilSunday := (7 - int(cur.Weekday())) % 7
		end := cur.AddDate(0, 0, untilSunday)
		if end.Day() > lastDay || end.Month() != month {
			end = time.Date(year, month, lastDay, 0, 0, 0, 0, time.UTC)
		}
		windows = append(windows, Window{
			Ordinal: ordinal,
			Start:   cur,
			End:     end.AddDate(0, 0, 1).Add(-time.Second),
		})
		cur = end.AddDate(0, 0, 1)
	}
	return windows
}

// LastNMonths returns count month windows walking backward from the
// anchor month inclusive. Ordinal 1 is the anchor, ordinal count the
// oldest. Month arithmetic rolls over year boundaries.
func LastNMonths(year int, month time.Month, count int) []Window {
	windows := make([]Window, 0, count)
	anchor := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < count; i++ {
		start := anchor.AddDate(0, -i, 0)
		windows = append(windows, Window{
			Ordinal: i + 1,
			Start:   start,
			End:     start.AddDate(0, 1, 0).Add(-time.Second),
		})
	}
	return windows
}
