package calendar_test

import (
	"testing"
	"time"

	"github.com/Memoyu/Mbill/internal/pkg/calendar"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func endOfDay(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 23, 59, 59, 0, time.UTC)
}

func TestMonthWindow(t *testing.T) {
	t.Parallel()

	start, end := calendar.MonthWindow(2024, time.February)
	if !start.Equal(date(2024, time.February, 1)) {
		t.Fatalf("start = %v", start)
	}
	// leap year
	if !end.Equal(endOfDay(2024, time.February, 29)) {
		t.Fatalf("end = %v", end)
	}

	_, end = calendar.MonthWindow(2023, time.February)
	if !end.Equal(endOfDay(2023, time.February, 28)) {
		t.Fatalf("non-leap end = %v", end)
	}
}

func TestDayWindow(t *testing.T) {
	t.Parallel()

	start, end := calendar.DayWindow(time.Date(2024, time.May, 7, 15, 30, 12, 0, time.UTC))
	if !start.Equal(date(2024, time.May, 7)) {
		t.Fatalf("start = %v", start)
	}
	if !end.Equal(endOfDay(2024, time.May, 7)) {
		t.Fatalf("end = %v", end)
	}
}

func TestWeeksOfMonthFourWindows(t *testing.T) {
	t.Parallel()

	// February 2021 starts on a Monday and has 28 days: exactly four
	// Monday-first calendar weeks.
	windows := calendar.WeeksOfMonth(2021, time.February)
	if len(windows) != 4 {
		t.Fatalf("expected 4 windows, got %d", len(windows))
	}
	for i, w := range windows {
		if w.Ordinal != i+1 {
			t.Fatalf("window %d has ordinal %d", i, w.Ordinal)
		}
	}
	if !windows[0].Start.Equal(date(2021, time.February, 1)) {
		t.Fatalf("first start = %v", windows[0].Start)
	}
	if !windows[3].End.Equal(endOfDay(2021, time.February, 28)) {
		t.Fatalf("last end = %v", windows[3].End)
	}
}

func TestWeeksOfMonthCoversEveryDayOnce(t *testing.T) {
	t.Parallel()

	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2021, time.February, 4},
		{2024, time.February, 5}, // leap year, starts Thursday
		{2023, time.December, 5}, // ends mid-week
		{2024, time.September, 6}, // starts Sunday
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.month.String(), func(t *testing.T) {
			windows := calendar.WeeksOfMonth(tt.year, tt.month)
			if len(windows) != tt.want {
				t.Fatalf("expected %d windows, got %d", tt.want, len(windows))
			}

			monthStart, monthEnd := calendar.MonthWindow(tt.year, tt.month)
			if !windows[0].Start.Equal(monthStart) {
				t.Fatalf("first window starts %v", windows[0].Start)
			}
			if !windows[len(windows)-1].End.Equal(monthEnd) {
				t.Fatalf("last window ends %v", windows[len(windows)-1].End)
			}

			// Contiguous and non-overlapping: each window starts the
			// second after the previous one ends.
			for i := 1; i < len(windows); i++ {
				gap := windows[i].Start.Sub(windows[i-1].End)
				if gap != time.Second {
					t.Fatalf("window %d starts %v after window %d ends", i+1, gap, i)
				}
			}

			// Middle windows span whole weeks.
			for _, w := range windows[1 : len(windows)-1] {
				if w.Start.Weekday() != time.Monday {
					t.Fatalf("window %d starts on %v", w.Ordinal, w.Start.Weekday())
				}
			}
		})
	}
}

func TestLastNMonthsOrdinalsAndRollover(t *testing.T) {
	t.Parallel()

	windows := calendar.LastNMonths(2024, time.February, 4)
	if len(windows) != 4 {
		t.Fatalf("expected 4 windows, got %d", len(windows))
	}

	wantStarts := []time.Time{
		date(2024, time.February, 1),
		date(2024, time.January, 1),
		date(2023, time.December, 1),
		date(2023, time.November, 1),
	}
	wantEnds := []time.Time{
		endOfDay(2024, time.February, 29),
		endOfDay(2024, time.January, 31),
		endOfDay(2023, time.December, 31),
		endOfDay(2023, time.November, 30),
	}

	for i, w := range windows {
		if w.Ordinal != i+1 {
			t.Fatalf("window %d has ordinal %d", i, w.Ordinal)
		}
		if !w.Start.Equal(wantStarts[i]) {
			t.Fatalf("window %d start = %v, want %v", w.Ordinal, w.Start, wantStarts[i])
		}
		if !w.End.Equal(wantEnds[i]) {
			t.Fatalf("window %d end = %v, want %v", w.Ordinal, w.End, wantEnds[i])
		}
	}
}

func TestWindowContains(t *testing.T) {
	t.Parallel()

	w := calendar.Window{
		Ordinal: 1,
		Start:   date(2024, time.May, 1),
		End:     endOfDay(2024, time.May, 7),
	}

	if !w.Contains(date(2024, time.May, 1)) {
		t.Fatal("start bound should be inclusive")
	}
	if !w.Contains(endOfDay(2024, time.May, 7)) {
		t.Fatal("end bound should be inclusive")
	}
	if w.Contains(date(2024, time.May, 8)) {
		t.Fatal("next midnight should be outside")
	}
}
