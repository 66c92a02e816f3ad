package tzdate

import (
	"testing"
	"time"
)

func ndt(year int, month time.Month, day, h, m, s int) NaiveDateTime {
	return MustNaiveDate(year, month, day).AndTime(MustNaiveTime(h, m, s))
}

func TestNaiveDateTimeComponents(t *testing.T) {
	t.Parallel()

	dt := ndt(2012, time.February, 29, 5, 6, 7)
	if !dt.Date().Equal(MustNaiveDate(2012, time.February, 29)) {
		t.Errorf("Date() = %v", dt.Date())
	}
	if !dt.Time().Equal(MustNaiveTime(5, 6, 7)) {
		t.Errorf("Time() = %v", dt.Time())
	}
}

func TestNaiveDateTimeAdd(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		dt   NaiveDateTime
		dur  Duration
		want NaiveDateTime
	}{
		{"within the day", ndt(2024, time.January, 1, 10, 0, 0), Hours(2), ndt(2024, time.January, 1, 12, 0, 0)},
		{"rolls forward", ndt(2024, time.January, 1, 23, 0, 0), Hours(2), ndt(2024, time.January, 2, 1, 0, 0)},
		{"rolls backward", ndt(2024, time.January, 1, 1, 0, 0), Hours(-2), ndt(2023, time.December, 31, 23, 0, 0)},
		{"whole days", ndt(2012, time.February, 28, 5, 6, 7), Days(2), ndt(2012, time.March, 1, 5, 6, 7)},
		{"negative across year", ndt(2024, time.January, 1, 0, 0, 0), Seconds(-1), ndt(2023, time.December, 31, 23, 59, 59)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dt.Add(tt.dur); !got.Equal(tt.want) {
				t.Errorf("Add(%v) = %v, want %v", tt.dur, got, tt.want)
			}
		})
	}
}

func TestNaiveDateTimeSub(t *testing.T) {
	t.Parallel()

	a := ndt(2024, time.January, 2, 1, 0, 0)
	b := ndt(2024, time.January, 1, 23, 0, 0)
	if got := a.Sub(b); got != Hours(2) {
		t.Errorf("Sub = %v, want 2h", got)
	}
	if got := b.Sub(a); got != Hours(-2) {
		t.Errorf("Sub = %v, want -2h", got)
	}
}

func TestNaiveDateTimeOrdering(t *testing.T) {
	t.Parallel()

	a := ndt(2024, time.January, 1, 23, 0, 0)
	b := ndt(2024, time.January, 2, 1, 0, 0)
	if !a.Before(b) || !b.After(a) || a.Compare(b) != -1 || b.Compare(a) != 1 {
		t.Error("datetimes should order by date then time")
	}

	sameDay := ndt(2024, time.January, 1, 22, 0, 0)
	if !sameDay.Before(a) {
		t.Error("same-day datetimes should order by time of day")
	}
}

func TestNaiveDateTimeString(t *testing.T) {
	t.Parallel()

	if got := ndt(2012, time.February, 29, 5, 6, 7).String(); got != "2012-02-29T05:06:07" {
		t.Errorf("String() = %q", got)
	}
}

func TestFloorDiv(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b, want int64
	}{
		{7, 2, 3},
		{-7, 2, -4},
		{-4, 2, -2},
		{0, 2, 0},
	}
	for _, tt := range tests {
		if got := floorDiv(tt.a, tt.b); got != tt.want {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
