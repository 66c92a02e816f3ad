package tzdate

import (
	"cmp"
	"fmt"
	"time"
)

// NaiveDate is a calendar date in the proleptic Gregorian calendar with no
// timezone attached. It is stored as a day count from the Unix epoch, so
// values are comparable and usable as map keys. Field arithmetic is done
// through the standard library's time package, so edge cases (leap years,
// month lengths) behave exactly as time.Date does.
//
// The representable range is year -9999 through year 9999 inclusive; see
// [MinNaiveDate] and [MaxNaiveDate].
type NaiveDate struct {
	days int32
}

const (
	minYear = -9999
	maxYear = 9999
)

// MinNaiveDate and MaxNaiveDate bound the representable range.
var (
	MinNaiveDate = MustNaiveDate(minYear, time.January, 1)
	MaxNaiveDate = MustNaiveDate(maxYear, time.December, 31)
)

// NewNaiveDate returns the date for the given year, month and day.
// Returns false if the combination is not a real calendar date (for
// example April 31) or falls outside the representable range.
func NewNaiveDate(year int, month time.Month, day int) (NaiveDate, bool) {
	if year < minYear || year > maxYear {
		return NaiveDate{}, false
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	y, m, d := t.Date()
	if y != year || m != month || d != day {
		return NaiveDate{}, false
	}
	return NaiveDate{days: int32(t.Unix() / secondsPerDay)}, true
}

// NaiveDateFromOrdinal returns the date for the given year and day-of-year
// (1 through 365, or 366 in a leap year). Returns false if the ordinal does
// not exist in that year or the year is out of range.
func NaiveDateFromOrdinal(year, ordinal int) (NaiveDate, bool) {
	if year < minYear || year > maxYear || ordinal < 1 {
		return NaiveDate{}, false
	}
	t := time.Date(year, time.January, ordinal, 0, 0, 0, 0, time.UTC)
	if t.Year() != year {
		return NaiveDate{}, false
	}
	return NaiveDate{days: int32(t.Unix() / secondsPerDay)}, true
}

// MustNaiveDate is like [NewNaiveDate] but panics on an invalid date.
func MustNaiveDate(year int, month time.Month, day int) NaiveDate {
	d, ok := NewNaiveDate(year, month, day)
	if !ok {
		panic(fmt.Sprintf("tzdate: invalid date %d-%02d-%02d", year, month, day))
	}
	return d
}

// timeValue bridges to the standard library for field math. The result is
// always midnight UTC on the represented day.
func (d NaiveDate) timeValue() time.Time {
	return time.Unix(int64(d.days)*secondsPerDay, 0).UTC()
}

// Year returns the year.
func (d NaiveDate) Year() int { return d.timeValue().Year() }

// Month returns the month.
func (d NaiveDate) Month() time.Month { return d.timeValue().Month() }

// Month0 returns the zero-based month (January is 0).
func (d NaiveDate) Month0() int { return int(d.Month()) - 1 }

// Day returns the day of the month.
func (d NaiveDate) Day() int { return d.timeValue().Day() }

// Day0 returns the zero-based day of the month.
func (d NaiveDate) Day0() int { return d.Day() - 1 }

// YearDay returns the day of the year (1 through 365 or 366).
func (d NaiveDate) YearDay() int { return d.timeValue().YearDay() }

// YearDay0 returns the zero-based day of the year.
func (d NaiveDate) YearDay0() int { return d.YearDay() - 1 }

// Weekday returns the day of the week.
func (d NaiveDate) Weekday() time.Weekday { return d.timeValue().Weekday() }

// ISOWeek returns the ISO 8601 week-based year and week number.
func (d NaiveDate) ISOWeek() (year, week int) { return d.timeValue().ISOWeek() }

// WithYear returns the date with the year replaced, keeping month and day.
// Returns false if the resulting date does not exist (February 29 moved to
// a non-leap year) or the year is out of range.
func (d NaiveDate) WithYear(year int) (NaiveDate, bool) {
	return NewNaiveDate(year, d.Month(), d.Day())
}

// WithMonth returns the date with the month replaced, keeping year and day.
// Returns false for an invalid month or a day that does not exist in the
// target month.
func (d NaiveDate) WithMonth(month time.Month) (NaiveDate, bool) {
	return NewNaiveDate(d.Year(), month, d.Day())
}

// WithMonth0 is like [NaiveDate.WithMonth] with a zero-based month.
func (d NaiveDate) WithMonth0(month0 int) (NaiveDate, bool) {
	return d.WithMonth(time.Month(month0 + 1))
}

// WithDay returns the date with the day of the month replaced.
func (d NaiveDate) WithDay(day int) (NaiveDate, bool) {
	return NewNaiveDate(d.Year(), d.Month(), day)
}

// WithDay0 is like [NaiveDate.WithDay] with a zero-based day.
func (d NaiveDate) WithDay0(day0 int) (NaiveDate, bool) {
	return d.WithDay(day0 + 1)
}

// WithYearDay returns the date with the day of the year replaced.
func (d NaiveDate) WithYearDay(ordinal int) (NaiveDate, bool) {
	return NaiveDateFromOrdinal(d.Year(), ordinal)
}

// WithYearDay0 is like [NaiveDate.WithYearDay] with a zero-based ordinal.
func (d NaiveDate) WithYearDay0(ordinal0 int) (NaiveDate, bool) {
	return d.WithYearDay(ordinal0 + 1)
}

// Succ returns the next day. Returns false at [MaxNaiveDate].
func (d NaiveDate) Succ() (NaiveDate, bool) {
	if d.days >= MaxNaiveDate.days {
		return NaiveDate{}, false
	}
	return NaiveDate{days: d.days + 1}, true
}

// Pred returns the previous day. Returns false at [MinNaiveDate].
func (d NaiveDate) Pred() (NaiveDate, bool) {
	if d.days <= MinNaiveDate.days {
		return NaiveDate{}, false
	}
	return NaiveDate{days: d.days - 1}, true
}

// Add returns the date moved by the whole days of the span. Panics if the
// result falls outside the representable range.
func (d NaiveDate) Add(dur Duration) NaiveDate {
	days := int64(d.days) + dur.NumDays()
	if days < int64(MinNaiveDate.days) || days > int64(MaxNaiveDate.days) {
		panic("tzdate: date out of range")
	}
	return NaiveDate{days: int32(days)}
}

// Sub returns the span from other to d in whole days.
func (d NaiveDate) Sub(other NaiveDate) Duration {
	return Days(int64(d.days) - int64(other.days))
}

// AndTime pairs the date with a time of day.
func (d NaiveDate) AndTime(t NaiveTime) NaiveDateTime {
	return NaiveDateTime{date: d, time: t}
}

// Equal reports whether d and other are the same day.
func (d NaiveDate) Equal(other NaiveDate) bool { return d.days == other.days }

// Before reports whether d is earlier than other.
func (d NaiveDate) Before(other NaiveDate) bool { return d.days < other.days }

// After reports whether d is later than other.
func (d NaiveDate) After(other NaiveDate) bool { return d.days > other.days }

// Compare returns -1, 0 or 1 ordering d against other.
func (d NaiveDate) Compare(other NaiveDate) int { return cmp.Compare(d.days, other.days) }

// String renders the date as ISO 8601, e.g. "2012-02-29". Years outside
// 0000-9999 carry an explicit sign.
func (d NaiveDate) String() string {
	y, m, day := d.timeValue().Date()
	if y < 0 {
		return fmt.Sprintf("-%04d-%02d-%02d", -y, m, day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", y, m, day)
}
