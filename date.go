// Package tzdate provides timezone-aware calendar dates.
//
// A [Date] pairs a UTC-anchored calendar day with the offset state that
// was in force at that instant, and a [DateTime] does the same for a full
// date and time of day. The local representation is always derived, never
// stored: asking a Date for its local date adds the stored offset to the
// UTC value on the fly.
//
// Translating a local civil value back to UTC is ambiguous in general:
// clocks that spring forward skip local values (a gap) and clocks that
// fall back repeat them (an overlap). Every local-direction query
// therefore returns a tri-state [Resolution], and every operation that
// edits a date in local terms succeeds only when the edit resolves
// uniquely. Nothing in this package silently picks a side of an overlap
// or fabricates an instant inside a gap.
//
// Basic usage with a fixed offset:
//
//	jst := tzdate.MustFixedEast(9 * 60 * 60)
//	d := tzdate.MustYMD(jst, 2024, time.January, 1)
//	d.String()                       // "2024-01-01+09:00"
//	dt := d.MustAndHMS(9, 0, 0)
//	dt.NaiveUTC().String()           // "2024-01-01T00:00:00"
//
// Zones with real transitions come from the standard library:
//
//	loc, _ := time.LoadLocation("America/Los_Angeles")
//	tz := tzdate.TZFromLocation(loc)
//	d, ok := tzdate.YMD(tz, 2024, time.March, 10)
package tzdate

import (
	"fmt"
	"time"
)

// Date is a calendar date under a timezone: a UTC-anchored [NaiveDate]
// plus the [OffsetState] that applied at that instant.
//
// Construct a Date with [FromUTC] when the UTC day is known, or through a
// timezone's local-direction resolution with [YMD] or [DateFromLocal].
// Values are immutable; every mutator returns a new Date. Identity is the
// UTC day alone; see [Date.Equal].
type Date struct {
	utc    NaiveDate
	offset OffsetState
}

// MinDate and MaxDate are the extreme representable dates, UTC-anchored.
var (
	MinDate = Date{utc: MinNaiveDate, offset: UTC}
	MaxDate = Date{utc: MaxNaiveDate, offset: UTC}
)

// FromUTC returns the Date for a UTC-anchored day and an already-resolved
// offset state. Local dates must instead go through a timezone's
// local-direction resolution ([DateFromLocal], [YMD]).
func FromUTC(utc NaiveDate, offset OffsetState) Date {
	return Date{utc: utc, offset: offset}
}

// NaiveUTC returns the UTC-anchored calendar date.
func (d Date) NaiveUTC() NaiveDate { return d.utc }

// NaiveLocal returns the date in local terms: the UTC date moved by the
// stored offset.
func (d Date) NaiveLocal() NaiveDate { return d.utc.Add(d.offset.LocalMinusUTC()) }

// Offset returns the stored offset state.
func (d Date) Offset() OffsetState { return d.offset }

// Timezone reconstructs the owning timezone from the stored offset state.
func (d Date) Timezone() Timezone { return d.offset.Timezone() }

// In re-expresses the same UTC day under another timezone. It cannot
// fail: the UTC-direction query is total. Only the presentation changes;
// the result is Equal to d.
func (d Date) In(tz Timezone) Date { return DateFromUTC(tz, d.utc) }

// Succ returns the next UTC-anchored day with the offset state retained
// unchanged. Returns false at the last representable date.
func (d Date) Succ() (Date, bool) {
	utc, ok := d.utc.Succ()
	if !ok {
		return Date{}, false
	}
	return Date{utc: utc, offset: d.offset}, true
}

// MustSucc is like [Date.Succ] but panics at the last representable date.
func (d Date) MustSucc() Date {
	next, ok := d.Succ()
	if !ok {
		panic("tzdate: Succ out of range")
	}
	return next
}

// Pred returns the previous UTC-anchored day with the offset state
// retained unchanged. Returns false at the first representable date.
func (d Date) Pred() (Date, bool) {
	utc, ok := d.utc.Pred()
	if !ok {
		return Date{}, false
	}
	return Date{utc: utc, offset: d.offset}, true
}

// MustPred is like [Date.Pred] but panics at the first representable date.
func (d Date) MustPred() Date {
	prev, ok := d.Pred()
	if !ok {
		panic("tzdate: Pred out of range")
	}
	return prev
}

// Year returns the local year.
func (d Date) Year() int { return d.NaiveLocal().Year() }

// Month returns the local month.
func (d Date) Month() time.Month { return d.NaiveLocal().Month() }

// Month0 returns the zero-based local month.
func (d Date) Month0() int { return d.NaiveLocal().Month0() }

// Day returns the local day of the month.
func (d Date) Day() int { return d.NaiveLocal().Day() }

// Day0 returns the zero-based local day of the month.
func (d Date) Day0() int { return d.NaiveLocal().Day0() }

// YearDay returns the local day of the year.
func (d Date) YearDay() int { return d.NaiveLocal().YearDay() }

// YearDay0 returns the zero-based local day of the year.
func (d Date) YearDay0() int { return d.NaiveLocal().YearDay0() }

// Weekday returns the local day of the week.
func (d Date) Weekday() time.Weekday { return d.NaiveLocal().Weekday() }

// ISOWeek returns the local ISO 8601 week-based year and week number.
func (d Date) ISOWeek() (year, week int) { return d.NaiveLocal().ISOWeek() }

// mapLocal edits the derived local date and re-resolves it through the
// owning timezone. The edit fails on a calendrical range violation; the
// re-resolution fails unless the candidate maps back to exactly one UTC
// instant. An edit that lands in a gap or an overlap therefore fails even
// when calendrically valid.
func (d Date) mapLocal(f func(NaiveDate) (NaiveDate, bool)) (Date, bool) {
	local, ok := f(d.NaiveLocal())
	if !ok {
		return Date{}, false
	}
	state, ok := d.Timezone().ResolveLocalDate(local).Single()
	if !ok {
		return Date{}, false
	}
	return Date{utc: local.Add(state.LocalMinusUTC().Neg()), offset: state}, true
}

// WithYear returns the date with the local year replaced.
func (d Date) WithYear(year int) (Date, bool) {
	return d.mapLocal(func(nd NaiveDate) (NaiveDate, bool) { return nd.WithYear(year) })
}

// WithMonth returns the date with the local month replaced.
func (d Date) WithMonth(month time.Month) (Date, bool) {
	return d.mapLocal(func(nd NaiveDate) (NaiveDate, bool) { return nd.WithMonth(month) })
}

// WithMonth0 is like [Date.WithMonth] with a zero-based month.
func (d Date) WithMonth0(month0 int) (Date, bool) {
	return d.mapLocal(func(nd NaiveDate) (NaiveDate, bool) { return nd.WithMonth0(month0) })
}

// WithDay returns the date with the local day of the month replaced.
func (d Date) WithDay(day int) (Date, bool) {
	return d.mapLocal(func(nd NaiveDate) (NaiveDate, bool) { return nd.WithDay(day) })
}

// WithDay0 is like [Date.WithDay] with a zero-based day.
func (d Date) WithDay0(day0 int) (Date, bool) {
	return d.mapLocal(func(nd NaiveDate) (NaiveDate, bool) { return nd.WithDay0(day0) })
}

// WithYearDay returns the date with the local day of the year replaced.
func (d Date) WithYearDay(ordinal int) (Date, bool) {
	return d.mapLocal(func(nd NaiveDate) (NaiveDate, bool) { return nd.WithYearDay(ordinal) })
}

// WithYearDay0 is like [Date.WithYearDay] with a zero-based ordinal.
func (d Date) WithYearDay0(ordinal0 int) (Date, bool) {
	return d.mapLocal(func(nd NaiveDate) (NaiveDate, bool) { return nd.WithYearDay0(ordinal0) })
}

// AndTime combines the local date with a time of day and resolves the
// candidate local datetime through the owning timezone. Returns false if
// the candidate falls in a gap or an overlap.
func (d Date) AndTime(t NaiveTime) (DateTime, bool) {
	local := d.NaiveLocal().AndTime(t)
	state, ok := d.Timezone().ResolveLocalDateTime(local).Single()
	if !ok {
		return DateTime{}, false
	}
	return DateTime{utc: local.Add(state.LocalMinusUTC().Neg()), offset: state}, true
}

// MustAndTime is like [Date.AndTime] but panics when the local datetime
// does not resolve uniquely.
func (d Date) MustAndTime(t NaiveTime) DateTime {
	dt, ok := d.AndTime(t)
	if !ok {
		panic(fmt.Sprintf("tzdate: local datetime %vT%v does not resolve uniquely", d.NaiveLocal(), t))
	}
	return dt
}

// AndHMS combines the local date with an hour, minute and second. Returns
// false for an invalid time of day or a candidate that does not resolve
// uniquely.
func (d Date) AndHMS(hour, minute, sec int) (DateTime, bool) {
	t, ok := NewNaiveTime(hour, minute, sec)
	if !ok {
		return DateTime{}, false
	}
	return d.AndTime(t)
}

// MustAndHMS is like [Date.AndHMS] but panics on failure.
func (d Date) MustAndHMS(hour, minute, sec int) DateTime {
	dt, ok := d.AndHMS(hour, minute, sec)
	if !ok {
		panic(fmt.Sprintf("tzdate: invalid or unresolvable local time %02d:%02d:%02d", hour, minute, sec))
	}
	return dt
}

// AndHMSMilli is like [Date.AndHMS] with milliseconds. The millisecond
// part may reach 1999 to represent a leap second.
func (d Date) AndHMSMilli(hour, minute, sec, milli int) (DateTime, bool) {
	t, ok := NaiveTimeHMSMilli(hour, minute, sec, milli)
	if !ok {
		return DateTime{}, false
	}
	return d.AndTime(t)
}

// AndHMSMicro is like [Date.AndHMS] with microseconds. The microsecond
// part may reach 1999999 to represent a leap second.
func (d Date) AndHMSMicro(hour, minute, sec, micro int) (DateTime, bool) {
	t, ok := NaiveTimeHMSMicro(hour, minute, sec, micro)
	if !ok {
		return DateTime{}, false
	}
	return d.AndTime(t)
}

// AndHMSNano is like [Date.AndHMS] with nanoseconds. The nanosecond part
// may reach 1999999999 to represent a leap second.
func (d Date) AndHMSNano(hour, minute, sec, nano int) (DateTime, bool) {
	t, ok := NaiveTimeHMSNano(hour, minute, sec, nano)
	if !ok {
		return DateTime{}, false
	}
	return d.AndTime(t)
}

// Add returns the date with the whole days of the span added to the UTC
// day. The offset state is kept as-is rather than re-resolved: the stored
// state is a snapshot from construction, and moving across a real
// transition leaves it stale. Panics outside the representable range.
func (d Date) Add(dur Duration) Date {
	return Date{utc: d.utc.Add(dur), offset: d.offset}
}

// Sub returns the span between the two UTC-anchored days. The offsets of
// both dates are irrelevant to the result.
func (d Date) Sub(other Date) Duration { return d.utc.Sub(other.utc) }

// Equal reports whether d and other denote the same UTC day. The offset
// is ignored entirely: two dates on the same UTC day are equal even when
// their local representations differ. Use [Date.NaiveUTC] as a map key
// when this identity is wanted for lookups.
func (d Date) Equal(other Date) bool { return d.utc.Equal(other.utc) }

// Before reports whether d's UTC day is earlier than other's.
func (d Date) Before(other Date) bool { return d.utc.Before(other.utc) }

// After reports whether d's UTC day is later than other's.
func (d Date) After(other Date) bool { return d.utc.After(other.utc) }

// Compare returns -1, 0 or 1 ordering the UTC days.
func (d Date) Compare(other Date) int { return d.utc.Compare(other.utc) }

// String renders the local date followed by the offset, e.g.
// "2024-01-01+09:00".
func (d Date) String() string {
	return d.NaiveLocal().String() + d.offset.String()
}
