package tzdate

import "time"

// DateTime is a calendar date and time of day under a timezone: a
// UTC-anchored [NaiveDateTime] plus the [OffsetState] that applied at
// that instant. Construct one by combining a [Date] with a time of day
// ([Date.AndTime] and friends) or with [DateTimeFromUTC] and
// [DateTimeFromLocal].
//
// Like [Date], identity is the UTC value alone; the offset only shapes
// the local presentation.
type DateTime struct {
	utc    NaiveDateTime
	offset OffsetState
}

// NaiveUTC returns the UTC-anchored datetime.
func (dt DateTime) NaiveUTC() NaiveDateTime { return dt.utc }

// NaiveLocal returns the datetime in local terms.
func (dt DateTime) NaiveLocal() NaiveDateTime { return dt.utc.Add(dt.offset.LocalMinusUTC()) }

// Date returns the date component with the same offset state.
func (dt DateTime) Date() Date { return Date{utc: dt.utc.Date(), offset: dt.offset} }

// Time returns the local time of day.
func (dt DateTime) Time() NaiveTime { return dt.NaiveLocal().Time() }

// Offset returns the stored offset state.
func (dt DateTime) Offset() OffsetState { return dt.offset }

// Timezone reconstructs the owning timezone from the stored offset state.
func (dt DateTime) Timezone() Timezone { return dt.offset.Timezone() }

// In re-expresses the same UTC instant under another timezone. It cannot
// fail; the result is Equal to dt.
func (dt DateTime) In(tz Timezone) DateTime { return DateTimeFromUTC(tz, dt.utc) }

// Hour returns the local hour.
func (dt DateTime) Hour() int { return dt.Time().Hour() }

// Minute returns the local minute.
func (dt DateTime) Minute() int { return dt.Time().Minute() }

// Second returns the local second.
func (dt DateTime) Second() int { return dt.Time().Second() }

// Nanosecond returns the nanosecond offset within the second; 1e9 or more
// indicates a leap second.
func (dt DateTime) Nanosecond() int { return dt.Time().Nanosecond() }

// Year returns the local year.
func (dt DateTime) Year() int { return dt.NaiveLocal().Date().Year() }

// Month returns the local month.
func (dt DateTime) Month() time.Month { return dt.NaiveLocal().Date().Month() }

// Day returns the local day of the month.
func (dt DateTime) Day() int { return dt.NaiveLocal().Date().Day() }

// Weekday returns the local day of the week.
func (dt DateTime) Weekday() time.Weekday { return dt.NaiveLocal().Date().Weekday() }

// Add returns the datetime moved by the span in UTC, with the offset
// state kept as-is rather than re-resolved. Panics outside the
// representable range.
func (dt DateTime) Add(dur Duration) DateTime {
	return DateTime{utc: dt.utc.Add(dur), offset: dt.offset}
}

// Sub returns the span between the two UTC-anchored datetimes. Offsets
// are irrelevant to the result.
func (dt DateTime) Sub(other DateTime) Duration { return dt.utc.Sub(other.utc) }

// Equal reports whether dt and other denote the same UTC datetime,
// ignoring the offsets entirely.
func (dt DateTime) Equal(other DateTime) bool { return dt.utc.Equal(other.utc) }

// Before reports whether dt's UTC datetime is earlier than other's.
func (dt DateTime) Before(other DateTime) bool { return dt.utc.Before(other.utc) }

// After reports whether dt's UTC datetime is later than other's.
func (dt DateTime) After(other DateTime) bool { return dt.utc.After(other.utc) }

// Compare returns -1, 0 or 1 ordering the UTC datetimes.
func (dt DateTime) Compare(other DateTime) int { return dt.utc.Compare(other.utc) }

// String renders the local datetime followed by the offset, e.g.
// "2012-02-29T05:06:07+8760:00".
func (dt DateTime) String() string {
	return dt.NaiveLocal().String() + dt.offset.String()
}
