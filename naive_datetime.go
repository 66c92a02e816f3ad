package tzdate

// NaiveDateTime is a calendar date paired with a time of day, with no
// timezone attached. Construct one with [NaiveDate.AndTime].
type NaiveDateTime struct {
	date NaiveDate
	time NaiveTime
}

// Date returns the date component.
func (dt NaiveDateTime) Date() NaiveDate { return dt.date }

// Time returns the time-of-day component.
func (dt NaiveDateTime) Time() NaiveTime { return dt.time }

// Add returns the datetime moved by the span, rolling the date over day
// boundaries as needed. The sub-second part is untouched (spans have
// second resolution). Panics if the resulting date falls outside the
// representable range.
func (dt NaiveDateTime) Add(dur Duration) NaiveDateTime {
	total := int64(dt.date.days)*secondsPerDay + dt.time.secondsFromMidnight() + dur.NumSeconds()
	days := floorDiv(total, secondsPerDay)
	if days < int64(MinNaiveDate.days) || days > int64(MaxNaiveDate.days) {
		panic("tzdate: datetime out of range")
	}
	rem := total - days*secondsPerDay
	return NaiveDateTime{
		date: NaiveDate{days: int32(days)},
		time: NaiveTime{secs: uint32(rem), nanos: dt.time.nanos},
	}
}

// Sub returns the span from other to dt at second resolution. Leap second
// markers are ignored.
func (dt NaiveDateTime) Sub(other NaiveDateTime) Duration {
	d := int64(dt.date.days-other.date.days) * secondsPerDay
	return Seconds(d + dt.time.secondsFromMidnight() - other.time.secondsFromMidnight())
}

// Equal reports whether dt and other denote the same date and time.
func (dt NaiveDateTime) Equal(other NaiveDateTime) bool { return dt == other }

// Before reports whether dt is earlier than other.
func (dt NaiveDateTime) Before(other NaiveDateTime) bool { return dt.Compare(other) < 0 }

// After reports whether dt is later than other.
func (dt NaiveDateTime) After(other NaiveDateTime) bool { return dt.Compare(other) > 0 }

// Compare returns -1, 0 or 1 ordering dt against other.
func (dt NaiveDateTime) Compare(other NaiveDateTime) int {
	if c := dt.date.Compare(other.date); c != 0 {
		return c
	}
	return dt.time.Compare(other.time)
}

// String renders the datetime as ISO 8601, e.g. "2012-02-29T05:06:07".
func (dt NaiveDateTime) String() string {
	return dt.date.String() + "T" + dt.time.String()
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
