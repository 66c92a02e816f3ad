package tzdate

import (
	"cmp"
	"fmt"
)

// NaiveTime is a time of day with no timezone attached, with nanosecond
// precision. A leap second is representable structurally: the nanosecond
// field may reach [1e9, 2e9), in which case the value denotes the leap
// second following the stored second (displayed as second 60). No leap
// second schedule is consulted; whether a given leap second really
// occurred is the caller's concern.
type NaiveTime struct {
	secs  uint32 // seconds from midnight, 0..86399
	nanos uint32 // 0..1999999999; >= 1e9 means a leap second
}

// NewNaiveTime returns the time of day for the given hour, minute and
// second. Returns false if any component is out of range.
func NewNaiveTime(hour, minute, sec int) (NaiveTime, bool) {
	return NaiveTimeHMSNano(hour, minute, sec, 0)
}

// NaiveTimeHMSMilli is like [NewNaiveTime] with milliseconds. The
// millisecond part may reach 1999 to represent a leap second.
func NaiveTimeHMSMilli(hour, minute, sec, milli int) (NaiveTime, bool) {
	if milli < 0 || milli >= 2000 {
		return NaiveTime{}, false
	}
	return NaiveTimeHMSNano(hour, minute, sec, milli*1e6)
}

// NaiveTimeHMSMicro is like [NewNaiveTime] with microseconds. The
// microsecond part may reach 1999999 to represent a leap second.
func NaiveTimeHMSMicro(hour, minute, sec, micro int) (NaiveTime, bool) {
	if micro < 0 || micro >= 2000000 {
		return NaiveTime{}, false
	}
	return NaiveTimeHMSNano(hour, minute, sec, micro*1e3)
}

// NaiveTimeHMSNano is like [NewNaiveTime] with nanoseconds. The nanosecond
// part may reach 1999999999 to represent a leap second.
func NaiveTimeHMSNano(hour, minute, sec, nano int) (NaiveTime, bool) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || sec < 0 || sec > 59 {
		return NaiveTime{}, false
	}
	if nano < 0 || nano >= 2e9 {
		return NaiveTime{}, false
	}
	return NaiveTime{
		secs:  uint32(hour*3600 + minute*60 + sec),
		nanos: uint32(nano),
	}, true
}

// MustNaiveTime is like [NewNaiveTime] but panics on an invalid time.
func MustNaiveTime(hour, minute, sec int) NaiveTime {
	t, ok := NewNaiveTime(hour, minute, sec)
	if !ok {
		panic(fmt.Sprintf("tzdate: invalid time %02d:%02d:%02d", hour, minute, sec))
	}
	return t
}

// Hour returns the hour, 0 through 23.
func (t NaiveTime) Hour() int { return int(t.secs) / 3600 }

// Minute returns the minute, 0 through 59.
func (t NaiveTime) Minute() int { return int(t.secs) % 3600 / 60 }

// Second returns the second, 0 through 59. During a leap second the stored
// second stays 59; see [NaiveTime.Nanosecond].
func (t NaiveTime) Second() int { return int(t.secs) % 60 }

// Nanosecond returns the nanosecond offset within the second. A value of
// 1e9 or more indicates a leap second.
func (t NaiveTime) Nanosecond() int { return int(t.nanos) }

// secondsFromMidnight ignores the leap second marker.
func (t NaiveTime) secondsFromMidnight() int64 { return int64(t.secs) }

// Equal reports whether t and other are the same time of day.
func (t NaiveTime) Equal(other NaiveTime) bool { return t == other }

// Before reports whether t is earlier in the day than other.
func (t NaiveTime) Before(other NaiveTime) bool { return t.Compare(other) < 0 }

// After reports whether t is later in the day than other.
func (t NaiveTime) After(other NaiveTime) bool { return t.Compare(other) > 0 }

// Compare returns -1, 0 or 1 ordering t against other.
func (t NaiveTime) Compare(other NaiveTime) int {
	if c := cmp.Compare(t.secs, other.secs); c != 0 {
		return c
	}
	return cmp.Compare(t.nanos, other.nanos)
}

// String renders the time as ISO 8601, e.g. "05:06:07" or "23:59:60.500"
// during a leap second. Fractional digits appear only when present, in
// groups of three.
func (t NaiveTime) String() string {
	sec := t.Second()
	frac := t.nanos
	if frac >= 1e9 {
		sec++
		frac -= 1e9
	}
	base := fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), sec)
	switch {
	case frac == 0:
		return base
	case frac%1e6 == 0:
		return fmt.Sprintf("%s.%03d", base, frac/1e6)
	case frac%1e3 == 0:
		return fmt.Sprintf("%s.%06d", base, frac/1e3)
	default:
		return fmt.Sprintf("%s.%09d", base, frac)
	}
}
