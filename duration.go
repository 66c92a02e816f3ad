package tzdate

import "fmt"

// Duration is a signed span of time with second resolution.
//
// time.Duration tops out around 292 years, which is not enough to express
// the difference between the minimum and maximum representable dates, so
// this package carries its own span type. Offsets between UTC and local
// time are whole seconds, so no sub-second precision is needed.
type Duration struct {
	secs int64
}

const secondsPerDay = 86400

// Days returns a Duration spanning n whole days.
func Days(n int64) Duration { return Duration{secs: n * secondsPerDay} }

// Hours returns a Duration spanning n whole hours.
func Hours(n int64) Duration { return Duration{secs: n * 3600} }

// Minutes returns a Duration spanning n whole minutes.
func Minutes(n int64) Duration { return Duration{secs: n * 60} }

// Seconds returns a Duration spanning n seconds.
func Seconds(n int64) Duration { return Duration{secs: n} }

// Neg returns the negated span.
func (d Duration) Neg() Duration { return Duration{secs: -d.secs} }

// IsZero reports whether the span is empty.
func (d Duration) IsZero() bool { return d.secs == 0 }

// Equal reports whether the two spans have the same length.
func (d Duration) Equal(other Duration) bool { return d.secs == other.secs }

// NumDays returns the number of whole days in the span, truncated toward zero.
func (d Duration) NumDays() int64 { return d.secs / secondsPerDay }

// NumSeconds returns the span in seconds.
func (d Duration) NumSeconds() int64 { return d.secs }

func (d Duration) String() string {
	s := d.secs
	sign := ""
	if s < 0 {
		sign = "-"
		s = -s
	}
	days := s / secondsPerDay
	s %= secondsPerDay
	if days != 0 {
		return fmt.Sprintf("%s%dd%02dh%02dm%02ds", sign, days, s/3600, s%3600/60, s%60)
	}
	return fmt.Sprintf("%s%dh%02dm%02ds", sign, s/3600, s%3600/60, s%60)
}
