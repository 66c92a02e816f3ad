package tzdate

import "fmt"

// utcZone is the UTC timezone. It is its own offset state with a zero
// adjustment, so every query resolves trivially.
type utcZone struct{}

// UTC is the Coordinated Universal Time timezone.
var UTC utcZone

func (utcZone) LocalMinusUTC() Duration { return Duration{} }
func (utcZone) Timezone() Timezone { return UTC }
func (utcZone) String() string { return "Z" }

func (utcZone) OffsetAtDate(NaiveDate) OffsetState { return UTC }
func (utcZone) OffsetAtTime(NaiveTime) OffsetState { return UTC }
func (utcZone) OffsetAtDateTime(NaiveDateTime) OffsetState { return UTC }

func (utcZone) ResolveLocalDate(NaiveDate) Resolution { return ResolvedSingle(UTC) }
func (utcZone) ResolveLocalTime(NaiveTime) Resolution { return ResolvedSingle(UTC) }
func (utcZone) ResolveLocalDateTime(NaiveDateTime) Resolution { return ResolvedSingle(UTC) }

// FixedOffset is a timezone at a constant offset from UTC, such as "+09:00".
// A fixed offset never transitions, so it is its own offset state and its
// local-direction queries always resolve uniquely. Construct one with
// [FixedEast] or [FixedWest].
type FixedOffset struct {
	secs int // seconds east of UTC
}

// FixedEast returns a fixed timezone at the given number of seconds east
// of UTC. Returns false unless the offset is strictly within one day.
func FixedEast(secs int) (FixedOffset, bool) {
	if secs <= -secondsPerDay || secs >= secondsPerDay {
		return FixedOffset{}, false
	}
	return FixedOffset{secs: secs}, true
}

// FixedWest returns a fixed timezone at the given number of seconds west
// of UTC. Returns false unless the offset is strictly within one day.
func FixedWest(secs int) (FixedOffset, bool) {
	if secs <= -secondsPerDay || secs >= secondsPerDay {
		return FixedOffset{}, false
	}
	return FixedOffset{secs: -secs}, true
}

// MustFixedEast is like [FixedEast] but panics on an out-of-bounds offset.
func MustFixedEast(secs int) FixedOffset {
	o, ok := FixedEast(secs)
	if !ok {
		panic(fmt.Sprintf("tzdate: fixed offset %ds out of bounds", secs))
	}
	return o
}

// MustFixedWest is like [FixedWest] but panics on an out-of-bounds offset.
func MustFixedWest(secs int) FixedOffset {
	o, ok := FixedWest(secs)
	if !ok {
		panic(fmt.Sprintf("tzdate: fixed offset %ds out of bounds", secs))
	}
	return o
}

// LocalMinusUTC returns the constant adjustment.
func (o FixedOffset) LocalMinusUTC() Duration { return Seconds(int64(o.secs)) }

// Timezone returns o itself: a fixed offset is its own timezone.
func (o FixedOffset) Timezone() Timezone { return o }

func (o FixedOffset) OffsetAtDate(NaiveDate) OffsetState { return o }
func (o FixedOffset) OffsetAtTime(NaiveTime) OffsetState { return o }
func (o FixedOffset) OffsetAtDateTime(NaiveDateTime) OffsetState { return o }

func (o FixedOffset) ResolveLocalDate(NaiveDate) Resolution { return ResolvedSingle(o) }
func (o FixedOffset) ResolveLocalTime(NaiveTime) Resolution { return ResolvedSingle(o) }
func (o FixedOffset) ResolveLocalDateTime(NaiveDateTime) Resolution { return ResolvedSingle(o) }

// String renders the offset as "+HH:MM" or "-HH:MM". The hour field widens
// past two digits for offsets beyond 99 hours.
func (o FixedOffset) String() string { return formatOffset(o.secs) }

func formatOffset(secs int) string {
	sign := "+"
	if secs < 0 {
		sign = "-"
		secs = -secs
	}
	return fmt.Sprintf("%s%02d:%02d", sign, secs/3600, secs%3600/60)
}
