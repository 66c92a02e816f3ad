package tzdate

import (
	"fmt"
	"time"
)

// OffsetState is a resolved, fixed adjustment between a UTC instant and
// its local representation, such as "+09:00" or "CEST at this moment".
// A timezone may produce different states for different instants
// (standard versus daylight time); a [Date] stores the state that applies
// to its own instant, never a live lookup.
//
// A state must be a sufficient summary of "which timezone, at which
// moment": Timezone must reconstruct a timezone that answers UTC-direction
// queries identically to the one that produced the state.
type OffsetState interface {
	// LocalMinusUTC returns the signed adjustment added to a UTC value
	// to obtain the corresponding local value.
	LocalMinusUTC() Duration

	// Timezone reconstructs the timezone this state came from.
	Timezone() Timezone

	// String renders the offset, e.g. "+09:00" or "Z".
	fmt.Stringer
}

// Timezone translates between UTC values and local values.
//
// The OffsetAt* queries are UTC-direction and must be total: every UTC
// instant has exactly one local representation under a timezone, even one
// with historical rule changes. The ResolveLocal* queries classify a local
// value against the timezone's transition structure and are tri-valued:
// a local value may not exist (clocks skipped over it), exist once, or
// exist twice (clocks fell back across it).
type Timezone interface {
	OffsetAtDate(utc NaiveDate) OffsetState
	OffsetAtTime(utc NaiveTime) OffsetState
	OffsetAtDateTime(utc NaiveDateTime) OffsetState

	ResolveLocalDate(local NaiveDate) Resolution
	ResolveLocalTime(local NaiveTime) Resolution
	ResolveLocalDateTime(local NaiveDateTime) Resolution
}

// ResolutionKind discriminates the three outcomes of a local-direction
// query.
type ResolutionKind int

const (
	// ResolutionNone means the local value falls in a gap: no UTC
	// instant maps to it.
	ResolutionNone ResolutionKind = iota
	// ResolutionSingle means exactly one UTC instant maps to the local
	// value.
	ResolutionSingle
	// ResolutionAmbiguous means two UTC instants map to the local value
	// (an overlap).
	ResolutionAmbiguous
)

func (k ResolutionKind) String() string {
	switch k {
	case ResolutionNone:
		return "None"
	case ResolutionSingle:
		return "Single"
	case ResolutionAmbiguous:
		return "Ambiguous"
	default:
		return fmt.Sprintf("ResolutionKind(%d)", int(k))
	}
}

// Resolution is the tri-state result of mapping a local value back to UTC.
// It is deliberately not a nullable state: a gap ("no instant") and an
// overlap ("two instants") are distinct outcomes, and no operation in this
// package ever picks a side of an overlap on the caller's behalf. Callers
// collapse explicitly via [Resolution.Single], [Resolution.Earliest] or
// [Resolution.Latest].
type Resolution struct {
	kind     ResolutionKind
	earliest OffsetState
	latest   OffsetState
}

// ResolvedNone returns the gap outcome.
func ResolvedNone() Resolution {
	return Resolution{kind: ResolutionNone}
}

// ResolvedSingle returns the unique outcome carrying the one state.
func ResolvedSingle(state OffsetState) Resolution {
	return Resolution{kind: ResolutionSingle, earliest: state, latest: state}
}

// ResolvedAmbiguous returns the overlap outcome. The state belonging to
// the earlier UTC instant comes first.
func ResolvedAmbiguous(earliest, latest OffsetState) Resolution {
	return Resolution{kind: ResolutionAmbiguous, earliest: earliest, latest: latest}
}

// Kind returns which of the three outcomes this is.
func (r Resolution) Kind() ResolutionKind { return r.kind }

// Single returns the state if exactly one UTC instant matched. It returns
// false for both a gap and an overlap.
func (r Resolution) Single() (OffsetState, bool) {
	if r.kind != ResolutionSingle {
		return nil, false
	}
	return r.earliest, true
}

// Earliest returns the state of the earliest matching UTC instant, if any.
func (r Resolution) Earliest() (OffsetState, bool) {
	if r.kind == ResolutionNone {
		return nil, false
	}
	return r.earliest, true
}

// Latest returns the state of the latest matching UTC instant, if any.
func (r Resolution) Latest() (OffsetState, bool) {
	if r.kind == ResolutionNone {
		return nil, false
	}
	return r.latest, true
}

func (r Resolution) String() string {
	switch r.kind {
	case ResolutionSingle:
		return fmt.Sprintf("Single(%v)", r.earliest)
	case ResolutionAmbiguous:
		return fmt.Sprintf("Ambiguous(%v, %v)", r.earliest, r.latest)
	default:
		return "None"
	}
}

// DateFromUTC returns the Date for a UTC-anchored day under tz. It cannot
// fail: UTC-direction queries are total.
func DateFromUTC(tz Timezone, utc NaiveDate) Date {
	return FromUTC(utc, tz.OffsetAtDate(utc))
}

// DateTimeFromUTC returns the DateTime for a UTC-anchored datetime under
// tz. It cannot fail.
func DateTimeFromUTC(tz Timezone, utc NaiveDateTime) DateTime {
	return DateTime{utc: utc, offset: tz.OffsetAtDateTime(utc)}
}

// DateFromLocal resolves a local calendar date under tz. Returns false if
// the local date falls in a gap or an overlap.
func DateFromLocal(tz Timezone, local NaiveDate) (Date, bool) {
	state, ok := tz.ResolveLocalDate(local).Single()
	if !ok {
		return Date{}, false
	}
	return FromUTC(local.Add(state.LocalMinusUTC().Neg()), state), true
}

// DateTimeFromLocal resolves a local datetime under tz. Returns false if
// the local datetime falls in a gap or an overlap.
func DateTimeFromLocal(tz Timezone, local NaiveDateTime) (DateTime, bool) {
	state, ok := tz.ResolveLocalDateTime(local).Single()
	if !ok {
		return DateTime{}, false
	}
	return DateTime{utc: local.Add(state.LocalMinusUTC().Neg()), offset: state}, true
}

// YMD resolves a local year, month and day under tz. Returns false for an
// invalid calendar date or one that falls in a gap or an overlap.
func YMD(tz Timezone, year int, month time.Month, day int) (Date, bool) {
	nd, ok := NewNaiveDate(year, month, day)
	if !ok {
		return Date{}, false
	}
	return DateFromLocal(tz, nd)
}

// MustYMD is like [YMD] but panics on failure.
func MustYMD(tz Timezone, year int, month time.Month, day int) Date {
	d, ok := YMD(tz, year, month, day)
	if !ok {
		panic(fmt.Sprintf("tzdate: invalid or unresolvable local date %d-%02d-%02d", year, month, day))
	}
	return d
}
