package tzdate

import "time"

// LocationTimezone adapts a standard library *time.Location (the host
// zone, or an IANA zone loaded with time.LoadLocation) to the [Timezone]
// capability. The location's transition table supplies both directions:
// UTC-direction queries look the offset up at the instant, and
// local-direction queries classify the local value as falling in a gap,
// resolving uniquely, or falling in an overlap.
type LocationTimezone struct {
	loc *time.Location
}

// TZFromLocation wraps a location. A nil location means UTC, matching the
// time package's convention.
func TZFromLocation(loc *time.Location) LocationTimezone {
	if loc == nil {
		loc = time.UTC
	}
	return LocationTimezone{loc: loc}
}

// LocalTZ returns the host's local timezone.
func LocalTZ() LocationTimezone { return LocationTimezone{loc: time.Local} }

// Location returns the wrapped location.
func (z LocationTimezone) Location() *time.Location { return z.loc }

// locationState is the offset state produced by a LocationTimezone: the
// location plus the offset in force at one instant.
type locationState struct {
	loc  *time.Location
	secs int
}

func (s locationState) LocalMinusUTC() Duration { return Seconds(int64(s.secs)) }
func (s locationState) Timezone() Timezone { return LocationTimezone{loc: s.loc} }
func (s locationState) String() string { return formatOffset(s.secs) }

// unixOf treats the naive datetime as UTC and returns its Unix seconds.
// Leap second markers are ignored.
func unixOf(dt NaiveDateTime) int64 {
	return int64(dt.date.days)*secondsPerDay + dt.time.secondsFromMidnight()
}

func (z LocationTimezone) offsetAtUnix(unix int64) int {
	_, off := time.Unix(unix, 0).In(z.loc).Zone()
	return off
}

func (z LocationTimezone) OffsetAtDate(utc NaiveDate) OffsetState {
	return z.OffsetAtDateTime(utc.AndTime(NaiveTime{}))
}

// OffsetAtTime resolves a bare time of day against the Unix epoch day,
// since a location's offset cannot be known without a date.
func (z LocationTimezone) OffsetAtTime(utc NaiveTime) OffsetState {
	return z.OffsetAtDateTime(NaiveDate{}.AndTime(utc))
}

func (z LocationTimezone) OffsetAtDateTime(utc NaiveDateTime) OffsetState {
	return locationState{loc: z.loc, secs: z.offsetAtUnix(unixOf(utc))}
}

// ResolveLocalDate classifies the local date through its local midnight.
// A date whose midnight was skipped by a transition resolves as a gap.
func (z LocationTimezone) ResolveLocalDate(local NaiveDate) Resolution {
	return z.ResolveLocalDateTime(local.AndTime(NaiveTime{}))
}

func (z LocationTimezone) ResolveLocalTime(local NaiveTime) Resolution {
	return z.ResolveLocalDateTime(NaiveDate{}.AndTime(local))
}

// ResolveLocalDateTime classifies a local datetime against the location's
// transition structure. Offsets in force within a day on either side of
// the candidate are tried; an offset o is a genuine mapping when the
// instant local-o maps back to local under the location. Zero, one or two
// survivors yield the gap, unique and overlap outcomes. Transitions larger
// than one day are not classified; no real tzdata zone has one.
func (z LocationTimezone) ResolveLocalDateTime(local NaiveDateTime) Resolution {
	u := unixOf(local)
	probes := [3]int{
		z.offsetAtUnix(u - secondsPerDay),
		z.offsetAtUnix(u),
		z.offsetAtUnix(u + secondsPerDay),
	}
	var matched []int
	for _, off := range probes {
		if z.offsetAtUnix(u-int64(off)) != off {
			continue
		}
		dup := false
		for _, seen := range matched {
			if seen == off {
				dup = true
				break
			}
		}
		if !dup {
			matched = append(matched, off)
		}
	}
	switch len(matched) {
	case 0:
		return ResolvedNone()
	case 1:
		return ResolvedSingle(locationState{loc: z.loc, secs: matched[0]})
	default:
		// The larger offset belongs to the earlier UTC instant.
		earliest, latest := matched[0], matched[1]
		if earliest < latest {
			earliest, latest = latest, earliest
		}
		return ResolvedAmbiguous(
			locationState{loc: z.loc, secs: earliest},
			locationState{loc: z.loc, secs: latest},
		)
	}
}
