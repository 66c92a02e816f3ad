package tzdate

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var resolutionCmp = cmp.AllowUnexported(Resolution{}, FixedOffset{}, utcZone{})

func TestResolutionKinds(t *testing.T) {
	t.Parallel()

	plus1, _ := FixedEast(3600)
	plus2, _ := FixedEast(7200)

	tests := []struct {
		name string
		res  Resolution
		kind ResolutionKind
	}{
		{"none", ResolvedNone(), ResolutionNone},
		{"single", ResolvedSingle(plus1), ResolutionSingle},
		{"ambiguous", ResolvedAmbiguous(plus2, plus1), ResolutionAmbiguous},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.res.Kind())
		})
	}
}

func TestResolutionSingleCollapsesOnlyUnique(t *testing.T) {
	t.Parallel()

	plus1, _ := FixedEast(3600)
	plus2, _ := FixedEast(7200)

	state, ok := ResolvedSingle(plus1).Single()
	require.True(t, ok)
	assert.Equal(t, OffsetState(plus1), state)

	// Neither a gap nor an overlap may collapse through Single: the
	// distinction between "no instant" and "two instants" is the point.
	_, ok = ResolvedNone().Single()
	assert.False(t, ok)
	_, ok = ResolvedAmbiguous(plus2, plus1).Single()
	assert.False(t, ok)
}

func TestResolutionExplicitCollapse(t *testing.T) {
	t.Parallel()

	plus1, _ := FixedEast(3600)
	plus2, _ := FixedEast(7200)
	amb := ResolvedAmbiguous(plus2, plus1)

	earliest, ok := amb.Earliest()
	require.True(t, ok)
	assert.Equal(t, OffsetState(plus2), earliest)

	latest, ok := amb.Latest()
	require.True(t, ok)
	assert.Equal(t, OffsetState(plus1), latest)

	// Single answers both collapse directions with its one state.
	single := ResolvedSingle(plus1)
	earliest, _ = single.Earliest()
	latest, _ = single.Latest()
	assert.Equal(t, earliest, latest)

	_, ok = ResolvedNone().Earliest()
	assert.False(t, ok)
	_, ok = ResolvedNone().Latest()
	assert.False(t, ok)
}

func TestResolutionSingleEquivalence(t *testing.T) {
	t.Parallel()

	plus1, _ := FixedEast(3600)
	if diff := cmp.Diff(ResolvedSingle(plus1), ResolvedAmbiguous(plus1, plus1), resolutionCmp); diff == "" {
		t.Error("Single and a degenerate Ambiguous must stay distinct outcomes")
	}
	if diff := cmp.Diff(ResolvedSingle(plus1), ResolvedSingle(plus1), resolutionCmp); diff != "" {
		t.Errorf("identical Single resolutions differ (-want +got):\n%s", diff)
	}
}

func TestResolutionString(t *testing.T) {
	t.Parallel()

	plus1, _ := FixedEast(3600)
	plus2, _ := FixedEast(7200)

	assert.Equal(t, "None", ResolvedNone().String())
	assert.Equal(t, "Single(+01:00)", ResolvedSingle(plus1).String())
	assert.Equal(t, "Ambiguous(+02:00, +01:00)", ResolvedAmbiguous(plus2, plus1).String())
	assert.Equal(t, "Single", ResolutionSingle.String())
	assert.Equal(t, "ResolutionKind(7)", ResolutionKind(7).String())
}

func TestDateFromLocalCollapsesSingle(t *testing.T) {
	t.Parallel()

	jst, _ := FixedEast(9 * 3600)
	nd := MustNaiveDate(2024, time.January, 1)

	d, ok := DateFromLocal(jst, nd)
	require.True(t, ok)
	assert.True(t, d.NaiveLocal().Equal(nd))
	assert.Equal(t, OffsetState(jst), d.Offset())
}

func TestYMD(t *testing.T) {
	t.Parallel()

	d, ok := YMD(UTC, 2012, time.February, 29)
	require.True(t, ok)
	assert.Equal(t, "2012-02-29Z", d.String())

	_, ok = YMD(UTC, 2013, time.February, 29)
	assert.False(t, ok, "nonexistent calendar date must not resolve")

	assert.Panics(t, func() { MustYMD(UTC, 2013, time.February, 29) })
}
