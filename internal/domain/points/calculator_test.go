package points

import (
	"testing"

	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/performance"
	"github.com/Morvin-Ian/kenyan-fantasy-league-sub000/internal/domain/player"
)

func TestFull_PositionWeights(t *testing.T) {
	t.Parallel()

	scored := performance.Counters{MinutesPlayed: 90, Goals: 1}
	cases := []struct {
		position player.Position
		want     int
	}{
		{player.PositionGoalkeeper, 8},
		{player.PositionDefender, 8},
		{player.PositionMidfielder, 7},
		{player.PositionForward, 6},
	}
	for _, tc := range cases {
		if got := Full(scored, tc.position, false); got != tc.want {
			t.Fatalf("position %s: got %d, want %d", tc.position, got, tc.want)
		}
	}
}

func TestFull_CleanSheetAndSaves(t *testing.T) {
	t.Parallel()

	keeper := performance.Counters{MinutesPlayed: 90, CleanSheets: 1, Saves: 7}
	// 1 appearance + 1 sixty-minute + 4 clean sheet + 2 for 7 saves.
	if got := Full(keeper, player.PositionGoalkeeper, false); got != 8 {
		t.Fatalf("keeper points: got %d, want 8", got)
	}

	mid := performance.Counters{MinutesPlayed: 75, CleanSheets: 1}
	if got := Full(mid, player.PositionMidfielder, false); got != 3 {
		t.Fatalf("midfielder clean sheet points: got %d, want 3", got)
	}

	fwd := performance.Counters{MinutesPlayed: 75, CleanSheets: 1}
	if got := Full(fwd, player.PositionForward, false); got != 2 {
		t.Fatalf("forward clean sheet points: got %d, want 2", got)
	}
}

func TestFull_Deductions(t *testing.T) {
	t.Parallel()

	c := performance.Counters{
		MinutesPlayed:   90,
		OwnGoals:        1,
		PenaltiesMissed: 1,
		YellowCards:     1,
		RedCards:        1,
	}
	// 2 - 2 - 2 - 1 - 3 = -6
	if got := Full(c, player.PositionForward, false); got != -6 {
		t.Fatalf("deductions: got %d, want -6", got)
	}
}

func TestFull_CaptainDoubles(t *testing.T) {
	t.Parallel()

	c := performance.Counters{MinutesPlayed: 90, Goals: 2, CleanSheets: 1}
	base := Full(c, player.PositionMidfielder, false)
	if base != 13 {
		t.Fatalf("base points: got %d, want 13", base)
	}
	if got := Full(c, player.PositionMidfielder, true); got != 26 {
		t.Fatalf("captain points: got %d, want 26", got)
	}
}

func TestIncremental_EqualsFullFromZeroSnapshot(t *testing.T) {
	t.Parallel()

	snapshots := []performance.Counters{
		{},
		{MinutesPlayed: 30},
		{MinutesPlayed: 90, Goals: 2, Assists: 1, CleanSheets: 1},
		{MinutesPlayed: 90, Saves: 8, PenaltiesSaved: 1},
		{MinutesPlayed: 45, YellowCards: 1, OwnGoals: 1, PenaltiesMissed: 2, RedCards: 1},
	}
	for _, snapshot := range snapshots {
		for pos := range player.AllPositions {
			full := Full(snapshot, pos, false)
			incr := Incremental(snapshot, performance.Counters{}, pos, false)
			if full != incr {
				t.Fatalf("pos %s snapshot %+v: full=%d incremental=%d", pos, snapshot, full, incr)
			}
		}
	}
}

func TestIncremental_EqualsFullDifference(t *testing.T) {
	t.Parallel()

	pairs := []struct {
		old, new performance.Counters
	}{
		{
			old: performance.Counters{MinutesPlayed: 10, Goals: 1},
			new: performance.Counters{MinutesPlayed: 90, Goals: 2, CleanSheets: 1},
		},
		{
			old: performance.Counters{MinutesPlayed: 90, Saves: 2},
			new: performance.Counters{MinutesPlayed: 90, Saves: 7, PenaltiesSaved: 1},
		},
		{
			// Substitution correction lowering minutes below both thresholds.
			old: performance.Counters{MinutesPlayed: 90},
			new: performance.Counters{MinutesPlayed: 0},
		},
		{
			old: performance.Counters{MinutesPlayed: 58, YellowCards: 1},
			new: performance.Counters{MinutesPlayed: 90, YellowCards: 1, RedCards: 1},
		},
	}
	for _, pair := range pairs {
		for pos := range player.AllPositions {
			for _, captain := range []bool{false, true} {
				want := Full(pair.new, pos, captain) - Full(pair.old, pos, captain)
				got := Incremental(pair.new, pair.old, pos, captain)
				if got != want {
					t.Fatalf("pos %s captain=%v old=%+v new=%+v: got %d, want %d",
						pos, captain, pair.old, pair.new, got, want)
				}
			}
		}
	}
}

func TestIncremental_SavesBoundary(t *testing.T) {
	t.Parallel()

	// Two saves then a third: only the third crosses the 3-save boundary.
	old := performance.Counters{MinutesPlayed: 90, Saves: 2}
	new := performance.Counters{MinutesPlayed: 90, Saves: 3}
	if got := Incremental(new, old, player.PositionGoalkeeper, false); got != 1 {
		t.Fatalf("saves boundary: got %d, want 1", got)
	}
}
