package expand

import (
	"testing"

	"github.com/katalvlaran/bitpath/core"
)

// TestCanonicalSuccessors_CardinalArrivalForcesBothFlanks exercises the
// East-arrival case where both the northwest and southwest diagonals are
// blocked: the forced neighbours are the north and south cardinals, with
// neither forward diagonal opened since east itself stays obstructed.
func TestCanonicalSuccessors_CardinalArrivalForcesBothFlanks(t *testing.T) {
	obstructions := core.East.Bit() | core.West.Bit() | core.NorthWest.Bit() | core.SouthWest.Bit()
	got := canonicalSuccessors(obstructions, core.East, true)

	want := core.North.Bit() | core.South.Bit()
	if got != want {
		t.Fatalf("canonicalSuccessors = %v, want %v (north and south forced, no diagonals)", got, want)
	}
}

// TestCanonicalSuccessors_DiagonalArrivalGatesOnObstruction confirms a
// diagonal arrival only continues onto its cardinal components when they
// are themselves unobstructed, and only continues diagonally when the
// diagonal cell and both its flanks are clear.
func TestCanonicalSuccessors_DiagonalArrivalGatesOnObstruction(t *testing.T) {
	// North blocked: the diagonal arrival must not offer it as a successor.
	obstructions := core.North.Bit()
	got := canonicalSuccessors(obstructions, core.NorthWest, true)

	want := core.West.Bit() // North excluded; NorthWest excluded since North is one of its flanks
	if got != want {
		t.Fatalf("canonicalSuccessors = %v, want %v", got, want)
	}
}

// TestCanonicalSuccessors_SourceExpandsOpenDirectionsOnly confirms the
// no-arrival-direction case (the search source) offers every direction
// whose own flank mask is unobstructed, rather than every direction
// unconditionally.
func TestCanonicalSuccessors_SourceExpandsOpenDirectionsOnly(t *testing.T) {
	obstructions := core.North.Bit()
	got := canonicalSuccessors(obstructions, 0, false)

	want := core.South.Bit() | core.West.Bit() | core.East.Bit() |
		core.SouthWest.Bit() | core.SouthEast.Bit()
	// North itself is blocked, and both diagonals sharing a North flank
	// (NorthWest, NorthEast) are pruned since their masks include North.
	if got != want {
		t.Fatalf("canonicalSuccessors = %v, want %v", got, want)
	}
}
