package tables

import (
	"math/rand"
	"testing"

	"github.com/ehrlich-b/twisty/internal/cube"
	"github.com/ehrlich-b/twisty/internal/kociemba/coords"
)

// TestEdgeGroupOrientSymLookupRoundTrips checks spec property 7 for the
// EdgeGroupOrientSym family: reducing a raw coordinate and conjugating its
// symCoord's representative back by the reported conjugation always
// recovers the original raw value.
func TestEdgeGroupOrientSymLookupRoundTrips(t *testing.T) {
	lk := buildEdgeGroupOrientSymLookup()
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		raw := coords.EdgeGroupOrientRaw(rng.Intn(coords.EdgeGroupOrientRawCount))
		symCoord, conj := lk.reduce(raw)
		rep := lk.representative[symCoord]
		got := coords.ConjugateEdgeGroupOrient(coords.EdgeGroupOrientRaw(rep), int(conj))
		if got != raw {
			t.Fatalf("round trip failed for raw=%d: symCoord=%d conj=%d rep=%d got=%d", raw, symCoord, conj, rep, got)
		}
	}
}

// TestCornerPermSymLookupRoundTrips checks the same property for
// CornerPermSym over the full raw domain, plus the parity split: every raw
// value's own parity must match parityOf(symCoord), since conjugation by a
// domino symmetry never changes a permutation's parity.
func TestCornerPermSymLookupRoundTrips(t *testing.T) {
	lk := buildCornerPermSymLookup()
	for raw := 0; raw < coords.CornerPermRawCount; raw++ {
		symCoord, conj := lk.reduce(coords.CornerPermRaw(raw))
		rep := lk.representative[symCoord]
		got := coords.ConjugateCornerPerm(coords.CornerPermRaw(rep), int(conj))
		if uint32(got) != uint32(raw) {
			t.Fatalf("round trip failed for raw=%d: symCoord=%d conj=%d rep=%d got=%d", raw, symCoord, conj, rep, got)
		}
		if want := raw % 2; lk.parityOf(symCoord) != want {
			t.Fatalf("parity mismatch for raw=%d: symCoord=%d parityOf=%d want=%d", raw, symCoord, lk.parityOf(symCoord), want)
		}
	}
}

// TestEdgeGroupOrientStabilizers checks spec property 8: every conjugation
// GetAllStabilizingConjugations reports for a sym-coord genuinely fixes
// that sym-coord's representative, the identity symmetry (index 0) is
// always among them, and the stabilizer's size divides the 16-element
// domino group's order.
func TestEdgeGroupOrientStabilizers(t *testing.T) {
	lk := buildEdgeGroupOrientSymLookup()
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 500; i++ {
		symCoord := uint32(rng.Intn(lk.count()))
		rep := lk.representative[symCoord]
		stab := lk.GetAllStabilizingConjugations(symCoord)
		assertStabilizer(t, stab, rep, func(raw, s uint32) uint32 {
			return uint32(coords.ConjugateEdgeGroupOrient(coords.EdgeGroupOrientRaw(raw), int(s)))
		})
	}
}

func TestCornerPermStabilizers(t *testing.T) {
	lk := buildCornerPermSymLookup()
	for symCoord := 0; symCoord < lk.count(); symCoord++ {
		rep := lk.representative[symCoord]
		stab := lk.GetAllStabilizingConjugations(uint32(symCoord))
		assertStabilizer(t, stab, rep, func(raw, s uint32) uint32 {
			return uint32(coords.ConjugateCornerPerm(coords.CornerPermRaw(raw), int(s)))
		})
	}
}

func assertStabilizer(t *testing.T, stab []uint8, rep uint32, conjugate func(raw, s uint32) uint32) {
	t.Helper()
	foundIdentity := false
	for _, s := range stab {
		if conjugate(rep, uint32(s)) != rep {
			t.Fatalf("symmetry %d does not stabilize representative %d", s, rep)
		}
		if s == 0 {
			foundIdentity = true
		}
	}
	if !foundIdentity {
		t.Fatalf("stabilizer of %d is missing the identity symmetry", rep)
	}
	if cube.NumDominoSymmetries%len(stab) != 0 {
		t.Fatalf("stabilizer size %d does not divide group order %d", len(stab), cube.NumDominoSymmetries)
	}
}
