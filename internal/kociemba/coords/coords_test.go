package coords

import (
	"math/rand"
	"testing"

	"github.com/ehrlich-b/twisty/internal/cube"
)

func TestCornerOrientRawRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		c := cube.Random(rng)
		co := CornerOrientRawFrom(c)
		orients := co.Orientations()
		if orients != c.CornerOrient {
			t.Fatalf("round trip mismatch: got %v, want %v", orients, c.CornerOrient)
		}
	}
}

func TestEdgeOrientRawRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 200; i++ {
		c := cube.Random(rng)
		eo := EdgeOrientRawFrom(c)
		orients := eo.Orientations()
		if orients != c.EdgeOrient {
			t.Fatalf("round trip mismatch: got %v, want %v", orients, c.EdgeOrient)
		}
	}
}

func TestEdgeGroupOrientRawSplitInverts(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		c := cube.Random(rng)
		v := EdgeGroupOrientRawFrom(c)
		group, orient := v.Split()
		if got := EdgeGroupOrientRaw(uint32(group)*EdgeOrientRawCount + uint32(orient)); got != v {
			t.Fatalf("split/rejoin mismatch: got %d, want %d", got, v)
		}
	}
}

func TestCornerPermRawParityBit(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 200; i++ {
		c := cube.Random(rng)
		v := CornerPermRawFrom(c)
		parity := c.CornerParity()
		gotParity := v&1 == 1
		if gotParity != parity {
			t.Fatalf("parity bit mismatch: coord=%d parity=%v want=%v", v, gotParity, parity)
		}
	}
}

// TestDominoConjugationComposes checks, for every raw coordinate family
// that carries a ConjugateX helper, that conjugating by a then by b always
// agrees with conjugating once by the single symmetry cube.SymCompose(a, b)
// produces -- the coordinate-space form of spec property 3
// (X.domino_conjugate(a).domino_conjugate(b) == X.domino_conjugate(a.then(b))).
func TestDominoConjugationComposes(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 50; i++ {
		c := cube.Random(rng)
		co := CornerOrientRawFrom(c)
		cp := CornerPermRawFrom(c)
		ego := EdgeGroupOrientRawFrom(c)

		for a := 0; a < cube.NumDominoSymmetries; a++ {
			for b := 0; b < cube.NumDominoSymmetries; b++ {
				composed := cube.SymCompose(a, b)

				if got, want := ConjugateCornerOrient(ConjugateCornerOrient(co, a), b), ConjugateCornerOrient(co, composed); got != want {
					t.Fatalf("CornerOrient conjugation did not compose: a=%d b=%d got=%d want=%d", a, b, got, want)
				}
				if got, want := ConjugateCornerPerm(ConjugateCornerPerm(cp, a), b), ConjugateCornerPerm(cp, composed); got != want {
					t.Fatalf("CornerPerm conjugation did not compose: a=%d b=%d got=%d want=%d", a, b, got, want)
				}
				if got, want := ConjugateEdgeGroupOrient(ConjugateEdgeGroupOrient(ego, a), b), ConjugateEdgeGroupOrient(ego, composed); got != want {
					t.Fatalf("EdgeGroupOrient conjugation did not compose: a=%d b=%d got=%d want=%d", a, b, got, want)
				}
			}
		}
	}
}

// TestConjugateUDEdgePermComposes checks the same composition property for
// UDEdgePermRaw, restricted to a cube that is already domino-reduced (the
// only state UDEdgePermRaw is meaningful for).
func TestConjugateUDEdgePermComposes(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	for i := 0; i < 50; i++ {
		var c cube.Cube
		for j := range c.CornerPerm {
			c.CornerPerm[j] = uint8(j)
		}
		p := permParam(rng)
		copy(c.EdgePerm[:8], p)
		for j := 0; j < 4; j++ {
			c.EdgePerm[8+j] = uint8(8 + j)
		}
		ud := UDEdgePermRawFrom(c)

		for a := 0; a < cube.NumDominoSymmetries; a++ {
			for b := 0; b < cube.NumDominoSymmetries; b++ {
				composed := cube.SymCompose(a, b)
				got := ConjugateUDEdgePerm(ConjugateUDEdgePerm(ud, a), b)
				want := ConjugateUDEdgePerm(ud, composed)
				if got != want {
					t.Fatalf("UDEdgePerm conjugation did not compose: a=%d b=%d got=%d want=%d", a, b, got, want)
				}
			}
		}
	}
}

func permParam(rng *rand.Rand) []uint8 {
	p := []uint8{0, 1, 2, 3, 4, 5, 6, 7}
	rng.Shuffle(len(p), func(i, j int) { p[i], p[j] = p[j], p[i] })
	return p
}

func TestUDEdgePermRawRange(t *testing.T) {
	var c cube.Cube
	for i := range c.CornerPerm {
		c.CornerPerm[i] = uint8(i)
	}
	for i := 0; i < 8; i++ {
		c.EdgePerm[i] = uint8(7 - i)
	}
	for i := 0; i < 4; i++ {
		c.EdgePerm[8+i] = uint8(8 + i)
	}
	v := UDEdgePermRawFrom(c)
	if int(v) >= UDEdgePermRawCount {
		t.Fatalf("coordinate %d out of range [0, %d)", v, UDEdgePermRawCount)
	}
	p := v.Permutation()
	for i, x := range p {
		if x != c.EdgePerm[i] {
			t.Fatalf("permutation mismatch at %d: got %d, want %d", i, x, c.EdgePerm[i])
		}
	}
}
