package cube

import "testing"

func apply(t *testing.T, scramble string) Cube {
	t.Helper()
	moves, err := ParseScramble(scramble)
	if err != nil {
		t.Fatalf("ParseScramble(%q): %v", scramble, err)
	}
	return Solved.ApplyAll(moves)
}

func TestSolvedIsLegal(t *testing.T) {
	if !Solved.IsLegal() {
		t.Fatal("solved cube must be legal")
	}
	if !Solved.IsSolved() {
		t.Fatal("Solved must report solved")
	}
}

func TestFaceTurnOrderFour(t *testing.T) {
	for _, f := range []Face{U, D, F, B, R, L} {
		c := Solved
		for i := 0; i < 4; i++ {
			c = c.Apply(Move{Face: f, Turns: 1})
		}
		if !c.IsSolved() {
			t.Errorf("face %s applied 4 times did not return to solved", f)
		}
	}
}

func TestSexyMoveOrderSix(t *testing.T) {
	moves, err := ParseScramble("R U R' U'")
	if err != nil {
		t.Fatal(err)
	}
	c := Solved
	for i := 0; i < 6; i++ {
		c = c.ApplyAll(moves)
	}
	if !c.IsSolved() {
		t.Fatal("(R U R' U')^6 did not return to solved")
	}
}

func TestScrambleOrder1260(t *testing.T) {
	moves, err := ParseScramble("R U2 D' B D'")
	if err != nil {
		t.Fatal(err)
	}
	c := Solved
	for i := 1; i <= 1260; i++ {
		c = c.ApplyAll(moves)
		if i < 1260 && c.IsSolved() {
			t.Fatalf("sequence returned to solved early at repetition %d", i)
		}
	}
	if !c.IsSolved() {
		t.Fatal("(R U2 D' B D')^1260 did not return to solved")
	}
}

func TestMoveInverseUndoes(t *testing.T) {
	for _, m := range AllMoves() {
		c := Solved.Apply(m).Apply(m.Inverse())
		if !c.IsSolved() {
			t.Errorf("move %s followed by its inverse did not solve the cube", m)
		}
	}
}

func TestRURprimeUprimeStaysLegal(t *testing.T) {
	c := apply(t, "R U R' U'")
	if !c.IsLegal() {
		t.Fatal("R U R' U' must remain a legal cube state")
	}
	if c.IsSolved() {
		t.Fatal("R U R' U' must not be solved")
	}
}

func TestFaceletsRoundTrip(t *testing.T) {
	scrambles := []string{"", "R U R' U'", "R U2 D' B D'", "F2 B2 R2 L2 U2 D2"}
	for _, s := range scrambles {
		c := apply(t, s)
		back, err := FromFacelets(c.Facelets())
		if err != nil {
			t.Fatalf("FromFacelets after %q: %v", s, err)
		}
		if back != c {
			t.Errorf("facelet round trip mismatch for scramble %q", s)
		}
	}
}

func TestDominoMoveClassification(t *testing.T) {
	domino := map[string]bool{
		"U": true, "U2": true, "U'": true,
		"D": true, "D2": true, "D'": true,
		"F2": true, "B2": true, "R2": true, "L2": true,
		"F": false, "B": false, "R": false, "L": false,
		"F'": false, "B'": false, "R'": false, "L'": false,
	}
	for lit, want := range domino {
		m, err := ParseMove(lit)
		if err != nil {
			t.Fatal(err)
		}
		if got := m.IsDomino(); got != want {
			t.Errorf("IsDomino(%s) = %v, want %v", lit, got, want)
		}
	}
}

func TestPreviousAxisForbidsRedundantRepeat(t *testing.T) {
	p := AxisNone.Update(U)
	for _, m := range p.NextAxisChoices() {
		if m.Face == U {
			t.Errorf("NextAxisChoices after U should not offer another U turn, got %s", m)
		}
	}
}
