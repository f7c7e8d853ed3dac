package search

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/ehrlich-b/twisty/internal/cube"
	"github.com/ehrlich-b/twisty/internal/kociemba/tables"
)

// openTestTables builds tables in a throwaway temp directory. Table
// generation is CPU-bound and takes real wall-clock time the first time
// it runs in a given directory; these tests are intended to run in a
// suite that tolerates that, not as a fast unit test.
func openTestTables(t *testing.T) *tables.Tables {
	t.Helper()
	tbl, err := tables.Open(t.TempDir())
	if err != nil {
		t.Fatalf("tables.Open: %v", err)
	}
	t.Cleanup(func() { tbl.Close() })
	return tbl
}

func TestStreamSolvesAlreadySolved(t *testing.T) {
	tbl := openTestTables(t)
	s := StreamSolve(tbl, cube.Solved, 20, zerolog.Nop())
	sol, ok := <-s.Solutions()
	if !ok {
		t.Fatal("expected a solution for an already-solved cube")
	}
	if len(sol.Moves) != 0 {
		t.Errorf("already-solved cube should solve with 0 moves, got %d", len(sol.Moves))
	}
	s.Stop()
}

func TestStreamSolvesSexyMove(t *testing.T) {
	tbl := openTestTables(t)
	moves, err := cube.ParseScramble("R U R' U'")
	if err != nil {
		t.Fatal(err)
	}
	start := cube.Solved.ApplyAll(moves)

	s := StreamSolve(tbl, start, 20, zerolog.Nop())
	var last Solution
	for sol := range s.Solutions() {
		last = sol
	}
	if len(last.Moves) == 0 {
		t.Fatal("expected at least one solution")
	}
	result := start.ApplyAll(last.Moves)
	if !result.IsSolved() {
		t.Fatalf("reported solution does not solve the cube: %v", last.Moves)
	}
}

// TestStreamSolvesSuperflip runs the streaming driver on the standard
// superflip scramble and checks that some emitted solution is at most 20
// moves, and that every emitted solution genuinely solves the cube -- the
// concrete end-to-end scenario from spec's worked example.
func TestStreamSolvesSuperflip(t *testing.T) {
	tbl := openTestTables(t)
	moves, err := cube.ParseScramble("U R2 F B R B2 R U2 L B2 R U' D' R2 F R' L B2 U2 F2")
	if err != nil {
		t.Fatal(err)
	}
	start := cube.Solved.ApplyAll(moves)

	s := StreamSolve(tbl, start, 20, zerolog.Nop())
	bestLen := -1
	for sol := range s.Solutions() {
		result := start.ApplyAll(sol.Moves)
		if !result.IsSolved() {
			t.Fatalf("reported solution does not solve the cube: %v", sol.Moves)
		}
		bestLen = len(sol.Moves)
	}
	if bestLen < 0 {
		t.Fatal("expected at least one solution for the superflip scramble")
	}
	if bestLen > 20 {
		t.Fatalf("best solution length %d exceeds the expected bound of 20", bestLen)
	}
}

func TestPhase1ReachesDominoSubgroup(t *testing.T) {
	tbl := openTestTables(t)
	moves, err := cube.ParseScramble("R U R' U'")
	if err != nil {
		t.Fatal(err)
	}
	start := cube.Solved.ApplyAll(moves)

	found := false
	for n := 0; n <= 12 && !found; n++ {
		EnumeratePhase1(tbl, start, n, func(seq []cube.Move) bool {
			mid := start.ApplyAll(seq)
			state := newPhase1State(mid)
			if !state.isDominoReduced() {
				t.Errorf("EnumeratePhase1 returned a non-domino-reduced result: %v", seq)
			}
			found = true
			return false
		})
	}
	if !found {
		t.Fatal("expected a domino-reducing sequence within 12 moves")
	}
}
