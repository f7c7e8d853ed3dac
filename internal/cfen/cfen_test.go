package cfen

import (
	"testing"

	"github.com/ehrlich-b/twisty/internal/cube"
)

func TestGenerateSolvedCube(t *testing.T) {
	got := Generate(cube.Solved)
	want := "WG|W9/R9/G9/Y9/O9/B9"
	if got != want {
		t.Errorf("Generate(Solved) = %q, want %q", got, want)
	}
}

func TestParseRoundTripsSolved(t *testing.T) {
	state, err := Parse("WG|W9/R9/G9/Y9/O9/B9")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got, err := state.ToCube()
	if err != nil {
		t.Fatalf("ToCube: %v", err)
	}
	if got != cube.Solved {
		t.Errorf("round-tripped cube is not solved: %+v", got)
	}
}

func TestRoundTripScrambledCube(t *testing.T) {
	moves, err := cube.ParseScramble("R U R' U' F2 D L'")
	if err != nil {
		t.Fatal(err)
	}
	scrambled := cube.Solved.ApplyAll(moves)

	cfenStr := Generate(scrambled)
	state, err := Parse(cfenStr)
	if err != nil {
		t.Fatalf("Parse(%q): %v", cfenStr, err)
	}
	back, err := state.ToCube()
	if err != nil {
		t.Fatalf("ToCube: %v", err)
	}
	if back != scrambled {
		t.Errorf("round trip mismatch: got %+v, want %+v", back, scrambled)
	}
}

func TestMatchesCube(t *testing.T) {
	state, err := Parse("WG|W9/R9/G9/Y9/O9/B9")
	if err != nil {
		t.Fatal(err)
	}
	if !state.MatchesCube(cube.Solved) {
		t.Error("expected solved cube to match its own CFEN")
	}
	moved := cube.Solved.Apply(cube.Move{Face: cube.U, Turns: 1})
	if state.MatchesCube(moved) {
		t.Error("expected a scrambled cube not to match the solved CFEN")
	}
}

func TestValidateRejectsMalformed(t *testing.T) {
	if err := Validate("not-a-cfen-string"); err == nil {
		t.Error("expected an error for a malformed CFEN string")
	}
}
