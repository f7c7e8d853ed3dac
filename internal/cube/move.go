package cube

import (
	"fmt"
	"strings"
)

// Face identifies one of the six faces a move can turn.
type Face int

const (
	U Face = iota
	D
	F
	B
	R
	L
)

var faceNames = [6]string{"U", "D", "F", "B", "R", "L"}

func (f Face) String() string { return faceNames[f] }

// Move is a single face turn: Face U with Turns=1 is "U", Turns=2 is "U2",
// Turns=3 is "U'" (three clockwise quarter turns is one counter-clockwise
// quarter turn).
type Move struct {
	Face  Face
	Turns int
}

// String renders a move in the literal syntax moves are parsed from.
func (m Move) String() string {
	switch m.Turns {
	case 1:
		return m.Face.String()
	case 2:
		return m.Face.String() + "2"
	case 3:
		return m.Face.String() + "'"
	default:
		return fmt.Sprintf("%s*%d", m.Face, m.Turns)
	}
}

// Inverse returns the move that undoes m.
func (m Move) Inverse() Move {
	return Move{Face: m.Face, Turns: 4 - m.Turns}
}

// IsDomino reports whether m belongs to the <U,D,F2,B2,R2,L2> subgroup that
// phase 1 reduces into: any U/D turn, or a half turn of F, B, R, or L.
func (m Move) IsDomino() bool {
	switch m.Face {
	case U, D:
		return true
	default:
		return m.Turns == 2
	}
}

// baseQuarterTurn gives the cubie effect of one clockwise quarter turn of
// each face, in the standard reference corner/edge layout. These values
// follow the canonical Kociemba two-phase reference cube definitions.
var baseQuarterTurn = map[Face]Cube{
	U: {
		CornerPerm: [8]uint8{uint8(UBR), uint8(URF), uint8(UFL), uint8(ULB), uint8(DFR), uint8(DLF), uint8(DBL), uint8(DRB)},
		EdgePerm:   [12]uint8{uint8(UB), uint8(UR), uint8(UF), uint8(UL), uint8(DR), uint8(DF), uint8(DL), uint8(DB), uint8(FR), uint8(FL), uint8(BL), uint8(BR)},
	},
	D: {
		CornerPerm: [8]uint8{uint8(URF), uint8(UFL), uint8(ULB), uint8(UBR), uint8(DLF), uint8(DBL), uint8(DRB), uint8(DFR)},
		EdgePerm:   [12]uint8{uint8(UR), uint8(UF), uint8(UL), uint8(UB), uint8(DF), uint8(DL), uint8(DB), uint8(DR), uint8(FR), uint8(FL), uint8(BL), uint8(BR)},
	},
	F: {
		CornerPerm:   [8]uint8{uint8(UFL), uint8(DLF), uint8(ULB), uint8(UBR), uint8(URF), uint8(DFR), uint8(DBL), uint8(DRB)},
		CornerOrient: [8]uint8{1, 2, 0, 0, 2, 1, 0, 0},
		EdgePerm:     [12]uint8{uint8(UR), uint8(FL), uint8(UL), uint8(UB), uint8(DR), uint8(FR), uint8(DL), uint8(DB), uint8(UF), uint8(DF), uint8(BL), uint8(BR)},
		EdgeOrient:   [12]uint8{0, 1, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0},
	},
	B: {
		CornerPerm:   [8]uint8{uint8(URF), uint8(UFL), uint8(UBR), uint8(DRB), uint8(DFR), uint8(DLF), uint8(ULB), uint8(DBL)},
		CornerOrient: [8]uint8{0, 0, 1, 2, 0, 0, 2, 1},
		EdgePerm:     [12]uint8{uint8(UR), uint8(UF), uint8(UL), uint8(BR), uint8(DR), uint8(DF), uint8(DL), uint8(BL), uint8(FR), uint8(FL), uint8(UB), uint8(DB)},
		EdgeOrient:   [12]uint8{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 1, 1},
	},
	R: {
		CornerPerm:   [8]uint8{uint8(DFR), uint8(UFL), uint8(ULB), uint8(URF), uint8(DRB), uint8(DLF), uint8(DBL), uint8(UBR)},
		CornerOrient: [8]uint8{2, 0, 0, 1, 1, 0, 0, 2},
		EdgePerm:     [12]uint8{uint8(FR), uint8(UF), uint8(UL), uint8(UB), uint8(BR), uint8(DF), uint8(DL), uint8(DB), uint8(DR), uint8(FL), uint8(BL), uint8(UR)},
	},
	L: {
		CornerPerm:   [8]uint8{uint8(URF), uint8(ULB), uint8(DBL), uint8(UBR), uint8(DFR), uint8(UFL), uint8(DLF), uint8(DRB)},
		CornerOrient: [8]uint8{0, 1, 2, 0, 0, 2, 1, 0},
		EdgePerm:     [12]uint8{uint8(UR), uint8(UF), uint8(BL), uint8(UB), uint8(DR), uint8(DF), uint8(FL), uint8(DB), uint8(FR), uint8(UL), uint8(DL), uint8(BR)},
	},
}

var moveCubeCache = buildMoveCubes()

func buildMoveCubes() map[Move]Cube {
	m := make(map[Move]Cube, 18)
	for _, f := range []Face{U, D, F, B, R, L} {
		q := baseQuarterTurn[f]
		m[Move{f, 1}] = q
		m[Move{f, 2}] = q.Then(q)
		m[Move{f, 3}] = q.Then(q).Then(q)
	}
	return m
}

// Cube returns the cubie effect of applying m to a solved cube.
func (m Move) Cube() Cube {
	return moveCubeCache[m]
}

// Apply returns the cube that results from turning m on c.
func (c Cube) Apply(m Move) Cube {
	return c.Then(m.Cube())
}

// ApplyAll applies a sequence of moves in order.
func (c Cube) ApplyAll(moves []Move) Cube {
	for _, m := range moves {
		c = c.Apply(m)
	}
	return c
}

// AllMoves returns the 18 face turns in a fixed, stable order: U, U2, U',
// D, D2, D', F, F2, F', B, B2, B', R, R2, R', L, L2, L'.
func AllMoves() []Move {
	moves := make([]Move, 0, 18)
	for _, f := range []Face{U, D, F, B, R, L} {
		for _, t := range []int{1, 2, 3} {
			moves = append(moves, Move{f, t})
		}
	}
	return moves
}

// DominoMoves returns the 10 moves of the <U,D,F2,B2,R2,L2> subgroup, in
// the same relative order as AllMoves.
func DominoMoves() []Move {
	all := AllMoves()
	out := make([]Move, 0, 10)
	for _, m := range all {
		if m.IsDomino() {
			out = append(out, m)
		}
	}
	return out
}

// ParseMove parses a single move literal such as "R", "R2", or "R'".
func ParseMove(tok string) (Move, error) {
	if tok == "" {
		return Move{}, fmt.Errorf("cube: empty move")
	}
	var face Face
	switch tok[0] {
	case 'U', 'u':
		face = U
	case 'D', 'd':
		face = D
	case 'F', 'f':
		face = F
	case 'B', 'b':
		face = B
	case 'R', 'r':
		face = R
	case 'L', 'l':
		face = L
	default:
		return Move{}, fmt.Errorf("cube: unknown face in move %q", tok)
	}
	suffix := tok[1:]
	switch suffix {
	case "":
		return Move{Face: face, Turns: 1}, nil
	case "2":
		return Move{Face: face, Turns: 2}, nil
	case "'", "3":
		return Move{Face: face, Turns: 3}, nil
	default:
		return Move{}, fmt.Errorf("cube: unknown move suffix in %q", tok)
	}
}

// ParseScramble parses a whitespace-separated sequence of move literals.
func ParseScramble(s string) ([]Move, error) {
	fields := strings.Fields(s)
	moves := make([]Move, 0, len(fields))
	for _, tok := range fields {
		m, err := ParseMove(tok)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// FormatMoves renders a move sequence back to its literal syntax.
func FormatMoves(moves []Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
