package cube

// PreviousAxis tracks which face(s) the search has just turned, so the
// phase-1/phase-2 enumerators can skip moves that are provably redundant:
// repeating a face (which just collapses into a different single move) or
// turning the opposite face of a commuting pair out of canonical order
// (U D and D U reach the same state, so only one order is explored).
type PreviousAxis int

const (
	AxisNone PreviousAxis = iota
	AxisU
	AxisD
	AxisUD
	AxisF
	AxisB
	AxisFB
	AxisR
	AxisL
	AxisRL
)

// Update returns the PreviousAxis that results from turning face f after
// being in state p.
func (p PreviousAxis) Update(f Face) PreviousAxis {
	switch f {
	case U:
		if p == AxisD {
			return AxisUD
		}
		return AxisU
	case D:
		return AxisD
	case F:
		if p == AxisB {
			return AxisFB
		}
		return AxisF
	case B:
		return AxisB
	case R:
		if p == AxisL {
			return AxisRL
		}
		return AxisR
	case L:
		return AxisL
	default:
		return AxisNone
	}
}

// allowed reports whether face f may be turned from state p.
func (p PreviousAxis) allowed(f Face) bool {
	switch p {
	case AxisU:
		return f != U
	case AxisD:
		return f != D && f != U
	case AxisUD:
		return f != U && f != D
	case AxisF:
		return f != F
	case AxisB:
		return f != B && f != F
	case AxisFB:
		return f != F && f != B
	case AxisR:
		return f != R
	case AxisL:
		return f != L && f != R
	case AxisRL:
		return f != R && f != L
	default:
		return true
	}
}

// NextAxisChoices returns the moves legal to try next given the previous
// move's axis state. Callers obtain each move's resulting PreviousAxis
// with Update.
func (p PreviousAxis) NextAxisChoices() []Move {
	out := make([]Move, 0, 18)
	for _, m := range AllMoves() {
		if p.allowed(m.Face) {
			out = append(out, m)
		}
	}
	return out
}

// NextAxisChoicesEndPhase1 restricts NextAxisChoices to the moves outside
// the domino subgroup (quarter turns of F, B, R and L), used for the final
// frame of phase 1: a domino move never changes whether a cube lies in
// <U,D,F2,B2,R2,L2>, so only these moves can complete a reduction that
// was not already complete one move earlier.
func (p PreviousAxis) NextAxisChoicesEndPhase1() []Move {
	out := make([]Move, 0, 8)
	for _, m := range p.NextAxisChoices() {
		if !m.IsDomino() {
			out = append(out, m)
		}
	}
	return out
}
