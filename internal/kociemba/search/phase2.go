package search

import (
	"github.com/ehrlich-b/twisty/internal/cube"
	"github.com/ehrlich-b/twisty/internal/kociemba/coords"
	"github.com/ehrlich-b/twisty/internal/kociemba/tables"
)

type phase2State struct {
	cornerPerm coords.CornerPermRaw
	udEdge     coords.UDEdgePermRaw
	eEdge      coords.EEdgePermRaw
}

func newPhase2State(c cube.Cube) phase2State {
	return phase2State{
		cornerPerm: coords.CornerPermRawFrom(c),
		udEdge:     coords.UDEdgePermRawFrom(c),
		eEdge:      coords.EEdgePermRawFrom(c),
	}
}

func (s phase2State) isSolved() bool {
	return s.cornerPerm == 0 && s.udEdge == 0 && s.eEdge == 0
}

var dominoMoves = cube.DominoMoves()

func domMoveIndex(m cube.Move) int {
	for i, cand := range dominoMoves {
		if cand == m {
			return i
		}
	}
	panic("search: move not found in DominoMoves")
}

// SolvePhase2 runs IDA* inside the domino subgroup for a cube that is
// already domino-reduced, returning the shortest sequence of domino moves
// it finds of length at most maxLength. Phase-2 solutions longer than 12
// moves essentially never occur for a well-chosen phase-1 prefix, but
// maxLength is taken from the caller so the streaming driver can cap the
// search to "anything that would beat the current best."
func SolvePhase2(tbl *tables.Tables, start cube.Cube, maxLength int) ([]cube.Move, bool) {
	state := newPhase2State(start)
	h := tbl.Phase2Heuristic(state.cornerPerm, state.udEdge)
	if h > maxLength {
		return nil, false
	}
	for threshold := h; threshold <= maxLength; threshold++ {
		path := make([]cube.Move, 0, threshold)
		if found, ok := phase2IDA(tbl, state, cube.AxisNone, threshold, path); ok {
			return found, true
		}
	}
	return nil, false
}

func phase2IDA(tbl *tables.Tables, state phase2State, axis cube.PreviousAxis, remaining int, path []cube.Move) ([]cube.Move, bool) {
	if remaining == 0 {
		if state.isSolved() {
			found := make([]cube.Move, len(path))
			copy(found, path)
			return found, true
		}
		return nil, false
	}
	for _, m := range axis.NextAxisChoices() {
		if !m.IsDomino() {
			continue
		}
		idx := domMoveIndex(m)
		nextCorner, nextUD, nextEE := tbl.Phase2Move(state.cornerPerm, state.udEdge, state.eEdge, idx)
		nextState := phase2State{cornerPerm: nextCorner, udEdge: nextUD, eEdge: nextEE}
		if tbl.Phase2Heuristic(nextState.cornerPerm, nextState.udEdge) > remaining-1 {
			continue
		}
		if found, ok := phase2IDA(tbl, nextState, axis.Update(m.Face), remaining-1, append(path, m)); ok {
			return found, true
		}
	}
	return nil, false
}
