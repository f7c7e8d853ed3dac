// Package search implements the two-phase IDA* solver: phase 1 reduces an
// arbitrary cube into the <U,D,F2,B2,R2,L2> domino subgroup, phase 2
// solves within that subgroup, and the streaming driver runs both across
// increasing phase-1 lengths to report strictly improving total-length
// solutions as they're found.
package search

import (
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ehrlich-b/twisty/internal/cube"
	"github.com/ehrlich-b/twisty/internal/kociemba/coords"
	"github.com/ehrlich-b/twisty/internal/kociemba/tables"
)

// phase1State is the pair of coordinates phase 1 drives to their
// solved-cube values.
type phase1State struct {
	cornerOrient coords.CornerOrientRaw
	edgeGroup    coords.EdgeGroupOrientRaw
}

func newPhase1State(c cube.Cube) phase1State {
	return phase1State{
		cornerOrient: coords.CornerOrientRawFrom(c),
		edgeGroup:    coords.EdgeGroupOrientRawFromParts(coords.EdgePositionsFrom(c).EdgeGroup(), coords.EdgeOrientRawFrom(c)),
	}
}

var solvedPhase1 = newPhase1State(cube.Solved)

func (s phase1State) isDominoReduced() bool {
	return s == solvedPhase1
}

// candidatesForDepth picks the move set phase1DFS (and EnumeratePhase1's
// top-level fan-out, which must make the identical choice for the first
// ply) should branch on at a given remaining depth: the last ply of
// phase 1 is restricted to moves that can actually finish a
// domino-reduction, everything before it is the full axis-pruned set.
func candidatesForDepth(axis cube.PreviousAxis, remaining int) []cube.Move {
	if remaining == 1 {
		return axis.NextAxisChoicesEndPhase1()
	}
	return axis.NextAxisChoices()
}

// EnumeratePhase1 finds every move sequence of exactly length moves that
// reduces start into the domino subgroup, calling visit with each one in
// the order found. visit returns false to stop the search early (the
// caller has seen enough candidates for this length); it may be called
// concurrently from multiple goroutines and must be safe for that.
//
// The search is a depth-limited DFS pruned by Phase1Heuristic and by
// cube.PreviousAxis (skipping moves that are provably redundant given the
// move just made), rather than the explicit frame-stack the reference
// two-phase implementations use for this -- a recursive walk is easier to
// get right by hand, at the cost of relying on the Go runtime's call
// stack instead of a flat one, which is in no danger of overflowing at
// the depths (<=20) this solver ever searches to.
//
// The first ply is fanned out across an errgroup.Group, one goroutine per
// first move, each running its own DFS subtree to completion; a shared
// stopped flag lets any subtree's visit callback returning false cut the
// others short cooperatively, the same soft-cancellation shape
// search.Stream's atomic cancel flag uses.
func EnumeratePhase1(tbl *tables.Tables, start cube.Cube, length int, visit func(moves []cube.Move) bool) {
	state := newPhase1State(start)
	if tbl.Phase1Heuristic(state.cornerOrient, state.edgeGroup) > length {
		return
	}
	if length == 0 {
		if state.isDominoReduced() {
			visit(make([]cube.Move, 0))
		}
		return
	}

	var mu sync.Mutex
	stopped := false
	isStopped := func() bool {
		mu.Lock()
		defer mu.Unlock()
		return stopped
	}
	guardedVisit := func(moves []cube.Move) bool {
		cont := visit(moves)
		if !cont {
			mu.Lock()
			stopped = true
			mu.Unlock()
		}
		return cont
	}

	var g errgroup.Group
	for _, m := range candidatesForDepth(cube.AxisNone, length) {
		m := m
		g.Go(func() error {
			if isStopped() {
				return nil
			}
			idx := moveIndex(m)
			nextCorner, nextEdge := tbl.Phase1Move(state.cornerOrient, state.edgeGroup, idx)
			nextState := phase1State{cornerOrient: nextCorner, edgeGroup: nextEdge}
			path := make([]cube.Move, 1, length)
			path[0] = m
			phase1DFS(tbl, nextState, cube.AxisNone.Update(m.Face), length-1, path, guardedVisit, isStopped)
			return nil
		})
	}
	_ = g.Wait()
}

func phase1DFS(tbl *tables.Tables, state phase1State, axis cube.PreviousAxis, remaining int, path []cube.Move, visit func([]cube.Move) bool, stopped func() bool) bool {
	if stopped() {
		return false
	}
	if remaining == 0 {
		if state.isDominoReduced() {
			found := make([]cube.Move, len(path))
			copy(found, path)
			return visit(found)
		}
		return true
	}
	if tbl.Phase1Heuristic(state.cornerOrient, state.edgeGroup) > remaining {
		return true
	}

	for _, m := range candidatesForDepth(axis, remaining) {
		idx := moveIndex(m)
		nextCorner, nextEdge := tbl.Phase1Move(state.cornerOrient, state.edgeGroup, idx)
		nextState := phase1State{cornerOrient: nextCorner, edgeGroup: nextEdge}
		nextAxis := axis.Update(m.Face)
		if !phase1DFS(tbl, nextState, nextAxis, remaining-1, append(path, m), visit, stopped) {
			return false
		}
	}
	return true
}

var allMoves = cube.AllMoves()

func moveIndex(m cube.Move) int {
	for i, cand := range allMoves {
		if cand == m {
			return i
		}
	}
	panic("search: move not found in AllMoves")
}
