package search

import (
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/ehrlich-b/twisty/internal/cube"
	"github.com/ehrlich-b/twisty/internal/kociemba/tables"
)

// Solution is one reported result of a streaming search: a full move
// sequence (phase-1 prefix followed by phase-2 suffix) that solves the
// cube, strictly shorter than every solution reported before it.
type Solution struct {
	Moves []cube.Move
}

// Stream runs phase 1 over increasing lengths starting at 0, and for
// every phase-1 candidate found at a given length, runs phase 2 capped at
// whatever would beat the best solution seen so far. It reports a
// Solution on the returned channel each time it finds one strictly
// shorter than the last, then closes the channel once maxLength is
// exhausted or the caller calls Stop.
//
// The Rust reference implementation behind this design threads an
// UnindexedProducer through a rayon thread pool into a flume channel with
// an AtomicBool cancellation flag; this is the same shape translated into
// goroutine-and-channel idiom: one driver goroutine that walks the
// phase-1 lengths in order and, for each, fans EnumeratePhase1's first ply
// out across an errgroup worker pool, an unbuffered channel the caller
// drains, and an atomic flag every worker checks between candidates.
type Stream struct {
	ch     chan Solution
	cancel *atomic.Bool
	stopCh chan struct{}
	done   chan struct{}
}

// Solutions returns the channel strictly-improving solutions arrive on.
// It is closed when the search is exhausted or cancelled.
func (s *Stream) Solutions() <-chan Solution {
	return s.ch
}

// Stop requests cancellation and blocks until the search goroutine has
// observed it and exited. Safe to call more than once.
func (s *Stream) Stop() {
	if s.cancel.CompareAndSwap(false, true) {
		close(s.stopCh)
	}
	<-s.done
}

// StreamSolve starts a background search for start, exploring phase-1
// lengths 0..maxLength in order. logger receives progress notices; pass
// zerolog.Nop() to discard them.
func StreamSolve(tbl *tables.Tables, start cube.Cube, maxLength int, logger zerolog.Logger) *Stream {
	s := &Stream{
		ch:     make(chan Solution),
		cancel: &atomic.Bool{},
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
	}

	go func() {
		defer close(s.ch)
		defer close(s.done)

		var mu sync.Mutex
		best := maxLength + 1

		for n := 0; n <= maxLength; n++ {
			if s.cancel.Load() {
				logger.Info().Msg("stream search cancelled")
				return
			}
			mu.Lock()
			tooLate := n >= best
			mu.Unlock()
			if tooLate {
				// No phase-1 prefix of this length or longer can beat
				// the best total already found.
				continue
			}

			var stopFlag atomic.Bool
			// EnumeratePhase1 fans its first ply out across a worker
			// pool, so this callback runs concurrently from multiple
			// goroutines; best and phase2Cap are read and updated under
			// mu, and stopFlag (not a plain bool) records the decision
			// to stop.
			EnumeratePhase1(tbl, start, n, func(moves []cube.Move) bool {
				if s.cancel.Load() {
					stopFlag.Store(true)
					return false
				}

				mu.Lock()
				phase2Cap := best - n - 1
				mu.Unlock()

				mid := start.ApplyAll(moves)
				phase2Moves, ok := SolvePhase2(tbl, mid, phase2Cap)
				if !ok {
					return true
				}
				total := len(moves) + len(phase2Moves)

				mu.Lock()
				if total >= best {
					mu.Unlock()
					return true
				}
				best = total
				mu.Unlock()

				full := make([]cube.Move, 0, total)
				full = append(full, moves...)
				full = append(full, phase2Moves...)
				logger.Info().Int("length", total).Msg("found improving solution")
				select {
				case s.ch <- Solution{Moves: full}:
				case <-s.stopCh:
					stopFlag.Store(true)
					return false
				}
				if total == 0 {
					stopFlag.Store(true)
					return false
				}
				return true
			})
			if stopFlag.Load() {
				return
			}
		}
	}()

	return s
}
