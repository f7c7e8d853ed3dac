package tables

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/ehrlich-b/twisty/internal/cube"
	"github.com/ehrlich-b/twisty/internal/kociemba/coords"
)

// Tables is the full set of move and pruning tables the search needs,
// either freshly generated or loaded from a cache directory.
type Tables struct {
	cornerOrientMove    []uint16 // [CornerOrientRawCount][18]
	edgeGroupOrientMove []uint32 // [EdgeGroupOrientRawCount][18]
	cornerPermMove      []uint16 // [CornerPermRawCount][10]
	udEdgePermMove      []uint16 // [UDEdgePermRawCount][10]
	eEdgePermMove       []uint16 // [EEdgePermRawCount][10]

	edgeSymLookup *edgeGroupOrientSymLookup
	cornerPermSym *cornerPermSymLookup
	phase1Prune   *windowedPrune // joint (EdgeGroupOrientSym, CornerOrientRaw)
	phase2Prune   *windowedPrune // joint (CornerPermSym, UDEdgePermRaw)

	closers []func() error
}

// Option configures Open.
type Option func(*openConfig)

type openConfig struct {
	logger zerolog.Logger
}

// WithLogger attaches a logger that Open uses to report cache hits and
// table (re)generation. The zero value discards all output.
func WithLogger(l zerolog.Logger) Option {
	return func(c *openConfig) { c.logger = l }
}

// DefaultDir returns ~/.cache/twisty, the default table cache directory.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".twisty-tables"
	}
	return filepath.Join(home, ".cache", "twisty")
}

// Open loads every table from dir, generating and caching any that are
// missing or fail their checksum. Table generation for the independent
// raw move tables runs concurrently via errgroup; pruning tables, which
// each depend on their own move table, are generated right after.
func Open(dir string, opts ...Option) (*Tables, error) {
	cfg := openConfig{logger: zerolog.Nop()}
	for _, o := range opts {
		o(&cfg)
	}

	t := &Tables{}
	var g errgroup.Group

	var cornerOrientBytes, edgeGroupOrientBytes, cornerPermBytes, udEdgePermBytes, eEdgePermBytes *mappedTable

	g.Go(func() error {
		var err error
		cornerOrientBytes, err = loadOrGenerate(filepath.Join(dir, "corner_orient_move.bin"), func() []byte {
			cfg.logger.Info().Msg("generating corner orientation move table")
			return uint16SliceBytes(buildCornerOrientMove())
		})
		return err
	})
	g.Go(func() error {
		var err error
		edgeGroupOrientBytes, err = loadOrGenerate(filepath.Join(dir, "edge_group_orient_move.bin"), func() []byte {
			cfg.logger.Info().Msg("generating edge group+orientation move table")
			return uint32SliceBytes(buildEdgeGroupOrientMove())
		})
		return err
	})
	g.Go(func() error {
		var err error
		cornerPermBytes, err = loadOrGenerate(filepath.Join(dir, "corner_perm_move.bin"), func() []byte {
			cfg.logger.Info().Msg("generating corner permutation move table")
			return uint16SliceBytes(buildCornerPermMove())
		})
		return err
	})
	g.Go(func() error {
		var err error
		udEdgePermBytes, err = loadOrGenerate(filepath.Join(dir, "ud_edge_perm_move.bin"), func() []byte {
			cfg.logger.Info().Msg("generating U/D edge permutation move table")
			return uint16SliceBytes(buildUDEdgePermMove())
		})
		return err
	})
	g.Go(func() error {
		var err error
		eEdgePermBytes, err = loadOrGenerate(filepath.Join(dir, "e_edge_perm_move.bin"), func() []byte {
			cfg.logger.Info().Msg("generating E-slice edge permutation move table")
			return uint16SliceBytes(buildEEdgePermMove())
		})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	t.cornerOrientMove = asUint16Slice(cornerOrientBytes.Bytes())
	t.edgeGroupOrientMove = asUint32Slice(edgeGroupOrientBytes.Bytes())
	t.cornerPermMove = asUint16Slice(cornerPermBytes.Bytes())
	t.udEdgePermMove = asUint16Slice(udEdgePermBytes.Bytes())
	t.eEdgePermMove = asUint16Slice(eEdgePermBytes.Bytes())
	t.closers = append(t.closers,
		cornerOrientBytes.Close, edgeGroupOrientBytes.Close,
		cornerPermBytes.Close, udEdgePermBytes.Close, eEdgePermBytes.Close,
	)

	cfg.logger.Info().Msg("building symmetry-reduced edge coordinate lookup")
	t.edgeSymLookup = buildEdgeGroupOrientSymLookup()
	cfg.logger.Info().Msg("building symmetry-reduced corner permutation lookup")
	t.cornerPermSym = buildCornerPermSymLookup()

	var phase1Bytes, phase2Bytes *mappedTable
	g = errgroup.Group{}
	g.Go(func() error {
		var err error
		phase1Bytes, err = loadOrGenerate(filepath.Join(dir, "phase1_joint_prune.bin"), func() []byte {
			cfg.logger.Info().Msg("generating phase-1 joint pruning table (EdgeGroupOrientSym x CornerOrientRaw)")
			return buildPhase1JointPrune(t.edgeGroupOrientMove, t.cornerOrientMove, t.edgeSymLookup).encode()
		})
		return err
	})
	g.Go(func() error {
		var err error
		phase2Bytes, err = loadOrGenerate(filepath.Join(dir, "phase2_joint_prune.bin"), func() []byte {
			cfg.logger.Info().Msg("generating phase-2 joint pruning table (CornerPermSym x UDEdgePermRaw)")
			return buildPhase2JointPrune(t.cornerPermMove, t.udEdgePermMove, t.cornerPermSym).encode()
		})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	t.phase1Prune = decodeWindowedPrune(phase1Bytes.Bytes(), 3, 4)
	t.phase2Prune = decodeWindowedPrune(phase2Bytes.Bytes(), 4, 3)
	t.closers = append(t.closers, phase1Bytes.Close, phase2Bytes.Close)

	return t, nil
}

// Close releases every memory-mapped table file.
func (t *Tables) Close() error {
	var first error
	for _, c := range t.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Phase1Move returns the corner orientation and edge group+orientation
// coordinates that result from applying AllMoves()[moveIdx].
func (t *Tables) Phase1Move(co coords.CornerOrientRaw, ego coords.EdgeGroupOrientRaw, moveIdx int) (coords.CornerOrientRaw, coords.EdgeGroupOrientRaw) {
	const width = 18
	newCo := coords.CornerOrientRaw(t.cornerOrientMove[int(co)*width+moveIdx])
	newEgo := coords.EdgeGroupOrientRaw(t.edgeGroupOrientMove[int(ego)*width+moveIdx])
	return newCo, newEgo
}

// Phase1Heuristic returns an admissible lower bound on the number of
// moves needed to reach the domino subgroup, read from the joint
// (EdgeGroupOrientSym, CornerOrientRaw) pruning table. ego's reduction
// gives the conjugation that recovers ego from its representative; co has
// to move into that same representative's frame before indexing, the
// mirror image of the frame change buildPhase1JointPrune carries forward
// at every BFS step.
func (t *Tables) Phase1Heuristic(co coords.CornerOrientRaw, ego coords.EdgeGroupOrientRaw) int {
	symCoord, conj := t.edgeSymLookup.reduce(ego)
	other := coords.ConjugateCornerOrient(co, cube.SymInverse(int(conj)))
	idx := symCoord*uint32(coords.CornerOrientRawCount) + uint32(other)
	return int(t.phase1Prune.get(idx))
}

// Phase2Move returns the corner permutation, U/D edge permutation, and
// E-slice edge permutation coordinates that result from applying
// DominoMoves()[moveIdx].
func (t *Tables) Phase2Move(cp coords.CornerPermRaw, ud coords.UDEdgePermRaw, ee coords.EEdgePermRaw, moveIdx int) (coords.CornerPermRaw, coords.UDEdgePermRaw, coords.EEdgePermRaw) {
	width := dominoMoveCount
	newCp := coords.CornerPermRaw(t.cornerPermMove[int(cp)*width+moveIdx])
	newUd := coords.UDEdgePermRaw(t.udEdgePermMove[int(ud)*width+moveIdx])
	newEe := coords.EEdgePermRaw(t.eEdgePermMove[int(ee)*width+moveIdx])
	return newCp, newUd, newEe
}

// Phase2Heuristic returns an admissible lower bound on the number of
// domino moves needed to reach solved, read from the joint
// (CornerPermSym, UDEdgePermRaw) pruning table. It ignores the E-slice
// edge permutation entirely: dropping a coordinate from a pruning lookup
// can only ever underestimate the true distance, never overestimate it,
// so the bound stays admissible, and SolvePhase2's isSolved check still
// verifies the E-slice permutation independently before accepting any
// candidate solution.
func (t *Tables) Phase2Heuristic(cp coords.CornerPermRaw, ud coords.UDEdgePermRaw) int {
	symCoord, conj := t.cornerPermSym.reduce(cp)
	other := coords.ConjugateUDEdgePerm(ud, cube.SymInverse(int(conj)))
	idx := symCoord*uint32(coords.UDEdgePermRawCount) + uint32(other)
	return int(t.phase2Prune.get(idx))
}
