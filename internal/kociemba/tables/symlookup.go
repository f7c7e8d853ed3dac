package tables

import (
	"github.com/ehrlich-b/twisty/internal/cube"
	"github.com/ehrlich-b/twisty/internal/kociemba/coords"
)

const numDominoSymmetries = coords.NumSymmetries

// symFamily is the general shape of a symmetry-reduced coordinate lookup:
// every raw coordinate in [0, n) maps to (symCoord, conj) such that raw ==
// conjugate(representative[symCoord], conj). get_rep_from_sym is just
// representative[symCoord]; get_combo_from_raw is the reduce method below,
// answered from a full raw-indexed reverse table built once up front rather
// than a per-query binary search, since every raw domain this solver
// reduces (at most ~1.0M for EdgeGroupOrientRaw) comfortably fits in
// memory as a flat array. symCoord is assigned in order of the orbit's
// minimum raw value, which is always the representative under the
// 16-element domino group.
type symFamily struct {
	symCoord       []uint32 // len n, raw -> symCoord
	conj           []uint8  // len n, raw -> conjugation recovering raw from representative[symCoord]
	representative []uint32 // len symCount, ascending, each the minimum raw coordinate in its orbit
}

// buildSymFamily reduces [0, n) by the 16-element domino symmetry group,
// where conjugate(raw, s) gives the raw coordinate obtained by viewing raw
// in the reference frame of symmetry s. Every orbit's representative is its
// minimum raw value, found by checking all 16 conjugates up front rather
// than by first-discovery order, so that the representative array comes
// out sorted for free; get_combo_from_raw (reduce) reads the raw-indexed
// symCoord/conj arrays rather than searching it.
func buildSymFamily(n int, conjugate func(raw uint32, sym int) uint32) *symFamily {
	return buildSymFamilyFilter(n, nil, conjugate)
}

// buildSymFamilyFilter is buildSymFamily restricted to the raw values
// keep accepts (nil means every raw in range). Since conjugation by a
// domino symmetry preserves whatever property keep tests (phase 2 uses
// this for permutation parity, which conjugation never changes), every
// orbit stays entirely inside or entirely outside the kept subset -
// running this once per subset and merging the results, as
// buildCornerPermSymLookup does, never splits an orbit across calls.
func buildSymFamilyFilter(n int, keep func(raw uint32) bool, conjugate func(raw uint32, sym int) uint32) *symFamily {
	fam := &symFamily{
		symCoord: make([]uint32, n),
		conj:     make([]uint8, n),
	}
	assigned := make([]bool, n)
	conjugates := make([]uint32, numDominoSymmetries)
	for raw := 0; raw < n; raw++ {
		if assigned[raw] || (keep != nil && !keep(uint32(raw))) {
			continue
		}
		minRaw := uint32(raw)
		minSym := 0
		for s := 0; s < numDominoSymmetries; s++ {
			c := conjugate(uint32(raw), s)
			conjugates[s] = c
			if c < minRaw {
				minRaw = c
				minSym = s
			}
		}
		symCoord := uint32(len(fam.representative))
		fam.representative = append(fam.representative, minRaw)
		// conjugate(raw, minSym) == minRaw, so conjugate(minRaw,
		// inverse(minSym)) == raw. Every other orbit member is
		// member == conjugate(raw, s) == conjugate(minRaw,
		// compose(inverse(minSym), s)), which is the conjugation
		// getComboFromRaw's caller needs to recover member from minRaw.
		invMinSym := cube.SymInverse(minSym)
		for s := 0; s < numDominoSymmetries; s++ {
			member := conjugates[s]
			if assigned[member] {
				continue
			}
			assigned[member] = true
			fam.symCoord[member] = symCoord
			fam.conj[member] = uint8(cube.SymCompose(invMinSym, s))
		}
	}
	return fam
}

// stabilizersOf returns every symmetry index that leaves rep fixed under
// conjugate -- the stabilizer subgroup of rep in the 16-element domino
// symmetry group. Spec property 8: by orbit-stabilizer this subgroup's
// size always divides 16, and every member of it is, by definition, a
// no-op when conjugating rep.
func stabilizersOf(rep uint32, conjugate func(raw uint32, sym int) uint32) []uint8 {
	var out []uint8
	for s := 0; s < numDominoSymmetries; s++ {
		if conjugate(rep, s) == rep {
			out = append(out, uint8(s))
		}
	}
	return out
}

func (fam *symFamily) reduce(raw uint32) (symCoord uint32, conj uint8) {
	return fam.symCoord[raw], fam.conj[raw]
}

func (fam *symFamily) count() int {
	return len(fam.representative)
}

// edgeGroupOrientSymLookup is the EdgeGroupOrientSym family: raw
// EdgeGroupOrientRaw coordinates reduced by the 16-element domino symmetry
// group. Cardinality 64430.
type edgeGroupOrientSymLookup struct {
	*symFamily
}

func buildEdgeGroupOrientSymLookup() *edgeGroupOrientSymLookup {
	fam := buildSymFamily(coords.EdgeGroupOrientRawCount, func(raw uint32, sym int) uint32 {
		return uint32(coords.ConjugateEdgeGroupOrient(coords.EdgeGroupOrientRaw(raw), sym))
	})
	return &edgeGroupOrientSymLookup{fam}
}

// reduce shadows the embedded symFamily's reduce(uint32) with one typed
// over the coordinate this family actually reduces, since
// EdgeGroupOrientRaw is a distinct named type from uint32 and Go does
// not implicitly convert one to the other at a call site.
func (lk *edgeGroupOrientSymLookup) reduce(raw coords.EdgeGroupOrientRaw) (symCoord uint32, conj uint8) {
	return lk.symFamily.reduce(uint32(raw))
}

// GetAllStabilizingConjugations returns the stabilizer of symCoord's
// representative, spec property 8.
func (lk *edgeGroupOrientSymLookup) GetAllStabilizingConjugations(symCoord uint32) []uint8 {
	rep := lk.representative[symCoord]
	return stabilizersOf(rep, func(raw uint32, sym int) uint32 {
		return uint32(coords.ConjugateEdgeGroupOrient(coords.EdgeGroupOrientRaw(raw), sym))
	})
}

// cornerPermSymLookup is the CornerPermSym family: raw CornerPermRaw
// coordinates reduced by the 16-element domino symmetry group. Since
// conjugation always preserves a permutation's parity, its
// representative array is built as two independently-generated,
// independently-sorted halves -- even-parity orbits first, then odd --
// per spec's "split into parity halves" (module F); repEvenCount is the
// boundary between them.
type cornerPermSymLookup struct {
	symCoord       []uint32 // len CornerPermRawCount, raw -> symCoord
	conj           []uint8
	representative []uint32
	repEvenCount   int
}

func buildCornerPermSymLookup() *cornerPermSymLookup {
	n := coords.CornerPermRawCount
	conjugate := func(raw uint32, sym int) uint32 {
		return uint32(coords.ConjugateCornerPerm(coords.CornerPermRaw(raw), sym))
	}
	even := buildSymFamilyFilter(n, func(raw uint32) bool { return raw%2 == 0 }, conjugate)
	odd := buildSymFamilyFilter(n, func(raw uint32) bool { return raw%2 == 1 }, conjugate)

	lk := &cornerPermSymLookup{
		symCoord:     make([]uint32, n),
		conj:         make([]uint8, n),
		repEvenCount: len(even.representative),
	}
	lk.representative = make([]uint32, 0, len(even.representative)+len(odd.representative))
	lk.representative = append(lk.representative, even.representative...)
	lk.representative = append(lk.representative, odd.representative...)
	for raw := 0; raw < n; raw++ {
		if raw%2 == 0 {
			lk.symCoord[raw] = even.symCoord[raw]
			lk.conj[raw] = even.conj[raw]
		} else {
			lk.symCoord[raw] = odd.symCoord[raw] + uint32(lk.repEvenCount)
			lk.conj[raw] = odd.conj[raw]
		}
	}
	return lk
}

func (lk *cornerPermSymLookup) reduce(raw coords.CornerPermRaw) (symCoord uint32, conj uint8) {
	return lk.symCoord[raw], lk.conj[raw]
}

func (lk *cornerPermSymLookup) count() int {
	return len(lk.representative)
}

// parityOf reports which half of the representative array symCoord falls
// in: 0 for the even-parity half, 1 for the odd-parity half.
func (lk *cornerPermSymLookup) parityOf(symCoord uint32) int {
	if int(symCoord) < lk.repEvenCount {
		return 0
	}
	return 1
}

// GetAllStabilizingConjugations returns the stabilizer of symCoord's
// representative, spec property 8.
func (lk *cornerPermSymLookup) GetAllStabilizingConjugations(symCoord uint32) []uint8 {
	rep := lk.representative[symCoord]
	return stabilizersOf(rep, func(raw uint32, sym int) uint32 {
		return uint32(coords.ConjugateCornerPerm(coords.CornerPermRaw(raw), sym))
	})
}
