// Package coords implements the raw and symmetry-reduced coordinate
// systems the two-phase search is built on: compact integer encodings of
// slices of a cube.Cube's state, cheap to use as array indices into move
// and pruning tables.
package coords

import (
	"github.com/ehrlich-b/twisty/internal/cube"
	"github.com/ehrlich-b/twisty/internal/kociemba/permmath"
)

// CornerOrientRaw encodes the 8 corner orientations as a base-3 number
// over the first 7 (the 8th is determined by the invariant that the sum
// is 0 mod 3). Cardinality 3^7 = 2187.
type CornerOrientRaw uint16

const CornerOrientRawCount = 2187

func CornerOrientRawFrom(c cube.Cube) CornerOrientRaw {
	var v uint16
	for i := 0; i < 7; i++ {
		v = v*3 + uint16(c.CornerOrient[i])
	}
	return CornerOrientRaw(v)
}

// Orientations decodes the coordinate back into 8 corner orientations.
func (co CornerOrientRaw) Orientations() [8]uint8 {
	var out [8]uint8
	v := uint16(co)
	sum := 0
	for i := 6; i >= 0; i-- {
		out[i] = uint8(v % 3)
		sum += int(out[i])
		v /= 3
	}
	out[7] = uint8((3 - sum%3) % 3)
	return out
}

// EdgeOrientRaw encodes the 12 edge orientations as a base-2 number over
// the first 11. Cardinality 2^11 = 2048.
type EdgeOrientRaw uint16

const EdgeOrientRawCount = 2048

func EdgeOrientRawFrom(c cube.Cube) EdgeOrientRaw {
	var v uint16
	for i := 0; i < 11; i++ {
		v = v*2 + uint16(c.EdgeOrient[i])
	}
	return EdgeOrientRaw(v)
}

func (eo EdgeOrientRaw) Orientations() [12]uint8 {
	var out [12]uint8
	v := uint16(eo)
	sum := 0
	for i := 10; i >= 0; i-- {
		out[i] = uint8(v & 1)
		sum += int(out[i])
		v >>= 1
	}
	out[11] = uint8((2 - sum%2) % 2)
	return out
}

// EdgeGroupRaw records which 4 of the 12 edge slots currently hold an
// E-slice piece (cubie index 8-11). Cardinality C(12,4) = 495. Phase 1
// drives this coordinate to its solved-cube value, 494 (E-slice pieces
// confined to the E slice, slots 8-11, in any order).
type EdgeGroupRaw uint16

const EdgeGroupRawCount = 495

func EdgeGroupRawFrom(c cube.Cube) EdgeGroupRaw {
	var combo permmath.Combination4
	for i, v := range c.EdgePerm {
		combo[i] = v >= 8
	}
	return EdgeGroupRaw(combo.Rank())
}

func (g EdgeGroupRaw) Combination() permmath.Combination4 {
	return permmath.UnrankCombination4(uint16(g))
}

// EdgeGroupOrientRaw packs EdgeGroupRaw and EdgeOrientRaw into a single
// coordinate for phase-1 pruning, where both must reach their solved-cube
// values together (group 494, orientation 0).
// Cardinality 495 * 2048 = 1013760.
type EdgeGroupOrientRaw uint32

const EdgeGroupOrientRawCount = EdgeGroupRawCount * EdgeOrientRawCount

func EdgeGroupOrientRawFrom(c cube.Cube) EdgeGroupOrientRaw {
	return EdgeGroupOrientRawFromParts(EdgeGroupRawFrom(c), EdgeOrientRawFrom(c))
}

// EdgeGroupOrientRawFromParts combines an already-computed group/orient
// pair, letting callers that source g from somewhere other than
// EdgeGroupRawFrom (phase 1's search-node seeding, which derives it from
// EdgePositions) skip recomputing it.
func EdgeGroupOrientRawFromParts(g EdgeGroupRaw, o EdgeOrientRaw) EdgeGroupOrientRaw {
	return EdgeGroupOrientRaw(uint32(g)*EdgeOrientRawCount + uint32(o))
}

func (v EdgeGroupOrientRaw) Split() (EdgeGroupRaw, EdgeOrientRaw) {
	return EdgeGroupRaw(uint32(v) / EdgeOrientRawCount), EdgeOrientRaw(uint32(v) % EdgeOrientRawCount)
}

// CornerPermRaw is the parity-preserving Lehmer rank of the 8-corner
// permutation. Cardinality 8! = 40320; the low bit always equals corner
// parity, which the CornerPermSym lookup uses to split its representatives
// into even and odd halves.
type CornerPermRaw uint16

const CornerPermRawCount = 40320

func CornerPermRawFrom(c cube.Cube) CornerPermRaw {
	return CornerPermRaw(permmath.RankParity(permmath.Perm(c.CornerPerm[:])))
}

func (v CornerPermRaw) Permutation() permmath.Perm {
	return permmath.UnrankParity(8, uint32(v))
}

// UDEdgePermRaw is the permutation of the 8 U/D-layer edge slots (indices
// 0-7: UR, UF, UL, UB, DR, DF, DL, DB) among themselves. Valid only once a
// cube has been domino-reduced, at which point those 8 slots always hold
// exactly the 8 U/D-type pieces. Cardinality 8! = 40320.
type UDEdgePermRaw uint16

const UDEdgePermRawCount = 40320

func UDEdgePermRawFrom(c cube.Cube) UDEdgePermRaw {
	var p permmath.Perm = make(permmath.Perm, 8)
	copy(p, c.EdgePerm[:8])
	return UDEdgePermRaw(permmath.Rank(p))
}

func (v UDEdgePermRaw) Permutation() permmath.Perm {
	return permmath.Unrank(8, uint32(v))
}

// EEdgePermRaw is the permutation of the 4 E-slice edge slots (indices
// 8-11: FR, FL, BL, BR) among themselves, cubie values shifted down by 8.
// Cardinality 4! = 24.
type EEdgePermRaw uint8

const EEdgePermRawCount = 24

func EEdgePermRawFrom(c cube.Cube) EEdgePermRaw {
	p := make(permmath.Perm, 4)
	for i := 0; i < 4; i++ {
		p[i] = c.EdgePerm[8+i] - 8
	}
	return EEdgePermRaw(permmath.Rank(p))
}

func (v EEdgePermRaw) Permutation() permmath.Perm {
	return permmath.Unrank(4, uint32(v))
}
