package cube

// genU4 is the whole-cube 90-degree rotation about the U-D axis (clockwise
// viewed from U). Corner orientation is untouched by a proper rotation, but
// the four E-slice edges (FR, FL, BL, BR) swap the face pair their
// orientation reference is measured against, so they flip.
var genU4 = Cube{
	CornerPerm: [8]uint8{uint8(UBR), uint8(URF), uint8(UFL), uint8(ULB), uint8(DRB), uint8(DFR), uint8(DLF), uint8(DBL)},
	EdgePerm:   [12]uint8{uint8(UB), uint8(UR), uint8(UF), uint8(UL), uint8(DB), uint8(DR), uint8(DF), uint8(DL), uint8(BR), uint8(FR), uint8(FL), uint8(BL)},
	EdgeOrient: [12]uint8{0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1},
}

// genF2 is the whole-cube 180-degree rotation about the F-B axis: U<->D and
// L<->R swap, F and B stay put.
var genF2 = Cube{
	CornerPerm: [8]uint8{uint8(DLF), uint8(DFR), uint8(DRB), uint8(DBL), uint8(UFL), uint8(URF), uint8(UBR), uint8(ULB)},
	EdgePerm:   [12]uint8{uint8(DL), uint8(DF), uint8(DR), uint8(DB), uint8(UL), uint8(UF), uint8(UR), uint8(UB), uint8(FL), uint8(FR), uint8(BR), uint8(BL)},
}

// genLR2 is the mirror reflection through the plane containing the U-D and
// F-B axes: it swaps L<->R and leaves U, D, F, B fixed. This is an improper
// symmetry -- it reverses chirality -- so conjugating by it requires the
// separate mirrorCornerOrientations correction below in addition to the
// ordinary permutation conjugation.
var genLR2 = Cube{
	CornerPerm: [8]uint8{uint8(UFL), uint8(URF), uint8(UBR), uint8(ULB), uint8(DLF), uint8(DFR), uint8(DRB), uint8(DBL)},
	EdgePerm:   [12]uint8{uint8(UL), uint8(UF), uint8(UR), uint8(UB), uint8(DL), uint8(DF), uint8(DR), uint8(DB), uint8(FL), uint8(FR), uint8(BR), uint8(BL)},
}

// mirrorCornerOrientations swaps corner orientation labels 1 and 2, leaving
// 0 fixed. A reflection reverses the sense "clockwise thirds of a turn
// from solved" is measured in, so every nonzero twist reads as its
// complement once the cube has been seen in a mirrored frame.
func mirrorCornerOrientations(c Cube) Cube {
	out := c
	for i, o := range c.CornerOrient {
		if o != 0 {
			out.CornerOrient[i] = (3 - o) % 3
		}
	}
	return out
}

// NumDominoSymmetries is the order of the domino symmetry group: the
// stabilizer of the {U, D} face pair within the full 48-element cube
// symmetry group. It is generated by genU4 (order 4), genF2 (order 2), and
// genLR2 (order 2, improper), for 4*2*2 = 16 elements.
const NumDominoSymmetries = 16

// dominoSym is one element of the domino symmetry group: a proper rotation,
// optionally preceded by the LR2 mirror reflection. Improper elements can't
// be represented as a single composable Cube under the ordinary mod-3/mod-2
// orientation arithmetic Then uses, since that arithmetic assumes a
// chirality-preserving composition; the mirror step is applied separately,
// exactly once, before the rotation.
type dominoSym struct {
	rotation Cube
	mirror   bool
}

var rotQuarter = buildRotQuarters()

func buildRotQuarters() [4]Cube {
	var q [4]Cube
	q[0] = Solved
	for i := 1; i < 4; i++ {
		q[i] = q[i-1].Then(genU4)
	}
	return q
}

// dominoSyms holds all 16 domino symmetries, indexed by a bit-packed symbol
// s = lr2 | (u4<<1) | (f2<<3): bit 0 selects the LR2 mirror, bits 1-2 select
// a quarter-turn count about U-D, bit 3 selects the F-B half turn.
var dominoSyms = buildDominoSyms()

func buildDominoSyms() [NumDominoSymmetries]dominoSym {
	var syms [NumDominoSymmetries]dominoSym
	for s := 0; s < NumDominoSymmetries; s++ {
		lr2 := s & 1
		u4 := (s >> 1) & 3
		f2 := (s >> 3) & 1
		rotation := rotQuarter[u4]
		if f2 == 1 {
			rotation = rotation.Then(genF2)
		}
		syms[s] = dominoSym{rotation: rotation, mirror: lr2 == 1}
	}
	return syms
}

// ConjugateCube returns the domino symmetry dominoSyms[symIndex] applied to
// state: sym^-1 . state . sym for a proper rotation, or the mirrored
// equivalent for an improper one. This is state viewed in the reference
// frame of that symmetry.
func ConjugateCube(symIndex int, state Cube) Cube {
	sym := dominoSyms[symIndex]
	c := state
	if sym.mirror {
		c = genLR2.Inverse().Then(c).Then(genLR2)
		c = mirrorCornerOrientations(c)
	}
	return sym.rotation.Inverse().Then(c).Then(sym.rotation)
}

// probeCubes are two arbitrarily scrambled, sufficiently asymmetric cubes
// used to identify domino symmetries by their action rather than by
// deriving composition/inverse as closed-form bit arithmetic: two distinct
// symmetries essentially never agree on where both probes land, so matching
// against their images pins down the answer uniquely.
var probeCubes = [2]Cube{
	baseQuarterTurn[U].Then(baseQuarterTurn[R]).Then(baseQuarterTurn[F]).Then(baseQuarterTurn[D]).Then(baseQuarterTurn[B]),
	baseQuarterTurn[L].Then(baseQuarterTurn[B]).Then(baseQuarterTurn[U]).Then(baseQuarterTurn[R]).Then(baseQuarterTurn[F]).Then(baseQuarterTurn[D]),
}

var symImageTable = buildSymImageTable()

func buildSymImageTable() [NumDominoSymmetries][2]Cube {
	var t [NumDominoSymmetries][2]Cube
	for s := 0; s < NumDominoSymmetries; s++ {
		for i, p := range probeCubes {
			t[s][i] = ConjugateCube(s, p)
		}
	}
	return t
}

func matchSymImage(target [2]Cube) int {
	for cand := 0; cand < NumDominoSymmetries; cand++ {
		if symImageTable[cand] == target {
			return cand
		}
	}
	panic("cube: symmetry composition did not match any of the 16 domino symmetries")
}

var symComposeTable = buildSymComposeTable()

// buildSymComposeTable finds, for every pair (s, t), the single symmetry
// equivalent to conjugating by s and then by t, by brute force: there is no
// closed form for composition in a group with improper elements without
// also tracking chirality by hand, so this matches the reference
// implementation's own approach to move conjugation (findMove) rather than
// deriving one.
func buildSymComposeTable() [NumDominoSymmetries][NumDominoSymmetries]int {
	var t [NumDominoSymmetries][NumDominoSymmetries]int
	for s := 0; s < NumDominoSymmetries; s++ {
		for u := 0; u < NumDominoSymmetries; u++ {
			var target [2]Cube
			for i, p := range probeCubes {
				target[i] = ConjugateCube(u, ConjugateCube(s, p))
			}
			t[s][u] = matchSymImage(target)
		}
	}
	return t
}

var symInverseTable = buildSymInverseTable()

func buildSymInverseTable() [NumDominoSymmetries]int {
	var t [NumDominoSymmetries]int
	for s := 0; s < NumDominoSymmetries; s++ {
		for u := 0; u < NumDominoSymmetries; u++ {
			if symComposeTable[s][u] == 0 {
				t[s] = u
				break
			}
		}
	}
	return t
}

// SymCompose returns the domino symmetry equivalent to conjugating by s and
// then by t.
func SymCompose(s, t int) int { return symComposeTable[s][t] }

// SymInverse returns the domino symmetry that undoes s.
func SymInverse(s int) int { return symInverseTable[s] }

// moveConjugationTable[s][m] is AllMoves()[m] conjugated by dominoSyms[s],
// found by brute-force matching against the 18 move cubes (mirrors how the
// reference implementation resolves move conjugation: there is no closed
// form, so every symmetry's action on every move is precomputed once).
var moveConjugationTable = buildMoveConjugationTable()

func buildMoveConjugationTable() [NumDominoSymmetries][18]Move {
	moves := AllMoves()
	var table [NumDominoSymmetries][18]Move
	for s := 0; s < NumDominoSymmetries; s++ {
		for i, m := range moves {
			conjCube := ConjugateCube(s, m.Cube())
			table[s][i] = findMove(moves, conjCube)
		}
	}
	return table
}

func findMove(moves []Move, target Cube) Move {
	for _, m := range moves {
		if m.Cube() == target {
			return m
		}
	}
	panic("cube: symmetry conjugation of a move did not land on a move")
}

func moveIndex(m Move) int {
	for i, cand := range AllMoves() {
		if cand == m {
			return i
		}
	}
	panic("cube: not a recognized move")
}

// ConjugateMove returns m conjugated by dominoSyms[symIndex].
func ConjugateMove(symIndex int, m Move) Move {
	return moveConjugationTable[symIndex][moveIndex(m)]
}
