package coords

import "github.com/ehrlich-b/twisty/internal/cube"

// placeholderEdges builds a cube.Cube carrying only edge state, suitable
// as input to cube.ConjugateCube: conjugation of the packed
// group+orientation coordinates only depends on which slot holds a
// solved-group member (not which specific one), so any consistent
// assignment of group-member labels to group slots works.
func placeholderEdges(group EdgeGroupRaw, orient EdgeOrientRaw) cube.Cube {
	var c cube.Cube
	for i := range c.CornerPerm {
		c.CornerPerm[i] = uint8(i)
	}
	combo := group.Combination()
	ori := orient.Orientations()
	uIdx, eIdx := uint8(0), uint8(8)
	for slot := 0; slot < 12; slot++ {
		if combo[slot] {
			c.EdgePerm[slot] = eIdx
			eIdx++
		} else {
			c.EdgePerm[slot] = uIdx
			uIdx++
		}
		c.EdgeOrient[slot] = ori[slot]
	}
	return c
}

// NumSymmetries is the order of the domino symmetry group every
// symmetry-reduced coordinate family in this package is built under.
const NumSymmetries = cube.NumDominoSymmetries

// ConjugateEdgeGroupOrient returns the EdgeGroupOrientRaw coordinate that
// results from viewing raw's underlying cube state in the reference frame
// of domino symmetry symIndex.
func ConjugateEdgeGroupOrient(raw EdgeGroupOrientRaw, symIndex int) EdgeGroupOrientRaw {
	group, orient := raw.Split()
	c := placeholderEdges(group, orient)
	conj := cube.ConjugateCube(symIndex, c)
	var newGroup permCombination
	for i, v := range conj.EdgePerm {
		newGroup[i] = v >= 8
	}
	return encodeGroupOrient(newGroup, conj.EdgeOrient)
}

var identityCorners = [8]uint8{0, 1, 2, 3, 4, 5, 6, 7}

type permCombination = [12]bool

func encodeGroupOrient(group permCombination, orient [12]uint8) EdgeGroupOrientRaw {
	var c cube.Cube
	copy(c.CornerPerm[:], identityCorners[:])
	uIdx, eIdx := uint8(0), uint8(8)
	for slot := 0; slot < 12; slot++ {
		if group[slot] {
			c.EdgePerm[slot] = eIdx
			eIdx++
		} else {
			c.EdgePerm[slot] = uIdx
			uIdx++
		}
		c.EdgeOrient[slot] = orient[slot]
	}
	return EdgeGroupOrientRawFrom(c)
}

// placeholderCorners builds a cube.Cube carrying only corner state for
// conjugating CornerPermRaw coordinates.
func placeholderCorners(perm CornerPermRaw) cube.Cube {
	var c cube.Cube
	p := perm.Permutation()
	copy(c.CornerPerm[:], p)
	for i := range c.EdgePerm {
		c.EdgePerm[i] = uint8(i)
	}
	return c
}

// ConjugateCornerPerm returns the CornerPermRaw coordinate that results
// from viewing perm's underlying cube state in the reference frame of
// domino symmetry symIndex.
func ConjugateCornerPerm(perm CornerPermRaw, symIndex int) CornerPermRaw {
	c := placeholderCorners(perm)
	conj := cube.ConjugateCube(symIndex, c)
	return CornerPermRawFrom(conj)
}

// placeholderCornerOrient builds a cube.Cube carrying only corner
// orientation state, identity permutation, for conjugating CornerOrientRaw
// coordinates (the raw companion coordinate carried alongside
// EdgeGroupOrientSym in the phase-1 joint pruning table).
func placeholderCornerOrient(co CornerOrientRaw) cube.Cube {
	var c cube.Cube
	copy(c.CornerPerm[:], identityCorners[:])
	c.CornerOrient = co.Orientations()
	for i := range c.EdgePerm {
		c.EdgePerm[i] = uint8(i)
	}
	return c
}

// ConjugateCornerOrient returns the CornerOrientRaw coordinate that results
// from viewing co's underlying cube state in the reference frame of domino
// symmetry symIndex.
func ConjugateCornerOrient(co CornerOrientRaw, symIndex int) CornerOrientRaw {
	c := placeholderCornerOrient(co)
	conj := cube.ConjugateCube(symIndex, c)
	return CornerOrientRawFrom(conj)
}

// placeholderUDEdgePerm builds a cube.Cube carrying only the permutation of
// the 8 U/D-layer edge slots, E-slice and corners held at identity, for
// conjugating UDEdgePermRaw coordinates (the raw companion coordinate
// carried alongside CornerPermSym in the phase-2 joint pruning table).
func placeholderUDEdgePerm(ud UDEdgePermRaw) cube.Cube {
	var c cube.Cube
	copy(c.CornerPerm[:], identityCorners[:])
	copy(c.EdgePerm[:8], ud.Permutation())
	for i := 0; i < 4; i++ {
		c.EdgePerm[8+i] = uint8(8 + i)
	}
	return c
}

// ConjugateUDEdgePerm returns the UDEdgePermRaw coordinate that results
// from viewing ud's underlying cube state in the reference frame of domino
// symmetry symIndex. Only valid for symmetries that fix the {U/D-layer,
// E-slice} split, which every domino symmetry does by construction (the
// domino group is exactly the subgroup that preserves the <U,D,F2,B2,R2,L2>
// structure).
func ConjugateUDEdgePerm(ud UDEdgePermRaw, symIndex int) UDEdgePermRaw {
	c := placeholderUDEdgePerm(ud)
	conj := cube.ConjugateCube(symIndex, c)
	return UDEdgePermRawFrom(conj)
}
