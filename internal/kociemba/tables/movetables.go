package tables

import (
	"github.com/ehrlich-b/twisty/internal/cube"
	"github.com/ehrlich-b/twisty/internal/kociemba/coords"
)

// buildCornerOrientMove computes, for every CornerOrientRaw coordinate and
// every one of the 18 moves, the coordinate that move produces. Used by
// phase 1.
func buildCornerOrientMove() []uint16 {
	moves := cube.AllMoves()
	out := make([]uint16, coords.CornerOrientRawCount*len(moves))
	for co := 0; co < coords.CornerOrientRawCount; co++ {
		orients := coords.CornerOrientRaw(co).Orientations()
		var c cube.Cube
		for i := range c.CornerPerm {
			c.CornerPerm[i] = uint8(i)
		}
		c.CornerOrient = orients
		for mi, m := range moves {
			next := c.Apply(m)
			out[co*len(moves)+mi] = uint16(coords.CornerOrientRawFrom(next))
		}
	}
	return out
}

// buildEdgeGroupOrientMove computes, for every EdgeGroupOrientRaw
// coordinate and every one of the 18 moves, the coordinate that move
// produces. Used by phase 1; this is the largest table in the solver
// (EdgeGroupOrientRawCount * 18 entries).
func buildEdgeGroupOrientMove() []uint32 {
	moves := cube.AllMoves()
	out := make([]uint32, coords.EdgeGroupOrientRawCount*len(moves))
	for v := 0; v < coords.EdgeGroupOrientRawCount; v++ {
		group, orient := coords.EdgeGroupOrientRaw(v).Split()
		c := edgeGroupOrientCube(group, orient)
		for mi, m := range moves {
			next := c.Apply(m)
			out[v*len(moves)+mi] = uint32(coords.EdgeGroupOrientRawFrom(next))
		}
	}
	return out
}

func edgeGroupOrientCube(group coords.EdgeGroupRaw, orient coords.EdgeOrientRaw) cube.Cube {
	var c cube.Cube
	for i := range c.CornerPerm {
		c.CornerPerm[i] = uint8(i)
	}
	combo := group.Combination()
	oris := orient.Orientations()
	uIdx, eIdx := uint8(0), uint8(8)
	for slot := 0; slot < 12; slot++ {
		if combo[slot] {
			c.EdgePerm[slot] = eIdx
			eIdx++
		} else {
			c.EdgePerm[slot] = uIdx
			uIdx++
		}
		c.EdgeOrient[slot] = oris[slot]
	}
	return c
}

// buildCornerPermMove computes, for every CornerPermRaw coordinate and
// every one of the 10 domino moves, the resulting coordinate. Used by
// phase 2.
func buildCornerPermMove() []uint16 {
	moves := cube.DominoMoves()
	out := make([]uint16, coords.CornerPermRawCount*len(moves))
	for v := 0; v < coords.CornerPermRawCount; v++ {
		var c cube.Cube
		copy(c.CornerPerm[:], coords.CornerPermRaw(v).Permutation())
		for i := range c.EdgePerm {
			c.EdgePerm[i] = uint8(i)
		}
		for mi, m := range moves {
			next := c.Apply(m)
			out[v*len(moves)+mi] = uint16(coords.CornerPermRawFrom(next))
		}
	}
	return out
}

// buildUDEdgePermMove computes, for every UDEdgePermRaw coordinate and
// every one of the 10 domino moves, the resulting coordinate. Valid only
// within the domino subgroup, which never moves a U/D-layer edge into the
// E slice or vice versa.
func buildUDEdgePermMove() []uint16 {
	moves := cube.DominoMoves()
	out := make([]uint16, coords.UDEdgePermRawCount*len(moves))
	for v := 0; v < coords.UDEdgePermRawCount; v++ {
		var c cube.Cube
		for i := range c.CornerPerm {
			c.CornerPerm[i] = uint8(i)
		}
		p := coords.UDEdgePermRaw(v).Permutation()
		copy(c.EdgePerm[:8], p)
		for i := 0; i < 4; i++ {
			c.EdgePerm[8+i] = uint8(8 + i)
		}
		for mi, m := range moves {
			next := c.Apply(m)
			out[v*len(moves)+mi] = uint16(coords.UDEdgePermRawFrom(next))
		}
	}
	return out
}

// buildEEdgePermMove computes, for every EEdgePermRaw coordinate and every
// one of the 10 domino moves, the resulting coordinate.
func buildEEdgePermMove() []uint16 {
	moves := cube.DominoMoves()
	out := make([]uint16, coords.EEdgePermRawCount*len(moves))
	for v := 0; v < coords.EEdgePermRawCount; v++ {
		var c cube.Cube
		for i := range c.CornerPerm {
			c.CornerPerm[i] = uint8(i)
		}
		for i := 0; i < 8; i++ {
			c.EdgePerm[i] = uint8(i)
		}
		p := coords.EEdgePermRaw(v).Permutation()
		for i := 0; i < 4; i++ {
			c.EdgePerm[8+i] = p[i] + 8
		}
		for mi, m := range moves {
			next := c.Apply(m)
			out[v*len(moves)+mi] = uint16(coords.EEdgePermRawFrom(next))
		}
	}
	return out
}
