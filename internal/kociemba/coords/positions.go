package coords

import (
	"github.com/ehrlich-b/twisty/internal/cube"
	"github.com/ehrlich-b/twisty/internal/kociemba/permmath"
)

// EdgeLayerPosition is a combination-with-order: which 4 of the 12 edge
// slots a layer's pieces occupy, and the order those pieces sit in among
// the occupied slots, independent of where the slots themselves are.
type EdgeLayerPosition struct {
	Group uint16 // C(12,4) rank of the occupied slots, 0..494
	Order uint8  // Lehmer rank of the 4 pieces among those slots, 0..23
}

// EdgePositions decomposes edge_perm into three disjoint partial
// representations: the U-layer edges (piece ids UR..UB, 0-3), the D-layer
// edges (piece ids DR..DB, 4-7), and the E-layer edges (piece ids FR..BR,
// 8-11). Under a domino move the E-layer pieces never leave the E slice,
// while F2, B2, R2 and L2 carry pieces between the U and D layers. Phase 1
// seeds its search from this split.
type EdgePositions struct {
	U, D, E EdgeLayerPosition
}

func edgeLayerPositionFrom(c cube.Cube, lo, hi uint8) EdgeLayerPosition {
	var membership permmath.Combination4
	order := make(permmath.Perm, 0, 4)
	for slot := 0; slot < 12; slot++ {
		piece := c.EdgePerm[slot]
		if piece >= lo && piece < hi {
			membership[slot] = true
			order = append(order, piece-lo)
		}
	}
	return EdgeLayerPosition{
		Group: membership.Rank(),
		Order: uint8(permmath.Rank(order)),
	}
}

// EdgePositionsFrom computes the U/D/E-layer position split of c.
func EdgePositionsFrom(c cube.Cube) EdgePositions {
	return EdgePositions{
		U: edgeLayerPositionFrom(c, 0, 4),
		D: edgeLayerPositionFrom(c, 4, 8),
		E: edgeLayerPositionFrom(c, 8, 12),
	}
}

// EdgeGroup projects the E-layer membership out of the position split. Its
// Group rank is the same C(12,4) membership coordinate EdgeGroupRawFrom
// computes directly from a cube.Cube, since both rank the same set of
// E-slice slots; phase 1 seeds from this rather than recomputing it.
func (p EdgePositions) EdgeGroup() EdgeGroupRaw {
	return EdgeGroupRaw(p.E.Group)
}

// EdgePerm reconstructs the 12-slot edge permutation the three layer
// positions encode, inverting EdgePositionsFrom.
func (p EdgePositions) EdgePerm() [12]uint8 {
	var out [12]uint8
	place := func(lp EdgeLayerPosition, lo uint8) {
		slots := permmath.UnrankCombination4(lp.Group).TrueIndices()
		order := permmath.Unrank(4, uint32(lp.Order))
		for i, slot := range slots {
			out[slot] = lo + order[i]
		}
	}
	place(p.U, 0)
	place(p.D, 4)
	place(p.E, 8)
	return out
}
