package cube

import "strings"

// facelet indices name a position in a flattened 54-sticker layout, nine
// per face in row-major order, face order U, R, F, D, L, B.
const (
	faceU = iota * 9
	faceR
	faceF
	faceD
	faceL
	faceB
)

// cornerFacelet[c] lists the three flattened sticker indices belonging to
// corner slot c, in the order (U-or-D sticker, then clockwise).
var cornerFacelet = [8][3]int{
	{faceU + 8, faceR + 0, faceF + 2}, // URF
	{faceU + 6, faceF + 0, faceL + 2}, // UFL
	{faceU + 0, faceL + 0, faceB + 2}, // ULB
	{faceU + 2, faceB + 0, faceR + 2}, // UBR
	{faceD + 2, faceF + 8, faceR + 6}, // DFR
	{faceD + 0, faceL + 8, faceF + 6}, // DLF
	{faceD + 6, faceB + 8, faceL + 6}, // DBL
	{faceD + 8, faceR + 8, faceB + 6}, // DRB
}

// edgeFacelet[e] lists the two flattened sticker indices belonging to edge
// slot e.
var edgeFacelet = [12][2]int{
	{faceU + 5, faceR + 1}, // UR
	{faceU + 7, faceF + 1}, // UF
	{faceU + 3, faceL + 1}, // UL
	{faceU + 1, faceB + 1}, // UB
	{faceD + 5, faceR + 7}, // DR
	{faceD + 1, faceF + 7}, // DF
	{faceD + 3, faceL + 7}, // DL
	{faceD + 7, faceB + 7}, // DB
	{faceF + 5, faceR + 3}, // FR
	{faceF + 3, faceL + 5}, // FL
	{faceB + 5, faceL + 3}, // BL
	{faceB + 3, faceR + 5}, // BR
}

// cornerColor[c] is the face (color) of each of corner c's three stickers
// on a solved cube, in the same order as cornerFacelet[c].
var cornerColor = [8][3]Face{
	{U, R, F}, // URF
	{U, F, L}, // UFL
	{U, L, B}, // ULB
	{U, B, R}, // UBR
	{D, F, R}, // DFR
	{D, L, F}, // DLF
	{D, B, L}, // DBL
	{D, R, B}, // DRB
}

// edgeColor[e] is the face of each of edge e's two stickers on a solved
// cube.
var edgeColor = [12][2]Face{
	{U, R}, // UR
	{U, F}, // UF
	{U, L}, // UL
	{U, B}, // UB
	{D, R}, // DR
	{D, F}, // DF
	{D, L}, // DL
	{D, B}, // DB
	{F, R}, // FR
	{F, L}, // FL
	{B, L}, // BL
	{B, R}, // BR
}

// Facelets projects c onto the 54-sticker layout, face order U, R, F, D,
// L, B, nine stickers per face in row-major order. Centers are fixed to
// their home face since center pieces are never tracked at the cubie
// level.
func (c Cube) Facelets() [54]Face {
	var out [54]Face
	for i, f := range []Face{U, R, F, D, L, B} {
		out[i*9+4] = f
	}
	for slot := 0; slot < 8; slot++ {
		cubie := c.CornerPerm[slot]
		ori := c.CornerOrient[slot]
		for k := 0; k < 3; k++ {
			out[cornerFacelet[slot][k]] = cornerColor[cubie][(uint8(k)+3-ori)%3]
		}
	}
	for slot := 0; slot < 12; slot++ {
		cubie := c.EdgePerm[slot]
		ori := c.EdgeOrient[slot]
		for k := 0; k < 2; k++ {
			out[edgeFacelet[slot][k]] = edgeColor[cubie][(uint8(k)+2-ori)%2]
		}
	}
	return out
}

// FromFacelets inverts Facelets, reconstructing the cubie-level cube that
// produces the given sticker layout. Returns an error if the stickers
// don't correspond to a physically assemblable cube (wrong sticker
// counts, a cubie that doesn't exist, or an orientation that can't be
// matched).
func FromFacelets(f [54]Face) (Cube, error) {
	var c Cube
	for slot := 0; slot < 8; slot++ {
		colors := [3]Face{f[cornerFacelet[slot][0]], f[cornerFacelet[slot][1]], f[cornerFacelet[slot][2]]}
		cubie, ori, err := matchCorner(colors)
		if err != nil {
			return Cube{}, err
		}
		c.CornerPerm[slot] = uint8(cubie)
		c.CornerOrient[slot] = ori
	}
	for slot := 0; slot < 12; slot++ {
		colors := [2]Face{f[edgeFacelet[slot][0]], f[edgeFacelet[slot][1]]}
		cubie, ori, err := matchEdge(colors)
		if err != nil {
			return Cube{}, err
		}
		c.EdgePerm[slot] = uint8(cubie)
		c.EdgeOrient[slot] = ori
	}
	return c, nil
}

func matchCorner(colors [3]Face) (int, uint8, error) {
	for cubie := 0; cubie < 8; cubie++ {
		for ori := uint8(0); ori < 3; ori++ {
			match := true
			for k := 0; k < 3; k++ {
				if cornerColor[cubie][(uint8(k)+3-ori)%3] != colors[k] {
					match = false
					break
				}
			}
			if match {
				return cubie, ori, nil
			}
		}
	}
	return 0, 0, errBadCorner(colors)
}

func matchEdge(colors [2]Face) (int, uint8, error) {
	for cubie := 0; cubie < 12; cubie++ {
		for ori := uint8(0); ori < 2; ori++ {
			match := true
			for k := 0; k < 2; k++ {
				if edgeColor[cubie][(uint8(k)+2-ori)%2] != colors[k] {
					match = false
					break
				}
			}
			if match {
				return cubie, ori, nil
			}
		}
	}
	return 0, 0, errBadEdge(colors)
}

type facletError struct{ msg string }

func (e facletError) Error() string { return e.msg }

func errBadCorner(colors [3]Face) error {
	return facletError{"cube: no corner cubie has stickers " + faceTriple(colors)}
}

func errBadEdge(colors [2]Face) error {
	return facletError{"cube: no edge cubie has stickers " + facePair(colors)}
}

func faceTriple(c [3]Face) string {
	return strings.Join([]string{c[0].String(), c[1].String(), c[2].String()}, "")
}

func facePair(c [2]Face) string {
	return strings.Join([]string{c[0].String(), c[1].String()}, "")
}
