package cfen

import "github.com/ehrlich-b/twisty/internal/cube"

// Canonical orients a CFEN state with the cube's own U and F home faces
// up and front, the identity orientation every other helper here
// measures against.
var Canonical = Orientation{Up: cube.U, Front: cube.F}

// faceletBlock[f] is the position of face f's nine stickers in the
// U, R, F, D, L, B order of cube.Facelets.
var faceletBlock = [6]int{cube.U: 0, cube.R: 1, cube.F: 2, cube.D: 3, cube.L: 4, cube.B: 5}

// ToCube reconstructs the cubie-level cube the state describes.
func (s *State) ToCube() (cube.Cube, error) {
	mapping := orientationMapping(s.Orientation)
	var flat [54]cube.Face
	for cfenFace := 0; cfenFace < 6; cfenFace++ {
		internalFace := mapping[cfenFace]
		base := faceletBlock[internalFace] * 9
		copy(flat[base:base+9], s.Faces[cfenFace][:])
	}
	return cube.FromFacelets(flat)
}

// FromCube projects c onto a CFEN state expressed in the given
// orientation.
func FromCube(c cube.Cube, orientation Orientation) *State {
	mapping := reverseOrientationMapping(orientation)
	flat := c.Facelets()
	var s State
	s.Orientation = orientation
	for internalFace := 0; internalFace < 6; internalFace++ {
		cfenFace := mapping[internalFace]
		base := faceletBlock[internalFace] * 9
		copy(s.Faces[cfenFace][:], flat[base:base+9])
	}
	return &s
}

// Generate renders c as a CFEN string in the canonical orientation.
func Generate(c cube.Cube) string {
	return FromCube(c, Canonical).String()
}

// MatchesCube reports whether c's stickers, projected into the state's
// orientation, equal the state's stickers exactly; CFEN carries no
// wildcard marker in this notation, so a match requires every sticker
// to agree.
func (s *State) MatchesCube(c cube.Cube) bool {
	candidate := FromCube(c, s.Orientation)
	return *candidate == *s
}

// Validate reports whether cfenStr parses as a well-formed CFEN string.
func Validate(cfenStr string) error {
	_, err := Parse(cfenStr)
	return err
}

// orientationMapping[cfenFaceIdx] gives the home face whose stickers
// should be read into CFEN face position cfenFaceIdx (U, R, F, D, L, B
// order), under the cube held with orientation.Up up and
// orientation.Front forward. Only the four orientations reachable by a
// 180-degree whole-cube flip about a single axis are supported; any
// other request falls back to the canonical mapping.
func orientationMapping(o Orientation) [6]cube.Face {
	switch {
	case o.Up == cube.U && o.Front == cube.F:
		return [6]cube.Face{cube.U, cube.R, cube.F, cube.D, cube.L, cube.B}
	case o.Up == cube.D && o.Front == cube.B:
		return [6]cube.Face{cube.D, cube.L, cube.B, cube.U, cube.R, cube.F}
	case o.Up == cube.D && o.Front == cube.F:
		return [6]cube.Face{cube.D, cube.R, cube.F, cube.U, cube.L, cube.B}
	case o.Up == cube.U && o.Front == cube.B:
		return [6]cube.Face{cube.U, cube.L, cube.B, cube.D, cube.R, cube.F}
	default:
		return [6]cube.Face{cube.U, cube.R, cube.F, cube.D, cube.L, cube.B}
	}
}

// reverseOrientationMapping[internalFace] gives the CFEN face position
// that home face internalFace lands on under orientation. It inverts
// orientationMapping.
func reverseOrientationMapping(o Orientation) [6]int {
	fwd := orientationMapping(o)
	var rev [6]int
	for cfenIdx, homeFace := range fwd {
		rev[int(homeFace)] = cfenIdx
	}
	return rev
}
