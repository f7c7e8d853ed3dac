// Package cube implements the cubie-level representation of a 3x3x3
// Rubik's Cube: eight corners and twelve edges, each with a permutation
// and an orientation, plus the moves, symmetries, and facelet projection
// that operate on them.
package cube

// Corner names the eight corner slots in the standard reference layout.
type Corner int

const (
	URF Corner = iota
	UFL
	ULB
	UBR
	DFR
	DLF
	DBL
	DRB
)

var cornerNames = [8]string{"URF", "UFL", "ULB", "UBR", "DFR", "DLF", "DBL", "DRB"}

func (c Corner) String() string { return cornerNames[c] }

// Edge names the twelve edge slots in the standard reference layout.
type Edge int

const (
	UR Edge = iota
	UF
	UL
	UB
	DR
	DF
	DL
	DB
	FR
	FL
	BL
	BR
)

var edgeNames = [12]string{"UR", "UF", "UL", "UB", "DR", "DF", "DL", "DB", "FR", "FL", "BL", "BR"}

func (e Edge) String() string { return edgeNames[e] }

// Cube is the cubie-level state of a 3x3x3: CornerPerm[i] is which corner
// cubie occupies slot i, CornerOrient[i] is that cubie's twist (0, 1, or 2
// clockwise thirds of a turn from solved), and similarly for edges with a
// flip of 0 or 1. This is the representation every coordinate, move table,
// and search routine in internal/kociemba is built on.
type Cube struct {
	CornerPerm   [8]uint8
	CornerOrient [8]uint8
	EdgePerm     [12]uint8
	EdgeOrient   [12]uint8
}

// Solved is the identity cube.
var Solved = Cube{
	CornerPerm: [8]uint8{0, 1, 2, 3, 4, 5, 6, 7},
	EdgePerm:   [12]uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
}

// IsSolved reports whether c is the identity cube.
func (c Cube) IsSolved() bool {
	return c == Solved
}

// Then composes c and other as "apply c first, then other": the corner
// that ends up at slot i is the cubie that was at other's slot i within c,
// and orientations accumulate modulo their respective moduli. This mirrors
// permmath.Perm.Then's composition convention.
func (c Cube) Then(other Cube) Cube {
	var out Cube
	for i := 0; i < 8; i++ {
		src := other.CornerPerm[i]
		out.CornerPerm[i] = c.CornerPerm[src]
		out.CornerOrient[i] = (c.CornerOrient[src] + other.CornerOrient[i]) % 3
	}
	for i := 0; i < 12; i++ {
		src := other.EdgePerm[i]
		out.EdgePerm[i] = c.EdgePerm[src]
		out.EdgeOrient[i] = (c.EdgeOrient[src] + other.EdgeOrient[i]) % 2
	}
	return out
}

// Inverse returns the cube that undoes c.
func (c Cube) Inverse() Cube {
	var out Cube
	for i := 0; i < 8; i++ {
		src := c.CornerPerm[i]
		out.CornerPerm[src] = uint8(i)
		out.CornerOrient[src] = (3 - c.CornerOrient[i]) % 3
	}
	for i := 0; i < 12; i++ {
		src := c.EdgePerm[i]
		out.EdgePerm[src] = uint8(i)
		out.EdgeOrient[src] = c.EdgeOrient[i]
	}
	return out
}

// CornerParity reports the parity of the corner permutation.
func (c Cube) CornerParity() bool {
	return isOddPerm(c.CornerPerm[:])
}

// EdgeParity reports the parity of the edge permutation. A legal cube
// always has CornerParity() == EdgeParity().
func (c Cube) EdgeParity() bool {
	return isOddPerm(c.EdgePerm[:])
}

func isOddPerm(p []uint8) bool {
	n := len(p)
	visited := make([]bool, n)
	parity := 0
	for i := 0; i < n; i++ {
		if visited[i] {
			continue
		}
		length := 0
		for j := i; !visited[j]; j = int(p[j]) {
			visited[j] = true
			length++
		}
		parity ^= (length - 1) & 1
	}
	return parity == 1
}

// CornerTwist sums corner orientations modulo 3; a legal cube has 0.
func (c Cube) CornerTwist() int {
	sum := 0
	for _, o := range c.CornerOrient {
		sum += int(o)
	}
	return sum % 3
}

// EdgeFlip sums edge orientations modulo 2; a legal cube has 0.
func (c Cube) EdgeFlip() int {
	sum := 0
	for _, o := range c.EdgeOrient {
		sum += int(o)
	}
	return sum % 2
}

// IsLegal checks the three invariants a physically reachable cube state
// must satisfy: matching corner/edge parity, zero total corner twist, and
// zero total edge flip.
func (c Cube) IsLegal() bool {
	return c.CornerParity() == c.EdgeParity() && c.CornerTwist() == 0 && c.EdgeFlip() == 0
}
