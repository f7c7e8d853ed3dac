package cube

import (
	"math/rand"

	"github.com/ehrlich-b/twisty/internal/kociemba/permmath"
)

// Random returns a uniformly distributed legal cube: independent random
// corner and edge permutations constrained to share the same parity (an
// odd corner permutation always pairs with an odd edge permutation on a
// physically assemblable cube), plus independent random corner twist and
// edge flip coordinates, each redistributed so the total sums to zero mod
// 3 / mod 2.
func Random(r *rand.Rand) Cube {
	cornerRank := uint32(r.Int63n(int64(permmath.Factorial(8))))
	cornerPerm := permmath.Unrank(8, cornerRank)
	wantOdd := cornerPerm.IsOdd()

	var edgePerm permmath.Perm
	for {
		edgeRank := uint32(r.Int63n(int64(permmath.Factorial(12))))
		edgePerm = permmath.Unrank(12, edgeRank)
		if edgePerm.IsOdd() == wantOdd {
			break
		}
	}

	var c Cube
	copy(c.CornerPerm[:], cornerPerm)
	copy(c.EdgePerm[:], edgePerm)

	twistSum := 0
	for i := 0; i < 7; i++ {
		c.CornerOrient[i] = uint8(r.Intn(3))
		twistSum += int(c.CornerOrient[i])
	}
	c.CornerOrient[7] = uint8((3 - twistSum%3) % 3)

	flipSum := 0
	for i := 0; i < 11; i++ {
		c.EdgeOrient[i] = uint8(r.Intn(2))
		flipSum += int(c.EdgeOrient[i])
	}
	c.EdgeOrient[11] = uint8((2 - flipSum%2) % 2)

	return c
}
