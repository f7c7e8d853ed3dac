package tables

import (
	"encoding/binary"

	"github.com/ehrlich-b/twisty/internal/cube"
	"github.com/ehrlich-b/twisty/internal/kociemba/coords"
)

// getBits reads a bits-wide field at the given field index out of data,
// packed contiguously starting at bit 0. Fields may straddle a byte
// boundary, which a single 16-bit read always covers since bits is never
// more than 4 here.
func getBits(data []byte, index uint64, bits uint) uint8 {
	bitPos := index * uint64(bits)
	byteIdx := bitPos / 8
	bitOff := bitPos % 8
	v := uint16(data[byteIdx])
	if int(byteIdx)+1 < len(data) {
		v |= uint16(data[byteIdx+1]) << 8
	}
	return uint8((v >> bitOff) & ((1 << bits) - 1))
}

func setBits(data []byte, index uint64, bits uint, val uint8) {
	bitPos := index * uint64(bits)
	byteIdx := bitPos / 8
	bitOff := bitPos % 8
	mask := uint16(((1 << bits) - 1) << bitOff)
	v := uint16(data[byteIdx])
	if int(byteIdx)+1 < len(data) {
		v |= uint16(data[byteIdx+1]) << 8
	}
	v = (v &^ mask) | (uint16(val) << bitOff)
	data[byteIdx] = byte(v)
	if int(byteIdx)+1 < len(data) {
		data[byteIdx+1] = byte(v >> 8)
	}
}

func bitPackedBytes(n int, bits uint) int {
	total := uint64(n) * uint64(bits)
	return int((total + 7) / 8)
}

// windowedPrune is a BFS-distance table stored the way spec's two joint
// pruning tables are: a dense bits-wide packed array covering the common
// window [low, low+2^bits), plus a sparse shortcut map for every index
// whose true distance falls outside it (the handful of levels near
// solved, and anything past the window's far edge). get always checks
// the shortcut map first since a packed slot for a shortcut-routed index
// holds no meaningful value.
type windowedPrune struct {
	packed   []byte
	bits     uint
	low      uint8
	shortcut map[uint32]uint8
}

func buildWindowedPrune(dist []uint8, bits uint, low uint8) *windowedPrune {
	high := low + uint8(1<<bits) - 1
	p := &windowedPrune{
		packed:   make([]byte, bitPackedBytes(len(dist), bits)),
		bits:     bits,
		low:      low,
		shortcut: make(map[uint32]uint8),
	}
	for i, d := range dist {
		if d >= low && d <= high {
			setBits(p.packed, uint64(i), bits, d-low)
		} else {
			p.shortcut[uint32(i)] = d
		}
	}
	return p
}

func (p *windowedPrune) get(i uint32) uint8 {
	if v, ok := p.shortcut[i]; ok {
		return v
	}
	return p.low + getBits(p.packed, uint64(i), p.bits)
}

// encode serializes a windowedPrune to a flat byte payload suitable for
// loadOrGenerate's checksummed cache file: packed length and bytes,
// followed by the shortcut map's size and (index, value) records.
func (p *windowedPrune) encode() []byte {
	buf := make([]byte, 0, 8+len(p.packed)+len(p.shortcut)*5)
	var word [4]byte
	binary.LittleEndian.PutUint32(word[:], uint32(len(p.packed)))
	buf = append(buf, word[:]...)
	buf = append(buf, p.packed...)
	binary.LittleEndian.PutUint32(word[:], uint32(len(p.shortcut)))
	buf = append(buf, word[:]...)
	for idx, val := range p.shortcut {
		var rec [5]byte
		binary.LittleEndian.PutUint32(rec[:4], idx)
		rec[4] = val
		buf = append(buf, rec[:]...)
	}
	return buf
}

func decodeWindowedPrune(b []byte, bits uint, low uint8) *windowedPrune {
	packedLen := binary.LittleEndian.Uint32(b[:4])
	b = b[4:]
	packed := make([]byte, packedLen)
	copy(packed, b[:packedLen])
	b = b[packedLen:]
	count := binary.LittleEndian.Uint32(b[:4])
	b = b[4:]
	shortcut := make(map[uint32]uint8, count)
	for i := uint32(0); i < count; i++ {
		idx := binary.LittleEndian.Uint32(b[:4])
		val := b[4]
		shortcut[idx] = val
		b = b[5:]
	}
	return &windowedPrune{packed: packed, bits: bits, low: low, shortcut: shortcut}
}

// jointBFS runs a breadth-first search over the product space symCoord in
// [0, symCount) by other in [0, otherCount), starting from the packed
// index start (the solved cube's entry), using next to compute the result
// of each of numMoves moves. This is top-down
// only: the reference implementation this is grounded on
// (original_source/kociemba/src/tables/prune_phase_1.rs) has a bottom-up
// switch for dense-frontier levels, but it's commented out and unused in
// the shipped solver, so only the top-down branch that actually runs
// there is reproduced here.
func jointBFS(symCount, otherCount, numMoves int, start uint32, next func(sym, other uint32, move int) (uint32, uint32)) []uint8 {
	n := symCount * otherCount
	dist := make([]uint8, n)
	for i := range dist {
		dist[i] = unvisited
	}
	dist[start] = 0
	queue := make([]uint32, 1, n)
	queue[0] = start
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		sym, other := cur/uint32(otherCount), cur%uint32(otherCount)
		d := dist[cur] + 1
		for m := 0; m < numMoves; m++ {
			ns, no := next(sym, other, m)
			idx := ns*uint32(otherCount) + no
			if dist[idx] == unvisited {
				dist[idx] = d
				queue = append(queue, idx)
			}
		}
	}
	return dist
}

// buildPhase1JointPrune builds the phase-1 pruning table over
// (EdgeGroupOrientSym, CornerOrientRaw), 64430*2187 entries. A move's
// effect on the pair is computed the way the Rust reference's
// apply_move_and_transform does: advance the edge coordinate's
// representative through the raw move table and re-reduce it to get the
// new sym-coord and the conjugation that takes the mover back to that
// sym-coord's frame, then advance the corner coordinate through the same
// raw move table in the old frame and apply that conjugation to express
// it in the new one.
func buildPhase1JointPrune(edgeGroupOrientMove []uint32, cornerOrientMove []uint16, lk *edgeGroupOrientSymLookup) *windowedPrune {
	const numMoves = 18
	otherCount := coords.CornerOrientRawCount
	solvedSym, _ := lk.reduce(coords.EdgeGroupOrientRawFrom(cube.Solved))
	start := solvedSym*uint32(otherCount) + uint32(coords.CornerOrientRawFrom(cube.Solved))
	dist := jointBFS(lk.count(), otherCount, numMoves, start, func(sym, other uint32, m int) (uint32, uint32) {
		rep := lk.representative[sym]
		rawEdgeNext := edgeGroupOrientMove[int(rep)*numMoves+m]
		newSym, conj := lk.reduce(coords.EdgeGroupOrientRaw(rawEdgeNext))
		// conj satisfies rawEdgeNext == conjugate(representative[newSym],
		// conj), so the symmetry that carries the raw edge value INTO the
		// new representative's frame is its inverse; the corner coordinate
		// has to move into that same frame to stay paired with the edge
		// side of the table.
		toRepFrame := cube.SymInverse(int(conj))
		afterMove := coords.CornerOrientRaw(cornerOrientMove[int(other)*numMoves+m])
		newOther := coords.ConjugateCornerOrient(afterMove, toRepFrame)
		return newSym, uint32(newOther)
	})
	return buildWindowedPrune(dist, 3, 4)
}

// buildPhase2JointPrune builds the phase-2 pruning table over
// (CornerPermSym, UDEdgePermRaw), 2768*40320 entries, following the same
// apply-move-then-transform shape as buildPhase1JointPrune but over
// domino moves only.
func buildPhase2JointPrune(cornerPermMove []uint16, udEdgePermMove []uint16, lk *cornerPermSymLookup) *windowedPrune {
	numMoves := dominoMoveCount
	otherCount := coords.UDEdgePermRawCount
	solvedSym, _ := lk.reduce(coords.CornerPermRawFrom(cube.Solved))
	start := solvedSym*uint32(otherCount) + uint32(coords.UDEdgePermRawFrom(cube.Solved))
	dist := jointBFS(lk.count(), otherCount, numMoves, start, func(sym, other uint32, m int) (uint32, uint32) {
		rep := lk.representative[sym]
		rawCpNext := cornerPermMove[int(rep)*numMoves+m]
		newSym, conj := lk.reduce(coords.CornerPermRaw(rawCpNext))
		toRepFrame := cube.SymInverse(int(conj))
		afterMove := coords.UDEdgePermRaw(udEdgePermMove[int(other)*numMoves+m])
		newOther := coords.ConjugateUDEdgePerm(afterMove, toRepFrame)
		return newSym, uint32(newOther)
	})
	return buildWindowedPrune(dist, 4, 3)
}
