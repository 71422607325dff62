package scanner

import (
	"encoding/binary"

	"github.com/biggeezerdevelopment/spanscan/internal/classify"
)

// movemask gathers the 0x80 bits of a lane into the low 8 bits.
const movemask = 0x0102040810204080

// needles is the pair of bytes a window is compared against.
type needles struct {
	a, b uint64 // broadcast lanes
	x, y byte
}

var (
	outsideNeedles = newNeedles(openBracket, newline)
	insideNeedles  = newNeedles(closeBracket, newline)
)

func newNeedles(x, y byte) needles {
	return needles{a: classify.Broadcast(x), b: classify.Broadcast(y), x: x, y: y}
}

// matchWindow compares every byte of w against set. Bit i of mask is set iff
// w[i] is one of the needles. len(w) must be a multiple of 8 and at most 64.
func matchWindow(w []byte, set needles) (found bool, mask uint64) {
	for i := 0; i+SWARChunkSize <= len(w); i += SWARChunkSize {
		lane := binary.LittleEndian.Uint64(w[i:])
		hit := classify.ZeroBytes(lane^set.a) | classify.ZeroBytes(lane^set.b)
		if hit == 0 {
			continue
		}
		mask |= ((hit >> 7) * movemask >> 56) << uint(i)
	}
	return mask != 0, mask
}

// countLeads returns the number of non-continuation bytes in w. len(w) must
// be a multiple of 8.
func countLeads(w []byte) int {
	continuations := 0
	for i := 0; i+SWARChunkSize <= len(w); i += SWARChunkSize {
		continuations += classify.CountContinuations(binary.LittleEndian.Uint64(w[i:]))
	}
	return len(w) - continuations
}
