package scanner

// Window sizes for the vector strategies.
const (
	AVX2ChunkSize = 32 // 256-bit vectors
	SSE4ChunkSize = 16 // 128-bit vectors
	NEONChunkSize = 16 // 128-bit vectors
	SWARChunkSize = 8  // one general purpose register

	// MaxChunkSize bounds portable windows so a match mask fits in a uint64.
	MaxChunkSize = 64
)

// Bytes that drive the bracket state machine.
const (
	openBracket  = '['
	closeBracket = ']'
	newline      = '\n'
)

// ValidWidth reports whether width can be used as a portable window size.
func ValidWidth(width int) bool {
	return width >= SWARChunkSize && width <= MaxChunkSize && width%SWARChunkSize == 0
}
