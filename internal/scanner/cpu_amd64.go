//go:build amd64

package scanner

import (
	"golang.org/x/sys/cpu"
)

func hasAVX2() bool {
	return cpu.X86.HasAVX2
}

func hasSSE42() bool {
	return cpu.X86.HasSSE42
}

func hasSIMD() bool {
	return hasAVX2() || hasSSE42()
}

// detectWidth matches the portable window to the widest vector register.
func detectWidth() int {
	switch {
	case hasAVX2():
		return AVX2ChunkSize
	case hasSSE42():
		return SSE4ChunkSize
	}
	return SWARChunkSize
}
