//go:build !amd64 && !arm64

package scanner

// hasSIMD returns false for unsupported architectures
func hasSIMD() bool {
	return false
}

func detectWidth() int {
	return SWARChunkSize
}
