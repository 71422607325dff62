//go:build arm64

package scanner

import (
	"golang.org/x/sys/cpu"
)

func hasSIMD() bool {
	return cpu.ARM64.HasASIMD
}

func detectWidth() int {
	if hasSIMD() {
		return NEONChunkSize
	}
	return SWARChunkSize
}
