// Package classify holds the UTF-8 byte classification primitives shared by
// every scan strategy. All functions are pure and safe for concurrent use.
package classify

import (
	"encoding/binary"
	"math/bits"
)

const (
	lo8 uint64 = 0x0101010101010101
	hi8 uint64 = 0x8080808080808080
)

// IsContinuation reports whether b is a UTF-8 continuation byte (10xxxxxx).
func IsContinuation(b byte) bool {
	return b&0xC0 == 0x80
}

// CharacterWidth returns the encoded width of the character starting with
// lead. Bytes below 0xC0 report 1, so a continuation byte is never mistaken
// for the start of a multi-byte sequence.
func CharacterWidth(lead byte) int {
	switch {
	case lead < 0xC0:
		return 1
	case lead < 0xE0:
		return 2
	case lead < 0xF0:
		return 3
	default:
		return 4
	}
}

// Broadcast replicates b into every byte of a uint64 lane.
func Broadcast(b byte) uint64 {
	return uint64(b) * lo8
}

// ZeroBytes returns a lane with 0x80 set in exactly the bytes of v that are
// zero. Unlike the (v-lo)&^v&hi trick it has no false positives, so the
// result can be used as a per-byte mask.
func ZeroBytes(v uint64) uint64 {
	const lo7 = 0x7F7F7F7F7F7F7F7F
	t := (v & lo7) + lo7
	return ^(t | v | lo7)
}

// CountContinuations counts the continuation bytes packed in lane.
func CountContinuations(lane uint64) int {
	// bit7 set and bit6 clear
	return bits.OnesCount64(lane & ^(lane << 1) & hi8)
}

// CountFourByteLeads counts the bytes in lane that start a 4-byte sequence.
func CountFourByteLeads(lane uint64) int {
	return bits.OnesCount64(lane & (lane << 1) & (lane << 2) & (lane << 3) & hi8)
}

// CountCharacters returns the number of characters (lead bytes) in p.
func CountCharacters(p []byte) int {
	n := len(p)
	continuations := 0
	for len(p) >= 8 {
		lane := binary.LittleEndian.Uint64(p)
		p = p[8:]
		if lane&hi8 == 0 {
			continue
		}
		continuations += CountContinuations(lane)
	}
	for _, b := range p {
		if IsContinuation(b) {
			continuations++
		}
	}
	return n - continuations
}

// CountFourByte returns the number of 4-byte sequence leads in p. Each of
// them encodes as a surrogate pair in UTF-16.
func CountFourByte(p []byte) int {
	count := 0
	for len(p) >= 8 {
		lane := binary.LittleEndian.Uint64(p)
		p = p[8:]
		if lane&hi8 == 0 {
			continue
		}
		count += CountFourByteLeads(lane)
	}
	for _, b := range p {
		if b >= 0xF0 {
			count++
		}
	}
	return count
}
