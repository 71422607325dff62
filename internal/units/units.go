// Package units computes UTF-16 code-unit lengths of valid UTF-8 slices and
// transcodes UTF-8 into UTF-16LE. Counter and Transcoder are the pluggable
// accelerator interfaces; any conformant implementation can replace Default
// without changing scanner output.
package units

import (
	"unicode/utf8"

	"github.com/coregx/coregex/simd"

	"github.com/biggeezerdevelopment/spanscan/internal/classify"
)

// Counter reports the number of UTF-16 code units needed to encode p.
// p must be valid UTF-8 starting at a character boundary.
type Counter interface {
	UTF16Length(p []byte) int
}

// Transcoder converts valid UTF-8 into UTF-16LE code units.
type Transcoder interface {
	Counter
	// EncodeUTF16LE writes the code units of src into dst and returns the
	// number written. dst must hold at least UTF16Length(src) units.
	EncodeUTF16LE(dst []uint16, src []byte) int
}

// Default is the counter used when none is configured.
var Default Transcoder = swarCounter{}

// CounterFunc adapts a plain function to the Counter interface.
type CounterFunc func(p []byte) int

func (f CounterFunc) UTF16Length(p []byte) int { return f(p) }

type swarCounter struct{}

// UTF16Length counts one unit per character plus one more for each
// character outside the BMP.
func (swarCounter) UTF16Length(p []byte) int {
	i := asciiPrefix(p)
	rest := p[i:]
	return i + classify.CountCharacters(rest) + classify.CountFourByte(rest)
}

func (c swarCounter) EncodeUTF16LE(dst []uint16, src []byte) int {
	return EncodeUTF16LE(dst, src)
}

// UTF16Length is Default.UTF16Length.
func UTF16Length(p []byte) int {
	return Default.UTF16Length(p)
}

// CountUTF8 returns the number of Unicode scalars in p.
func CountUTF8(p []byte) int {
	i := asciiPrefix(p)
	return i + classify.CountCharacters(p[i:])
}

var nonASCII = func() (t [256]bool) {
	for b := utf8.RuneSelf; b < len(t); b++ {
		t[b] = true
	}
	return t
}()

// asciiPrefix returns the length of the leading run of ASCII bytes in p.
func asciiPrefix(p []byte) int {
	if i := simd.MemchrInTable(p, &nonASCII); i >= 0 {
		return i
	}
	return len(p)
}

// EncodeUTF16LE transcodes src into dst and returns the number of code units
// written. It stops early if dst is too small.
func EncodeUTF16LE(dst []uint16, src []byte) int {
	n := 0
	for i := 0; i < len(src) && n < len(dst); {
		b := src[i]
		if b < utf8.RuneSelf {
			dst[n] = uint16(b)
			n++
			i++
			continue
		}
		r, size := utf8.DecodeRune(src[i:])
		i += size
		if r < 0x10000 {
			dst[n] = uint16(r)
			n++
			continue
		}
		if n+1 >= len(dst) {
			break
		}
		r -= 0x10000
		dst[n] = uint16(0xD800 + (r>>10)&0x3FF)
		dst[n+1] = uint16(0xDC00 + r&0x3FF)
		n += 2
	}
	return n
}

// ToUTF16 returns the UTF-16LE encoding of src in a freshly sized buffer.
func ToUTF16(src []byte) []uint16 {
	buf := make([]uint16, UTF16Length(src))
	return buf[:EncodeUTF16LE(buf, src)]
}
