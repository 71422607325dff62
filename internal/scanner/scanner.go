package scanner

import (
	"math/bits"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/coregx/coregex/simd"

	"github.com/biggeezerdevelopment/spanscan/internal/classify"
	"github.com/biggeezerdevelopment/spanscan/internal/units"
)

// Options configures a Scanner.
type Options struct {
	Units Units
	// Counter computes UTF-16 lengths in UnitsUTF16 mode. Nil selects
	// units.Default.
	Counter units.Counter
	// Width is the StrategyPortable window size. Zero selects the width
	// detected for this CPU.
	Width int
}

// Scanner holds the state of one scan: the position counters, the pending
// range start and the ranges found so far. A Scanner must not be shared
// between goroutines while scanning.
type Scanner struct {
	buf []byte
	pos Position

	// synced is the offset up to which pos.Character is accurate in
	// UnitsUTF16 mode.
	synced int

	pending bool
	start   Position
	ranges  []Range

	units   Units
	counter units.Counter
	width   int
}

// HasSIMD returns true if the CPU has vector registers the portable window
// is sized for.
func HasSIMD() bool {
	return hasSIMD()
}

// PortableWidth returns the window size StrategyPortable uses by default.
func PortableWidth() int {
	return portableWidth
}

var portableWidth = detectWidth()

func (s *Scanner) configure(opts Options) {
	s.units = opts.Units
	s.counter = opts.Counter
	if s.counter == nil {
		s.counter = units.Default
	}
	s.width = opts.Width
	if !ValidWidth(s.width) {
		s.width = portableWidth
	}
}

// Scan resets the scanner and scans data with the given strategy.
// The returned slice is owned by the scanner and is only valid until the next
// call to Scan or Release.
func (s *Scanner) Scan(data []byte, strategy Strategy) []Range {
	s.reset(data)
	s.run(strategy)
	return s.ranges
}

// ScanRunes scans data one rune at a time.
func (s *Scanner) ScanRunes(data []byte) []Range { return s.Scan(data, StrategyRunes) }

// ScanBytes scans data one byte at a time, striding over multi-byte characters.
func (s *Scanner) ScanBytes(data []byte) []Range { return s.Scan(data, StrategyBytes) }

// ScanV128 scans data in 16-byte windows.
func (s *Scanner) ScanV128(data []byte) []Range { return s.Scan(data, StrategyV128) }

// ScanV256 scans data in 32-byte windows.
func (s *Scanner) ScanV256(data []byte) []Range { return s.Scan(data, StrategyV256) }

// ScanPortable scans data in windows of the configured width.
func (s *Scanner) ScanPortable(data []byte) []Range { return s.Scan(data, StrategyPortable) }

// ScanMemchr scans data by seeking to the next byte that can change state.
func (s *Scanner) ScanMemchr(data []byte) []Range { return s.Scan(data, StrategyMemchr) }

// ScanLine continues a scan with the next line of a stream. Line-local
// counters restart at zero while the line number, any pending range start
// and the ranges found so far carry over. Offsets reported for ranges found
// here are relative to the start of their line.
func (s *Scanner) ScanLine(line []byte, strategy Strategy) {
	s.buf = line
	s.pos.Offset = 0
	s.pos.Character = 0
	s.synced = 0
	s.run(strategy)
}

// Ranges returns the ranges found so far.
func (s *Scanner) Ranges() []Range {
	return s.ranges
}

// Position returns the current position with Character brought up to date.
func (s *Scanner) Position() Position {
	if s.units == UnitsUTF16 {
		s.sync(s.pos.Offset)
	}
	return s.pos
}

// Pending returns the start of the range that is still open, if any. An open
// range is dropped when the input ends; callers that want to treat it as an
// error can inspect it here.
func (s *Scanner) Pending() (Position, bool) {
	return s.start, s.pending
}

// Reset clears all state, including the line counter and pending start.
// Call it before feeding the first line of a new stream to ScanLine.
func (s *Scanner) Reset() {
	s.reset(nil)
}

func (s *Scanner) reset(data []byte) {
	s.buf = data
	s.pos = Position{}
	s.synced = 0
	s.pending = false
	s.start = Position{}
	s.ranges = s.ranges[:0]
}

func (s *Scanner) run(strategy Strategy) {
	switch strategy {
	case StrategyRunes:
		s.scanRunes()
	case StrategyBytes:
		s.scanBytesLimited(len(s.buf))
	case StrategyV128:
		s.scanWindows(SSE4ChunkSize)
	case StrategyV256:
		s.scanWindows(AVX2ChunkSize)
	case StrategyMemchr:
		for s.memchrStep() {
		}
	default:
		s.scanWindows(s.width)
	}
	// Only invalid input can stride past the end.
	if s.pos.Offset > len(s.buf) {
		s.pos.Offset = len(s.buf)
	}
}

// scanRunes is the reference loop: every rune advances the counters before
// the transition rules are applied.
func (s *Scanner) scanRunes() {
	for s.pos.Offset < len(s.buf) {
		r, size := utf8.DecodeRune(s.buf[s.pos.Offset:])
		prev := s.pos

		s.pos.Offset += size
		if s.units == UnitsUTF16 {
			s.pos.Character += utf16.RuneLen(r)
		} else {
			s.pos.Character++
		}
		s.synced = s.pos.Offset

		switch {
		case r == closeBracket && s.pending:
			s.emit()
		case r == openBracket && !s.pending:
			s.pending = true
			s.start = prev
		case r == newline:
			s.pos.Line++
			s.pos.Character = 0
		}
	}
}

// scanBytesLimited runs the byte scanner over at most limit bytes from the
// current offset. A multi-byte character that starts inside the limit is
// consumed whole, so the offset can end up to three bytes past it.
func (s *Scanner) scanBytesLimited(limit int) {
	end := s.pos.Offset + limit
	if end > len(s.buf) {
		end = len(s.buf)
	}
	for s.pos.Offset < end {
		b := s.buf[s.pos.Offset]
		if classify.IsContinuation(b) {
			// a previous window ended inside this character
			s.pos.Offset++
			continue
		}
		if w := classify.CharacterWidth(b); w > 1 {
			s.pos.Offset += w
			if s.units == UnitsScalar {
				s.pos.Character++
			}
			continue
		}
		s.stepASCII(b)
	}
}

// stepASCII applies the state machine to the single-byte character at the
// current offset and advances past it.
func (s *Scanner) stepASCII(b byte) {
	at := s.pos.Offset
	switch {
	case b == newline:
		s.pos.Offset++
		s.pos.Line++
		s.pos.Character = 0
		s.synced = s.pos.Offset
	case b == openBracket && !s.pending:
		if s.units == UnitsUTF16 {
			s.sync(at)
		}
		s.pending = true
		s.start = s.pos
		s.advanceOne()
	case b == closeBracket && s.pending:
		s.advanceOne()
		if s.units == UnitsUTF16 {
			s.sync(s.pos.Offset)
		}
		s.emit()
	default:
		s.advanceOne()
	}
}

func (s *Scanner) advanceOne() {
	s.pos.Offset++
	if s.units == UnitsScalar {
		s.pos.Character++
	}
}

// sync adds the UTF-16 length of the bytes between the last sync point and
// to. Only the new bytes are measured, which keeps the scan linear.
func (s *Scanner) sync(to int) {
	if to > len(s.buf) {
		to = len(s.buf)
	}
	if to <= s.synced {
		return
	}
	s.pos.Character += s.counter.UTF16Length(s.buf[s.synced:to])
	s.synced = to
}

func (s *Scanner) emit() {
	s.ranges = append(s.ranges, Range{Start: s.start, End: s.pos})
	s.pending = false
}

func (s *Scanner) needles() needles {
	if s.pending {
		return insideNeedles
	}
	return outsideNeedles
}

// skip advances over p, which holds no byte that can change state.
func (s *Scanner) skip(p []byte) {
	s.pos.Offset += len(p)
	if s.units == UnitsScalar {
		s.pos.Character += classify.CountCharacters(p)
	}
}

// scanWindows is the vector loop. Windows without an interesting byte are
// skipped whole; otherwise the byte scanner takes over from the first match
// to the end of the window. The needle set is rebuilt per window because the
// byte scanner may have toggled the pending state.
func (s *Scanner) scanWindows(width int) {
	for s.pos.Offset+width <= len(s.buf) {
		w := s.buf[s.pos.Offset : s.pos.Offset+width]
		found, mask := matchWindow(w, s.needles())
		if !found {
			s.pos.Offset += width
			if s.units == UnitsScalar {
				s.pos.Character += countLeads(w)
			}
			continue
		}
		first := bits.TrailingZeros64(mask)
		s.skip(w[:first])
		s.scanBytesLimited(width - first)
	}
	s.scanBytesLimited(len(s.buf) - s.pos.Offset)
}

// memchrStep seeks to the next byte of the current needle set and handles
// it. It returns false once the input is exhausted.
func (s *Scanner) memchrStep() bool {
	if s.pos.Offset >= len(s.buf) {
		return false
	}
	set := s.needles()
	rest := s.buf[s.pos.Offset:]
	i := simd.Memchr2(rest, set.x, set.y)
	if i < 0 {
		s.skip(rest)
		return false
	}
	s.skip(rest[:i])
	s.stepASCII(rest[i])
	return true
}
