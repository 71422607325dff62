// Package stream scans line-oriented input without holding the whole text in
// memory. Each line is handed to the byte-level scanner with line-local
// counters reset, while the line number, any open range and the ranges found
// so far carry across lines.
package stream

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/biggeezerdevelopment/spanscan/internal/scanner"
)

// DefaultBufferSize is the read buffer used when Options.BufferSize is unset.
const DefaultBufferSize = 64 * 1024

const minBufferSize = 16

// Options configures a stream Scanner.
type Options struct {
	scanner.Options

	// Strategy is the scan loop run on each line.
	Strategy scanner.Strategy

	// BufferSize is the size of the read buffer. Lines longer than the
	// buffer are assembled in a scratch buffer.
	BufferSize int

	// Validate rejects lines that are not valid UTF-8.
	Validate bool
}

// ErrReleased is returned by Scan after Release.
var ErrReleased = errors.New("stream: scanner released")

// LineError reports invalid UTF-8 on a line of the stream.
type LineError struct {
	Line   int // 0-based line number
	Offset int // byte offset of the first invalid byte within the line
}

func (e *LineError) Error() string {
	return fmt.Sprintf("invalid UTF-8 at line %d, byte %d", e.Line, e.Offset)
}

// Scanner is a line-buffered bracket scanner. It is not safe for concurrent
// use.
type Scanner struct {
	opts    Options
	sc      *scanner.Scanner
	scratch []byte
}

// New returns a stream Scanner configured with opts.
func New(opts Options) *Scanner {
	if opts.BufferSize < minBufferSize {
		opts.BufferSize = DefaultBufferSize
	}
	return &Scanner{
		opts: opts,
		sc:   scanner.New(opts.Options),
	}
}

// Release returns the underlying scanner to its pool. Later calls to Scan
// return ErrReleased.
func (s *Scanner) Release() {
	if s.sc != nil {
		s.sc.Release()
		s.sc = nil
	}
	s.scratch = nil
}

// Scan reads r to the end and returns the ranges found. Range offsets are
// relative to the start of the line they fall on; lines and characters are
// absolute. The returned slice is owned by s and valid until the next Scan
// or Release.
func (s *Scanner) Scan(r io.Reader) ([]scanner.Range, error) {
	if r == nil {
		return nil, errors.New("stream: nil reader")
	}
	if s.sc == nil {
		return nil, ErrReleased
	}
	br := bufio.NewReaderSize(r, s.opts.BufferSize)
	s.sc.Reset()

	for lineNo := 0; ; lineNo++ {
		line, err := s.readLine(br)
		if len(line) > 0 {
			if s.opts.Validate && !utf8.Valid(line) {
				return nil, &LineError{Line: lineNo, Offset: firstInvalid(line)}
			}
			s.sc.ScanLine(line, s.opts.Strategy)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read line %d: %w", lineNo, err)
		}
	}

	return s.sc.Ranges(), nil
}

// Pending reports the start of a range left open at the end of the stream.
func (s *Scanner) Pending() (scanner.Position, bool) {
	if s.sc == nil {
		return scanner.Position{}, false
	}
	return s.sc.Pending()
}

// readLine returns the next line including its '\n'. Lines that overflow the
// reader's buffer are joined in s.scratch.
func (s *Scanner) readLine(br *bufio.Reader) ([]byte, error) {
	line, err := br.ReadSlice('\n')
	if err != bufio.ErrBufferFull {
		return line, err
	}

	s.scratch = append(s.scratch[:0], line...)
	for err == bufio.ErrBufferFull {
		line, err = br.ReadSlice('\n')
		s.scratch = append(s.scratch, line...)
	}
	return s.scratch, err
}

func firstInvalid(p []byte) int {
	for i := 0; i < len(p); {
		r, size := utf8.DecodeRune(p[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return len(p)
}
