package spanscan

import (
	"bytes"
	"errors"
	"io"
	"unicode/utf8"

	"github.com/biggeezerdevelopment/spanscan/internal/scanner"
	"github.com/biggeezerdevelopment/spanscan/internal/stream"
)

type (
	Position    = scanner.Position
	Range       = scanner.Range
	Units       = scanner.Units
	Strategy    = scanner.Strategy
	LSPPosition = stream.LSPPosition
	LSPRange    = stream.LSPRange
)

const (
	UnitsScalar = scanner.UnitsScalar
	UnitsUTF16  = scanner.UnitsUTF16
)

const (
	StrategyAuto     = scanner.StrategyAuto
	StrategyRunes    = scanner.StrategyRunes
	StrategyBytes    = scanner.StrategyBytes
	StrategyV128     = scanner.StrategyV128
	StrategyV256     = scanner.StrategyV256
	StrategyPortable = scanner.StrategyPortable
	StrategyMemchr   = scanner.StrategyMemchr
)

// ParseStrategy returns the strategy with the given name.
func ParseStrategy(name string) (Strategy, error) {
	return scanner.ParseStrategy(name)
}

// HasSIMD reports whether the CPU has the vector extensions the portable
// window width is chosen for.
func HasSIMD() bool {
	return scanner.HasSIMD()
}

// PortableWidth returns the window size StrategyPortable uses when
// Config.Width is unset.
func PortableWidth() int {
	return scanner.PortableWidth()
}

// ToLSP drops the byte offsets of ranges scanned with UnitsUTF16.
func ToLSP(ranges []Range) []LSPRange {
	return stream.ToLSPRanges(ranges)
}

// Scan returns the bracket ranges of data in the order their closing
// brackets appear. A range left open at the end of data is not reported.
func Scan(data []byte, config *Config) ([]Range, error) {
	cfg := resolve(config)

	if !cfg.TrustedInput && !utf8.Valid(data) {
		err := encodingError(data)
		cfg.Logger.Printf("rejecting input: %v", err)
		return nil, err
	}

	s := scanner.New(scannerOptions(&cfg))
	defer s.Release()

	ranges := s.Scan(data, cfg.Strategy)
	cfg.Logger.Printf("scanned %d bytes with %s/%s: %d ranges", len(data), cfg.Strategy, cfg.Units, len(ranges))
	return copyRanges(ranges), nil
}

// ScanString is Scan for a string.
func ScanString(text string, config *Config) ([]Range, error) {
	return Scan([]byte(text), config)
}

// ScanReader scans r line by line. Ranges report absolute lines and
// characters; offsets are relative to the start of the line the position
// falls on.
func ScanReader(r io.Reader, config *Config) ([]Range, error) {
	if r == nil {
		return nil, ErrNilReader
	}
	cfg := resolve(config)

	s := stream.New(stream.Options{
		Options:    scannerOptions(&cfg),
		Strategy:   cfg.Strategy,
		BufferSize: cfg.BufferSize,
		Validate:   !cfg.TrustedInput,
	})
	defer s.Release()

	ranges, err := s.Scan(r)
	if err != nil {
		var lineErr *stream.LineError
		if errors.As(err, &lineErr) {
			err = &EncodingError{Line: lineErr.Line, Offset: lineErr.Offset}
		}
		cfg.Logger.Printf("stream scan failed: %v", err)
		return nil, err
	}
	return copyRanges(ranges), nil
}

// Valid reports whether data is valid UTF-8 and leaves no range open.
func Valid(data []byte) bool {
	if !utf8.Valid(data) {
		return false
	}
	s := scanner.New(scanner.Options{})
	defer s.Release()

	s.Scan(data, scanner.StrategyPortable)
	_, open := s.Pending()
	return !open
}

func scannerOptions(cfg *Config) scanner.Options {
	return scanner.Options{
		Units:   cfg.Units,
		Counter: cfg.Counter,
		Width:   cfg.Width,
	}
}

func copyRanges(ranges []Range) []Range {
	if len(ranges) == 0 {
		return nil
	}
	out := make([]Range, len(ranges))
	copy(out, ranges)
	return out
}

// encodingError locates the first invalid byte of data.
func encodingError(data []byte) *EncodingError {
	i := 0
	for i < len(data) {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			break
		}
		i += size
	}
	return &EncodingError{
		Line:   bytes.Count(data[:i], []byte{'\n'}),
		Offset: i,
	}
}
