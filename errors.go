package spanscan

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidEncoding = errors.New("invalid UTF-8")
	ErrNilReader       = errors.New("nil reader")
)

// EncodingError reports the first invalid UTF-8 byte of the input.
type EncodingError struct {
	Line   int // 0-based line number
	Offset int // byte offset; relative to the line for ScanReader
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("invalid UTF-8 at line %d, byte %d", e.Line, e.Offset)
}

func (e *EncodingError) Unwrap() error {
	return ErrInvalidEncoding
}

// IsEncodingError reports whether err is an EncodingError and returns it.
func IsEncodingError(err error) (*EncodingError, bool) {
	var e *EncodingError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
