package spanscan

import (
	"io"
	"log"

	"github.com/biggeezerdevelopment/spanscan/internal/stream"
	"github.com/biggeezerdevelopment/spanscan/internal/units"
)

// Config holds options for a scan. A nil *Config selects the defaults.
type Config struct {
	// Strategy selects the scan loop (default: StrategyAuto, the portable
	// vector loop with a window sized for this CPU). All strategies report
	// the same ranges.
	Strategy Strategy

	// Units selects how Position.Character counts (default: UnitsScalar).
	Units Units

	// Counter computes UTF-16 lengths when Units is UnitsUTF16.
	// If nil, the built-in counter is used.
	Counter units.Counter

	// Width overrides the StrategyPortable window size. It must be a
	// multiple of 8 no larger than 64; other values are ignored.
	Width int

	// TrustedInput skips UTF-8 validation. Scanning invalid UTF-8 never
	// panics but the reported positions are unspecified.
	TrustedInput bool

	// BufferSize is the read buffer for ScanReader (default: 64 KiB).
	BufferSize int

	// Logger receives debug output. If nil, output is discarded.
	Logger *log.Logger
}

var discardLogger = log.New(io.Discard, "", 0)

// NewLogger returns a logger in the format the package uses for debug
// output.
func NewLogger(w io.Writer) *log.Logger {
	return log.New(w, "[spanscan] ", log.LstdFlags|log.Lshortfile)
}

// resolve returns a copy of c with defaults filled in.
func resolve(c *Config) Config {
	var cfg Config
	if c != nil {
		cfg = *c
	}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills in default values for unset Config fields.
func (c *Config) applyDefaults() {
	if c.Strategy == StrategyAuto {
		c.Strategy = StrategyPortable
	}
	if c.BufferSize <= 0 {
		c.BufferSize = stream.DefaultBufferSize
	}
	if c.Logger == nil {
		c.Logger = discardLogger
	}
}
