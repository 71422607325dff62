package scanner

import "fmt"

// Position locates a byte in the scanned text. Offset is always a byte
// offset; Character counts Unicode scalars or UTF-16 code units depending on
// the scanner's Units and restarts at 0 on every line.
type Position struct {
	Line      int
	Character int
	Offset    int
}

// String returns "line:character".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Character)
}

// Before reports whether p comes before other by line and character.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Character < other.Character
}

// Range spans a bracketed region. Start is taken before the opening '[' and
// End after the closing ']'.
type Range struct {
	Start Position
	End   Position
}

func (r Range) String() string {
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}

// Units selects how Position.Character is counted.
type Units uint8

const (
	// UnitsScalar counts Unicode scalar values.
	UnitsScalar Units = iota
	// UnitsUTF16 counts UTF-16 code units, as required by LSP clients.
	UnitsUTF16
)

func (u Units) String() string {
	switch u {
	case UnitsScalar:
		return "scalar"
	case UnitsUTF16:
		return "utf16"
	}
	return fmt.Sprintf("Units(%d)", uint8(u))
}

// Strategy selects the scan loop.
type Strategy uint8

const (
	// StrategyAuto picks the portable vector loop at the CPU-selected width.
	StrategyAuto Strategy = iota
	// StrategyRunes decodes one rune at a time.
	StrategyRunes
	// StrategyBytes walks raw bytes, striding over multi-byte characters.
	StrategyBytes
	// StrategyV128 inspects 16-byte windows.
	StrategyV128
	// StrategyV256 inspects 32-byte windows.
	StrategyV256
	// StrategyPortable inspects windows of the configured or detected width.
	StrategyPortable
	// StrategyMemchr jumps between interesting bytes with memchr.
	StrategyMemchr
)

var strategyNames = [...]string{
	StrategyAuto:     "auto",
	StrategyRunes:    "runes",
	StrategyBytes:    "bytes",
	StrategyV128:     "v128",
	StrategyV256:     "v256",
	StrategyPortable: "portable",
	StrategyMemchr:   "memchr",
}

func (s Strategy) String() string {
	if int(s) < len(strategyNames) {
		return strategyNames[s]
	}
	return fmt.Sprintf("Strategy(%d)", uint8(s))
}

// ParseStrategy maps a strategy name back to its value.
func ParseStrategy(name string) (Strategy, error) {
	for i, n := range strategyNames {
		if n == name {
			return Strategy(i), nil
		}
	}
	return StrategyAuto, fmt.Errorf("unknown scan strategy %q", name)
}

// Strategies lists every concrete strategy. Useful for differential tests.
func Strategies() []Strategy {
	return []Strategy{StrategyRunes, StrategyBytes, StrategyV128, StrategyV256, StrategyPortable, StrategyMemchr}
}
