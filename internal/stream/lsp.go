package stream

import "github.com/biggeezerdevelopment/spanscan/internal/scanner"

// LSPPosition is a position as sent to language server clients: a line and a
// UTF-16 character, without a byte offset.
type LSPPosition struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

// LSPRange is the LSP projection of a scanner.Range.
type LSPRange struct {
	Start LSPPosition `json:"start"`
	End   LSPPosition `json:"end"`
}

// ToLSP drops the offsets of r. r should come from a scanner counting
// UTF-16 units.
func ToLSP(r scanner.Range) LSPRange {
	return LSPRange{
		Start: LSPPosition{Line: r.Start.Line, Character: r.Start.Character},
		End:   LSPPosition{Line: r.End.Line, Character: r.End.Character},
	}
}

// ToLSPRanges converts a slice of ranges.
func ToLSPRanges(ranges []scanner.Range) []LSPRange {
	out := make([]LSPRange, len(ranges))
	for i, r := range ranges {
		out[i] = ToLSP(r)
	}
	return out
}
