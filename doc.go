// Package spanscan locates bracket-delimited spans "[...]" in UTF-8 text and
// reports where each one starts and ends.
//
// A Position carries a 0-based line, a character column and a byte offset.
// The column counts Unicode scalar values by default, or UTF-16 code units
// when Config.Units is UnitsUTF16, which is what LSP clients expect:
//
//	ranges, err := spanscan.ScanString("a [b] c", nil)
//	// ranges[0] == {Start: {0, 2, 2}, End: {0, 5, 5}}
//
// Brackets do not nest. A "[" seen while a range is open is ignored, as is a
// "]" seen while none is open, and a range still open at the end of the input
// is dropped.
//
// # Strategies
//
// Several scan loops are available through Config.Strategy. They differ only
// in speed:
//   - StrategyRunes decodes one rune at a time
//   - StrategyBytes walks bytes, striding over multi-byte characters
//   - StrategyV128 and StrategyV256 test 16- and 32-byte windows at once
//   - StrategyPortable uses a window sized for the running CPU
//   - StrategyMemchr seeks straight to the next interesting byte
//
// # Streaming
//
// ScanReader reads its input a line at a time, so memory use is bounded by the
// longest line rather than the input size. ScanAll scans many independent
// buffers in parallel.
package spanscan
