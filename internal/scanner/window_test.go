package scanner

import (
	"strings"
	"testing"

	"github.com/biggeezerdevelopment/spanscan/internal/classify"
)

func TestMatchWindow(t *testing.T) {
	tests := []struct {
		name   string
		window string
		set    needles
		mask   uint64
	}{
		{"none", strings.Repeat("x", 16), outsideNeedles, 0},
		{"open at start", "[" + strings.Repeat("x", 15), outsideNeedles, 1},
		{"open at end", strings.Repeat("x", 15) + "[", outsideNeedles, 1 << 15},
		{"close ignored outside", "]" + strings.Repeat("x", 15), outsideNeedles, 0},
		{"close inside", "x]" + strings.Repeat("x", 14), insideNeedles, 1 << 1},
		{"open ignored inside", "[" + strings.Repeat("x", 15), insideNeedles, 0},
		{"newline both", "\n" + strings.Repeat("x", 6) + "\n" + strings.Repeat("x", 8), insideNeedles, 1 | 1<<7},
		{"lane boundary", strings.Repeat("x", 7) + "[[" + strings.Repeat("x", 7), outsideNeedles, 1<<7 | 1<<8},
		{"last byte of 64", strings.Repeat("x", 63) + "]", insideNeedles, 1 << 63},
		{"high bytes", strings.Repeat("\xdb\x9b", 8), insideNeedles, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, mask := matchWindow([]byte(tt.window), tt.set)
			if mask != tt.mask {
				t.Errorf("mask = %#x, want %#x", mask, tt.mask)
			}
			if found != (tt.mask != 0) {
				t.Errorf("found = %v with mask %#x", found, mask)
			}
		})
	}
}

func TestMatchWindowAgainstBytewise(t *testing.T) {
	data := []byte(longMultiline)
	for _, set := range []needles{outsideNeedles, insideNeedles} {
		for off := 0; off+MaxChunkSize <= len(data); off += 3 {
			w := data[off : off+MaxChunkSize]
			_, mask := matchWindow(w, set)
			for i, b := range w {
				want := b == set.x || b == set.y
				if got := mask&(1<<uint(i)) != 0; got != want {
					t.Fatalf("offset %d byte %d (%q): got %v, want %v", off, i, b, got, want)
				}
			}
		}
	}
}

func TestCountLeads(t *testing.T) {
	tests := []struct {
		window string
		want   int
	}{
		{strings.Repeat("a", 16), 16},
		{strings.Repeat("й", 8), 8},
		{"😀😀😀😀", 4},
		{"€€€€€x", 6},
		// a window may start inside a character
		{"\x80\x80" + strings.Repeat("a", 14), 14},
	}

	for _, tt := range tests {
		if got := countLeads([]byte(tt.window)); got != tt.want {
			t.Errorf("countLeads(%q) = %d, want %d", tt.window, got, tt.want)
		}
	}
}

func TestCountLeadsSumsAcrossWindows(t *testing.T) {
	data := []byte(longMultiline)
	data = data[:len(data)/SSE4ChunkSize*SSE4ChunkSize]

	total := 0
	for off := 0; off < len(data); off += SSE4ChunkSize {
		total += countLeads(data[off : off+SSE4ChunkSize])
	}
	if want := classify.CountCharacters(data); total != want {
		t.Errorf("lead count %d, want %d", total, want)
	}
}
