package units

import (
	"strings"
	"testing"
	"unicode/utf16"
)

var samples = []string{
	"",
	"foo [bar] baz",
	"йцу [фыв] ячс",
	"€ 中文 ёж",
	"😀",
	"a😀b𝄞c",
	strings.Repeat("Кампании 🚀 [x]\n", 20),
}

func TestUTF16Length(t *testing.T) {
	for _, s := range samples {
		want := len(utf16.Encode([]rune(s)))
		if got := UTF16Length([]byte(s)); got != want {
			t.Errorf("UTF16Length(%q) = %d, want %d", s, got, want)
		}
	}
}

func TestASCIIPrefix(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"plain [ascii]\n", 14},
		{"й", 0},
		{"abc😀", 3},
		{strings.Repeat("x", 100) + "€" + strings.Repeat("y", 10), 100},
	}

	for _, tt := range tests {
		if got := asciiPrefix([]byte(tt.input)); got != tt.want {
			t.Errorf("asciiPrefix(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestUTF16LengthMixedPrefix(t *testing.T) {
	for n := 0; n < 40; n++ {
		s := strings.Repeat("a", n) + "😀й[x]" + strings.Repeat("b", n)
		want := len(utf16.Encode([]rune(s)))
		if got := UTF16Length([]byte(s)); got != want {
			t.Errorf("UTF16Length(%q) = %d, want %d", s, got, want)
		}
		if got, want := CountUTF8([]byte(s)), len([]rune(s)); got != want {
			t.Errorf("CountUTF8(%q) = %d, want %d", s, got, want)
		}
	}
}

func TestCountUTF8(t *testing.T) {
	for _, s := range samples {
		want := len([]rune(s))
		if got := CountUTF8([]byte(s)); got != want {
			t.Errorf("CountUTF8(%q) = %d, want %d", s, got, want)
		}
	}
}

func TestToUTF16(t *testing.T) {
	for _, s := range samples {
		want := utf16.Encode([]rune(s))
		got := ToUTF16([]byte(s))
		if len(got) != len(want) {
			t.Fatalf("ToUTF16(%q) length = %d, want %d", s, len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("ToUTF16(%q)[%d] = %#04x, want %#04x", s, i, got[i], want[i])
			}
		}
	}
}

func TestEncodeUTF16LEShortBuffer(t *testing.T) {
	dst := make([]uint16, 2)
	// the surrogate pair does not fit after "a"
	if n := EncodeUTF16LE(dst, []byte("a😀")); n != 1 {
		t.Errorf("EncodeUTF16LE wrote %d units, want 1", n)
	}
}

func TestCounterFunc(t *testing.T) {
	var c Counter = CounterFunc(func(p []byte) int { return len(utf16.Encode([]rune(string(p)))) })
	for _, s := range samples {
		if got, want := c.UTF16Length([]byte(s)), Default.UTF16Length([]byte(s)); got != want {
			t.Errorf("CounterFunc(%q) = %d, Default = %d", s, got, want)
		}
	}
}
