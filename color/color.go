package color

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strconv"
)

// Max is the largest 24-bit RGB value.
const Max = 0xFFFFFF

// Source draws integers in [0, n).
type Source interface {
	IntN(n int) int
}

type stdSource struct{}

func (stdSource) IntN(n int) int {
	return rand.IntN(n)
}

// Default returns a source backed by the math/rand/v2 globals, safe for concurrent use.
func Default() Source {
	return stdSource{}
}

type fixed int

func (f fixed) IntN(n int) int {
	v := int(f)
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}

// Fixed returns a source that always yields v (clamped into [0, n)).
func Fixed(v int) Source {
	return fixed(v)
}

func Random(src Source) int {
	return src.IntN(Max + 1)
}

// Hex renders n as #rrggbb. Bits above 24 are dropped.
func Hex(n int) string {
	return fmt.Sprintf("#%06x", n&Max)
}

var hexPattern = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func Parse(s string) (int, error) {
	if !hexPattern.MatchString(s) {
		return 0, fmt.Errorf("invalid color %q", s)
	}

	n, err := strconv.ParseInt(s[1:], 16, 32)
	if err != nil {
		return 0, fmt.Errorf("parse color %q: %w", s, err)
	}

	return int(n), nil
}
