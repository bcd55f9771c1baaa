// Package mana implements the concrete mana-cost model and the hybrid
// mana-cost string parser.
package mana

import "math/bits"

// Color identifies one of the five colors or colorless mana.
type Color int

const (
	Red Color = iota
	Green
	Black
	Blue
	White
	Colorless
)

// colorOrder fixes the channel/pip ordering used throughout the package:
// R=bit0, G=bit1, B=bit2, U=bit3, W=bit4, C=bit5.
var colorOrder = [6]Color{Red, Green, Black, Blue, White, Colorless}

func (c Color) String() string {
	switch c {
	case Red:
		return "R"
	case Green:
		return "G"
	case Black:
		return "B"
	case Blue:
		return "U"
	case White:
		return "W"
	case Colorless:
		return "C"
	default:
		return "?"
	}
}

// Cost is an immutable tuple of six non-negative channel counts plus a
// derived 6-bit color signature. Construct via FromChannels; do not build
// a Cost literal directly outside this package, since Signature must stay
// a pure function of the channels.
type Cost struct {
	R, G, B, U, W, C int
	Signature        uint8
}

// FromChannels builds a Cost and computes its signature.
func FromChannels(r, g, b, u, w, c int) Cost {
	cost := Cost{R: r, G: g, B: b, U: u, W: w, C: c}
	cost.Signature = signatureOf(cost)
	return cost
}

func signatureOf(c Cost) uint8 {
	var sig uint8
	channels := [6]int{c.R, c.G, c.B, c.U, c.W, c.C}
	for i, v := range channels {
		if v > 0 {
			sig |= 1 << uint(i)
		}
	}
	return sig
}

// Channel returns the count for a given color.
func (c Cost) Channel(color Color) int {
	switch color {
	case Red:
		return c.R
	case Green:
		return c.G
	case Black:
		return c.B
	case Blue:
		return c.U
	case White:
		return c.W
	case Colorless:
		return c.C
	default:
		return 0
	}
}

// CMC returns the converted mana cost: the sum of all channels.
func (c Cost) CMC() int {
	return c.R + c.G + c.B + c.U + c.W + c.C
}

// ColorContribution returns the popcount of signature AND other.Signature.
// It is an informational tie-breaker for callers choosing among alternative
// costs; it is not required for auto-tap correctness.
func (c Cost) ColorContribution(other Cost) int {
	return bits.OnesCount8(c.Signature & other.Signature)
}

// Add returns the channel-wise sum of two costs, with a freshly computed
// signature.
func (c Cost) Add(other Cost) Cost {
	return FromChannels(
		c.R+other.R,
		c.G+other.G,
		c.B+other.B,
		c.U+other.U,
		c.W+other.W,
		c.C+other.C,
	)
}

// Pips flattens the cost into an ordered list of Color pips: r R-pips,
// g G-pips, b B-pips, u U-pips, w W-pips, c C-pips.
func (c Cost) Pips() []Color {
	pips := make([]Color, 0, c.CMC())
	counts := [6]int{c.R, c.G, c.B, c.U, c.W, c.C}
	for i, color := range colorOrder {
		for n := 0; n < counts[i]; n++ {
			pips = append(pips, color)
		}
	}
	return pips
}

// Equal reports whether two costs have identical channel counts.
func (c Cost) Equal(other Cost) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B &&
		c.U == other.U && c.W == other.W && c.C == other.C
}

// Less provides a deterministic total order over Cost values, used to
// sort the alternatives produced by hybrid-cost expansion.
func (c Cost) Less(other Cost) bool {
	if c.R != other.R {
		return c.R < other.R
	}
	if c.G != other.G {
		return c.G < other.G
	}
	if c.B != other.B {
		return c.B < other.B
	}
	if c.U != other.U {
		return c.U < other.U
	}
	if c.W != other.W {
		return c.W < other.W
	}
	return c.C < other.C
}
