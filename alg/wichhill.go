package alg

import (
	"math"

	"github.com/wippyai/prng"
)

// WichHill is the Wichmann-Hill generator: three small multiplicative
// congruential streams whose normalized sum, taken mod 1, is the output.
// It is float-native — the recurrence produces a float64 in [0, 1) — and
// derives its integer draws by scaling that float, so it carries less than
// 32 bits of entropy per draw. Kept for its historical streams.
type WichHill struct {
	s0, s1, s2 uint32
}

// NewWichHill derives the three sub-seeds from one word by drawing them
// from an embedded XorShift32, each reduced mod 30000 and clamped away
// from zero.
func NewWichHill(seed uint32) *WichHill {
	x := NewXorShift32(seed)

	s0 := prng.NonZero32(x.Next() % 30000)
	s1 := prng.NonZero32(x.Next() % 30000)
	s2 := prng.NonZero32(x.Next() % 30000)

	return NewWichHillRaw(s0, s1, s2)
}

// NewWichHillRaw stores the three seeds untouched. Each should lie in
// 1..30000; a zero seed freezes its stream at zero.
func NewWichHillRaw(s0, s1, s2 uint32) *WichHill {
	return &WichHill{s0: s0, s1: s1, s2: s2}
}

// Next advances all three streams and returns the combined value in
// [0, 1).
func (g *WichHill) Next() float64 {
	g.s0 = (g.s0 * 171) % 30269
	g.s1 = (g.s1 * 172) % 30307
	g.s2 = (g.s2 * 170) % 30323
	x := float64(g.s0)/30269.0 + float64(g.s1)/30307.0 + float64(g.s2)/30323.0
	return math.Mod(x, 1.0)
}

// Uint32 implements prng.Source by scaling one float draw to the full
// uint32 range.
func (g *WichHill) Uint32() uint32 {
	return prng.Uint32FromFloat64(g.Next())
}

// Uint64 implements prng.Source from two scaled draws, high half first.
func (g *WichHill) Uint64() uint64 {
	return prng.Uint64From32(g)
}

// Fill implements prng.Source.
func (g *WichHill) Fill(p []byte) {
	prng.FillUint32(g, p)
}
