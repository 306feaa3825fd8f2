package alg

import (
	"github.com/wippyai/prng"
)

// FibLFSR16 is a 16-bit Fibonacci linear-feedback shift register with
// taps at bits 0, 2, 3 and 5 (the maximal-length x^16+x^14+x^13+x^11+1
// polynomial). One bit of fresh state per step; the full register is
// returned, so consecutive outputs overlap heavily. Period 2^16-1.
type FibLFSR16 struct {
	lfsr uint16
}

// NewFibLFSR16 returns a FibLFSR16. A zero seed is clamped to 1; the
// all-zero register is a fixed point.
func NewFibLFSR16(seed uint16) *FibLFSR16 {
	return NewFibLFSR16Raw(prng.NonZero16(seed))
}

// NewFibLFSR16Raw stores the seed untouched.
func NewFibLFSR16Raw(seed uint16) *FibLFSR16 {
	return &FibLFSR16{lfsr: seed}
}

// Next shifts in one feedback bit and returns the register.
func (g *FibLFSR16) Next() uint16 {
	bit := (g.lfsr ^ (g.lfsr >> 2) ^ (g.lfsr >> 3) ^ (g.lfsr >> 5)) & 1
	g.lfsr = (g.lfsr >> 1) | (bit << 15)
	return g.lfsr
}

// Uint32 implements prng.Source from two steps, high half first.
func (g *FibLFSR16) Uint32() uint32 {
	hi := g.Next()
	return prng.Compose32(hi, g.Next())
}

// Uint64 implements prng.Source.
func (g *FibLFSR16) Uint64() uint64 {
	return prng.Uint64From32(g)
}

// Fill implements prng.Source.
func (g *FibLFSR16) Fill(p []byte) {
	prng.FillUint32(g, p)
}
