package alg

import (
	"math/bits"

	"github.com/wippyai/prng"
)

const pcgMultiplier = 6364136223846793005

// PCG32 is O'Neill's PCG-XSH-RR generator: a 64-bit LCG state advanced
// with a per-instance odd stream constant, with the output extracted from
// the pre-advance state by an xorshift-high followed by a variable right
// rotate.
type PCG32 struct {
	state uint64
	inc   uint64
}

// NewPCG32 returns a PCG32 for the given seed and stream, applying the
// reference warm-up: the stream selects an odd increment, the generator is
// stepped once, the seed is added, and it is stepped again.
func NewPCG32(seed, stream uint64) *PCG32 {
	g := NewPCG32Raw(0, stream<<1|1)
	g.Next()
	g.state += seed
	g.Next()
	return g
}

// NewPCG32Raw stores state and increment untouched. The increment must be
// odd for a full-period stream; callers bypassing NewPCG32 own that
// invariant.
func NewPCG32Raw(state, inc uint64) *PCG32 {
	return &PCG32{state: state, inc: inc}
}

// Next advances the state and returns the permuted previous state.
func (g *PCG32) Next() uint32 {
	old := g.state
	g.state = old*pcgMultiplier + g.inc
	x := uint32(((old >> 18) ^ old) >> 27)
	rot := int(old >> 59)
	return bits.RotateLeft32(x, -rot)
}

// Uint32 implements prng.Source.
func (g *PCG32) Uint32() uint32 {
	return g.Next()
}

// Uint64 implements prng.Source from two steps, high half first.
func (g *PCG32) Uint64() uint64 {
	hi := g.Next()
	return prng.Compose64(hi, g.Next())
}

// Fill implements prng.Source.
func (g *PCG32) Fill(p []byte) {
	prng.FillUint32(g, p)
}
