package alg

import (
	"math/bits"

	"github.com/wippyai/prng"
)

// Xoshiro256ss is Blackman and Vigna's xoshiro256** generator: 256 bits of
// xorshift state with a multiply-rotate-multiply output scrambler. Period
// 2^256-1.
type Xoshiro256ss struct {
	s [4]uint64
}

// NewXoshiro256ss returns a Xoshiro256ss. Each zero seed word is clamped
// to 1; the all-zero state is a fixed point.
func NewXoshiro256ss(seed [4]uint64) *Xoshiro256ss {
	for i, w := range seed {
		seed[i] = prng.NonZero64(w)
	}
	return NewXoshiro256ssRaw(seed)
}

// NewXoshiro256ssRaw stores the seed words untouched.
func NewXoshiro256ssRaw(seed [4]uint64) *Xoshiro256ss {
	return &Xoshiro256ss{s: seed}
}

// Next advances the state and returns the next output.
func (g *Xoshiro256ss) Next() uint64 {
	result := bits.RotateLeft64(g.s[1]*5, 7) * 9
	t := g.s[1] << 17

	g.s[2] ^= g.s[0]
	g.s[3] ^= g.s[1]
	g.s[1] ^= g.s[2]
	g.s[0] ^= g.s[3]

	g.s[2] ^= t
	g.s[3] = bits.RotateLeft64(g.s[3], 45)

	return result
}

// Uint64 implements prng.Source.
func (g *Xoshiro256ss) Uint64() uint64 {
	return g.Next()
}

// Uint32 implements prng.Source with the low 32 bits of one step.
func (g *Xoshiro256ss) Uint32() uint32 {
	return uint32(g.Next())
}

// Fill implements prng.Source.
func (g *Xoshiro256ss) Fill(p []byte) {
	prng.FillUint64(g, p)
}
