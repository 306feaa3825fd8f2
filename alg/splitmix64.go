package alg

import (
	"github.com/wippyai/prng"
)

// SplitMix64 is Steele, Lea and Flood's splittable generator: a Weyl
// sequence on the golden-ratio increment, finalized with a murmur-style
// bit mixer. Any seed is valid, including zero — the additive state never
// degenerates. Commonly used to expand one word of entropy into seeds for
// larger-state generators.
type SplitMix64 struct {
	state uint64
}

// NewSplitMix64 returns a SplitMix64 seeded with seed.
func NewSplitMix64(seed uint64) *SplitMix64 {
	return &SplitMix64{state: seed}
}

// Next advances the state and returns the next output.
func (g *SplitMix64) Next() uint64 {
	g.state += 0x9e3779b97f4a7c15
	x := g.state
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// Uint64 implements prng.Source.
func (g *SplitMix64) Uint64() uint64 {
	return g.Next()
}

// Uint32 implements prng.Source with the low 32 bits of one step.
func (g *SplitMix64) Uint32() uint32 {
	return uint32(g.Next())
}

// Fill implements prng.Source.
func (g *SplitMix64) Fill(p []byte) {
	prng.FillUint64(g, p)
}
