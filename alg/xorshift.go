package alg

import (
	"github.com/wippyai/prng"
)

// XorShift32 is Marsaglia's 32-bit xorshift generator (shifts 13/17/5),
// period 2^32-1. Extremely fast, statistically mediocre, trivially
// predictable.
type XorShift32 struct {
	state uint32
}

// NewXorShift32 returns a XorShift32. A zero seed is clamped to 1; the
// all-zero state is a fixed point of the recurrence.
func NewXorShift32(seed uint32) *XorShift32 {
	return NewXorShift32Raw(prng.NonZero32(seed))
}

// NewXorShift32Raw stores the seed untouched. Seeding with 0 yields a
// constant zero stream.
func NewXorShift32Raw(seed uint32) *XorShift32 {
	return &XorShift32{state: seed}
}

// Next advances the state and returns it.
func (g *XorShift32) Next() uint32 {
	x := g.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	g.state = x
	return x
}

// Uint32 implements prng.Source.
func (g *XorShift32) Uint32() uint32 {
	return g.Next()
}

// Uint64 implements prng.Source from two steps, high half first.
func (g *XorShift32) Uint64() uint64 {
	hi := g.Next()
	return prng.Compose64(hi, g.Next())
}

// Fill implements prng.Source.
func (g *XorShift32) Fill(p []byte) {
	prng.FillUint32(g, p)
}

// XorShift64 is the 64-bit xorshift generator (shifts 13/7/17), period
// 2^64-1.
type XorShift64 struct {
	state uint64
}

// NewXorShift64 returns a XorShift64. A zero seed is clamped to 1.
func NewXorShift64(seed uint64) *XorShift64 {
	return NewXorShift64Raw(prng.NonZero64(seed))
}

// NewXorShift64Raw stores the seed untouched.
func NewXorShift64Raw(seed uint64) *XorShift64 {
	return &XorShift64{state: seed}
}

// Next advances the state and returns it.
func (g *XorShift64) Next() uint64 {
	x := g.state
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	g.state = x
	return x
}

// Uint64 implements prng.Source.
func (g *XorShift64) Uint64() uint64 {
	return g.Next()
}

// Uint32 implements prng.Source with the low 32 bits of one step.
func (g *XorShift64) Uint32() uint32 {
	return uint32(g.Next())
}

// Fill implements prng.Source.
func (g *XorShift64) Fill(p []byte) {
	prng.FillUint64(g, p)
}

// XorShift128p is the xorshift128+ generator: two 64-bit words, shifts
// 23/18/5, output is the sum of the new and old word. The addition makes
// the output non-linear, unlike the plain xorshift family.
type XorShift128p struct {
	s0, s1 uint64
}

// NewXorShift128p returns a XorShift128p. Each zero seed word is clamped
// to 1.
func NewXorShift128p(seed [2]uint64) *XorShift128p {
	seed[0] = prng.NonZero64(seed[0])
	seed[1] = prng.NonZero64(seed[1])
	return NewXorShift128pRaw(seed)
}

// NewXorShift128pRaw stores the seed words untouched.
func NewXorShift128pRaw(seed [2]uint64) *XorShift128p {
	return &XorShift128p{s0: seed[0], s1: seed[1]}
}

// Next advances the state and returns the next output.
func (g *XorShift128p) Next() uint64 {
	t := g.s0
	s := g.s1
	g.s0 = s
	t ^= t << 23
	t ^= t >> 18
	t ^= s ^ (s >> 5)
	g.s1 = t
	return t + s
}

// Uint64 implements prng.Source.
func (g *XorShift128p) Uint64() uint64 {
	return g.Next()
}

// Uint32 implements prng.Source with the low 32 bits of one step.
func (g *XorShift128p) Uint32() uint32 {
	return uint32(g.Next())
}

// Fill implements prng.Source.
func (g *XorShift128p) Fill(p []byte) {
	prng.FillUint64(g, p)
}
