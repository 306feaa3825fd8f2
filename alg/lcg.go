package alg

import (
	"github.com/wippyai/prng"
)

// The linear congruential recurrence is state' = (state*a + c) mod m,
// computed with the wraparound of the state's exact width before the
// modulus. Parameters are runtime fields rather than compile-time
// constants; the named constructors below carry the published sets.
//
// With c == 0 the recurrence is multiplicative and a zero state is
// absorbing, so the named multiplicative constructors clamp a zero seed
// to 1.

// LCG64 is a linear congruential generator over 64-bit state.
type LCG64 struct {
	state uint64
	a, c  uint64
	m     uint64
}

// NewLCG64 returns an LCG64 with the given parameters and seed. The seed
// is stored untouched.
func NewLCG64(a, c, m, seed uint64) *LCG64 {
	return &LCG64{state: seed, a: a, c: c, m: m}
}

// Next advances the recurrence and returns the new state.
func (g *LCG64) Next() uint64 {
	g.state = (g.state*g.a + g.c) % g.m
	return g.state
}

// Uint64 implements prng.Source.
func (g *LCG64) Uint64() uint64 {
	return g.Next()
}

// Uint32 implements prng.Source with the low 32 bits of one step.
func (g *LCG64) Uint32() uint32 {
	return uint32(g.Next())
}

// Fill implements prng.Source.
func (g *LCG64) Fill(p []byte) {
	prng.FillUint64(g, p)
}

// LCG32 is a linear congruential generator over 32-bit state.
type LCG32 struct {
	state uint32
	a, c  uint32
	m     uint32
}

// NewLCG32 returns an LCG32 with the given parameters and seed.
func NewLCG32(a, c, m, seed uint32) *LCG32 {
	return &LCG32{state: seed, a: a, c: c, m: m}
}

// Next advances the recurrence and returns the new state.
func (g *LCG32) Next() uint32 {
	g.state = (g.state*g.a + g.c) % g.m
	return g.state
}

// Uint32 implements prng.Source.
func (g *LCG32) Uint32() uint32 {
	return g.Next()
}

// Uint64 implements prng.Source from two steps, high half first.
func (g *LCG32) Uint64() uint64 {
	return prng.Uint64From32(g)
}

// Fill implements prng.Source.
func (g *LCG32) Fill(p []byte) {
	prng.FillUint32(g, p)
}

// LCG16 is a linear congruential generator over 16-bit state.
type LCG16 struct {
	state uint16
	a, c  uint16
	m     uint16
}

// NewLCG16 returns an LCG16 with the given parameters and seed.
func NewLCG16(a, c, m, seed uint16) *LCG16 {
	return &LCG16{state: seed, a: a, c: c, m: m}
}

// Next advances the recurrence and returns the new state.
func (g *LCG16) Next() uint16 {
	g.state = (g.state*g.a + g.c) % g.m
	return g.state
}

// Uint32 implements prng.Source from two steps, high half first.
func (g *LCG16) Uint32() uint32 {
	hi := g.Next()
	return prng.Compose32(hi, g.Next())
}

// Uint64 implements prng.Source.
func (g *LCG16) Uint64() uint64 {
	return prng.Uint64From32(g)
}

// Fill implements prng.Source.
func (g *LCG16) Fill(p []byte) {
	prng.FillUint32(g, p)
}

// LCG8 is a linear congruential generator over 8-bit state. It is
// byte-native: Fill writes one step per byte and the integer draws are
// little-endian reads of filled bytes.
type LCG8 struct {
	state uint8
	a, c  uint8
	m     uint8
}

// NewLCG8 returns an LCG8 with the given parameters and seed.
func NewLCG8(a, c, m, seed uint8) *LCG8 {
	return &LCG8{state: seed, a: a, c: c, m: m}
}

// Next advances the recurrence and returns the new state.
func (g *LCG8) Next() uint8 {
	g.state = (g.state*g.a + g.c) % g.m
	return g.state
}

// Uint32 implements prng.Source from four byte steps, little-endian.
func (g *LCG8) Uint32() uint32 {
	var b [4]byte
	g.Fill(b[:])
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// Uint64 implements prng.Source from eight byte steps, little-endian.
func (g *LCG8) Uint64() uint64 {
	var b [8]byte
	g.Fill(b[:])
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
}

// Fill implements prng.Source with one step per byte.
func (g *LCG8) Fill(p []byte) {
	for i := range p {
		p[i] = g.Next()
	}
}

// NewMINSTD returns the MINSTD generator (Park-Miller 1993 revision,
// multiplier 48271 over the Mersenne prime 2^31-1). A zero seed is clamped
// to 1.
func NewMINSTD(seed uint64) *LCG64 {
	return NewLCG64(48271, 0, 2147483647, prng.NonZero64(seed))
}

// NewMINSTD88 returns the original 1988 MINSTD generator with multiplier
// 16807. A zero seed is clamped to 1.
func NewMINSTD88(seed uint64) *LCG64 {
	return NewLCG64(16807, 0, 2147483647, prng.NonZero64(seed))
}

// NewFishman returns the Fishman-Moore generator, multiplier 950706376
// over 2^31-1. A zero seed is clamped to 1.
func NewFishman(seed uint32) *LCG32 {
	return NewLCG32(950706376, 0, 2147483647, prng.NonZero32(seed))
}

// NewRANF returns the CDC RANF generator over modulus 2^48. A zero seed is
// clamped to 1.
func NewRANF(seed uint64) *LCG64 {
	return NewLCG64(44485709377909, 0, 0x1000000000000, prng.NonZero64(seed))
}

// NewRANDU returns the infamous IBM RANDU generator. Its constants are
// known to be terrible; it exists for reproducing historical streams, not
// for use. A zero seed is clamped to 1.
func NewRANDU(seed uint32) *LCG32 {
	return NewLCG32(65539, 0, 0x80000000, prng.NonZero32(seed))
}

// NewVisualBasic6 returns the Visual Basic 6 Rnd generator. The increment
// is nonzero, so any seed is valid.
func NewVisualBasic6(seed uint32) *LCG32 {
	return NewLCG32(0x43fd43fd, 0xc39ec3, 0xffffff, seed)
}

// NewLecuyer8 returns L'Ecuyer's 8-bit table generator (55 mod 251). A
// zero seed is clamped to 1.
func NewLecuyer8(seed uint8) *LCG8 {
	return NewLCG8(55, 0, 251, prng.NonZero8(seed))
}

// NewLecuyer16 returns L'Ecuyer's 16-bit table generator (17364 mod
// 65521). A zero seed is clamped to 1.
func NewLecuyer16(seed uint16) *LCG16 {
	return NewLCG16(17364, 0, 65521, prng.NonZero16(seed))
}
