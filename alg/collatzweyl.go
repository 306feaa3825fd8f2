package alg

import (
	"github.com/wippyai/prng"
)

// CollatzWeyl64 is a Collatz-Weyl generator (Dębicki et al., 2023): a
// chaotic Collatz-like multiplication combined with a Weyl sequence to
// guarantee period. The Weyl increment must be odd; constructors force
// the low bit.
//
// The first outputs correlate with the seed while the accumulator warms
// up; the reference recommends discarding roughly the first 48 draws when
// seeding with low-entropy values.
type CollatzWeyl64 struct {
	x    uint64
	a    uint64
	weyl uint64
	s    uint64
}

// NewCollatzWeyl64 returns a generator with a zero initial state and the
// given Weyl increment seed (forced odd).
func NewCollatzWeyl64(seed uint64) *CollatzWeyl64 {
	return NewCollatzWeyl64Raw(0, seed|1)
}

// NewCollatzWeyl64State also sets the initial chaotic state x, for
// seeding with more than 64 bits (seed still forced odd).
func NewCollatzWeyl64State(state, seed uint64) *CollatzWeyl64 {
	return NewCollatzWeyl64Raw(state, seed|1)
}

// NewCollatzWeyl64Raw stores state and increment untouched. An even
// increment shortens the period; callers own that invariant.
func NewCollatzWeyl64Raw(state, seed uint64) *CollatzWeyl64 {
	return &CollatzWeyl64{x: state, s: seed}
}

// Next advances the recurrence and returns the next output.
func (g *CollatzWeyl64) Next() uint64 {
	g.a += g.x
	g.weyl += g.s
	g.x = (g.x>>1)*(g.a|1) ^ g.weyl
	return (g.a >> 48) ^ g.x
}

// Uint64 implements prng.Source.
func (g *CollatzWeyl64) Uint64() uint64 {
	return g.Next()
}

// Uint32 implements prng.Source with the low 32 bits of one step.
func (g *CollatzWeyl64) Uint32() uint32 {
	return uint32(g.Next())
}

// Fill implements prng.Source.
func (g *CollatzWeyl64) Fill(p []byte) {
	prng.FillUint64(g, p)
}
