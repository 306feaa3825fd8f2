package alg

import (
	"github.com/wippyai/prng"
)

// Static is not a generator: it returns caller-supplied values instead of
// computing a recurrence. Because it satisfies prng.Source it slots into
// anything expecting a generator, which makes draw patterns observable in
// tests — hand it a counter callback and every derived operation's
// consumption order is laid bare.
type Static struct {
	next func() uint64
}

// NewStatic returns a Static that pulls every draw from next.
func NewStatic(next func() uint64) *Static {
	return &Static{next: next}
}

// NewStaticValues returns a Static cycling through vals. Panics if vals
// is empty.
func NewStaticValues(vals ...uint64) *Static {
	if len(vals) == 0 {
		panic("prng/alg: static needs at least one value")
	}
	i := 0
	return NewStatic(func() uint64 {
		v := vals[i%len(vals)]
		i++
		return v
	})
}

// Uint64 implements prng.Source with one callback value.
func (g *Static) Uint64() uint64 {
	return g.next()
}

// Uint32 implements prng.Source with the low 32 bits of one callback
// value.
func (g *Static) Uint32() uint32 {
	return uint32(g.next())
}

// Fill implements prng.Source.
func (g *Static) Fill(p []byte) {
	prng.FillUint64(g, p)
}
