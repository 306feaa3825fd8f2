package alg

import (
	"github.com/wippyai/prng"
)

const (
	mtStateN = 624
	mtLagM   = 397

	mtMatrixA   = 0x9908b0df
	mtTemperB   = 0x9d2c5680
	mtTemperC   = 0xefc60000
	mtUpperMask = 0x80000000
	mtLowerMask = 0x7fffffff
)

// MTwister is the MT19937 Mersenne Twister: 624 words of state regenerated
// in batches by the twist recurrence, with each output passed through the
// standard tempering transform. Period 2^19937-1.
type MTwister struct {
	buf   [mtStateN]uint32
	index int
}

// NewMTwister returns an MTwister seeded with the reference Knuth
// multiplier expansion. Any seed is valid, including zero — the expansion
// never yields an all-zero state.
func NewMTwister(seed uint32) *MTwister {
	g := &MTwister{index: mtStateN}
	g.buf[0] = seed
	for i := 1; i < mtStateN; i++ {
		g.buf[i] = 1812433253*(g.buf[i-1]^(g.buf[i-1]>>30)) + uint32(i)
	}
	return g
}

// Run regenerates the whole state array with the twist recurrence and
// marks every word unconsumed.
func (g *MTwister) Run() {
	kk := 0

	for ; kk < mtStateN-mtLagM; kk++ {
		x := (g.buf[kk] & mtUpperMask) | (g.buf[kk+1] & mtLowerMask)
		g.buf[kk] = g.buf[kk+mtLagM] ^ (x >> 1) ^ ((x & 1) * mtMatrixA)
	}

	for ; kk < mtStateN-1; kk++ {
		x := (g.buf[kk] & mtUpperMask) | (g.buf[kk+1] & mtLowerMask)
		g.buf[kk] = g.buf[kk+mtLagM-mtStateN] ^ (x >> 1) ^ ((x & 1) * mtMatrixA)
	}

	x := (g.buf[mtStateN-1] & mtUpperMask) | (g.buf[0] & mtLowerMask)
	g.buf[mtStateN-1] = g.buf[mtLagM-1] ^ (x >> 1) ^ ((x & 1) * mtMatrixA)

	g.index = 0
}

func temper(v uint32) uint32 {
	v ^= v >> 11
	v ^= (v << 7) & mtTemperB
	v ^= (v << 15) & mtTemperC
	v ^= v >> 18
	return v
}

// Next returns the next tempered word of the current batch, or false if
// the batch is consumed. It never triggers a Run.
func (g *MTwister) Next() (uint32, bool) {
	if g.index >= mtStateN {
		return 0, false
	}
	v := g.buf[g.index]
	g.index++
	return temper(v), true
}

// Uint32 implements prng.Source, twisting a fresh batch whenever the
// current one is consumed.
func (g *MTwister) Uint32() uint32 {
	if g.index >= mtStateN {
		g.Run()
	}
	v := g.buf[g.index]
	g.index++
	return temper(v)
}

// Uint64 implements prng.Source from two words, high half first.
func (g *MTwister) Uint64() uint64 {
	hi := g.Uint32()
	return prng.Compose64(hi, g.Uint32())
}

// Fill implements prng.Source.
func (g *MTwister) Fill(p []byte) {
	prng.FillUint32(g, p)
}
