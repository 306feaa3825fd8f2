package alg

import (
	"github.com/wippyai/prng"
)

// FibLFG8 is the 8-bit lagged Fibonacci generator from Elite's DORND
// routine: four bytes of state advanced by a rotate and two
// add-with-carry steps per draw. Byte-native; wider draws compose bytes
// high-first.
//
// The field names follow the original RAND locations: f1=RAND, m1=RAND+1,
// f0=RAND+2, m0=RAND+3.
type FibLFG8 struct {
	f1, m1, f0, m0 uint8
	carry          bool
}

// NewFibLFG8 unpacks the four state bytes from seed (big-endian order
// f1, m1, f0, m0), clamping each zero byte to 1, with a clear carry.
func NewFibLFG8(seed uint32) *FibLFG8 {
	f1 := prng.NonZero8(uint8(seed >> 24))
	m1 := prng.NonZero8(uint8(seed >> 16))
	f0 := prng.NonZero8(uint8(seed >> 8))
	m0 := prng.NonZero8(uint8(seed))

	return NewFibLFG8Raw(f0, f1, m0, m1, false)
}

// NewFibLFG8Raw stores the state bytes and carry untouched.
func NewFibLFG8Raw(f0, f1, m0, m1 uint8, carry bool) *FibLFG8 {
	return &FibLFG8{f1: f1, m1: m1, f0: f0, m0: m0, carry: carry}
}

// Next runs one DORND step and returns the new m1 byte.
func (g *FibLFG8) Next() uint8 {
	c := g.carry

	// lda RAND; rol A; tax
	a := g.f1
	newCarry := a&0x80 != 0
	a <<= 1
	if c {
		a |= 1
	}
	c = newCarry
	x := a

	// adc RAND+2; sta RAND; stx RAND+2
	sum := uint16(a) + uint16(g.f0)
	if c {
		sum++
	}
	a = uint8(sum)
	c = sum > 0xff
	g.f1 = a
	g.f0 = x

	// lda RAND+1; tax; adc RAND+3; sta RAND+1; stx RAND+3
	a = g.m1
	x = a
	sum = uint16(a) + uint16(g.m0)
	if c {
		sum++
	}
	a = uint8(sum)
	c = sum > 0xff
	g.m1 = a
	g.m0 = x

	g.carry = c
	return g.m1
}

// Last returns the previous output byte (the m0 shadow register) without
// advancing.
func (g *FibLFG8) Last() uint8 {
	return g.m0
}

// Uint32 implements prng.Source from four byte steps, high byte first.
func (g *FibLFG8) Uint32() uint32 {
	hi := prng.Compose16(g.Next(), g.Next())
	return prng.Compose32(hi, prng.Compose16(g.Next(), g.Next()))
}

// Uint64 implements prng.Source from eight byte steps, high bytes first.
func (g *FibLFG8) Uint64() uint64 {
	return prng.Uint64From32(g)
}

// Fill implements prng.Source.
func (g *FibLFG8) Fill(p []byte) {
	prng.FillUint32(g, p)
}
