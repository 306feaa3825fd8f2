package crush

import (
	"encoding/binary"
	"hash"

	"github.com/cespare/xxhash/v2"

	"github.com/wippyai/prng"
)

// Crush draws rounds words from an inner source per output value and
// returns the hash's running digest. The hash accumulates across calls;
// it is never reset.
type Crush struct {
	src    prng.Source
	hash   hash.Hash64
	rounds int
}

// New returns a Crush over src using xxHash, drawing rounds inner words
// per output. Rounds must be positive.
func New(src prng.Source, rounds int) *Crush {
	return NewWith(src, rounds, xxhash.New())
}

// NewWith is New with a caller-supplied hash.
func NewWith(src prng.Source, rounds int, h hash.Hash64) *Crush {
	if rounds <= 0 {
		panic("prng/crush: rounds must be positive")
	}
	return &Crush{src: src, hash: h, rounds: rounds}
}

// Rounds returns the number of inner draws consumed per output value.
func (c *Crush) Rounds() int {
	return c.rounds
}

// Unwrap returns the inner source.
func (c *Crush) Unwrap() prng.Source {
	return c.src
}

// Get feeds rounds inner draws into the hash and returns the digest.
func (c *Crush) Get() uint64 {
	var word [8]byte
	for i := 0; i < c.rounds; i++ {
		binary.LittleEndian.PutUint64(word[:], c.src.Uint64())
		c.hash.Write(word[:])
	}
	return c.hash.Sum64()
}

// Uint64 implements prng.Source.
func (c *Crush) Uint64() uint64 {
	return c.Get()
}

// Uint32 implements prng.Source with the low 32 bits of one output.
func (c *Crush) Uint32() uint32 {
	return uint32(c.Get())
}

// Fill implements prng.Source.
func (c *Crush) Fill(p []byte) {
	prng.FillUint64(c, p)
}
