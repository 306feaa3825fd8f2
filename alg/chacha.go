package alg

import (
	"encoding/binary"
	"math/bits"

	"github.com/wippyai/prng"
)

// DefaultChaChaRounds is the round count used by NewChaCha. ChaCha is
// commonly run with 8, 12 or 20 rounds; 12 is the balance this package
// defaults to.
const DefaultChaChaRounds = 12

// ChaCha is the ChaCha stream cipher core (RFC 8439 layout) used as a
// generator. The state is a 4x4 matrix of 32-bit words:
//
//	| "expa" | "nd 3" | "2-by" | "te k" |
//	| key    | key    | key    | key    |
//	| key    | key    | key    | key    |
//	| count  | nonce  | nonce  | nonce  |
//
// The constants row is a nothing-up-my-sleeve value, fixed for
// transparency. Run mixes a copy of the matrix with quarter-rounds over
// columns then diagonals and adds it word-wise back onto the input; the
// result both is the 64-byte output block and replaces the state, so
// successive Run calls ratchet forward.
//
// For encryption, make a fresh instance per 64-byte block with an
// incremented counter, Run it, and XOR the message with Bytes. XORing the
// ciphertext the same way restores the plaintext.
//
// With full rounds ChaCha is the only generator in this package backed by
// a cryptographic design, but this type takes no steps to protect key
// material in memory; use x/crypto for protocol work.
type ChaCha struct {
	state  [16]uint32
	used   int
	rounds int
}

// NewChaCha returns a 12-round ChaCha for the given key, nonce and block
// counter. An all-zero key and nonce are valid; the constants row keeps
// the recurrence from degenerating, so no seed substitution applies.
func NewChaCha(key [8]uint32, nonce [3]uint32, counter uint32) *ChaCha {
	return NewChaChaRounds(DefaultChaChaRounds, key, nonce, counter)
}

// NewChaChaRounds is NewChaCha with an explicit round count. Rounds are
// applied as column/diagonal double rounds; rounds must be positive and
// even or the call panics.
func NewChaChaRounds(rounds int, key [8]uint32, nonce [3]uint32, counter uint32) *ChaCha {
	return NewChaChaRaw(rounds, [16]uint32{
		0x61707865, 0x3320646e, 0x79622d32, 0x6b206574,
		key[0], key[1], key[2], key[3],
		key[4], key[5], key[6], key[7],
		counter, nonce[0], nonce[1], nonce[2],
	})
}

// NewChaChaRaw builds a ChaCha directly from a full 16-word matrix,
// without the standard layout.
func NewChaChaRaw(rounds int, state [16]uint32) *ChaCha {
	if rounds <= 0 || rounds%2 != 0 {
		panic("prng/alg: chacha round count must be positive and even")
	}
	return &ChaCha{state: state, used: 16, rounds: rounds}
}

func quarterRound(x *[16]uint32, a, b, c, d int) {
	x[a] += x[b]
	x[d] ^= x[a]
	x[d] = bits.RotateLeft32(x[d], 16)

	x[c] += x[d]
	x[b] ^= x[c]
	x[b] = bits.RotateLeft32(x[b], 12)

	x[a] += x[b]
	x[d] ^= x[a]
	x[d] = bits.RotateLeft32(x[d], 8)

	x[c] += x[d]
	x[b] ^= x[c]
	x[b] = bits.RotateLeft32(x[b], 7)
}

// Run completes the configured rounds and replaces the state with the
// output block (input matrix plus mixed matrix, word-wise wrapping add).
// It also marks all 16 words unconsumed.
func (g *ChaCha) Run() {
	x := g.state

	for i := 0; i < g.rounds/2; i++ {
		quarterRound(&x, 0, 4, 8, 12)
		quarterRound(&x, 1, 5, 9, 13)
		quarterRound(&x, 2, 6, 10, 14)
		quarterRound(&x, 3, 7, 11, 15)

		quarterRound(&x, 0, 5, 10, 15)
		quarterRound(&x, 1, 6, 11, 12)
		quarterRound(&x, 2, 7, 8, 13)
		quarterRound(&x, 3, 4, 9, 14)
	}

	for i := range g.state {
		g.state[i] += x[i]
	}
	g.used = 0
}

// Words returns the current matrix. After Run this is the 64-byte output
// block as 16 words.
func (g *ChaCha) Words() [16]uint32 {
	return g.state
}

// Bytes returns the current matrix serialized little-endian, the block
// form used for stream encryption.
func (g *ChaCha) Bytes() [64]byte {
	var out [64]byte
	for i, w := range g.state {
		binary.LittleEndian.PutUint32(out[i*4:], w)
	}
	return out
}

// Next returns the next unconsumed word of the current block, or false if
// all 16 have been consumed. It never triggers a Run.
func (g *ChaCha) Next() (uint32, bool) {
	if g.used >= 16 {
		return 0, false
	}
	v := g.state[g.used]
	g.used++
	return v, true
}

// Uint32 implements prng.Source, running the block function whenever the
// current block is consumed.
func (g *ChaCha) Uint32() uint32 {
	if g.used >= 16 {
		g.Run()
	}
	v := g.state[g.used]
	g.used++
	return v
}

// Uint64 implements prng.Source from two words, high half first.
func (g *ChaCha) Uint64() uint64 {
	hi := g.Uint32()
	return prng.Compose64(hi, g.Uint32())
}

// Fill implements prng.Source.
func (g *ChaCha) Fill(p []byte) {
	prng.FillUint32(g, p)
}
