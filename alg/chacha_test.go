package alg

import (
	"bytes"
	"testing"

	"golang.org/x/crypto/chacha20"
)

func TestChaCha20MatchesReference(t *testing.T) {
	// With 20 rounds, a zero key/nonce and counter 0, the first output
	// block must equal the RFC 8439 keystream produced by x/crypto.
	c, err := chacha20.NewUnauthenticatedCipher(make([]byte, chacha20.KeySize), make([]byte, chacha20.NonceSize))
	if err != nil {
		t.Fatalf("reference cipher: %v", err)
	}
	want := make([]byte, 64)
	c.XORKeyStream(want, make([]byte, 64))

	g := NewChaChaRounds(20, [8]uint32{}, [3]uint32{}, 0)
	g.Run()
	got := g.Bytes()

	if !bytes.Equal(got[:], want) {
		t.Errorf("block 0 = % x, want % x", got[:16], want[:16])
	}
}

func TestChaCha12FirstWords(t *testing.T) {
	g := NewChaCha([8]uint32{}, [3]uint32{}, 0)
	for i, want := range []uint32{0x6a9af49b, 0x53f95507, 0x12ce1f81, 0xd583265f} {
		if got := g.Uint32(); got != want {
			t.Errorf("word %d = %#x, want %#x", i, got, want)
		}
	}
}

func TestChaChaNextNeverRuns(t *testing.T) {
	// A fresh instance holds its input matrix, fully consumed; Next must
	// report exhaustion without producing the matrix itself.
	g := NewChaCha([8]uint32{1}, [3]uint32{}, 0)
	if _, ok := g.Next(); ok {
		t.Fatal("Next on a fresh instance returned a value before Run")
	}

	g.Run()
	for i := 0; i < 16; i++ {
		if _, ok := g.Next(); !ok {
			t.Fatalf("Next exhausted after %d of 16 words", i)
		}
	}
	if _, ok := g.Next(); ok {
		t.Error("Next returned a 17th word from one block")
	}
}

func TestChaChaRatchet(t *testing.T) {
	// Run replaces the state with the output block, so consecutive blocks
	// from one instance differ and never revisit the input.
	g := NewChaCha([8]uint32{7}, [3]uint32{}, 0)
	g.Run()
	first := g.Words()
	g.Run()
	second := g.Words()

	if first == second {
		t.Error("consecutive Run calls produced identical blocks")
	}
}

func TestChaChaEncryptRoundTrip(t *testing.T) {
	key := [8]uint32{0xdead, 0xbeef, 1, 2, 3, 4, 5, 6}
	nonce := [3]uint32{9, 8, 7}

	keystream := func(counter uint32) [64]byte {
		g := NewChaCha(key, nonce, counter)
		g.Run()
		return g.Bytes()
	}

	msg := []byte("attack at dawn, or whenever the coffee is ready, whichever hits")
	ct := make([]byte, len(msg))
	ks := keystream(0)
	for i := range msg {
		ct[i] = msg[i] ^ ks[i]
	}

	// Same counter, same block; XOR is its own inverse.
	pt := make([]byte, len(ct))
	ks = keystream(0)
	for i := range ct {
		pt[i] = ct[i] ^ ks[i]
	}

	if !bytes.Equal(pt, msg) {
		t.Errorf("round trip = %q, want %q", pt, msg)
	}
	if bytes.Equal(ct, msg) {
		t.Error("ciphertext equals plaintext")
	}
}

func TestChaChaRawRejectsOddRounds(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("odd round count must panic")
		}
	}()
	NewChaChaRaw(7, [16]uint32{})
}
