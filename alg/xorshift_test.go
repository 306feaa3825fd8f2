package alg

import (
	"bytes"
	"testing"
)

func TestXorShift32(t *testing.T) {
	g := NewXorShift32(1)
	for i, want := range []uint32{270369, 67634689, 2647435461, 307599695} {
		if got := g.Next(); got != want {
			t.Errorf("draw %d = %d, want %d", i, got, want)
		}
	}
}

func TestXorShift64(t *testing.T) {
	g := NewXorShift64(1)
	want := []uint64{
		1082269761, 1152992998833853505,
		11177516664432764457, 17678023832001937445,
	}
	for i, w := range want {
		if got := g.Next(); got != w {
			t.Errorf("draw %d = %d, want %d", i, got, w)
		}
	}
}

func TestXorShift64Uint32LowBits(t *testing.T) {
	a, b := NewXorShift64(99), NewXorShift64(99)
	for i := 0; i < 8; i++ {
		if got, want := a.Uint32(), uint32(b.Next()); got != want {
			t.Fatalf("Uint32 draw %d = %d, want the low half %d", i, got, want)
		}
	}
}

func TestXorShift128p(t *testing.T) {
	g := NewXorShift128p([2]uint64{10, 20})
	want := []uint64{83886450, 338167070, 703687785278400, 2111062671688522}
	for i, w := range want {
		if got := g.Next(); got != w {
			t.Errorf("draw %d = %d, want %d", i, got, w)
		}
	}
}

func TestXorShiftZeroSeedClamps(t *testing.T) {
	// The xorshift recurrence fixes the all-zero state, so validating
	// constructors clamp it to 1; Raw keeps whatever it is given.
	if got, want := NewXorShift32(0).Next(), NewXorShift32(1).Next(); got != want {
		t.Errorf("NewXorShift32(0) first draw = %d, want %d", got, want)
	}
	if got, want := NewXorShift64(0).Next(), NewXorShift64(1).Next(); got != want {
		t.Errorf("NewXorShift64(0) first draw = %d, want %d", got, want)
	}
	if got := NewXorShift64Raw(0).Next(); got != 0 {
		t.Errorf("NewXorShift64Raw(0) first draw = %d, want the stuck zero stream", got)
	}
	if got := NewXorShift128p([2]uint64{0, 0}).Next(); got == 0 {
		t.Error("NewXorShift128p zero seeds must be clamped out of the zero state")
	}
}

func TestXorShift64Fill(t *testing.T) {
	g := NewXorShift64(1)

	got := make([]byte, 12)
	g.Fill(got)

	// Two 64-bit draws serialized little-endian, with the last draw
	// truncated to its low four bytes.
	want := []byte{
		0x41, 0x20, 0x82, 0x40, 0x00, 0x00, 0x00, 0x00,
		0x41, 0x14, 0x01, 0x0c,
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Fill = % x, want % x", got, want)
	}
}
