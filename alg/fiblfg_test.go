package alg

import "testing"

func TestFibLFG8Stream(t *testing.T) {
	g := NewFibLFG8(0x0212c845)
	for i, want := range []uint8{87, 105, 192, 41, 234} {
		if got := g.Next(); got != want {
			t.Errorf("draw %d = %d, want %d", i, got, want)
		}
	}
}

func TestFibLFG8Last(t *testing.T) {
	// Last exposes the shadow byte: the output of the previous step.
	g := NewFibLFG8(0x0212c845)
	g.Next()
	g.Next()
	if got := g.Last(); got != 87 {
		t.Errorf("Last after two draws = %d, want the first output 87", got)
	}
	g.Next()
	if got := g.Last(); got != 105 {
		t.Errorf("Last after three draws = %d, want 105", got)
	}
}

func TestFibLFG8Compose(t *testing.T) {
	// Byte outputs assemble into wider draws high byte first.
	a, b := NewFibLFG8(0x0212c845), NewFibLFG8(0x0212c845)
	want := uint32(b.Next())<<24 | uint32(b.Next())<<16 | uint32(b.Next())<<8 | uint32(b.Next())
	if got := a.Uint32(); got != want {
		t.Errorf("Uint32() = %#x, want %#x", got, want)
	}
}

func TestFibLFG8ZeroBytesClamp(t *testing.T) {
	// Each zero state byte is clamped to 1 so the adder lanes cannot
	// start dead.
	if NewFibLFG8(0).Next() != NewFibLFG8(0x01010101).Next() {
		t.Error("zero seed bytes must clamp to 1")
	}
}
