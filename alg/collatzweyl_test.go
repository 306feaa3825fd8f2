package alg

import "testing"

func TestCollatzWeyl64WarmedStream(t *testing.T) {
	// The accumulator needs time to absorb a low-entropy seed; reference
	// values are taken after the recommended warm-up.
	for _, tc := range []struct {
		seed uint64
		want []uint64
	}{
		{1, []uint64{
			5507698128379620316, 6807570691884896830,
			1830299218321881814, 7256485505151599552,
		}},
		{12345, []uint64{
			12335933219611036437, 4744530146658755168,
			740042143161633412, 16764079799482407950,
		}},
	} {
		g := NewCollatzWeyl64(tc.seed)
		for i := 0; i < 96; i++ {
			g.Next()
		}
		for i, w := range tc.want {
			if got := g.Next(); got != w {
				t.Errorf("seed %d draw %d = %d, want %d", tc.seed, 96+i, got, w)
			}
		}
	}
}

func TestCollatzWeyl64ForcesOddIncrement(t *testing.T) {
	// An even increment halves the Weyl period; the validating
	// constructors set the low bit, so neighbors collapse to one stream.
	a, b := NewCollatzWeyl64(4), NewCollatzWeyl64(5)
	for i := 0; i < 8; i++ {
		x, y := a.Next(), b.Next()
		if x != y {
			t.Fatalf("draw %d: seeds 4 and 5 diverged (%d vs %d), low bit not forced", i, x, y)
		}
	}
}

func TestCollatzWeyl64StateSeeds(t *testing.T) {
	if NewCollatzWeyl64State(1, 1).Next() == NewCollatzWeyl64State(2, 1).Next() {
		t.Error("distinct initial states must diverge on the first draw")
	}
}
