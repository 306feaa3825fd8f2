package prng

import "testing"

func TestValuesLimit(t *testing.T) {
	var got []uint64
	for v := range Limit(Values[uint64](&countingSource{}), 4) {
		got = append(got, v)
	}

	if len(got) != 4 {
		t.Fatalf("Limit yielded %d values, want 4", len(got))
	}
	for i, v := range got {
		if v != uint64(i) {
			t.Errorf("value %d = %d, want the source's draw order", i, v)
		}
	}
}

func TestLimitZeroConsumesNothing(t *testing.T) {
	src := &countingSource{}

	for range Limit(Values[uint64](src), 0) {
		t.Fatal("Limit(seq, 0) yielded a value")
	}
	if src.n != 0 {
		t.Errorf("Limit(seq, 0) consumed %d draws, want 0", src.n)
	}
}

func TestLimitExactConsumption(t *testing.T) {
	src := &countingSource{}

	for range Limit(Values[uint64](src), 3) {
	}
	if src.n != 3 {
		t.Errorf("Limit(seq, 3) consumed %d draws, want exactly 3", src.n)
	}
}

func TestValuesBreak(t *testing.T) {
	n := 0
	for range Values[float64](&splitmixSource{state: 1}) {
		n++
		if n == 10 {
			break
		}
	}
	if n != 10 {
		t.Errorf("iterated %d times before break, want 10", n)
	}
}

func TestValuesTyped(t *testing.T) {
	for v := range Limit(Values[float32](&splitmixSource{state: 2}), 50) {
		if v < 0 || v >= 1 {
			t.Fatalf("float32 value %v outside [0, 1)", v)
		}
	}
	for v := range Limit(Values[bool](&countingSource{}), 4) {
		_ = v
	}
}
