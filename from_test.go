package prng

import (
	"math"
	"testing"
)

func TestOfMatchesRand(t *testing.T) {
	words := []uint64{0xDEADBEEFCAFEBABE, 0x0123456789ABCDEF, 7, math.MaxUint64}

	if got := Of[uint64](&scriptSource{vals: words}); got != words[0] {
		t.Errorf("Of[uint64] = %#x, want the full draw %#x", got, words[0])
	}
	if got := Of[uint32](&scriptSource{vals: words}); got != uint32(words[0]) {
		t.Errorf("Of[uint32] = %#x, want %#x", got, uint32(words[0]))
	}
	if got := Of[uint16](&scriptSource{vals: words}); got != 0xBABE {
		t.Errorf("Of[uint16] = %#x, want truncated low bits 0xBABE", got)
	}
	if got := Of[uint8](&scriptSource{vals: words}); got != 0xBE {
		t.Errorf("Of[uint8] = %#x, want 0xBE", got)
	}
	if got := Of[int64](&scriptSource{vals: []uint64{math.MaxUint64}}); got != -1 {
		t.Errorf("Of[int64] = %d, want -1 from an all-ones draw", got)
	}
	if got := Of[int32](&scriptSource{vals: []uint64{0xFFFFFFFF}}); got != -1 {
		t.Errorf("Of[int32] = %d, want -1", got)
	}
	if got := Of[int16](&scriptSource{vals: []uint64{0xFFFF}}); got != -1 {
		t.Errorf("Of[int16] = %d, want -1", got)
	}
	if got := Of[int8](&scriptSource{vals: []uint64{0xFF}}); got != -1 {
		t.Errorf("Of[int8] = %d, want -1", got)
	}
	if got := Of[bool](&scriptSource{vals: []uint64{7}}); !got {
		t.Error("Of[bool] = false for an odd draw")
	}
	if got := Of[float64](&scriptSource{vals: []uint64{0}}); got != 0 {
		t.Errorf("Of[float64] = %v, want 0 from a zero draw", got)
	}
	if got := Of[float32](&scriptSource{vals: []uint64{math.MaxUint64}}); got != float32(1-0x1p-23) {
		t.Errorf("Of[float32] = %v, want %v", got, float32(1-0x1p-23))
	}
}

func TestOfDrawWidth(t *testing.T) {
	// 64-bit shapes take one full draw, everything else one 32-bit draw.
	for _, tc := range []struct {
		name  string
		draw  func(src Source)
		wants int
	}{
		{"uint64", func(src Source) { Of[uint64](src) }, 1},
		{"float64", func(src Source) { Of[float64](src) }, 1},
		{"uint8", func(src Source) { Of[uint8](src) }, 1},
		{"bool", func(src Source) { Of[bool](src) }, 1},
	} {
		src := &scriptSource{vals: []uint64{1, 2, 3}}
		tc.draw(src)
		if src.calls != tc.wants {
			t.Errorf("Of[%s] consumed %d draws, want %d", tc.name, src.calls, tc.wants)
		}
	}
}

// countingSource returns 0, 1, 2, ... so element order is observable.
type countingSource struct {
	n uint64
}

func (s *countingSource) Uint64() uint64 {
	v := s.n
	s.n++
	return v
}

func (s *countingSource) Uint32() uint32 { return uint32(s.Uint64()) }
func (s *countingSource) Fill(p []byte)  { FillUint64(s, p) }

func TestFillSliceOrder(t *testing.T) {
	dst := make([]uint64, 5)
	FillSlice(&countingSource{}, dst)

	for i, v := range dst {
		if v != uint64(i) {
			t.Fatalf("FillSlice element %d = %d, want index order from the source", i, v)
		}
	}
}

func TestFillSliceFloats(t *testing.T) {
	src := &splitmixSource{state: 5}

	dst := make([]float64, 100)
	FillSlice(src, dst)

	for i, v := range dst {
		if v < 0 || v >= 1 {
			t.Fatalf("FillSlice float element %d = %v, outside [0, 1)", i, v)
		}
	}
}
