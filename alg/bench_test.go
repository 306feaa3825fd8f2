package alg

import "testing"

var benchSink uint64

func BenchmarkXorShift64(b *testing.B) {
	g := NewXorShift64(1)
	for i := 0; i < b.N; i++ {
		benchSink = g.Uint64()
	}
}

func BenchmarkXoshiro256ss(b *testing.B) {
	g := NewXoshiro256ss([4]uint64{1, 2, 3, 4})
	for i := 0; i < b.N; i++ {
		benchSink = g.Uint64()
	}
}

func BenchmarkSplitMix64(b *testing.B) {
	g := NewSplitMix64(1)
	for i := 0; i < b.N; i++ {
		benchSink = g.Uint64()
	}
}

func BenchmarkPCG32(b *testing.B) {
	g := NewPCG32(42, 54)
	for i := 0; i < b.N; i++ {
		benchSink = uint64(g.Uint32())
	}
}

func BenchmarkMTwister(b *testing.B) {
	g := NewMTwister(5489)
	for i := 0; i < b.N; i++ {
		benchSink = uint64(g.Uint32())
	}
}

func BenchmarkChaCha12(b *testing.B) {
	g := NewChaCha([8]uint32{}, [3]uint32{}, 0)
	for i := 0; i < b.N; i++ {
		benchSink = g.Uint64()
	}
}
