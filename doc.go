// Package prng provides pseudo-random number generation algorithms behind a
// single minimal contract, plus the machinery to derive a rich numeric
// surface from that contract.
//
// None of these generators is suitable for secrets. They are deterministic,
// reproducible streams for simulation, testing, procedural generation and
// similar work; use crypto/rand when unpredictability matters.
//
// # Architecture Overview
//
// The library is organized into a small root package and focused
// subpackages:
//
//	prng/             Source contract, Rand derived-operations layer,
//	│                 bit-composition helpers, generic typed construction,
//	│                 iterator adapters.
//	├── alg/          Generator algorithms: LCG family, xorshift family,
//	│                 xoshiro256**, SplitMix64, PCG32, ChaCha, Mersenne
//	│                 Twister, Wichmann-Hill, Collatz-Weyl, lagged
//	│                 Fibonacci, Fibonacci LFSR, and a Static test stub.
//	├── buffer/       Prefetch buffer that batches draws from a slow source.
//	├── crush/        Hash-accumulator whitening for weak sources.
//	└── cmd/randviz/  CLI for streaming and visualizing generator output.
//
// # Quick Start
//
// Construct an algorithm, wrap it in Rand, draw values:
//
//	src := alg.NewXorShift64(1)
//	r := prng.New(src)
//
//	n := r.Uint64N(100)        // unbiased value in [0, 100)
//	f := r.Float64()           // [0, 1)
//	ok := r.Bool()
//
// Or construct typed values generically:
//
//	x := prng.Of[int32](src)
//	buf := make([]float64, 64)
//	prng.FillSlice(src, buf)
//
// # Reproducibility
//
// Every derived operation has a fixed draw pattern: a 64-bit value composed
// from a 32-bit source takes its high half from the first draw; byte fills
// are little-endian per word with partial tails truncated; floats come from
// masked mantissa bits. Seeding any generator identically therefore yields
// a byte-for-byte identical stream across platforms and releases.
//
// Validating constructors silently substitute a safe nonzero seed where a
// zero seed would collapse the recurrence to a constant stream; Raw
// constructors bypass the substitution and accept degenerate streams.
//
// # Thread Safety
//
// Generators exclusively own their state and are NOT safe for concurrent
// use. Share a generator across goroutines only behind external locking, or
// give each goroutine its own independently seeded instance.
package prng
