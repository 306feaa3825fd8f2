// Package alg implements the generator algorithms behind the prng.Source
// contract.
//
// Each generator owns one fixed-size state blob and exposes a Next method
// returning the algorithm's native output width, plus the three Source
// methods derived from it with the package-wide composition rules
// (high-half-first widening, truncating narrowing, little-endian byte
// fills).
//
// Constructors come in pairs where a zero seed would degenerate the
// recurrence: the plain constructor substitutes a safe nonzero seed, the
// Raw constructor stores the seed untouched. The substitution is policy,
// not error handling — callers never see a failure.
//
// Implemented families:
//
//   - LCG8/16/32/64 with published parameter sets (MINSTD, RANDU, RANF,
//     Lecuyer, Fishman, Visual Basic 6)
//   - XorShift32, XorShift64, XorShift128p, Xoshiro256ss
//   - SplitMix64, PCG32
//   - ChaCha (configurable rounds, usable as a stream cipher block source)
//   - MTwister (MT19937)
//   - WichHill (Wichmann-Hill, float-native)
//   - CollatzWeyl64
//   - FibLFG8 (the Elite DORND routine), FibLFSR16
//   - Static, a deterministic callback stub for tests
package alg
