// Package crush whitens a prng.Source by hashing batches of its output.
//
// A Crush draws a fixed number of 64-bit words from the inner source per
// output value, feeds them into a 64-bit hash and returns the running
// digest. The hash is never reset, so every output depends on all draws
// since construction. This trades throughput for output quality: weak
// statistical structure in the inner generator (LCG lattices, LFSR bit
// correlations) is destroyed by the hash's avalanche behavior.
//
// The default hash is xxHash (github.com/cespare/xxhash). NewWith accepts
// any hash.Hash64 for callers who want a different mixer.
//
// Crush itself satisfies prng.Source, so a crushed generator composes
// with Rand, buffers and iterators like any other.
package crush
