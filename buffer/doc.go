// Package buffer batches draws from a prng.Source into a prefetched slot
// array.
//
// Some algorithms regenerate expensive state in bulk (Mersenne Twister,
// ChaCha) or are simply slow per draw. A Buffer refills capacity slots in
// one pass over the inner source and then serves values from memory until
// the batch is consumed.
//
// The buffer starts consumed; the first Get (or an explicit Run) performs
// the initial refill. Run always refills every slot, discarding any values
// that were never consumed. Next is the checked variant that reports
// exhaustion instead of refilling.
//
// Source32 and Source64 adapt word buffers back into prng.Source so that
// buffered generation composes with Rand and the other wrappers.
package buffer
