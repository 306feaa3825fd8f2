package prng

// Rand derives the full numeric surface over any Source.
//
// Every derived operation has a fixed, documented draw pattern so that a
// given Source always produces the same derived stream. Rand itself
// satisfies Source, so derived generators compose with the wrappers the
// same way raw algorithms do.
type Rand struct {
	src Source
}

// New returns a Rand drawing from src.
func New(src Source) *Rand {
	return &Rand{src: src}
}

// Source returns the wrapped source.
func (r *Rand) Source() Source {
	return r.src
}

// Uint32 draws 32 bits from the source.
func (r *Rand) Uint32() uint32 {
	return r.src.Uint32()
}

// Uint64 draws 64 bits from the source.
func (r *Rand) Uint64() uint64 {
	return r.src.Uint64()
}

// Fill overwrites p with random bytes from the source.
func (r *Rand) Fill(p []byte) {
	r.src.Fill(p)
}

// Uint128 draws 128 bits as two 64-bit halves, high half first.
func (r *Rand) Uint128() (hi, lo uint64) {
	hi = r.src.Uint64()
	lo = r.src.Uint64()
	return hi, lo
}

// Uint16 returns the low 16 bits of one 32-bit draw. Narrowing truncates;
// it does not consume fewer bits of state.
func (r *Rand) Uint16() uint16 {
	return uint16(r.src.Uint32())
}

// Uint8 returns the low 8 bits of one 32-bit draw.
func (r *Rand) Uint8() uint8 {
	return uint8(r.src.Uint32())
}

// Bool returns the least-significant bit of one draw; odd means true.
func (r *Rand) Bool() bool {
	return r.src.Uint32()&1 == 1
}

// Int8 reinterprets an 8-bit draw as a two's-complement value. Uniform over
// the whole signed range, negatives included.
func (r *Rand) Int8() int8 {
	return int8(r.Uint8())
}

// Int16 reinterprets a 16-bit draw as a two's-complement value.
func (r *Rand) Int16() int16 {
	return int16(r.Uint16())
}

// Int32 reinterprets a 32-bit draw as a two's-complement value.
func (r *Rand) Int32() int32 {
	return int32(r.src.Uint32())
}

// Int64 reinterprets a 64-bit draw as a two's-complement value.
func (r *Rand) Int64() int64 {
	return int64(r.src.Uint64())
}

// Float64 returns a float64 in [0, 1) with 52 bits of precision.
func (r *Rand) Float64() float64 {
	return Float64From(r.src.Uint64())
}

// Float32 returns a float32 in [0, 1) with 23 bits of precision.
func (r *Rand) Float32() float32 {
	return Float32From(r.src.Uint32())
}

// Uint32N returns a value uniform in [0, n) with no modulo bias.
//
// Draws below the rejection threshold (-n mod n, the slice of the 2^32
// span that n does not divide evenly) are discarded and redrawn; the
// expected number of draws is below 2 for any n. n must be nonzero; a zero
// bound is a caller error and panics on the modulo.
func (r *Rand) Uint32N(n uint32) uint32 {
	threshold := -n % n
	x := r.src.Uint32()
	for x < threshold {
		x = r.src.Uint32()
	}
	return x % n
}

// Uint64N returns a value uniform in [0, n) with no modulo bias. See
// Uint32N.
func (r *Rand) Uint64N(n uint64) uint64 {
	threshold := -n % n
	x := r.src.Uint64()
	for x < threshold {
		x = r.src.Uint64()
	}
	return x % n
}

// Float64Range returns start + Float64()*(end-start). This is a linear
// map of one [0, 1) draw, not a calibrated distribution over the floats in
// the range.
func (r *Rand) Float64Range(start, end float64) float64 {
	return start + r.Float64()*(end-start)
}
