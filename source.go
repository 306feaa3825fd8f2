package prng

// Source is the minimal contract every generator implements.
//
// Every call advances the generator's state and is observable: there is no
// peek-without-advance operation. All three methods are total; no internal
// state value can make them fail.
//
// Implementations that produce 32-bit words natively should derive Uint64
// with Uint64From32 (first draw becomes the high half) and Fill with
// FillUint32, so that the composition order stays reproducible across
// generators. 64-bit-native implementations truncate for Uint32 and fill
// with FillUint64.
type Source interface {
	// Uint32 advances the state and returns 32 random bits.
	Uint32() uint32

	// Uint64 advances the state and returns 64 random bits.
	Uint64() uint64

	// Fill overwrites every byte of p with random data.
	Fill(p []byte)
}
