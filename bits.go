package prng

import (
	"encoding/binary"
	"math"
)

const (
	mantissaMask64 = 0x000f_ffff_ffff_ffff
	exponentOne64  = 0x3ff0_0000_0000_0000

	mantissaMask32 = 0x007f_ffff
	exponentOne32  = 0x3f80_0000
)

// Compose16 builds a uint16 from two bytes, high byte first.
func Compose16(hi, lo uint8) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}

// Compose32 builds a uint32 from two uint16, high half first.
func Compose32(hi, lo uint16) uint32 {
	return uint32(hi)<<16 | uint32(lo)
}

// Compose64 builds a uint64 from two uint32, high half first.
func Compose64(hi, lo uint32) uint64 {
	return uint64(hi)<<32 | uint64(lo)
}

// Float64From maps 64 random bits onto a float64 in [0, 1).
//
// The low 52 bits become the mantissa of a float in [1, 2), which is then
// shifted down by one. This keeps 52 bits of uniform precision and avoids a
// division; the masks must not change or output streams lose reproducibility.
func Float64From(x uint64) float64 {
	return math.Float64frombits(x&mantissaMask64|exponentOne64) - 1
}

// Float32From maps 32 random bits onto a float32 in [0, 1) using the low
// 23 bits as the mantissa. See Float64From.
func Float32From(x uint32) float32 {
	return math.Float32frombits(x&mantissaMask32|exponentOne32) - 1
}

// Uint32FromFloat64 scales a float in [0, 1] onto the full uint32 range.
// Float-native generators use this to satisfy the integer half of the
// Source contract.
func Uint32FromFloat64(f float64) uint32 {
	return uint32(f * math.MaxUint32)
}

// NonZero64 substitutes 1 for a zero seed. Additive and xor recurrences
// collapse to a constant zero stream from an all-zero state; validating
// constructors route their seeds through here.
func NonZero64(x uint64) uint64 {
	if x == 0 {
		return 1
	}
	return x
}

// NonZero32 substitutes 1 for a zero seed. See NonZero64.
func NonZero32(x uint32) uint32 {
	if x == 0 {
		return 1
	}
	return x
}

// NonZero16 substitutes 1 for a zero seed. See NonZero64.
func NonZero16(x uint16) uint16 {
	if x == 0 {
		return 1
	}
	return x
}

// NonZero8 substitutes 1 for a zero seed. See NonZero64.
func NonZero8(x uint8) uint8 {
	if x == 0 {
		return 1
	}
	return x
}

// Uint64From32 derives a 64-bit draw from two 32-bit draws. The first draw
// supplies the high 32 bits.
func Uint64From32(src Source) uint64 {
	hi := src.Uint32()
	return Compose64(hi, src.Uint32())
}

// FillUint32 fills dst from successive Uint32 draws, little-endian per
// word. A trailing partial word keeps only as many low-order bytes as
// remain; the rest of that draw is discarded.
func FillUint32(src Source, dst []byte) {
	for len(dst) >= 4 {
		binary.LittleEndian.PutUint32(dst, src.Uint32())
		dst = dst[4:]
	}
	if len(dst) == 0 {
		return
	}
	var last [4]byte
	binary.LittleEndian.PutUint32(last[:], src.Uint32())
	copy(dst, last[:])
}

// FillUint64 fills dst from successive Uint64 draws, little-endian per
// word, discarding the unused tail of a final partial draw.
func FillUint64(src Source, dst []byte) {
	for len(dst) >= 8 {
		binary.LittleEndian.PutUint64(dst, src.Uint64())
		dst = dst[8:]
	}
	if len(dst) == 0 {
		return
	}
	var last [8]byte
	binary.LittleEndian.PutUint64(last[:], src.Uint64())
	copy(dst, last[:])
}
