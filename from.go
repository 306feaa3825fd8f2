package prng

// Primitive enumerates the value shapes that can be constructed directly
// from a Source.
type Primitive interface {
	bool | uint8 | uint16 | uint32 | uint64 |
		int8 | int16 | int32 | int64 |
		float32 | float64
}

// Of constructs one random T from src using the same derivation rules as
// Rand: narrow integers truncate a 32-bit draw, signed integers reinterpret
// the unsigned bit pattern, floats use the mantissa technique.
func Of[T Primitive](src Source) T {
	var v T
	switch p := any(&v).(type) {
	case *bool:
		*p = src.Uint32()&1 == 1
	case *uint8:
		*p = uint8(src.Uint32())
	case *uint16:
		*p = uint16(src.Uint32())
	case *uint32:
		*p = src.Uint32()
	case *uint64:
		*p = src.Uint64()
	case *int8:
		*p = int8(src.Uint32())
	case *int16:
		*p = int16(src.Uint32())
	case *int32:
		*p = int32(src.Uint32())
	case *int64:
		*p = int64(src.Uint64())
	case *float32:
		*p = Float32From(src.Uint32())
	case *float64:
		*p = Float64From(src.Uint64())
	}
	return v
}

// FillSlice constructs one value per element of dst, in index order. Fixed
// size arrays are filled through a slice of themselves: FillSlice(src, a[:]).
func FillSlice[T Primitive](src Source, dst []T) {
	for i := range dst {
		dst[i] = Of[T](src)
	}
}
