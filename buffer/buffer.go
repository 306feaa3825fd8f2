package buffer

import (
	"go.uber.org/zap"

	"github.com/wippyai/prng"
)

// Buffer prefetches random values of type T from an inner source.
//
// Slots [cursor, cap) hold values not yet returned; slots below the
// cursor have been consumed and are reused on the next refill. A cursor
// equal to the capacity means the buffer is consumed and the next Get
// refills it.
type Buffer[T prng.Primitive] struct {
	src    prng.Source
	slots  []T
	cursor int
}

// New returns an empty Buffer of the given capacity over src. Capacity
// must be positive; a zero-capacity buffer could never serve a value and
// Get would spin refilling nothing.
func New[T prng.Primitive](src prng.Source, capacity int) *Buffer[T] {
	if capacity <= 0 {
		panic("prng/buffer: capacity must be positive")
	}
	return &Buffer[T]{
		src:    src,
		slots:  make([]T, capacity),
		cursor: capacity,
	}
}

// Cap returns the buffer's capacity.
func (b *Buffer[T]) Cap() int {
	return len(b.slots)
}

// Consumed reports whether every buffered value has been returned.
func (b *Buffer[T]) Consumed() bool {
	return b.cursor >= len(b.slots)
}

// Unwrap returns the inner source.
func (b *Buffer[T]) Unwrap() prng.Source {
	return b.src
}

// Run refills every slot from the inner source and resets the cursor,
// whether or not the previous batch was consumed. Unconsumed values are
// discarded.
func (b *Buffer[T]) Run() {
	discarded := len(b.slots) - b.cursor
	for i := range b.slots {
		b.slots[i] = prng.Of[T](b.src)
	}
	b.cursor = 0

	Logger().Debug("buffer refilled",
		zap.Int("capacity", len(b.slots)),
		zap.Int("discarded", discarded))
}

// Next returns the next buffered value, or false if the buffer is
// consumed. It never refills.
func (b *Buffer[T]) Next() (T, bool) {
	if b.cursor >= len(b.slots) {
		var zero T
		return zero, false
	}
	v := b.slots[b.cursor]
	b.cursor++
	return v, true
}

// Get returns the next buffered value, refilling first if the buffer is
// consumed.
func (b *Buffer[T]) Get() T {
	if b.cursor >= len(b.slots) {
		b.Run()
	}
	v := b.slots[b.cursor]
	b.cursor++
	return v
}

// Source64 adapts a uint64 Buffer into a prng.Source.
type Source64 struct {
	*Buffer[uint64]
}

// NewSource64 returns a buffered prng.Source prefetching capacity 64-bit
// draws from src at a time.
func NewSource64(src prng.Source, capacity int) Source64 {
	return Source64{New[uint64](src, capacity)}
}

// Uint64 implements prng.Source.
func (s Source64) Uint64() uint64 {
	return s.Get()
}

// Uint32 implements prng.Source with the low 32 bits of one buffered
// draw.
func (s Source64) Uint32() uint32 {
	return uint32(s.Get())
}

// Fill implements prng.Source.
func (s Source64) Fill(p []byte) {
	prng.FillUint64(s, p)
}

// Source32 adapts a uint32 Buffer into a prng.Source.
type Source32 struct {
	*Buffer[uint32]
}

// NewSource32 returns a buffered prng.Source prefetching capacity 32-bit
// draws from src at a time.
func NewSource32(src prng.Source, capacity int) Source32 {
	return Source32{New[uint32](src, capacity)}
}

// Uint32 implements prng.Source.
func (s Source32) Uint32() uint32 {
	return s.Get()
}

// Uint64 implements prng.Source from two buffered draws, high half
// first.
func (s Source32) Uint64() uint64 {
	hi := s.Get()
	return prng.Compose64(hi, s.Get())
}

// Fill implements prng.Source.
func (s Source32) Fill(p []byte) {
	prng.FillUint32(s, p)
}
