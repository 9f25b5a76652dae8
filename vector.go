package blockbuffers

import "github.com/Virale/blockbuffers/memory"

// Vector binds a buffer to a vector position, presenting sequence access
// without copying the elements.
type Vector[T Scalar] struct {
	buf []byte
	pos VectorPosition[T]
}

// NewVector wraps buf and a vector position.
func NewVector[T Scalar](buf []byte, pos VectorPosition[T]) Vector[T] {
	return Vector[T]{buf: buf, pos: pos}
}

// Buffer returns the underlying buffer.
func (v Vector[T]) Buffer() []byte {
	return v.buf
}

// Position returns the vector position.
func (v Vector[T]) Position() VectorPosition[T] {
	return v.pos
}

// Len returns the number of elements.
func (v Vector[T]) Len() int {
	return v.pos.ItemsLen(v.buf)
}

// IsEmpty reports whether the vector has no elements.
func (v Vector[T]) IsEmpty() bool {
	return v.Len() == 0
}

// Slice returns a zero-copy view of the elements. Elements keep their stored
// little-endian form; see VectorPosition.Slice.
func (v Vector[T]) Slice() []T {
	return v.pos.Slice(v.buf)
}

// At returns the i-th element in its stored little-endian form.
func (v Vector[T]) At(i int) T {
	return v.Slice()[i]
}

// IntoOwned duplicates the buffer so the vector no longer borrows it.
func (v Vector[T]) IntoOwned() Vector[T] {
	return v.IntoOwnedWith(memory.DefaultAllocator)
}

// IntoOwnedWith duplicates the buffer through mem so the vector no longer
// borrows it.
func (v Vector[T]) IntoOwnedWith(mem memory.Allocator) Vector[T] {
	buf := mem.Allocate(len(v.buf))
	copy(buf, v.buf)
	return Vector[T]{buf: buf, pos: v.pos}
}
