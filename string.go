package blockbuffers

import "github.com/Virale/blockbuffers/memory"

// String binds a buffer to a string position, presenting string access
// without copying the bytes.
type String struct {
	buf []byte
	pos StringPosition
}

// NewString wraps buf and a string position.
func NewString(buf []byte, pos StringPosition) String {
	return String{buf: buf, pos: pos}
}

// Buffer returns the underlying buffer.
func (s String) Buffer() []byte {
	return s.buf
}

// Position returns the string position.
func (s String) Position() StringPosition {
	return s.pos
}

// BytesLen returns the length of the string in bytes, excluding the trailing
// 0.
func (s String) BytesLen() int {
	return s.pos.BytesLen(s.buf)
}

// Bytes returns a zero-copy view of the string content.
func (s String) Bytes() []byte {
	return s.pos.Bytes(s.buf)
}

// Str returns a zero-copy string over the content. The bytes are not
// validated as UTF-8; use StrChecked for that.
func (s String) Str() string {
	return s.pos.Str(s.buf)
}

// IntoOwned duplicates the buffer so the string no longer borrows it.
func (s String) IntoOwned() String {
	return s.IntoOwnedWith(memory.DefaultAllocator)
}

// IntoOwnedWith duplicates the buffer through mem so the string no longer
// borrows it.
func (s String) IntoOwnedWith(mem memory.Allocator) String {
	buf := mem.Allocate(len(s.buf))
	copy(buf, s.buf)
	return String{buf: buf, pos: s.pos}
}
