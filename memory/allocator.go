// Package memory provides the allocator used when a zero-copy view must
// outlive the buffer it borrows: an into-owned conversion duplicates the
// buffer bytes through an Allocator.
package memory

const (
	alignment = 64
)

// Allocator hands out byte slices for owned buffer copies.
type Allocator interface {
	Allocate(size int) []byte
	Reallocate(size int, b []byte) []byte
	Free(b []byte)
}

// DefaultAllocator is the allocator used when none is supplied.
var DefaultAllocator Allocator = NewGoAllocator()
