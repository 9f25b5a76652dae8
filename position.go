package blockbuffers

import "unsafe"

// Scalar is the closed set of fixed-width element types a vector can hold.
type Scalar interface {
	~bool | ~int8 | ~uint8 | ~int16 | ~uint16 |
		~int32 | ~uint32 | ~int64 | ~uint64 | ~float32 | ~float64
}

// HasRemaining reports whether any bytes remain in buf at and after pos.
func HasRemaining(buf []byte, pos UOffsetT) bool {
	return uint64(pos) < uint64(len(buf))
}

// Remaining returns the number of bytes in buf at and after pos.
func Remaining(buf []byte, pos UOffsetT) int {
	if !HasRemaining(buf, pos) {
		return 0
	}
	return len(buf) - int(pos)
}

// FieldVOffset returns the vtable slot offset of the i-th schema field.
// Slots start at 4 (after the two vtable metadata fields) and advance by 2.
func FieldVOffset(i int) VOffsetT {
	return VOffsetT(SizeVTableHead + i*SizeVOffsetT)
}

// VectorPosition locates a vector in a buffer: a 32-bit element count
// followed by tightly packed fixed-width elements of type T.
type VectorPosition[T Scalar] UOffsetT

// ReadVectorPosition follows the UOffsetT stored at pos to the vector it
// refers to.
func ReadVectorPosition[T Scalar](buf []byte, pos UOffsetT) VectorPosition[T] {
	return VectorPosition[T](SeekUOffsetT(buf, pos))
}

// Position returns the byte position of the vector's length prefix.
func (p VectorPosition[T]) Position() UOffsetT {
	return UOffsetT(p)
}

// ItemsLen reads the number of elements in the vector.
func (p VectorPosition[T]) ItemsLen(buf []byte) int {
	return int(GetLenT(buf[p:]))
}

// LenBytes returns the raw 4-byte window holding the length prefix.
func (p VectorPosition[T]) LenBytes(buf []byte) []byte {
	return buf[p : UOffsetT(p)+SizeLenT]
}

// Slice returns a zero-copy view of the elements.
//
// The slice aliases the buffer directly: elements keep their stored
// little-endian form and are not individually decoded. Callers that need
// native values on a big-endian host must decode each element through the
// Get* codec.
func (p VectorPosition[T]) Slice(buf []byte) []T {
	n := p.ItemsLen(buf)
	if n == 0 {
		return nil
	}
	start := UOffsetT(p) + SizeLenT
	end := start + UOffsetT(n)*UOffsetT(unsafe.Sizeof(*new(T)))
	items := buf[start:end]
	return unsafe.Slice((*T)(unsafe.Pointer(&items[0])), n)
}

// StringPosition locates a string in a buffer: a byte vector with one extra
// trailing 0 not counted by the length prefix.
type StringPosition UOffsetT

// ReadStringPosition follows the UOffsetT stored at pos to the string it
// refers to.
func ReadStringPosition(buf []byte, pos UOffsetT) StringPosition {
	return StringPosition(SeekUOffsetT(buf, pos))
}

// Position returns the byte position of the string's length prefix.
func (p StringPosition) Position() UOffsetT {
	return UOffsetT(p)
}

// BytesLen reads the length of the string in bytes, excluding the trailing 0.
func (p StringPosition) BytesLen(buf []byte) int {
	return int(GetLenT(buf[p:]))
}

// LenBytes returns the raw 4-byte window holding the length prefix.
func (p StringPosition) LenBytes(buf []byte) []byte {
	return buf[p : UOffsetT(p)+SizeLenT]
}

// Bytes returns a zero-copy view of the string content, excluding the
// trailing 0.
func (p StringPosition) Bytes(buf []byte) []byte {
	start := UOffsetT(p) + SizeLenT
	return buf[start : start+UOffsetT(p.BytesLen(buf))]
}

// Str returns a zero-copy string over the content. The bytes are not
// validated as UTF-8; use StrChecked on the String view for that.
func (p StringPosition) Str(buf []byte) string {
	return byteSliceToString(p.Bytes(buf))
}

// VTablePosition locates a table's vtable: two VOffsetT metadata fields
// (vtable byte size, table byte size) followed by one VOffsetT per declared
// field slot.
type VTablePosition UOffsetT

// ReadVTablePosition follows the SOffsetT stored at pos to the vtable it
// refers to.
func ReadVTablePosition(buf []byte, pos UOffsetT) VTablePosition {
	return VTablePosition(SeekSOffsetT(buf, pos))
}

// Position returns the byte position of the vtable.
func (p VTablePosition) Position() UOffsetT {
	return UOffsetT(p)
}

// VTableBytesLen reads the size of the vtable in bytes, including the two
// metadata fields.
func (p VTablePosition) VTableBytesLen(buf []byte) VOffsetT {
	return GetVOffsetT(buf[p:])
}

// TableBytesLen reads the size of the table's inline data in bytes,
// including the vtable offset header.
func (p VTablePosition) TableBytesLen(buf []byte) VOffsetT {
	return GetVOffsetT(buf[UOffsetT(p)+SizeVOffsetT:])
}

// FieldOffset reads the table-relative offset stored in the slot at
// posInVTable, which is an offset inside the vtable bytes (4 addresses the
// first schema field, 6 the second, and so on).
//
// Returns 0 when the field is absent, either because the slot holds 0 or
// because posInVTable lies beyond the vtable's declared size. Slots past the
// declared size are fields added to the schema after this buffer was built;
// they are not an error.
func (p VTablePosition) FieldOffset(buf []byte, posInVTable VOffsetT) VOffsetT {
	if posInVTable < p.VTableBytesLen(buf) {
		return GetVOffsetT(buf[UOffsetT(p)+UOffsetT(posInVTable):])
	}
	return 0
}

// TablePosition locates a table: an SOffsetT to the vtable followed by the
// field bytes in no particular order.
type TablePosition UOffsetT

// ReadTablePosition follows the UOffsetT stored at pos to the table it
// refers to. Reading at position 0 resolves the root table of a buffer.
func ReadTablePosition(buf []byte, pos UOffsetT) TablePosition {
	return TablePosition(SeekUOffsetT(buf, pos))
}

// Position returns the byte position of the table.
func (p TablePosition) Position() UOffsetT {
	return UOffsetT(p)
}

// VTable resolves the vtable shared by this table instance. Many tables may
// point at one physical vtable.
func (p TablePosition) VTable(buf []byte) VTablePosition {
	return ReadVTablePosition(buf, UOffsetT(p))
}

// FieldPosition resolves the absolute position of the field addressed by
// posInVTable. The second return is false when the field is absent.
func (p TablePosition) FieldPosition(buf []byte, posInVTable VOffsetT) (UOffsetT, bool) {
	offset := p.VTable(buf).FieldOffset(buf, posInVTable)
	if offset == 0 {
		return 0, false
	}
	return UOffsetT(p) + UOffsetT(offset), true
}
