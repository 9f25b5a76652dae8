package blockbuffers

// Struct is a view of a fixed-layout value stored inline in a buffer.
//
// Structs have no vtable: every member sits at a compile-time-known offset
// from the struct start, so access is a position addition and a scalar
// decode. Member offsets come from the schema, like vtable slots do for
// tables.
type Struct struct {
	buf []byte
	pos UOffsetT
}

// NewStruct wraps buf and the struct's byte position.
func NewStruct(buf []byte, pos UOffsetT) Struct {
	return Struct{buf: buf, pos: pos}
}

// Buffer returns the underlying buffer.
func (s Struct) Buffer() []byte {
	return s.buf
}

// Position returns the struct's byte position.
func (s Struct) Position() UOffsetT {
	return s.pos
}

// Bytes returns the raw size-byte window of the struct.
func (s Struct) Bytes(size int) []byte {
	return s.buf[s.pos : s.pos+UOffsetT(size)]
}

// GetBool reads the bool member at struct-relative offset off.
func (s Struct) GetBool(off VOffsetT) bool {
	return GetBool(s.buf[s.pos+UOffsetT(off):])
}

// GetByte reads the byte member at struct-relative offset off.
func (s Struct) GetByte(off VOffsetT) byte {
	return GetByte(s.buf[s.pos+UOffsetT(off):])
}

// GetUint8 reads the uint8 member at struct-relative offset off.
func (s Struct) GetUint8(off VOffsetT) uint8 {
	return GetUint8(s.buf[s.pos+UOffsetT(off):])
}

// GetInt8 reads the int8 member at struct-relative offset off.
func (s Struct) GetInt8(off VOffsetT) int8 {
	return GetInt8(s.buf[s.pos+UOffsetT(off):])
}

// GetUint16 reads the uint16 member at struct-relative offset off.
func (s Struct) GetUint16(off VOffsetT) uint16 {
	return GetUint16(s.buf[s.pos+UOffsetT(off):])
}

// GetInt16 reads the int16 member at struct-relative offset off.
func (s Struct) GetInt16(off VOffsetT) int16 {
	return GetInt16(s.buf[s.pos+UOffsetT(off):])
}

// GetUint32 reads the uint32 member at struct-relative offset off.
func (s Struct) GetUint32(off VOffsetT) uint32 {
	return GetUint32(s.buf[s.pos+UOffsetT(off):])
}

// GetInt32 reads the int32 member at struct-relative offset off.
func (s Struct) GetInt32(off VOffsetT) int32 {
	return GetInt32(s.buf[s.pos+UOffsetT(off):])
}

// GetUint64 reads the uint64 member at struct-relative offset off.
func (s Struct) GetUint64(off VOffsetT) uint64 {
	return GetUint64(s.buf[s.pos+UOffsetT(off):])
}

// GetInt64 reads the int64 member at struct-relative offset off.
func (s Struct) GetInt64(off VOffsetT) int64 {
	return GetInt64(s.buf[s.pos+UOffsetT(off):])
}

// GetFloat32 reads the float32 member at struct-relative offset off.
func (s Struct) GetFloat32(off VOffsetT) float32 {
	return GetFloat32(s.buf[s.pos+UOffsetT(off):])
}

// GetFloat64 reads the float64 member at struct-relative offset off.
func (s Struct) GetFloat64(off VOffsetT) float64 {
	return GetFloat64(s.buf[s.pos+UOffsetT(off):])
}
