package blockbuffers

import "github.com/Virale/blockbuffers/memory"

// Table binds a buffer to a table position so fields can be read without
// carrying the buffer separately. Every field read resolves the vtable anew;
// convert with WithVTable when many fields of one table are read.
type Table struct {
	buf []byte
	pos TablePosition
}

// NewTable wraps buf and a table position.
func NewTable(buf []byte, pos TablePosition) Table {
	return Table{buf: buf, pos: pos}
}

// ReadRootTable wraps the root table of a buffer, located by the UOffsetT
// stored at its start.
func ReadRootTable(buf []byte) Table {
	return NewTable(buf, ReadTablePosition(buf, 0))
}

// Buffer returns the underlying buffer.
func (t Table) Buffer() []byte {
	return t.buf
}

// Position returns the table position.
func (t Table) Position() TablePosition {
	return t.pos
}

// VTable resolves the table's vtable from the buffer.
func (t Table) VTable() VTablePosition {
	return t.pos.VTable(t.buf)
}

// FieldOffset reads the table-relative offset for the slot at posInVTable.
// 0 means the field is absent.
func (t Table) FieldOffset(posInVTable VOffsetT) VOffsetT {
	return t.VTable().FieldOffset(t.buf, posInVTable)
}

// FieldPosition resolves the absolute position of the field addressed by
// posInVTable. The second return is false when the field is absent.
func (t Table) FieldPosition(posInVTable VOffsetT) (UOffsetT, bool) {
	return t.pos.FieldPosition(t.buf, posInVTable)
}

// WithVTable resolves the vtable once and returns a table that reuses it for
// every subsequent read.
func (t Table) WithVTable() TableWithVTable {
	return TableWithVTable{Table: t, vpos: t.VTable()}
}

// IntoOwned duplicates the buffer so the table no longer borrows it.
func (t Table) IntoOwned() Table {
	return t.IntoOwnedWith(memory.DefaultAllocator)
}

// IntoOwnedWith duplicates the buffer through mem so the table no longer
// borrows it.
func (t Table) IntoOwnedWith(mem memory.Allocator) Table {
	buf := mem.Allocate(len(t.buf))
	copy(buf, t.buf)
	return Table{buf: buf, pos: t.pos}
}

// TableWithVTable is a Table that caches its resolved vtable position. One
// table typically has many fields sharing one vtable, so the cache skips a
// buffer read per field. The cache is a pure performance optimization; reads
// behave identically to Table.
type TableWithVTable struct {
	Table
	vpos VTablePosition
}

// VTable returns the cached vtable position.
func (t TableWithVTable) VTable() VTablePosition {
	return t.vpos
}

// VTableBytesLen reads the size of the vtable in bytes.
func (t TableWithVTable) VTableBytesLen() VOffsetT {
	return t.vpos.VTableBytesLen(t.buf)
}

// TableBytesLen reads the size of the table's inline data in bytes.
func (t TableWithVTable) TableBytesLen() VOffsetT {
	return t.vpos.TableBytesLen(t.buf)
}

// FieldOffset reads the table-relative offset for the slot at posInVTable.
// 0 means the field is absent.
func (t TableWithVTable) FieldOffset(posInVTable VOffsetT) VOffsetT {
	return t.vpos.FieldOffset(t.buf, posInVTable)
}

// FieldPosition resolves the absolute position of the field addressed by
// posInVTable. The second return is false when the field is absent.
func (t TableWithVTable) FieldPosition(posInVTable VOffsetT) (UOffsetT, bool) {
	offset := t.vpos.FieldOffset(t.buf, posInVTable)
	if offset == 0 {
		return 0, false
	}
	return t.pos.Position() + UOffsetT(offset), true
}

// IntoOwned duplicates the buffer so the table no longer borrows it.
func (t TableWithVTable) IntoOwned() TableWithVTable {
	return t.IntoOwnedWith(memory.DefaultAllocator)
}

// IntoOwnedWith duplicates the buffer through mem so the table no longer
// borrows it.
func (t TableWithVTable) IntoOwnedWith(mem memory.Allocator) TableWithVTable {
	return TableWithVTable{Table: t.Table.IntoOwnedWith(mem), vpos: t.vpos}
}

// GetBoolField reads the bool field at posInVTable. The second return is
// false when the field is absent; absence is distinct from a field stored as
// false.
func (t TableWithVTable) GetBoolField(posInVTable VOffsetT) (bool, bool) {
	pos, ok := t.FieldPosition(posInVTable)
	if !ok {
		return false, false
	}
	return GetBool(t.buf[pos:]), true
}

// GetByteField reads the byte field at posInVTable.
func (t TableWithVTable) GetByteField(posInVTable VOffsetT) (byte, bool) {
	pos, ok := t.FieldPosition(posInVTable)
	if !ok {
		return 0, false
	}
	return GetByte(t.buf[pos:]), true
}

// GetUint8Field reads the uint8 field at posInVTable.
func (t TableWithVTable) GetUint8Field(posInVTable VOffsetT) (uint8, bool) {
	pos, ok := t.FieldPosition(posInVTable)
	if !ok {
		return 0, false
	}
	return GetUint8(t.buf[pos:]), true
}

// GetInt8Field reads the int8 field at posInVTable.
func (t TableWithVTable) GetInt8Field(posInVTable VOffsetT) (int8, bool) {
	pos, ok := t.FieldPosition(posInVTable)
	if !ok {
		return 0, false
	}
	return GetInt8(t.buf[pos:]), true
}

// GetUint16Field reads the uint16 field at posInVTable.
func (t TableWithVTable) GetUint16Field(posInVTable VOffsetT) (uint16, bool) {
	pos, ok := t.FieldPosition(posInVTable)
	if !ok {
		return 0, false
	}
	return GetUint16(t.buf[pos:]), true
}

// GetInt16Field reads the int16 field at posInVTable.
func (t TableWithVTable) GetInt16Field(posInVTable VOffsetT) (int16, bool) {
	pos, ok := t.FieldPosition(posInVTable)
	if !ok {
		return 0, false
	}
	return GetInt16(t.buf[pos:]), true
}

// GetUint32Field reads the uint32 field at posInVTable.
func (t TableWithVTable) GetUint32Field(posInVTable VOffsetT) (uint32, bool) {
	pos, ok := t.FieldPosition(posInVTable)
	if !ok {
		return 0, false
	}
	return GetUint32(t.buf[pos:]), true
}

// GetInt32Field reads the int32 field at posInVTable.
func (t TableWithVTable) GetInt32Field(posInVTable VOffsetT) (int32, bool) {
	pos, ok := t.FieldPosition(posInVTable)
	if !ok {
		return 0, false
	}
	return GetInt32(t.buf[pos:]), true
}

// GetUint64Field reads the uint64 field at posInVTable.
func (t TableWithVTable) GetUint64Field(posInVTable VOffsetT) (uint64, bool) {
	pos, ok := t.FieldPosition(posInVTable)
	if !ok {
		return 0, false
	}
	return GetUint64(t.buf[pos:]), true
}

// GetInt64Field reads the int64 field at posInVTable.
func (t TableWithVTable) GetInt64Field(posInVTable VOffsetT) (int64, bool) {
	pos, ok := t.FieldPosition(posInVTable)
	if !ok {
		return 0, false
	}
	return GetInt64(t.buf[pos:]), true
}

// GetFloat32Field reads the float32 field at posInVTable.
func (t TableWithVTable) GetFloat32Field(posInVTable VOffsetT) (float32, bool) {
	pos, ok := t.FieldPosition(posInVTable)
	if !ok {
		return 0, false
	}
	return GetFloat32(t.buf[pos:]), true
}

// GetFloat64Field reads the float64 field at posInVTable.
func (t TableWithVTable) GetFloat64Field(posInVTable VOffsetT) (float64, bool) {
	pos, ok := t.FieldPosition(posInVTable)
	if !ok {
		return 0, false
	}
	return GetFloat64(t.buf[pos:]), true
}

// FieldBytes returns the raw size-byte window of the field at posInVTable,
// with no interpretation. Escape hatch for custom decoding.
func (t TableWithVTable) FieldBytes(posInVTable VOffsetT, size int) ([]byte, bool) {
	pos, ok := t.FieldPosition(posInVTable)
	if !ok {
		return nil, false
	}
	return t.buf[pos : pos+UOffsetT(size)], true
}

// FieldStruct returns a view of the fixed-layout struct stored inline at
// posInVTable. Structs are not offset-indirected; the field bytes are the
// struct itself.
func (t TableWithVTable) FieldStruct(posInVTable VOffsetT) (Struct, bool) {
	pos, ok := t.FieldPosition(posInVTable)
	if !ok {
		return Struct{}, false
	}
	return NewStruct(t.buf, pos), true
}

// GetStringField reads the string field at posInVTable. String fields store
// a UOffsetT to the string payload.
func (t TableWithVTable) GetStringField(posInVTable VOffsetT) (String, bool) {
	pos, ok := t.FieldPosition(posInVTable)
	if !ok {
		return String{}, false
	}
	return NewString(t.buf, ReadStringPosition(t.buf, pos)), true
}

// GetTableField reads the sub-table field at posInVTable. Table fields store
// a UOffsetT to the sub-table.
func (t TableWithVTable) GetTableField(posInVTable VOffsetT) (Table, bool) {
	pos, ok := t.FieldPosition(posInVTable)
	if !ok {
		return Table{}, false
	}
	return NewTable(t.buf, ReadTablePosition(t.buf, pos)), true
}

// GetVectorField reads the vector field at posInVTable. Vector fields store
// a UOffsetT to the vector payload.
func GetVectorField[T Scalar](t TableWithVTable, posInVTable VOffsetT) (Vector[T], bool) {
	pos, ok := t.FieldPosition(posInVTable)
	if !ok {
		return Vector[T]{}, false
	}
	return NewVector(t.buf, ReadVectorPosition[T](t.buf, pos)), true
}
