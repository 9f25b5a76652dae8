package blockbuffers

import (
	"testing"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Conformance against the reference implementation: buffers produced by the
// official FlatBuffers builder must read back exactly through this package.
func TestConformanceWithOfficialBuilder(t *testing.T) {
	b := flatbuffers.NewBuilder(256)

	str := b.CreateString("blockbuffers")

	b.StartVector(flatbuffers.SizeUint16, 3, flatbuffers.SizeUint16)
	b.PrependUint16(3)
	b.PrependUint16(2)
	b.PrependUint16(1)
	vec := b.EndVector(3)

	b.StartObject(6)
	b.PrependUint16Slot(0, 42, 0)
	b.PrependUOffsetTSlot(1, str, 0)
	b.PrependUOffsetTSlot(2, vec, 0)
	b.PrependFloat64Slot(3, 3.25, 0)
	b.PrependBoolSlot(4, true, false)
	// field 5 never set
	obj := b.EndObject()
	b.Finish(obj)
	buf := b.FinishedBytes()

	tbl := ReadRootTable(buf).WithVTable()

	u16, ok := tbl.GetUint16Field(FieldVOffset(0))
	require.True(t, ok)
	assert.Equal(t, uint16(42), u16)

	s, ok := tbl.GetStringField(FieldVOffset(1))
	require.True(t, ok)
	assert.Equal(t, "blockbuffers", s.Str())
	checked, err := s.StrChecked()
	require.NoError(t, err)
	assert.Equal(t, "blockbuffers", checked)

	v, ok := GetVectorField[uint16](tbl, FieldVOffset(2))
	require.True(t, ok)
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, []uint16{1, 2, 3}, v.Slice())

	f, ok := tbl.GetFloat64Field(FieldVOffset(3))
	require.True(t, ok)
	assert.Equal(t, 3.25, f)

	bo, ok := tbl.GetBoolField(FieldVOffset(4))
	require.True(t, ok)
	assert.True(t, bo)

	_, ok = tbl.GetUint32Field(FieldVOffset(5))
	assert.False(t, ok)

	// A slot past everything the builder ever declared is absent too.
	_, ok = tbl.GetUint32Field(FieldVOffset(20))
	assert.False(t, ok)
}

func TestConformanceNestedTables(t *testing.T) {
	b := flatbuffers.NewBuilder(128)

	b.StartObject(1)
	b.PrependInt32Slot(0, -7, 0)
	inner := b.EndObject()

	b.StartObject(2)
	b.PrependUOffsetTSlot(0, inner, 0)
	b.PrependUint8Slot(1, 9, 0)
	outer := b.EndObject()
	b.Finish(outer)
	buf := b.FinishedBytes()

	tbl := ReadRootTable(buf).WithVTable()

	sub, ok := tbl.GetTableField(FieldVOffset(0))
	require.True(t, ok)
	i32, ok := sub.WithVTable().GetInt32Field(FieldVOffset(0))
	require.True(t, ok)
	assert.Equal(t, int32(-7), i32)

	u8, ok := tbl.GetUint8Field(FieldVOffset(1))
	require.True(t, ok)
	assert.Equal(t, uint8(9), u8)
}

func TestConformanceDefaultSkipped(t *testing.T) {
	// The builder omits fields equal to their default; the accessor must
	// report them as absent, since default substitution happens in the
	// schema layer above this one.
	b := flatbuffers.NewBuilder(64)
	b.StartObject(1)
	b.PrependUint16Slot(0, 0, 0) // equals default, not written
	obj := b.EndObject()
	b.Finish(obj)
	buf := b.FinishedBytes()

	tbl := ReadRootTable(buf).WithVTable()
	_, ok := tbl.GetUint16Field(FieldVOffset(0))
	assert.False(t, ok)
}

func TestConformanceCheckedResolution(t *testing.T) {
	b := flatbuffers.NewBuilder(64)
	b.StartObject(1)
	b.PrependInt64Slot(0, 1<<40, 0)
	obj := b.EndObject()
	b.Finish(obj)
	buf := b.FinishedBytes()

	tbl, err := ReadRootTable(buf).WithVTableChecked()
	require.NoError(t, err)

	pos, ok, err := tbl.FieldPositionChecked(FieldVOffset(0))
	require.NoError(t, err)
	require.True(t, ok)

	i64, err := ReadInt64At(buf, pos)
	require.NoError(t, err)
	assert.Equal(t, int64(1<<40), i64)
}
