package blockbuffers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAtChecked(t *testing.T) {
	buf := []byte{1, 2, 3, 4}

	t.Run("in bounds", func(t *testing.T) {
		v, err := ReadUint16At(buf, 0)
		require.NoError(t, err)
		assert.Equal(t, uint16(0x0201), v)

		u32, err := ReadUint32At(buf, 0)
		require.NoError(t, err)
		assert.Equal(t, uint32(0x04030201), u32)

		b, err := ReadBoolAt(buf, 3)
		require.NoError(t, err)
		assert.True(t, b)

		i8, err := ReadInt8At(buf, 1)
		require.NoError(t, err)
		assert.Equal(t, int8(2), i8)
	})

	t.Run("out of bounds", func(t *testing.T) {
		_, err := ReadUint16At(buf, 3)
		assert.ErrorIs(t, err, ErrOutOfBounds)

		_, err = ReadUint64At(buf, 0)
		assert.ErrorIs(t, err, ErrOutOfBounds)

		_, err = ReadUint8At(buf, 4)
		assert.ErrorIs(t, err, ErrOutOfBounds)

		_, err = ReadFloat64At(buf, 0)
		assert.ErrorIs(t, err, ErrOutOfBounds)

		_, err = ReadFloat32At(buf, 1)
		assert.ErrorIs(t, err, ErrOutOfBounds)

		_, err = ReadInt16At(buf, 0xffffffff)
		assert.ErrorIs(t, err, ErrOutOfBounds)

		_, err = ReadInt32At(buf, 2)
		assert.ErrorIs(t, err, ErrOutOfBounds)

		_, err = ReadInt64At(buf, 2)
		assert.ErrorIs(t, err, ErrOutOfBounds)
	})
}

func TestSeekChecked(t *testing.T) {
	pos, err := SeekUOffsetTChecked([]byte{0, 4, 0, 0, 0}, 1)
	require.NoError(t, err)
	assert.Equal(t, UOffsetT(5), pos)

	_, err = SeekUOffsetTChecked([]byte{0, 4}, 1)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	pos, err = SeekSOffsetTChecked([]byte{252, 255, 255, 255}, 0)
	require.NoError(t, err)
	assert.Equal(t, UOffsetT(4), pos)

	_, err = SeekSOffsetTChecked([]byte{252, 255, 255}, 0)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestWithVTableChecked(t *testing.T) {
	t.Run("well formed", func(t *testing.T) {
		buf := exampleTableBuf()
		tbl, err := NewTable(buf, TablePosition(10)).WithVTableChecked()
		require.NoError(t, err)
		assert.Equal(t, UOffsetT(0), tbl.VTable().Position())

		// Checked and unchecked resolution agree.
		plain := NewTable(buf, TablePosition(10)).WithVTable()
		assert.Equal(t, plain.VTable(), tbl.VTable())
	})

	t.Run("soffset out of bounds", func(t *testing.T) {
		buf := []byte{10, 0}
		_, err := NewTable(buf, TablePosition(0)).WithVTableChecked()
		assert.ErrorIs(t, err, ErrOutOfBounds)
	})

	t.Run("vtable head out of bounds", func(t *testing.T) {
		// soffset -4 points past the end of the buffer.
		buf := []byte{252, 255, 255, 255, 10, 0}
		_, err := NewTable(buf, TablePosition(0)).WithVTableChecked()
		assert.ErrorIs(t, err, ErrOutOfBounds)
	})

	t.Run("vtable declares less than its head", func(t *testing.T) {
		// vtable at 0 declaring 2 bytes cannot hold its own head.
		buf := []byte{2, 0, 4, 0, 4, 0, 0, 0}
		_, err := NewTable(buf, TablePosition(4)).WithVTableChecked()
		assert.ErrorIs(t, err, ErrOutOfBounds)
	})
}

func TestFieldPositionChecked(t *testing.T) {
	t.Run("present and absent", func(t *testing.T) {
		buf := exampleTableBuf()
		tbl, err := NewTable(buf, TablePosition(10)).WithVTableChecked()
		require.NoError(t, err)

		p, ok, err := tbl.FieldPositionChecked(4)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, UOffsetT(30), p)

		// Absent is a defined outcome, not an error.
		_, ok, err = tbl.FieldPositionChecked(6)
		require.NoError(t, err)
		assert.False(t, ok)

		_, ok, err = tbl.FieldPositionChecked(12)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("slot beyond buffer", func(t *testing.T) {
		// The vtable declares 100 bytes but the buffer is far shorter, so
		// an in-declared-range slot read runs off the end.
		buf := []byte{100, 0, 40, 0, 20, 0, 0, 0}
		WriteSOffsetT(buf[4:], 4) // reuse slot area as the table's soffset
		tbl := TableWithVTable{
			Table: NewTable(buf, TablePosition(4)),
			vpos:  VTablePosition(0),
		}

		_, _, err := tbl.FieldPositionChecked(8)
		assert.ErrorIs(t, err, ErrOutOfBounds)
	})
}

func TestSliceChecked(t *testing.T) {
	t.Run("in bounds", func(t *testing.T) {
		buf := []byte{2, 0, 0, 0, 1, 0, 2, 0}
		v := NewVector(buf, VectorPosition[uint16](0))
		s, err := v.SliceChecked()
		require.NoError(t, err)
		assert.Equal(t, []uint16{1, 2}, s)
	})

	t.Run("truncated elements", func(t *testing.T) {
		buf := []byte{3, 0, 0, 0, 1, 0}
		v := NewVector(buf, VectorPosition[uint16](0))
		_, err := v.SliceChecked()
		assert.ErrorIs(t, err, ErrOutOfBounds)
	})

	t.Run("truncated length prefix", func(t *testing.T) {
		buf := []byte{3, 0}
		v := NewVector(buf, VectorPosition[uint16](0))
		_, err := v.SliceChecked()
		assert.ErrorIs(t, err, ErrOutOfBounds)
	})
}

func TestStrChecked(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		buf := []byte{3, 0, 0, 0, 'f', 'b', 'g', 0}
		s, err := NewString(buf, StringPosition(0)).StrChecked()
		require.NoError(t, err)
		assert.Equal(t, "fbg", s)
	})

	t.Run("invalid utf-8", func(t *testing.T) {
		buf := []byte{2, 0, 0, 0, 0xff, 0xfe, 0}
		_, err := NewString(buf, StringPosition(0)).StrChecked()
		assert.ErrorIs(t, err, ErrInvalidUTF8)
	})

	t.Run("truncated content", func(t *testing.T) {
		buf := []byte{5, 0, 0, 0, 'a'}
		_, err := NewString(buf, StringPosition(0)).StrChecked()
		assert.ErrorIs(t, err, ErrOutOfBounds)
	})

	t.Run("truncated length prefix", func(t *testing.T) {
		buf := []byte{5, 0}
		_, err := NewString(buf, StringPosition(0)).StrChecked()
		assert.ErrorIs(t, err, ErrOutOfBounds)
	})
}
