package blockbuffers

import (
	"unicode/utf8"
	"unsafe"

	"golang.org/x/xerrors"
)

// Errors reported by the checked decoding entry points. The trusting fast
// path never returns these; it panics on malformed input like any
// out-of-range slice access.
var (
	// ErrOutOfBounds reports a read past the end of the buffer.
	ErrOutOfBounds = xerrors.New("blockbuffers: read out of bounds")
	// ErrInvalidUTF8 reports string content that is not valid UTF-8.
	ErrInvalidUTF8 = xerrors.New("blockbuffers: invalid utf-8")
)

// checkRead verifies that size bytes can be read from buf at pos.
func checkRead(buf []byte, pos UOffsetT, size int) error {
	if uint64(pos)+uint64(size) > uint64(len(buf)) {
		return xerrors.Errorf("%d bytes at position %d in %d-byte buffer: %w",
			size, pos, len(buf), ErrOutOfBounds)
	}
	return nil
}

// ReadBoolAt decodes the bool at pos, verifying bounds first.
func ReadBoolAt(buf []byte, pos UOffsetT) (bool, error) {
	if err := checkRead(buf, pos, SizeBool); err != nil {
		return false, err
	}
	return GetBool(buf[pos:]), nil
}

// ReadUint8At decodes the uint8 at pos, verifying bounds first.
func ReadUint8At(buf []byte, pos UOffsetT) (uint8, error) {
	if err := checkRead(buf, pos, SizeUint8); err != nil {
		return 0, err
	}
	return GetUint8(buf[pos:]), nil
}

// ReadInt8At decodes the int8 at pos, verifying bounds first.
func ReadInt8At(buf []byte, pos UOffsetT) (int8, error) {
	if err := checkRead(buf, pos, SizeInt8); err != nil {
		return 0, err
	}
	return GetInt8(buf[pos:]), nil
}

// ReadUint16At decodes the uint16 at pos, verifying bounds first.
func ReadUint16At(buf []byte, pos UOffsetT) (uint16, error) {
	if err := checkRead(buf, pos, SizeUint16); err != nil {
		return 0, err
	}
	return GetUint16(buf[pos:]), nil
}

// ReadInt16At decodes the int16 at pos, verifying bounds first.
func ReadInt16At(buf []byte, pos UOffsetT) (int16, error) {
	if err := checkRead(buf, pos, SizeInt16); err != nil {
		return 0, err
	}
	return GetInt16(buf[pos:]), nil
}

// ReadUint32At decodes the uint32 at pos, verifying bounds first.
func ReadUint32At(buf []byte, pos UOffsetT) (uint32, error) {
	if err := checkRead(buf, pos, SizeUint32); err != nil {
		return 0, err
	}
	return GetUint32(buf[pos:]), nil
}

// ReadInt32At decodes the int32 at pos, verifying bounds first.
func ReadInt32At(buf []byte, pos UOffsetT) (int32, error) {
	if err := checkRead(buf, pos, SizeInt32); err != nil {
		return 0, err
	}
	return GetInt32(buf[pos:]), nil
}

// ReadUint64At decodes the uint64 at pos, verifying bounds first.
func ReadUint64At(buf []byte, pos UOffsetT) (uint64, error) {
	if err := checkRead(buf, pos, SizeUint64); err != nil {
		return 0, err
	}
	return GetUint64(buf[pos:]), nil
}

// ReadInt64At decodes the int64 at pos, verifying bounds first.
func ReadInt64At(buf []byte, pos UOffsetT) (int64, error) {
	if err := checkRead(buf, pos, SizeInt64); err != nil {
		return 0, err
	}
	return GetInt64(buf[pos:]), nil
}

// ReadFloat32At decodes the float32 at pos, verifying bounds first.
func ReadFloat32At(buf []byte, pos UOffsetT) (float32, error) {
	if err := checkRead(buf, pos, SizeFloat32); err != nil {
		return 0, err
	}
	return GetFloat32(buf[pos:]), nil
}

// ReadFloat64At decodes the float64 at pos, verifying bounds first.
func ReadFloat64At(buf []byte, pos UOffsetT) (float64, error) {
	if err := checkRead(buf, pos, SizeFloat64); err != nil {
		return 0, err
	}
	return GetFloat64(buf[pos:]), nil
}

// SeekUOffsetTChecked is SeekUOffsetT with the offset read verified against
// the buffer bounds. The resulting position itself is validated by whatever
// checked read consumes it next.
func SeekUOffsetTChecked(buf []byte, pos UOffsetT) (UOffsetT, error) {
	if err := checkRead(buf, pos, SizeUOffsetT); err != nil {
		return 0, err
	}
	return SeekUOffsetT(buf, pos), nil
}

// SeekSOffsetTChecked is SeekSOffsetT with the offset read verified against
// the buffer bounds.
func SeekSOffsetTChecked(buf []byte, pos UOffsetT) (UOffsetT, error) {
	if err := checkRead(buf, pos, SizeSOffsetT); err != nil {
		return 0, err
	}
	return SeekSOffsetT(buf, pos), nil
}

// WithVTableChecked resolves the vtable like WithVTable, verifying the
// soffset read and the vtable head against the buffer bounds, and rejecting
// a vtable that declares a size smaller than its own head.
func (t Table) WithVTableChecked() (TableWithVTable, error) {
	vpos, err := SeekSOffsetTChecked(t.buf, t.pos.Position())
	if err != nil {
		return TableWithVTable{}, err
	}
	if err := checkRead(t.buf, vpos, SizeVTableHead); err != nil {
		return TableWithVTable{}, err
	}
	v := VTablePosition(vpos)
	if v.VTableBytesLen(t.buf) < SizeVTableHead {
		return TableWithVTable{}, xerrors.Errorf(
			"vtable at position %d declares %d bytes: %w",
			vpos, v.VTableBytesLen(t.buf), ErrOutOfBounds)
	}
	return TableWithVTable{Table: t, vpos: v}, nil
}

// FieldPositionChecked resolves the field at posInVTable like FieldPosition,
// verifying the slot read against both the buffer bounds and the vtable's
// declared size. Absent fields return (0, false, nil); absence is a defined
// outcome, not an error.
func (t TableWithVTable) FieldPositionChecked(posInVTable VOffsetT) (UOffsetT, bool, error) {
	if err := checkRead(t.buf, t.vpos.Position(), SizeVTableHead); err != nil {
		return 0, false, err
	}
	if posInVTable >= t.vpos.VTableBytesLen(t.buf) {
		return 0, false, nil
	}
	slot := t.vpos.Position() + UOffsetT(posInVTable)
	if err := checkRead(t.buf, slot, SizeVOffsetT); err != nil {
		return 0, false, err
	}
	offset := GetVOffsetT(t.buf[slot:])
	if offset == 0 {
		return 0, false, nil
	}
	return t.pos.Position() + UOffsetT(offset), true, nil
}

// SliceChecked is Slice with the length prefix and the full element span
// verified against the buffer bounds.
func (v Vector[T]) SliceChecked() ([]T, error) {
	pos := v.pos.Position()
	if err := checkRead(v.buf, pos, SizeLenT); err != nil {
		return nil, err
	}
	n := v.pos.ItemsLen(v.buf)
	size := int(unsafe.Sizeof(*new(T)))
	if err := checkRead(v.buf, pos+SizeLenT, n*size); err != nil {
		return nil, err
	}
	return v.pos.Slice(v.buf), nil
}

// StrChecked is Str with the length prefix and content verified against the
// buffer bounds, and the content validated as UTF-8.
func (s String) StrChecked() (string, error) {
	pos := s.pos.Position()
	if err := checkRead(s.buf, pos, SizeLenT); err != nil {
		return "", err
	}
	n := s.pos.BytesLen(s.buf)
	if err := checkRead(s.buf, pos+SizeLenT, n); err != nil {
		return "", err
	}
	b := s.pos.Bytes(s.buf)
	if !utf8.Valid(b) {
		return "", xerrors.Errorf("%d bytes at position %d: %w",
			n, pos+SizeLenT, ErrInvalidUTF8)
	}
	return byteSliceToString(b), nil
}
