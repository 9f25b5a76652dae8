// Package blockbuffers provides read-only, zero-copy access to byte buffers
// serialized in the FlatBuffers wire layout.
//
// The package navigates a buffer by positions: a position is a byte offset
// into the buffer, advanced forward by stored unsigned offsets (UOffsetT) and
// backward by stored signed offsets (SOffsetT). Vectors, strings, vtables and
// tables are each addressed by a dedicated position type; a table resolves its
// fields through a vtable of per-slot offsets, where a slot value of zero
// means the field is absent.
//
// Field access never deserializes the buffer into owned objects. Table, Vector
// and String are thin views borrowing the buffer; IntoOwned duplicates the
// buffer bytes when a view must outlive its source.
//
// The primary API trusts the producer of the buffer: reads past the end of a
// malformed buffer panic like any out-of-range slice access. For untrusted
// input, the checked variants (ReadUint16At, FieldPositionChecked,
// SliceChecked, StrChecked, ...) report ErrOutOfBounds and ErrInvalidUTF8
// instead.
package blockbuffers
