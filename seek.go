package blockbuffers

// SeekUOffsetT reads a UOffsetT stored at `pos` and returns `pos` advanced
// forward by it. Vector, string and table payloads are reached this way.
func SeekUOffsetT(buf []byte, pos UOffsetT) UOffsetT {
	return pos + GetUOffsetT(buf[pos:])
}

// SeekSOffsetT reads an SOffsetT stored at `pos` and returns `pos` moved
// backward by it. Vtables are reached this way; vtables may sit on either
// side of their table, so the stored offset can be negative.
func SeekSOffsetT(buf []byte, pos UOffsetT) UOffsetT {
	return SeekBack(pos, GetSOffsetT(buf[pos:]))
}

// SeekBack moves `pos` backward by `offset`. The subtraction wraps modulo
// 1<<32, never saturates, matching the wire format's position arithmetic.
func SeekBack(pos UOffsetT, offset SOffsetT) UOffsetT {
	return UOffsetT(SOffsetT(pos) - offset)
}
