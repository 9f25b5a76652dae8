package memory

import "unsafe"

func addressOf(b []byte) uintptr {
	return uintptr(unsafe.Pointer(&b[0]))
}

func roundUpToMultipleOf64(v int) int {
	return roundToPowerOf2(v, 64)
}

// roundToPowerOf2 rounds v up to the next multiple of round; round must be a
// power of two.
func roundToPowerOf2(v, round int) int {
	return (v + round - 1) & -round
}
