package gzip

// grow extends buf by step bytes of zeroed, usable length, preserving its
// contents. The increment is clamped to at least one byte: a growth step
// that adds no space would let the codec spuriously report buffer
// exhaustion and stall the loop.
func grow(buf []byte, step int) []byte {
	if step < 1 {
		step = 1
	}
	return append(buf, make([]byte, step)...)
}
