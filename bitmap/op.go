package bitmap

// And returns the bitwise AND of two bitmaps. The result has the length of
// the shorter operand; missing bits in the longer one cannot contribute.
func And(a, b Dense) Dense {
	short, _ := order(a, b)
	r := Dense{
		bits: make([]byte, short.ByteSize()),
		len:  short.len,
	}
	for i := range short.bits {
		r.bits[i] = a.bits[i] & b.bits[i]
	}
	r.clearTail()
	return r
}

// Or returns the bitwise OR of two bitmaps. The shorter operand is treated as
// zero-extended to the length of the longer.
func Or(a, b Dense) Dense {
	short, long := order(a, b)
	r := Dense{
		bits: make([]byte, long.ByteSize()),
		len:  long.len,
	}
	for i := range short.bits {
		r.bits[i] = a.bits[i] | b.bits[i]
	}
	copy(r.bits[len(short.bits):], long.bits[len(short.bits):])
	return r
}

// XOr returns the bitwise XOR of two bitmaps. The shorter operand is treated
// as zero-extended to the length of the longer.
func XOr(a, b Dense) Dense {
	short, long := order(a, b)
	r := Dense{
		bits: make([]byte, long.ByteSize()),
		len:  long.len,
	}
	for i := range short.bits {
		r.bits[i] = a.bits[i] ^ b.bits[i]
	}
	copy(r.bits[len(short.bits):], long.bits[len(short.bits):])
	return r
}

// XNor returns the bitwise XNOR of two bitmaps, zero-extending the shorter
// operand.
func XNor(a, b Dense) Dense {
	return Not(XOr(a, b))
}

// Not returns the bitwise negation of a bitmap.
func Not(d Dense) Dense {
	r := Dense{
		bits: make([]byte, d.ByteSize()),
		len:  d.len,
	}
	for i := range d.bits {
		r.bits[i] = ^d.bits[i]
	}
	r.clearTail()
	return r
}

func order(a, b Dense) (short, long Dense) {
	if b.len < a.len {
		return b, a
	}
	return a, b
}
