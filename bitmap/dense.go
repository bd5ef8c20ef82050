package bitmap

import (
	"fmt"
	"math/rand"
)

// A Dense is a bitmap where every bit is explicitly represented. Bits past
// the logical length are always stored as zeros, so whole-byte operations
// like CountOnes never see trailing garbage.
type Dense struct {
	bits []byte
	len  int
}

// NewDense returns a new dense bitmap whose contents are a view of data, and
// whose length is bitLen. If bitLen is longer than data, then trailing zeros
// are added. If bitLen is negative, then it is inferred from data.
func NewDense(data []byte, bitLen int) Dense {
	if bitLen < 0 {
		bitLen = len(data) * byteSize
	}
	d := Dense{
		bits: data,
		len:  bitLen,
	}
	for len(d.bits) < d.ByteSize() {
		d.bits = append(d.bits, 0)
	}
	d.bits = d.bits[:d.ByteSize()]
	d.clearTail()
	return d
}

// Get returns the i-th bit in this bitmap. Indices past the end read as zero.
func (d Dense) Get(i int) bool {
	if i >= d.len {
		return false
	}
	j, pos := i/byteSize, i%byteSize
	if j >= len(d.bits) {
		return false
	}
	return 0 < d.bits[j]&(1<<pos)
}

// Size returns the number of bits in this bitmap.
func (d Dense) Size() int {
	return d.len
}

// ByteSize returns the number of bytes needed to hold this bitmap.
func (d Dense) ByteSize() int {
	return BytesFor(d.len)
}

// Data returns a view of the bytes underlying this bitmap. Modifying the
// returned slice modifies this bitmap.
func (d Dense) Data() []byte {
	return d.bits
}

// Shuffle randomly permutes the contents of d, using r as a source of
// randomness.
func (d *Dense) Shuffle(r *rand.Rand) {
	r.Shuffle(d.len, d.swap)
}

func (d *Dense) swap(i, j int) {
	a, b := d.Get(i), d.Get(j)
	if a == b {
		return
	}
	d.Flip(i)
	d.Flip(j)
}

// Flip inverts the i-th bit of d.
func (d *Dense) Flip(i int) {
	j, pos := i/byteSize, i%byteSize
	d.bits[j] ^= 1 << pos
}

// AppendBit adds a single bit to the end of d.
func (d *Dense) AppendBit(bit bool) {
	i, pos := d.len/byteSize, d.len%byteSize
	d.len++
	if pos == 0 {
		d.bits = append(d.bits, 0)
	}
	if bit {
		d.bits[i] |= 1 << pos
	}
}

// Append adds the contents of d2 to the end of d.
func (d *Dense) Append(d2 Dense) {
	if d.len%byteSize == 0 {
		d.bits = append(d.bits, d2.bits...)
		d.len += d2.len
		return
	}
	for i := 0; i < d2.len; i++ {
		d.AppendBit(d2.Get(i))
	}
}

// Slice returns a copy of bits [start, end) of d.
func (d Dense) Slice(start, end int) (Dense, error) {
	if start < 0 {
		return Dense{}, fmt.Errorf("slicing bitmap with negative start: %d", start)
	}
	if end < start || end > d.len {
		return Dense{}, fmt.Errorf("slicing bitmap of len %d to [%d, %d)", d.len, start, end)
	}
	var r Dense
	for i := start; i < end; i++ {
		r.AppendBit(d.Get(i))
	}
	return r, nil
}

// clearTail zeroes any storage bits past the logical length.
func (d *Dense) clearTail() {
	off := d.len % byteSize
	if off == 0 || len(d.bits) == 0 {
		return
	}
	d.bits[len(d.bits)-1] &= 0xFF >> (byteSize - off)
}
