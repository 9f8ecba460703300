package host

import "io"

// FakeIO is an in-memory ByteReader/ByteWriter used by the rest of this
// module's test suite so CPU, memory, and TRAP tests never touch a real
// terminal. Input is a fixed queue of bytes; output is recorded for
// assertions.
type FakeIO struct {
	in     []byte
	pos    int
	Output []byte
}

// NewFakeIO builds a FakeIO whose ReadByte calls return in successively.
func NewFakeIO(in []byte) *FakeIO {
	return &FakeIO{in: in}
}

// ReadByte returns the next queued input byte, or io.EOF once exhausted.
func (f *FakeIO) ReadByte() (byte, error) {
	if f.pos >= len(f.in) {
		return 0, io.EOF
	}
	b := f.in[f.pos]
	f.pos++
	return b, nil
}

// WriteByte appends b to Output.
func (f *FakeIO) WriteByte(b byte) error {
	f.Output = append(f.Output, b)
	return nil
}

// Flush is a no-op: FakeIO is unbuffered.
func (f *FakeIO) Flush() error {
	return nil
}
