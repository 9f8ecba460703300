// Package host defines the narrow byte-level interface the LC-3 engine
// uses to talk to a terminal, and a standard-I/O implementation of it. The
// engine never touches os.Stdin/os.Stdout, terminal attributes, or
// buffering policy directly — it only ever sees a ByteReader and a
// ByteWriter.
package host

import "bufio"

// ByteReader is a single blocking byte source. ReadByte blocks until a byte
// is available or the underlying source is closed/errored.
type ByteReader interface {
	ReadByte() (byte, error)
}

// ByteWriter is a single byte sink with explicit flush control, since TRAP
// routines must make output visible before the next blocking read.
type ByteWriter interface {
	WriteByte(byte) error
	Flush() error
}

// StdIO adapts buffered stdin/stdout to ByteReader/ByteWriter. Terminal raw
// mode (disabling canonical input and local echo) is configured by the
// caller before Run starts; StdIO itself only moves bytes.
type StdIO struct {
	in  *bufio.Reader
	out *bufio.Writer
}

// NewStdIO wraps the given reader/writer pair in default-size bufio
// buffers; each ReadByte/WriteByte call moves a single byte.
func NewStdIO(in interface {
	Read([]byte) (int, error)
}, out interface {
	Write([]byte) (int, error)
}) *StdIO {
	return &StdIO{in: bufio.NewReader(in), out: bufio.NewWriter(out)}
}

// ReadByte implements ByteReader.
func (s *StdIO) ReadByte() (byte, error) {
	return s.in.ReadByte()
}

// WriteByte implements ByteWriter.
func (s *StdIO) WriteByte(b byte) error {
	return s.out.WriteByte(b)
}

// Flush implements ByteWriter.
func (s *StdIO) Flush() error {
	return s.out.Flush()
}
