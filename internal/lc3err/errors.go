// Package lc3err defines the flat set of error kinds the LC-3 engine can
// fail with, and a typed Error that carries one of them. The engine
// packages (bitops, opcode, memory, cpu) report every failure as
// *lc3err.Error, and Kind.String gives a human-readable name per failure
// kind. The snapshot package returns plain file and gob errors, and the
// batch runner wraps image read and load errors with fmt.Errorf.
package lc3err

import "fmt"

// Kind is one of the fixed failure modes the engine can report.
type Kind int

const (
	// ReadingFile means the program image could not be opened or read.
	ReadingFile Kind = iota
	// ConcatenatingBytes means the image byte stream was malformed: empty,
	// or an odd number of bytes before a complete word could be formed.
	ConcatenatingBytes
	// Overflow means SignExtend was asked for an invalid field width.
	Overflow
	// MemoryIndex means an address walked outside 0..0xFFFF.
	MemoryIndex
	// InvalidOpcode means RTI or RES was fetched for execution.
	InvalidOpcode
	// InvalidRegister means a register index outside 0..7 was used.
	InvalidRegister
	// InvalidTrapCode means a TRAP vector outside the six defined routines
	// was dispatched.
	InvalidTrapCode
	// StandardIO means the host byte channel reported an error.
	StandardIO
	// InvalidCharacter means an output value did not fit in one byte.
	InvalidCharacter
)

func (k Kind) String() string {
	switch k {
	case ReadingFile:
		return "reading file"
	case ConcatenatingBytes:
		return "concatenating bytes"
	case Overflow:
		return "overflow"
	case MemoryIndex:
		return "memory index"
	case InvalidOpcode:
		return "invalid opcode"
	case InvalidRegister:
		return "invalid register"
	case InvalidTrapCode:
		return "invalid trap code"
	case StandardIO:
		return "standard io"
	case InvalidCharacter:
		return "invalid character"
	default:
		return "unknown"
	}
}

// Error is the concrete error value every failure in this module reports
// as. Two Errors with the same Kind compare equal under errors.Is because
// Is compares Kind, not the message text.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Is lets errors.Is(err, lc3err.New(SomeKind, "")) match by Kind alone.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// New constructs an Error of the given kind with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Sentinel returns a zero-message Error usable as an errors.Is target.
func Sentinel(kind Kind) *Error {
	return &Error{Kind: kind}
}

var (
	// ErrOverflow is the sentinel for errors.Is(err, lc3err.ErrOverflow).
	ErrOverflow = Sentinel(Overflow)
)
