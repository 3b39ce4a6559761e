package m68kasm

import "fmt"

// ErrorKind classifies a decoding failure.
type ErrorKind uint8

const (
	noError ErrorKind = iota
	// NotImplemented means no instruction form matched the opcode, or a
	// matched form rejected a sub-field it has no decoding for.
	NotImplemented
	// OutOfSpace means the buffer ended before the instruction did.
	OutOfSpace
	// BadSize means an immediate operand of an unsupported width was
	// requested.
	BadSize
	// Reserved means a bit combination the architecture reserves was found.
	Reserved
	// BadRegister means an illegal register encoding was found.
	BadRegister
)

func (k ErrorKind) String() string {
	switch k {
	case noError:
		return "no error"
	case NotImplemented:
		return "not implemented"
	case OutOfSpace:
		return "out of space"
	case BadSize:
		return "bad size"
	case Reserved:
		return "reserved encoding"
	case BadRegister:
		return "bad register"
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

// Error is the error returned by Decode.
type Error struct {
	Kind   ErrorKind
	Opcode uint16 // first instruction word, if one was read
	Pos    int    // byte offset of the read position when the error was recorded
}

func (e *Error) Error() string {
	return fmt.Sprintf("m68kasm: %s (opcode %#04x, offset %d)", e.Kind, e.Opcode, e.Pos)
}

// Is reports whether target is an *Error of the same kind, so that
// errors.Is(err, ErrOutOfSpace) works regardless of opcode and position.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrNotImplemented = &Error{Kind: NotImplemented}
	ErrOutOfSpace     = &Error{Kind: OutOfSpace}
	ErrBadSize        = &Error{Kind: BadSize}
	ErrReserved       = &Error{Kind: Reserved}
	ErrBadRegister    = &Error{Kind: BadRegister}
)
