package packet

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed is wrapped by every error caused by bad packet input.
	ErrMalformed = errors.New("packet: malformed input")
	// ErrPairShape indicates a blank-line block that is not exactly two packets.
	ErrPairShape = fmt.Errorf("%w: a pair must be exactly two lines", ErrMalformed)
	// ErrEmpty indicates no packets were supplied.
	ErrEmpty = fmt.Errorf("%w: no packets", ErrMalformed)
)

// SyntaxError describes where Parse gave up.
type SyntaxError struct {
	Offset int    // byte offset into the input
	Char   rune   // offending character; meaningless when EOF is set
	EOF    bool   // the input ended before the packet did
	Msg    string // what was expected
}

func (e *SyntaxError) Error() string {
	if e.EOF {
		return fmt.Sprintf("packet: %s at end of input (offset %d)", e.Msg, e.Offset)
	}
	return fmt.Sprintf("packet: %s at offset %d, found %q", e.Msg, e.Offset, e.Char)
}

// Unwrap lets errors.Is(err, ErrMalformed) match.
func (e *SyntaxError) Unwrap() error { return ErrMalformed }
