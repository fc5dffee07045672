package ordkey

import (
	"fmt"
	"io"
)

// ErrUnexpectedEOF is returned when a source is drained in the middle of
// decoding a value. It is the same sentinel as [io.ErrUnexpectedEOF], reused
// directly rather than defined as a redundant local alias.
var ErrUnexpectedEOF = io.ErrUnexpectedEOF

// InvalidEncodingError reports a structural decode failure: a discriminator
// byte out of range, invalid UTF-8, an unknown variant tag, or a malformed
// escape sequence. It indicates either a schema mismatch between the
// encoder and decoder, or a corrupted byte stream.
type InvalidEncodingError struct {
	Reason string
}

func (e *InvalidEncodingError) Error() string {
	return "invalid encoding: " + e.Reason
}

func invalidEncoding(format string, args ...any) error {
	return &InvalidEncodingError{Reason: fmt.Sprintf(format, args...)}
}

// badTypeError reports a Codec misused on a type it does not support.
type badTypeError struct {
	value any
}

func (e badTypeError) Error() string {
	return fmt.Sprintf("bad type %T", e.value)
}

// unknownTagError reports a union Decode reading a variant tag that was
// not among the members passed to [NewUnion].
type unknownTagError struct {
	tag uint32
}

func (e unknownTagError) Error() string {
	return fmt.Sprintf("unknown variant tag %d", e.tag)
}

func checkNonNil(value any, name string) {
	if value == nil {
		panic(name + " must be non-nil")
	}
}
