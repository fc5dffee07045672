package ordkey

import (
	"bytes"
	"io"
)

// negateCodec wraps codec and reverses the ordering of its encoding.
//
// For a codec that doesn't require a terminator, the encoding is a fixed
// concatenation of other self-delimiting pieces, and simply flipping every
// bit reverses its ordering.
//
// For a codec that does require a terminator, flipping bits alone isn't
// enough: every encoding is lexicographically greater than any proper
// prefix of itself, and bit-flipping alone preserves that relationship
// instead of reversing it. Escaping and terminating the payload first, and
// then flipping every bit including the terminator, fixes this: a shorter
// encoding now sorts after any longer encoding it was a prefix of. Either
// way the result needs no terminator of its own: it's already
// self-delimiting, by fixed width or by the terminator baked in before
// negation.
type negateCodec[T any] struct {
	codec Codec[T]
}

// Negate returns a Codec identical to codec but with the opposite
// ordering: whatever would sort lower under codec sorts higher under
// Negate(codec), and vice versa. Useful for a field that should sort in
// descending order within an otherwise ascending composite key. This
// Codec never requires a terminator.
func Negate[T any](codec Codec[T]) Codec[T] {
	checkNonNil(codec, "codec")
	return negateCodec[T]{codec}
}

func negateBytes(buf []byte) {
	for i := range buf {
		buf[i] ^= 0xFF
	}
}

// negateReader flips every bit read from the underlying Reader, so a
// codec reading through it sees the un-negated bytes one at a time
// instead of requiring the whole remaining source up front. A fixed-width
// inner codec then reads exactly its own width, and unescapeRead still
// finds the real (un-negated) terminator sequence, leaving any bytes
// belonging to a later field untouched in the source.
type negateReader struct {
	io.Reader
}

func (r negateReader) Read(p []byte) (int, error) {
	n, err := r.Reader.Read(p)
	negateBytes(p[:n])
	return n, err
}

func (c negateCodec[T]) Encode(sink io.Writer, value T) error {
	var buf bytesWriter
	if err := c.codec.Encode(&buf, value); err != nil {
		return err
	}
	payload := buf.buf
	if c.codec.RequiresTerminator() {
		var escaped bytesWriter
		if err := escapeWrite(&escaped, payload); err != nil {
			return err
		}
		payload = escaped.buf
	}
	negateBytes(payload)
	_, err := sink.Write(payload)
	return err
}

func (c negateCodec[T]) Decode(source io.Reader) (T, error) {
	var zero T
	flipped := negateReader{source}
	if !c.codec.RequiresTerminator() {
		return c.codec.Decode(flipped)
	}
	payload, err := unescapeRead(flipped)
	if err != nil {
		return zero, err
	}
	return c.codec.Decode(bytes.NewReader(payload))
}

func (negateCodec[T]) RequiresTerminator() bool { return false }
