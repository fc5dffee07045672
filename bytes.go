package ordkey

import "io"

// bytesCodec is the Codec for []byte, applying the same framing as
// stringCodec to raw octets: encode writes the bytes as-is, and decode
// consumes source until EOF. Ordering is bytewise. There is no separate
// nil/non-nil discriminator here; use [OptionOf]([Bytes]()) for a nilable
// byte sequence, consistent with how every other nilable type in this
// package is expressed.
type bytesCodec struct{}

var stdBytes Codec[[]byte] = bytesCodec{}

// Bytes returns a Codec for the []byte type. Encoding is bytewise
// comparison of the raw octets. This Codec requires a terminator.
func Bytes() Codec[[]byte] { return stdBytes }

func (bytesCodec) Encode(sink io.Writer, value []byte) error {
	_, err := sink.Write(value)
	return err
}

func (bytesCodec) Decode(source io.Reader) ([]byte, error) {
	return io.ReadAll(source)
}

func (bytesCodec) RequiresTerminator() bool { return true }
