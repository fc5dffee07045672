package ordkey

import (
	"io"
	"unicode/utf8"
)

// stringCodec is the Codec for strings.
//
// A string is encoded as the concatenation of the UTF-8 bytes of its code
// points. Decode consumes source until EOF, so a stringCodec always
// requires a terminator (via [Terminate]) when used anywhere other than as
// the last field of an aggregate.
//
// The order of strings, and this encoding, may be surprising. A string in
// Go is essentially an immutable []byte without text semantics. For a
// UTF-8 string, the order is the same as the lexicographical order of the
// Unicode code points. However, even this is not intuitive: for example,
// 'Z' < 'a'. Collation is locale-dependent, and any ordering could be
// incorrect in another locale.
type stringCodec struct{}

var stdString Codec[string] = stringCodec{}

// String returns a Codec for the string type. This Codec requires a
// terminator.
func String() Codec[string] { return stdString }

func (stringCodec) Encode(sink io.Writer, value string) error {
	_, err := io.WriteString(sink, value)
	return err
}

func (stringCodec) Decode(source io.Reader) (string, error) {
	b, err := io.ReadAll(source)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", invalidEncoding("not valid UTF-8")
	}
	return string(b), nil
}

func (stringCodec) RequiresTerminator() bool { return true }
