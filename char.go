package ordkey

import (
	"io"
	"unicode/utf8"
)

// charCodec is the Codec for a single Unicode scalar value (Go's rune
// type). A char is encoded as the 1-4 UTF-8 bytes of its code point. UTF-8
// preserves code point order under bytewise comparison, the same property
// a whole string's encoding relies on, so no further transform is needed.
//
// Unlike a string, a char is self-delimiting on its own: the decoder reads
// the lead byte to determine how many continuation bytes follow, exactly
// as utf8.DecodeRune does, so Char never requires a terminator even though
// its width varies.
type charCodec struct{}

var stdChar Codec[rune] = charCodec{}

// Char returns a Codec for a single Unicode scalar value. The encoded
// order is by code point. This Codec does not require a terminator.
func Char() Codec[rune] { return stdChar }

func (charCodec) Encode(sink io.Writer, value rune) error {
	if !utf8.ValidRune(value) {
		return invalidEncoding("%#x is not a valid Unicode scalar value", value)
	}
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], value)
	_, err := sink.Write(buf[:n])
	return err
}

func (charCodec) Decode(source io.Reader) (rune, error) {
	var lead [1]byte
	if _, err := io.ReadFull(source, lead[:]); err != nil {
		return 0, unexpectedIfEOF(err)
	}
	size := runeLen(lead[0])
	if size == 0 {
		return utf8.RuneError, invalidEncoding("byte %#x is not a valid UTF-8 lead byte", lead[0])
	}
	buf := make([]byte, size)
	buf[0] = lead[0]
	if size > 1 {
		if _, err := io.ReadFull(source, buf[1:]); err != nil {
			return 0, unexpectedIfEOF(err)
		}
	}
	r, n := utf8.DecodeRune(buf)
	if r == utf8.RuneError && n <= 1 {
		return utf8.RuneError, invalidEncoding("invalid UTF-8 byte sequence % x", buf)
	}
	return r, nil
}

func (charCodec) RequiresTerminator() bool { return false }

// runeLen reports the total length in bytes of the UTF-8 encoding that
// starts with lead, or 0 if lead cannot start a valid encoding.
func runeLen(lead byte) int {
	switch {
	case lead < 0x80:
		return 1
	case lead&0xE0 == 0xC0:
		return 2
	case lead&0xF0 == 0xE0:
		return 3
	case lead&0xF8 == 0xF0:
		return 4
	default:
		return 0
	}
}
