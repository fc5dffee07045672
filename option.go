package ordkey

import "io"

// optionCodec is the Codec for Option[T] composed from an inner Codec[T].
//
// An option is a one-byte discriminator (0x00 for none, 0x01 for some)
// followed, only in the some case, by the inner value. None sorts below
// any some because 0x00 < 0x01. Nilable byte sequences, sequences, and so
// on are expressed by composing their Codec with OptionOf rather than
// carrying their own discriminator; [PointerTo] writes the same two
// discriminator bytes itself.
type optionCodec[T any] struct {
	elem Codec[T]
}

const (
	discNone byte = 0x00
	discSome byte = 0x01
)

// OptionOf returns a Codec for an optional T, using elemCodec to encode
// and decode the value when present. None sorts before any Some. This
// Codec requires a terminator if elemCodec does.
func OptionOf[T any](elemCodec Codec[T]) Codec[Option[T]] {
	checkNonNil(elemCodec, "elemCodec")
	return optionCodec[T]{elemCodec}
}

// Option holds an optional value of type T, used with [OptionOf].
type Option[T any] struct {
	Valid bool
	Value T
}

// Some returns a present Option wrapping value.
func Some[T any](value T) Option[T] {
	return Option[T]{Valid: true, Value: value}
}

// None returns an absent Option of type T.
func None[T any]() Option[T] {
	return Option[T]{}
}

func (c optionCodec[T]) Encode(sink io.Writer, value Option[T]) error {
	if !value.Valid {
		_, err := sink.Write([]byte{discNone})
		return err
	}
	if _, err := sink.Write([]byte{discSome}); err != nil {
		return err
	}
	return c.elem.Encode(sink, value.Value)
}

func (c optionCodec[T]) Decode(source io.Reader) (Option[T], error) {
	var disc [1]byte
	if _, err := io.ReadFull(source, disc[:]); err != nil {
		return Option[T]{}, unexpectedIfEOF(err)
	}
	switch disc[0] {
	case discNone:
		return Option[T]{}, nil
	case discSome:
		value, err := c.elem.Decode(source)
		if err != nil {
			return Option[T]{}, err
		}
		return Some(value), nil
	default:
		return Option[T]{}, invalidEncoding("option discriminator must be 0x00 or 0x01, got %#x", disc[0])
	}
}

func (c optionCodec[T]) RequiresTerminator() bool {
	return c.elem.RequiresTerminator()
}
