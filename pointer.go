package ordkey

import "io"

// pointerCodec is the Codec for *E, built directly on [OptionOf]'s
// discriminator: a nil pointer encodes exactly like [None], and a non-nil
// pointer exactly like [Some].
type pointerCodec[E any] struct {
	elem Codec[E]
}

// PointerTo returns a Codec for *E, with nil pointers ordered first. The
// encoded order of non-nil values is the same as elemCodec produces. This
// Codec requires a terminator if elemCodec does.
func PointerTo[E any](elemCodec Codec[E]) Codec[*E] {
	checkNonNil(elemCodec, "elemCodec")
	return pointerCodec[E]{elemCodec}
}

func (c pointerCodec[E]) Encode(sink io.Writer, value *E) error {
	if value == nil {
		_, err := sink.Write([]byte{discNone})
		return err
	}
	if _, err := sink.Write([]byte{discSome}); err != nil {
		return err
	}
	return c.elem.Encode(sink, *value)
}

func (c pointerCodec[E]) Decode(source io.Reader) (*E, error) {
	var disc [1]byte
	if _, err := io.ReadFull(source, disc[:]); err != nil {
		return nil, unexpectedIfEOF(err)
	}
	switch disc[0] {
	case discNone:
		return nil, nil
	case discSome:
		value, err := c.elem.Decode(source)
		if err != nil {
			return nil, err
		}
		return &value, nil
	default:
		return nil, invalidEncoding("pointer discriminator must be 0x00 or 0x01, got %#x", disc[0])
	}
}

func (c pointerCodec[E]) RequiresTerminator() bool {
	return c.elem.RequiresTerminator()
}
