package ordkey

import (
	"bytes"
	"io"
)

// sliceCodec is the Codec for a homogeneous sequence ([]E), using elemCodec
// to encode and decode its elements.
//
// Elements are encoded back-to-back with no separator of their own: each
// element is first made self-delimiting via [Terminate] (a no-op if
// elemCodec doesn't need it), so the concatenation can be split back into
// elements on decode without a count prefix. This codec itself always
// requires a terminator, because two sequences where one is a proper
// extension of the other would otherwise be ambiguous with what follows in
// an enclosing aggregate: that's also why SliceOf's element Codec must be
// (is automatically) wrapped with Terminate even when elemCodec wouldn't
// need it standalone — a nested sequence's own internal terminators must
// be escaped again relative to the *enclosing* sequence, not just the
// element's immediate neighbor. See the package's handling of nested
// variable-length framing.
type sliceCodec[E any] struct {
	elem Codec[E]
}

// SliceOf returns a Codec for []E, using elemCodec for the elements.
// Ordering is lexicographic by element, with a shorter sequence sorting
// before any sequence it's a proper prefix of. This Codec requires a
// terminator.
func SliceOf[E any](elemCodec Codec[E]) Codec[[]E] {
	checkNonNil(elemCodec, "elemCodec")
	return sliceCodec[E]{Terminate(elemCodec)}
}

func (c sliceCodec[E]) Encode(sink io.Writer, value []E) error {
	for _, elem := range value {
		if err := c.elem.Encode(sink, elem); err != nil {
			return err
		}
	}
	return nil
}

func (c sliceCodec[E]) Decode(source io.Reader) ([]E, error) {
	data, err := io.ReadAll(source)
	if err != nil {
		return nil, err
	}
	values := []E{}
	r := bytes.NewReader(data)
	for r.Len() > 0 {
		value, err := c.elem.Decode(r)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, nil
}

func (sliceCodec[E]) RequiresTerminator() bool { return true }
