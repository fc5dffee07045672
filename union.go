package ordkey

import (
	"encoding/binary"
	"fmt"
	"io"
	"reflect"
)

// UnionMember associates one variant of a tagged union with a Go type T,
// a Codec for that type, and a 4-byte tag. Tags, not registration order,
// define the sort position of a variant: a value of the variant with the
// smaller tag sorts before any value of the variant with the larger tag,
// regardless of payload.
type UnionMember[T any] struct {
	Tag   uint32
	Codec Codec[T]
}

// unionVariant is the type-erased form of a UnionMember, keyed internally
// by the concrete Go type it was built from.
type unionVariant struct {
	tag     uint32
	encode  func(io.Writer, any) error
	decode  func(io.Reader) (any, error)
	reqTerm bool
}

// unionCodec is the Codec for a closed set of variants dispatched by
// concrete Go type, encoded as a fixed 4-byte big-endian tag followed by
// the variant's own encoding. Values are looked up by reflect.Type on
// encode and by tag on decode.
type unionCodec struct {
	byType map[reflect.Type]unionVariant
	byTag  map[uint32]unionVariant
}

// NewUnion returns a Codec for `any` restricted, by convention, to the
// set of Go types passed in as members. Each member is built with
// [RegisterMember], which erases its type parameter so that members of
// different concrete types fit in one variadic argument list. The set of
// members is fixed once NewUnion returns.
//
// Encode panics if value's concrete type wasn't registered (a
// programming error, not a data error — the set of variants is part of
// the schema). Decode returns an [*InvalidEncodingError] for an unknown
// tag, since an unrecognized tag in the stream could be due to a version
// skew between the schema that wrote it and the schema reading it. This
// Codec requires a terminator if any registered member's Codec does.
func NewUnion(members ...unionMemberRegistration) Codec[any] {
	c := &unionCodec{
		byType: make(map[reflect.Type]unionVariant, len(members)),
		byTag:  make(map[uint32]unionVariant, len(members)),
	}
	for _, m := range members {
		m.register(c)
	}
	return c
}

// unionMemberRegistration is the type-erased form of a [UnionMember],
// produced by [RegisterMember].
type unionMemberRegistration struct {
	register func(*unionCodec)
}

// RegisterMember adds T as a variant of a union built by [NewUnion],
// identified by a sample value used only to determine T's concrete
// reflect.Type (its contents are ignored).
func RegisterMember[T any](member UnionMember[T], sample T) unionMemberRegistration {
	checkNonNil(member.Codec, fmt.Sprintf("member %T codec", sample))
	t := reflect.TypeOf(sample)
	variant := unionVariant{
		tag: member.Tag,
		encode: func(w io.Writer, value any) error {
			return member.Codec.Encode(w, value.(T))
		},
		decode: func(r io.Reader) (any, error) {
			return member.Codec.Decode(r)
		},
		reqTerm: member.Codec.RequiresTerminator(),
	}
	return unionMemberRegistration{
		register: func(c *unionCodec) {
			c.byType[t] = variant
			c.byTag[member.Tag] = variant
		},
	}
}

func (c *unionCodec) Encode(sink io.Writer, value any) error {
	t := reflect.TypeOf(value)
	variant, ok := c.byType[t]
	if !ok {
		panic(badTypeError{value})
	}
	var tag [4]byte
	binary.BigEndian.PutUint32(tag[:], variant.tag)
	if _, err := sink.Write(tag[:]); err != nil {
		return err
	}
	return variant.encode(sink, value)
}

func (c *unionCodec) Decode(source io.Reader) (any, error) {
	var tag [4]byte
	if _, err := io.ReadFull(source, tag[:]); err != nil {
		return nil, unexpectedIfEOF(err)
	}
	t := binary.BigEndian.Uint32(tag[:])
	variant, ok := c.byTag[t]
	if !ok {
		return nil, &InvalidEncodingError{Reason: unknownTagError{t}.Error()}
	}
	return variant.decode(source)
}

func (c *unionCodec) RequiresTerminator() bool {
	for _, v := range c.byTag {
		if v.reqTerm {
			return true
		}
	}
	return false
}
