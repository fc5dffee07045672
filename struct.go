package ordkey

import "io"

// Field describes how to get and set one field of a struct S with Go
// type F, and the Codec that encodes it. Pass the result of [FieldOf] to
// [StructOf]; Field itself carries no behavior.
type Field[S, F any] struct {
	Name  string
	Get   func(S) F
	Set   func(*S, F)
	Codec Codec[F]
}

// FieldOf adapts a [Field] into the type-erased form [StructOf] accepts.
// Field's type parameter F is only needed at the call site, where the Go
// compiler can check Get/Set/Codec agree with each other; StructOf itself
// doesn't need to know F for any one field, only how to encode, decode,
// and name it.
func FieldOf[S, F any](field Field[S, F]) StructField[S] {
	checkNonNil(field.Codec, "field "+field.Name+" codec")
	return StructField[S]{
		name: field.Name,
		build: func(terminate bool) fieldCodec[S] {
			codec := field.Codec
			if terminate {
				codec = Terminate(codec)
			}
			return fieldCodec[S]{
				encode: func(w io.Writer, s S) error {
					return codec.Encode(w, field.Get(s))
				},
				decode: func(r io.Reader, s *S) error {
					value, err := codec.Decode(r)
					if err != nil {
						return err
					}
					field.Set(s, value)
					return nil
				},
				requiresTerminator: codec.RequiresTerminator(),
			}
		},
	}
}

// StructField is an opaque, type-erased field descriptor produced by
// [FieldOf], for passing a heterogeneous list of fields to [StructOf].
type StructField[S any] struct {
	name  string
	build func(terminate bool) fieldCodec[S]
}

type fieldCodec[S any] struct {
	encode             func(io.Writer, S) error
	decode             func(io.Reader, *S) error
	requiresTerminator bool
}

// structCodec is the Codec for a fixed, ordered tuple of heterogeneous
// fields, each described by a [StructField]. Encoding is the
// concatenation of each field's encoding in order, with no length prefix
// and no field tags: the caller's field list is the schema, exactly as a
// Go struct's field list is its own schema. Every field but the last is
// wrapped with [Terminate] so a variable-length field can't swallow the
// bytes of the one after it; the last field needs no such wrapping
// because nothing follows it in the struct's own encoding.
type structCodec[S any] struct {
	fields []fieldCodec[S]
}

// StructOf returns a Codec for S built from an ordered list of fields,
// encoded and decoded in that order. Panics if fields is empty. Use
// [TupleOf2], [TupleOf3], or [TupleOf4] for the common small-arity case
// instead of declaring Fields by hand. This Codec requires a terminator
// unless the final field's Codec doesn't.
func StructOf[S any](fields ...StructField[S]) Codec[S] {
	if len(fields) == 0 {
		panic("fields must be non-empty")
	}
	fcs := make([]fieldCodec[S], len(fields))
	for i, f := range fields {
		fcs[i] = f.build(i < len(fields)-1)
	}
	return structCodec[S]{fcs}
}

func (c structCodec[S]) Encode(sink io.Writer, value S) error {
	for _, f := range c.fields {
		if err := f.encode(sink, value); err != nil {
			return err
		}
	}
	return nil
}

func (c structCodec[S]) Decode(source io.Reader) (S, error) {
	var value S
	for _, f := range c.fields {
		if err := f.decode(source, &value); err != nil {
			var zero S
			return zero, err
		}
	}
	return value, nil
}

func (c structCodec[S]) RequiresTerminator() bool {
	return c.fields[len(c.fields)-1].requiresTerminator
}

// Tuple2 is a fixed-arity, two-element heterogeneous product, for use with
// [TupleOf2] when a single-purpose struct type isn't worth declaring.
type Tuple2[A, B any] struct {
	A A
	B B
}

// TupleOf2 returns a Codec for Tuple2[A, B], encoding A then B. This
// Codec requires a terminator unless codecB doesn't.
func TupleOf2[A, B any](codecA Codec[A], codecB Codec[B]) Codec[Tuple2[A, B]] {
	checkNonNil(codecA, "codecA")
	checkNonNil(codecB, "codecB")
	ta := Terminate(codecA)
	return tuple2Codec[A, B]{ta, codecB}
}

type tuple2Codec[A, B any] struct {
	a Codec[A]
	b Codec[B]
}

func (c tuple2Codec[A, B]) Encode(sink io.Writer, value Tuple2[A, B]) error {
	if err := c.a.Encode(sink, value.A); err != nil {
		return err
	}
	return c.b.Encode(sink, value.B)
}

func (c tuple2Codec[A, B]) Decode(source io.Reader) (Tuple2[A, B], error) {
	var zero Tuple2[A, B]
	a, err := c.a.Decode(source)
	if err != nil {
		return zero, err
	}
	b, err := c.b.Decode(source)
	if err != nil {
		return zero, err
	}
	return Tuple2[A, B]{a, b}, nil
}

func (c tuple2Codec[A, B]) RequiresTerminator() bool { return c.b.RequiresTerminator() }

// Tuple3 is a fixed-arity, three-element heterogeneous product, for use
// with [TupleOf3].
type Tuple3[A, B, C any] struct {
	A A
	B B
	C C
}

// TupleOf3 returns a Codec for Tuple3[A, B, C], encoding A, B, then C.
// This Codec requires a terminator unless codecC doesn't.
func TupleOf3[A, B, C any](codecA Codec[A], codecB Codec[B], codecC Codec[C]) Codec[Tuple3[A, B, C]] {
	checkNonNil(codecA, "codecA")
	checkNonNil(codecB, "codecB")
	checkNonNil(codecC, "codecC")
	return tuple3Codec[A, B, C]{Terminate(codecA), Terminate(codecB), codecC}
}

type tuple3Codec[A, B, C any] struct {
	a Codec[A]
	b Codec[B]
	c Codec[C]
}

func (c tuple3Codec[A, B, C]) Encode(sink io.Writer, value Tuple3[A, B, C]) error {
	if err := c.a.Encode(sink, value.A); err != nil {
		return err
	}
	if err := c.b.Encode(sink, value.B); err != nil {
		return err
	}
	return c.c.Encode(sink, value.C)
}

func (c tuple3Codec[A, B, C]) Decode(source io.Reader) (Tuple3[A, B, C], error) {
	var zero Tuple3[A, B, C]
	a, err := c.a.Decode(source)
	if err != nil {
		return zero, err
	}
	b, err := c.b.Decode(source)
	if err != nil {
		return zero, err
	}
	c2, err := c.c.Decode(source)
	if err != nil {
		return zero, err
	}
	return Tuple3[A, B, C]{a, b, c2}, nil
}

func (c tuple3Codec[A, B, C]) RequiresTerminator() bool { return c.c.RequiresTerminator() }

// Tuple4 is a fixed-arity, four-element heterogeneous product, for use
// with [TupleOf4].
type Tuple4[A, B, C, D any] struct {
	A A
	B B
	C C
	D D
}

// TupleOf4 returns a Codec for Tuple4[A, B, C, D], encoding A, B, C, then
// D. This Codec requires a terminator unless codecD doesn't.
func TupleOf4[A, B, C, D any](
	codecA Codec[A], codecB Codec[B], codecC Codec[C], codecD Codec[D],
) Codec[Tuple4[A, B, C, D]] {
	checkNonNil(codecA, "codecA")
	checkNonNil(codecB, "codecB")
	checkNonNil(codecC, "codecC")
	checkNonNil(codecD, "codecD")
	return tuple4Codec[A, B, C, D]{Terminate(codecA), Terminate(codecB), Terminate(codecC), codecD}
}

type tuple4Codec[A, B, C, D any] struct {
	a Codec[A]
	b Codec[B]
	c Codec[C]
	d Codec[D]
}

func (c tuple4Codec[A, B, C, D]) Encode(sink io.Writer, value Tuple4[A, B, C, D]) error {
	if err := c.a.Encode(sink, value.A); err != nil {
		return err
	}
	if err := c.b.Encode(sink, value.B); err != nil {
		return err
	}
	if err := c.c.Encode(sink, value.C); err != nil {
		return err
	}
	return c.d.Encode(sink, value.D)
}

func (c tuple4Codec[A, B, C, D]) Decode(source io.Reader) (Tuple4[A, B, C, D], error) {
	var zero Tuple4[A, B, C, D]
	a, err := c.a.Decode(source)
	if err != nil {
		return zero, err
	}
	b, err := c.b.Decode(source)
	if err != nil {
		return zero, err
	}
	c2, err := c.c.Decode(source)
	if err != nil {
		return zero, err
	}
	d, err := c.d.Decode(source)
	if err != nil {
		return zero, err
	}
	return Tuple4[A, B, C, D]{a, b, c2, d}, nil
}

func (c tuple4Codec[A, B, C, D]) RequiresTerminator() bool { return c.d.RequiresTerminator() }
