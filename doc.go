// Package ordkey defines an order-preserving binary encoding for Go values.
//
// The encoded form of a value is a byte string, and the unsigned
// lexicographic ordering of those byte strings matches the logical
// ordering of the source values. This makes the package suitable for
// producing keys for sorted key-value stores, where range scans, prefix
// scans, and ordered iteration operate directly on the byte ordering of
// the key.
//
// The [Codec][T] interface defines an encoding, with methods to encode and
// decode values of type T against an [io.Writer] sink and an [io.Reader]
// source respectively. Functions returning Codecs for different types
// constitute the majority of this API:
//
//   - [Bool]
//   - [Uint8], [Uint16], [Uint32], [Uint64]
//   - [Int8], [Int16], [Int32], [Int64]
//   - [Uint128Codec], [Int128Codec]
//   - [Float32], [Float64]
//   - [Char]
//   - [String], [Bytes]
//   - [Time]
//   - [OptionOf]
//   - [PointerTo]
//   - [SliceOf]
//   - [StructOf], [TupleOf2], [TupleOf3], [TupleOf4]
//   - [NewUnion]
//   - [Negate]
//   - [Terminate]
//
// # Self-delimitation and escaping
//
// The decoder is driven entirely by an externally supplied type: no type
// tags are written to the stream. Fixed-width primitives (bool, integers,
// floats, [Uint128]/[Int128]) are self-delimiting by construction. Variable
// -length payloads (string, []byte, and any Codec whose
// [Codec.RequiresTerminator] reports true) use a sentinel-escape framing:
// every literal 0x00 byte in the payload is replaced with 0x00 0x01, and
// the payload is terminated with 0x00 0x00. See [Codec.RequiresTerminator]
// for when a Codec embedded in an aggregate needs to be wrapped with
// [Terminate].
//
// All Codecs provided by this package are safe for concurrent use if their
// delegate Codecs (if any) are. The only state shared across calls is the
// lock-guarded memo of zone names that [Time] uses when decoding; it does
// not affect any encoded or decoded value.
package ordkey

import "io"

// Codec defines a binary encoding for values of type T such that the
// unsigned lexicographic order of encoded bytes matches T's logical order.
//
// Encode appends the encoded form of value to sink. It returns an error
// from sink itself (an I/O failure); the only other encode error is
// [Char]'s [*InvalidEncodingError] for a rune that is not a valid Unicode
// scalar value.
//
// Decode reads and removes exactly the bytes of one encoded value from
// source, returning the decoded value. Decode never reads past the end of
// the value it decodes: callers may reuse source for a subsequent Decode.
// Decode returns:
//   - [ErrUnexpectedEOF] if source is drained mid-value,
//   - an [*InvalidEncodingError] if the bytes read are structurally invalid
//     for T (bad discriminator, bad UTF-8, unknown variant tag, malformed
//     escape sequence),
//   - any other error returned by source itself, propagated verbatim.
//
// All Codecs provided by this package order a zero-length encoding (or
// "none"/nil, where applicable) before any non-empty encoding.
type Codec[T any] interface {
	// Encode writes value's encoded form to sink.
	Encode(sink io.Writer, value T) error

	// Decode reads one value of type T from source.
	Decode(source io.Reader) (T, error)

	// RequiresTerminator reports whether this Codec's encodings need
	// escaping and a terminator when more data follows in the same
	// stream without an enclosing length prefix. This is the case for
	// any Codec that can produce a zero-length encoding, or that can
	// produce two distinct encodings where one is a proper prefix of
	// the other (strings, byte sequences, sequences, options over such
	// types, and unions with such a payload).
	//
	// Wrapping a Codec that requires a terminator with [Terminate]
	// returns a Codec that does not.
	RequiresTerminator() bool
}

// Append encodes value using codec and appends the result to buf, returning
// the extended buffer. This is a convenience wrapper over [Codec.Encode]
// for callers building up a single []byte rather than streaming to an
// [io.Writer].
func Append[T any](codec Codec[T], buf []byte, value T) ([]byte, error) {
	w := bytesWriter{buf: buf}
	if err := codec.Encode(&w, value); err != nil {
		return w.buf, err
	}
	return w.buf, nil
}

// Get decodes a single value of type T from buf using codec, returning the
// value and any bytes of buf following the encoded value. This is a
// convenience wrapper over [Codec.Decode] for callers holding an entire
// encoded value (or stream of values) in memory as a []byte.
func Get[T any](codec Codec[T], buf []byte) (T, []byte, error) {
	r := &bytesReader{buf: buf}
	value, err := codec.Decode(r)
	return value, buf[r.pos:], err
}

// bytesWriter is a minimal io.Writer appending to a growable []byte,
// avoiding a bytes.Buffer allocation for the common Append use case.
type bytesWriter struct {
	buf []byte
}

func (w *bytesWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	return len(p), nil
}

// bytesReader is a minimal io.Reader over a []byte that tracks how many
// bytes have been consumed, so [Get] can report the unconsumed remainder
// without requiring source to support io.Seeker.
type bytesReader struct {
	buf []byte
	pos int
}

func (r *bytesReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.buf) {
		return 0, io.EOF
	}
	n := copy(p, r.buf[r.pos:])
	r.pos += n
	return n, nil
}

// ReadByte lets bytesReader satisfy io.ByteReader, used by the escape state
// machine to read one byte at a time without wrapping every source in a
// *bufio.Reader.
func (r *bytesReader) ReadByte() (byte, error) {
	if r.pos >= len(r.buf) {
		return 0, io.EOF
	}
	b := r.buf[r.pos]
	r.pos++
	return b, nil
}
