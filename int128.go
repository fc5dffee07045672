package ordkey

import (
	"io"
)

// Uint128 is an unsigned 128-bit integer, represented as two 64-bit words.
// Value is Hi<<64 | Lo.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// Int128 is a signed 128-bit integer in the same two's-complement layout as
// Uint128, with Hi holding the sign.
type Int128 struct {
	Hi int64
	Lo uint64
}

// uint128Codec and int128Codec generalize int.go's fixed-width big-endian
// encoding to a 16-byte, two-word integer: there is no native 128-bit
// integer type in Go, so the high and low 64-bit words are each framed the
// same way a single uint64/int64 would be, high word first.
type (
	uint128Codec struct{}
	int128Codec  struct{}
)

const uint128Size = 16

var (
	stdUint128 Codec[Uint128] = uint128Codec{}
	stdInt128  Codec[Int128]  = int128Codec{}
)

// Uint128Codec returns a Codec for the Uint128 type: two big-endian uint64
// words, high word first. This Codec does not require a terminator.
func Uint128Codec() Codec[Uint128] { return stdUint128 }

// Int128Codec returns a Codec for the Int128 type: the same two-word
// layout as Uint128Codec, with the sign bit of the high word flipped, the
// same bias used by [Int64]. This Codec does not require a terminator.
func Int128Codec() Codec[Int128] { return stdInt128 }

func (uint128Codec) Encode(sink io.Writer, value Uint128) error {
	if err := stdUint64.Encode(sink, value.Hi); err != nil {
		return err
	}
	return stdUint64.Encode(sink, value.Lo)
}

func (uint128Codec) Decode(source io.Reader) (Uint128, error) {
	hi, err := stdUint64.Decode(source)
	if err != nil {
		return Uint128{}, err
	}
	lo, err := stdUint64.Decode(source)
	if err != nil {
		return Uint128{}, unexpectedIfEOF(err)
	}
	return Uint128{Hi: hi, Lo: lo}, nil
}

func (uint128Codec) RequiresTerminator() bool { return false }

func (int128Codec) Encode(sink io.Writer, value Int128) error {
	if err := stdInt64.Encode(sink, value.Hi); err != nil {
		return err
	}
	return stdUint64.Encode(sink, value.Lo)
}

func (int128Codec) Decode(source io.Reader) (Int128, error) {
	hi, err := stdInt64.Decode(source)
	if err != nil {
		return Int128{}, err
	}
	lo, err := stdUint64.Decode(source)
	if err != nil {
		return Int128{}, unexpectedIfEOF(err)
	}
	return Int128{Hi: hi, Lo: lo}, nil
}

func (int128Codec) RequiresTerminator() bool { return false }
