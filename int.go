package ordkey

import (
	"encoding/binary"
	"io"
	"math"
)

// Codecs for bool and fixed-length unsigned integral types.
//
// bool encodes as a single byte, 0x00 for false and 0x01 for true, so that
// false sorts before true. The unsigned integer types encode as big-endian
// fixed-width bytes, so that bytewise comparison of the encoded form
// matches numeric magnitude directly.
type (
	boolCodec   struct{}
	uint8Codec  struct{}
	uint16Codec struct{}
	uint32Codec struct{}
	uint64Codec struct{}
)

const (
	uint8Size  = 1
	uint16Size = 2
	uint32Size = 4
	uint64Size = 8
)

var (
	stdBool   Codec[bool]   = boolCodec{}
	stdUint8  Codec[uint8]  = uint8Codec{}
	stdUint16 Codec[uint16] = uint16Codec{}
	stdUint32 Codec[uint32] = uint32Codec{}
	stdUint64 Codec[uint64] = uint64Codec{}
)

// Bool returns a Codec for the bool type. The encoded order is false, then
// true. This Codec does not require a terminator.
func Bool() Codec[bool] { return stdBool }

// Uint8 returns a Codec for the uint8 type. This Codec does not require a
// terminator.
func Uint8() Codec[uint8] { return stdUint8 }

// Uint16 returns a Codec for the uint16 type. This Codec does not require a
// terminator.
func Uint16() Codec[uint16] { return stdUint16 }

// Uint32 returns a Codec for the uint32 type. This Codec does not require a
// terminator.
func Uint32() Codec[uint32] { return stdUint32 }

// Uint64 returns a Codec for the uint64 type. This Codec does not require a
// terminator.
func Uint64() Codec[uint64] { return stdUint64 }

func (boolCodec) Encode(sink io.Writer, value bool) error {
	b := byte(0)
	if value {
		b = 1
	}
	_, err := sink.Write([]byte{b})
	return err
}

func (boolCodec) Decode(source io.Reader) (bool, error) {
	var buf [1]byte
	if _, err := io.ReadFull(source, buf[:]); err != nil {
		return false, unexpectedIfEOF(err)
	}
	if buf[0] != 0 && buf[0] != 1 {
		return false, invalidEncoding("bool byte must be 0x00 or 0x01, got %#x", buf[0])
	}
	return buf[0] == 1, nil
}

func (boolCodec) RequiresTerminator() bool { return false }

func (uint8Codec) Encode(sink io.Writer, value uint8) error {
	_, err := sink.Write([]byte{value})
	return err
}

func (uint8Codec) Decode(source io.Reader) (uint8, error) {
	var buf [uint8Size]byte
	if _, err := io.ReadFull(source, buf[:]); err != nil {
		return 0, unexpectedIfEOF(err)
	}
	return buf[0], nil
}

func (uint8Codec) RequiresTerminator() bool { return false }

func (uint16Codec) Encode(sink io.Writer, value uint16) error {
	var buf [uint16Size]byte
	binary.BigEndian.PutUint16(buf[:], value)
	_, err := sink.Write(buf[:])
	return err
}

func (uint16Codec) Decode(source io.Reader) (uint16, error) {
	var buf [uint16Size]byte
	if _, err := io.ReadFull(source, buf[:]); err != nil {
		return 0, unexpectedIfEOF(err)
	}
	return binary.BigEndian.Uint16(buf[:]), nil
}

func (uint16Codec) RequiresTerminator() bool { return false }

func (uint32Codec) Encode(sink io.Writer, value uint32) error {
	var buf [uint32Size]byte
	binary.BigEndian.PutUint32(buf[:], value)
	_, err := sink.Write(buf[:])
	return err
}

func (uint32Codec) Decode(source io.Reader) (uint32, error) {
	var buf [uint32Size]byte
	if _, err := io.ReadFull(source, buf[:]); err != nil {
		return 0, unexpectedIfEOF(err)
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

func (uint32Codec) RequiresTerminator() bool { return false }

func (uint64Codec) Encode(sink io.Writer, value uint64) error {
	var buf [uint64Size]byte
	binary.BigEndian.PutUint64(buf[:], value)
	_, err := sink.Write(buf[:])
	return err
}

func (uint64Codec) Decode(source io.Reader) (uint64, error) {
	var buf [uint64Size]byte
	if _, err := io.ReadFull(source, buf[:]); err != nil {
		return 0, unexpectedIfEOF(err)
	}
	return binary.BigEndian.Uint64(buf[:]), nil
}

func (uint64Codec) RequiresTerminator() bool { return false }

// Codecs for fixed-length signed integral types.
//
// These encode a value by flipping the sign bit and writing the result in
// big-endian order, biasing the signed range onto the unsigned range so
// that negatives sort below positives and magnitudes within each sign sort
// correctly:
//
//	0x8000... -> 0x0000...  most negative
//	0xFFFF... -> 0x7FFF...  -1
//	0x0000... -> 0x8000...  0
//	0x0000..1 -> 0x8000..1  1
//	0x7FFF... -> 0xFFFF...  most positive
type (
	int8Codec  struct{}
	int16Codec struct{}
	int32Codec struct{}
	int64Codec struct{}
)

var (
	stdInt8  Codec[int8]  = int8Codec{}
	stdInt16 Codec[int16] = int16Codec{}
	stdInt32 Codec[int32] = int32Codec{}
	stdInt64 Codec[int64] = int64Codec{}
)

// Int8 returns a Codec for the int8 type. This Codec does not require a
// terminator.
func Int8() Codec[int8] { return stdInt8 }

// Int16 returns a Codec for the int16 type. This Codec does not require a
// terminator.
func Int16() Codec[int16] { return stdInt16 }

// Int32 returns a Codec for the int32 type. This Codec does not require a
// terminator.
func Int32() Codec[int32] { return stdInt32 }

// Int64 returns a Codec for the int64 type. This Codec does not require a
// terminator.
func Int64() Codec[int64] { return stdInt64 }

func (int8Codec) Encode(sink io.Writer, value int8) error {
	_, err := sink.Write([]byte{byte(math.MinInt8 ^ value)})
	return err
}

func (int8Codec) Decode(source io.Reader) (int8, error) {
	var buf [uint8Size]byte
	if _, err := io.ReadFull(source, buf[:]); err != nil {
		return 0, unexpectedIfEOF(err)
	}
	return math.MinInt8 ^ int8(buf[0]), nil
}

func (int8Codec) RequiresTerminator() bool { return false }

func (int16Codec) Encode(sink io.Writer, value int16) error {
	var buf [uint16Size]byte
	binary.BigEndian.PutUint16(buf[:], uint16(math.MinInt16^value))
	_, err := sink.Write(buf[:])
	return err
}

func (int16Codec) Decode(source io.Reader) (int16, error) {
	var buf [uint16Size]byte
	if _, err := io.ReadFull(source, buf[:]); err != nil {
		return 0, unexpectedIfEOF(err)
	}
	return math.MinInt16 ^ int16(binary.BigEndian.Uint16(buf[:])), nil
}

func (int16Codec) RequiresTerminator() bool { return false }

func (int32Codec) Encode(sink io.Writer, value int32) error {
	var buf [uint32Size]byte
	binary.BigEndian.PutUint32(buf[:], uint32(math.MinInt32^value))
	_, err := sink.Write(buf[:])
	return err
}

func (int32Codec) Decode(source io.Reader) (int32, error) {
	var buf [uint32Size]byte
	if _, err := io.ReadFull(source, buf[:]); err != nil {
		return 0, unexpectedIfEOF(err)
	}
	return math.MinInt32 ^ int32(binary.BigEndian.Uint32(buf[:])), nil
}

func (int32Codec) RequiresTerminator() bool { return false }

func (int64Codec) Encode(sink io.Writer, value int64) error {
	var buf [uint64Size]byte
	binary.BigEndian.PutUint64(buf[:], uint64(math.MinInt64^value))
	_, err := sink.Write(buf[:])
	return err
}

func (int64Codec) Decode(source io.Reader) (int64, error) {
	var buf [uint64Size]byte
	if _, err := io.ReadFull(source, buf[:]); err != nil {
		return 0, unexpectedIfEOF(err)
	}
	return math.MinInt64 ^ int64(binary.BigEndian.Uint64(buf[:])), nil
}

func (int64Codec) RequiresTerminator() bool { return false }

// unexpectedIfEOF converts a plain io.EOF (no bytes read at all) into
// io.ErrUnexpectedEOF, since a fixed-width primitive drained of all its
// bytes mid-value is always a truncated stream, never a legitimate "no more
// values" signal. io.ReadFull already does this translation for a partial
// read; this only needs to handle io.ReadFull returning the bare io.EOF
// case for zero bytes read.
func unexpectedIfEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
