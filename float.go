package ordkey

import (
	"encoding/binary"
	"io"
	"math"
)

const (
	highBit32 uint32 = 0x80_00_00_00
	allBits32 uint32 = 0xFF_FF_FF_FF
	highBit64 uint64 = 0x80_00_00_00_00_00_00_00
	allBits64 uint64 = 0xFF_FF_FF_FF_FF_FF_FF_FF
)

// float32Codec is the Codec for float32.
//
// Starting from the IEEE 754 bit pattern interpreted as a big-endian
// unsigned integer: if the sign bit is 0 (non-negative), only the sign bit
// is flipped; if the sign bit is 1 (negative), all bits are flipped. This
// yields a total order consistent with IEEE 754 totalOrder on non-NaN
// values:
//
//	-NaN < -Inf < negative finite < -0.0 < +0.0 < positive finite < +Inf < +NaN
//
// -0.0 and +0.0 get adjacent but distinct encodings, and each decodes back
// to its own sign.
//
// Every bit pattern round-trips, including every distinct NaN payload, but
// NaN values are not ordered relative to each other or to the infinities.
type float32Codec struct{}

// float64Codec is the Codec for float64, analogous to float32Codec with a
// wider exponent and mantissa.
type float64Codec struct{}

var (
	stdFloat32 Codec[float32] = float32Codec{}
	stdFloat64 Codec[float64] = float64Codec{}
)

// Float32 returns a Codec for the float32 type. This Codec does not
// require a terminator.
func Float32() Codec[float32] { return stdFloat32 }

// Float64 returns a Codec for the float64 type. This Codec does not
// require a terminator.
func Float64() Codec[float64] { return stdFloat64 }

func (float32Codec) Encode(sink io.Writer, value float32) error {
	bits := math.Float32bits(value)
	if bits&highBit32 == 0 {
		bits ^= highBit32
	} else {
		bits ^= allBits32
	}
	var buf [uint32Size]byte
	binary.BigEndian.PutUint32(buf[:], bits)
	_, err := sink.Write(buf[:])
	return err
}

func (float32Codec) Decode(source io.Reader) (float32, error) {
	var buf [uint32Size]byte
	if _, err := io.ReadFull(source, buf[:]); err != nil {
		return 0, unexpectedIfEOF(err)
	}
	bits := binary.BigEndian.Uint32(buf[:])
	if bits&highBit32 == 0 {
		bits ^= allBits32
	} else {
		bits ^= highBit32
	}
	return math.Float32frombits(bits), nil
}

func (float32Codec) RequiresTerminator() bool { return false }

func (float64Codec) Encode(sink io.Writer, value float64) error {
	bits := math.Float64bits(value)
	if bits&highBit64 == 0 {
		bits ^= highBit64
	} else {
		bits ^= allBits64
	}
	var buf [uint64Size]byte
	binary.BigEndian.PutUint64(buf[:], bits)
	_, err := sink.Write(buf[:])
	return err
}

func (float64Codec) Decode(source io.Reader) (float64, error) {
	var buf [uint64Size]byte
	if _, err := io.ReadFull(source, buf[:]); err != nil {
		return 0, unexpectedIfEOF(err)
	}
	bits := binary.BigEndian.Uint64(buf[:])
	if bits&highBit64 == 0 {
		bits ^= allBits64
	} else {
		bits ^= highBit64
	}
	return math.Float64frombits(bits), nil
}

func (float64Codec) RequiresTerminator() bool { return false }
