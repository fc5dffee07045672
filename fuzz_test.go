package ordkey_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/orderedkv/ordkey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Seed values chosen to exercise boundary bit patterns, the same reason
// the equivalent hand-written table-driven tests use math.Min/MaxIntN.
var (
	seedsInt32 = []int32{0, 1, -1, math.MinInt32, math.MaxInt32}

	seedsFloat64 = []uint64{
		math.Float64bits(math.MaxFloat64),
		math.Float64bits(math.SmallestNonzeroFloat64),
		math.Float64bits(math.Inf(1)),
		math.Float64bits(math.NaN()),
		math.Float64bits(0.0),
		math.Float64bits(math.Inf(-1)),
		math.Float64bits(math.Copysign(0.0, -1.0)),
	}

	seedsString = []string{
		"",
		"q",
		"\x00",
		"\x00\x00",
		"\x01",
		"\xFF",
		"a\x00b",
	}
)

func addValues[T any](f *testing.F, values ...T) {
	for _, x := range values {
		f.Add(x)
	}
}

func FuzzInt32RoundTrip(f *testing.F) {
	addValues(f, seedsInt32...)
	codec := ordkey.Int32()
	f.Fuzz(func(t *testing.T, value int32) {
		buf, err := ordkey.Append(codec, nil, value)
		require.NoError(t, err)
		got, rest, err := ordkey.Get(codec, buf)
		require.NoError(t, err)
		assert.Empty(t, rest)
		assert.Equal(t, value, got)
	})
}

func FuzzInt32OrderMatchesNative(f *testing.F) {
	for i, a := range seedsInt32 {
		for _, b := range seedsInt32[i+1:] {
			f.Add(a, b)
		}
	}
	codec := ordkey.Int32()
	f.Fuzz(func(t *testing.T, a, b int32) {
		bufA, err := ordkey.Append(codec, nil, a)
		require.NoError(t, err)
		bufB, err := ordkey.Append(codec, nil, b)
		require.NoError(t, err)
		switch {
		case a < b:
			assert.Negative(t, bytes.Compare(bufA, bufB))
		case a > b:
			assert.Positive(t, bytes.Compare(bufA, bufB))
		default:
			assert.Equal(t, 0, bytes.Compare(bufA, bufB))
		}
	})
}

func FuzzFloat64RoundTrip(f *testing.F) {
	for _, bits := range seedsFloat64 {
		f.Add(bits)
	}
	codec := ordkey.Float64()
	f.Fuzz(func(t *testing.T, bits uint64) {
		value := math.Float64frombits(bits)
		buf, err := ordkey.Append(codec, nil, value)
		require.NoError(t, err)
		got, rest, err := ordkey.Get(codec, buf)
		require.NoError(t, err)
		assert.Empty(t, rest)
		// NaN != NaN, so compare bit patterns rather than the floats
		// themselves.
		assert.Equal(t, bits, math.Float64bits(got))
	})
}

func FuzzStringRoundTrip(f *testing.F) {
	addValues(f, seedsString...)
	codec := ordkey.Terminate(ordkey.String())
	f.Fuzz(func(t *testing.T, value string) {
		buf, err := ordkey.Append(codec, nil, value)
		require.NoError(t, err)
		got, rest, err := ordkey.Get(codec, buf)
		require.NoError(t, err)
		assert.Empty(t, rest)
		assert.Equal(t, value, got)
	})
}

func FuzzStringOrderMatchesNative(f *testing.F) {
	for i, a := range seedsString {
		for _, b := range seedsString[i+1:] {
			f.Add(a, b)
		}
	}
	codec := ordkey.Terminate(ordkey.String())
	f.Fuzz(func(t *testing.T, a, b string) {
		bufA, err := ordkey.Append(codec, nil, a)
		require.NoError(t, err)
		bufB, err := ordkey.Append(codec, nil, b)
		require.NoError(t, err)
		switch {
		case a < b:
			assert.Negative(t, bytes.Compare(bufA, bufB))
		case a > b:
			assert.Positive(t, bytes.Compare(bufA, bufB))
		default:
			assert.Equal(t, 0, bytes.Compare(bufA, bufB))
		}
	})
}
