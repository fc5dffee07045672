package ordkey_test

// This file contains test helpers shared across the package's test files.
// It has no tests of its own.

import (
	"bytes"
	"testing"

	"github.com/orderedkv/ordkey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](value T) *T {
	return &value
}

// testCase is one round-trip test case for a Codec[T].
type testCase[T any] struct {
	name  string
	value T
	// data is the expected encoding, or nil to skip checking the exact bytes
	// and only check round-trip.
	data []byte
}

// testCodec round-trips every test case through codec, via both the
// []byte Append/Get helpers and the io.Writer/io.Reader Encode/Decode
// methods directly, and checks the encoding against tt.data when given.
func testCodec[T any](t *testing.T, codec ordkey.Codec[T], tests []testCase[T]) {
	t.Helper()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			buf, err := ordkey.Append(codec, nil, tt.value)
			require.NoError(t, err)
			if tt.data != nil {
				assert.Equal(t, tt.data, buf)
			}

			got, rest, err := ordkey.Get(codec, buf)
			require.NoError(t, err)
			assert.Empty(t, rest)
			assert.Equal(t, tt.value, got)

			var w bytes.Buffer
			require.NoError(t, codec.Encode(&w, tt.value))
			if tt.data != nil {
				assert.Equal(t, tt.data, w.Bytes())
			}
			got2, err := codec.Decode(&w)
			require.NoError(t, err)
			assert.Equal(t, tt.value, got2)
		})
	}
}

// testOrdering checks that the encodings of tests, sorted by byte order,
// appear in the same relative order as tests itself (tests must already be
// given in increasing logical order, possibly with ties).
func testOrdering[T any](t *testing.T, codec ordkey.Codec[T], tests []testCase[T]) {
	t.Helper()
	var prev []byte
	var prevName string
	for _, tt := range tests {
		buf, err := ordkey.Append(codec, nil, tt.value)
		require.NoError(t, err)
		if prev != nil {
			assert.LessOrEqual(t, bytes.Compare(prev, buf), 0,
				"expected encode(%s) <= encode(%s)", prevName, tt.name)
		}
		prev = buf
		prevName = tt.name
	}
}

// concat is a terser way to build an expected encoding out of pieces.
func concat(slices ...[]byte) []byte {
	var result []byte
	for _, s := range slices {
		result = append(result, s...)
	}
	return result
}
