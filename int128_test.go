package ordkey_test

import (
	"math"
	"testing"

	"github.com/orderedkv/ordkey"
)

func TestUint128(t *testing.T) {
	testCodec(t, ordkey.Uint128Codec(), []testCase[ordkey.Uint128]{
		{"zero", ordkey.Uint128{}, make([]byte, 16)},
		{"one", ordkey.Uint128{Lo: 1}, nil},
		{"hi-set", ordkey.Uint128{Hi: 1}, nil},
		{"max", ordkey.Uint128{Hi: math.MaxUint64, Lo: math.MaxUint64}, nil},
	})
}

func TestUint128Ordering(t *testing.T) {
	testOrdering(t, ordkey.Uint128Codec(), []testCase[ordkey.Uint128]{
		{"zero", ordkey.Uint128{}, nil},
		{"lo-max", ordkey.Uint128{Lo: math.MaxUint64}, nil},
		{"hi-one", ordkey.Uint128{Hi: 1}, nil},
		{"max", ordkey.Uint128{Hi: math.MaxUint64, Lo: math.MaxUint64}, nil},
	})
}

func TestInt128Ordering(t *testing.T) {
	testOrdering(t, ordkey.Int128Codec(), []testCase[ordkey.Int128]{
		{"min", ordkey.Int128{Hi: math.MinInt64}, nil},
		{"minus-one", ordkey.Int128{Hi: -1, Lo: math.MaxUint64}, nil},
		{"zero", ordkey.Int128{}, nil},
		{"one", ordkey.Int128{Lo: 1}, nil},
		{"max", ordkey.Int128{Hi: math.MaxInt64, Lo: math.MaxUint64}, nil},
	})
}
