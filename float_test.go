package ordkey_test

import (
	"math"
	"testing"

	"github.com/orderedkv/ordkey"
)

func TestFloat64RoundTrip(t *testing.T) {
	testCodec(t, ordkey.Float64(), []testCase[float64]{
		{"zero", 0, nil},
		{"neg-zero", math.Copysign(0, -1), nil},
		{"one", 1, nil},
		{"neg-one", -1, nil},
		{"inf", math.Inf(1), nil},
		{"neg-inf", math.Inf(-1), nil},
		{"smallest-subnormal", math.SmallestNonzeroFloat64, nil},
		{"max", math.MaxFloat64, nil},
	})
}

func TestFloat64Ordering(t *testing.T) {
	testOrdering(t, ordkey.Float64(), []testCase[float64]{
		{"-inf", math.Inf(-1), nil},
		{"-max", -math.MaxFloat64, nil},
		{"-1", -1, nil},
		{"-smallest-subnormal", -math.SmallestNonzeroFloat64, nil},
		{"-zero", math.Copysign(0, -1), nil},
		{"zero", 0, nil},
		{"smallest-subnormal", math.SmallestNonzeroFloat64, nil},
		{"1", 1, nil},
		{"max", math.MaxFloat64, nil},
		{"inf", math.Inf(1), nil},
	})
}

func TestFloat32Ordering(t *testing.T) {
	testOrdering(t, ordkey.Float32(), []testCase[float32]{
		{"-inf", float32(math.Inf(-1)), nil},
		{"-1", -1, nil},
		{"-zero", float32(math.Copysign(0, -1)), nil},
		{"zero", 0, nil},
		{"1", 1, nil},
		{"inf", float32(math.Inf(1)), nil},
	})
}
