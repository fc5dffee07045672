package ordkey_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/orderedkv/ordkey"
)

type intVariant struct{ N int32 }

type strVariant struct{ S string }

func eventCodec() ordkey.Codec[any] {
	return ordkey.NewUnion(
		ordkey.RegisterMember(ordkey.UnionMember[intVariant]{
			Tag:   1,
			Codec: intVariantCodec(),
		}, intVariant{}),
		ordkey.RegisterMember(ordkey.UnionMember[strVariant]{
			Tag:   2,
			Codec: strVariantCodec(),
		}, strVariant{}),
	)
}

func intVariantCodec() ordkey.Codec[intVariant] {
	return ordkey.StructOf(
		ordkey.FieldOf(ordkey.Field[intVariant, int32]{
			Name:  "N",
			Get:   func(v intVariant) int32 { return v.N },
			Set:   func(v *intVariant, n int32) { v.N = n },
			Codec: ordkey.Int32(),
		}),
	)
}

func strVariantCodec() ordkey.Codec[strVariant] {
	return ordkey.StructOf(
		ordkey.FieldOf(ordkey.Field[strVariant, string]{
			Name:  "S",
			Get:   func(v strVariant) string { return v.S },
			Set:   func(v *strVariant, s string) { v.S = s },
			Codec: ordkey.String(),
		}),
	)
}

func TestUnion(t *testing.T) {
	codec := eventCodec()
	testCodec(t, codec, []testCase[any]{
		{"int-variant", intVariant{N: 42}, nil},
		{"str-variant", strVariant{S: "hi"}, nil},
	})
}

func TestUnionOrderingByTag(t *testing.T) {
	codec := eventCodec()
	// Tag order dominates payload: every intVariant (tag 1) sorts before
	// every strVariant (tag 2), regardless of payload value.
	testOrdering(t, codec, []testCase[any]{
		{"int-small", intVariant{N: -1000}, nil},
		{"int-large", intVariant{N: 1000}, nil},
		{"str-a", strVariant{S: "a"}, nil},
	})
}

func TestUnionDecodeUnknownTag(t *testing.T) {
	codec := eventCodec()
	_, _, err := ordkey.Get(codec, []byte{0, 0, 0, 99})
	if err == nil {
		t.Fatal("expected error decoding an unregistered union tag")
	}
}

func TestUnionSequenceRoundTrip(t *testing.T) {
	// A sequence of heterogeneous union payloads: testify's reflect-based
	// equality works here too, but a mismatch buried in one element of a
	// long []any is far easier to locate from cmp.Diff's structural diff
	// than from a single "not equal" assertion failure.
	codec := ordkey.SliceOf(eventCodec())
	values := []any{
		intVariant{N: 1},
		strVariant{S: "a"},
		intVariant{N: -7},
	}

	buf, err := ordkey.Append(codec, nil, values)
	if err != nil {
		t.Fatal(err)
	}
	got, rest, err := ordkey.Get(codec, buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(rest) != 0 {
		t.Fatalf("unexpected trailing bytes: %v", rest)
	}
	if diff := cmp.Diff(values, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestUnionEncodeUnregisteredType(t *testing.T) {
	codec := eventCodec()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic encoding a value of an unregistered type")
		}
	}()
	_, _ = ordkey.Append(codec, nil, 3.14)
}
