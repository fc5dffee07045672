package ordkey_test

import (
	"testing"

	"github.com/orderedkv/ordkey"
)

func TestChar(t *testing.T) {
	testCodec(t, ordkey.Char(), []testCase[rune]{
		{"ascii", 'A', []byte{'A'}},
		{"two-byte", 'é', nil},
		{"three-byte", '世', nil},
		{"four-byte", '𝔘', nil},
	})
}

func TestCharOrdering(t *testing.T) {
	testOrdering(t, ordkey.Char(), []testCase[rune]{
		{"A", 'A', nil},
		{"Z", 'Z', nil},
		{"a", 'a', nil},
		{"euro", '€', nil},
		{"emoji", '😀', nil},
	})
}

func TestCharRejectsBadLeadByte(t *testing.T) {
	_, _, err := ordkey.Get(ordkey.Char(), []byte{0x80})
	if err == nil {
		t.Fatal("expected error decoding an invalid UTF-8 lead byte")
	}
}
