package ordkey_test

import (
	"testing"

	"github.com/orderedkv/ordkey"
)

func TestTerminateNoOpOnFixedWidth(t *testing.T) {
	// Terminate is documented to return its argument unchanged when the
	// argument doesn't require a terminator.
	if ordkey.Terminate(ordkey.Int32()) != ordkey.Int32() {
		t.Fatal("Terminate(Int32()) should be a no-op")
	}
}

func TestTerminateRejectsLoneTerminatorByte(t *testing.T) {
	codec := ordkey.Terminate(ordkey.String())
	_, _, err := ordkey.Get(codec, []byte{'a', 0x00, 0x05})
	if err == nil {
		t.Fatal("expected error decoding a lone terminator byte followed by an invalid byte")
	}
}

func TestTerminateRejectsUnterminatedStream(t *testing.T) {
	codec := ordkey.Terminate(ordkey.String())
	_, _, err := ordkey.Get(codec, []byte{'a', 'b', 'c'})
	if err == nil {
		t.Fatal("expected error decoding a stream with no terminator")
	}
}
