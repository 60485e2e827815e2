package common

import "testing"

func TestWipeByteArray_ZeroesAllBytes(t *testing.T) {
	b := []byte("secret password")
	WipeByteArray(b)
	for i, v := range b {
		if v != 0 {
			t.Fatalf("byte %d not wiped: %v", i, v)
		}
	}
}

func TestWipeByteArray_NilAndEmptyAreSafe(t *testing.T) {
	WipeByteArray(nil)
	WipeByteArray([]byte{})
}
