package common

// WipeByteArray overwrites the slice with zeros. Used to scrub passwords
// from memory once they have been handed to the backend.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
