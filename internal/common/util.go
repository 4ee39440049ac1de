package common

// WipeByteArray overwrites the buffer with zeros. It is used to clear
// plaintext passwords from memory as soon as they are no longer needed.
// Safe to call with a nil slice.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
