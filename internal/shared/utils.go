// Package shared provides small utilities used across the client.
package shared

// WipeByteArray overwrites the contents of b with zeros. Used to remove
// passwords from memory once they have been sent to the server. A nil slice
// is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
