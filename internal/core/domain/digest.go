package domain

import "encoding/hex"

// DigestSize is the length in bytes of a content digest.
const DigestSize = 16

// Digest is the MD5 digest of an asset's contents. It is used for change
// detection only.
type Digest [DigestSize]byte

// Hex returns the lower-case hexadecimal form of d.
func (d Digest) Hex() string {
	return hex.EncodeToString(d[:])
}

// Bytes returns d as a freshly allocated slice.
func (d Digest) Bytes() []byte {
	out := make([]byte, DigestSize)
	copy(out, d[:])
	return out
}

// EncodeHex returns the lower-case hexadecimal form of raw digest bytes as read
// from a sidecar record.
func EncodeHex(b []byte) string {
	return hex.EncodeToString(b)
}
