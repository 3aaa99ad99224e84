// Package sidecar reads and writes the length-prefixed digest records stored next to cached asset data.
package sidecar

import (
	"encoding/binary"
	"fmt"

	"go.trai.ch/mulpath/internal/core/domain"
	"go.trai.ch/zerr"
)

// lengthSize is the size of the little-endian int32 prefix.
const lengthSize = 4

// Encode frames digest as a sidecar record.
func Encode(digest []byte) []byte {
	out := make([]byte, lengthSize+len(digest))
	binary.LittleEndian.PutUint32(out, uint32(len(digest))) //nolint:gosec // Digests are a few bytes long.
	copy(out[lengthSize:], digest)
	return out
}

// Decode extracts the digest from a sidecar record.
// The declared length must account for every byte after the prefix.
func Decode(raw []byte) ([]byte, error) {
	if len(raw) == 0 {
		return nil, domain.ErrSidecarEmpty
	}
	if len(raw) < lengthSize {
		return nil, zerr.Wrap(domain.ErrSidecarMalformed, fmt.Sprintf("record is %d bytes, shorter than its length prefix", len(raw)))
	}

	declared := int32(binary.LittleEndian.Uint32(raw)) //nolint:gosec // The prefix is a signed int32.
	if declared < 0 {
		return nil, zerr.Wrap(domain.ErrSidecarMalformed, fmt.Sprintf("negative length %d", declared))
	}

	body := raw[lengthSize:]
	if int(declared) != len(body) {
		return nil, zerr.Wrap(domain.ErrSidecarMalformed, fmt.Sprintf("declared %d bytes, found %d", declared, len(body)))
	}

	out := make([]byte, len(body))
	copy(out, body)
	return out, nil
}
