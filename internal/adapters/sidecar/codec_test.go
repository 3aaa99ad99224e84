package sidecar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mulpath/internal/adapters/sidecar"
	"go.trai.ch/mulpath/internal/core/domain"
)

func TestEncode(t *testing.T) {
	raw := sidecar.Encode([]byte{0xde, 0xad, 0xbe, 0xef})

	assert.Equal(t, []byte{0x04, 0x00, 0x00, 0x00, 0xde, 0xad, 0xbe, 0xef}, raw)
}

func TestEncodeDecode_ByteIdentical(t *testing.T) {
	digest := []byte{
		0x5e, 0xb6, 0x3b, 0xbb, 0xe0, 0x1e, 0xee, 0xd0,
		0x93, 0xcb, 0x22, 0xbb, 0x8f, 0x5a, 0xcd, 0xc3,
	}

	raw := sidecar.Encode(digest)
	require.Len(t, raw, 4+len(digest))

	decoded, err := sidecar.Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, digest, decoded)
	assert.Equal(t, raw, sidecar.Encode(decoded))
}

func TestDecode_ZeroLengthRecord(t *testing.T) {
	decoded, err := sidecar.Decode([]byte{0, 0, 0, 0})

	require.NoError(t, err)
	assert.Empty(t, decoded)
}

func TestDecode_Rejects(t *testing.T) {
	tests := []struct {
		name     string
		raw      []byte
		sentinel error
	}{
		{"empty", nil, domain.ErrSidecarEmpty},
		{"short prefix", []byte{0x10, 0x00}, domain.ErrSidecarMalformed},
		{"negative length", []byte{0xff, 0xff, 0xff, 0xff, 0x01}, domain.ErrSidecarMalformed},
		{"length exceeds content", []byte{0x10, 0x00, 0x00, 0x00, 0xaa, 0xbb}, domain.ErrSidecarMalformed},
		{"trailing bytes", []byte{0x01, 0x00, 0x00, 0x00, 0xaa, 0xbb}, domain.ErrSidecarMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := sidecar.Decode(tt.raw)
			require.ErrorIs(t, err, tt.sentinel)
			assert.Nil(t, decoded, "partial records must never be returned")
		})
	}
}
