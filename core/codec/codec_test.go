package codec_test

import (
	"encoding/base64"
	"testing"

	"save-editor/core/codec"
	"save-editor/core/savefile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const plainSave = `{"type":"BitburnerSaveObject","data":{"PlayerSave":"{\"money\":100}"}}`

func TestDecodeEncodeRoundTrip(t *testing.T) {
	container, err := savefile.Parse([]byte(plainSave))
	require.NoError(t, err)

	tests := []struct {
		name     string
		encoding codec.Encoding
		gzipHint bool
	}{
		{"plain", codec.EncodingPlain, false},
		{"base64", codec.EncodingBase64, false},
		{"gzip", codec.EncodingGzip, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := codec.Encode(container, tt.encoding)
			require.NoError(t, err)

			decoded, enc, err := codec.Decode(data, tt.gzipHint)
			require.NoError(t, err)
			assert.Equal(t, tt.encoding, enc)
			assert.Equal(t, container, decoded)
		})
	}
}

func TestDecodeBase64Fallback(t *testing.T) {
	raw := []byte(base64.StdEncoding.EncodeToString([]byte(plainSave)))

	container, enc, err := codec.Decode(raw, false)
	require.NoError(t, err)
	assert.Equal(t, codec.EncodingBase64, enc)
	assert.Equal(t, float64(100), container.Player()["money"])
}

func TestDecodeInvalidContainerShortCircuits(t *testing.T) {
	// Valid JSON with the wrong tag must not fall through to base64.
	_, _, err := codec.Decode([]byte(`{"type":"Nope","data":{}}`), false)
	assert.ErrorIs(t, err, savefile.ErrInvalidContainer)

	// The same tag mismatch inside a base64 wrapper is also fatal.
	wrapped := base64.StdEncoding.EncodeToString([]byte(`{"type":"Nope","data":{}}`))
	_, _, err = codec.Decode([]byte(wrapped), false)
	assert.ErrorIs(t, err, savefile.ErrInvalidContainer)
}

func TestDecodeUnrecognized(t *testing.T) {
	_, _, err := codec.Decode([]byte("!!! not a save !!!"), false)
	assert.ErrorIs(t, err, codec.ErrUnrecognizedFormat)

	// base64 that decodes to garbage fails the whole chain.
	garbage := base64.StdEncoding.EncodeToString([]byte("still not json"))
	_, _, err = codec.Decode([]byte(garbage), false)
	assert.ErrorIs(t, err, codec.ErrUnrecognizedFormat)

	// Non-gzip bytes on the gzip path.
	_, _, err = codec.Decode([]byte(plainSave), true)
	assert.ErrorIs(t, err, codec.ErrUnrecognizedFormat)
}

func TestGzipHint(t *testing.T) {
	assert.True(t, codec.GzipHint("bitburnerSave_1700000000_BN1.json.gz"))
	assert.True(t, codec.GzipHint("SAVE.JSON.GZ"))
	assert.False(t, codec.GzipHint("bitburnerSave_1700000000_BN1.json"))
	assert.False(t, codec.GzipHint("save.txt"))
}

func TestExtension(t *testing.T) {
	assert.Equal(t, ".json.gz", codec.Extension(codec.EncodingGzip))
	assert.Equal(t, ".json", codec.Extension(codec.EncodingPlain))
	assert.Equal(t, ".json", codec.Extension(codec.EncodingBase64))
}
