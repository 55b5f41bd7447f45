package tryon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDataURI(t *testing.T) {
	data := []byte{0xff, 0xd8, 0xff, 0xe0, 0x00}

	uri := EncodeDataURI("image/jpeg", data)
	assert.Equal(t, "data:image/jpeg;base64,/9j/4AA=", uri)

	// Encoding identical bytes must yield byte-identical URIs.
	assert.Equal(t, uri, EncodeDataURI("image/jpeg", data))
}

func TestDecodeDataURIRoundTrip(t *testing.T) {
	data := []byte("not really a png but the codec does not care")

	uri := EncodeDataURI("image/png", data)
	mime, decoded, err := DecodeDataURI(uri)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mime)
	assert.Equal(t, data, decoded)
}

func TestDecodeDataURIRejectsMalformed(t *testing.T) {
	cases := map[string]string{
		"plain url":   "https://example.com/a.png",
		"no base64":   "data:image/png,rawdata",
		"bad payload": "data:image/png;base64,%%%",
	}
	for name, uri := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := DecodeDataURI(uri)
			assert.Error(t, err)
		})
	}
}
