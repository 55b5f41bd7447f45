package tryon

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// EncodeDataURI embeds raw image bytes as a base64 data URI so the client can
// render the image without a separate fetch.
func EncodeDataURI(mimeType string, data []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
}

// DecodeDataURI splits a data URI back into its MIME type and raw bytes.
func DecodeDataURI(uri string) (string, []byte, error) {
	if !strings.HasPrefix(uri, "data:") {
		return "", nil, fmt.Errorf("not a data URI")
	}
	rest := strings.TrimPrefix(uri, "data:")
	idx := strings.Index(rest, ";base64,")
	if idx < 0 {
		return "", nil, fmt.Errorf("data URI is not base64 encoded")
	}
	mimeType := rest[:idx]
	data, err := base64.StdEncoding.DecodeString(rest[idx+len(";base64,"):])
	if err != nil {
		return "", nil, fmt.Errorf("invalid base64 payload: %w", err)
	}
	return mimeType, data, nil
}
