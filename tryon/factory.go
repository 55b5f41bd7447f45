package tryon

import (
	"fmt"
	"net/http"
)

// NewProvider returns the configured provider implementation.
func NewProvider(name, replicateToken, geminiKey string, httpClient *http.Client) (Provider, error) {
	switch name {
	case "", "replicate":
		return NewReplicateProvider(replicateToken, httpClient)
	case "gemini":
		return NewGeminiProvider(geminiKey)
	default:
		return nil, fmt.Errorf("unknown try-on provider: %s", name)
	}
}
