package tryon

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"missing input", &Error{Kind: KindMissingInput, Message: "missing model photo"}, http.StatusBadRequest},
		{"upstream fetch", &Error{Kind: KindUpstreamFetch, Message: "cannot download result image"}, http.StatusInternalServerError},
		{"provider", &Error{Kind: KindProvider, Message: "rate limited"}, http.StatusInternalServerError},
		{"local io", &Error{Kind: KindLocalIO, Message: "failed to read model photo"}, http.StatusInternalServerError},
		{"timeout", &Error{Kind: KindTimeout, Message: "model invocation timed out"}, http.StatusGatewayTimeout},
		{"wrapped", fmt.Errorf("outer: %w", &Error{Kind: KindMissingInput, Message: "missing garment image"}), http.StatusBadRequest},
		{"untyped", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.err))
		})
	}
}

func TestErrorMessageIsBare(t *testing.T) {
	// The response body carries the provider's message verbatim, so Error()
	// must not decorate it.
	err := &Error{Kind: KindProvider, Message: "rate limited", Err: errors.New("http 429 from upstream")}
	assert.Equal(t, "rate limited", err.Error())
	assert.EqualError(t, errors.Unwrap(err), "http 429 from upstream")
}
