package tryon

import (
	"errors"
	"net/http"
)

// Kind classifies a try-on failure so the HTTP layer can pick status codes
// deliberately instead of collapsing everything into a 500.
type Kind int

const (
	// KindMissingInput means a required image is absent; client-correctable.
	KindMissingInput Kind = iota
	// KindUpstreamFetch means a garment or result download failed.
	KindUpstreamFetch
	// KindProvider means the external generation call itself failed.
	KindProvider
	// KindLocalIO means a temp file could not be read or written.
	KindLocalIO
	// KindTimeout means an outbound call exceeded its deadline.
	KindTimeout
)

// Error is a tagged try-on failure.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the kind to a response status code.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindMissingInput:
		return http.StatusBadRequest
	case KindTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// StatusFor returns the status code for any error from the try-on pipeline.
func StatusFor(err error) int {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind.HTTPStatus()
	}
	return http.StatusInternalServerError
}

// KindOf extracts the kind of a try-on error, defaulting to KindProvider.
func KindOf(err error) Kind {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind
	}
	return KindProvider
}
