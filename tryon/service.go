// Package tryon implements the try-on gateway core: it turns a person photo
// and a garment source into one rendered composite image, hiding the external
// provider's transport quirks from the HTTP layer.
package tryon

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/soiemaison/storefront-backend/netpolicy"
)

const (
	defaultDescription = "clothes"
	defaultCategory    = "upper_body"

	// The model can take tens of seconds; bound it so a stalled provider
	// cannot hang the request forever.
	providerTimeout = 120 * time.Second
	fetchTimeout    = 30 * time.Second
)

// Request describes one try-on invocation. Exactly one of GarmentImagePath or
// GarmentImageURL must be set.
type Request struct {
	PersonImagePath  string
	GarmentImagePath string
	GarmentImageURL  string
	Prompt           string
	Category         string
}

// Service runs the request pipeline: normalize inputs, invoke the provider,
// fetch and re-encode the result. Stateless; every request is independent.
type Service struct {
	provider Provider
	fetch    *http.Client
	log      *logrus.Logger
}

func NewService(provider Provider, policy netpolicy.Policy, log *logrus.Logger) *Service {
	return &Service{
		provider: provider,
		fetch:    policy.Client(fetchTimeout),
		log:      log,
	}
}

// Generate executes the pipeline and returns the rendered image as a PNG data
// URI. The person temp file is owned by the caller; an uploaded garment temp
// file is deleted here once its bytes are read.
func (s *Service) Generate(ctx context.Context, req Request) (string, error) {
	personData, err := os.ReadFile(req.PersonImagePath)
	if err != nil {
		return "", &Error{Kind: KindLocalIO, Message: "failed to read model photo", Err: err}
	}
	humanImg := EncodeDataURI("image/jpeg", personData)

	garmImg, err := s.resolveGarment(ctx, req)
	if err != nil {
		return "", err
	}

	in := Input{
		HumanImage:   humanImg,
		GarmentImage: garmImg,
		Description:  req.Prompt,
		Category:     req.Category,
	}
	if in.Description == "" {
		in.Description = defaultDescription
	}
	if in.Category == "" {
		in.Category = defaultCategory
	}

	s.log.Info("invoking try-on model...")
	providerCtx, cancel := context.WithTimeout(ctx, providerTimeout)
	defer cancel()

	out, err := s.provider.Generate(providerCtx, in)
	if err != nil {
		return "", err
	}

	if len(out.ImageData) > 0 {
		return EncodeDataURI("image/png", out.ImageData), nil
	}

	s.log.WithField("url", out.ResultURL).Info("downloading result image")
	resultData, err := s.fetchBytes(ctx, out.ResultURL)
	if err != nil {
		return "", wrapFetchErr(err, "cannot download result image")
	}
	return EncodeDataURI("image/png", resultData), nil
}

// resolveGarment turns whichever garment source is present into a data URI.
// An uploaded file wins over a URL; its temp file is removed once read.
func (s *Service) resolveGarment(ctx context.Context, req Request) (string, error) {
	if req.GarmentImagePath != "" {
		data, err := os.ReadFile(req.GarmentImagePath)
		if err != nil {
			return "", &Error{Kind: KindLocalIO, Message: "failed to read garment image", Err: err}
		}
		RemoveQuietly(req.GarmentImagePath, s.log)
		return EncodeDataURI("image/jpeg", data), nil
	}

	if req.GarmentImageURL != "" {
		s.log.WithField("url", req.GarmentImageURL).Info("downloading garment image")
		data, err := s.fetchBytes(ctx, req.GarmentImageURL)
		if err != nil {
			return "", wrapFetchErr(err, "cannot download garment image")
		}
		return EncodeDataURI("image/jpeg", data), nil
	}

	return "", &Error{Kind: KindMissingInput, Message: "missing garment image"}
}

func (s *Service) fetchBytes(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.fetch.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status: %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// wrapFetchErr tags a download failure, distinguishing timeouts from plain
// upstream failures.
func wrapFetchErr(err error, message string) *Error {
	kind := KindUpstreamFetch
	var uerr *url.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &uerr) && uerr.Timeout()) {
		kind = KindTimeout
	}
	return &Error{Kind: kind, Message: message, Err: err}
}

// RemoveQuietly deletes a temp file best-effort. Cleanup failures are logged,
// never surfaced; a leftover temp file must not fail a served request.
func RemoveQuietly(path string, log *logrus.Logger) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		if log != nil {
			log.WithError(err).WithField("path", path).Warn("failed to remove temp file")
		}
	}
}
