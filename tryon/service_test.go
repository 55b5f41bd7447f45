package tryon

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soiemaison/storefront-backend/netpolicy"
)

// tiny valid-enough JPEG header followed by recognizable payload
var personBytes = []byte{0xff, 0xd8, 0xff, 0xe0, 'p', 'e', 'r', 's', 'o', 'n'}
var garmentBytes = []byte{0xff, 0xd8, 0xff, 0xe0, 'g', 'a', 'r', 'm'}
var resultBytes = []byte{0x89, 'P', 'N', 'G', 'r', 'e', 's', 'u', 'l', 't'}

type stubProvider struct {
	calls  int
	lastIn Input
	out    *Output
	err    error
}

func (s *stubProvider) Generate(ctx context.Context, in Input) (*Output, error) {
	s.calls++
	s.lastIn = in
	if s.err != nil {
		return nil, s.err
	}
	return s.out, nil
}

func newTestService(t *testing.T, p Provider) *Service {
	t.Helper()
	log := logrus.New()
	log.SetOutput(os.Stderr)
	return NewService(p, netpolicy.Direct(), log)
}

func writeTemp(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "upload")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestGenerateWithGarmentFile(t *testing.T) {
	resultSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(resultBytes)
	}))
	defer resultSrv.Close()

	// A garment fetch would be a bug when a file is supplied.
	garmentSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("garment URL fetched even though a garment file was supplied")
	}))
	defer garmentSrv.Close()

	provider := &stubProvider{out: &Output{ResultURL: resultSrv.URL + "/out.png"}}
	svc := newTestService(t, provider)

	garmPath := writeTemp(t, garmentBytes)
	got, err := svc.Generate(context.Background(), Request{
		PersonImagePath:  writeTemp(t, personBytes),
		GarmentImagePath: garmPath,
		GarmentImageURL:  garmentSrv.URL + "/garment.jpg",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, provider.calls)
	assert.Equal(t, EncodeDataURI("image/jpeg", personBytes), provider.lastIn.HumanImage)
	assert.Equal(t, EncodeDataURI("image/jpeg", garmentBytes), provider.lastIn.GarmentImage)
	assert.Equal(t, "clothes", provider.lastIn.Description)
	assert.Equal(t, "upper_body", provider.lastIn.Category)

	// Round-trip: the payload must be exactly the bytes the provider's result
	// URL served, re-encoded without corruption.
	mime, data, err := DecodeDataURI(got)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mime)
	assert.Equal(t, resultBytes, data)

	// The garment temp file is deleted once read.
	_, err = os.Stat(garmPath)
	assert.True(t, os.IsNotExist(err))
}

func TestGenerateWithGarmentURL(t *testing.T) {
	garmentSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(garmentBytes)
	}))
	defer garmentSrv.Close()
	resultSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(resultBytes)
	}))
	defer resultSrv.Close()

	provider := &stubProvider{out: &Output{ResultURL: resultSrv.URL + "/out.png"}}
	svc := newTestService(t, provider)

	got, err := svc.Generate(context.Background(), Request{
		PersonImagePath: writeTemp(t, personBytes),
		GarmentImageURL: garmentSrv.URL + "/garment.jpg",
		Prompt:          "silk scarf",
		Category:        "dresses",
	})
	require.NoError(t, err)

	assert.Equal(t, EncodeDataURI("image/jpeg", garmentBytes), provider.lastIn.GarmentImage)
	assert.Equal(t, "silk scarf", provider.lastIn.Description)
	assert.Equal(t, "dresses", provider.lastIn.Category)
	assert.Contains(t, got, "data:image/png;base64,")
}

func TestGenerateInlineProviderOutput(t *testing.T) {
	provider := &stubProvider{out: &Output{ImageData: resultBytes}}
	svc := newTestService(t, provider)

	got, err := svc.Generate(context.Background(), Request{
		PersonImagePath:  writeTemp(t, personBytes),
		GarmentImagePath: writeTemp(t, garmentBytes),
	})
	require.NoError(t, err)
	assert.Equal(t, EncodeDataURI("image/png", resultBytes), got)
}

func TestGenerateMissingGarment(t *testing.T) {
	provider := &stubProvider{}
	svc := newTestService(t, provider)

	_, err := svc.Generate(context.Background(), Request{
		PersonImagePath: writeTemp(t, personBytes),
	})
	require.Error(t, err)
	assert.Equal(t, KindMissingInput, KindOf(err))
	assert.EqualError(t, err, "missing garment image")
	assert.Zero(t, provider.calls, "provider must not be invoked without a garment source")
}

func TestGenerateGarmentFetchFailure(t *testing.T) {
	garmentSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer garmentSrv.Close()

	provider := &stubProvider{}
	svc := newTestService(t, provider)

	_, err := svc.Generate(context.Background(), Request{
		PersonImagePath: writeTemp(t, personBytes),
		GarmentImageURL: garmentSrv.URL + "/garment.jpg",
	})
	require.Error(t, err)
	assert.Equal(t, KindUpstreamFetch, KindOf(err))
	assert.EqualError(t, err, "cannot download garment image")
	assert.Zero(t, provider.calls)
}

func TestGenerateResultFetchFailure(t *testing.T) {
	resultSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "expired", http.StatusForbidden)
	}))
	defer resultSrv.Close()

	provider := &stubProvider{out: &Output{ResultURL: resultSrv.URL + "/out.png"}}
	svc := newTestService(t, provider)

	_, err := svc.Generate(context.Background(), Request{
		PersonImagePath:  writeTemp(t, personBytes),
		GarmentImagePath: writeTemp(t, garmentBytes),
	})
	require.Error(t, err)
	assert.Equal(t, KindUpstreamFetch, KindOf(err))
	assert.EqualError(t, err, "cannot download result image")
}

func TestGenerateProviderFailurePropagates(t *testing.T) {
	provider := &stubProvider{err: &Error{Kind: KindProvider, Message: "rate limited"}}
	svc := newTestService(t, provider)

	_, err := svc.Generate(context.Background(), Request{
		PersonImagePath:  writeTemp(t, personBytes),
		GarmentImagePath: writeTemp(t, garmentBytes),
	})
	require.Error(t, err)
	assert.EqualError(t, err, "rate limited")
	assert.Equal(t, http.StatusInternalServerError, StatusFor(err))
}

func TestGenerateUnreadablePersonImage(t *testing.T) {
	provider := &stubProvider{}
	svc := newTestService(t, provider)

	_, err := svc.Generate(context.Background(), Request{
		PersonImagePath:  filepath.Join(t.TempDir(), "does-not-exist"),
		GarmentImagePath: writeTemp(t, garmentBytes),
	})
	require.Error(t, err)
	assert.Equal(t, KindLocalIO, KindOf(err))
	assert.Zero(t, provider.calls)
}

func TestRemoveQuietly(t *testing.T) {
	path := writeTemp(t, []byte("x"))
	RemoveQuietly(path, logrus.New())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Deleting a missing file must stay silent.
	RemoveQuietly(path, logrus.New())
	RemoveQuietly("", nil)
}
