package tryon

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/replicate/replicate-go"
)

// IDM-VTON: garment-to-person compositing model.
const idmVTONModel = "cuuupid/idm-vton:0513734a452173b8173e907e3a59d19a36266e55b48528559432bd21c7d7e985"

// Generation parameters are fixed, not configurable per request.
const (
	generationSeed  = 42
	generationSteps = 30
)

// ReplicateProvider runs the try-on model on Replicate.
type ReplicateProvider struct {
	client *replicate.Client
}

// NewReplicateProvider builds a provider around the Replicate API. The HTTP
// client comes from the network policy so local development can ride the
// forwarding proxy.
func NewReplicateProvider(token string, httpClient *http.Client) (*ReplicateProvider, error) {
	if token == "" {
		return nil, fmt.Errorf("REPLICATE_API_TOKEN is not set")
	}
	opts := []replicate.ClientOption{replicate.WithToken(token)}
	if httpClient != nil {
		opts = append(opts, replicate.WithHTTPClient(httpClient))
	}
	client, err := replicate.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create replicate client: %w", err)
	}
	return &ReplicateProvider{client: client}, nil
}

func (p *ReplicateProvider) Generate(ctx context.Context, in Input) (*Output, error) {
	input := replicate.PredictionInput{
		"human_img":   in.HumanImage,
		"garm_img":    in.GarmentImage,
		"garment_des": in.Description,
		"category":    in.Category,
		"crop":        false,
		"seed":        generationSeed,
		"steps":       generationSteps,
	}

	out, err := p.client.Run(ctx, idmVTONModel, input, nil)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &Error{Kind: KindTimeout, Message: "model invocation timed out", Err: err}
		}
		return nil, &Error{Kind: KindProvider, Message: err.Error(), Err: err}
	}

	url, err := coerceOutput(out)
	if err != nil {
		return nil, &Error{Kind: KindProvider, Message: err.Error(), Err: err}
	}
	return &Output{ResultURL: url}, nil
}
