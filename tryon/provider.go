package tryon

import (
	"context"
	"fmt"
)

// Input carries the normalized images and metadata handed to a provider.
// Both images are base64 data URIs.
type Input struct {
	HumanImage   string
	GarmentImage string
	Description  string
	Category     string
}

// Output is what a provider hands back: either a URL pointing at the rendered
// image, or the image bytes directly when the provider returns them inline.
type Output struct {
	ResultURL string
	ImageData []byte
}

// Provider runs the external virtual try-on model.
type Provider interface {
	Generate(ctx context.Context, in Input) (*Output, error)
}

// coerceOutput normalizes the untyped model output to a single URL string.
// Replicate returns either a string or an array of strings depending on the
// model version; anything else is treated as a provider failure rather than
// stringified.
func coerceOutput(v any) (string, error) {
	switch out := v.(type) {
	case string:
		if out == "" {
			return "", fmt.Errorf("empty model output")
		}
		return out, nil
	case []any:
		if len(out) == 0 {
			return "", fmt.Errorf("empty model output")
		}
		s, ok := out[0].(string)
		if !ok || s == "" {
			return "", fmt.Errorf("unexpected model output element %T", out[0])
		}
		return s, nil
	case []string:
		if len(out) == 0 || out[0] == "" {
			return "", fmt.Errorf("empty model output")
		}
		return out[0], nil
	default:
		return "", fmt.Errorf("unexpected model output type %T", v)
	}
}
