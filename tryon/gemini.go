package tryon

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiModelName = "gemini-3-pro-image-preview"

// GeminiProvider is an alternate backend that composites the garment onto the
// person with Gemini's image model. Unlike Replicate it returns the image
// bytes inline, so the gateway skips the result download for this provider.
type GeminiProvider struct {
	apiKey string
}

func NewGeminiProvider(apiKey string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}
	return &GeminiProvider{apiKey: apiKey}, nil
}

func (p *GeminiProvider) Generate(ctx context.Context, in Input) (*Output, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(p.apiKey))
	if err != nil {
		return nil, &Error{Kind: KindProvider, Message: "failed to create Gemini client: " + err.Error(), Err: err}
	}
	defer client.Close()

	humanData, err := imageBytes(in.HumanImage)
	if err != nil {
		return nil, &Error{Kind: KindProvider, Message: "invalid person image: " + err.Error(), Err: err}
	}
	garmentData, err := imageBytes(in.GarmentImage)
	if err != nil {
		return nil, &Error{Kind: KindProvider, Message: "invalid garment image: " + err.Error(), Err: err}
	}

	prompt := fmt.Sprintf(`Render the person from the first image wearing the garment from the second image.
Keep the person's face, pose and background unchanged; only replace the %s clothing.
Garment description: %s`, in.Category, in.Description)

	model := client.GenerativeModel(geminiModelName)
	resp, err := model.GenerateContent(ctx,
		genai.Text(prompt),
		genai.ImageData("jpeg", humanData),
		genai.ImageData("jpeg", garmentData),
	)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &Error{Kind: KindTimeout, Message: "model invocation timed out", Err: err}
		}
		return nil, &Error{Kind: KindProvider, Message: err.Error(), Err: err}
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, &Error{Kind: KindProvider, Message: "no content generated"}
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if blob, ok := part.(genai.Blob); ok {
			return &Output{ImageData: blob.Data}, nil
		}
	}
	return nil, &Error{Kind: KindProvider, Message: "model returned no image"}
}

// imageBytes accepts the data URI produced by the gateway's normalization
// step and hands back the raw bytes Gemini expects.
func imageBytes(uri string) ([]byte, error) {
	_, data, err := DecodeDataURI(uri)
	return data, err
}
