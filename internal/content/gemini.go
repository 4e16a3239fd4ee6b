package content

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// geminiCompleter adapts Google's Generative AI SDK to the completer
// interface.
type geminiCompleter struct {
	client *genai.Client
	model  string
}

func newGeminiCompleter(ctx context.Context, apiKey, model string) (*geminiCompleter, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &geminiCompleter{client: client, model: model}, nil
}

func (c *geminiCompleter) complete(ctx context.Context, req completionRequest) (string, error) {
	var system *genai.Content
	if req.system != "" {
		system = genai.Text(req.system)[0]
	}
	temperature := req.temperature

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(req.user), &genai.GenerateContentConfig{
		SystemInstruction: system,
		Temperature:       &temperature,
		MaxOutputTokens:   int32(req.maxTokens),
	})
	if err != nil {
		return "", fmt.Errorf("gemini completion failed: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no content parts")
	}
	return candidate.Content.Parts[0].Text, nil
}
