package content

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// openAICompleter adapts the OpenAI chat completion API to the completer
// interface.
type openAICompleter struct {
	client *openai.Client
	model  string
}

func newOpenAICompleter(apiKey, model string) *openAICompleter {
	return &openAICompleter{client: openai.NewClient(apiKey), model: model}
}

func (c *openAICompleter) complete(ctx context.Context, req completionRequest) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.system},
			{Role: openai.ChatMessageRoleUser, Content: req.user},
		},
		Temperature: req.temperature,
		MaxTokens:   req.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("openai completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
