package generation

import (
	"context"
	"errors"

	"github.com/sashabaranov/go-openai"
)

// OpenAIGenerator talks to any OpenAI-compatible chat completions endpoint.
type OpenAIGenerator struct {
	client *openai.Client
	model  string
}

func NewOpenAIGenerator(params Params) *OpenAIGenerator {
	config := openai.DefaultConfig(params.APIKey)
	if params.BaseURL != "" {
		config.BaseURL = params.BaseURL
	}

	if params.HTTPClient != nil {
		config.HTTPClient = params.HTTPClient
	}

	return &OpenAIGenerator{
		client: openai.NewClientWithConfig(config),
		model:  params.Model,
	}
}

func (o *OpenAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	res, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})

	if err != nil {
		return "", err
	}

	if len(res.Choices) == 0 {
		return "", errors.New("no choices in completion response")
	}

	return res.Choices[0].Message.Content, nil
}
