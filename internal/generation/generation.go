package generation

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mdayat/daily-reflection-backend-service/configs"
)

// Generator turns a prompt into a single free-text completion.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Params struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// New builds the generator selected by env. It returns configs.ErrUnconfigured
// when no credential was resolved.
func New(ctx context.Context, env configs.Env) (Generator, error) {
	if !env.Credential.Configured() {
		return nil, configs.ErrUnconfigured
	}

	params := Params{
		APIKey:     env.Credential.Value(),
		Model:      env.GenAIModel,
		BaseURL:    env.GenAIBaseURL,
		HTTPClient: &http.Client{Timeout: env.GenAITimeout},
	}

	switch env.GenAIProvider {
	case configs.ProviderGemini:
		generator, err := NewGeminiGenerator(ctx, params)
		if err != nil {
			return nil, err
		}
		return generator, nil
	case configs.ProviderOpenAI:
		return NewOpenAIGenerator(params), nil
	default:
		return nil, fmt.Errorf("unsupported generation provider %q", env.GenAIProvider)
	}
}
