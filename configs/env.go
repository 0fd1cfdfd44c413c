package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	envparser "github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"

	// DefaultGeminiModel is used when GENAI_MODEL is unset and the provider is
	// gemini. The openai provider has no default model.
	DefaultGeminiModel = "gemini-flash-latest"
)

type Env struct {
	Port           string        `env:"PORT" envDefault:"8080" validate:"required,numeric"`
	AllowedOrigins string        `env:"ALLOWED_ORIGINS" envDefault:"*"`
	GenAIProvider  string        `env:"GENAI_PROVIDER" envDefault:"gemini" validate:"oneof=gemini openai"`
	GenAIModel     string        `env:"GENAI_MODEL" validate:"required"`
	GenAIBaseURL   string        `env:"GENAI_BASE_URL" validate:"omitempty,url"`
	GenAITimeout   time.Duration `env:"GENAI_TIMEOUT" envDefault:"0s"`
	Credential     Credential
}

// LoadEnv reads the given dotenv files (".env" when none are given) into the
// process environment and resolves Env from it. Missing dotenv files are not an
// error so the service can run on platform-provided variables alone.
func LoadEnv(filenames ...string) (Env, error) {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Env{}, err
	}

	var env Env
	if err := envparser.Parse(&env); err != nil {
		return Env{}, fmt.Errorf("failed to parse env: %w", err)
	}

	if env.GenAIModel == "" && env.GenAIProvider == ProviderGemini {
		env.GenAIModel = DefaultGeminiModel
	}

	env.Credential = ResolveCredential(os.LookupEnv, CredentialSources...)

	if err := NewValidate().Struct(env); err != nil {
		return Env{}, fmt.Errorf("invalid env: %w", err)
	}

	return env, nil
}
