package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"

	"github.com/mdayat/daily-reflection-backend-service/configs"
	"github.com/rs/zerolog"
)

var testServer *httptest.Server
var testClient *http.Client
var testGenerator *fakeGenerator

type fakeGenerator struct {
	mu      sync.Mutex
	text    string
	err     error
	prompts []string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.prompts = append(f.prompts, prompt)
	return f.text, f.err
}

func (f *fakeGenerator) reset(text string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.text = text
	f.err = err
	f.prompts = nil
}

func (f *fakeGenerator) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string(nil), f.prompts...)
}

func newTestConfigs(credential configs.Credential) configs.Configs {
	return configs.NewConfigs(configs.Env{
		Port:           "8080",
		AllowedOrigins: "*",
		GenAIProvider:  configs.ProviderGemini,
		GenAIModel:     "gemini-flash-latest",
		Credential:     credential,
	})
}

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.Disabled)

	configs := newTestConfigs(configs.NewCredential("test-key", "GEN_AI_KEY"))
	testGenerator = &fakeGenerator{}

	customMiddleware := NewMiddlewareHandler(configs)
	router := NewRestHandler(configs, customMiddleware, testGenerator)

	testServer = httptest.NewServer(router)
	testClient = testServer.Client()

	exitCode := m.Run()
	testServer.Close()
	os.Exit(exitCode)
}
