package services

import (
	"bytes"
	"context"
	stdjson "encoding/json"

	"github.com/goccy/go-json"
	"github.com/mdayat/daily-reflection-backend-service/configs"
	"github.com/mdayat/daily-reflection-backend-service/internal/generation"
)

type ReflectionServicer interface {
	GenerateReflection(ctx context.Context, date string) (json.RawMessage, error)
}

type reflection struct {
	configs   configs.Configs
	generator generation.Generator
}

func NewReflectionService(configs configs.Configs, generator generation.Generator) ReflectionServicer {
	return &reflection{
		configs:   configs,
		generator: generator,
	}
}

// GenerateReflection asks the generator once and returns the JSON object found
// in its completion, compacted with the original key order.
func (r reflection) GenerateReflection(ctx context.Context, date string) (json.RawMessage, error) {
	if r.generator == nil || !r.configs.Env.Credential.Configured() {
		return nil, configs.ErrUnconfigured
	}

	text, err := r.generator.Generate(ctx, BuildReflectionPrompt(date))
	if err != nil {
		return nil, &ReflectionError{Kind: KindUpstream, Err: err}
	}

	extracted, ok := ExtractJSONObject(text)
	if !ok {
		return nil, &ReflectionError{Kind: KindExtraction, Err: ErrExtraction}
	}

	// goccy accepts leading zeros and raw control characters in strings, so the
	// grammar check goes through encoding/json.
	var object map[string]interface{}
	if err := stdjson.Unmarshal([]byte(extracted), &object); err != nil {
		return nil, &ReflectionError{Kind: KindParse, Err: err}
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(extracted)); err != nil {
		return nil, &ReflectionError{Kind: KindParse, Err: err}
	}

	return json.RawMessage(buf.Bytes()), nil
}
