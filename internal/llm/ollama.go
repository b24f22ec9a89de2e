package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

const defaultOllamaHost = "http://localhost:11434"

// OllamaClient completes prompts against a local Ollama server.
type OllamaClient struct {
	backend *ollama.LLM
	model   string
	host    string
}

// NewOllamaClient connects to the Ollama server at host. An empty host uses
// the default local address.
func NewOllamaClient(model, host string) (*OllamaClient, error) {
	if strings.TrimSpace(model) == "" {
		return nil, errors.New("ollama model is required")
	}
	if host == "" {
		host = defaultOllamaHost
	}

	backend, err := ollama.New(ollama.WithModel(model), ollama.WithServerURL(host))
	if err != nil {
		return nil, fmt.Errorf("connecting to ollama: %w", err)
	}
	return &OllamaClient{backend: backend, model: model, host: host}, nil
}

// Complete sends the prompt in JSON mode and returns the raw reply.
func (c *OllamaClient) Complete(ctx context.Context, prompt string) (string, error) {
	reply, err := llms.GenerateFromSinglePrompt(ctx, c.backend, prompt,
		llms.WithModel(c.model), llms.WithJSONMode())
	if err != nil {
		return "", fmt.Errorf("ollama completion: %w", err)
	}
	return reply, nil
}
