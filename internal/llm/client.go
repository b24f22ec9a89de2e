// Package llm asks a chat completion backend how to resolve timetable
// conflicts. Backends return the model's raw text reply; the advisor owns
// the prompt and the decoding.
package llm

import "context"

// Client is a chat completion backend.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
