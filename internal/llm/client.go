package llm

import (
	"context"
)

// LLMClient is the completion boundary: one system instruction, one user
// prompt, one free-text reply.
type LLMClient interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
}
