package relevance

import (
	"context"
)

type MockLLMClient struct {
	Response string
	Err      error
	Panic    bool

	Calls      int
	LastSystem string
	LastPrompt string
}

func (m *MockLLMClient) Generate(ctx context.Context, system, prompt string) (string, error) {
	m.Calls++
	m.LastSystem = system
	m.LastPrompt = prompt
	if m.Panic {
		panic("mock completion panic")
	}
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}
