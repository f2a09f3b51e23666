package relevance

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/inspecthq/ferrite/internal/config"
	"github.com/inspecthq/ferrite/internal/llm"
)

// Classifier performs at most one completion call per Classify invocation and
// degrades to an empty result on any completion failure. Retry policy, if any,
// belongs to the caller.
type Classifier struct {
	LLM     llm.LLMClient
	System  string
	Task    string
	Labels  Labels
	Timeout time.Duration
}

func NewMechanismClassifier(client llm.LLMClient, cfg config.RelevanceConfig) *Classifier {
	return &Classifier{
		LLM:     client,
		System:  cfg.MechanismSystem,
		Task:    "Analyze which of the following deterioration mechanisms are relevant for the given equipment and fluid.",
		Labels:  MechanismLabels,
		Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
	}
}

func NewScenarioClassifier(client llm.LLMClient, cfg config.RelevanceConfig) *Classifier {
	return &Classifier{
		LLM:     client,
		System:  cfg.ScenarioSystem,
		Task:    "Analyze which of the following failure scenarios are relevant for the given deterioration mechanisms.",
		Labels:  ScenarioLabels,
		Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
	}
}

// Classify returns the relevant subset of candidates in catalog order. An
// empty candidate list short-circuits without a call; a failed or timed-out
// call is logged and yields an empty result, never an error.
func (c *Classifier) Classify(ctx context.Context, contextBlock string, candidates []Candidate) []Candidate {
	if len(candidates) == 0 {
		return []Candidate{}
	}

	prompt := BuildPrompt(c.Task, contextBlock, candidates, c.Labels)

	callCtx := ctx
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	requestID := uuid.NewString()
	reply, err := c.generate(callCtx, prompt)
	if err != nil {
		log.Printf("relevance [%s]: completion failed for %d %s candidates: %v",
			requestID, len(candidates), c.Labels.Noun, err)
		return []Candidate{}
	}

	relevant := ParseRelevance(reply, candidates)
	log.Printf("relevance [%s]: %d of %d %s candidates relevant",
		requestID, len(relevant), len(candidates), c.Labels.Noun)
	return relevant
}

// generate converts a panic inside the completion call into an error, so
// classification stays best-effort for the caller even with a misbehaving
// client.
func (c *Classifier) generate(ctx context.Context, prompt string) (reply string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("completion panicked: %v", r)
		}
	}()
	return c.LLM.Generate(ctx, c.System, prompt)
}
