// Package relevance turns a catalog of candidate records into a relevant
// subset via a single LLM round-trip. The reply protocol is line-positional:
// one boolean line per candidate, in the exact order the prompt presented
// them, parsed fail-closed.
package relevance

import "github.com/inspecthq/ferrite/internal/core/model"

// Candidate is the neutral view of one catalog entry presented to the model.
type Candidate struct {
	ID          string
	Name        string
	Description string
	Areas       []string
	Factors     []string
}

// Labels name the candidate noun and its two collections in the prompt.
type Labels struct {
	Noun         string
	CatalogTitle string
	Areas        string
	Factors      string
}

var (
	MechanismLabels = Labels{
		Noun:         "Mechanism",
		CatalogTitle: "Deterioration Mechanisms",
		Areas:        "Affected Areas",
		Factors:      "Contributing Factors",
	}
	ScenarioLabels = Labels{
		Noun:         "Scenario",
		CatalogTitle: "Possible Failure Scenarios",
		Areas:        "Affected Components",
		Factors:      "Mitigation Strategies",
	}
)

func MechanismCandidates(mechanisms []model.Mechanism) []Candidate {
	candidates := make([]Candidate, 0, len(mechanisms))
	for _, m := range mechanisms {
		candidates = append(candidates, Candidate{
			ID:          m.ID,
			Name:        m.Name,
			Description: m.Description,
			Areas:       m.AffectedAreas,
			Factors:     m.ContributingFactors,
		})
	}
	return candidates
}

func ScenarioCandidates(scenarios []model.Scenario) []Candidate {
	candidates := make([]Candidate, 0, len(scenarios))
	for _, s := range scenarios {
		candidates = append(candidates, Candidate{
			ID:          s.ID,
			Name:        s.Name,
			Description: s.Description,
			Areas:       s.AffectedComponents,
			Factors:     s.MitigationStrategies,
		})
	}
	return candidates
}
